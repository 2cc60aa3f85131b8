package cardview

import "sort"

// BlockID sayfadaki mantıksal blokların sabit kimlik sözlüğü.
type BlockID string

const (
	BlockBanner      BlockID = "banner"
	BlockPhoto       BlockID = "photo"
	BlockNameInfo    BlockID = "nameInfo"
	BlockContact     BlockID = "contact"
	BlockSaveContact BlockID = "saveContact"
	BlockSections    BlockID = "sections"
	BlockSocial      BlockID = "social"
	BlockFooter      BlockID = "footer"
)

// DefaultContentOrder kart bir sıralama belirtmediğinde kullanılan tek
// merkezi varsayılan sıra. Tüm layout'lar bu sabiti paylaşır.
var DefaultContentOrder = []BlockID{
	BlockBanner,
	BlockPhoto,
	BlockNameInfo,
	BlockContact,
	BlockSaveContact,
	BlockSections,
	BlockSocial,
}

// Blok içerikleri. Block içinde kimliğe karşılık gelen tek alan doludur.

type BannerBlock struct {
	URL string
}

type PhotoBlock struct {
	URL string
	// OverlapOffset fotoğraf sıralamada banner'ın hemen ardından geliyorsa
	// layout'un negatif bindirme değeri; aksi halde 0 (nötr).
	OverlapOffset int
}

type NameInfoBlock struct {
	FullName string
	Title    string
	Company  string
	Bio      string
	Address  string
}

type ContactBlock struct {
	Items []ContactItem
}

type SaveContactBlock struct {
	Href  string
	Label string
}

type SectionsBlock struct {
	Items []SectionBlock
}

type SocialBlock struct {
	Links []ResolvedSocialLink
}

type FooterBlock struct {
	Text string
}

// Block sıralı çıktıdaki tek render birimi.
type Block struct {
	ID          BlockID
	Banner      *BannerBlock
	Photo       *PhotoBlock
	NameInfo    *NameInfoBlock
	Contact     *ContactBlock
	SaveContact *SaveContactBlock
	Sections    *SectionsBlock
	Social      *SocialBlock
	Footer      *FooterBlock
}

// Page komposizyonun nihai çıktısı: çözülmüş tema, layout parametreleri ve
// sıralı blok dizisi.
type Page struct {
	Layout LayoutConfig
	Theme  Theme
	Blocks []Block
}

// defaultFooterText footer bloğunun marka metni.
const defaultFooterText = "kartvizit.link ile oluşturuldu"

// Compose bir karttan sayfanın sıralı blok dizisini üretir. Saf fonksiyondur;
// aynı kart aynı yapısal çıktıyı verir. Hiçbir girdi için hata üretmez.
func Compose(card Card) Page {
	layout := SelectLayout(card.Layout)
	theme := ResolveTheme(card.Theme, layout)
	contactItems := BuildContactItems(card.Contact)
	order := effectiveOrder(card.ContentOrder)

	bannerVisible := card.Profile.BannerVisible()

	// Bilinen her kimlik için blok ya da nil placeholder kurulur. Nil,
	// "kavramsal olarak var ama içerik yok" demektir ve asla çizilmez.
	blockMap := map[BlockID]*Block{
		BlockBanner:      buildBanner(card, bannerVisible),
		BlockPhoto:       buildPhoto(card, layout, order, bannerVisible),
		BlockNameInfo:    buildNameInfo(card),
		BlockContact:     buildContact(contactItems),
		BlockSaveContact: buildSaveContact(card),
		BlockSections:    buildSections(card, theme),
		BlockSocial:      buildSocial(card),
	}

	var blocks []Block

	// Glass tarzı layout'larda banner saydam panelin dışında kalmak zorunda
	// olduğundan sıra listesindeki konumu ne olursa olsun ilk çizilir.
	if layout.BannerPinned {
		if b := blockMap[BlockBanner]; b != nil {
			blocks = append(blocks, *b)
		}
	}

	for _, id := range order {
		if layout.BannerPinned && id == BlockBanner {
			continue // pinli banner zaten çizildi
		}
		block, known := blockMap[id]
		if !known || block == nil {
			continue // bilinmeyen kimlik veya içeriksiz blok sessizce atlanır
		}
		blocks = append(blocks, *block)
	}

	// Footer her zaman, sıra listesinden bağımsız olarak en sona eklenir;
	// adreslenebilir ve yeniden sıralanabilir değildir.
	footerText := card.FooterText
	if footerText == "" {
		footerText = defaultFooterText
	}
	blocks = append(blocks, Block{ID: BlockFooter, Footer: &FooterBlock{Text: footerText}})

	return Page{Layout: layout, Theme: theme, Blocks: blocks}
}

// effectiveOrder kartın sıralamasını, boşsa varsayılanı döndürür.
// Bilinmeyen kimlikler elenmez; map lookup'ında zaten atlanırlar.
func effectiveOrder(contentOrder []string) []BlockID {
	if len(contentOrder) == 0 {
		return DefaultContentOrder
	}
	order := make([]BlockID, len(contentOrder))
	for i, id := range contentOrder {
		order[i] = BlockID(id)
	}
	return order
}

func buildBanner(card Card, visible bool) *Block {
	if !visible {
		return nil
	}
	return &Block{ID: BlockBanner, Banner: &BannerBlock{URL: card.Profile.BannerURL}}
}

func buildPhoto(card Card, layout LayoutConfig, order []BlockID, bannerVisible bool) *Block {
	if !card.Profile.PhotoVisible() {
		return nil
	}
	offset := 0
	if bannerVisible && photoFollowsBanner(order) {
		offset = layout.PhotoOverlap
	}
	return &Block{ID: BlockPhoto, Photo: &PhotoBlock{URL: card.Profile.PhotoURL, OverlapOffset: offset}}
}

// photoFollowsBanner bindirme kararını efektif sıra listesinden verir;
// sabit bir dizilim varsaymaz.
func photoFollowsBanner(order []BlockID) bool {
	for i, id := range order {
		if id == BlockPhoto {
			return i > 0 && order[i-1] == BlockBanner
		}
	}
	return false
}

func buildNameInfo(card Card) *Block {
	p := card.Profile
	if p.FullName == "" && p.Title == "" && p.Company == "" && p.Bio == "" {
		return nil
	}
	return &Block{ID: BlockNameInfo, NameInfo: &NameInfoBlock{
		FullName: p.FullName,
		Title:    p.Title,
		Company:  p.Company,
		Bio:      p.Bio,
		Address:  p.Address,
	}}
}

func buildContact(items []ContactItem) *Block {
	if len(items) == 0 {
		return nil
	}
	return &Block{ID: BlockContact, Contact: &ContactBlock{Items: items}}
}

func buildSaveContact(card Card) *Block {
	if !card.AllowSaveContact {
		return nil
	}
	return &Block{ID: BlockSaveContact, SaveContact: &SaveContactBlock{
		Href:  "/" + card.Key + "/vcard",
		Label: "Rehbere Ekle",
	}}
}

func buildSections(card Card, theme Theme) *Block {
	// Görünmez bölümler render'dan tamamen dışlanır, kalanlar kendi order
	// alanına göre kararlı şekilde sıralanır. Bu, dıştaki blok sıralamasından
	// bağımsız, sections bloğunun içine gömülü ikinci bir sıralama geçişidir.
	visible := make([]Section, 0, len(card.Sections))
	for _, s := range card.Sections {
		if s.SectionVisible() {
			visible = append(visible, s)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	items := make([]SectionBlock, 0, len(visible))
	for _, s := range visible {
		if rendered := RenderSection(s, card, theme); rendered != nil {
			items = append(items, *rendered)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return &Block{ID: BlockSections, Sections: &SectionsBlock{Items: items}}
}

func buildSocial(card Card) *Block {
	resolved := ResolveSocialLinks(card.SocialLinks)
	if len(resolved) == 0 {
		return nil
	}
	return &Block{ID: BlockSocial, Social: &SocialBlock{Links: resolved}}
}

// BlockIDs sayfadaki blok kimliklerini sırayla döndürür (test ve teşhis için).
func (p Page) BlockIDs() []BlockID {
	ids := make([]BlockID, len(p.Blocks))
	for i, b := range p.Blocks {
		ids[i] = b.ID
	}
	return ids
}
