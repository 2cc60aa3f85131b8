package cardview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// fullCard tüm blokları üretebilecek dolu bir kart döndürür.
func fullCard() Card {
	return Card{
		Key:    "abc123",
		Layout: LayoutClassic,
		Profile: Profile{
			FullName:  "Ayşe Yılmaz",
			Title:     "Yazılım Geliştirici",
			Company:   "Acme",
			Bio:       "Merhaba!",
			PhotoURL:  "https://cdn.example.com/p.jpg",
			BannerURL: "https://cdn.example.com/b.jpg",
		},
		Contact: Contact{
			Phone:   "+90 555 111 22 33",
			Email:   "ayse@example.com",
			Website: "https://ayse.dev",
		},
		Sections: []Section{
			{Kind: SectionText, Title: "Hakkımda", Content: SectionContent{Text: "metin"}},
		},
		SocialLinks:      []SocialLink{{Platform: "instagram", Value: "ayse"}},
		AllowSaveContact: true,
	}
}

func TestComposeFooterAlwaysLast(t *testing.T) {
	orders := [][]string{
		nil,
		{},
		{"banner", "photo", "nameInfo"},
		{"social", "contact"},
		{"footer", "banner"}, // footer sıra listesinden adreslenemez
		{"unknown", "future"},
	}
	for _, order := range orders {
		card := fullCard()
		card.ContentOrder = order
		page := Compose(card)
		ids := page.BlockIDs()
		require.NotEmpty(t, ids)
		assert.Equal(t, BlockFooter, ids[len(ids)-1], "order=%v", order)
		// Footer yalnızca bir kez ve yalnızca sonda olmalı.
		for _, id := range ids[:len(ids)-1] {
			assert.NotEqual(t, BlockFooter, id, "order=%v", order)
		}
	}
}

func TestComposeDefaultOrderWhenUnset(t *testing.T) {
	for _, order := range [][]string{nil, {}} {
		card := fullCard()
		card.ContentOrder = order
		page := Compose(card)

		want := []BlockID{
			BlockBanner, BlockPhoto, BlockNameInfo, BlockContact,
			BlockSaveContact, BlockSections, BlockSocial, BlockFooter,
		}
		assert.Equal(t, want, page.BlockIDs())
	}
}

func TestComposeUnknownIdentifiersSkipped(t *testing.T) {
	card := fullCard()
	card.ContentOrder = []string{"hologram", "nameInfo", "qrCode", "photo"}
	page := Compose(card)

	assert.Equal(t, []BlockID{BlockNameInfo, BlockPhoto, BlockFooter}, page.BlockIDs())
}

func TestComposeIdempotent(t *testing.T) {
	card := fullCard()
	card.ContentOrder = []string{"photo", "banner", "sections", "contact"}

	first := Compose(card)
	second := Compose(card)
	assert.Equal(t, first.BlockIDs(), second.BlockIDs())
	assert.Equal(t, first, second)
}

func TestComposeAbsentContentYieldsNullBlock(t *testing.T) {
	card := fullCard()
	card.Contact = Contact{}                // iletişim kanalı yok
	card.Sections = nil                     // bölüm yok
	card.SocialLinks = nil                  // sosyal link yok
	card.AllowSaveContact = false           // vCard kapalı
	card.Profile.PhotoURL = ""              // foto verisi yok
	card.Profile.ShowBanner = boolPtr(false) // banner açıkça gizli

	page := Compose(card)
	assert.Equal(t, []BlockID{BlockNameInfo, BlockFooter}, page.BlockIDs())
}

func TestComposeVisibilityFlagRules(t *testing.T) {
	tests := []struct {
		name     string
		show     *bool
		photoURL string
		visible  bool
	}{
		{"bayrak yok, veri var", nil, "https://x/p.jpg", true},
		{"bayrak true, veri var", boolPtr(true), "https://x/p.jpg", true},
		{"bayrak false, veri var", boolPtr(false), "https://x/p.jpg", false},
		{"bayrak yok, veri yok", nil, "", false},
		{"bayrak true, veri yok", boolPtr(true), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{ShowPhoto: tt.show, PhotoURL: tt.photoURL}
			assert.Equal(t, tt.visible, p.PhotoVisible())
		})
	}
}

func TestComposePhotoOverlapAdjacency(t *testing.T) {
	findPhoto := func(page Page) *PhotoBlock {
		for _, b := range page.Blocks {
			if b.ID == BlockPhoto {
				return b.Photo
			}
		}
		return nil
	}

	// Banner'ın hemen ardındaki foto bindirme offseti taşır.
	card := fullCard()
	card.ContentOrder = []string{"banner", "photo", "nameInfo"}
	photo := findPhoto(Compose(card))
	require.NotNil(t, photo)
	assert.Equal(t, SelectLayout(LayoutClassic).PhotoOverlap, photo.OverlapOffset)
	assert.Negative(t, photo.OverlapOffset)

	// Ters sıra: nötr offset.
	card.ContentOrder = []string{"photo", "banner", "nameInfo"}
	photo = findPhoto(Compose(card))
	require.NotNil(t, photo)
	assert.Zero(t, photo.OverlapOffset)

	// Banner verisi yok: komşuluk sağlansa bile nötr.
	card = fullCard()
	card.Profile.BannerURL = ""
	card.ContentOrder = []string{"banner", "photo"}
	photo = findPhoto(Compose(card))
	require.NotNil(t, photo)
	assert.Zero(t, photo.OverlapOffset)

	// Araya giren blok komşuluğu bozar.
	card = fullCard()
	card.ContentOrder = []string{"banner", "nameInfo", "photo"}
	photo = findPhoto(Compose(card))
	require.NotNil(t, photo)
	assert.Zero(t, photo.OverlapOffset)
}

func TestComposeSectionVisibilityAndSubOrder(t *testing.T) {
	card := fullCard()
	card.Sections = []Section{
		{Kind: SectionText, Title: "C", Content: SectionContent{Text: "c"}, Order: 2},
		{Kind: SectionText, Title: "Gizli", Content: SectionContent{Text: "x"}, Visible: boolPtr(false), Order: 0},
		{Kind: SectionText, Title: "A1", Content: SectionContent{Text: "a1"}, Order: 1},
		{Kind: SectionText, Title: "A2", Content: SectionContent{Text: "a2"}, Order: 1}, // eşit order: kararlı sıra
		{Kind: SectionText, Title: "B", Content: SectionContent{Text: "b"}, Order: 0},
	}

	page := Compose(card)
	var sections *SectionsBlock
	for _, b := range page.Blocks {
		if b.ID == BlockSections {
			sections = b.Sections
		}
	}
	require.NotNil(t, sections)

	titles := make([]string, 0, len(sections.Items))
	for _, s := range sections.Items {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"B", "A1", "A2", "C"}, titles)
}

func TestComposeAllSectionsInvisibleYieldsNoBlock(t *testing.T) {
	card := fullCard()
	card.Sections = []Section{
		{Kind: SectionText, Content: SectionContent{Text: "x"}, Visible: boolPtr(false)},
		{Kind: SectionText, Content: SectionContent{Text: "y"}, Visible: boolPtr(false)},
	}
	page := Compose(card)
	assert.NotContains(t, page.BlockIDs(), BlockSections)
}

func TestComposeDuplicateIdentifierRendersPerOccurrence(t *testing.T) {
	// Sıra listesinde tekrar eden kimlik her geçişte bir kez çizilir.
	card := fullCard()
	card.ContentOrder = []string{"photo", "photo", "nameInfo"}
	page := Compose(card)
	assert.Equal(t, []BlockID{BlockPhoto, BlockPhoto, BlockNameInfo, BlockFooter}, page.BlockIDs())
}

func TestComposeGlassPinsBannerFirst(t *testing.T) {
	card := fullCard()
	card.Layout = LayoutGlass
	card.ContentOrder = []string{"nameInfo", "photo", "banner", "contact"}

	page := Compose(card)
	ids := page.BlockIDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, BlockBanner, ids[0])
	// Banner pinlendiğinde sıra listesindeki konumu yinelenmemeli.
	count := 0
	for _, id := range ids {
		if id == BlockBanner {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestComposeGlassWithoutBannerData(t *testing.T) {
	card := fullCard()
	card.Layout = LayoutGlass
	card.Profile.BannerURL = ""
	page := Compose(card)
	assert.NotContains(t, page.BlockIDs(), BlockBanner)
}

// Pinli banner yapısal bir yerleşim öğesidir: sıra listesi banner'ı
// içermese bile görüntülenir, listedeki üyelik onu kapatmaz.
// Banner'ı gizlemenin yolu görünürlük bayrağı veya görsel yokluğudur.
func TestComposeGlassBannerNotInOrderStillPinned(t *testing.T) {
	card := fullCard()
	card.Layout = LayoutGlass
	card.ContentOrder = []string{"nameInfo", "photo", "contact"}

	page := Compose(card)
	ids := page.BlockIDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, BlockBanner, ids[0])

	// Görünürlük bayrağı kapalıysa pin devre dışı kalır.
	card.Profile.ShowBanner = boolPtr(false)
	page = Compose(card)
	assert.NotContains(t, page.BlockIDs(), BlockBanner)
}

func TestComposeSaveContactHref(t *testing.T) {
	card := fullCard()
	page := Compose(card)
	for _, b := range page.Blocks {
		if b.ID == BlockSaveContact {
			assert.Equal(t, "/abc123/vcard", b.SaveContact.Href)
			return
		}
	}
	t.Fatal("saveContact bloğu bulunamadı")
}
