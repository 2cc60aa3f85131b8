// Package cardview public kartvizit sayfasının komposizyon çekirdeğidir.
// Bir Card girdisinden efektif temayı çözer, iletişim aksiyonlarını üretir,
// içerik bölümlerini tipine göre yorumlar ve seçilen layout'a göre sıralı
// blok dizisini oluşturur. Paket saftır: aynı Card aynı çıktıyı üretir,
// I/O yapmaz ve hiçbir durumda hata fırlatmaz (eksik/bozuk veri ilgili
// bloğun atlanmasıyla sonuçlanır).
package cardview

// Card komposizyonun girdisi olan salt-okunur kartvizit görünümü.
// Üst katman (editör, servisler) tarafından doldurulur; bu paket değiştirmez.
type Card struct {
	Key          string // public link anahtarı (vCard linki için)
	Layout       string // layout kimliği; boş/bilinmeyen ise classic
	Profile      Profile
	Theme        ThemeOverrides
	Contact      Contact
	ContentOrder []string // boş ise DefaultContentOrder kullanılır
	Sections     []Section
	SocialLinks  []SocialLink
	AllowSaveContact bool
	FooterText       string // boş ise varsayılan marka metni
}

// Profile kartın kimlik alanları.
type Profile struct {
	FullName  string
	Title     string
	Company   string
	Bio       string
	Address   string
	PhotoURL  string
	BannerURL string
	// nil = görünür (bayrak hiç ayarlanmamış). Açık false veriyi ezerek gizler,
	// veri yokluğu da bayrağı ezerek gizler.
	ShowPhoto  *bool
	ShowBanner *bool
}

// PhotoVisible fotoğraf bloğunun görünürlük kuralı: bayrak açık false değil VE veri mevcut.
func (p Profile) PhotoVisible() bool {
	return (p.ShowPhoto == nil || *p.ShowPhoto) && p.PhotoURL != ""
}

// BannerVisible banner bloğu için simetrik görünürlük kuralı.
func (p Profile) BannerVisible() bool {
	return (p.ShowBanner == nil || *p.ShowBanner) && p.BannerURL != ""
}

// Contact kart kökündeki yapılandırılmış iletişim alanları.
type Contact struct {
	Phone    string
	Email    string
	WhatsApp string
	Website  string
	Address  string
}

// SocialLink platform→değer çifti; değer tam URL veya çıplak handle olabilir.
type SocialLink struct {
	Platform string
	Value    string
}

// Section kullanıcı tanımlı tek içerik bölümü.
type Section struct {
	Kind    SectionKind
	Title   string
	Content SectionContent
	Visible *bool // nil = görünür; açık false bölümü tamamen dışlar
	Order   int
}

// SectionVisible bölümün render'a dahil olup olmayacağını söyler.
func (s Section) SectionVisible() bool {
	return s.Visible == nil || *s.Visible
}
