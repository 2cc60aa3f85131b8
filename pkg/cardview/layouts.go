package cardview

// Layout kimlikleri. Yeni bir layout eklemek = yeni bir LayoutConfig tanımlayıp
// registry'ye kaydetmek; genişleme yüzeyi bundan ibarettir.
const (
	LayoutClassic = "classic"
	LayoutBanner  = "banner"
	LayoutWave    = "wave"
	LayoutMinimal = "minimal"
	LayoutBold    = "bold"
	LayoutGlass   = "glass"
)

// DefaultLayoutID bilinmeyen veya boş kimlikler için kullanılan layout.
const DefaultLayoutID = LayoutClassic

const (
	fontSans  = "'Inter', 'Helvetica Neue', sans-serif"
	fontSerif = "'Playfair Display', Georgia, serif"
)

// LayoutConfig tek bir görsel layout'un komposizyon parametreleri.
// Sıralama ve görünürlük semantiği tüm layout'larda aynıdır; burada yalnızca
// görsel farklar (renk varsayılanları, offset, pinleme) parametrelenir.
type LayoutConfig struct {
	ID       string
	Defaults Theme // layout'un bildirdiği varsayılanlar; boş slot evrensel sabite düşer

	// FontFallback layout'a özgü sert font varsayılanı (serif/sans ailesi).
	FontFallback string

	// PhotoOverlap fotoğraf banner'ın hemen ardından geliyorsa uygulanan
	// negatif dikey offset (px). 0 = layout üst üste bindirme yapmaz.
	PhotoOverlap int

	// PanelOpacity içerik panelinin opaklığı (glass tarzı layout'lar < 1).
	PanelOpacity float64

	// BannerPinned true ise banner, sıra listesindeki konumuna bakılmaksızın
	// her zaman ilk çizilir; saydam panelin dışında kalması gerekir.
	BannerPinned bool
}

var layoutRegistry = map[string]LayoutConfig{
	LayoutClassic: {
		ID: LayoutClassic,
		Defaults: Theme{
			Primary:    "#2563eb",
			Secondary:  "#64748b",
			Background: "#f8fafc",
		},
		FontFallback: fontSans,
		PhotoOverlap: -48,
		PanelOpacity: 1,
	},
	LayoutBanner: {
		ID: LayoutBanner,
		Defaults: Theme{
			Primary:    "#0f766e",
			Accent:     "#f59e0b",
			Background: "#f0fdfa",
		},
		FontFallback: fontSans,
		PhotoOverlap: -64,
		PanelOpacity: 1,
	},
	LayoutWave: {
		ID: LayoutWave,
		Defaults: Theme{
			Primary:    "#7c3aed",
			Secondary:  "#a78bfa",
			Background: "#faf5ff",
		},
		FontFallback: fontSans,
		PhotoOverlap: -40,
		PanelOpacity: 1,
	},
	LayoutMinimal: {
		ID: LayoutMinimal,
		Defaults: Theme{
			Primary: "#18181b",
			Text:    "#27272a",
			Card:    "#fafafa",
		},
		FontFallback: fontSans,
		PhotoOverlap: 0, // minimal layout bindirme kullanmaz
		PanelOpacity: 1,
	},
	LayoutBold: {
		ID: LayoutBold,
		Defaults: Theme{
			Primary:    "#b91c1c",
			Accent:     "#fbbf24",
			Text:       "#1c1917",
			Background: "#fffbeb",
		},
		FontFallback: fontSerif,
		PhotoOverlap: -56,
		PanelOpacity: 1,
	},
	LayoutGlass: {
		ID: LayoutGlass,
		Defaults: Theme{
			Primary:    "#0ea5e9",
			Background: "#0f172a",
			Text:       "#f1f5f9",
		},
		FontFallback: fontSans,
		PhotoOverlap: -48,
		PanelOpacity: 0.72,
		BannerPinned: true, // banner saydam panelin dışında, her zaman en üstte
	},
}

// SelectLayout kimliğe karşılık gelen layout konfigürasyonunu döndürür.
// Bilinmeyen veya boş kimlik hata üretmez, classic'e düşer.
func SelectLayout(id string) LayoutConfig {
	if cfg, ok := layoutRegistry[id]; ok {
		return cfg
	}
	return layoutRegistry[DefaultLayoutID]
}

// LayoutIDs kayıtlı tüm layout kimliklerini döndürür (panel formu için).
func LayoutIDs() []string {
	return []string{LayoutClassic, LayoutBanner, LayoutWave, LayoutMinimal, LayoutBold, LayoutGlass}
}
