package cardview

// Theme çözümlenmiş efektif tema. Çözümleme sonrası her alan dolu olur;
// türetilmiş bir değerdir, hiçbir yerde kalıcı saklanmaz.
type Theme struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Background string
	Card       string
	FontFamily string
}

// ThemeOverrides kart seviyesindeki opsiyonel tema değerleri; boş alan
// "layout varsayılanını kullan" anlamına gelir.
type ThemeOverrides struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Background string
	Card       string
	FontFamily string
}

// Evrensel son çare renkleri. Layout varsayılanı da boşsa bunlar kullanılır,
// dolayısıyla çözümleme totaldir.
const (
	fallbackPrimary    = "#1f2937"
	fallbackSecondary  = "#4b5563"
	fallbackAccent     = "#3b82f6"
	fallbackText       = "#111827"
	fallbackBackground = "#f9fafb"
	fallbackCard       = "#ffffff"
)

// ResolveTheme slot başına üç aşamalı zincirle efektif temayı hesaplar:
// kart değeri → layout varsayılanı → evrensel sabit. Font için üçüncü aşama
// layout'un kendi sert varsayılanıdır (FontFallback). Hata koşulu yoktur.
func ResolveTheme(o ThemeOverrides, layout LayoutConfig) Theme {
	d := layout.Defaults
	return Theme{
		Primary:    firstNonEmpty(o.Primary, d.Primary, fallbackPrimary),
		Secondary:  firstNonEmpty(o.Secondary, d.Secondary, fallbackSecondary),
		Accent:     firstNonEmpty(o.Accent, d.Accent, fallbackAccent),
		Text:       firstNonEmpty(o.Text, d.Text, fallbackText),
		Background: firstNonEmpty(o.Background, d.Background, fallbackBackground),
		Card:       firstNonEmpty(o.Card, d.Card, fallbackCard),
		FontFamily: firstNonEmpty(o.FontFamily, d.FontFamily, layout.FontFallback),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
