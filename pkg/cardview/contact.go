package cardview

import "strings"

// ContactItem tek bir iletişim kanalından türetilen tıklanabilir aksiyon.
type ContactItem struct {
	Key    string // kanal adı; tracking detayı olarak da kullanılır
	Icon   string
	Href   string
	Label  string
	NewTab bool // yalnızca website yeni sekmede açılır
}

// Kanal öncelik sırası sabittir; kaynak kaydın alan sırası önemsizdir.
var contactChannelOrder = []string{"phone", "email", "whatsapp", "website"}

// BuildContactItems dolu iletişim alanlarından sıralı aksiyon listesi üretir.
// Boş alan eleman üretmez; hiçbir kanal birden fazla eleman üretmez.
// Saf bir kurucudur: tıklama/tracking bağlama işi tüketicinin sorumluluğudur.
func BuildContactItems(c Contact) []ContactItem {
	var items []ContactItem
	for _, channel := range contactChannelOrder {
		switch channel {
		case "phone":
			if c.Phone != "" {
				items = append(items, ContactItem{
					Key:   "phone",
					Icon:  "phone",
					Href:  "tel:" + strings.TrimSpace(c.Phone),
					Label: c.Phone,
				})
			}
		case "email":
			if c.Email != "" {
				items = append(items, ContactItem{
					Key:   "email",
					Icon:  "mail",
					Href:  "mailto:" + strings.TrimSpace(c.Email),
					Label: c.Email,
				})
			}
		case "whatsapp":
			if c.WhatsApp != "" {
				items = append(items, ContactItem{
					Key:   "whatsapp",
					Icon:  "whatsapp",
					Href:  "https://wa.me/" + digitsOnly(c.WhatsApp),
					Label: "WhatsApp",
				})
			}
		case "website":
			if c.Website != "" {
				items = append(items, ContactItem{
					Key:    "website",
					Icon:   "globe",
					Href:   ensureScheme(c.Website),
					Label:  c.Website,
					NewTab: true,
				})
			}
		}
	}
	return items
}

// digitsOnly wa.me formatı için numaradaki rakam dışı karakterleri atar.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ensureScheme şemasız girilen adreslerin önüne https ekler.
func ensureScheme(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}
