// services/vcard_service.go
package services

import (
	"strings"

	"kartvizit.link/models"
)

// IVCardService "rehbere ekle" aksiyonu için vCard üretimi arayüzü.
type IVCardService interface {
	BuildVCard(card *models.Card) []byte
	FileName(card *models.Card) string
}

// VCardService IVCardService arayüzünü uygular. vCard 3.0 üretir.
type VCardService struct{}

// NewVCardService yeni bir VCardService örneği oluşturur.
func NewVCardService() IVCardService {
	return &VCardService{}
}

// BuildVCard karttan vCard 3.0 baytlarını üretir. Boş alanlar satır üretmez;
// üretim saf fonksiyondur ve hata koşulu yoktur.
func (s *VCardService) BuildVCard(card *models.Card) []byte {
	if card == nil {
		return nil
	}
	d := card.Detail

	var b strings.Builder
	writeLine := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(key)
		b.WriteString(":")
		b.WriteString(escapeVCardValue(value))
		b.WriteString("\r\n")
	}

	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")

	// N: soyisim;isim;;önek;sonek
	b.WriteString("N:")
	b.WriteString(escapeVCardValue(d.LastName))
	b.WriteString(";")
	b.WriteString(escapeVCardValue(d.FirstName))
	b.WriteString(";;")
	b.WriteString(escapeVCardValue(d.Prefix))
	b.WriteString(";")
	b.WriteString(escapeVCardValue(d.Suffix))
	b.WriteString("\r\n")

	writeLine("FN", strings.TrimSpace(strings.Join(nonEmpty(d.Prefix, d.FirstName, d.LastName, d.Suffix), " ")))
	writeLine("ORG", d.Company)
	writeLine("TITLE", d.Title)
	writeLine("TEL;TYPE=CELL", d.PhoneNumber)
	writeLine("EMAIL;TYPE=INTERNET", d.Email)
	writeLine("URL", d.Website)
	if d.Address != "" {
		b.WriteString("ADR;TYPE=WORK:;;" + escapeVCardValue(d.Address) + ";;;\r\n")
	}
	writeLine("NOTE", d.Bio)
	writeLine("PHOTO;VALUE=URI", d.ProfilePictureURL)

	b.WriteString("END:VCARD\r\n")
	return []byte(b.String())
}

// FileName indirilecek dosyanın adını üretir.
func (s *VCardService) FileName(card *models.Card) string {
	if card == nil {
		return "kartvizit.vcf"
	}
	name := strings.TrimSpace(card.Detail.FirstName + "-" + card.Detail.LastName)
	name = strings.Trim(name, "-")
	if name == "" {
		return "kartvizit.vcf"
	}
	return strings.ToLower(name) + ".vcf"
}

// escapeVCardValue vCard 3.0 özel karakterlerini kaçışlar.
func escapeVCardValue(v string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(v)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

var _ IVCardService = (*VCardService)(nil)
