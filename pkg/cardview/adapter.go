package cardview

import (
	"sort"
	"strings"

	"kartvizit.link/models"
)

// FromModel veritabanı kaydını komposizyon girdisine çevirir.
// Model bu pakete salt-okunur girer; dönüşüm her render'da yeniden yapılır.
func FromModel(card *models.Card) Card {
	if card == nil {
		return Card{}
	}
	d := card.Detail

	sections := make([]Section, 0, len(card.Sections))
	for _, s := range card.Sections {
		kind := SectionKind(strings.ToLower(strings.TrimSpace(s.Type)))
		sections = append(sections, Section{
			Kind:    kind,
			Title:   s.Title,
			Content: DecodeSectionContent(kind, []byte(s.Content)),
			Visible: s.Visible,
			Order:   s.Order,
		})
	}

	socials := make([]SocialLink, 0, len(card.SocialLinks))
	sorted := append([]models.CardSocialLink(nil), card.SocialLinks...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	for _, sl := range sorted {
		socials = append(socials, SocialLink{Platform: sl.Platform, Value: sl.Value})
	}

	return Card{
		Key:    card.Link.Key,
		Layout: d.Layout,
		Profile: Profile{
			FullName:   fullName(d),
			Title:      d.Title,
			Company:    d.Company,
			Bio:        d.Bio,
			Address:    d.Address,
			PhotoURL:   d.ProfilePictureURL,
			BannerURL:  d.BannerURL,
			ShowPhoto:  d.ShowPhoto,
			ShowBanner: d.ShowBanner,
		},
		Theme: ThemeOverrides{
			Primary:    d.PrimaryColor,
			Secondary:  d.SecondaryColor,
			Accent:     d.AccentColor,
			Text:       d.TextColor,
			Background: d.BackgroundColor,
			Card:       d.CardColor,
			FontFamily: d.FontFamily,
		},
		Contact: Contact{
			Phone:    d.PhoneNumber,
			Email:    d.Email,
			WhatsApp: d.WhatsApp,
			Website:  d.Website,
			Address:  d.Address,
		},
		ContentOrder:     []string(d.ContentOrder),
		Sections:         sections,
		SocialLinks:      socials,
		AllowSaveContact: d.AllowSaveContact,
	}
}

// fullName prefix/isim/soyisim/suffix alanlarından görünen adı kurar.
func fullName(d models.CardDetail) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{d.Prefix, d.FirstName, d.LastName, d.Suffix} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " ")
}
