package cardview

import (
	"encoding/json"
	"strings"
)

// SectionKind kapalı bölüm türü kümesi.
type SectionKind string

const (
	SectionHeading      SectionKind = "heading"
	SectionText         SectionKind = "text"
	SectionAbout        SectionKind = "about"
	SectionContact      SectionKind = "contact"
	SectionImages       SectionKind = "images"
	SectionVideos       SectionKind = "videos"
	SectionSocialLinks  SectionKind = "social_links"
	SectionLinks        SectionKind = "links"
	SectionTestimonials SectionKind = "testimonials"
)

// LinkItem links bölümündeki tek satır.
type LinkItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Testimonial testimonials bölümündeki tek referans.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// SectionContent türe göre yorumlanmış bölüm içeriği. Türün kullanmadığı
// alanlar sıfır değerinde kalır; bozuk içerik boş içeriğe indirgenir.
type SectionContent struct {
	Text         string
	URLs         []string
	Links        []LinkItem
	Testimonials []Testimonial
}

// DecodeSectionContent ham JSON içeriği bölüm türüne göre çözer.
// Hiçbir girdi için hata üretmez: şekli uymayan içerik boş içerik sayılır,
// sonuçta o bölüm hiçbir öğe çizmez.
func DecodeSectionContent(kind SectionKind, raw []byte) SectionContent {
	if len(raw) == 0 {
		return SectionContent{}
	}
	switch kind {
	case SectionHeading, SectionText, SectionAbout:
		return SectionContent{Text: decodeText(raw)}
	case SectionImages:
		return SectionContent{URLs: decodeURLList(raw, "images")}
	case SectionVideos:
		return SectionContent{URLs: decodeURLList(raw, "videos")}
	case SectionLinks:
		var links []LinkItem
		if err := json.Unmarshal(raw, &links); err == nil {
			return SectionContent{Links: links}
		}
		var wrapped struct {
			Links []LinkItem `json:"links"`
		}
		if err := json.Unmarshal(raw, &wrapped); err == nil {
			return SectionContent{Links: wrapped.Links}
		}
		return SectionContent{}
	case SectionTestimonials:
		var ts []Testimonial
		if err := json.Unmarshal(raw, &ts); err == nil {
			return SectionContent{Testimonials: ts}
		}
		var wrapped struct {
			Testimonials []Testimonial `json:"testimonials"`
		}
		if err := json.Unmarshal(raw, &wrapped); err == nil {
			return SectionContent{Testimonials: wrapped.Testimonials}
		}
		return SectionContent{}
	default:
		// contact ve social_links kart kökünden okur; bilinmeyen türler içeriksizdir.
		return SectionContent{}
	}
}

// decodeText düz string veya {"text": "..."} şeklini kabul eder.
func decodeText(raw []byte) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var wrapped struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped.Text
	}
	return ""
}

// decodeURLList düz liste veya {"<field>": [...]} şeklini kabul eder.
func decodeURLList(raw []byte, field string) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if inner, ok := wrapped[field]; ok {
			if err := json.Unmarshal(inner, &list); err == nil {
				return list
			}
		}
	}
	return nil
}

// VideoSource videos bölümündeki tek oynatılabilir kaynak.
type VideoSource struct {
	URL     string
	IsEmbed bool // true ise iframe embed, değilse doğrudan video kaynağı
}

// videoSource bilinen sağlayıcı URL'lerini embed URL'sine çevirir.
// YouTube ve Vimeo dışındaki tüm URL'ler doğrudan kaynak kabul edilir.
func videoSource(raw string) VideoSource {
	url := strings.TrimSpace(raw)

	if idx := strings.Index(url, "youtube.com/watch?v="); idx >= 0 {
		id := url[idx+len("youtube.com/watch?v="):]
		if amp := strings.IndexAny(id, "&#"); amp >= 0 {
			id = id[:amp]
		}
		return VideoSource{URL: "https://www.youtube.com/embed/" + id, IsEmbed: true}
	}
	if idx := strings.Index(url, "youtu.be/"); idx >= 0 {
		id := url[idx+len("youtu.be/"):]
		if q := strings.IndexAny(id, "?#"); q >= 0 {
			id = id[:q]
		}
		return VideoSource{URL: "https://www.youtube.com/embed/" + id, IsEmbed: true}
	}
	if idx := strings.Index(url, "vimeo.com/"); idx >= 0 && !strings.Contains(url, "player.vimeo.com") {
		id := url[idx+len("vimeo.com/"):]
		if q := strings.IndexAny(id, "?#/"); q >= 0 {
			id = id[:q]
		}
		return VideoSource{URL: "https://player.vimeo.com/video/" + id, IsEmbed: true}
	}

	return VideoSource{URL: url}
}

// SectionBlock tek bölümün render edilebilir karşılığı. Kind hangi alanların
// dolu olduğunu belirler.
type SectionBlock struct {
	Kind         SectionKind
	Title        string
	Heading      string
	Text         string
	Images       []string
	Videos       []VideoSource
	Links        []LinkItem
	Testimonials []Testimonial
	Contact      *ContactBlock
	Social       *SocialBlock
}

// RenderSection bölümü türüne göre bloğa dönüştürür. contact ve social_links
// türleri section içeriğini yok sayıp kart kökünden okur; bunlar sıralama
// amacıyla bölüm listesine kopyalanmış tekil kök verilerdir. Bilinmeyen tür
// nil döndürür, hata üretmez.
func RenderSection(section Section, card Card, theme Theme) *SectionBlock {
	switch section.Kind {
	case SectionHeading:
		if section.Content.Text == "" && section.Title == "" {
			return nil
		}
		return &SectionBlock{Kind: SectionHeading, Title: section.Title, Heading: section.Content.Text}

	case SectionText, SectionAbout:
		text := section.Content.Text
		if section.Kind == SectionAbout && text == "" {
			text = card.Profile.Bio
		}
		if text == "" {
			return nil
		}
		return &SectionBlock{Kind: section.Kind, Title: section.Title, Text: text}

	case SectionContact:
		items := BuildContactItems(card.Contact)
		if len(items) == 0 {
			return nil
		}
		return &SectionBlock{Kind: SectionContact, Title: section.Title, Contact: &ContactBlock{Items: items}}

	case SectionImages:
		if len(section.Content.URLs) == 0 {
			return nil
		}
		return &SectionBlock{Kind: SectionImages, Title: section.Title, Images: section.Content.URLs}

	case SectionVideos:
		if len(section.Content.URLs) == 0 {
			return nil
		}
		videos := make([]VideoSource, 0, len(section.Content.URLs))
		for _, u := range section.Content.URLs {
			if strings.TrimSpace(u) == "" {
				continue
			}
			videos = append(videos, videoSource(u))
		}
		if len(videos) == 0 {
			return nil
		}
		return &SectionBlock{Kind: SectionVideos, Title: section.Title, Videos: videos}

	case SectionSocialLinks:
		resolved := ResolveSocialLinks(card.SocialLinks)
		if len(resolved) == 0 {
			return nil
		}
		return &SectionBlock{Kind: SectionSocialLinks, Title: section.Title, Social: &SocialBlock{Links: resolved}}

	case SectionLinks:
		links := make([]LinkItem, 0, len(section.Content.Links))
		for _, l := range section.Content.Links {
			if l.URL == "" {
				continue
			}
			links = append(links, LinkItem{Label: l.Label, URL: ensureScheme(l.URL)})
		}
		if len(links) == 0 {
			return nil
		}
		return &SectionBlock{Kind: SectionLinks, Title: section.Title, Links: links}

	case SectionTestimonials:
		ts := make([]Testimonial, 0, len(section.Content.Testimonials))
		for _, t := range section.Content.Testimonials {
			if t.Quote == "" {
				continue
			}
			ts = append(ts, t)
		}
		if len(ts) == 0 {
			return nil
		}
		return &SectionBlock{Kind: SectionTestimonials, Title: section.Title, Testimonials: ts}

	default:
		return nil
	}
}
