package cardview

import "strings"

// ResolvedSocialLink tıklanabilir hale getirilmiş sosyal medya linki.
type ResolvedSocialLink struct {
	Platform string
	Icon     string
	URL      string
}

// Platform başına kanonik taban URL. Saklanan değer çıplak handle ise
// tam link bu tabanla kurulur; bilinmeyen platformlar sessizce atlanır.
var socialBaseURLs = map[string]string{
	"instagram": "https://instagram.com/",
	"twitter":   "https://twitter.com/",
	"x":         "https://x.com/",
	"linkedin":  "https://linkedin.com/in/",
	"github":    "https://github.com/",
	"facebook":  "https://facebook.com/",
	"youtube":   "https://youtube.com/@",
	"tiktok":    "https://tiktok.com/@",
}

// ResolveSocialLinks saklanan platform→değer çiftlerini tam URL'lere çevirir.
// http şemalı değerler olduğu gibi geçer; handle'lardaki baştaki @ atılır.
func ResolveSocialLinks(links []SocialLink) []ResolvedSocialLink {
	var resolved []ResolvedSocialLink
	for _, l := range links {
		platform := strings.ToLower(strings.TrimSpace(l.Platform))
		value := strings.TrimSpace(l.Value)
		if platform == "" || value == "" {
			continue
		}
		base, known := socialBaseURLs[platform]
		if !known {
			continue // verideki bilinmeyen platform anahtarları yok sayılır
		}

		url := value
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			url = base + strings.TrimPrefix(value, "@")
		}
		resolved = append(resolved, ResolvedSocialLink{
			Platform: platform,
			Icon:     platform,
			URL:      url,
		})
	}
	return resolved
}
