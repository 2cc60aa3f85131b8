package cardview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSocialLinks(t *testing.T) {
	tests := []struct {
		name     string
		link     SocialLink
		wantURL  string
		resolved bool
	}{
		{"çıplak handle", SocialLink{Platform: "instagram", Value: "myhandle"}, "https://instagram.com/myhandle", true},
		{"tam URL olduğu gibi geçer", SocialLink{Platform: "instagram", Value: "https://instagram.com/myhandle"}, "https://instagram.com/myhandle", true},
		{"@ öneki atılır", SocialLink{Platform: "twitter", Value: "@ayse"}, "https://twitter.com/ayse", true},
		{"linkedin taban yolu", SocialLink{Platform: "linkedin", Value: "ayse-yilmaz"}, "https://linkedin.com/in/ayse-yilmaz", true},
		{"büyük harf platform", SocialLink{Platform: "GitHub", Value: "ayse"}, "https://github.com/ayse", true},
		{"bilinmeyen platform atlanır", SocialLink{Platform: "myspace", Value: "ayse"}, "", false},
		{"boş değer atlanır", SocialLink{Platform: "github", Value: ""}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSocialLinks([]SocialLink{tt.link})
			if !tt.resolved {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantURL, got[0].URL)
		})
	}
}

func TestResolveSocialLinksPreservesOrder(t *testing.T) {
	got := ResolveSocialLinks([]SocialLink{
		{Platform: "github", Value: "a"},
		{Platform: "yok-boyle-platform", Value: "b"},
		{Platform: "instagram", Value: "c"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "github", got[0].Platform)
	assert.Equal(t, "instagram", got[1].Platform)
}
