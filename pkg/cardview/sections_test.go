package cardview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSectionContentText(t *testing.T) {
	assert.Equal(t, "merhaba", DecodeSectionContent(SectionText, []byte(`"merhaba"`)).Text)
	assert.Equal(t, "merhaba", DecodeSectionContent(SectionText, []byte(`{"text":"merhaba"}`)).Text)
	// Bozuk şekil boş içeriğe indirgenir, hata üretmez.
	assert.Empty(t, DecodeSectionContent(SectionText, []byte(`42`)).Text)
	assert.Empty(t, DecodeSectionContent(SectionText, []byte(`{bozuk`)).Text)
}

func TestDecodeSectionContentVideos(t *testing.T) {
	list := DecodeSectionContent(SectionVideos, []byte(`["https://a.mp4","https://b.mp4"]`))
	assert.Equal(t, []string{"https://a.mp4", "https://b.mp4"}, list.URLs)

	obj := DecodeSectionContent(SectionVideos, []byte(`{"videos":["https://a.mp4"]}`))
	assert.Equal(t, []string{"https://a.mp4"}, obj.URLs)

	// Ne liste ne de videos alanı taşıyan obje: boş liste.
	assert.Empty(t, DecodeSectionContent(SectionVideos, []byte(`{"other":1}`)).URLs)
	assert.Empty(t, DecodeSectionContent(SectionVideos, []byte(`"tek-string"`)).URLs)
}

func TestDecodedSectionContentImagesAndLinks(t *testing.T) {
	imgs := DecodeSectionContent(SectionImages, []byte(`{"images":["https://i/1.jpg"]}`))
	assert.Equal(t, []string{"https://i/1.jpg"}, imgs.URLs)

	links := DecodeSectionContent(SectionLinks, []byte(`[{"label":"Blog","url":"https://blog.x"}]`))
	require.Len(t, links.Links, 1)
	assert.Equal(t, "Blog", links.Links[0].Label)
}

func TestVideoSourceProviderShapes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantURL string
		isEmbed bool
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"youtube watch ek parametre", "https://youtube.com/watch?v=abc123&t=10s", "https://www.youtube.com/embed/abc123", true},
		{"youtu.be kısa link", "https://youtu.be/abc123?si=x", "https://www.youtube.com/embed/abc123", true},
		{"vimeo", "https://vimeo.com/123456789", "https://player.vimeo.com/video/123456789", true},
		{"doğrudan mp4", "https://cdn.example.com/v.mp4", "https://cdn.example.com/v.mp4", false},
		{"zaten embed olan vimeo", "https://player.vimeo.com/video/1", "https://player.vimeo.com/video/1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := videoSource(tt.in)
			assert.Equal(t, tt.wantURL, got.URL)
			assert.Equal(t, tt.isEmbed, got.IsEmbed)
		})
	}
}

func TestRenderSectionContactReadsCardRoot(t *testing.T) {
	card := Card{Contact: Contact{Email: "a@b.com"}}
	// Section içeriği ne olursa olsun yok sayılır, kart kökü okunur.
	section := Section{Kind: SectionContact, Title: "İletişim", Content: SectionContent{Text: "çöp"}}

	block := RenderSection(section, card, Theme{})
	require.NotNil(t, block)
	require.NotNil(t, block.Contact)
	require.Len(t, block.Contact.Items, 1)
	assert.Equal(t, "email", block.Contact.Items[0].Key)

	// Kart kökünde kanal yoksa bölüm de yok.
	assert.Nil(t, RenderSection(section, Card{}, Theme{}))
}

func TestRenderSectionSocialLinksReadsCardRoot(t *testing.T) {
	card := Card{SocialLinks: []SocialLink{{Platform: "github", Value: "ayse"}}}
	section := Section{Kind: SectionSocialLinks}

	block := RenderSection(section, card, Theme{})
	require.NotNil(t, block)
	require.NotNil(t, block.Social)
	assert.Equal(t, "https://github.com/ayse", block.Social.Links[0].URL)
}

func TestRenderSectionUnknownKindYieldsNil(t *testing.T) {
	assert.Nil(t, RenderSection(Section{Kind: "hologram"}, Card{}, Theme{}))
	assert.Nil(t, RenderSection(Section{Kind: ""}, Card{}, Theme{}))
}

func TestRenderSectionAboutFallsBackToBio(t *testing.T) {
	card := Card{Profile: Profile{Bio: "profil biyosu"}}
	block := RenderSection(Section{Kind: SectionAbout}, card, Theme{})
	require.NotNil(t, block)
	assert.Equal(t, "profil biyosu", block.Text)
}

func TestRenderSectionEmptyContentYieldsNil(t *testing.T) {
	assert.Nil(t, RenderSection(Section{Kind: SectionText}, Card{}, Theme{}))
	assert.Nil(t, RenderSection(Section{Kind: SectionImages}, Card{}, Theme{}))
	assert.Nil(t, RenderSection(Section{Kind: SectionVideos, Content: SectionContent{URLs: []string{"  "}}}, Card{}, Theme{}))
	assert.Nil(t, RenderSection(Section{Kind: SectionTestimonials, Content: SectionContent{Testimonials: []Testimonial{{Author: "X"}}}}, Card{}, Theme{}))
}

func TestRenderSectionLinksSchemeCompletion(t *testing.T) {
	section := Section{
		Kind: SectionLinks,
		Content: SectionContent{Links: []LinkItem{
			{Label: "Blog", URL: "blog.example.com"},
			{Label: "Boş", URL: ""},
		}},
	}
	block := RenderSection(section, Card{}, Theme{})
	require.NotNil(t, block)
	require.Len(t, block.Links, 1)
	assert.Equal(t, "https://blog.example.com", block.Links[0].URL)
}
