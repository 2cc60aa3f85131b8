package cardview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kartvizit.link/models"
	"kartvizit.link/models/helpers"
)

func TestFromModel(t *testing.T) {
	card := &models.Card{
		Link: models.Link{Key: "k1234567890abcdefghi"},
		Detail: models.CardDetail{
			Prefix:            "Dr.",
			FirstName:         "Ayşe",
			LastName:          "Yılmaz",
			Title:             "Kardiyolog",
			Email:             "ayse@example.com",
			Layout:            "wave",
			PrimaryColor:      "#112233",
			ContentOrder:      helpers.StringArray{"photo", "nameInfo"},
			AllowSaveContact:  true,
			ProfilePictureURL: "https://cdn/p.jpg",
		},
		Sections: []models.CardSection{
			{Type: "Videos", Content: helpers.JSONB(`["https://youtu.be/abc"]`), Order: 1},
		},
		SocialLinks: []models.CardSocialLink{
			{Platform: "github", Value: "ayse", Order: 2},
			{Platform: "instagram", Value: "ayse", Order: 1},
		},
	}

	v := FromModel(card)
	assert.Equal(t, "k1234567890abcdefghi", v.Key)
	assert.Equal(t, "Dr. Ayşe Yılmaz", v.Profile.FullName)
	assert.Equal(t, "wave", v.Layout)
	assert.Equal(t, []string{"photo", "nameInfo"}, v.ContentOrder)
	assert.Equal(t, "#112233", v.Theme.Primary)

	// Bölüm tipi normalize edilir ve içeriği çözülür.
	require.Len(t, v.Sections, 1)
	assert.Equal(t, SectionVideos, v.Sections[0].Kind)
	assert.Equal(t, []string{"https://youtu.be/abc"}, v.Sections[0].Content.URLs)

	// Sosyal linkler kendi order alanına göre sıralanır.
	require.Len(t, v.SocialLinks, 2)
	assert.Equal(t, "instagram", v.SocialLinks[0].Platform)
	assert.Equal(t, "github", v.SocialLinks[1].Platform)
}

func TestFromModelNil(t *testing.T) {
	v := FromModel(nil)
	assert.Empty(t, v.Key)
	// Nil model bile compose edilebilir; sonuç yalnızca footer içerir.
	page := Compose(v)
	assert.Equal(t, []BlockID{BlockFooter}, page.BlockIDs())
}
