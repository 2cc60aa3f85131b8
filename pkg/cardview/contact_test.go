package cardview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContactItemsChannelPriority(t *testing.T) {
	items := BuildContactItems(Contact{
		Phone:    "",
		Email:    "a@b.com",
		Website:  "https://x.com",
	})

	require.Len(t, items, 2)
	assert.Equal(t, "email", items[0].Key)
	assert.Equal(t, "mailto:a@b.com", items[0].Href)
	assert.False(t, items[0].NewTab)
	assert.Equal(t, "website", items[1].Key)
	assert.Equal(t, "https://x.com", items[1].Href)
	assert.True(t, items[1].NewTab)
}

func TestBuildContactItemsAllChannels(t *testing.T) {
	items := BuildContactItems(Contact{
		Phone:    "+90 555 000 11 22",
		Email:    "a@b.com",
		WhatsApp: "+90 (555) 000-11-22",
		Website:  "ayse.dev",
	})

	require.Len(t, items, 4)
	keys := []string{items[0].Key, items[1].Key, items[2].Key, items[3].Key}
	assert.Equal(t, []string{"phone", "email", "whatsapp", "website"}, keys)

	assert.Equal(t, "tel:+90 555 000 11 22", items[0].Href)
	assert.Equal(t, "https://wa.me/905550001122", items[2].Href)
	// Şemasız website adresi https ile tamamlanır.
	assert.Equal(t, "https://ayse.dev", items[3].Href)
}

func TestBuildContactItemsEmpty(t *testing.T) {
	assert.Empty(t, BuildContactItems(Contact{}))
}

func TestBuildContactItemsPure(t *testing.T) {
	c := Contact{Phone: "123", Email: "a@b.com"}
	first := BuildContactItems(c)
	second := BuildContactItems(c)
	assert.Equal(t, first, second)
}
