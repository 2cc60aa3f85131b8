// services/tracking_service_test.go
package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kartvizit.link/models"
)

// cardEventRepoStub testler için bellek içi olay deposu.
type cardEventRepoStub struct {
	events []*models.CardEvent
	err    error
}

func (s *cardEventRepoStub) Create(ctx context.Context, event *models.CardEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *cardEventRepoStub) CountByCardID(ctx context.Context, cardID uint, eventName string) (int64, error) {
	return int64(len(s.events)), nil
}

func TestTrackFiltersAndRecords(t *testing.T) {
	testCases := []struct {
		name     string
		cardID   uint
		event    string
		detail   string
		recorded bool
	}{
		{"bilinen olay kaydedilir", 1, models.EventPageView, "", true},
		{"detaylı olay kaydedilir", 1, models.EventContactClick, "phone", true},
		{"bilinmeyen olay atılır", 1, "dropTable", "x", false},
		{"boş olay adı atılır", 1, "", "", false},
		{"geçersiz kart ID atılır", 0, models.EventPageView, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &cardEventRepoStub{}
			svc := &TrackingService{repo: repo}

			svc.Track(context.Background(), tc.cardID, tc.event, tc.detail)

			if !tc.recorded {
				assert.Empty(t, repo.events)
				return
			}
			require.Len(t, repo.events, 1)
			got := repo.events[0]
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tc.cardID, got.CardID)
			assert.Equal(t, tc.event, got.Event)
			assert.Equal(t, tc.detail, got.Detail)
		})
	}
}

// Detay 100 karakterde kırpılır; kesim çok baytlı karakterin ortasına
// denk gelse bile sonuç geçerli UTF-8 kalmalı.
func TestTrackTruncatesDetailOnRuneBoundary(t *testing.T) {
	repo := &cardEventRepoStub{}
	svc := &TrackingService{repo: repo}

	detail := strings.Repeat("ş", 150)
	svc.Track(context.Background(), 1, models.EventSocialClick, detail)

	require.Len(t, repo.events, 1)
	got := repo.events[0].Detail
	assert.Equal(t, 100, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ş", 100), got)
}

func TestTrackShortDetailKeptAsIs(t *testing.T) {
	repo := &cardEventRepoStub{}
	svc := &TrackingService{repo: repo}

	svc.Track(context.Background(), 1, models.EventVCardDownload, "whatsapp")

	require.Len(t, repo.events, 1)
	assert.Equal(t, "whatsapp", repo.events[0].Detail)
}

// Yazma hatası çağrana yansımamalı; olay sessizce düşer.
func TestTrackSwallowsRepositoryError(t *testing.T) {
	repo := &cardEventRepoStub{err: errors.New("bağlantı koptu")}
	svc := &TrackingService{repo: repo}

	assert.NotPanics(t, func() {
		svc.Track(context.Background(), 1, models.EventPageView, "")
	})
	assert.Empty(t, repo.events)
}
