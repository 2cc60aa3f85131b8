// services/tracking_service.go
package services

import (
	"context"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Public sayfadan kabul edilen olay isimleri; dışarıdan gelen başka her şey atılır.
var knownEvents = map[string]bool{
	models.EventPageView:      true,
	models.EventContactClick:  true,
	models.EventSocialClick:   true,
	models.EventVCardDownload: true,
}

// ITrackingService etkileşim olaylarını kaydeden arayüz (EventTracker).
// Best-effort çalışır: hiçbir hata çağrana yansımaz.
type ITrackingService interface {
	Track(ctx context.Context, cardID uint, event, detail string)
}

// TrackingService ITrackingService arayüzünü uygular.
type TrackingService struct {
	repo repositories.ICardEventRepository
}

// NewTrackingService yeni bir TrackingService örneği oluşturur.
func NewTrackingService() ITrackingService {
	return &TrackingService{repo: repositories.NewCardEventRepository()}
}

// Track olayı kaydeder. Bilinmeyen olay isimleri ve yazma hataları sessizce
// yutulur; telemetri kaybı render'ı asla etkilememelidir.
func (s *TrackingService) Track(ctx context.Context, cardID uint, event, detail string) {
	if cardID == 0 || !knownEvents[event] {
		return
	}
	// Rune bazında kırp; byte bazlı kesim çok baytlı karakterleri
	// (ör. Türkçe harfler) ortadan bölüp geçersiz UTF-8 üretebilir.
	if r := []rune(detail); len(r) > 100 {
		detail = string(r[:100])
	}

	record := &models.CardEvent{
		ID:     uuid.NewString(),
		CardID: cardID,
		Event:  event,
		Detail: detail,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		configslog.Log.Warn("Etkileşim olayı kaydedilemedi",
			zap.Uint("card_id", cardID), zap.String("event", event), zap.Error(err))
	}
}

var _ ITrackingService = (*TrackingService)(nil)
