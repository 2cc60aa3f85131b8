// repositories/card_event_repository.go
package repositories

import (
	"context"
	"errors"

	"kartvizit.link/configs"
	"kartvizit.link/models"

	"gorm.io/gorm"
)

// ICardEventRepository etkileşim olayları için arayüz.
type ICardEventRepository interface {
	Create(ctx context.Context, event *models.CardEvent) error
	CountByCardID(ctx context.Context, cardID uint, eventName string) (int64, error)
}

// CardEventRepository ICardEventRepository arayüzünü uygular.
type CardEventRepository struct {
	db *gorm.DB
}

// NewCardEventRepository yeni bir CardEventRepository örneği oluşturur.
func NewCardEventRepository() ICardEventRepository {
	return &CardEventRepository{db: configs.GetDB()}
}

func (r *CardEventRepository) Create(ctx context.Context, event *models.CardEvent) error {
	if event == nil {
		return errors.New("oluşturulacak olay nil olamaz")
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// CountByCardID karta ait olay sayısını döndürür; eventName boş ise tümü sayılır.
func (r *CardEventRepository) CountByCardID(ctx context.Context, cardID uint, eventName string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.CardEvent{}).Where("card_id = ?", cardID)
	if eventName != "" {
		query = query.Where("event = ?", eventName)
	}
	err := query.Count(&count).Error
	return count, err
}

var _ ICardEventRepository = (*CardEventRepository)(nil)
