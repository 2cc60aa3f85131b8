// repositories/link_repository.go
package repositories

import (
	"context"
	"errors"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ILinkRepository link veritabanı işlemleri için arayüz.
type ILinkRepository interface {
	Create(ctx context.Context, link *models.Link) error
	FindByKey(ctx context.Context, key string) (*models.Link, error)
	KeyExists(ctx context.Context, key string) (bool, error)
	DeleteByCardID(ctx context.Context, cardID uint) error
}

// LinkRepository ILinkRepository arayüzünü uygular.
type LinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository yeni bir LinkRepository örneği oluşturur.
func NewLinkRepository() ILinkRepository {
	return &LinkRepository{db: configs.GetDB()}
}

// NewLinkRepositoryTx verilen transaction ile repo oluşturur.
func NewLinkRepositoryTx(tx *gorm.DB) ILinkRepository {
	return &LinkRepository{db: tx}
}

// Create yeni bir link kaydı oluşturur.
func (r *LinkRepository) Create(ctx context.Context, link *models.Link) error {
	if link == nil {
		return errors.New("oluşturulacak link nil olamaz")
	}
	return r.db.WithContext(ctx).Create(link).Error
}

// FindByKey benzersiz anahtar ile link kaydını bulur.
func (r *LinkRepository) FindByKey(ctx context.Context, key string) (*models.Link, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var link models.Link
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("LinkRepository.FindByKey: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &link, nil
}

// KeyExists anahtarın kullanımda olup olmadığını kontrol eder.
func (r *LinkRepository) KeyExists(ctx context.Context, key string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Link{}).Where("key = ?", key).Count(&count).Error
	return count > 0, err
}

// DeleteByCardID karta bağlı linki siler.
func (r *LinkRepository) DeleteByCardID(ctx context.Context, cardID uint) error {
	if cardID == 0 {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).Where("card_id = ?", cardID).Delete(&models.Link{}).Error
}

var _ ILinkRepository = (*LinkRepository)(nil)
