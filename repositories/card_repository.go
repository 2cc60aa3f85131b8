// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"

	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kartvizit veritabanı işlemleri için arayüz.
type ICardRepository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	GetCardByID(ctx context.Context, id uint) (*models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	UpdateDetail(ctx context.Context, detail *models.CardDetail) error
	ReplaceSections(ctx context.Context, cardID uint, sections []models.CardSection) error
	ReplaceSocialLinks(ctx context.Context, cardID uint, links []models.CardSocialLink) error
	DeleteCard(ctx context.Context, id uint) error
	GetAllCards(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error)
	FindAllCardsByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Card, int64, error)
	CountCardsByUserID(ctx context.Context, userID uint) (int64, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	Base *BaseRepository[models.Card]
	Db   *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository() ICardRepository {
	db := configsdatabase.GetDB()
	return NewCardRepositoryTx(db)
}

// NewCardRepositoryTx verilen transaction/bağlantı ile repo oluşturur.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	base := NewBaseRepository[models.Card](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "is_enabled"})
	return &CardRepository{Base: base, Db: tx}
}

// cardPreloads kart aggregate'inin tüm ilişkilerini yükler.
func (r *CardRepository) cardPreloads(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).
		Preload("Link").
		Preload("Detail").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("card_sections.sort_order ASC, card_sections.id ASC")
		}).
		Preload("SocialLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("card_social_links.sort_order ASC, card_social_links.id ASC")
		})
}

// CreateCard kartı ve gömülü detayını tek seferde oluşturur.
func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	if card == nil {
		return errors.New("oluşturulacak kartvizit nil olamaz")
	}
	return r.Db.WithContext(ctx).Create(card).Error
}

// GetCardByID kartı tüm ilişkileriyle getirir.
func (r *CardRepository) GetCardByID(ctx context.Context, id uint) (*models.Card, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.cardPreloads(ctx).First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.GetCardByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// Update kartın ana kaydını kaydeder (hook'lar çalışır).
func (r *CardRepository) Update(ctx context.Context, card *models.Card) error {
	if card == nil || card.ID == 0 {
		return errors.New("güncellenecek kartvizit geçersiz")
	}
	return r.Db.WithContext(ctx).Omit("Link", "Detail", "Sections", "SocialLinks").Save(card).Error
}

// UpdateDetail kart detayını kaydeder.
func (r *CardRepository) UpdateDetail(ctx context.Context, detail *models.CardDetail) error {
	if detail == nil || detail.ID == 0 {
		return errors.New("güncellenecek kart detayı geçersiz")
	}
	return r.Db.WithContext(ctx).Save(detail).Error
}

// ReplaceSections kartın bölümlerini komple değiştirir (sil + yeniden ekle).
// Sıralama ve görünürlük düzenlemeleri tek istekte geldiği için en basit
// tutarlı yöntem budur.
func (r *CardRepository) ReplaceSections(ctx context.Context, cardID uint, sections []models.CardSection) error {
	if cardID == 0 {
		return ErrNotFound
	}
	db := r.Db.WithContext(ctx)
	if err := db.Where("card_id = ?", cardID).Delete(&models.CardSection{}).Error; err != nil {
		return err
	}
	for i := range sections {
		sections[i].ID = 0
		sections[i].CardID = cardID
	}
	if len(sections) == 0 {
		return nil
	}
	return db.Create(&sections).Error
}

// ReplaceSocialLinks kartın sosyal linklerini komple değiştirir.
func (r *CardRepository) ReplaceSocialLinks(ctx context.Context, cardID uint, links []models.CardSocialLink) error {
	if cardID == 0 {
		return ErrNotFound
	}
	db := r.Db.WithContext(ctx)
	if err := db.Where("card_id = ?", cardID).Delete(&models.CardSocialLink{}).Error; err != nil {
		return err
	}
	for i := range links {
		links[i].ID = 0
		links[i].CardID = cardID
	}
	if len(links) == 0 {
		return nil
	}
	return db.Create(&links).Error
}

// DeleteCard kartı siler; detay, bölümler ve sosyal linkler cascade ile gider.
func (r *CardRepository) DeleteCard(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	result := r.Db.WithContext(ctx).Select("Detail", "Sections", "SocialLinks", "Link").Delete(&models.Card{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAllCards tüm kartları sayfalayarak listeler (dashboard için).
func (r *CardRepository) GetAllCards(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error) {
	return r.findCardsPaginated(ctx, params, 0)
}

// FindAllCardsByUserIDPaginated kullanıcıya ait kartları sayfalayarak listeler.
func (r *CardRepository) FindAllCardsByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Card, int64, error) {
	if userID == 0 {
		return nil, 0, errors.New("geçersiz kullanıcı ID")
	}
	return r.findCardsPaginated(ctx, params, userID)
}

// findCardsPaginated ortak listeleme sorgusu; userID 0 ise filtre uygulanmaz.
func (r *CardRepository) findCardsPaginated(ctx context.Context, params queryparams.ListParams, userID uint) ([]models.Card, int64, error) {
	var results []models.Card
	var totalCount int64

	query := r.Db.WithContext(ctx).Model(&models.Card{}).
		Joins("JOIN card_details ON card_details.card_id = cards.id AND card_details.deleted_at IS NULL")

	if userID != 0 {
		query = query.Where("cards.creator_user_id = ?", userID)
	}
	if params.Name != "" {
		search := "%" + params.Name + "%"
		query = query.Where(
			"card_details.first_name ILIKE ? OR card_details.last_name ILIKE ? OR card_details.company ILIKE ?",
			search, search, search,
		)
	}
	if params.Status == "enabled" {
		query = query.Where("cards.is_enabled = true")
	} else if params.Status == "disabled" {
		query = query.Where("cards.is_enabled = false")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	// Detail alanlarına göre sıralama için tablo adı belirtilmeli.
	allowedSortColumns := map[string]string{
		"id":         "cards.id",
		"created_at": "cards.created_at",
		"is_enabled": "cards.is_enabled",
		"first_name": "card_details.first_name",
		"last_name":  "card_details.last_name",
		"company":    "card_details.company",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "cards.created_at"
	}
	orderBy := params.OrderBy
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.
		Order(orderColumn + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Select("cards.*").
		Preload("Link").
		Preload("Detail").
		Find(&results).Error
	return results, totalCount, err
}

// CountCardsByUserID kullanıcıya ait kart sayısını döndürür.
func (r *CardRepository) CountCardsByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.Card{}).
		Where("creator_user_id = ?", userID).
		Count(&count).Error
	return count, err
}

var _ ICardRepository = (*CardRepository)(nil)
