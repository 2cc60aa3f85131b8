// services/card_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/queryparams"
	"kartvizit.link/repositories"
	"kartvizit.link/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound          CardServiceError = "kartvizit bulunamadı"
	ErrCardCreationFailed    CardServiceError = "kartvizit oluşturulamadı"
	ErrCardUpdateFailed      CardServiceError = "kartvizit güncellenemedi"
	ErrCardDeletionFailed    CardServiceError = "kartvizit silinemedi"
	ErrCardForbidden         CardServiceError = "bu işlem için yetkiniz yok"
	ErrCrdInvalidInput       CardServiceError = "geçersiz girdi verisi"
	ErrCardNameRequired      CardServiceError = "isim ve soyisim zorunludur"
	ErrCrdInvalidEmail       CardServiceError = "geçersiz e-posta adresi"
	ErrCrdInvalidWebsite     CardServiceError = "geçersiz website adresi"
	ErrCrdLinkCreationFailed CardServiceError = "kartvizit için link oluşturulamadı"
)

// ICardService kartvizit işlemleri için arayüz.
type ICardService interface {
	CreateCard(ctx context.Context, creatorUserID uint, detailData models.CardDetail) (*models.Card, error)
	GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error)
	GetCardByKey(ctx context.Context, key string) (*models.Card, error) // Public erişim
	GetCardsForUserPaginated(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) // Dashboard için
	UpdateCard(ctx context.Context, id uint, updatingUserID uint, detailData models.CardDetail, isEnabled bool) error
	UpdateSections(ctx context.Context, id uint, updatingUserID uint, sections []models.CardSection) error
	UpdateSocialLinks(ctx context.Context, id uint, updatingUserID uint, links []models.CardSocialLink) error
	UpdateContentOrder(ctx context.Context, id uint, updatingUserID uint, order []string) error
	DeleteCard(ctx context.Context, id uint, deletingUserID uint) error
	GetCardCountForUser(ctx context.Context, creatorUserID uint) (int64, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo     repositories.ICardRepository
	linkRepo repositories.ILinkRepository
	userRepo repositories.IUserRepository
	db       *gorm.DB // Transaction yönetimi için
}

var detailValidator = validator.New()

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return &CardService{
		repo:     repositories.NewCardRepository(),
		linkRepo: repositories.NewLinkRepository(),
		userRepo: repositories.NewUserRepository(),
		db:       configs.GetDB(),
	}
}

// --- Yardımcı Metodlar ---

// ValidateCardDetail zorunlu alanları ve format kurallarını kontrol eder.
func ValidateCardDetail(detail models.CardDetail) error {
	if detail.FirstName == "" || detail.LastName == "" {
		return ErrCardNameRequired
	}
	if detail.Email != "" {
		if err := detailValidator.Var(detail.Email, "email"); err != nil {
			return ErrCrdInvalidEmail
		}
	}
	if detail.Website != "" {
		// Şemasız adresler de kabul edilir; şemalı girildiyse URL olmalı.
		if err := detailValidator.Var(detail.Website, "url|hostname_rfc1123"); err != nil {
			return ErrCrdInvalidWebsite
		}
	}
	return nil
}

// contextWithUserID context'e user_id ekler (BaseModel hook'ları için).
func contextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, models.ContextUserIDKey, userID)
}

// authorizeCardAccess kartın sahibi veya sistem kullanıcısı olmayan erişimi reddeder.
func (s *CardService) authorizeCardAccess(ctx context.Context, ownerID, requestingUserID uint) error {
	requestingUser, err := s.userRepo.FindByID(ctx, requestingUserID)
	if err != nil {
		configslog.Log.Error("Yetki kontrolü: kullanıcı bulunamadı", zap.Uint("userID", requestingUserID), zap.Error(err))
		return ErrCardForbidden
	}
	if !requestingUser.IsSystem && ownerID != requestingUserID {
		configslog.Log.Warn("Yetkisiz kartvizit erişim denemesi",
			zap.Uint("userID", requestingUserID), zap.Uint("ownerID", ownerID))
		return ErrCardForbidden
	}
	return nil
}

// --- Servis Metodları ---

// CreateCard yeni bir kartvizit, detayları ve linkini TEK BİR TRANSACTION içinde oluşturur.
func (s *CardService) CreateCard(ctx context.Context, creatorUserID uint, detailData models.CardDetail) (*models.Card, error) {
	if err := ValidateCardDetail(detailData); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz oluşturan kullanıcı ID", ErrCrdInvalidInput)
	}

	var createdCard *models.Card
	var generatedKey string

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, creatorUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		linkRepoTx := repositories.NewLinkRepositoryTx(tx)

		// a. Kart ve detayını oluştur
		card := models.Card{
			CreatorUserID: creatorUserID,
			IsEnabled:     true,
			Detail:        detailData,
		}
		if err := cardRepoTx.CreateCard(txCtx, &card); err != nil {
			configslog.Log.Error("Kartvizit oluşturma hatası", zap.Error(err))
			return ErrCardCreationFailed
		}

		// b. Benzersiz link key üret (transaction içinde kontrol edilerek)
		var linkKey string
		maxKeyAttempts := 5
		for i := 0; i < maxKeyAttempts; i++ {
			keyAttempt, keyErr := utils.GenerateSecureRandomString(models.LinkKeyLength)
			if keyErr != nil {
				return ErrCrdLinkCreationFailed
			}
			var count int64
			if countErr := tx.Model(&models.Link{}).Where("key = ?", keyAttempt).Count(&count).Error; countErr != nil {
				configslog.Log.Error("Link key benzersizlik kontrolü hatası", zap.Error(countErr))
				return ErrCrdLinkCreationFailed
			}
			if count == 0 {
				linkKey = keyAttempt
				break
			}
			configslog.Log.Warn("Link key çakışması, yeniden deneniyor...", zap.String("key", keyAttempt))
		}
		if linkKey == "" {
			return ErrCrdLinkCreationFailed
		}
		generatedKey = linkKey

		// c. Linki oluştur
		link := models.Link{
			Key:           linkKey,
			CardID:        card.ID,
			CreatorUserID: creatorUserID,
		}
		if err := linkRepoTx.Create(txCtx, &link); err != nil {
			return ErrCrdLinkCreationFailed
		}

		card.Link = link
		createdCard = &card
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Kartvizit ve link başarıyla oluşturuldu: CardID %d, LinkKey: %s", createdCard.ID, generatedKey)
	return createdCard, nil
}

// GetCardByID belirli bir kartviziti ID ve kullanıcı yetkisine göre getirir.
func (s *CardService) GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error) {
	card, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByID: Repo error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if err := s.authorizeCardAccess(ctx, card.CreatorUserID, requestingUserID); err != nil {
		return nil, err
	}
	return card, nil
}

// GetCardByKey public link anahtarı ile kartviziti getirir.
// Yalnızca aktif kartlar döner; diğer tüm durumlar "bulunamadı" sayılır.
func (s *CardService) GetCardByKey(ctx context.Context, key string) (*models.Card, error) {
	if key == "" {
		return nil, ErrCardNotFound
	}

	link, err := s.linkRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByKey: FindByKey error", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	card, err := s.repo.GetCardByID(ctx, link.CardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("Tutarsız veri: Link var ama kartvizit yok",
				zap.Uint("link_id", link.ID), zap.Uint("card_id", link.CardID))
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByKey: GetCardByID error", zap.Uint("card_id", link.CardID), zap.Error(err))
		return nil, err
	}

	if !card.IsEnabled {
		configslog.Log.Info("Pasif kartvizit erişim denemesi", zap.String("key", key), zap.Uint("card_id", card.ID))
		return nil, ErrCardNotFound
	}

	return card, nil
}

// GetCardsForUserPaginated kullanıcıya ait kartvizitleri sayfalayarak getirir.
func (s *CardService) GetCardsForUserPaginated(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if creatorUserID == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	params.Validate()

	cards, totalCount, err := s.repo.FindAllCardsByUserIDPaginated(ctx, creatorUserID, params)
	if err != nil {
		configslog.Log.Error("Kullanıcı kartvizitleri alınırken hata", zap.Uint("creatorUserID", creatorUserID), zap.Error(err))
		return nil, err
	}
	return paginate(cards, totalCount, params), nil
}

// GetAllCardsPaginated tüm kartvizitleri sayfalayarak getirir (dashboard).
func (s *CardService) GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	cards, totalCount, err := s.repo.GetAllCards(ctx, params)
	if err != nil {
		configslog.Log.Error("Kartvizitler listelenirken hata", zap.Error(err))
		return nil, err
	}
	return paginate(cards, totalCount, params), nil
}

func paginate(cards []models.Card, totalCount int64, params queryparams.ListParams) *queryparams.PaginatedResult {
	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}
}

// UpdateCard mevcut bir kartviziti ve detaylarını günceller.
func (s *CardService) UpdateCard(ctx context.Context, id uint, updatingUserID uint, detailData models.CardDetail, isEnabled bool) error {
	if err := ValidateCardDetail(detailData); err != nil {
		return fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}
	if id == 0 || updatingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya güncelleyen kullanıcı ID", ErrCrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, updatingUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		// a. Mevcut kaydı kilitli olarak al
		var existingCard models.Card
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Detail").First(&existingCard, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("UpdateCard: kayıt bulunamadı (kilitli)", zap.Uint("id", id), zap.Error(err))
			return err
		}

		// b. Yetki kontrolü
		requestingUser, userErr := userRepoTx.FindByID(txCtx, updatingUserID)
		if userErr != nil {
			return ErrCardForbidden
		}
		if !requestingUser.IsSystem && existingCard.CreatorUserID != updatingUserID {
			return ErrCardForbidden
		}

		// c. Ana model ve detay verilerini güncelle
		existingCard.IsEnabled = isEnabled

		existingDetail := existingCard.Detail
		existingDetail.Prefix = detailData.Prefix
		existingDetail.FirstName = detailData.FirstName
		existingDetail.LastName = detailData.LastName
		existingDetail.Suffix = detailData.Suffix
		existingDetail.Title = detailData.Title
		existingDetail.Company = detailData.Company
		existingDetail.Bio = detailData.Bio
		existingDetail.Email = detailData.Email
		existingDetail.PhoneNumber = detailData.PhoneNumber
		existingDetail.WhatsApp = detailData.WhatsApp
		existingDetail.Website = detailData.Website
		existingDetail.Address = detailData.Address
		existingDetail.ProfilePictureURL = detailData.ProfilePictureURL
		existingDetail.BannerURL = detailData.BannerURL
		existingDetail.ShowPhoto = detailData.ShowPhoto
		existingDetail.ShowBanner = detailData.ShowBanner
		existingDetail.Layout = detailData.Layout
		existingDetail.PrimaryColor = detailData.PrimaryColor
		existingDetail.SecondaryColor = detailData.SecondaryColor
		existingDetail.AccentColor = detailData.AccentColor
		existingDetail.TextColor = detailData.TextColor
		existingDetail.BackgroundColor = detailData.BackgroundColor
		existingDetail.CardColor = detailData.CardColor
		existingDetail.FontFamily = detailData.FontFamily
		existingDetail.AllowSaveContact = detailData.AllowSaveContact

		if err := cardRepoTx.UpdateDetail(txCtx, &existingDetail); err != nil {
			configslog.Log.Error("Kartvizit detayı güncellenirken transaction hatası", zap.Uint("detailID", existingDetail.ID), zap.Error(err))
			return ErrCardUpdateFailed
		}
		if err := cardRepoTx.Update(txCtx, &existingCard); err != nil {
			configslog.Log.Error("Kartvizit ana bilgisi güncellenirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrCardUpdateFailed
		}
		return nil
	})

	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Kartvizit başarıyla güncellendi: ID %d", id)
	return nil
}

// UpdateSections kartın içerik bölümlerini komple değiştirir.
// Sil + yeniden ekle tek transaction içinde yapılır; ekleme başarısız olursa
// mevcut bölümler korunur.
func (s *CardService) UpdateSections(ctx context.Context, id uint, updatingUserID uint, sections []models.CardSection) error {
	card, err := s.GetCardByID(ctx, id, updatingUserID) // Yetki kontrolü içerir
	if err != nil {
		return err
	}
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, updatingUserID)
		return repositories.NewCardRepositoryTx(tx).ReplaceSections(txCtx, card.ID, sections)
	})
	if txErr != nil {
		configslog.Log.Error("Bölümler güncellenirken hata", zap.Uint("id", id), zap.Error(txErr))
		return ErrCardUpdateFailed
	}
	return nil
}

// UpdateSocialLinks kartın sosyal linklerini komple değiştirir.
// Bölümlerde olduğu gibi değişim tek transaction içinde yapılır.
func (s *CardService) UpdateSocialLinks(ctx context.Context, id uint, updatingUserID uint, links []models.CardSocialLink) error {
	card, err := s.GetCardByID(ctx, id, updatingUserID)
	if err != nil {
		return err
	}
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, updatingUserID)
		return repositories.NewCardRepositoryTx(tx).ReplaceSocialLinks(txCtx, card.ID, links)
	})
	if txErr != nil {
		configslog.Log.Error("Sosyal linkler güncellenirken hata", zap.Uint("id", id), zap.Error(txErr))
		return ErrCardUpdateFailed
	}
	return nil
}

// UpdateContentOrder kartın blok sıralamasını günceller. Liste içeriği burada
// doğrulanmaz: bilinmeyen kimlikler komposizyonda zaten sessizce atlanır.
func (s *CardService) UpdateContentOrder(ctx context.Context, id uint, updatingUserID uint, order []string) error {
	card, err := s.GetCardByID(ctx, id, updatingUserID)
	if err != nil {
		return err
	}
	txCtx := contextWithUserID(ctx, updatingUserID)
	detail := card.Detail
	detail.ContentOrder = order
	if err := s.repo.UpdateDetail(txCtx, &detail); err != nil {
		configslog.Log.Error("İçerik sıralaması güncellenirken hata", zap.Uint("id", id), zap.Error(err))
		return ErrCardUpdateFailed
	}
	return nil
}

// DeleteCard bir kartviziti ve ilişkili linkini siler.
func (s *CardService) DeleteCard(ctx context.Context, id uint, deletingUserID uint) error {
	if id == 0 || deletingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya silen kullanıcı ID", ErrCrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, deletingUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		linkRepoTx := repositories.NewLinkRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		var cardToDelete models.Card
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cardToDelete, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("DeleteCard: kayıt bulunamadı (kilitli)", zap.Uint("id", id), zap.Error(err))
			return err
		}

		requestingUser, userErr := userRepoTx.FindByID(txCtx, deletingUserID)
		if userErr != nil {
			return ErrCardForbidden
		}
		if !requestingUser.IsSystem && cardToDelete.CreatorUserID != deletingUserID {
			return ErrCardForbidden
		}

		if err := linkRepoTx.DeleteByCardID(txCtx, cardToDelete.ID); err != nil {
			configslog.Log.Error("Link silinirken transaction hatası", zap.Uint("card_id", cardToDelete.ID), zap.Error(err))
			return ErrCardDeletionFailed
		}
		if err := cardRepoTx.DeleteCard(txCtx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("Kartvizit silinirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrCardDeletionFailed
		}
		return nil
	})

	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Kartvizit ve ilişkili link başarıyla silindi: Card ID %d", id)
	return nil
}

// GetCardCountForUser kullanıcıya ait kartvizit sayısını alır.
func (s *CardService) GetCardCountForUser(ctx context.Context, creatorUserID uint) (int64, error) {
	count, err := s.repo.CountCardsByUserID(ctx, creatorUserID)
	if err != nil {
		configslog.Log.Error("Kullanıcı kartvizit sayısı alınırken hata", zap.Uint("creatorUserID", creatorUserID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

var _ ICardService = (*CardService)(nil)
