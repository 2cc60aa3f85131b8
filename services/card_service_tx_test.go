// services/card_service_tx_test.go
package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kartvizit.link/models"
	"kartvizit.link/models/helpers"
	"kartvizit.link/repositories"
)

// newTestDB bellek içi sqlite açar ve şemayı kurar.
// Her test kendi adıyla izole bir veritabanı kullanır.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Bellek içi sqlite'ta her bağlantı ayrı veritabanı görür.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.Link{},
		&models.CardDetail{},
		&models.CardSection{},
		&models.CardSocialLink{},
	))
	return db
}

func newTestCardService(db *gorm.DB) *CardService {
	return &CardService{
		repo:     repositories.NewCardRepositoryTx(db),
		linkRepo: repositories.NewLinkRepositoryTx(db),
		userRepo: repositories.NewUserRepositoryTx(db),
		db:       db,
	}
}

// seedOwnedCard bir kullanıcı ve ona ait tek bölümlü bir kartvizit oluşturur.
func seedOwnedCard(t *testing.T, db *gorm.DB) (*models.User, *models.Card) {
	t.Helper()
	user := &models.User{Name: "Ayşe Yılmaz", Email: "ayse@example.com", PasswordHash: "hash", IsEnabled: true}
	require.NoError(t, db.Create(user).Error)

	card := &models.Card{CreatorUserID: user.ID, IsEnabled: true}
	require.NoError(t, db.Create(card).Error)

	section := &models.CardSection{
		CardID:  card.ID,
		Type:    "text",
		Title:   "Hakkımda",
		Content: helpers.JSONB(`"merhaba"`),
		Order:   0,
	}
	require.NoError(t, db.Create(section).Error)

	social := &models.CardSocialLink{CardID: card.ID, Platform: "instagram", Value: "ayse", Order: 0}
	require.NoError(t, db.Create(social).Error)
	return user, card
}

func TestUpdateSectionsReplacesAll(t *testing.T) {
	db := newTestDB(t)
	user, card := seedOwnedCard(t, db)
	svc := newTestCardService(db)

	replacement := []models.CardSection{
		{Type: "text", Title: "Yeni Bölüm", Content: helpers.JSONB(`"içerik"`), Order: 1},
		{Type: "links", Title: "Bağlantılar", Content: helpers.JSONB(`[]`), Order: 2},
	}
	require.NoError(t, svc.UpdateSections(context.Background(), card.ID, user.ID, replacement))

	var got []models.CardSection
	require.NoError(t, db.Where("card_id = ?", card.ID).Order("sort_order ASC").Find(&got).Error)
	require.Len(t, got, 2)
	assert.Equal(t, "Yeni Bölüm", got[0].Title)
	assert.Equal(t, "Bağlantılar", got[1].Title)
}

// Sil + yeniden ekle adımları atomik olmalı: ekleme düşerse silme de geri
// alınmalı ve mevcut bölümler aynen kalmalı.
func TestUpdateSectionsRollsBackOnInsertFailure(t *testing.T) {
	db := newTestDB(t)
	user, card := seedOwnedCard(t, db)
	svc := newTestCardService(db)

	// Toplu ekleme hatasını tetiklemek için benzersizlik kısıtı kur.
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX uq_card_sections_card_order ON card_sections(card_id, sort_order)",
	).Error)

	// Aynı sıra değerine sahip iki bölüm: ekleme kısıt ihlaliyle düşer.
	replacement := []models.CardSection{
		{Type: "text", Title: "Birinci", Content: helpers.JSONB(`"a"`), Order: 5},
		{Type: "text", Title: "Çakışan", Content: helpers.JSONB(`"b"`), Order: 5},
	}
	err := svc.UpdateSections(context.Background(), card.ID, user.ID, replacement)
	require.ErrorIs(t, err, ErrCardUpdateFailed)

	// Başarısız değişim mevcut bölümlere dokunmamış olmalı.
	var remaining []models.CardSection
	require.NoError(t, db.Where("card_id = ?", card.ID).Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Hakkımda", remaining[0].Title)
}

func TestUpdateSocialLinksRollsBackOnInsertFailure(t *testing.T) {
	db := newTestDB(t)
	user, card := seedOwnedCard(t, db)
	svc := newTestCardService(db)

	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX uq_card_socials_card_order ON card_social_links(card_id, sort_order)",
	).Error)

	replacement := []models.CardSocialLink{
		{Platform: "linkedin", Value: "ayse", Order: 3},
		{Platform: "github", Value: "ayse", Order: 3},
	}
	err := svc.UpdateSocialLinks(context.Background(), card.ID, user.ID, replacement)
	require.ErrorIs(t, err, ErrCardUpdateFailed)

	var remaining []models.CardSocialLink
	require.NoError(t, db.Where("card_id = ?", card.ID).Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "instagram", remaining[0].Platform)
}
