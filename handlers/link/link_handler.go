package handlers

import (
	"errors"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/cardview"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicLinkHandler public kartvizit isteklerini yönetir.
type PublicLinkHandler struct {
	cardService     services.ICardService
	vcardService    services.IVCardService
	trackingService services.ITrackingService
}

// NewPublicLinkHandler yeni bir PublicLinkHandler örneği oluşturur.
func NewPublicLinkHandler() *PublicLinkHandler {
	return &PublicLinkHandler{
		cardService:     services.NewCardService(),
		vcardService:    services.NewVCardService(),
		trackingService: services.NewTrackingService(),
	}
}

// findCard key formatını kontrol edip aktif kartı getirir.
func (h *PublicLinkHandler) findCard(c *fiber.Ctx) (*models.Card, error) {
	key := c.Params("key")
	if len(key) != models.LinkKeyLength {
		configslog.SLog.Warnf("Geçersiz formatta link anahtarı denendi: %s", key)
		return nil, services.ErrCardNotFound
	}
	return h.cardService.GetCardByKey(c.UserContext(), key)
}

// HandleCard gelen :key parametresine göre kartvizit sayfasını gösterir.
// Kart kaydı komposizyon çekirdeğinden geçirilir ve sıralı blok dizisi
// view'a verilir; layout'a özgü tüm kararlar cardview tarafında alınmıştır.
func (h *PublicLinkHandler) HandleCard(c *fiber.Ctx) error {
	card, err := h.findCard(c)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return h.renderNotFound(c, "Kartvizit Bulunamadı")
		}
		configslog.Log.Error("HandleCard: GetCardByKey error", zap.String("key", c.Params("key")), zap.Error(err))
		return h.renderError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}

	page := cardview.Compose(cardview.FromModel(card))

	// Telemetri best-effort: hata render'ı etkilemez.
	h.trackingService.Track(c.UserContext(), card.ID, models.EventPageView, "")

	return c.Render("public/card_view", fiber.Map{
		"Title":  card.Detail.FirstName + " " + card.Detail.LastName,
		"Key":    card.Link.Key,
		"Page":   page,
		"Theme":  page.Theme,
		"Layout": page.Layout,
		"Blocks": page.Blocks,
	}, "layouts/public_layout")
}

// HandleVCard "rehbere ekle" aksiyonu: vCard dosyasını indirir.
// Her tıklama tam bir tracking çağrısı ve tam bir indirme üretir.
func (h *PublicLinkHandler) HandleVCard(c *fiber.Ctx) error {
	card, err := h.findCard(c)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return h.renderNotFound(c, "Kartvizit Bulunamadı")
		}
		configslog.Log.Error("HandleVCard: GetCardByKey error", zap.String("key", c.Params("key")), zap.Error(err))
		return h.renderError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}

	if !card.Detail.AllowSaveContact {
		return h.renderNotFound(c, "Bu kartvizit için rehbere ekleme kapalı")
	}

	h.trackingService.Track(c.UserContext(), card.ID, models.EventVCardDownload, "")

	payload := h.vcardService.BuildVCard(card)
	c.Set(fiber.HeaderContentType, "text/vcard; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+h.vcardService.FileName(card)+`"`)
	return c.Send(payload)
}

// trackRequest tıklama telemetrisi gövdesi.
type trackRequest struct {
	Event  string `json:"event" form:"event"`
	Detail string `json:"detail" form:"detail"`
}

// HandleTrack public sayfadan gelen tıklama olaylarını kaydeder.
// Her koşulda 204 döner; telemetri kaybı kullanıcıya yansıtılmaz.
func (h *PublicLinkHandler) HandleTrack(c *fiber.Ctx) error {
	card, err := h.findCard(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var req trackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	h.trackingService.Track(c.UserContext(), card.ID, req.Event, req.Detail)
	return c.SendStatus(fiber.StatusNoContent)
}

// renderNotFound standart 404 sayfasını render eder.
func (h *PublicLinkHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
	}, "layouts/error_layout")
}

// renderError standart 500 hata sayfasını render eder.
func (h *PublicLinkHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	}, "layouts/error_layout")
}
