package handlers // handlers/panel paketi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/models/helpers"
	"kartvizit.link/pkg/cardview"
	"kartvizit.link/pkg/flashmessages"
	"kartvizit.link/pkg/queryparams"
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelCardHandler kullanıcının kendi kartvizitleri için handler.
type PanelCardHandler struct {
	service services.ICardService
}

// NewPanelCardHandler yeni bir PanelCardHandler örneği oluşturur.
func NewPanelCardHandler() *PanelCardHandler {
	return &PanelCardHandler{
		service: services.NewCardService(),
	}
}

// currentUserID oturumdaki kullanıcı ID'sini okur; yoksa 0 döner.
func currentUserID(c *fiber.Ctx) uint {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return 0
	}
	return userID
}

// ListCards kullanıcının kendi kartvizitlerini listeler.
func (h *PanelCardHandler) ListCards(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum bilgileri geçersiz.")
		return c.Redirect("/auth/login")
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListCards: Query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.service.GetCardsForUserPaginated(c.UserContext(), userID, params)

	renderData := fiber.Map{
		"Title":  "Kartvizitlerim",
		"Result": paginatedResult,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kartvizitler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Card{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListCards Error", zap.Uint("userID", userID), zap.Error(err))
	}
	return renderer.Render(c, "panel/cards/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// ShowCreateCard yeni kartvizit oluşturma formunu gösterir.
func (h *PanelCardHandler) ShowCreateCard(c *fiber.Ctx) error {
	formData := flashmessages.GetFlashFormData(c)

	return renderer.Render(c, "panel/cards/create", "layouts/panel_layout", fiber.Map{
		"Title":    "Yeni Kartvizit Oluştur",
		"FormData": formData,
		"Layouts":  cardview.LayoutIDs(),
	})
}

// CreateCard yeni kartvizit oluşturur.
func (h *PanelCardHandler) CreateCard(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.Redirect("/auth/login")
	}

	var detail models.CardDetail
	if err := c.BodyParser(&detail); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	if err := services.ValidateCardDetail(detail); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, detail)
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	card, err := h.service.CreateCard(c.UserContext(), userID, detail)
	if err != nil {
		configslog.Log.Error("Panel - CreateCard Error", zap.Uint("creatorUserID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kartvizit oluşturulamadı: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, detail)
		return c.Redirect("/panel/cards/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		"Kartvizit başarıyla oluşturuldu. Public link: /"+card.Link.Key)
	return c.Redirect("/panel/cards", fiber.StatusFound)
}

// ShowUpdateCard kartvizit düzenleme formunu gösterir.
func (h *PanelCardHandler) ShowUpdateCard(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.Redirect("/auth/login")
	}

	cardID, err := parseCardID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}

	card, err := h.service.GetCardByID(c.UserContext(), cardID, userID)
	if err != nil {
		errMsg := "Kartvizit bulunamadı veya bu kartviziti düzenleme yetkiniz yok."
		if !errors.Is(err, services.ErrCardNotFound) && !errors.Is(err, services.ErrCardForbidden) {
			errMsg = "Kartvizit bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/cards")
	}

	return renderer.Render(c, "panel/cards/update", "layouts/panel_layout", fiber.Map{
		"Title":    "Kartviziti Düzenle",
		"Card":     card,
		"Detail":   card.Detail,
		"FormData": flashmessages.GetFlashFormData(c),
		"Layouts":  cardview.LayoutIDs(),
	})
}

// UpdateCard kartvizit bilgilerini günceller.
func (h *PanelCardHandler) UpdateCard(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.Redirect("/auth/login")
	}

	cardID, err := parseCardID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}
	redirectPathOnError := fmt.Sprintf("/panel/cards/update/%d", cardID)

	var detailUpdates models.CardDetail
	if err := c.BodyParser(&detailUpdates); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	isEnabledStr := c.FormValue("is_enabled", "false")
	isEnabled := isEnabledStr == "true" || isEnabledStr == "on"

	if err := services.ValidateCardDetail(detailUpdates); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, detailUpdates)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateCard(c.UserContext(), cardID, userID, detailUpdates, isEnabled); err != nil {
		configslog.Log.Error("Panel - UpdateCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kartvizit güncellenemedi: "+err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit başarıyla güncellendi.")
	return c.Redirect("/panel/cards", fiber.StatusFound)
}

// sectionPayload bölüm düzenleme isteğindeki tek satır.
type sectionPayload struct {
	Type    string          `json:"type"`
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
	Visible *bool           `json:"visible"`
	Order   int             `json:"order"`
}

// UpdateSections kartın bölüm listesini komple değiştirir (JSON body).
func (h *PanelCardHandler) UpdateSections(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	var payload []sectionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz bölüm verisi"})
	}

	sections := make([]models.CardSection, 0, len(payload))
	for _, p := range payload {
		sections = append(sections, models.CardSection{
			Type:    p.Type,
			Title:   p.Title,
			Content: helpers.JSONB(p.Content),
			Visible: p.Visible,
			Order:   p.Order,
		})
	}

	if err := h.service.UpdateSections(c.UserContext(), cardID, userID, sections); err != nil {
		return h.jsonServiceError(c, cardID, userID, "UpdateSections", err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// socialLinkPayload sosyal link düzenleme isteğindeki tek satır.
type socialLinkPayload struct {
	Platform string `json:"platform"`
	Value    string `json:"value"`
	Order    int    `json:"order"`
}

// UpdateSocialLinks kartın sosyal link listesini komple değiştirir (JSON body).
func (h *PanelCardHandler) UpdateSocialLinks(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	var payload []socialLinkPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz sosyal link verisi"})
	}

	links := make([]models.CardSocialLink, 0, len(payload))
	for _, p := range payload {
		links = append(links, models.CardSocialLink{
			Platform: p.Platform,
			Value:    p.Value,
			Order:    p.Order,
		})
	}

	if err := h.service.UpdateSocialLinks(c.UserContext(), cardID, userID, links); err != nil {
		return h.jsonServiceError(c, cardID, userID, "UpdateSocialLinks", err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// contentOrderPayload blok sıralama isteği.
type contentOrderPayload struct {
	Order []string `json:"order"`
}

// UpdateContentOrder kartın blok sıralamasını günceller (JSON body).
func (h *PanelCardHandler) UpdateContentOrder(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	cardID, err := parseCardID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ID"})
	}

	var payload contentOrderPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz sıralama verisi"})
	}

	if err := h.service.UpdateContentOrder(c.UserContext(), cardID, userID, payload.Order); err != nil {
		return h.jsonServiceError(c, cardID, userID, "UpdateContentOrder", err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// DeleteCard kartviziti siler.
func (h *PanelCardHandler) DeleteCard(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.Redirect("/auth/login")
	}
	cardID, err := parseCardID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/cards")
	}

	if err := h.service.DeleteCard(c.UserContext(), cardID, userID); err != nil {
		configslog.Log.Error("Panel - DeleteCard Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kartvizit silinemedi: "+err.Error())
		return c.Redirect("/panel/cards", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kartvizit silindi.")
	return c.Redirect("/panel/cards", fiber.StatusFound)
}

// jsonServiceError JSON endpoint'leri için ortak hata çevirisi.
func (h *PanelCardHandler) jsonServiceError(c *fiber.Ctx, cardID, userID uint, op string, err error) error {
	switch {
	case errors.Is(err, services.ErrCardNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrCardForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		configslog.Log.Error("Panel - "+op+" Error", zap.Uint("id", cardID), zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "işlem başarısız"})
	}
}

// parseCardID :id parametresini doğrulayarak okur.
func parseCardID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
