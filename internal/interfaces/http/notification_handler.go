package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	"github.com/tu-usuario/ventas-pro/internal/domain"
)

// NotificationHandler expone las notificaciones internas del sistema.
type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUseCase: notificationUseCase}
}

// List devuelve las notificaciones más recientes. GET /api/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	resp, err := h.notificationUseCase.ListRecent(c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error listando notificaciones"})
	}
	return c.JSON(resp)
}

// MarkSeen marca una notificación como vista. PATCH /api/notifications/:id/seen
func (h *NotificationHandler) MarkSeen(c *fiber.Ctx) error {
	if err := h.notificationUseCase.MarkSeen(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error actualizando notificación"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina una notificación. DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.notificationUseCase.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error eliminando notificación"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
