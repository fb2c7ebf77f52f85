package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/sales"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// SaleHandler expone el registro de ventas y su consulta.
type SaleHandler struct {
	createSale  *sales.CreateSaleUseCase
	saleQueries *usecase.SaleQueryUseCase
}

func NewSaleHandler(createSale *sales.CreateSaleUseCase, saleQueries *usecase.SaleQueryUseCase) *SaleHandler {
	return &SaleHandler{createSale: createSale, saleQueries: saleQueries}
}

// Create registra una venta (una o varias líneas). POST /api/sales
// Si el body no trae soldBy, se usa el usuario autenticado.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	if req.SoldBy == "" {
		req.SoldBy = GetUserID(c)
	}
	resp, err := h.createSale.CreateSale(c.Context(), req)
	if err != nil {
		return mapSaleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List devuelve ventas con filtros opcionales userId, startDate y endDate
// (fechas en RFC 3339).
// GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filter := repository.SaleFilter{SoldBy: c.Query("userId")}
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "startDate debe ser RFC 3339"})
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "endDate debe ser RFC 3339"})
		}
		filter.EndDate = &t
	}
	resp, err := h.saleQueries.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error listando ventas"})
	}
	return c.JSON(resp)
}

// Delete borra un registro de venta (corrección administrativa, no restaura
// stock). Solo admin. DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.saleQueries.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error eliminando venta"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mapSaleError traduce la taxonomía de errores del motor de ventas a HTTP.
func mapSaleError(c *fiber.Ctx, err error) error {
	var notFound *domain.ProductNotFoundError
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrActorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ACTOR_NOT_FOUND", Message: "el vendedor no existe"})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: notFound.Error()})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
	case errors.Is(err, domain.ErrStockChanged):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_CHANGED", Message: "el stock cambió durante la venta, reintente"})
	case errors.Is(err, domain.ErrNoValidItems):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_VALID_ITEMS", Message: "la venta no tiene líneas válidas"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "cantidad inválida"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error registrando venta"})
	}
}
