package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// StatsHandler expone los reportes agregados de ventas.
type StatsHandler struct {
	statsUseCase *usecase.StatsUseCase
}

func NewStatsHandler(statsUseCase *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{statsUseCase: statsUseCase}
}

// yearParam lee ?year= o usa el año en curso.
func yearParam(c *fiber.Ctx) int {
	year := c.QueryInt("year")
	if year <= 0 {
		year = time.Now().Year()
	}
	return year
}

// SalesByMonth unidades vendidas por mes de un año. GET /api/stats/sales-by-month
func (h *StatsHandler) SalesByMonth(c *fiber.Ctx) error {
	resp, err := h.statsUseCase.SalesByMonth(c.Context(), yearParam(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error calculando ventas por mes"})
	}
	return c.JSON(resp)
}

// ProfitByMonth ingreso y ganancia por mes. Los vendedores solo ven sus
// propias ventas; los admin ven todo (o filtran con ?userId=).
// GET /api/stats/profit-by-month
func (h *StatsHandler) ProfitByMonth(c *fiber.Ctx) error {
	soldBy := c.Query("userId")
	if GetRole(c) != entity.RoleAdmin {
		soldBy = GetUserID(c)
	}
	resp, err := h.statsUseCase.ProfitByMonth(c.Context(), yearParam(c), soldBy)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error calculando ganancias por mes"})
	}
	return c.JSON(resp)
}

// TopProducts productos más vendidos por unidades. GET /api/stats/top-products
func (h *StatsHandler) TopProducts(c *fiber.Ctx) error {
	resp, err := h.statsUseCase.TopProducts(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error calculando top de productos"})
	}
	return c.JSON(resp)
}

// SalesPerUser ventas acumuladas por vendedor. GET /api/stats/sales-per-user
func (h *StatsHandler) SalesPerUser(c *fiber.Ctx) error {
	resp, err := h.statsUseCase.SalesPerUser(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error calculando ventas por usuario"})
	}
	return c.JSON(resp)
}

// RoleBreakdown cuenta de usuarios por rol. Solo admin. GET /api/stats/role-breakdown
func (h *StatsHandler) RoleBreakdown(c *fiber.Ctx) error {
	resp, err := h.statsUseCase.RoleBreakdown(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error calculando usuarios por rol"})
	}
	return c.JSON(resp)
}
