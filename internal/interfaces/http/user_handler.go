package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	"github.com/tu-usuario/ventas-pro/internal/domain"
)

// UserHandler administración de usuarios y perfil propio.
type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// List usuarios paginados. Solo admin. GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	resp, err := h.userUseCase.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error listando usuarios"})
	}
	return c.JSON(resp)
}

// Me devuelve el perfil del usuario autenticado. GET /api/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	resp, err := h.userUseCase.GetByID(GetUserID(c))
	if err != nil {
		return mapUserError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(resp)
}

// GetByID obtiene un usuario. Solo admin. GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.userUseCase.GetByID(c.Params("id"))
	if err != nil {
		return mapUserError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(resp)
}

// UpdateRole cambia el rol de un usuario. Solo admin. PUT /api/users/:id/role
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	resp, err := h.userUseCase.UpdateRole(c.Params("id"), req)
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(resp)
}

// UpdateProfile actualiza el perfil propio. PUT /api/users/me
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	resp, err := h.userUseCase.UpdateProfile(GetUserID(c), req)
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(resp)
}

// ChangePassword cambia la contraseña propia. PUT /api/users/me/password
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	if err := h.userUseCase.ChangePassword(GetUserID(c), req); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "la contraseña actual no coincide"})
		}
		return mapUserError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetPassword asigna una password nueva a otro usuario. Solo admin.
// PUT /api/users/:id/password
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	if err := h.userUseCase.ResetPassword(c.Params("id"), req.NewPassword); err != nil {
		return mapUserError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina un usuario. Solo admin. DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if c.Params("id") == GetUserID(c) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "no puede eliminar su propia cuenta"})
	}
	if err := h.userUseCase.Delete(c.Params("id")); err != nil {
		return mapUserError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func mapUserError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrActorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error procesando usuario"})
	}
}
