package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrActorNotFound   = errors.New("usuario (soldBy) no encontrado")
	ErrUsernameTaken   = errors.New("el username ya está registrado")
	ErrDuplicateSKU    = errors.New("el SKU ya existe")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrNoValidItems    = errors.New("sin líneas válidas para vender")
	ErrStockChanged    = errors.New("el stock cambió durante la venta; recargue y reintente")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
)

// ProductNotFoundError identifica la línea de venta cuyo producto no existe.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto no encontrado (%s)", e.ProductID)
}

// InsufficientStockError lleva nombre, disponible y solicitado para que el
// caller pueda corregir la venta sin otra consulta.
type InsufficientStockError struct {
	ProductName string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s (hay %d, se piden %d)",
		e.ProductName, e.Available, e.Requested)
}
