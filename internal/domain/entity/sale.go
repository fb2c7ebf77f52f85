package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una línea de venta. UnitPrice y UnitCost son una foto de la
// economía del producto al momento de la venta: ediciones posteriores del
// catálogo (o el borrado del producto) no alteran ventas históricas.
// Solo el motor de ventas crea Sales; inmutables salvo borrado explícito
// (corrección de un admin).
type Sale struct {
	ID        string
	ProductID string
	Quantity  int64 // siempre > 0
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
	SoldBy    string // UserID del vendedor
	Date      time.Time
}
