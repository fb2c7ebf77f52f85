package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Quantity nunca es negativo: el motor de ventas decrementa con un UPDATE
// condicional y la tabla lleva un CHECK. Price/Cost son la economía vigente;
// cada venta guarda su propia copia al momento de venderse.
type Product struct {
	ID           string
	SKU          string // opcional; único cuando no está vacío
	Name         string
	Price        decimal.Decimal // precio de venta unitario
	Cost         decimal.Decimal // costo unitario
	Quantity     int64
	ReorderLevel int64 // umbral de notificación de stock bajo
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
