package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor de ventas:
// o todas las líneas decrementan stock y registran su venta, o ninguna
// (el rollback deshace los decrementos ya aplicados).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// Notifier publica los eventos de una venta completada. Es best-effort por
// contrato: sus implementaciones no devuelven error al motor, así un fallo al
// persistir una notificación nunca revierte la venta que la originó.
type Notifier interface {
	SaleCompleted(productName string, quantity int64, soldByName string)
	LowStock(productName string, remaining int64)
}
