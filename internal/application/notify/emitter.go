package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
	"github.com/tu-usuario/ventas-pro/pkg/logger"
)

// Emitter formatea y persiste notificaciones como efecto colateral de una
// venta completada. Es best-effort: un fallo al persistir se registra en el
// log y se traga; las ventas nunca se revierten por una notificación.
type Emitter struct {
	repo repository.NotificationRepository
	log  *logger.Logger
}

// NewEmitter construye el emisor.
func NewEmitter(repo repository.NotificationRepository, log *logger.Logger) *Emitter {
	return &Emitter{repo: repo, log: log}
}

// SaleCompleted emite la confirmación de una línea vendida.
func (e *Emitter) SaleCompleted(productName string, quantity int64, soldByName string) {
	e.persist(&entity.Notification{
		ID:        uuid.New().String(),
		Message:   fmt.Sprintf("%d x %s vendido por %s", quantity, productName, soldByName),
		Type:      entity.NotificationSuccess,
		CreatedAt: time.Now(),
	})
}

// LowStock emite la alerta de stock bajo tras una venta que dejó la cantidad
// por debajo del umbral de reorden del producto.
func (e *Emitter) LowStock(productName string, remaining int64) {
	e.persist(&entity.Notification{
		ID:        uuid.New().String(),
		Message:   fmt.Sprintf("Stock bajo: quedan %d x %s", remaining, productName),
		Type:      entity.NotificationWarning,
		CreatedAt: time.Now(),
	})
}

func (e *Emitter) persist(n *entity.Notification) {
	if err := e.repo.Create(n); err != nil {
		e.log.Warn().Err(err).Str("type", n.Type).Msg("no se pudo persistir la notificación")
	}
}
