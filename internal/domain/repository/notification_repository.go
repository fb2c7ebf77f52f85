package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListRecent(limit int) ([]*entity.Notification, error)
	MarkSeen(id string) error
	Delete(id string) error
}
