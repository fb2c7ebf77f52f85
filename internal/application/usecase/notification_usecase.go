package usecase

import (
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// NotificationUseCase consumo de notificaciones: listar recientes, marcar
// vistas y descartar. La creación es del emisor (application/notify).
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// ListRecent devuelve las últimas notificaciones, más nueva primero.
func (uc *NotificationUseCase) ListRecent(limit int) (*dto.NotificationListResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	list, err := uc.repo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Type:      n.Type,
			Seen:      n.Seen,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{Items: items}, nil
}

// MarkSeen marca una notificación como vista.
func (uc *NotificationUseCase) MarkSeen(id string) error {
	return uc.repo.MarkSeen(id)
}

// Delete descarta una notificación.
func (uc *NotificationUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
