package dto

import "time"

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Seen      bool      `json:"seen"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse notificaciones recientes, más nueva primero.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
}
