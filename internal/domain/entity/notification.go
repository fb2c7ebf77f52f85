package entity

import "time"

// Tipos de notificación.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification es un evento legible para humanos producido al completar una
// venta (confirmación o alerta de stock bajo). Se borra al descartarla.
type Notification struct {
	ID        string
	Message   string
	Type      string // info | success | warning | error
	Seen      bool
	CreatedAt time.Time
}
