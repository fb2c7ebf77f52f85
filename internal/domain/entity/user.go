package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// User representa a un usuario del sistema. Las ventas lo referencian como
// soldBy (back-reference, sin relación de propiedad).
type User struct {
	ID           string
	Username     string // único
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         string // admin | sales
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
