package service

import "time"

// Role se decide una sola vez al verificar el token.
type Role int

const (
	RoleNone Role = iota
	RoleCustomer
	RoleEditor
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "user"
	case RoleEditor:
		return "editor"
	case RoleAdmin:
		return "admin"
	default:
		return "none"
	}
}

// Viewer es la identidad autenticada que llega a los servicios.
type Viewer struct {
	Account   string
	Access    int
	Role      Role
	ExpiresAt time.Time
}

func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// IsStaff: admin o editor, los que pueden tocar el catálogo.
func (v Viewer) IsStaff() bool {
	return v.Role == RoleAdmin || v.Role == RoleEditor
}
