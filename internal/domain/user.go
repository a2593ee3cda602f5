package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles que el core de Studdeo declara en el claim "role" del token
const (
	RoleAdministrator = "administrator"
	RoleProfessor     = "professor"
)

// Capability es una acción concreta del panel. Las rutas declaran la
// capability que requieren en lugar de preguntar "¿está autenticado?".
type Capability string

const (
	CapViewSales      Capability = "sales:view"
	CapViewCourses    Capability = "courses:view"
	CapViewAllCourses Capability = "courses:view-all"
	CapProvisionUsers Capability = "users:provision"
	CapManageAdmins   Capability = "admins:manage"
	CapRunSync        Capability = "sync:run"
)

var roleCapabilities = map[string][]Capability{
	RoleAdministrator: {
		CapViewSales,
		CapViewCourses,
		CapViewAllCourses,
		CapProvisionUsers,
		CapManageAdmins,
		CapRunSync,
	},
	RoleProfessor: {
		CapViewSales,
		CapViewCourses,
	},
}

// RoleHasCapability resuelve el mapa rol → capabilities. Roles desconocidos
// no tienen ninguna capability.
func RoleHasCapability(role string, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// User es la identidad que viaja en la sesión del panel. El core es el dueño
// de los datos; acá solo se conservan los claims que el core afirmó.
type User struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Claims es el token de sesión propio del Admin API, firmado con HS256.
// No confundir con el payload del token del core, que se decodifica sin
// verificar (ver authenticating).
type Claims struct {
	UserName     string `json:"name"`
	UserLastname string `json:"lastname"`
	UserEmail    string `json:"email"`
	UserRole     string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) HasCapability(cap Capability) bool {
	return RoleHasCapability(c.UserRole, cap)
}

func (c *Claims) User() User {
	return User{
		Name:     c.UserName,
		Lastname: c.UserLastname,
		Email:    c.UserEmail,
		Role:     c.UserRole,
	}
}

// Administrator es una cuenta local del panel. Los profesores se autentican
// contra el core; los administradores viven en la base del Admin API.
type Administrator struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Session es el resultado de un login: el token propio más la identidad
// decodificada, listo para devolver al panel.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}
