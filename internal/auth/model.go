package auth

// Roles. Everyone registering through the app is a CLIENTE; ADMIN accounts
// maintain the price table and are created out of band.
const (
	RoleCliente = "CLIENTE"
	RoleAdmin   = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
