package auth

// RoleAdmin is the only role in the system; every credential record carries it.
const RoleAdmin = "admin"

// Default admin account created when the user store is empty at startup.
const (
	DefaultAdminID       = "admin-001"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// User is a stored credential record. Password always holds a bcrypt hash;
// a value without the bcrypt prefix is a legacy plaintext secret and is
// upgraded on the owner's next successful login.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
