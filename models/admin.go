package models

// BootstrapAdminUsername is the account created on first initialization of the store.
const BootstrapAdminUsername = "admin"

// Admin "inherits" from User via embedding. The distinguishing field is Role.
type Admin struct {
	User
}

// NewAdmin creates an admin model with Role preset to "admin".
func NewAdmin(username string) *Admin {
	return &Admin{User: User{Username: username, Role: RoleAdmin}}
}
