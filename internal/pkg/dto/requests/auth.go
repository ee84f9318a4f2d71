package requests

// Login is the identifier/secret pair forwarded to the auth collaborator. The
// backend expects the identifier under "username" even though operators log in
// with an email address.
type Login struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register is the new-account payload proxied to the auth collaborator.
// Creating accounts is an admin capability.
type Register struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin doctor employee"`
}

type ChangePassword struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
