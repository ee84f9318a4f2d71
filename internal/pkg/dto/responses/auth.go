package responses

// UserSummary mirrors the user block the auth collaborator returns on login.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Login carries the gateway session token; the upstream bearer credential
// itself never leaves the server.
type Login struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
