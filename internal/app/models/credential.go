package models

import "time"

// Role is the authorization tier of an operator. It is always derived from the
// credential's claims, never stored on its own.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDoctor   Role = "doctor"
	RoleEmployee Role = "employee"
)

// Capability is a named permission derived from Role. Call sites check
// capabilities instead of comparing role strings.
type Capability string

const (
	CapabilityAnalyze        Capability = "analyze"
	CapabilityViewReports    Capability = "view_reports"
	CapabilityManageAccounts Capability = "manage_accounts"
)

// CredentialClaims is the decoded payload of the upstream bearer token.
type CredentialClaims struct {
	Subject   string    `json:"sub"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Credential is the upstream bearer token plus its cached decoded claims.
// It is owned by the credential store: login replaces it wholesale, logout
// clears it, and nothing else mutates it.
type Credential struct {
	Token  string           `json:"token"`
	Claims CredentialClaims `json:"claims"`
}
