package session

import (
	"time"

	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/utils"
)

// The evaluator is pure and side-effect free over a credential value. An
// expired or malformed token yields the same observable state as logged out;
// there is no distinct expired state anywhere in the system.

// IsValid reports whether a credential exists, its claims decode, and its
// expiry lies after now. Decoding failure never propagates as an error.
func IsValid(credential *models.Credential, now time.Time) bool {
	claims, ok := decodedClaims(credential)
	if !ok {
		return false
	}
	return claims.ExpiresAt.After(now)
}

// RoleOf returns the decoded role, or the zero role when the credential is
// absent or undecodable. It never panics on malformed tokens.
func RoleOf(credential *models.Credential) models.Role {
	claims, ok := decodedClaims(credential)
	if !ok {
		return ""
	}
	return claims.Role
}

// HasCapability maps roles onto named permissions so role semantics live in
// one place instead of string comparisons at call sites.
func HasCapability(credential *models.Credential, capability models.Capability) bool {
	role := RoleOf(credential)
	switch capability {
	case models.CapabilityAnalyze:
		return role == models.RoleAdmin || role == models.RoleDoctor
	case models.CapabilityViewReports:
		return role == models.RoleAdmin || role == models.RoleDoctor || role == models.RoleEmployee
	case models.CapabilityManageAccounts:
		return role == models.RoleAdmin
	}
	return false
}

// decodedClaims re-derives the claims from the raw token on every query so a
// stale cached copy can never disagree with the token itself.
func decodedClaims(credential *models.Credential) (models.CredentialClaims, bool) {
	if credential == nil || credential.Token == "" {
		return models.CredentialClaims{}, false
	}
	claims, err := utils.DecodeCredentialClaims(credential.Token)
	if err != nil {
		return models.CredentialClaims{}, false
	}
	return claims, true
}
