package utils

import (
	"strings"

	"aidentify-service/internal/pkg/dto/requests"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizePatientIdentityRequest(input *requests.PatientIdentity) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.ExternalPatientID = strings.TrimSpace(input.ExternalPatientID)
}
