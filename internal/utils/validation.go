package utils

import (
	"regexp"
	"strings"

	"github.com/sigap-app/sigap-backend/internal/pkg/models"
)

// FieldError names an offending request field and the reason it was rejected
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// emailPattern is a plausibility check, not a full RFC 5322 parser:
// one @, no whitespace, and a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegisterRequest applies every field rule independently and
// returns the full ordered violation list. An empty slice means valid.
func ValidateRegisterRequest(req *models.RegisterRequest) []FieldError {
	var violations []FieldError

	if len(strings.TrimSpace(req.FullName)) < 3 {
		violations = append(violations, FieldError{
			Field:   "fullName",
			Message: "fullName must be at least 3 characters",
		})
	}

	if !emailPattern.MatchString(req.Email) {
		violations = append(violations, FieldError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if valid, _ := ValidatePhone(req.Phone); !valid {
		violations = append(violations, FieldError{
			Field:   "phone",
			Message: "phone must be a valid mobile number",
		})
	}

	if len(req.Password) < 6 {
		violations = append(violations, FieldError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if req.Anonymous == nil {
		violations = append(violations, FieldError{
			Field:   "anonymous",
			Message: "anonymous must be a boolean",
		})
	}

	if req.IsOfficer == nil {
		violations = append(violations, FieldError{
			Field:   "isOfficer",
			Message: "isOfficer must be a boolean",
		})
	}

	return violations
}
