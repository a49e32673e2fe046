package validation

import (
	"strings"

	"github.com/herodex/herodex/internal/optional"
)

// CreateHeroRequest mirrors the fields needed for create hero validation.
type CreateHeroRequest struct {
	Name       string
	SecretName string
	Password   string
	Age        *int
}

// UpdateHeroRequest mirrors the fields needed for update hero validation.
// Nil pointers and unset optionals were omitted from the request.
type UpdateHeroRequest struct {
	Name       *string
	SecretName *string
	Password   *string
	Age        optional.Optional[int]
}

// ValidateCreateHeroRequest validates the fields of a create hero request.
func ValidateCreateHeroRequest(req CreateHeroRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	if strings.TrimSpace(req.SecretName) == "" {
		errs = append(errs, FieldError{Field: "secret_name", Message: "secret_name is required"})
	}

	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}

	if req.Age != nil && *req.Age < 0 {
		errs = append(errs, FieldError{Field: "age", Message: "age must not be negative"})
	}

	return errs
}

// ValidateUpdateHeroRequest validates the fields of a partial hero update.
// Only supplied fields are checked; an empty payload is valid, and an
// explicit null age is a legitimate update.
func ValidateUpdateHeroRequest(req UpdateHeroRequest) []FieldError {
	var errs []FieldError

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
		} else if len(name) > 255 {
			errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
		}
	}

	if req.SecretName != nil && strings.TrimSpace(*req.SecretName) == "" {
		errs = append(errs, FieldError{Field: "secret_name", Message: "secret_name must not be empty"})
	}

	if req.Password != nil && *req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password must not be empty"})
	}

	if req.Age.Valid && req.Age.Value < 0 {
		errs = append(errs, FieldError{Field: "age", Message: "age must not be negative"})
	}

	return errs
}
