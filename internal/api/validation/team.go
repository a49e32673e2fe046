package validation

import "strings"

// CreateTeamRequest mirrors the fields needed for create team validation.
type CreateTeamRequest struct {
	Name         string
	Headquarters string
}

// UpdateTeamRequest mirrors the fields needed for update team validation.
// Nil fields were omitted from the request.
type UpdateTeamRequest struct {
	Name         *string
	Headquarters *string
}

// ValidateCreateTeamRequest validates the fields of a create team request.
func ValidateCreateTeamRequest(req CreateTeamRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	if strings.TrimSpace(req.Headquarters) == "" {
		errs = append(errs, FieldError{Field: "headquarters", Message: "headquarters is required"})
	}

	return errs
}

// ValidateUpdateTeamRequest validates the fields of a partial team update.
// Only supplied fields are checked; an empty payload is valid.
func ValidateUpdateTeamRequest(req UpdateTeamRequest) []FieldError {
	var errs []FieldError

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
		} else if len(name) > 255 {
			errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
		}
	}

	if req.Headquarters != nil && strings.TrimSpace(*req.Headquarters) == "" {
		errs = append(errs, FieldError{Field: "headquarters", Message: "headquarters must not be empty"})
	}

	return errs
}
