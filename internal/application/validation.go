package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ipede/user-directory-service/internal/domain"
)

// fieldMessages translates validator failures into field details
func fieldMessages(err error) []domain.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldError{{Message: err.Error()}}
	}

	details := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, domain.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: describe(fe),
		})
	}
	return details
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

// validatePatch checks the present scalar fields of a patch
func (s *UserService) validatePatch(patch *domain.UserPatch) error {
	var details []domain.FieldError
	if patch.Name.Set {
		if err := s.validate.Var(patch.Name.Value, "required"); err != nil {
			details = append(details, domain.FieldError{Field: "name", Message: "name must not be empty"})
		}
	}
	if patch.Email.Set {
		if err := s.validate.Var(patch.Email.Value, "required,email"); err != nil {
			details = append(details, domain.FieldError{Field: "email", Message: "email must be a valid email address"})
		}
	}
	if patch.Age.Set && patch.Age.Value > domain.MaxUserAge {
		details = append(details, domain.FieldError{Field: "age", Message: fmt.Sprintf("age must be at most %d", domain.MaxUserAge)})
	}
	if len(details) > 0 {
		return domain.ErrInvalidField.WithDetails(details)
	}
	return nil
}
