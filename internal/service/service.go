package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cs1429/IronTrack/internal/domain"
	"github.com/cs1429/IronTrack/internal/repository"
)

// Tracker provides business logic for all workout tracking operations
type Tracker struct {
	store    repository.Store
	validate *validator.Validate
}

// NewTracker creates a new tracker service backed by the given store.
func NewTracker(store repository.Store) *Tracker {
	v := validator.New()
	// Report violations against the JSON field names clients send, not the
	// Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Tracker{store: store, validate: v}
}

// checkValid runs struct validation and converts the first violation into a
// domain validation error carrying the JSON field path.
func (t *Tracker) checkValid(req any) error {
	err := t.validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	fe := errs[0]
	// Namespace is "RequestType.field.nested"; drop the leading type name.
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	return &domain.ValidationError{
		Field:   field,
		Message: violationMessage(fe),
	}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
