// File: internal/property/schema.go
package property

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var schemaValidator = newSchemaValidator()

func newSchemaValidator() *validator.Validate {
	v := validator.New()

	// Report JSON paths, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "listing_type", enumOf(ListingTypes))
	mustRegister(v, "property_type", enumOf(PropertyTypes))
	mustRegister(v, "currency", enumOf(Currencies))
	mustRegister(v, "area_unit", enumOf(AreaUnits))
	mustRegister(v, "document_type", enumOf(DocumentTypes))
	mustRegister(v, "listing_status", enumOf(Statuses))
	mustRegister(v, "finite", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		switch f.Kind() {
		case reflect.Float32, reflect.Float64:
			return !math.IsNaN(f.Float()) && !math.IsInf(f.Float(), 0)
		}
		return true
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("property: registering %q validation: %v", tag, err))
	}
}

func enumOf[T ~string](values []T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, v := range values {
			if string(v) == s {
				return true
			}
		}
		return false
	}
}

// FieldViolation is one failed schema rule.
type FieldViolation struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// SchemaError is returned when a listing does not satisfy the schema.
type SchemaError struct {
	Violations []FieldViolation
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Path+": "+v.Reason)
	}
	return "Property validation failed: " + strings.Join(parts, ", ")
}

// ApplyDefaults fills the values the store assigns when they are missing.
func ApplyDefaults(l *Listing, now time.Time) {
	if l.Status == "" {
		l.Status = StatusGallery
	}
	l.normalizeSequences()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = l.CreatedAt
	}
}

// ValidateSchema checks l against the declared field rules and returns a
// *SchemaError describing every violation.
func ValidateSchema(l *Listing) error {
	err := schemaValidator.Struct(l)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("property schema: %w", err)
	}

	out := &SchemaError{Violations: make([]FieldViolation, 0, len(ves))}
	for _, fe := range ves {
		path := fieldPath(fe)
		out.Violations = append(out.Violations, FieldViolation{Path: path, Reason: violationReason(fe, path)})
	}
	return out
}

// fieldPath turns "Listing.documentTypes[1]" into "documentTypes.1".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

func violationReason(fe validator.FieldError, path string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", path)
	case "finite":
		return fmt.Sprintf("Cast to Number failed for path `%s`", path)
	case "listing_type", "property_type", "currency", "area_unit", "document_type", "listing_status":
		return fmt.Sprintf("`%v` is not a valid enum value for path `%s`.", fe.Value(), path)
	default:
		return fmt.Sprintf("Validator failed for path `%s` (%s)", path, fe.Tag())
	}
}
