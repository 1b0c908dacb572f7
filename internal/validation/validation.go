package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "github.com/cannaconscious/booking-api/internal/domain/appointment"
	contactdomain "github.com/cannaconscious/booking-api/internal/domain/contact"
)

// Error carries one message per failed field so the API can answer with
// field-level detail instead of a single opaque string.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	return "validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields under their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("servicetype", func(fl validator.FieldLevel) bool {
		return domain.IsValidServiceType(fl.Field().String())
	})
	v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return domain.IsValidSlot(fl.Field().String())
	})
	v.RegisterValidation("appointmentstatus", func(fl validator.FieldLevel) bool {
		return domain.IsValidStatus(fl.Field().String())
	})
	v.RegisterValidation("contactstatus", func(fl validator.FieldLevel) bool {
		return contactdomain.IsValidStatus(fl.Field().String())
	})

	return v
}

// Struct validates s against its validate tags and returns a *Error with
// per-field messages, or nil when everything passes.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		fields[ve.Field()] = message(ve)
	}

	return &Error{Fields: fields}
}

func message(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "servicetype":
		return "must be one of: " + strings.Join(domain.ServiceTypes, ", ")
	case "timeslot":
		return "must be one of the bookable time slots"
	case "appointmentstatus", "contactstatus":
		return "is not a valid status"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}
