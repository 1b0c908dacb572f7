package httperr

import "errors"

// BusinessError is a domain failure carrying a stable code such as
// slot_taken or appointment_not_found. The code is the whole identity:
// repositories and use cases return it, handlers map it to a status.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness builds a BusinessError for the given code.
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err is a BusinessError with exactly this code,
// unwrapping as needed.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
