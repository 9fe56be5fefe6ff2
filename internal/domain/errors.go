package domain

import "fmt"

// ErrorKind classifies a BusinessError for transport mapping
type ErrorKind int

const (
	KindInvalidArgument ErrorKind = iota + 1
	KindNotFound
	KindUnauthorized
	KindConfiguration
	KindInternal
	KindRateLimited
)

// Error is implemented by every error the service surfaces to callers
type Error interface {
	error
	GetCode() string
	GetMessage() string
	GetKind() ErrorKind
	GetDetails() []FieldError
}

// FieldError describes a single invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BusinessError is a coded, classified error. Two BusinessErrors match under
// errors.Is when their codes are equal, regardless of message or details.
type BusinessError struct {
	Code    string
	Message string
	Kind    ErrorKind
	Details []FieldError
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) GetCode() string          { return e.Code }
func (e *BusinessError) GetMessage() string       { return e.Message }
func (e *BusinessError) GetKind() ErrorKind       { return e.Kind }
func (e *BusinessError) GetDetails() []FieldError { return e.Details }

func (e *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithMessage returns a copy of e carrying a formatted message
func (e *BusinessError) WithMessage(format string, args ...any) *BusinessError {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// WithDetails returns a copy of e carrying field details
func (e *BusinessError) WithDetails(details []FieldError) *BusinessError {
	cp := *e
	cp.Details = details
	return &cp
}

func newError(code, message string, kind ErrorKind) *BusinessError {
	return &BusinessError{Code: code, Message: message, Kind: kind}
}

var (
	ErrInvalidPage         = newError("U0001", "Page number must be greater than 0.", KindInvalidArgument)
	ErrInvalidPageSize     = newError("U0002", "Page size must be greater than 0.", KindInvalidArgument)
	ErrPageOutOfRange      = newError("U0003", "Page number exceeds the total number of pages.", KindInvalidArgument)
	ErrInvalidQueryParam   = newError("U0004", "Invalid query parameter", KindInvalidArgument)
	ErrInvalidID           = newError("U0005", "Invalid identifier", KindInvalidArgument)
	ErrInvalidRequestBody  = newError("U0006", "Invalid request body", KindInvalidArgument)
	ErrInvalidUser         = newError("U0007", "Incorrect user data.", KindInvalidArgument)
	ErrInvalidField        = newError("U0008", "Invalid field", KindInvalidArgument)
	ErrEmailAlreadyExists  = newError("U0009", "User with this email already exists.", KindInvalidArgument)
	ErrRoleNotFound        = newError("U0010", "Role not found", KindInvalidArgument)
	ErrRoleAlreadyAssigned = newError("U0011", "Role already exists for user", KindInvalidArgument)
	ErrUserNotFound        = newError("U0012", "User not found", KindNotFound)
	ErrUnauthorized        = newError("U0013", "Unauthorized", KindUnauthorized)
	ErrInvalidToken        = newError("U0014", "Invalid token", KindUnauthorized)
	ErrMissingSigningKey   = newError("U0015", "Token signing key is not configured", KindConfiguration)
	ErrDatabaseQuery       = newError("U0016", "Database query failed", KindInternal)
	ErrInternal            = newError("U0017", "Internal server error", KindInternal)
	ErrRateLimited         = newError("U0018", "Rate limit exceeded", KindRateLimited)
)
