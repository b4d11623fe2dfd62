package shared

// DomainError represents a domain-level error with a stable kind tag.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Stable error codes. Handlers map these onto HTTP statuses; storage
// internals never leak through the message.
const (
	CodeValidation        = "ERR_VALIDATION"
	CodeNotFound          = "ERR_NOT_FOUND"
	CodeInvalidTransition = "ERR_INVALID_TRANSITION"
	CodeConflict          = "ERR_CONFLICT"
	CodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
	CodePersistence       = "ERR_PERSISTENCE"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists = NewDomainError(CodeConflict, "Resource already exists")
	ErrInvalidInput  = NewDomainError(CodeValidation, "Invalid input provided")
)

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewNotFoundError creates a not-found error with the given message
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewInvalidTransitionError creates a state machine violation error
func NewInvalidTransitionError(message string) *DomainError {
	return NewDomainError(CodeInvalidTransition, message)
}

// NewConflictError creates a uniqueness or lost-race conflict error
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewInsufficientStockError creates a stock shortage error
func NewInsufficientStockError(message string) *DomainError {
	return NewDomainError(CodeInsufficientStock, message)
}

// NewPersistenceError wraps a storage-layer failure, including timeouts.
// The underlying driver error is intentionally not embedded in the message.
func NewPersistenceError(message string) *DomainError {
	return NewDomainError(CodePersistence, message)
}

// HasCode reports whether err is a DomainError carrying the given code.
func HasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	if de, ok := err.(*DomainError); ok {
		return de.Code == code
	}
	return false
}
