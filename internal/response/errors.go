package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrTokenRequired ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid  ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden    ErrCode = "FORBIDDEN"
	ErrRoleRequired ErrCode = "ROLE_REQUIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Enrollment ────────────────────────────────────────────────────
	ErrSoldOut          ErrCode = "SOLD_OUT"
	ErrAlreadyProcessed ErrCode = "ALREADY_PROCESSED"
	ErrAlreadySelected  ErrCode = "ALREADY_SELECTED"

	// ─── Payments ──────────────────────────────────────────────────────
	ErrPaymentProvider ErrCode = "PAYMENT_PROVIDER_ERROR"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "Unauthorized access."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "Forbidden access."
	case ErrRoleRequired:
		return "You do not have the role required for this action."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."

	// ─── Enrollment ────────────────────────────────────────────────────
	case ErrSoldOut:
		return "This class is sold out."
	case ErrAlreadyProcessed:
		return "This payment has already been processed."
	case ErrAlreadySelected:
		return "You have already selected this class."

	// ─── Payments ──────────────────────────────────────────────────────
	case ErrPaymentProvider:
		return "The payment provider rejected the request."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
