package model

import "time"

// Enrollment is the durable record of a completed, paid class
// registration. Exactly one exists per payment reference; it is
// immutable once written and never deleted.
type Enrollment struct {
	ID           int64     `json:"id"`
	ClassID      int64     `json:"class_id"`
	ClassName    string    `json:"class_name"`
	ClassImage   string    `json:"class_image,omitempty"`
	StudentEmail string    `json:"student_email"`
	Amount       float64   `json:"amount"`
	PaymentRef   string    `json:"payment_ref"`
	CreatedAt    time.Time `json:"created_at"`
}

// CheckoutRequest is the payload for POST /payments, submitted after
// the client has completed payment against the issued payment intent.
type CheckoutRequest struct {
	ClassID    int64   `json:"class_id" binding:"required,gt=0"`
	Email      string  `json:"email" binding:"required,email"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	PaymentRef string  `json:"payment_ref" binding:"required,min=8,max=255"`
}

// CheckoutResult reports the three checkout sub-steps. The underlying
// transaction is all-or-nothing; the per-step fields are kept for
// clients built against the legacy composite response.
type CheckoutResult struct {
	Enrollment       *Enrollment `json:"enrollment"`
	SelectionRemoved bool        `json:"selection_removed"`
	SeatsLeft        int         `json:"seats_left"`
}

// CreatePaymentIntentRequest is the payload for POST /create-payment-intent.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntentResponse carries the provider's client handle.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
