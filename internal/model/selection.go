package model

import "time"

// Selection is a student's non-binding intent to take a class, prior
// to payment. It is removed either explicitly by the student or as
// part of a committed checkout. At most one unresolved selection may
// exist per (class, student) pair.
type Selection struct {
	ID           int64     `json:"id"`
	ClassID      int64     `json:"class_id"`
	StudentEmail string    `json:"student_email"`
	CreatedAt    time.Time `json:"created_at"`

	// Denormalized class fields for listing, populated on reads.
	ClassName  string  `json:"class_name,omitempty"`
	ClassImage string  `json:"class_image,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Seats      int     `json:"seats,omitempty"`
}

// SelectClassRequest is the payload for POST /selected.
type SelectClassRequest struct {
	ClassID int64  `json:"class_id" binding:"required,gt=0"`
	Email   string `json:"email" binding:"required,email"`
}
