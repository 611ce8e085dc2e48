package model

import "time"

// ClassStatus is the approval state of a submitted class.
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusDenied   ClassStatus = "denied"
)

// Class represents a course offered on the marketplace.
// Seats only ever decrease, by exactly one per committed enrollment,
// and never go below zero. Enrolled mirrors the number of committed
// enrollments and drives the popularity sort.
type Class struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	Image           string      `json:"image,omitempty"`
	InstructorName  string      `json:"instructor_name"`
	InstructorEmail string      `json:"instructor_email"`
	Price           float64     `json:"price"`
	Seats           int         `json:"seats"`
	Enrolled        int         `json:"enrolled"`
	Status          ClassStatus `json:"status"`
	Feedback        string      `json:"feedback,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// SubmitClassRequest is the payload for an instructor submitting a class.
// Submitted classes always start in pending status.
type SubmitClassRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=120"`
	Image string  `json:"image" binding:"omitempty,url"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Seats int     `json:"seats" binding:"required,gte=1"`
}

// ClassFeedbackRequest is the payload for admin feedback on a class.
type ClassFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required,min=1,max=2000"`
}
