package model

import "time"

// DefaultInquiryType is stored when a submission does not name an inquiry type.
const DefaultInquiryType = "General Inquiry"

// ContactMessage represents a message submitted via the portfolio contact form.
// Records are written once and never updated by the service.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required"`
	Type      string    `json:"type"`
	Message   string    `json:"message" validate:"required"`
	Read      bool      `json:"read"` // reserved for an admin view
	CreatedAt time.Time `json:"created_at"`
}

// InquiryType returns Type, or DefaultInquiryType when none was given.
func (m *ContactMessage) InquiryType() string {
	if m.Type == "" {
		return DefaultInquiryType
	}
	return m.Type
}

// ContactListOptions carries filter and pagination parameters for listing contact messages.
type ContactListOptions struct {
	// UnreadOnly restricts the listing to messages with Read == false.
	UnreadOnly bool
	Limit      int
	Offset     int
}
