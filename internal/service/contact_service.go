package service

import (
	"context"

	"github.com/DevanshuTiwaskar/portfolio/internal/mailer"
	"github.com/DevanshuTiwaskar/portfolio/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new contact message, then notifies the
	// site owner and the submitter. ID, Type default and CreatedAt are
	// populated by the implementation.
	//
	// Errors are *ValidationError, *PersistenceError or, under the strict
	// notification policy, *NotificationError together with a non-nil result.
	Submit(ctx context.Context, msg *model.ContactMessage) (*SubmitResult, error)

	// List returns contact messages according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
}

// Notification kinds.
const (
	KindAdmin        = "admin"
	KindConfirmation = "confirmation"
)

// Delivery is the outcome of one notification email.
type Delivery struct {
	Kind   string
	To     string
	Result mailer.Result
	Err    error
}

// SubmitResult describes a stored message and what happened to its notifications.
type SubmitResult struct {
	Message    *model.ContactMessage
	Deliveries []Delivery
}

// Failures returns the deliveries that ended in an error.
func (r *SubmitResult) Failures() []Delivery {
	var out []Delivery
	for _, d := range r.Deliveries {
		if d.Err != nil {
			out = append(out, d)
		}
	}
	return out
}
