package service

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/DevanshuTiwaskar/portfolio/internal/config"
	"github.com/DevanshuTiwaskar/portfolio/internal/mailer"
	"github.com/DevanshuTiwaskar/portfolio/internal/model"
	"github.com/DevanshuTiwaskar/portfolio/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultPersistTimeout = 5 * time.Second
	defaultEmailTimeout   = 10 * time.Second
)

// ContactOptions configures notification behaviour of the contact service.
type ContactOptions struct {
	// AdminEmail receives the owner notification. Empty disables it.
	AdminEmail string
	// From is the sender address of every notification.
	From string
	// Policy is config.PolicyBestEffort or config.PolicyStrict.
	Policy         string
	PersistTimeout time.Duration
	EmailTimeout   time.Duration
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	sender   mailer.Sender
	opts     ContactOptions
	validate *validator.Validate
	now      func() time.Time
}

// NewContactService creates a ContactService backed by the given repository and sender.
func NewContactService(repo repository.ContactRepository, sender mailer.Sender, opts ContactOptions) ContactService {
	if opts.PersistTimeout <= 0 {
		opts.PersistTimeout = defaultPersistTimeout
	}
	if opts.EmailTimeout <= 0 {
		opts.EmailTimeout = defaultEmailTimeout
	}
	if opts.Policy == "" {
		opts.Policy = config.PolicyBestEffort
	}
	if opts.From == "" {
		opts.From = mailer.FromAddress("", opts.AdminEmail)
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return &contactServiceImpl{
		repo:     repo,
		sender:   sender,
		opts:     opts,
		validate: v,
		now:      time.Now,
	}
}

// Submit validates msg, stores it and sends the notifications.
// The caller's cancellation is not propagated: once a submission is accepted
// it is stored and notified even if the client goes away.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) (*SubmitResult, error) {
	if err := s.validate.Struct(msg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		verr := &ValidationError{}
		for _, fe := range fieldErrs {
			verr.Fields = append(verr.Fields, fe.Field())
		}
		return nil, verr
	}

	msg.ID = uuid.NewString()
	msg.Type = msg.InquiryType()
	msg.Read = false
	msg.CreatedAt = s.now().UTC()

	ctx = context.WithoutCancel(ctx)

	saveCtx, cancel := context.WithTimeout(ctx, s.opts.PersistTimeout)
	err := s.repo.Save(saveCtx, msg)
	cancel()
	if err != nil {
		slog.ErrorContext(ctx, "failed to store contact message", "error", err)
		return nil, &PersistenceError{Err: err}
	}

	result := &SubmitResult{Message: msg, Deliveries: s.notify(ctx, msg)}

	failures := result.Failures()
	for _, d := range failures {
		slog.WarnContext(ctx, "notification email failed",
			"kind", d.Kind,
			"to", d.To,
			"message_id", msg.ID,
			"error", d.Err,
		)
	}
	if len(failures) > 0 && s.opts.Policy == config.PolicyStrict {
		return result, &NotificationError{Failures: failures}
	}
	return result, nil
}

// List returns contact messages according to the given filter/pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}

// notify sends the admin notification and the confirmation concurrently and
// waits for both, whatever their outcome.
func (s *contactServiceImpl) notify(ctx context.Context, msg *model.ContactMessage) []Delivery {
	var pending []notification
	if s.opts.AdminEmail != "" {
		pending = append(pending, notification{kind: KindAdmin, msg: adminNotification(msg, s.opts.From, s.opts.AdminEmail)})
	} else {
		slog.WarnContext(ctx, "admin notification skipped: ADMIN_EMAIL not set", "message_id", msg.ID)
	}
	pending = append(pending, notification{kind: KindConfirmation, msg: confirmation(msg, s.opts.From, s.opts.AdminEmail)})

	out := make([]Delivery, len(pending))
	var wg sync.WaitGroup
	for i, n := range pending {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sendCtx, cancel := context.WithTimeout(ctx, s.opts.EmailTimeout)
			defer cancel()
			res, err := s.sender.Send(sendCtx, n.msg)
			out[i] = Delivery{Kind: n.kind, To: n.msg.To, Result: res, Err: err}
		}()
	}
	wg.Wait()
	return out
}
