package contact

import (
	"context"
	"fmt"
	"regexp"

	"github.com/werealtor/aixx/api/validators"
	"github.com/werealtor/aixx/pkg/db/models"
	"github.com/werealtor/aixx/pkg/email"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

const (
	maxNameLen    = 100
	maxMessageLen = 2000
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service validates and persists contact submissions.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) error
}

// SubmitInput is the raw contact form payload.
type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

type service struct {
	repo     Repository
	mailer   email.Sender
	receiver string
	logg     *logger.Logger
}

// NewService wires the contact dependencies. mailer may be nil; the
// notification mail is best-effort either way.
func NewService(repo Repository, mailer email.Sender, receiver string, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository required")
	}
	return &service{
		repo:     repo,
		mailer:   mailer,
		receiver: receiver,
		logg:     logg,
	}, nil
}

// Submit persists the message and then forwards a notification. The
// submission counts as successful once the row is written; a failed send
// is logged and swallowed.
func (s *service) Submit(ctx context.Context, input SubmitInput) error {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Missing fields")
	}
	if !emailRegex.MatchString(input.Email) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid email")
	}

	safeName := validators.SanitizeString(input.Name, maxNameLen)
	safeMessage := validators.SanitizeString(input.Message, maxMessageLen)

	msg := &models.ContactMessage{
		Name:    safeName,
		Email:   input.Email,
		Message: safeMessage,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting contact message")
	}

	if s.mailer != nil {
		notification := email.Message{
			To:      s.receiver,
			Subject: "New Contact: " + safeName,
			Body:    fmt.Sprintf("From: %s\nMessage:\n%s", input.Email, safeMessage),
		}
		if err := s.mailer.Send(ctx, notification); err != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "contact notification mail failed")
		}
	}

	return nil
}
