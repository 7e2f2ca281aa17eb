package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werealtor/aixx/pkg/db/models"
	"github.com/werealtor/aixx/pkg/email"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

type fakeContactRepo struct {
	created []*models.ContactMessage
	err     error
}

func (f *fakeContactRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, msg)
	return nil
}

type fakeSender struct {
	sent []email.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg email.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestService(t *testing.T, repo Repository, sender email.Sender) Service {
	t.Helper()
	svc, err := NewService(repo, sender, "owner@xxkit.com", logger.New(logger.Options{ServiceName: "test"}))
	require.NoError(t, err)
	return svc
}

func TestSubmitMissingFields(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	svc := newTestService(t, repo, nil)

	for _, input := range []SubmitInput{
		{Email: "a@b.co", Message: "hi"},
		{Name: "Al", Message: "hi"},
		{Name: "Al", Email: "a@b.co"},
	} {
		err := svc.Submit(context.Background(), input)
		require.Error(t, err)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
		assert.Equal(t, "Missing fields", typed.Message())
	}

	assert.Empty(t, repo.created, "no row may be persisted for invalid input")
}

func TestSubmitInvalidEmail(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	svc := newTestService(t, repo, nil)

	for _, bad := range []string{"bad-email", "a@b", "a b@c.co", "@c.co", "a@.", "a@b."} {
		err := svc.Submit(context.Background(), SubmitInput{Name: "Al", Email: bad, Message: "hi"})
		require.Error(t, err, "email %q must be rejected", bad)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, "Invalid email", typed.Message())
	}

	assert.Empty(t, repo.created)
}

func TestSubmitTruncatesOversizedFields(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	svc := newTestService(t, repo, nil)

	err := svc.Submit(context.Background(), SubmitInput{
		Name:    strings.Repeat("n", 150),
		Email:   "a@b.co",
		Message: strings.Repeat("m", 2500),
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Len(t, repo.created[0].Name, 100)
	assert.Len(t, repo.created[0].Message, 2000)
}

func TestSubmitSendsNotification(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	sender := &fakeSender{}
	svc := newTestService(t, repo, sender)

	err := svc.Submit(context.Background(), SubmitInput{Name: "Al", Email: "a@b.co", Message: "hi"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "owner@xxkit.com", sender.sent[0].To)
	assert.Equal(t, "New Contact: Al", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].Body, "From: a@b.co")
}

func TestSubmitSucceedsWhenMailFails(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	sender := &fakeSender{err: errors.New("provider down")}
	svc := newTestService(t, repo, sender)

	err := svc.Submit(context.Background(), SubmitInput{Name: "Al", Email: "a@b.co", Message: "hi"})
	require.NoError(t, err, "mail failure must not fail the submission")
	assert.Len(t, repo.created, 1)
}

func TestSubmitSurfacesPersistenceFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{err: errors.New("db down")}
	svc := newTestService(t, repo, nil)

	err := svc.Submit(context.Background(), SubmitInput{Name: "Al", Email: "a@b.co", Message: "hi"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInternal, typed.Code())
}
