package seller

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"emporia-be/internal/logger"
	"emporia-be/internal/user"

	"go.uber.org/zap"
)

// State is the workflow position of a user's seller registration, derived
// from the latest application row plus the session's one-shot approval flag.
type State string

const (
	StateNone           State = "none"
	StatePending        State = "pending"
	StateApprovedUnseen State = "approved_unseen"
	StateApprovedSeen   State = "approved_seen"
	StateDeclined       State = "declined"
)

var (
	// Optional leading +, then 10 to 15 digits.
	phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)
	// 5 or 6 digit postal code.
	postalPattern = regexp.MustCompile(`^\d{5,6}$`)
)

type Service interface {
	Resolve(ctx context.Context, userID int, seenApproval bool) (State, *Application, error)
	Apply(ctx context.Context, userID int, in ApplicationInput) (*Application, error)
	ListAll(ctx context.Context) ([]*Application, error)
	Approve(ctx context.Context, id int) error
	Decline(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Resolve(ctx context.Context, userID int, seenApproval bool) (State, *Application, error) {
	a, err := s.repo.FindLatestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StateNone, nil, nil
		}
		logger.FromCtx(ctx).Error("failed to look up seller application",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return "", nil, err
	}

	switch a.Status {
	case StatusApproved:
		if seenApproval {
			return StateApprovedSeen, a, nil
		}
		return StateApprovedUnseen, a, nil
	case StatusDeclined:
		return StateDeclined, a, nil
	default:
		return StatePending, a, nil
	}
}

func validateInput(in ApplicationInput) error {
	for _, field := range []string{
		in.FirstName, in.LastName, in.Email, in.PhoneNumber,
		in.Address, in.PostalCode, in.BusinessName, in.Description,
	} {
		if field == "" {
			return ErrFieldsRequired
		}
	}
	if !user.ValidEmail(in.Email) {
		return ErrInvalidEmail
	}
	if !phonePattern.MatchString(in.PhoneNumber) {
		return ErrInvalidPhoneNumber
	}
	if !postalPattern.MatchString(in.PostalCode) {
		return ErrInvalidPostalCode
	}
	return nil
}

// Apply validates the submission and persists it with status pending.
// A pending application blocks resubmission; a declined one does not.
func (s *service) Apply(ctx context.Context, userID int, in ApplicationInput) (*Application, error) {
	log := logger.FromCtx(ctx)

	if err := validateInput(in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindLatestByUserID(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil && existing.Status == StatusPending {
		return nil, ErrAlreadyPending
	}

	a, err := s.repo.Create(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	log.Info("seller application submitted",
		zap.Int("user_id", userID),
		zap.Int("application_id", a.ID),
	)

	return a, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Application, error) {
	return s.repo.ListAll(ctx)
}

// Approve sets the status unconditionally, whatever the prior status was.
func (s *service) Approve(ctx context.Context, id int) error {
	return s.repo.UpdateStatus(ctx, id, StatusApproved)
}

// Decline sets the status unconditionally, whatever the prior status was.
func (s *service) Decline(ctx context.Context, id int) error {
	return s.repo.UpdateStatus(ctx, id, StatusDeclined)
}
