// Package reason maintains the default and recovery reason lists.
package reason

import (
	"context"
	"time"

	"weiyue/internal/application/reason/dto"
	"weiyue/internal/domain/reason"
	"weiyue/internal/domain/sequence"
	"weiyue/internal/shared/biztime"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

const maxCreateAttempts = 3

// UpdateCommand is a raw partial update. Enabled holds the decoded JSON value
// and is nil when the field was absent.
type UpdateCommand struct {
	Content *string
	Enabled any
}

// Registry serves both reason lists through one repository.
type Registry struct {
	repo      reason.Repository
	sequencer sequence.Sequencer
	runner    db.Runner
	logger    logger.Interface
	now       func() time.Time
}

func NewRegistry(repo reason.Repository, sequencer sequence.Sequencer, runner db.Runner, logger logger.Interface) *Registry {
	return &Registry{
		repo:      repo,
		sequencer: sequencer,
		runner:    runner,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

// ListEnabled returns the enabled reasons, newest first.
func (s *Registry) ListEnabled(ctx context.Context, kind reason.Kind) ([]*dto.ReasonDTO, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	list, err := s.repo.ListEnabled(ctx, kind)
	if err != nil {
		s.logger.Errorw("failed to list enabled reasons", "kind", kind, "error", err)
		return nil, errors.NewInternalError("failed to list reasons")
	}
	return dto.ToReasonDTOs(list), nil
}

// ListAll returns every reason including disabled ones, newest first.
func (s *Registry) ListAll(ctx context.Context, kind reason.Kind) ([]*dto.ReasonDTO, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	list, err := s.repo.ListAll(ctx, kind)
	if err != nil {
		s.logger.Errorw("failed to list reasons", "kind", kind, "error", err)
		return nil, errors.NewInternalError("failed to list reasons")
	}
	return dto.ToReasonDTOs(list), nil
}

func (s *Registry) Get(ctx context.Context, kind reason.Kind, id string) (*dto.ReasonDTO, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	r, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		s.logger.Errorw("failed to get reason", "kind", kind, "id", id, "error", err)
		return nil, errors.NewInternalError("failed to get reason")
	}
	if r == nil {
		return nil, errors.NewNotFoundError(kind.String()+" reason not found", id)
	}
	return dto.ToReasonDTO(r), nil
}

// Create adds an enabled reason under a freshly minted identifier.
func (s *Registry) Create(ctx context.Context, kind reason.Kind, content string) (*dto.ReasonDTO, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	content = reason.NormalizeContent(content)
	if err := reason.ValidateContent(content); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var created *reason.Reason
	var err error
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		err = s.runner.Run(ctx, func(ctx context.Context) error {
			id, err := s.sequencer.Next(ctx, kind.Sequence())
			if err != nil {
				return err
			}
			r, err := reason.NewReason(kind, id, content, s.now())
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := s.repo.Create(ctx, r); err != nil {
				return err
			}
			created = r
			return nil
		})
		if err == nil || !errors.IsDuplicateError(err) {
			break
		}
		s.logger.Warnw("minted reason ID already taken, retrying", "kind", kind, "attempt", attempt)
	}
	if err != nil {
		s.logger.Errorw("failed to create reason", "kind", kind, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create reason")
	}

	s.logger.Infow("reason created", "kind", kind, "id", created.ID())
	return dto.ToReasonDTO(created), nil
}

// Update applies a partial update. It fails on an empty patch, on blank
// content, on an enabled flag other than 0, 1, true or false, and when no
// reason has the given ID.
func (s *Registry) Update(ctx context.Context, kind reason.Kind, id string, cmd UpdateCommand) (*dto.ReasonDTO, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	var patch reason.Patch
	if cmd.Content != nil {
		content := reason.NormalizeContent(*cmd.Content)
		patch.Content = &content
	}
	if cmd.Enabled != nil {
		enabled, err := reason.ParseEnabled(cmd.Enabled)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Enabled = &enabled
	}
	if err := patch.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var updated *reason.Reason
	err := s.runner.Run(ctx, func(ctx context.Context) error {
		matched, err := s.repo.Update(ctx, kind, id, patch, s.now())
		if err != nil {
			return err
		}
		if matched == 0 {
			return errors.NewNotFoundError(kind.String()+" reason not found", id)
		}
		updated, err = s.repo.GetByID(ctx, kind, id)
		return err
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to update reason", "kind", kind, "id", id, "error", err)
		return nil, errors.NewInternalError("failed to update reason")
	}

	s.logger.Infow("reason updated", "kind", kind, "id", id)
	return dto.ToReasonDTO(updated), nil
}

// SetEnabled is Update with only the enabled flag.
func (s *Registry) SetEnabled(ctx context.Context, kind reason.Kind, id string, enabled bool) (*dto.ReasonDTO, error) {
	return s.Update(ctx, kind, id, UpdateCommand{Enabled: enabled})
}

func checkKind(kind reason.Kind) error {
	if !kind.IsValid() {
		return errors.NewValidationError("unknown reason kind", kind.String())
	}
	return nil
}

