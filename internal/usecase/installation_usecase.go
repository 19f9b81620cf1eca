package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInstallationNotFound      = fmt.Errorf("installation not found: %w", entities.ErrNotFound)
	ErrInvalidInstallationStatus = fmt.Errorf("invalid installation status: %w", entities.ErrValidation)
	ErrInvalidScheduledDate      = fmt.Errorf("scheduled date is required: %w", entities.ErrValidation)
)

// InstallationView is an installation with the quote summary a customer
// sees when tracking it.
type InstallationView struct {
	Installation entities.Installation
	Quote        entities.Quote
}

type IInstallationUseCase interface {
	Schedule(ctx context.Context, quoteID string, scheduledDate time.Time, notes string) (entities.Installation, error)
	GetOwned(ctx context.Context, id, userID string) (InstallationView, error)
	UpdateStatus(ctx context.Context, id string, status entities.InstallationStatus) (entities.Installation, error)
}

type InstallationUseCase struct {
	repo   interfaces.IInstallationRepository
	quotes IQuoteUseCase
}

var _ IInstallationUseCase = (*InstallationUseCase)(nil)

func NewInstallationUseCase(repo interfaces.IInstallationRepository, quotes IQuoteUseCase) *InstallationUseCase {
	return &InstallationUseCase{repo: repo, quotes: quotes}
}

// Schedule books a visit for an existing quote. The installation belongs to
// the quote owner.
func (u *InstallationUseCase) Schedule(ctx context.Context, quoteID string, scheduledDate time.Time, notes string) (entities.Installation, error) {
	if scheduledDate.IsZero() {
		return entities.Installation{}, ErrInvalidScheduledDate
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Installation{}, err
	}

	inst := entities.Installation{
		ID:            uuid.NewString(),
		UserID:        q.UserID,
		QuoteID:       q.ID,
		ScheduledDate: scheduledDate.UTC(),
		Status:        entities.InstallationStatusScheduled,
		Notes:         strings.TrimSpace(notes),
		CreatedAt:     time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, inst)
	if err != nil {
		return entities.Installation{}, err
	}
	logger.FromCtx(ctx).Info("[installation][usecase] scheduled",
		zap.String("installation_id", created.ID), zap.String("quote_id", q.ID), zap.Time("date", created.ScheduledDate))
	return created, nil
}

func (u *InstallationUseCase) GetOwned(ctx context.Context, id, userID string) (InstallationView, error) {
	inst, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return InstallationView{}, err
	}
	if inst.ID == "" || inst.UserID != userID {
		return InstallationView{}, ErrInstallationNotFound
	}
	q, err := u.quotes.GetByID(ctx, inst.QuoteID)
	if err != nil {
		return InstallationView{}, err
	}
	return InstallationView{Installation: inst, Quote: q}, nil
}

// UpdateStatus moves an installation. Completing it completes the quote; an
// already completed quote is left as is.
func (u *InstallationUseCase) UpdateStatus(ctx context.Context, id string, status entities.InstallationStatus) (entities.Installation, error) {
	if !status.Valid() {
		return entities.Installation{}, ErrInvalidInstallationStatus
	}
	inst, err := u.repo.UpdateStatus(ctx, strings.TrimSpace(id), status)
	if err != nil {
		return entities.Installation{}, err
	}
	if inst.ID == "" {
		return entities.Installation{}, ErrInstallationNotFound
	}

	if status == entities.InstallationStatusCompleted {
		if _, err := u.quotes.MarkCompleted(ctx, inst.QuoteID); err != nil {
			logger.FromCtx(ctx).Warn("[installation][usecase] quote not marked completed",
				zap.String("quote_id", inst.QuoteID), zap.Error(err))
		}
	}
	return inst, nil
}
