package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInquiryType  = fmt.Errorf("inquiryType must be general, quote, technical or complaint: %w", entities.ErrValidation)
	ErrInquiryPhoneMissing = fmt.Errorf("phone is required: %w", entities.ErrValidation)
)

type InquiryInput struct {
	UserID      string
	Name        string
	Email       string
	Phone       string
	InquiryType string
	Message     string
}

type IInquiryUseCase interface {
	Submit(ctx context.Context, in InquiryInput) (entities.Inquiry, error)
}

type InquiryUseCase struct {
	repo interfaces.IInquiryRepository
	sms  interfaces.ISMSNotifier
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.IInquiryRepository, sms interfaces.ISMSNotifier) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, sms: sms}
}

func (u *InquiryUseCase) Submit(ctx context.Context, in InquiryInput) (entities.Inquiry, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Inquiry{}, ErrInvalidName
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.Inquiry{}, err
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return entities.Inquiry{}, ErrInquiryPhoneMissing
	}
	kind := entities.InquiryType(strings.ToLower(strings.TrimSpace(in.InquiryType)))
	if !kind.Valid() {
		return entities.Inquiry{}, ErrInvalidInquiryType
	}

	inquiry := entities.Inquiry{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Name:        name,
		Email:       email,
		Phone:       phone,
		InquiryType: kind,
		Message:     strings.TrimSpace(in.Message),
		Status:      entities.InquiryStatusNew,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, inquiry)
	if err != nil {
		return entities.Inquiry{}, err
	}

	notify(ctx, u.sms, phone, fmt.Sprintf("Thank you for your %s inquiry. We'll respond within 24 hours.", kind))
	return created, nil
}
