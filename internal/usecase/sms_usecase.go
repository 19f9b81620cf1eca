package usecase

import (
	"context"
	"fmt"
	"strings"

	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidSMSPhone  = fmt.Errorf("phone needs at least 9 digits: %w", entities.ErrValidation)
	ErrEmptySMSMessage  = fmt.Errorf("message is required: %w", entities.ErrValidation)
	ErrSMSNotConfigured = fmt.Errorf("sms gateway not configured: %w", entities.ErrNotification)
)

// ISMSUseCase lets admins text a customer directly. Unlike the automatic
// notifications, delivery errors are returned.
type ISMSUseCase interface {
	Send(ctx context.Context, phone, message string) error
}

type SMSUseCase struct {
	sms interfaces.ISMSNotifier
}

var _ ISMSUseCase = (*SMSUseCase)(nil)

func NewSMSUseCase(sms interfaces.ISMSNotifier) *SMSUseCase {
	return &SMSUseCase{sms: sms}
}

func (u *SMSUseCase) Send(ctx context.Context, phone, message string) error {
	to := toSMSRecipient(phone)
	if to == "" {
		return ErrInvalidSMSPhone
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptySMSMessage
	}
	if u.sms == nil {
		return ErrSMSNotConfigured
	}
	if err := u.sms.Send(ctx, to, smsPrefix+message); err != nil {
		logger.FromCtx(ctx).Error("[sms][usecase] admin sms failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("%w: %v", entities.ErrNotification, err)
	}
	logger.FromCtx(ctx).Info("[sms][usecase] admin sms sent", zap.String("to", to))
	return nil
}
