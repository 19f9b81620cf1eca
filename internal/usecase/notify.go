package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const smsPrefix = "PolyMesh Kenya: "

var kenyanMSISDN = regexp.MustCompile(`^\+?254\d{9}$`)

// ValidMSISDN reports whether phone is +254XXXXXXXXX or 254XXXXXXXXX.
func ValidMSISDN(phone string) bool {
	return kenyanMSISDN.MatchString(phone)
}

// toSMSRecipient turns any stored phone into +254 followed by its last nine
// digits. It returns "" when fewer than nine digits are present.
func toSMSRecipient(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 9 {
		return ""
	}
	return "+254" + d[len(d)-9:]
}

// notify sends a best-effort SMS. Failures are logged and never returned.
func notify(ctx context.Context, sms interfaces.ISMSNotifier, phone, message string) {
	if sms == nil {
		return
	}
	to := toSMSRecipient(phone)
	if to == "" {
		logger.FromCtx(ctx).Debug("[sms][usecase] skipped, no usable phone", zap.String("phone", phone))
		return
	}
	if err := sms.Send(ctx, to, smsPrefix+message); err != nil {
		logger.FromCtx(ctx).Warn("[sms][usecase] notification failed",
			zap.String("to", to),
			zap.Error(fmt.Errorf("%w: %v", entities.ErrNotification, err)),
		)
	}
}

func formatKES(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
