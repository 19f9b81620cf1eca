package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/domain/entities"
	"polymesh/internal/domain/pricing"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase"
	"polymesh/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// knownErrors gives client-facing codes to the errors callers can act on.
// Anything else falls back to its kind in mapError.
var knownErrors = []struct {
	err     error
	code    string
	message string
}{
	{pricing.ErrInvalidMaterial, "INVALID_MATERIAL", "Material must be fiberglass, polyester or stainless"},
	{pricing.ErrInvalidMeshType, "INVALID_TYPE", "Type must be fixed, sliding, retractable, pleated, magnetic or velcro"},
	{pricing.ErrInvalidWarranty, "INVALID_WARRANTY", "Warranty must be basic, standard or premium"},
	{pricing.ErrNoMeasurements, "INVALID_MEASUREMENTS", "At least one measurement is required"},
	{pricing.ErrInvalidMeasurement, "INVALID_MEASUREMENTS", "Width and height must be greater than zero"},
	{pricing.ErrInvalidWindowCount, "INVALID_WINDOW_COUNT", "Window count must be at least 1"},
	{pricing.ErrMissingLocation, "INVALID_LOCATION", "Location is required"},

	{usecase.ErrInvalidPhone, "INVALID_PHONE", "Phone must be in format +254XXXXXXXXX"},
	{usecase.ErrInvalidAmount, "INVALID_AMOUNT", "Amount must be between KES 1 and KES 2147483647"},
	{usecase.ErrQuoteAlreadyPaid, "QUOTE_ALREADY_PAID", "Quote has already been paid"},
	{usecase.ErrGatewayNotAvailable, "PAYMENT_UNAVAILABLE", "M-Pesa payments are temporarily unavailable"},
	{usecase.ErrQuoteNotFound, "QUOTE_NOT_FOUND", "Quote not found"},
	{usecase.ErrQuoteStatusTransition, "QUOTE_STATUS_CONFLICT", "Quote is not in a state that allows this action"},

	{usecase.ErrInvalidName, "INVALID_NAME", "Name is required"},
	{usecase.ErrInvalidEmail, "INVALID_EMAIL", "A valid email is required"},
	{usecase.ErrWeakPassword, "WEAK_PASSWORD", "Password must have at least 6 characters"},
	{usecase.ErrEmailTaken, "USER_EXISTS", "User already exists"},
	{usecase.ErrInvalidCredentials, "INVALID_CREDENTIALS", "Invalid credentials"},
	{usecase.ErrUserNotFound, "USER_NOT_FOUND", "User not found"},

	{usecase.ErrInvalidRating, "INVALID_RATING", "Rating must be between 1 and 5"},
	{usecase.ErrReviewNotFound, "REVIEW_NOT_FOUND", "Review not found"},
	{usecase.ErrInvalidInquiryType, "INVALID_INQUIRY_TYPE", "Inquiry type must be general, quote, technical or complaint"},
	{usecase.ErrInquiryPhoneMissing, "INVALID_PHONE", "Phone is required"},
	{usecase.ErrInstallationNotFound, "INSTALLATION_NOT_FOUND", "Installation not found"},
	{usecase.ErrInvalidInstallationStatus, "INVALID_STATUS", "Status must be scheduled, in-progress, completed or cancelled"},
	{usecase.ErrInvalidScheduledDate, "INVALID_SCHEDULED_DATE", "Scheduled date is required"},
	{usecase.ErrMissingAddress, "INVALID_ADDRESS", "Address is required"},
	{usecase.ErrInvalidSMSPhone, "INVALID_PHONE", "Phone number is invalid"},
	{usecase.ErrEmptySMSMessage, "INVALID_MESSAGE", "Message is required"},
	{usecase.ErrSMSNotConfigured, "SMS_UNAVAILABLE", "SMS service is not configured"},
}

func mapError(err error) *pkg.AppError {
	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			return pkg.NewDomainError(k.code, k.message, err, statusFor(err))
		}
	}
	switch {
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Request conflicts with the current state", err, http.StatusConflict)
	case errors.Is(err, entities.ErrPaymentInitiation):
		return pkg.NewDomainError("PAYMENT_FAILED", "Payment initiation failed", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrNotification):
		return pkg.NewDomainError("SMS_FAILED", "Failed to send SMS", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrUnauthorized):
		return pkg.NewDomainError("UNAUTHORIZED", "Unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, entities.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Forbidden", err, http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entities.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrPaymentInitiation), errors.Is(err, entities.ErrNotification):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs and writes the envelope for a use case failure.
func writeError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	log := logger.FromCtx(c.Request.Context())
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("["+area+"][handler] request failed", zap.String("code", appErr.Code), zap.Error(err))
	} else {
		log.Info("["+area+"][handler] request rejected", zap.String("code", appErr.Code), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// writeBindError answers a body that failed to bind. Missing required
// fields are listed individually; malformed JSON gets the generic envelope.
func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	out := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, response.FieldError{
			Field:   jsonName(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{Success: false, Errors: out})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return jsonName(fe.Field()) + " is required"
	default:
		return jsonName(fe.Field()) + " is invalid"
	}
}

// jsonName lower-cases the first letter of a Go field name (QuoteID ->
// quoteID), close enough to the camelCase JSON keys for error messages.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
