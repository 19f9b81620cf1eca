package interfaces

import (
	"context"
	"errors"
)

// ErrGatewayUnauthorized is returned (wrapped) by SubmitCharge when the
// gateway rejects the access token. The charge was not accepted.
var ErrGatewayUnauthorized = errors.New("payment gateway unauthorized")

// ChargeRequest is a customer-initiated mobile money charge (STK push).
type ChargeRequest struct {
	Phone            string
	Amount           int
	AccountReference string
	Description      string
}

// ChargeResponse is the gateway acknowledgement of a ChargeRequest.
type ChargeResponse struct {
	MerchantRequestID   string
	CheckoutRequestID   string
	ResponseCode        string
	ResponseDescription string
	CustomerMessage     string
}

// IPaymentGateway abstracts the mobile money provider (Safaricom Daraja).
//
// Access tokens are short lived; callers fetch one per charge and are not
// expected to cache it.
type IPaymentGateway interface {
	GetAccessToken(ctx context.Context) (string, error)
	SubmitCharge(ctx context.Context, accessToken string, req ChargeRequest) (ChargeResponse, error)
}
