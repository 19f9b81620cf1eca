package interfaces

import "context"

// ISMSNotifier sends a text message to a Kenyan MSISDN (+254XXXXXXXXX).
type ISMSNotifier interface {
	Send(ctx context.Context, phone, message string) error
}
