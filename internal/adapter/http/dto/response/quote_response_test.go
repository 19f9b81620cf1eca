package response

import (
	"encoding/json"
	"strings"
	"testing"

	"polymesh/internal/domain/entities"
	"polymesh/internal/domain/pricing"
	"polymesh/internal/usecase"
)

func TestFromCreatedQuote(t *testing.T) {
	cq := usecase.CreatedQuote{
		Quote:                 entities.Quote{ID: "abc123", TotalCost: 6300.4},
		Breakdown:             pricing.Breakdown{Material: "fiberglass @ KES 1500/m²"},
		EstimatedInstallation: "3-5 working days",
	}

	got := FromCreatedQuote(cq)
	if !got.Success || got.Quote.ID != "abc123" || got.Quote.TotalCost != 6300 {
		t.Fatalf("unexpected response %+v", got)
	}
	if n := len(got.Quote.NextSteps); n != 3 || got.Quote.NextSteps[2] != "Installation in 3-5 working days" {
		t.Fatalf("unexpected next steps %v", got.Quote.NextSteps)
	}
}

func TestFromQuotes_OwnHidesUser(t *testing.T) {
	qs := []entities.Quote{{ID: "q1", UserID: "alice", PaymentDetails: &entities.PaymentDetails{TransactionID: "ws_CO_1"}}}

	own, err := json.Marshal(FromQuotes(qs, true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(own), "alice") {
		t.Fatalf("owner id leaked: %s", own)
	}
	if !strings.Contains(string(own), `"transactionId":"ws_CO_1"`) || !strings.Contains(string(own), `"count":1`) {
		t.Fatalf("unexpected body: %s", own)
	}

	admin := FromQuotes(qs, false)
	if admin.Quotes[0].UserID != "alice" {
		t.Fatalf("admin listing should carry the owner")
	}
}
