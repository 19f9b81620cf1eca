package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb timeout" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	body := err.ToHTTPError()
	if body.Success || body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body %+v", body)
	}

	simple := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	if simple.Error() != "QUOTE_NOT_FOUND: Quote not found" || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error %v", simple)
	}
}
