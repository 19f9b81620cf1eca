package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/domain/pricing"
	mock_interfaces "polymesh/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validPricingInput() pricing.Input {
	return pricing.Input{
		WindowCount:  2,
		Measurements: []entities.Measurement{{Width: 1, Height: 1}, {Width: 2, Height: 1}},
		Material:     "fiberglass",
		MeshType:     "sliding",
		Location:     "Nairobi",
		Warranty:     "standard",
	}
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("invalid user", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), " ", validPricingInput())
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("pricing validation error", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		in := validPricingInput()
		in.Material = "gold"
		_, err := uc.Create(context.Background(), "user-1", in)
		if !errors.Is(err, pricing.ErrInvalidMaterial) || !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected material validation error, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.Create(context.Background(), "user-1", validPricingInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success with sms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		sms := mock_interfaces.NewMockISMSNotifier(ctrl)
		uc := NewQuoteUseCase(repo, users, sms)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || strings.Contains(q.ID, "-") {
					t.Fatalf("expected dash-free id, got %q", q.ID)
				}
				if q.UserID != "user-1" || q.Status != entities.QuoteStatusPending || q.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.TotalArea != 3 || q.BaseCost != 5400 || q.WarrantyCost != 900 || q.TotalCost != 6300 {
					t.Fatalf("unexpected pricing: %+v", q)
				}
				if got := q.ValidUntil.Sub(q.CreatedAt); got != 7*24*time.Hour {
					t.Fatalf("expected 7 day validity, got %v", got)
				}
				if q.PaymentDetails != nil {
					t.Fatalf("payment details must start empty")
				}
				return q, nil
			},
		)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Phone: "0712345678"}, nil)
		sms.EXPECT().Send(gomock.Any(), "+254712345678", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, msg string) error {
				if !strings.HasPrefix(msg, "PolyMesh Kenya: Your quote for 2 fiberglass sliding windows is KES 6300.") {
					t.Fatalf("unexpected sms: %q", msg)
				}
				return nil
			},
		)

		res, err := uc.Create(context.Background(), "user-1", validPricingInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EstimatedInstallation != "3-5 working days" {
			t.Fatalf("unexpected installation window %q", res.EstimatedInstallation)
		}
		if res.Breakdown.Type != "sliding (x1.2)" {
			t.Fatalf("unexpected breakdown %+v", res.Breakdown)
		}
	})

	t.Run("sms failure does not fail create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		sms := mock_interfaces.NewMockISMSNotifier(ctrl)
		uc := NewQuoteUseCase(repo, users, sms)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Phone: "+254712345678"}, nil)
		sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("gateway down"))

		if _, err := uc.Create(context.Background(), "user-1", validPricingInput()); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})

	t.Run("owner without phone skips sms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		sms := mock_interfaces.NewMockISMSNotifier(ctrl)
		uc := NewQuoteUseCase(repo, users, sms)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		if _, err := uc.Create(context.Background(), "user-1", validPricingInput()); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetOwned(t *testing.T) {
	repo := newMemQuoteRepo(entities.Quote{ID: "q1", UserID: "alice"})
	uc := NewQuoteUseCase(repo, nil, nil)

	if _, err := uc.GetOwned(context.Background(), "q1", "alice"); err != nil {
		t.Fatalf("owner should read quote: %v", err)
	}
	if _, err := uc.GetOwned(context.Background(), "q1", "bob"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound for other user, got %v", err)
	}
	if _, err := uc.GetOwned(context.Background(), "missing", "alice"); !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidQuoteID) {
		t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
	}
}

func TestQuoteUseCase_ListByOwnerNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := newMemQuoteRepo(
		entities.Quote{ID: "old", UserID: "alice", CreatedAt: base},
		entities.Quote{ID: "new", UserID: "alice", CreatedAt: base.Add(2 * time.Hour)},
		entities.Quote{ID: "mid", UserID: "alice", CreatedAt: base.Add(time.Hour)},
		entities.Quote{ID: "other", UserID: "bob", CreatedAt: base.Add(3 * time.Hour)},
	)
	uc := NewQuoteUseCase(repo, nil, nil)

	quotes, err := uc.ListByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []string
	for _, q := range quotes {
		ids = append(ids, q.ID)
	}
	if !reflect.DeepEqual(ids, []string{"new", "mid", "old"}) {
		t.Fatalf("unexpected order %v", ids)
	}

	all, err := uc.ListAll(context.Background())
	if err != nil || len(all) != 4 || all[0].ID != "other" {
		t.Fatalf("unexpected list all %v err=%v", all, err)
	}
}

func TestQuoteUseCase_UpdatePaymentStatus(t *testing.T) {
	completedDetails := &entities.PaymentDetails{TransactionID: "ws_CO_1", Amount: 3150, Phone: "+254712345678"}

	tests := []struct {
		name    string
		current entities.PaymentStatus
		details *entities.PaymentDetails
		target  entities.PaymentStatus
		with    *entities.PaymentDetails
		want    entities.PaymentStatus
		wantErr error
	}{
		{name: "pending to completed", current: entities.PaymentStatusPending, target: entities.PaymentStatusCompleted, with: completedDetails, want: entities.PaymentStatusCompleted},
		{name: "pending to failed", current: entities.PaymentStatusPending, target: entities.PaymentStatusFailed, want: entities.PaymentStatusFailed},
		{name: "failed to pending retry", current: entities.PaymentStatusFailed, target: entities.PaymentStatusPending, want: entities.PaymentStatusPending},
		{name: "failed to completed late success", current: entities.PaymentStatusFailed, target: entities.PaymentStatusCompleted, with: completedDetails, want: entities.PaymentStatusCompleted},
		{name: "pending to pending no-op", current: entities.PaymentStatusPending, target: entities.PaymentStatusPending, want: entities.PaymentStatusPending},
		{name: "completed to pending conflict", current: entities.PaymentStatusCompleted, details: completedDetails, target: entities.PaymentStatusPending, wantErr: ErrPaymentRegression},
		{name: "completed to failed conflict", current: entities.PaymentStatusCompleted, details: completedDetails, target: entities.PaymentStatusFailed, wantErr: ErrPaymentRegression},
		{name: "completed again same transaction", current: entities.PaymentStatusCompleted, details: completedDetails, target: entities.PaymentStatusCompleted, with: completedDetails, want: entities.PaymentStatusCompleted},
		{name: "completed again other transaction", current: entities.PaymentStatusCompleted, details: completedDetails, target: entities.PaymentStatusCompleted, with: &entities.PaymentDetails{TransactionID: "ws_CO_2"}, wantErr: ErrPaymentTransactionDiff},
		{name: "completed without details", current: entities.PaymentStatusPending, target: entities.PaymentStatusCompleted, wantErr: ErrInvalidPaymentDetails},
		{name: "unknown status", current: entities.PaymentStatusPending, target: entities.PaymentStatus("refunded"), wantErr: ErrInvalidPaymentStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := entities.Quote{ID: "q1", UserID: "alice", TotalCost: 6300, PaymentStatus: tt.current, PaymentDetails: tt.details}
			repo := newMemQuoteRepo(stored)
			uc := NewQuoteUseCase(repo, nil, nil)

			got, err := uc.UpdatePaymentStatus(context.Background(), "q1", tt.target, tt.with)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				after, _ := repo.GetByID(context.Background(), "q1")
				if !reflect.DeepEqual(after, stored) {
					t.Fatalf("stored quote changed on error: %+v", after)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.PaymentStatus != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got.PaymentStatus)
			}
			if got.TotalCost != 6300 {
				t.Fatalf("non-payment fields must not change: %+v", got)
			}
		})
	}
}

func TestQuoteUseCase_UpdatePaymentStatus_NotFound(t *testing.T) {
	uc := NewQuoteUseCase(newMemQuoteRepo(), nil, nil)
	_, err := uc.UpdatePaymentStatus(context.Background(), "nope", entities.PaymentStatusPending, nil)
	if !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestQuoteUseCase_UpdatePaymentStatus_ConditionFailedRereads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil, nil)

	details := &entities.PaymentDetails{TransactionID: "ws_CO_1"}
	settled := entities.Quote{ID: "q1", PaymentStatus: entities.PaymentStatusCompleted, PaymentDetails: details}

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", PaymentStatus: entities.PaymentStatusPending}, nil),
		repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "q1", entities.PaymentStatusPending, entities.PaymentStatusCompleted, details).Return(entities.Quote{}, nil),
		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(settled, nil),
	)

	got, err := uc.UpdatePaymentStatus(context.Background(), "q1", entities.PaymentStatusCompleted, details)
	if err != nil {
		t.Fatalf("expected no-op after concurrent identical write, got %v", err)
	}
	if got.PaymentStatus != entities.PaymentStatusCompleted {
		t.Fatalf("unexpected quote %+v", got)
	}
}

func TestQuoteUseCase_UpdatePaymentStatus_ConcurrentCompletions(t *testing.T) {
	repo := newMemQuoteRepo(entities.Quote{ID: "q1", PaymentStatus: entities.PaymentStatusPending})
	uc := NewQuoteUseCase(repo, nil, nil)
	details := &entities.PaymentDetails{TransactionID: "ws_CO_1", Amount: 100}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.UpdatePaymentStatus(context.Background(), "q1", entities.PaymentStatusCompleted, details)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("duplicate completion must not error: %v", err)
		}
	}
	if repo.writes != 1 {
		t.Fatalf("expected exactly one write, got %d", repo.writes)
	}
}

func TestQuoteUseCase_StatusLifecycle(t *testing.T) {
	repo := newMemQuoteRepo(entities.Quote{ID: "q1", Status: entities.QuoteStatusPending})
	uc := NewQuoteUseCase(repo, nil, nil)
	ctx := context.Background()

	if _, err := uc.MarkCompleted(ctx, "q1"); !errors.Is(err, ErrQuoteStatusTransition) {
		t.Fatalf("pending quote cannot complete, got %v", err)
	}
	q, err := uc.MarkAccepted(ctx, "q1")
	if err != nil || q.Status != entities.QuoteStatusAccepted {
		t.Fatalf("expected accepted, got %+v err=%v", q, err)
	}
	if _, err := uc.MarkAccepted(ctx, "q1"); !errors.Is(err, entities.ErrConflict) {
		t.Fatalf("second accept must conflict, got %v", err)
	}
	q, err = uc.ReleaseAccepted(ctx, "q1")
	if err != nil || q.Status != entities.QuoteStatusPending {
		t.Fatalf("expected released to pending, got %+v err=%v", q, err)
	}
	if _, err := uc.ReleaseAccepted(ctx, "q1"); !errors.Is(err, ErrQuoteStatusTransition) {
		t.Fatalf("pending quote cannot be released, got %v", err)
	}
	if _, err := uc.MarkAccepted(ctx, "q1"); err != nil {
		t.Fatalf("re-accept failed: %v", err)
	}
	q, err = uc.MarkCompleted(ctx, "q1")
	if err != nil || q.Status != entities.QuoteStatusCompleted {
		t.Fatalf("expected completed, got %+v err=%v", q, err)
	}
	if _, err := uc.MarkAccepted(ctx, "missing"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestQuoteUseCase_MarkAccepted_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusPending}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuoteStatusPending, entities.QuoteStatusAccepted).Return(entities.Quote{}, nil)

	if _, err := uc.MarkAccepted(context.Background(), "q1"); !errors.Is(err, ErrQuoteStatusTransition) {
		t.Fatalf("expected ErrQuoteStatusTransition, got %v", err)
	}
}
