package repository

import (
	"context"
	"testing"
	"time"

	"polymesh/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleQuote() entities.Quote {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return entities.Quote{
		ID:            "abc123",
		UserID:        "alice",
		WindowCount:   2,
		Measurements:  []entities.Measurement{{Width: 1, Height: 1}, {Width: 2, Height: 1}},
		Material:      "fiberglass",
		Type:          "sliding",
		Location:      "Nairobi",
		Warranty:      "standard",
		TotalArea:     3,
		BaseCost:      5400,
		WarrantyCost:  900,
		TotalCost:     6300,
		Status:        entities.QuoteStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		ValidUntil:    created.Add(entities.QuoteValidity),
		CreatedAt:     created,
	}
}

func TestQuoteDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuoteDynamoRepository(ddb)
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleQuote()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := aws.ToString(ddb.putIn.ConditionExpression); got != "attribute_not_exists(#id)" {
		t.Fatalf("unexpected condition %q", got)
	}
	if _, err := repo.Create(ctx, sampleQuote()); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	got, err := repo.GetByID(ctx, "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalCost != 6300 || len(got.Measurements) != 2 || !got.CreatedAt.Equal(sampleQuote().CreatedAt) {
		t.Fatalf("unexpected quote %+v", got)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero quote, got %+v err=%v", missing, err)
	}
}

func TestQuoteDynamoRepository_UpdatePaymentStatus(t *testing.T) {
	t.Run("guarded on expected status", func(t *testing.T) {
		ddb := newFakeDynamo()
		stored := toQuoteItem(sampleQuote())
		stored.PaymentStatus = string(entities.PaymentStatusCompleted)
		attrs, err := attributevalue.MarshalMap(stored)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		ddb.updateOut = &dynamodb.UpdateItemOutput{Attributes: attrs}
		repo := NewQuoteDynamoRepository(ddb)

		details := &entities.PaymentDetails{TransactionID: "ws_CO_1", Amount: 3150, Phone: "254712345678", Date: time.Now()}
		got, err := repo.UpdatePaymentStatus(context.Background(), "abc123", entities.PaymentStatusPending, entities.PaymentStatusCompleted, details)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected status %s", got.PaymentStatus)
		}

		in := ddb.updateIn
		if cond := aws.ToString(in.ConditionExpression); cond != "attribute_exists(#id) AND #payment_status = :expected" {
			t.Fatalf("unexpected condition %q", cond)
		}
		if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS).Value; v != "pending" {
			t.Fatalf("unexpected expected value %q", v)
		}
		if _, ok := in.ExpressionAttributeValues[":details"].(*types.AttributeValueMemberM); !ok {
			t.Fatalf("payment details not written")
		}
		if in.ExpressionAttributeNames["#id"] != "id" {
			t.Fatalf("missing #id name")
		}
	})

	t.Run("condition failed yields zero quote", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.updateErr = &types.ConditionalCheckFailedException{}
		repo := NewQuoteDynamoRepository(ddb)

		got, err := repo.UpdatePaymentStatus(context.Background(), "abc123", entities.PaymentStatusPending, entities.PaymentStatusFailed, nil)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero quote, got %+v err=%v", got, err)
		}
		if _, ok := ddb.updateIn.ExpressionAttributeValues[":details"]; ok {
			t.Fatalf("details must not be written when nil")
		}
	})
}

func TestQuoteDynamoRepository_ListByUserID(t *testing.T) {
	ddb := newFakeDynamo()
	older := sampleQuote()
	newer := sampleQuote()
	newer.ID = "def456"
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)
	for _, q := range []entities.Quote{older, newer} {
		av, err := attributevalue.MarshalMap(toQuoteItem(q))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		ddb.queryOut = append(ddb.queryOut, av)
	}
	repo := NewQuoteDynamoRepository(ddb)

	got, err := repo.ListByUserID(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(ddb.queryIn.IndexName) != quotesUserIDIndex {
		t.Fatalf("expected query on %s", quotesUserIDIndex)
	}
	if len(got) != 2 || got[0].ID != "def456" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}
