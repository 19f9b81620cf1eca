package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const quotesCollectionName = "quotes"

type paymentDetailsDocument struct {
	TransactionID string    `bson:"transactionId"`
	ReceiptNumber string    `bson:"receiptNumber,omitempty"`
	Amount        float64   `bson:"amount"`
	Phone         string    `bson:"phone"`
	Date          time.Time `bson:"date"`
}

type measurementDocument struct {
	Width  float64 `bson:"width"`
	Height float64 `bson:"height"`
}

// legacyID reads ids stored either as strings or as ObjectIds, which is how
// the existing collection keys quotes and their owners.
type legacyID string

func (id *legacyID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	if oid, ok := rv.ObjectIDOK(); ok {
		*id = legacyID(oid.Hex())
		return nil
	}
	if s, ok := rv.StringValueOK(); ok {
		*id = legacyID(s)
		return nil
	}
	if t == bsontype.Null {
		*id = ""
		return nil
	}
	return fmt.Errorf("quote id: unsupported bson type %s", t)
}

// idMatch matches a hex id against both its ObjectId and string forms.
func idMatch(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.D{{Key: "$in", Value: bson.A{oid, id}}}
	}
	return id
}

// quoteDocument keeps the field names of the existing quotes collection.
type quoteDocument struct {
	ID             legacyID                `bson:"_id"`
	UserID         legacyID                `bson:"user"`
	WindowCount    int                     `bson:"windowCount"`
	Measurements   []measurementDocument   `bson:"measurements"`
	Material       string                  `bson:"material"`
	Type           string                  `bson:"type"`
	Location       string                  `bson:"location"`
	Warranty       string                  `bson:"warranty"`
	TotalArea      float64                 `bson:"totalArea"`
	BaseCost       float64                 `bson:"baseCost"`
	WarrantyCost   float64                 `bson:"warrantyCost"`
	TotalCost      float64                 `bson:"totalCost"`
	Status         string                  `bson:"status"`
	PaymentStatus  string                  `bson:"paymentStatus"`
	PaymentDetails *paymentDetailsDocument `bson:"paymentDetails,omitempty"`
	ValidUntil     time.Time               `bson:"validUntil"`
	CreatedAt      time.Time               `bson:"createdAt"`
}

// QuoteMongoRepository stores quotes in MongoDB for deployments that have
// not moved to DynamoDB. Updates filter on the expected status, matching
// the DynamoDB condition expressions.
type QuoteMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IQuoteRepository = (*QuoteMongoRepository)(nil)

func NewQuoteMongoRepository(db *mongo.Database) *QuoteMongoRepository {
	return &QuoteMongoRepository{coll: db.Collection(getenvDefault("QUOTES_COLLECTION", quotesCollectionName))}
}

// EnsureIndexes creates the owner index used by ListByUserID.
func (r *QuoteMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (r *QuoteMongoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if _, err := r.coll.InsertOne(ctx, toQuoteDocument(q)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entities.Quote{}, interfaces.ErrAlreadyExists
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteMongoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: idMatch(id)}})
}

func (r *QuoteMongoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	return r.find(ctx, bson.D{{Key: "user", Value: idMatch(userID)}})
}

func (r *QuoteMongoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	return r.find(ctx, bson.D{})
}

func (r *QuoteMongoRepository) UpdatePaymentStatus(
	ctx context.Context,
	id string,
	expected, status entities.PaymentStatus,
	details *entities.PaymentDetails,
) (entities.Quote, error) {
	set := bson.D{{Key: "paymentStatus", Value: string(status)}}
	if details != nil {
		set = append(set, bson.E{Key: "paymentDetails", Value: paymentDetailsDocument{
			TransactionID: details.TransactionID,
			ReceiptNumber: details.ReceiptNumber,
			Amount:        details.Amount,
			Phone:         details.Phone,
			Date:          details.Date.UTC(),
		}})
	}
	filter := bson.D{{Key: "_id", Value: idMatch(id)}, {Key: "paymentStatus", Value: string(expected)}}
	return r.findOneAndSet(ctx, filter, set)
}

func (r *QuoteMongoRepository) UpdateStatus(ctx context.Context, id string, expected, status entities.QuoteStatus) (entities.Quote, error) {
	filter := bson.D{{Key: "_id", Value: idMatch(id)}, {Key: "status", Value: string(expected)}}
	return r.findOneAndSet(ctx, filter, bson.D{{Key: "status", Value: string(status)}})
}

func (r *QuoteMongoRepository) findOne(ctx context.Context, filter bson.D) (entities.Quote, error) {
	var doc quoteDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return fromQuoteDocument(doc), nil
}

func (r *QuoteMongoRepository) find(ctx context.Context, filter bson.D) ([]entities.Quote, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []quoteDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromQuoteDocument(d))
	}
	return out, nil
}

// findOneAndSet returns a zero Quote when the filter no longer matches.
func (r *QuoteMongoRepository) findOneAndSet(ctx context.Context, filter, set bson.D) (entities.Quote, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc quoteDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return fromQuoteDocument(doc), nil
}

func toQuoteDocument(q entities.Quote) quoteDocument {
	ms := make([]measurementDocument, 0, len(q.Measurements))
	for _, m := range q.Measurements {
		ms = append(ms, measurementDocument{Width: m.Width, Height: m.Height})
	}
	doc := quoteDocument{
		ID:            legacyID(q.ID),
		UserID:        legacyID(q.UserID),
		WindowCount:   q.WindowCount,
		Measurements:  ms,
		Material:      q.Material,
		Type:          q.Type,
		Location:      q.Location,
		Warranty:      q.Warranty,
		TotalArea:     q.TotalArea,
		BaseCost:      q.BaseCost,
		WarrantyCost:  q.WarrantyCost,
		TotalCost:     q.TotalCost,
		Status:        string(q.Status),
		PaymentStatus: string(q.PaymentStatus),
		ValidUntil:    q.ValidUntil.UTC(),
		CreatedAt:     q.CreatedAt.UTC(),
	}
	if d := q.PaymentDetails; d != nil {
		doc.PaymentDetails = &paymentDetailsDocument{
			TransactionID: d.TransactionID,
			ReceiptNumber: d.ReceiptNumber,
			Amount:        d.Amount,
			Phone:         d.Phone,
			Date:          d.Date.UTC(),
		}
	}
	return doc
}

func fromQuoteDocument(doc quoteDocument) entities.Quote {
	ms := make([]entities.Measurement, 0, len(doc.Measurements))
	for _, m := range doc.Measurements {
		ms = append(ms, entities.Measurement{Width: m.Width, Height: m.Height})
	}
	q := entities.Quote{
		ID:            string(doc.ID),
		UserID:        string(doc.UserID),
		WindowCount:   doc.WindowCount,
		Measurements:  ms,
		Material:      doc.Material,
		Type:          doc.Type,
		Location:      doc.Location,
		Warranty:      doc.Warranty,
		TotalArea:     doc.TotalArea,
		BaseCost:      doc.BaseCost,
		WarrantyCost:  doc.WarrantyCost,
		TotalCost:     doc.TotalCost,
		Status:        entities.QuoteStatus(doc.Status),
		PaymentStatus: entities.PaymentStatus(doc.PaymentStatus),
		ValidUntil:    doc.ValidUntil,
		CreatedAt:     doc.CreatedAt,
	}
	if d := doc.PaymentDetails; d != nil {
		q.PaymentDetails = &entities.PaymentDetails{
			TransactionID: d.TransactionID,
			ReceiptNumber: d.ReceiptNumber,
			Amount:        d.Amount,
			Phone:         d.Phone,
			Date:          d.Date,
		}
	}
	return q
}
