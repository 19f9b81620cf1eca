package repository

import (
	"context"
	"sort"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReviewsTableName = "reviews"

type reviewItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	AuthorName string `dynamodbav:"author_name"`
	Rating     int    `dynamodbav:"rating"`
	Comment    string `dynamodbav:"comment,omitempty"`
	Approved   bool   `dynamodbav:"approved"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists reviews in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table stays small, so listings scan and sort in memory.
type ReviewDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb DynamoAPI) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toReviewItem(rv)); err != nil {
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) ListAll(ctx context.Context) ([]entities.Review, error) {
	items, err := scanAll[reviewItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromReviewItems(items, 0), nil
}

// ListApproved returns at most limit approved reviews, newest first. A
// non-positive limit returns all of them.
func (r *ReviewDynamoRepository) ListApproved(ctx context.Context, limit int) ([]entities.Review, error) {
	items, err := scanAll[reviewItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#approved = :true"),
		ExpressionAttributeNames: map[string]string{
			"#approved": "approved",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromReviewItems(items, limit), nil
}

func (r *ReviewDynamoRepository) SetApproved(ctx context.Context, id string, approved bool) (entities.Review, error) {
	var it reviewItem
	ok, err := conditionalUpdate(ctx, r.ddb, r.tableName, id, "",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #approved = :approved, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":approved":   &types.AttributeValueMemberBOOL{Value: approved},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#approved":   "approved",
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		}, &it)
	if err != nil || !ok {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func toReviewItem(rv entities.Review) reviewItem {
	return reviewItem{
		ID:         rv.ID,
		UserID:     rv.UserID,
		AuthorName: rv.AuthorName,
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		Approved:   rv.Approved,
		CreatedAt:  formatTime(rv.CreatedAt),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	return entities.Review{
		ID:         it.ID,
		UserID:     it.UserID,
		AuthorName: it.AuthorName,
		Rating:     it.Rating,
		Comment:    it.Comment,
		Approved:   it.Approved,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

func fromReviewItems(items []reviewItem, limit int) []entities.Review {
	out := make([]entities.Review, 0, len(items))
	for _, it := range items {
		out = append(out, fromReviewItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
