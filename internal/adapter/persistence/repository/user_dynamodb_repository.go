package repository

import (
	"context"
	"errors"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	emailLockPrefix       = "email#"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
	Phone        string `dynamodbav:"phone,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// emailLockItem reserves an email address. It lives in the users table
// next to the user it points to.
type emailLockItem struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"user_id"`
}

// UserDynamoRepository persists users in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Email uniqueness uses a second item keyed "email#<address>", written in
// the same transaction as the user.
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	userAV, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	lockAV, err := attributevalue.MarshalMap(emailLockItem{ID: emailLockPrefix + u.Email, UserID: u.ID})
	if err != nil {
		return entities.User{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: userAV, ConditionExpression: notExists, ExpressionAttributeNames: names}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: lockAV, ConditionExpression: notExists, ExpressionAttributeNames: names}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return entities.User{}, interfaces.ErrAlreadyExists
				}
			}
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var lock emailLockItem
	found, err := getByID(ctx, r.ddb, r.tableName, emailLockPrefix+email, &lock)
	if err != nil || !found {
		return entities.User{}, err
	}
	return r.GetByID(ctx, lock.UserID)
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Phone:        u.Phone,
		CreatedAt:    formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Role:         entities.Role(it.Role),
		Phone:        it.Phone,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
