package repository

import (
	"context"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInstallationsTableName = "installations"

type installationItem struct {
	ID            string `dynamodbav:"id"`
	UserID        string `dynamodbav:"user_id"`
	QuoteID       string `dynamodbav:"quote_id"`
	ScheduledDate string `dynamodbav:"scheduled_date"`
	Status        string `dynamodbav:"status"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at,omitempty"`
}

// InstallationDynamoRepository persists installations in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type InstallationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInstallationRepository = (*InstallationDynamoRepository)(nil)

func NewInstallationDynamoRepository(ddb DynamoAPI) *InstallationDynamoRepository {
	return &InstallationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLATIONS_TABLE", defaultInstallationsTableName),
	}
}

func (r *InstallationDynamoRepository) Create(ctx context.Context, i entities.Installation) (entities.Installation, error) {
	it := installationItem{
		ID:            i.ID,
		UserID:        i.UserID,
		QuoteID:       i.QuoteID,
		ScheduledDate: formatTime(i.ScheduledDate),
		Status:        string(i.Status),
		Notes:         i.Notes,
		CreatedAt:     formatTime(i.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Installation{}, err
	}
	return i, nil
}

func (r *InstallationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Installation, error) {
	var it installationItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Installation{}, err
	}
	return fromInstallationItem(it), nil
}

func (r *InstallationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InstallationStatus) (entities.Installation, error) {
	var it installationItem
	ok, err := conditionalUpdate(ctx, r.ddb, r.tableName, id, "",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #status = :status, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(status)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		}, &it)
	if err != nil || !ok {
		return entities.Installation{}, err
	}
	return fromInstallationItem(it), nil
}

func fromInstallationItem(it installationItem) entities.Installation {
	return entities.Installation{
		ID:            it.ID,
		UserID:        it.UserID,
		QuoteID:       it.QuoteID,
		ScheduledDate: parseTime(it.ScheduledDate),
		Status:        entities.InstallationStatus(it.Status),
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
