package repository

import (
	"context"
	"strconv"
	"time"

	"nct_portal/internal/domain/entities"
	"nct_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProfilesTableName = "vip_profiles"
	profilesNumberIndex      = "profile_number-index"
	profilesPhoneIndex       = "phone-index"
)

type profileItem struct {
	ID            string `dynamodbav:"id"`
	ProfileID     string `dynamodbav:"profile_id"`
	ProfileNumber int64  `dynamodbav:"profile_number"`
	Name          string `dynamodbav:"name,omitempty"`
	Phone         string `dynamodbav:"phone"`
	Email         string `dynamodbav:"email,omitempty"`
	Password      string `dynamodbav:"password,omitempty"`
	DriveFolder   string `dynamodbav:"drive_folder,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ProfileDynamoRepository persists VIPProfile entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: profile_number-index (PK: profile_number)
//   - GSI: phone-index (PK: phone)

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client, tableName string) *ProfileDynamoRepository {
	if tableName == "" {
		tableName = defaultProfilesTableName
	}
	return &ProfileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProfileDynamoRepository) Create(ctx context.Context, p entities.VIPProfile) (entities.VIPProfile, error) {
	it := toProfileItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.VIPProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.VIPProfile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) GetByProfileNumber(ctx context.Context, number int64) (entities.VIPProfile, error) {
	return r.queryOne(ctx, profilesNumberIndex, "profile_number = :v",
		&types.AttributeValueMemberN{Value: strconv.FormatInt(number, 10)})
}

func (r *ProfileDynamoRepository) GetByPhone(ctx context.Context, phone string) (entities.VIPProfile, error) {
	return r.queryOne(ctx, profilesPhoneIndex, "phone = :v",
		&types.AttributeValueMemberS{Value: phone})
}

func (r *ProfileDynamoRepository) queryOne(ctx context.Context, index, keyExpr string, value types.AttributeValue) (entities.VIPProfile, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyExpr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": value,
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.VIPProfile{}, err
	}
	if len(out.Items) == 0 {
		return entities.VIPProfile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.VIPProfile{}, err
	}
	return fromProfileItem(it), nil
}

func toProfileItem(p entities.VIPProfile) profileItem {
	number, _ := entities.ParseProfileNumber(p.ProfileID)
	return profileItem{
		ID:            p.ID,
		ProfileID:     p.ProfileID,
		ProfileNumber: number,
		Name:          p.Name,
		Phone:         p.Phone,
		Email:         p.Email,
		Password:      p.Password,
		DriveFolder:   p.DriveFolder,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProfileItem(it profileItem) entities.VIPProfile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.VIPProfile{
		ID:          it.ID,
		ProfileID:   it.ProfileID,
		Name:        it.Name,
		Phone:       it.Phone,
		Email:       it.Email,
		Password:    it.Password,
		DriveFolder: it.DriveFolder,
		CreatedAt:   createdAt,
	}
}
