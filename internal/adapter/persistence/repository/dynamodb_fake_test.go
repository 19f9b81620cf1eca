package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records the last request of each kind and replays canned
// responses. Items put through PutItem are readable with GetItem.
type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue

	putIn     *dynamodb.PutItemInput
	updateIn  *dynamodb.UpdateItemInput
	updateOut *dynamodb.UpdateItemOutput
	updateErr error
	queryIn   *dynamodb.QueryInput
	queryOut  []map[string]types.AttributeValue
	scanIn    *dynamodb.ScanInput
	scanOut   []map[string]types.AttributeValue
	txIn      *dynamodb.TransactWriteItemsInput
	txErr     error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	if _, ok := f.items[id]; ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = in
	return &dynamodb.QueryOutput{Items: f.queryOut}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIn = in
	return &dynamodb.ScanOutput{Items: f.scanOut}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.txIn = in
	if f.txErr != nil {
		return nil, f.txErr
	}
	for _, ti := range in.TransactItems {
		id := ti.Put.Item["id"].(*types.AttributeValueMemberS).Value
		f.items[id] = ti.Put.Item
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
