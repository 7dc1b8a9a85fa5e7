/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/polyserde"
	"github.com/suparena/polyserde/codec"
	"github.com/suparena/polyserde/errors"
	"github.com/suparena/polyserde/registry"
)

// Item attribute names. Each item holds its partition/sort keys plus the
// tagged envelope under a single document attribute.
const (
	attrPK  = "PK"
	attrSK  = "SK"
	attrDoc = "Doc"

	sortKeyValue = "VALUE"
)

// Store implements datastore.Store[I] on AWS DynamoDB. Values of any
// concrete type registered for I share one table; the envelope persisted in
// each item's document attribute decides how the item is decoded on read.
type Store[I polyserde.Tagged] struct {
	client    *sdk.Client
	tableName string
	codec     *codec.AttributeValue[I]
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// New constructs a Store for interface type I on an existing client.
func New[I polyserde.Tagged](client *sdk.Client, tableName string, types *registry.Registry[I]) *Store[I] {
	return &Store[I]{
		client:    client,
		tableName: tableName,
		codec:     codec.NewAttributeValue[I](types),
	}
}

// NewStore constructs a client and a Store for interface type I.
func NewStore[I polyserde.Tagged](awsAccessKey, awsSecretKey, awsRegion, tableName string, types *registry.Registry[I]) (*Store[I], error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return New[I](client, tableName, types), nil
}

func (d *Store[I]) itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: key},
		attrSK: &types.AttributeValueMemberS{Value: sortKeyValue},
	}
}

// decodeItem recovers the polymorphic value from a raw item.
func (d *Store[I]) decodeItem(item map[string]types.AttributeValue) (I, error) {
	doc, ok := item[attrDoc].(*types.AttributeValueMemberM)
	if !ok {
		var zero I
		return zero, errors.NewMalformedTagError("item has no document attribute")
	}
	return d.codec.Unmarshal(doc.Value)
}

// GetOne retrieves a single value by key. The concrete type comes back from
// the tag stored with the item, not from the caller.
func (d *Store[I]) GetOne(ctx context.Context, key string) (I, error) {
	var zero I

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       d.itemKey(key),
	})
	if err != nil {
		return zero, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return zero, errors.NewNotFoundError(key)
	}

	return d.decodeItem(out.Item)
}

// Put stores v under key. The value is marshaled into its tagged envelope
// first, so an unregistered or nil value never reaches the table.
func (d *Store[I]) Put(ctx context.Context, key string, v I) error {
	env, err := d.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	item := d.itemKey(key)
	item[attrDoc] = &types.AttributeValueMemberM{Value: env}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes the value stored under key.
func (d *Store[I]) Delete(ctx context.Context, key string) error {
	_, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       d.itemKey(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
