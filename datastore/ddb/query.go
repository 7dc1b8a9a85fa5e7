/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/polyserde/storagemodels"
)

// Query runs a query and decodes every item through the registry, so a
// single result slice can mix concrete types. A decode failure aborts the
// query; an item written by this store always carries a decodable envelope,
// so a failure here means the table holds foreign data.
//
// DynamoDB cannot serve an unconstrained query, so nil params or an empty
// key condition is rejected.
func (d *Store[I]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]I, error) {
	if params == nil || params.KeyConditionExpression == "" {
		return nil, fmt.Errorf("query requires a key condition expression")
	}

	input := &dynamodb.QueryInput{
		TableName:                 &d.tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}

	out, err := d.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	results := make([]I, 0, len(out.Items))
	for _, item := range out.Items {
		v, err := d.decodeItem(item)
		if err != nil {
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}
		results = append(results, v)
	}

	return results, nil
}
