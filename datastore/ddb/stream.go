/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/polyserde/storagemodels"
)

// Stream performs a streaming query against DynamoDB with configurable options
func (d *Store[I]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[I] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[I], options.BufferSize)

	go d.streamWorker(ctx, params, options, resultCh)

	return resultCh
}

// streamWorker pages through the query, decoding each item through the
// registry and emitting it with its metadata.
func (d *Store[I]) streamWorker(
	ctx context.Context,
	params *storagemodels.QueryParams,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[I],
) {
	defer close(resultCh)

	// DynamoDB cannot serve an unconstrained query; reject it here instead
	// of letting the input construction panic inside the worker.
	if params == nil || params.KeyConditionExpression == "" {
		resultCh <- storagemodels.StreamResult[I]{
			Error: fmt.Errorf("stream requires a key condition expression"),
			Meta:  storagemodels.StreamMeta{Timestamp: time.Now()},
		}
		return
	}

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()
	var accumulated []error

	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.StreamProgress{
			ItemsProcessed: atomic.LoadInt64(&itemIndex),
			PagesProcessed: pageNumber,
			LastKey:        lastKey,
			Errors:         accumulated,
			StartTime:      startTime,
		}
		elapsed := time.Since(startTime).Seconds()
		if elapsed > 0 {
			progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
		}
		options.ProgressHandler(progress)
	}

	input := &dynamodb.QueryInput{
		TableName:                 &d.tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     aws.Int32(options.PageSize),
		ScanIndexForward:          params.ScanIndexForward,
	}

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := d.queryWithRetry(ctx, input, options)
		if err != nil {
			if options.ErrorHandler != nil && options.ErrorHandler(err) {
				accumulated = append(accumulated, err)
				continue
			}
			resultCh <- storagemodels.StreamResult[I]{
				Error: fmt.Errorf("query failed after retries: %w", err),
				Meta: storagemodels.StreamMeta{
					Index:      atomic.LoadInt64(&itemIndex),
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			return
		}

		pageNumber++

		for _, item := range out.Items {
			result := storagemodels.StreamResult[I]{
				Raw: item,
				Meta: storagemodels.StreamMeta{
					Index:      atomic.LoadInt64(&itemIndex),
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}

			v, err := d.decodeItem(item)
			if err != nil {
				// Decode failures are per-item: report and keep streaming.
				result.Error = err
				accumulated = append(accumulated, err)
			} else {
				result.Item = v
			}

			select {
			case resultCh <- result:
				atomic.AddInt64(&itemIndex, 1)
			case <-ctx.Done():
				return
			}
		}

		lastEvaluatedKey = out.LastEvaluatedKey
		reportProgress(lastEvaluatedKey)

		if lastEvaluatedKey == nil {
			return
		}
	}
}

// queryWithRetry retries transient query failures with a fixed backoff.
func (d *Store[I]) queryWithRetry(
	ctx context.Context,
	input *dynamodb.QueryInput,
	options storagemodels.StreamOptions,
) (*dynamodb.QueryOutput, error) {
	var lastErr error
	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(options.RetryBackoff):
			}
		}
		out, err := d.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
