// Package idempotency makes tagged mutation endpoints safe to retry: the
// first request with a given X-Idempotency-Key runs, concurrent duplicates
// are rejected, and later duplicates get the cached response back.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/boletos/model"
)

const IdempotencyHeader = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := hashPayload(req)
	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			return processNew(req, next, cacheKey, bodyHash)
		}
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"},
		}
	}

	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("Concurrent request detected", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."},
		}
	case statusCompleted:
		return replayCompleted(req, next, entry, key)
	default:
		rlog.Warn("Unknown cache entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// processNew runs the request and records the outcome. A failed request
// clears its entry so the client can retry with the same key.
func processNew(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := IdempotencyCache.Set(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:    statusProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("Failed to mark request as processing", "error", err)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "Failed to mark request as processing"},
		}
	}

	response := next(req)

	if response.Err != nil {
		clearEntry(req.Context(), cacheKey)
	} else {
		storeCompleted(req.Context(), cacheKey, bodyHash, response)
	}
	return response
}

// replayCompleted returns the cached payload, rebuilt as the endpoint's
// response type. A corrupted cache entry falls through to a fresh run.
func replayCompleted(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		if responseType := req.Data().API.ResponseType; responseType != nil {
			payload := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, payload); err == nil {
				rlog.Info("Returning cached response", "key", key)
				return middleware.Response{Payload: payload}
			}
			rlog.Error("Failed to unmarshal cached response into correct type", "key", key)
		}
	}
	return next(req)
}

func storeCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}
	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("Failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payloadBytes
	}
	if err := IdempotencyCache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("Failed to cache successful response", "error", err)
	}
}

func clearEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := IdempotencyCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("Failed to clear failed request from cache", "error", err)
	}
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(IdempotencyHeader))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return key, nil
}

// hashPayload fingerprints the request body for conflict detection. An empty
// hash disables the check rather than failing the request.
func hashPayload(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("Failed to marshal request body", "error", err)
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
