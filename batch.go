package yaedit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"yaedit/internal/backoff"
)

// DefaultMaxRetries is the per-chunk attempt limit when the caller passes a
// non-positive value.
const DefaultMaxRetries = 3

// TransformFunc applies the remote operation to one chunk. Failures it wants
// retried must be classified as ErrAPI or ErrRequest (via error wrapping);
// anything else aborts the batch on the first occurrence.
type TransformFunc func(ctx context.Context, chunk string) (string, error)

// RunBatch drives chunks through transform strictly in order, retrying each
// chunk independently with the default backoff policy, and returns the
// concatenation of the results.
//
// A chunk that exhausts its retries fails the whole batch: the returned error
// keeps the chunk's classification and is annotated with how many chunks had
// already completed. Completed results are discarded, not returned; the batch
// is all-or-nothing from the caller's perspective.
func RunBatch(ctx context.Context, chunks []string, transform TransformFunc, maxRetries int) (string, error) {
	return runBatch(ctx, chunks, transform, maxRetries, backoff.Default(), discardLogger())
}

func runBatch(ctx context.Context, chunks []string, transform TransformFunc, maxRetries int, policy backoff.Policy, logger *slog.Logger) (string, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	total := len(chunks)
	results := make([]string, 0, total)

	for i, chunk := range chunks {
		result, err := transformChunk(ctx, chunk, i, total, transform, maxRetries, policy, logger)
		if err != nil {
			if retryable(err) {
				// Wrapping keeps the classification visible to errors.Is.
				return "", fmt.Errorf("%w (%d of %d chunks completed)", err, len(results), total)
			}
			return "", err
		}
		results = append(results, result)
	}

	return strings.Join(results, ""), nil
}

// transformChunk attempts one chunk up to maxRetries times, sleeping per the
// policy between classified failures.
func transformChunk(ctx context.Context, chunk string, index, total int, transform TransformFunc, maxRetries int, policy backoff.Policy, logger *slog.Logger) (string, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		result, err := transform(ctx, chunk)
		if err == nil {
			return result, nil
		}
		if !retryable(err) {
			return "", err
		}
		lastErr = err

		if attempt < maxRetries-1 {
			delay := policy.Delay(errorKind(err), attempt)
			logger.Warn("chunk transform failed, retrying",
				"chunk", index+1,
				"total", total,
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"delay", delay,
				"error", err)
			if err := sleep(ctx, delay); err != nil {
				return "", err
			}
		} else {
			logger.Error("chunk transform failed, retries exhausted",
				"chunk", index+1,
				"total", total,
				"max_retries", maxRetries,
				"error", err)
		}
	}

	return "", lastErr
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
