// Package yaedit edits and translates long marked-up text through the
// unofficial Yandex Editor and Yandex Translate web APIs.
//
// # Quick Start
//
// Create a service, transform text, and close when done:
//
//	svc := yaedit.New()
//	defer svc.Close()
//
//	result, err := svc.Transform(ctx, text, yaedit.ActionCorrect)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Translation works the same way; the ru/en direction is detected from the
// text itself:
//
//	result, err := svc.Translate(ctx, text)
//
// # Processing Pipeline
//
// Each call follows these stages:
//
//  1. Markup-safe splitting into length-bounded chunks (internal/markup):
//     fenced code blocks, inline code, links and formatting spans survive
//     the chunk boundaries.
//  2. Sequential per-chunk transformation with bounded retries and
//     exponential backoff per error classification (ErrAPI vs ErrRequest).
//  3. In-order concatenation of the chunk results.
//
// A chunk that exhausts its retries fails the whole call; the error keeps
// its classification and reports how many chunks had already completed.
//
// # Sessions
//
// The APIs require a session identifier (SID) scraped from the editor page,
// which is captcha-gated for plain HTTP clients. internal/session fetches
// the page through headless Chrome (go-rod) and caches the SID on disk for
// twelve hours.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := yaedit.New(
//	    yaedit.WithMaxRetries(5),
//	    yaedit.WithChunkLength(4000),
//	    yaedit.WithLogger(slog.Default()),
//	)
//
// # Building Blocks
//
// The splitting and batching layers are exported for callers that bring
// their own transform operation:
//
//	chunks := yaedit.Split(text, 4096)
//	result, err := yaedit.RunBatch(ctx, chunks, myTransform, 3)
package yaedit
