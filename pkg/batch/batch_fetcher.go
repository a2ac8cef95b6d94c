// Package batch provides concurrent full-card fetching over a shared
// Scryfall client.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/McManusDaniel/mtg-commander-app/pkg/scryfall"
)

// CardFetcher is the interface the Scryfall client implements for single
// full-card fetches.
type CardFetcher interface {
	FetchFullCard(ctx context.Context, name string) (*scryfall.Card, error)
}

// Result is the outcome of fetching one card. Exactly one of Card and Err
// is set.
type Result struct {
	Name string
	Card *scryfall.Card
	Err  error
}

// Config holds batch fetcher configuration.
type Config struct {
	// OnProgress, if set, is invoked once per completed fetch with the number
	// of completed fetches and the total. Calls are serialized. Setting a
	// callback switches FetchAll to completion-order results.
	OnProgress func(done, total int)
}

// Fetcher fans out full-card fetches concurrently.
//
// All tasks share one client and therefore serialize on its pacing gate:
// concurrency deepens the pipeline of requests queued behind the gate but
// never raises the peak request rate. Fully cached batches complete without
// any network calls.
type Fetcher struct {
	fetcher CardFetcher
	config  Config
}

// NewFetcher creates a new batch fetcher.
func NewFetcher(fetcher CardFetcher, config Config) *Fetcher {
	return &Fetcher{
		fetcher: fetcher,
		config:  config,
	}
}

// FetchAll fetches a full record for every name concurrently and returns one
// result per input name. A single task's failure never cancels its siblings;
// every result is captured, either as a card or as its typed error.
//
// Without a progress callback, results are positionally aligned with names
// regardless of completion order (each task writes its own slot). With a
// callback, results are appended in completion order so callers can observe
// them incrementally, and the output order is unspecified.
func (f *Fetcher) FetchAll(ctx context.Context, names []string) []Result {
	start := time.Now()

	if len(names) == 0 {
		return []Result{}
	}

	log.Debug().
		Int("cards", len(names)).
		Bool("progress", f.config.OnProgress != nil).
		Msg("Starting batch fetch")

	var results []Result
	if f.config.OnProgress != nil {
		results = f.fetchCompletionOrder(ctx, names)
	} else {
		results = f.fetchInputOrder(ctx, names)
	}

	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
		}
	}

	log.Info().
		Int("cards", len(names)).
		Int("failures", failures).
		Dur("duration", time.Since(start)).
		Msg("Batch fetch complete")

	return results
}

// fetchInputOrder launches one task per name and places each result at its
// input index.
func (f *Fetcher) fetchInputOrder(ctx context.Context, names []string) []Result {
	results := make([]Result, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			card, err := f.fetcher.FetchFullCard(ctx, name)
			results[i] = Result{Name: name, Card: card, Err: err}
		}(i, name)
	}
	wg.Wait()

	return results
}

// fetchCompletionOrder collects results as tasks finish, advancing the
// progress callback once per completion.
func (f *Fetcher) fetchCompletionOrder(ctx context.Context, names []string) []Result {
	completed := make(chan Result, len(names))

	for _, name := range names {
		go func(name string) {
			card, err := f.fetcher.FetchFullCard(ctx, name)
			completed <- Result{Name: name, Card: card, Err: err}
		}(name)
	}

	results := make([]Result, 0, len(names))
	for range names {
		results = append(results, <-completed)
		f.config.OnProgress(len(results), len(names))
	}

	return results
}
