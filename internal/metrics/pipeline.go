// internal/metrics/pipeline.go
package metrics

import (
	"context"
	"math/rand"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SourceReader fetches a tenant's raw records. Implementations must scope
// strictly by business id and return an empty slice, not an error, when the
// tenant has no rows of a kind.
type SourceReader interface {
	Appointments(ctx context.Context, businessID string) ([]domain.Appointment, error)
	Expenses(ctx context.Context, businessID string) ([]domain.Expense, error)
	Payments(ctx context.Context, businessID string) ([]domain.Payment, error)
	Feedback(ctx context.Context, businessID string) ([]domain.Feedback, error)
}

// Pipeline computes the daily metrics series: fetch, bucket, reduce,
// backfill. It holds no mutable state between runs; every invocation is an
// independent point-in-time snapshot.
type Pipeline struct {
	reader   SourceReader
	backfill *Backfiller
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBackfiller overrides the default randomized backfiller.
func WithBackfiller(b *Backfiller) Option {
	return func(p *Pipeline) { p.backfill = b }
}

func NewPipeline(reader SourceReader, opts ...Option) *Pipeline {
	p := &Pipeline{
		reader:   reader,
		backfill: NewBackfiller(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Compute returns exactly windowDays consecutive calendar-day entries ending
// at today, oldest first. A missing tenant id yields an empty series; a
// failed fetch for one kind degrades that kind to no records instead of
// failing the run.
func (p *Pipeline) Compute(ctx context.Context, businessID string, today time.Time, windowDays int) ([]domain.DailyMetric, error) {
	if businessID == "" {
		return []domain.DailyMetric{}, nil
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	data := p.fetch(ctx, businessID)
	window := Window(today, windowDays)
	buckets := partition(window, data)

	series := make([]domain.DailyMetric, len(window))
	for i, day := range window {
		series[i] = reduce(day, buckets[i])
	}

	p.backfill.Apply(series)
	return series, nil
}

// fetch loads the four source collections concurrently. Each kind recovers
// locally from errors: the failure is logged and the kind contributes no
// records for this run.
func (p *Pipeline) fetch(ctx context.Context, businessID string) SourceData {
	var data SourceData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := p.reader.Appointments(gctx, businessID)
		if err != nil {
			log.Warn().Err(err).Str("kind", "appointments").Msg("metrics fetch failed, treating as empty")
			return nil
		}
		data.Appointments = rows
		return nil
	})
	g.Go(func() error {
		rows, err := p.reader.Expenses(gctx, businessID)
		if err != nil {
			log.Warn().Err(err).Str("kind", "expenses").Msg("metrics fetch failed, treating as empty")
			return nil
		}
		data.Expenses = rows
		return nil
	})
	g.Go(func() error {
		rows, err := p.reader.Payments(gctx, businessID)
		if err != nil {
			log.Warn().Err(err).Str("kind", "payments").Msg("metrics fetch failed, treating as empty")
			return nil
		}
		data.Payments = rows
		return nil
	})
	g.Go(func() error {
		rows, err := p.reader.Feedback(gctx, businessID)
		if err != nil {
			log.Warn().Err(err).Str("kind", "feedback").Msg("metrics fetch failed, treating as empty")
			return nil
		}
		data.Feedback = rows
		return nil
	})

	_ = g.Wait()
	return data
}
