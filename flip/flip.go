// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/coinflip/coin"
	"github.com/danielhkuo/coinflip/db"
)

// MaxCount caps the number of flips per request.
const MaxCount = 100

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrPersistence     = errors.New("persistence failure")

	ErrCountNotPositive = fmt.Errorf("%w: count must be greater than 0", ErrInvalidArgument)
	ErrCountTooLarge    = fmt.Errorf("%w: count must not exceed %d", ErrInvalidArgument, MaxCount)
)

// Recorder persists flips. *db.Store satisfies it.
type Recorder interface {
	InsertFlip(ctx context.Context, f db.NewFlip) (int64, error)
	InsertFlips(ctx context.Context, flips []db.NewFlip) ([]int64, error)
}

// Meta describes who asked for the flip.
type Meta struct {
	UserIP string
	UserID *int64
}

// Tally counts outcomes in a batch.
type Tally struct {
	Heads int
	Tails int
}

func (t Tally) Total() int {
	return t.Heads + t.Tails
}

func (t *Tally) add(o coin.Outcome) {
	if o == coin.Heads {
		t.Heads++
	} else {
		t.Tails++
	}
}

// Single is the result of FlipOnce. ID and At are set only when persisting.
type Single struct {
	Outcome   coin.Outcome
	ID        *int64
	SessionID string
	At        time.Time
}

// Batch is the result of FlipMany. Outcomes are in draw order.
type Batch struct {
	Outcomes  []coin.Outcome
	Tally     Tally
	IDs       []int64
	SessionID string
}

// Service draws outcomes and, when a Recorder is set, stores them.
type Service struct {
	src       coin.Source
	rec       Recorder
	now       func() time.Time
	sessionID func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the timestamp source for recorded flips.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSessionIDs overrides session id generation.
func WithSessionIDs(gen func() string) Option {
	return func(s *Service) { s.sessionID = gen }
}

// NewService builds a Service. A nil Recorder gives the stateless variant.
func NewService(src coin.Source, rec Recorder, opts ...Option) *Service {
	s := &Service{
		src:       src,
		rec:       rec,
		now:       func() time.Time { return time.Now().UTC() },
		sessionID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Persistent reports whether flips are recorded.
func (s *Service) Persistent() bool {
	return s.rec != nil
}

// FlipOnce draws a single outcome.
func (s *Service) FlipOnce(ctx context.Context, meta Meta) (Single, error) {
	res := Single{Outcome: s.src.Draw()}
	slog.Info("coin flipped", "result", res.Outcome)

	if s.rec == nil {
		return res, nil
	}

	res.SessionID = s.sessionID()
	res.At = s.now()
	id, err := s.rec.InsertFlip(ctx, db.NewFlip{
		Result:    res.Outcome.String(),
		SessionID: res.SessionID,
		UserIP:    meta.UserIP,
		UserID:    meta.UserID,
		CreatedAt: res.At,
	})
	if err != nil {
		return Single{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	res.ID = &id

	return res, nil
}

// ValidateCount checks the bounds of a multi-flip request.
func ValidateCount(count int) error {
	if count <= 0 {
		return ErrCountNotPositive
	}
	if count > MaxCount {
		return ErrCountTooLarge
	}
	return nil
}

// FlipMany draws count outcomes. When persisting, all of them share one
// session id and are written in a single transaction.
func (s *Service) FlipMany(ctx context.Context, count int, meta Meta) (Batch, error) {
	if err := ValidateCount(count); err != nil {
		return Batch{}, err
	}

	batch := Batch{Outcomes: make([]coin.Outcome, count)}
	for i := range batch.Outcomes {
		o := s.src.Draw()
		batch.Outcomes[i] = o
		batch.Tally.add(o)
	}
	slog.Info("coins flipped",
		"count", count,
		"heads", batch.Tally.Heads,
		"tails", batch.Tally.Tails,
	)

	if s.rec == nil {
		return batch, nil
	}

	batch.SessionID = s.sessionID()
	at := s.now()
	rows := make([]db.NewFlip, count)
	for i, o := range batch.Outcomes {
		rows[i] = db.NewFlip{
			Result:    o.String(),
			SessionID: batch.SessionID,
			UserIP:    meta.UserIP,
			UserID:    meta.UserID,
			CreatedAt: at,
		}
	}

	ids, err := s.rec.InsertFlips(ctx, rows)
	if err != nil {
		return Batch{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	batch.IDs = ids

	return batch, nil
}
