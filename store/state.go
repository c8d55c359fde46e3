package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/etnz/invest"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is the session state: the portfolio, its target allocation and the
// planned contribution, loaded once and saved on every mutation.
//
// Accessors return copies, callers cannot modify the state behind its back.
type State struct {
	kv  *KV
	log zerolog.Logger

	mu           sync.Mutex
	portfolio    invest.Portfolio
	target       invest.Allocation
	contribution float64
	analysis     *invest.Analysis // memoized, nil when stale

	newID func() string
}

// NewState returns an empty state persisted in kv. Call Load to read the
// stored values.
func NewState(kv *KV, log zerolog.Logger) *State {
	return &State{
		kv:        kv,
		log:       log,
		portfolio: invest.Portfolio{},
		target:    invest.Allocation{},
		newID:     uuid.NewString,
	}
}

// Load reads the stored values. Missing keys load their default, and so do
// values of the wrong kind, with a warning: a corrupted key never prevents
// the tracker from starting.
func (s *State) Load(ctx context.Context) error {
	var (
		portfolio    = invest.Portfolio{}
		target       = invest.Allocation{}
		contribution float64
	)
	if err := s.load(ctx, KeyAssets, &portfolio, func() { portfolio = invest.Portfolio{} }); err != nil {
		return err
	}
	if err := s.load(ctx, KeyIdealAllocation, &target, func() { target = invest.Allocation{} }); err != nil {
		return err
	}
	if err := s.load(ctx, KeyContribution, &contribution, func() { contribution = 0 }); err != nil {
		return err
	}
	if target == nil {
		target = invest.Allocation{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio = portfolio
	s.target = target
	s.contribution = clampContribution(contribution)
	s.analysis = nil
	return nil
}

// load decodes key into dst, calling reset when the stored value is missing
// or unusable.
func (s *State) load(ctx context.Context, key string, dst any, reset func()) error {
	err := s.kv.Get(ctx, key, dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		reset()
		return nil
	case errors.Is(err, ErrInvalidValue):
		s.log.Warn().Err(err).Str("key", key).Msg("ignoring stored value, using default")
		reset()
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", key, err)
}

// clampContribution returns c as a valid contribution.
func clampContribution(c float64) float64 {
	return math.Min(invest.Amount(c), invest.MaxContribution)
}

// Portfolio returns a copy of the holdings.
func (s *State) Portfolio() invest.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio.Clone()
}

// Target returns a copy of the target allocation.
func (s *State) Target() invest.Allocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target.Clone()
}

// Contribution returns the planned contribution.
func (s *State) Contribution() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contribution
}

// Holding returns the holding with the given id.
func (s *State) Holding(id string) (invest.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.portfolio.Find(id)
	if i < 0 {
		return invest.Holding{}, fmt.Errorf("holding %q: %w", id, ErrNotFound)
	}
	return s.portfolio[i], nil
}

// normalize trims the text fields a user typed.
func normalize(h invest.Holding) invest.Holding {
	h.Ticker = strings.TrimSpace(h.Ticker)
	h.Class = strings.TrimSpace(h.Class)
	return h
}

// AddHolding validates h, assigns it a new ID and saves it.
func (s *State) AddHolding(ctx context.Context, h invest.Holding) (invest.Holding, error) {
	h = normalize(h)
	if err := invest.ValidateHolding(h); err != nil {
		return invest.Holding{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.newID()
	p := append(s.portfolio.Clone(), h)
	if err := s.kv.Set(ctx, KeyAssets, p); err != nil {
		return invest.Holding{}, err
	}
	s.portfolio = p
	s.analysis = nil
	s.log.Info().Str("holding_id", h.ID).Str("ticker", h.Ticker).Msg("holding added")
	return h, nil
}

// UpdateHolding replaces the holding with the given id by h. The ID is kept.
func (s *State) UpdateHolding(ctx context.Context, id string, h invest.Holding) (invest.Holding, error) {
	h = normalize(h)
	if err := invest.ValidateHolding(h); err != nil {
		return invest.Holding{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.portfolio.Find(id)
	if i < 0 {
		return invest.Holding{}, fmt.Errorf("holding %q: %w", id, ErrNotFound)
	}
	h.ID = id
	p := s.portfolio.Clone()
	p[i] = h
	if err := s.kv.Set(ctx, KeyAssets, p); err != nil {
		return invest.Holding{}, err
	}
	s.portfolio = p
	s.analysis = nil
	s.log.Info().Str("holding_id", id).Msg("holding updated")
	return h, nil
}

// DeleteHolding removes the holding with the given id.
func (s *State) DeleteHolding(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.portfolio.Find(id)
	if i < 0 {
		return fmt.Errorf("holding %q: %w", id, ErrNotFound)
	}
	p := append(s.portfolio[:i:i], s.portfolio[i+1:]...)
	if err := s.kv.Set(ctx, KeyAssets, p); err != nil {
		return err
	}
	s.portfolio = p
	s.analysis = nil
	s.log.Info().Str("holding_id", id).Msg("holding deleted")
	return nil
}

// SetTarget validates and saves the target allocation.
func (s *State) SetTarget(ctx context.Context, target invest.Allocation) error {
	if err := invest.ValidateAllocation(target); err != nil {
		return err
	}
	target = target.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(ctx, KeyIdealAllocation, target); err != nil {
		return err
	}
	s.target = target
	s.analysis = nil
	return nil
}

// SetContribution saves the planned contribution. Invalid amounts are saved
// as 0 and amounts above invest.MaxContribution are capped.
func (s *State) SetContribution(ctx context.Context, contribution float64) error {
	contribution = clampContribution(contribution)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(ctx, KeyContribution, contribution); err != nil {
		return err
	}
	s.contribution = contribution
	s.analysis = nil
	return nil
}

// Replace saves all three values in a single transaction, for the sample
// data and imports.
// Holdings without an ID get one.
func (s *State) Replace(ctx context.Context, p invest.Portfolio, target invest.Allocation, contribution float64) error {
	p = p.Clone()
	for i := range p {
		if p[i].ID == "" {
			p[i].ID = s.newID()
		}
	}
	target = target.Clone()
	contribution = clampContribution(contribution)

	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.kv.SetValues(ctx, map[string]any{
		KeyAssets:          p,
		KeyIdealAllocation: target,
		KeyContribution:    contribution,
	})
	if err != nil {
		return err
	}
	s.portfolio, s.target, s.contribution = p, target, contribution
	s.analysis = nil
	s.log.Info().Int("holdings", len(p)).Msg("state replaced")
	return nil
}

// Reset deletes every stored value.
func (s *State) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.DeleteAll(ctx, Keys()...); err != nil {
		return err
	}
	s.portfolio = invest.Portfolio{}
	s.target = invest.Allocation{}
	s.contribution = 0
	s.analysis = nil
	s.log.Info().Msg("state reset")
	return nil
}

// Analysis returns a copy of the analysis of the current state. It is
// computed once and reused until the next mutation.
func (s *State) Analysis() invest.Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		a := invest.Analyze(s.portfolio, s.target, s.contribution)
		s.analysis = &a
	}
	return s.analysis.Clone()
}
