package acceptance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"impactDashboardAPI/internal/challenge"
	"impactDashboardAPI/internal/kv"
)

const (
	keyPrefix  = "acceptance:"
	dateLayout = "2006-01-02"
	// records only matter for one calendar day; keep them a little longer for
	// users in other time zones
	recordTTL = 48 * time.Hour
)

var ErrIndexOutOfRange = errors.New("selected index out of range")

// State is the per-user, per-day challenge acceptance record.
type State struct {
	ChallengeID   int    `json:"challengeId"`
	Accepted      bool   `json:"accepted"`
	Date          string `json:"date"`
	SelectedIndex int    `json:"selectedIndex"`
}

// Store persists State through an injected kv.Store. A record whose date is
// not today is treated as absent and removed.
type Store struct {
	kv      kv.Store
	catalog *challenge.Catalog
}

func NewStore(store kv.Store, catalog *challenge.Catalog) *Store {
	return &Store{kv: store, catalog: catalog}
}

func Today(now time.Time) string {
	return now.Format(dateLayout)
}

// Load returns today's state for userID, or a fresh one pointing at the daily challenge.
func (s *Store) Load(ctx context.Context, userID string, now time.Time) (State, error) {
	key := keyPrefix + userID
	today := Today(now)

	raw, err := s.kv.Get(ctx, key)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		return State{}, fmt.Errorf("failed to load acceptance state: %w", err)
	}

	if err == nil {
		var st State
		if jsonErr := json.Unmarshal([]byte(raw), &st); jsonErr == nil && st.Date == today {
			return st, nil
		}
		// stale or unreadable
		if err := s.kv.Delete(ctx, key); err != nil {
			return State{}, fmt.Errorf("failed to reset acceptance state: %w", err)
		}
	}

	return s.fresh(now)
}

// Toggle flips the accepted flag of today's selected challenge and persists it.
func (s *Store) Toggle(ctx context.Context, userID string, now time.Time) (State, error) {
	st, err := s.Load(ctx, userID, now)
	if err != nil {
		return State{}, err
	}

	st.Accepted = !st.Accepted
	st.Date = Today(now)

	if err := s.save(ctx, userID, st); err != nil {
		return State{}, err
	}
	return st, nil
}

// Select moves today's selection to index. Acceptance is cleared when the
// selected challenge changes.
func (s *Store) Select(ctx context.Context, userID string, now time.Time, index int) (State, error) {
	if index < 0 || index >= s.catalog.Len() {
		return State{}, ErrIndexOutOfRange
	}

	st, err := s.Load(ctx, userID, now)
	if err != nil {
		return State{}, err
	}

	ch, err := s.catalog.At(index)
	if err != nil {
		return State{}, err
	}

	if ch.ID != st.ChallengeID {
		st.Accepted = false
	}
	st.SelectedIndex = index
	st.ChallengeID = ch.ID
	st.Date = Today(now)

	if err := s.save(ctx, userID, st); err != nil {
		return State{}, err
	}
	return st, nil
}

func (s *Store) fresh(now time.Time) (State, error) {
	idx, err := s.catalog.DailyIndex(now)
	if err != nil {
		return State{}, err
	}
	ch, err := s.catalog.At(idx)
	if err != nil {
		return State{}, err
	}
	return State{ChallengeID: ch.ID, Date: Today(now), SelectedIndex: idx}, nil
}

func (s *Store) save(ctx context.Context, userID string, st State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode acceptance state: %w", err)
	}
	if err := s.kv.Set(ctx, keyPrefix+userID, string(raw), recordTTL); err != nil {
		return fmt.Errorf("failed to save acceptance state: %w", err)
	}
	return nil
}
