package acceptance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactDashboardAPI/internal/challenge"
	"impactDashboardAPI/internal/kv"
)

func newTestStore(t *testing.T) (*Store, *kv.MemoryStore) {
	mem := kv.NewMemoryStore(0)
	t.Cleanup(func() { mem.Close() })
	return NewStore(mem, challenge.Default()), mem
}

var jan1 = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func TestLoadFreshState(t *testing.T) {
	s, _ := newTestStore(t)

	st, err := s.Load(context.Background(), "user_1", jan1)
	require.NoError(t, err)
	assert.Equal(t, State{ChallengeID: 2, Accepted: false, Date: "2025-01-01", SelectedIndex: 1}, st)
}

func TestToggleAndReload(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	st, err := s.Toggle(ctx, "user_1", jan1)
	require.NoError(t, err)
	assert.True(t, st.Accepted)

	st, err = s.Load(ctx, "user_1", jan1.Add(10*time.Hour))
	require.NoError(t, err)
	assert.True(t, st.Accepted)

	st, err = s.Toggle(ctx, "user_1", jan1)
	require.NoError(t, err)
	assert.False(t, st.Accepted)
}

func TestStateResetsOnNewDay(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	_, err := s.Toggle(ctx, "user_1", jan1)
	require.NoError(t, err)

	jan2 := jan1.AddDate(0, 0, 1)
	st, err := s.Load(ctx, "user_1", jan2)
	require.NoError(t, err)
	assert.False(t, st.Accepted)
	assert.Equal(t, "2025-01-02", st.Date)
	assert.Equal(t, 2, st.SelectedIndex)

	_, err = mem.Get(ctx, keyPrefix+"user_1")
	assert.ErrorIs(t, err, kv.ErrNotFound, "stale record should be removed")
}

func TestStateIsPerUser(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Toggle(ctx, "user_1", jan1)
	require.NoError(t, err)

	st, err := s.Load(ctx, "user_2", jan1)
	require.NoError(t, err)
	assert.False(t, st.Accepted)
}

func TestSelect(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Toggle(ctx, "user_1", jan1)
	require.NoError(t, err)

	st, err := s.Select(ctx, "user_1", jan1, 49)
	require.NoError(t, err)
	assert.Equal(t, 49, st.SelectedIndex)
	assert.Equal(t, 50, st.ChallengeID)
	assert.False(t, st.Accepted, "changing challenge clears acceptance")

	st, err = s.Load(ctx, "user_1", jan1)
	require.NoError(t, err)
	assert.Equal(t, 49, st.SelectedIndex)
}

func TestSelectSameChallengeKeepsAcceptance(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Toggle(ctx, "user_1", jan1)
	require.NoError(t, err)

	st, err := s.Select(ctx, "user_1", jan1, 1)
	require.NoError(t, err)
	assert.True(t, st.Accepted)
}

func TestSelectOutOfRange(t *testing.T) {
	s, _ := newTestStore(t)
	for _, idx := range []int{-1, 50} {
		_, err := s.Select(context.Background(), "user_1", jan1, idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestLoadIgnoresCorruptRecord(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, keyPrefix+"user_1", "{not json", 0))

	st, err := s.Load(ctx, "user_1", jan1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", st.Date)
}

type failingKV struct{ kv.Store }

func (failingKV) Get(context.Context, string) (string, error) {
	return "", errors.New("connection refused")
}

func TestLoadPropagatesBackendErrors(t *testing.T) {
	s := NewStore(failingKV{}, challenge.Default())
	_, err := s.Load(context.Background(), "user_1", jan1)
	assert.ErrorContains(t, err, "connection refused")
}

func TestEmptyCatalog(t *testing.T) {
	mem := kv.NewMemoryStore(0)
	t.Cleanup(func() { mem.Close() })
	s := NewStore(mem, challenge.NewCatalog(nil))

	_, err := s.Load(context.Background(), "user_1", jan1)
	assert.ErrorIs(t, err, challenge.ErrEmptyCatalog)
}
