package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"impactDashboardAPI/internal/impactapi"
	"impactDashboardAPI/internal/notification"
)

type fakeNotifier struct {
	mu     sync.Mutex
	calls  []impactapi.Completion
	tokens []string
	err    error
	block  chan struct{}
}

func (f *fakeNotifier) CompleteChallenge(ctx context.Context, c impactapi.Completion) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	f.tokens = append(f.tokens, impactapi.BearerToken(ctx))
	return f.err
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeDevices struct {
	tokens []notification.DeviceToken
}

func (f *fakeDevices) Tokens(ctx context.Context, userID string) ([]notification.DeviceToken, error) {
	return f.tokens, nil
}

type fakePush struct {
	mu    sync.Mutex
	sent  int
	title string
	data  map[string]string
}

func (f *fakePush) SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent += len(tokens)
	f.title = title
	f.data = data
	return nil
}

func (f *fakePush) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent
}

func TestDispatcherDelivers(t *testing.T) {
	n := &fakeNotifier{}
	d := NewCompletionDispatcher(n, zap.NewNop(), DispatcherOptions{Workers: 2})
	defer d.Stop()

	ok := d.Dispatch(&CompletionJob{UserID: "user_1", BearerToken: "tok", ChallengeID: 8, CO2Saved: 15})
	require.True(t, ok)

	require.Eventually(t, func() bool { return n.count() == 1 }, time.Second, 10*time.Millisecond)
	n.mu.Lock()
	defer n.mu.Unlock()
	assert.Equal(t, impactapi.Completion{ChallengeID: 8, CO2Saved: 15}, n.calls[0])
	assert.Equal(t, "tok", n.tokens[0])
}

func TestDispatcherPushesAfterDelivery(t *testing.T) {
	n := &fakeNotifier{}
	push := &fakePush{}
	devices := &fakeDevices{tokens: []notification.DeviceToken{
		{Token: "token-aaaaaaaaaaaaaaaaaaaa", Platform: notification.PlatformAndroid},
		{Token: "token-bbbbbbbbbbbbbbbbbbbb", Platform: notification.PlatformIOS},
	}}
	d := NewCompletionDispatcher(n, zap.NewNop(), DispatcherOptions{})
	d.SetPushProvider(push, devices)
	defer d.Stop()

	d.Dispatch(&CompletionJob{UserID: "user_1", ChallengeID: 3, Title: "Meatless Monday", CO2Saved: 4.5})

	require.Eventually(t, func() bool { return push.count() == 2 }, time.Second, 10*time.Millisecond)
	push.mu.Lock()
	defer push.mu.Unlock()
	assert.Equal(t, "Challenge complete", push.title)
	assert.Equal(t, "3", push.data["challengeId"])
	assert.Equal(t, "4.50", push.data["co2Saved"])
}

func TestDispatcherSkipsPushOnFailure(t *testing.T) {
	n := &fakeNotifier{err: errors.New("upstream down")}
	push := &fakePush{}
	d := NewCompletionDispatcher(n, zap.NewNop(), DispatcherOptions{Workers: 1})
	d.SetPushProvider(push, &fakeDevices{tokens: []notification.DeviceToken{{Token: "token-cccccccccccccccccccc"}}})

	d.Dispatch(&CompletionJob{UserID: "user_1", ChallengeID: 1})
	require.Eventually(t, func() bool { return n.count() == 1 }, time.Second, 10*time.Millisecond)
	d.Stop()

	assert.Equal(t, 0, push.count())
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	n := &fakeNotifier{block: make(chan struct{})}
	d := NewCompletionDispatcher(n, zap.NewNop(), DispatcherOptions{
		Workers:        1,
		QueueSize:      1,
		EnqueueTimeout: 20 * time.Millisecond,
	})

	assert.True(t, d.Dispatch(&CompletionJob{ChallengeID: 1}))
	require.Eventually(t, func() bool { return len(d.jobQueue) == 0 }, time.Second, 5*time.Millisecond)
	assert.True(t, d.Dispatch(&CompletionJob{ChallengeID: 2}))
	assert.False(t, d.Dispatch(&CompletionJob{ChallengeID: 3}))

	close(n.block)
	d.Stop()
}

func TestDispatcherStopIsIdempotent(t *testing.T) {
	d := NewCompletionDispatcher(&fakeNotifier{}, zap.NewNop(), DispatcherOptions{})
	d.Stop()
	d.Stop()
	assert.False(t, d.Dispatch(&CompletionJob{ChallengeID: 1}))
}

func TestTryDispatchNeverWaits(t *testing.T) {
	n := &fakeNotifier{block: make(chan struct{})}
	d := NewCompletionDispatcher(n, zap.NewNop(), DispatcherOptions{
		Workers:        1,
		QueueSize:      1,
		EnqueueTimeout: 5 * time.Second,
	})

	assert.True(t, d.TryDispatch(&CompletionJob{ChallengeID: 1}))
	require.Eventually(t, func() bool { return len(d.jobQueue) == 0 }, time.Second, 5*time.Millisecond)
	assert.True(t, d.TryDispatch(&CompletionJob{ChallengeID: 2}))

	start := time.Now()
	assert.False(t, d.TryDispatch(&CompletionJob{ChallengeID: 3}))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	close(n.block)
	d.Stop()
}

func TestToggleDoesNotBlockOnFullQueue(t *testing.T) {
	n := &fakeNotifier{block: make(chan struct{})}
	d := NewCompletionDispatcher(n, zap.NewNop(), DispatcherOptions{Workers: 1, QueueSize: 1, EnqueueTimeout: 5 * time.Second})
	defer func() {
		close(n.block)
		d.Stop()
	}()

	d.TryDispatch(&CompletionJob{ChallengeID: 1})
	require.Eventually(t, func() bool { return len(d.jobQueue) == 0 }, time.Second, 5*time.Millisecond)
	d.TryDispatch(&CompletionJob{ChallengeID: 2})

	svc, _ := newChallengeService(t)
	svc.dispatcher = d

	start := time.Now()
	view, err := svc.Toggle(context.Background(), "user_1", "tok", feb1)
	require.NoError(t, err)
	assert.True(t, view.State.Accepted)
	assert.Less(t, time.Since(start), time.Second)
}
