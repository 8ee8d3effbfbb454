package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"impactDashboardAPI/internal/impactapi"
	"impactDashboardAPI/internal/notification"
)

// CompletionNotifier sends the completion notice upstream.
type CompletionNotifier interface {
	CompleteChallenge(ctx context.Context, completion impactapi.Completion) error
}

type DeviceLister interface {
	Tokens(ctx context.Context, userID string) ([]notification.DeviceToken, error)
}

type CompletionJob struct {
	ID          uuid.UUID
	UserID      string
	BearerToken string
	ChallengeID int
	Title       string
	CO2Saved    float64
}

// CompletionDispatcher delivers completion notices on a worker pool. Delivery
// is fire-and-forget: failures are logged and dropped.
type CompletionDispatcher struct {
	notifier       CompletionNotifier
	devices        DeviceLister
	pushProvider   notification.PushProvider
	logger         *zap.Logger
	workers        int
	enqueueTimeout time.Duration
	jobQueue       chan *CompletionJob
	stopChan       chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
}

type DispatcherOptions struct {
	Workers        int
	QueueSize      int
	EnqueueTimeout time.Duration
}

func NewCompletionDispatcher(notifier CompletionNotifier, logger *zap.Logger, opts DispatcherOptions) *CompletionDispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 5
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 100
	}
	if opts.EnqueueTimeout <= 0 {
		opts.EnqueueTimeout = 5 * time.Second
	}

	d := &CompletionDispatcher{
		notifier:       notifier,
		logger:         logger,
		workers:        opts.Workers,
		enqueueTimeout: opts.EnqueueTimeout,
		jobQueue:       make(chan *CompletionJob, opts.QueueSize),
		stopChan:       make(chan struct{}),
	}
	d.startWorkers()
	return d
}

// SetPushProvider enables a push to the user's devices after each delivered notice.
func (d *CompletionDispatcher) SetPushProvider(provider notification.PushProvider, devices DeviceLister) {
	d.pushProvider = provider
	d.devices = devices
}

func (d *CompletionDispatcher) startWorkers() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

func (d *CompletionDispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case job := <-d.jobQueue:
			d.processJob(job)
		case <-d.stopChan:
			return
		}
	}
}

// Dispatch queues job and reports whether it was accepted. A full queue drops
// the job after the enqueue timeout.
func (d *CompletionDispatcher) Dispatch(job *CompletionJob) bool {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	select {
	case <-d.stopChan:
		return false
	default:
	}

	select {
	case d.jobQueue <- job:
		d.logger.Debug("completion queued", zap.String("job_id", job.ID.String()), zap.Int("challenge_id", job.ChallengeID))
		return true
	case <-time.After(d.enqueueTimeout):
		completionsTotal.WithLabelValues("dropped").Inc()
		d.logger.Warn("failed to queue completion: queue full",
			zap.String("job_id", job.ID.String()),
			zap.String("user_id", job.UserID),
		)
		return false
	case <-d.stopChan:
		return false
	}
}

// TryDispatch queues job only if the queue has room right now. Request paths
// use it so a backed-up queue never holds a response.
func (d *CompletionDispatcher) TryDispatch(job *CompletionJob) bool {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	select {
	case <-d.stopChan:
		return false
	default:
	}

	select {
	case d.jobQueue <- job:
		d.logger.Debug("completion queued", zap.String("job_id", job.ID.String()), zap.Int("challenge_id", job.ChallengeID))
		return true
	default:
		completionsTotal.WithLabelValues("dropped").Inc()
		d.logger.Warn("failed to queue completion: queue full",
			zap.String("job_id", job.ID.String()),
			zap.String("user_id", job.UserID),
		)
		return false
	}
}

func (d *CompletionDispatcher) processJob(job *CompletionJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ctx = impactapi.WithBearerToken(ctx, job.BearerToken)

	err := d.notifier.CompleteChallenge(ctx, impactapi.Completion{
		ChallengeID: job.ChallengeID,
		CO2Saved:    job.CO2Saved,
	})
	if err != nil {
		completionsTotal.WithLabelValues("failed").Inc()
		d.logger.Warn("challenge completion notice failed",
			zap.String("job_id", job.ID.String()),
			zap.String("user_id", job.UserID),
			zap.Int("challenge_id", job.ChallengeID),
			zap.Error(err),
		)
		return
	}
	completionsTotal.WithLabelValues("sent").Inc()

	if d.pushProvider == nil || d.devices == nil {
		return
	}

	tokens, err := d.devices.Tokens(ctx, job.UserID)
	if err != nil {
		d.logger.Warn("failed to load device tokens", zap.String("user_id", job.UserID), zap.Error(err))
		return
	}
	if len(tokens) == 0 {
		return
	}

	body := fmt.Sprintf("%s done: about %.2f kg CO₂ saved", job.Title, job.CO2Saved)
	data := map[string]string{
		"challengeId": fmt.Sprint(job.ChallengeID),
		"co2Saved":    fmt.Sprintf("%.2f", job.CO2Saved),
	}
	if err := d.pushProvider.SendPush(ctx, tokens, "Challenge complete", body, data); err != nil {
		d.logger.Warn("completion push failed", zap.String("user_id", job.UserID), zap.Error(err))
	}
}

// Stop the dispatcher gracefully. Jobs still queued are discarded.
func (d *CompletionDispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.logger.Info("stopping completion dispatcher")
		close(d.stopChan)
		d.wg.Wait()
		d.logger.Info("completion dispatcher stopped")
	})
}
