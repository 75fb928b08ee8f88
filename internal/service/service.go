// Package service is the simulated backend's public surface: every operation
// runs through the fault harness (randomized latency, randomized failure
// injection, error-observation hook) before touching the store.
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"
	"sanctuary-api/internal/session"
	"sanctuary-api/internal/store"
	"sanctuary-api/internal/util"

	"go.uber.org/zap"
)

// ErrorContext describes a failed operation to the registered observer.
type ErrorContext struct {
	Endpoint string `json:"endpoint"`
	Payload  any    `json:"payload,omitempty"`
	Cause    error  `json:"cause"`
}

type ErrorHook func(ErrorContext)

type Service struct {
	store    *store.Store
	sessions *session.Manager
	logger   *zap.Logger

	// simulator state, adjustable at runtime
	mu         sync.Mutex
	minLatency time.Duration
	maxLatency time.Duration
	errorRate  float64
	hook       ErrorHook
	rng        *rand.Rand
	sleep      func(time.Duration)
}

// Options configures the fault simulator. Zero latency bounds disable the
// delay and a zero error rate disables injection, which is what tests want;
// production defaults come from the config package.
type Options struct {
	MinLatency time.Duration
	MaxLatency time.Duration
	ErrorRate  float64
	Rand       *rand.Rand
	Sleep      func(time.Duration)
}

// NewService creates the core service over a store and session manager.
func NewService(st *store.Store, sessions *session.Manager, opts Options) *Service {
	s := &Service{
		store:      st,
		sessions:   sessions,
		logger:     util.GetLogger(),
		minLatency: opts.MinLatency,
		maxLatency: opts.MaxLatency,
		errorRate:  clampRate(opts.ErrorRate),
		rng:        opts.Rand,
		sleep:      opts.Sleep,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	return s
}

func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// SetLatency updates the simulated latency window; takes effect on the next
// call.
func (s *Service) SetLatency(min, max time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if min > max {
		min = max
	}
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	s.minLatency = min
	s.maxLatency = max
}

// SetErrorRate updates the injected failure probability, clamped to [0, 1].
func (s *Service) SetErrorRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorRate = clampRate(rate)
}

// SetErrorHook registers the failure observer; nil unregisters it.
func (s *Service) SetErrorHook(hook ErrorHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = hook
}

// Reset restores the seed data and clears all sessions.
func (s *Service) Reset() {
	s.store.Reset()
	s.sessions.Clear()
}

// FetchCategories returns the static category set.
func (s *Service) FetchCategories(ctx context.Context) ([]models.Category, error) {
	return run(ctx, s, "categories:list", nil, func() ([]models.Category, error) {
		return s.store.Categories(), nil
	})
}

// simulateLatency blocks for a uniformly random delay in the configured
// window, or not at all when the upper bound is zero. It runs before any
// lock the operation body takes.
func (s *Service) simulateLatency() {
	s.mu.Lock()
	min, max := s.minLatency, s.maxLatency
	var latency time.Duration
	if max > 0 {
		latency = min
		if span := max - min; span > 0 {
			latency += time.Duration(s.rng.Int63n(int64(span) + 1))
		}
	}
	s.mu.Unlock()

	if latency > 0 {
		s.sleep(latency)
	}
}

func (s *Service) drawFailure() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errorRate <= 0 {
		return false
	}
	return s.rng.Float64() < s.errorRate
}

// notifyHook invokes the registered observer exactly once for a failure,
// before the error propagates to the caller.
func (s *Service) notifyHook(endpoint string, payload any, cause error) {
	s.mu.Lock()
	hook := s.hook
	s.mu.Unlock()

	if hook != nil {
		hook(ErrorContext{Endpoint: endpoint, Payload: payload, Cause: cause})
	}
}

// run wraps an operation with the fault harness: injected latency, a chance
// of a short-circuiting SIMULATED_FAILURE, tracing, metrics, and hook
// dispatch on any failure.
func run[T any](ctx context.Context, s *Service, endpoint string, payload any, op func() (T, error)) (T, error) {
	_, span := util.StartSpan(ctx, endpoint)
	defer span.End()

	start := time.Now()
	defer func() {
		util.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	var zero T
	s.simulateLatency()

	if s.drawFailure() {
		err := apierr.New(503, apierr.KindSimulatedFailure, "Simulated network issue while calling "+endpoint)
		util.SimulatedFailuresTotal.Inc()
		util.APIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		s.logger.Warn("Injected simulated failure", zap.String("endpoint", endpoint))
		s.notifyHook(endpoint, payload, err)
		return zero, err
	}

	out, err := op()
	if err != nil {
		util.APIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		s.notifyHook(endpoint, payload, err)
		return zero, err
	}

	util.APIRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return out, nil
}

// runVoid is run for operations with no result.
func runVoid(ctx context.Context, s *Service, endpoint string, payload any, op func() error) error {
	_, err := run(ctx, s, endpoint, payload, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}
