// Package engine runs observations through the registered handlers, rescores
// detections corroborated by another protocol and assesses the result.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/InfraSecConsult/surveillance-detector-go/internal/correlator"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/metrics"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/registry"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/scoring"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/helper"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// ErrInvalidObservation wraps structural problems with an observation
var ErrInvalidObservation = errors.New("invalid observation")

// Options configure an Engine
type Options struct {
	Logger  zerolog.Logger
	Metrics *metrics.Metrics

	// CrossProtocolWindow is how far apart two detections of different
	// protocols may be to corroborate each other
	CrossProtocolWindow time.Duration
	// RecentDetections bounds the memory used for corroboration and Assess
	RecentDetections int
	Correlation      correlator.Options
}

// DefaultOptions returns a five minute corroboration window
func DefaultOptions() Options {
	return Options{
		Logger:              zerolog.Nop(),
		CrossProtocolWindow: 5 * time.Minute,
		RecentDetections:    512,
		Correlation:         correlator.DefaultOptions(),
	}
}

// Engine is safe for concurrent use
type Engine struct {
	registry    *registry.Registry
	metrics     *metrics.Metrics
	logger      zerolog.Logger
	recent      *helper.RingBuffer[model.Detection]
	crossWindow time.Duration
	correlation correlator.Options
}

// New creates an engine routing through reg
func New(reg *registry.Registry, opts Options) *Engine {
	d := DefaultOptions()
	if opts.CrossProtocolWindow <= 0 {
		opts.CrossProtocolWindow = d.CrossProtocolWindow
	}
	if opts.RecentDetections < 1 {
		opts.RecentDetections = d.RecentDetections
	}
	if opts.Correlation.LocationTolerance <= 0 {
		opts.Correlation.LocationTolerance = d.Correlation.LocationTolerance
	}
	return &Engine{
		registry:    reg,
		metrics:     opts.Metrics,
		logger:      opts.Logger.With().Str("component", "engine").Logger(),
		recent:      helper.NewRingBuffer[model.Detection](opts.RecentDetections),
		crossWindow: opts.CrossProtocolWindow,
		correlation: opts.Correlation,
	}
}

// Process classifies one observation with every handler of its protocol.
// A handler that panics is logged and skipped; the others still run.
func (e *Engine) Process(ctx context.Context, obs model.Observation) ([]model.Detection, error) {
	if err := obs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidObservation, err)
	}
	handlers := e.registry.HandlersFor(obs.Protocol)
	if len(handlers) == 0 {
		return nil, fmt.Errorf("%w for protocol %q", registry.ErrNoHandler, obs.Protocol)
	}
	if obs.ID == "" {
		obs.ID = uuid.NewString()
	}

	start := time.Now()
	var detections []model.Detection
	for _, h := range handlers {
		if err := ctx.Err(); err != nil {
			return detections, err
		}
		detections = append(detections, e.run(ctx, h, obs)...)
	}

	for i := range detections {
		d := &detections[i]
		if e.corroborated(*d) {
			d.Input.CrossProtocol = true
			d.Threat = scoring.Score(d.Input)
		}
	}
	for _, d := range detections {
		e.recent.Add(d)
		e.metrics.RecordDetection(string(d.Protocol), d.Threat.Severity.String(), d.Threat.AdjustedScore)
		e.logger.Info().
			Str("protocol", string(d.Protocol)).
			Str("device_type", d.DeviceType.String()).
			Int("score", d.Threat.AdjustedScore).
			Str("severity", d.Threat.Severity.String()).
			Bool("cross_protocol", d.Input.CrossProtocol).
			Msg("Detection")
	}
	e.metrics.RecordObservation(string(obs.Protocol), time.Since(start))
	return detections, nil
}

func (e *Engine) run(ctx context.Context, h registry.DetectionHandler, obs model.Observation) (out []model.Detection) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error().
				Str("handler", h.Name()).
				Interface("panic", rec).
				Msg("Handler panicked while processing observation")
			e.metrics.RecordHandlerFailure(h.Name(), "process")
			out = nil
		}
	}()
	return h.Process(ctx, obs)
}

// corroborated reports whether a recent detection from another protocol was
// made at the same place within the cross-protocol window
func (e *Engine) corroborated(d model.Detection) bool {
	matches := e.recent.Select(func(r model.Detection) bool {
		if r.Protocol == d.Protocol {
			return false
		}
		gap := d.Timestamp.Sub(r.Timestamp)
		if gap < 0 {
			gap = -gap
		}
		return gap <= e.crossWindow && helper.SameLocation(d.Location, r.Location, e.correlation.LocationTolerance)
	})
	return len(matches) > 0
}

// ProcessBatch processes observations in order. Invalid observations and
// protocols without a handler are logged and skipped; their errors are
// returned joined. Cancellation stops the batch.
func (e *Engine) ProcessBatch(ctx context.Context, observations []model.Observation) ([]model.Detection, error) {
	var (
		all  []model.Detection
		errs []error
	)
	for i, obs := range observations {
		detections, err := e.Process(ctx, obs)
		all = append(all, detections...)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return all, ctxErr
			}
			e.logger.Warn().Err(err).Int("index", i).Msg("Skipping observation")
			errs = append(errs, fmt.Errorf("observation %d: %w", i, err))
		}
	}
	return all, errors.Join(errs...)
}

// Assess correlates the given detections at time now
func (e *Engine) Assess(detections []model.Detection, now time.Time) model.AggregateThreatResult {
	result := correlator.Correlate(detections, now, e.correlation)
	e.metrics.SetAggregate(result.Score, result.IncidentCount)
	e.logger.Info().
		Int("score", result.Score).
		Str("severity", result.Severity.String()).
		Int("incidents", result.IncidentCount).
		Int("detections", result.DetectionCount).
		Msg("Aggregate assessment")
	return result
}

// AssessRecent correlates the detections the engine still remembers
func (e *Engine) AssessRecent(now time.Time) model.AggregateThreatResult {
	return e.Assess(e.recent.Snapshot(), now)
}

// Recent returns the remembered detections, oldest first
func (e *Engine) Recent() []model.Detection {
	return e.recent.Snapshot()
}

// Registry exposes the handler registry the engine routes through
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}
