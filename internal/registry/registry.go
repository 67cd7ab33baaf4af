// Package registry indexes detection handlers by protocol and device type and
// fans lifecycle calls out to all of them.
package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/InfraSecConsult/surveillance-detector-go/internal/metrics"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// ErrNoHandler is returned when no handler is registered for a protocol
var ErrNoHandler = errors.New("no handler registered")

// Registry maps protocols and device types to handlers. It is safe for
// concurrent use; lookups may race with registration and lifecycle fan-out.
//
// Each protocol has one primary handler. Register replaces the primary.
// RegisterCustom layers an extra handler on top and only claims what is
// still unclaimed.
type Registry struct {
	logger  zerolog.Logger
	metrics *metrics.Metrics

	mu           sync.RWMutex
	primary      map[model.Protocol]DetectionHandler
	layers       map[model.Protocol][]DetectionHandler
	byDeviceType map[model.DeviceType]DetectionHandler
	handlers     []DetectionHandler // registration order, no duplicates
}

// New creates a registry holding the given handlers as primaries
func New(logger zerolog.Logger, m *metrics.Metrics, handlers ...DetectionHandler) *Registry {
	r := &Registry{
		logger:       logger.With().Str("component", "registry").Logger(),
		metrics:      m,
		primary:      make(map[model.Protocol]DetectionHandler),
		layers:       make(map[model.Protocol][]DetectionHandler),
		byDeviceType: make(map[model.DeviceType]DetectionHandler),
	}
	for _, h := range handlers {
		r.Register(h)
	}
	return r
}

// Register installs h as the primary handler of its protocol. A previous
// primary is replaced and loses its device-type mappings.
func (r *Registry) Register(h DetectionHandler) {
	protocol := h.Protocol()

	r.mu.Lock()
	if prev, ok := r.primary[protocol]; ok && prev != h {
		r.logger.Warn().
			Str("protocol", string(protocol)).
			Str("previous", prev.Name()).
			Str("handler", h.Name()).
			Msg("Replacing primary handler")
		r.forgetLocked(prev)
	}
	if layered := slices.DeleteFunc(r.layers[protocol], func(x DetectionHandler) bool { return x == h }); len(layered) > 0 {
		r.layers[protocol] = layered
	} else {
		delete(r.layers, protocol)
	}
	r.primary[protocol] = h
	for _, dt := range h.DeviceTypes() {
		r.byDeviceType[dt] = h
	}
	r.addLocked(h)
	n := len(r.handlers)
	r.mu.Unlock()

	r.metrics.SetRegisteredHandlers(n)
}

// RegisterCustom adds h without displacing existing mappings. It becomes the
// primary only when its protocol is unclaimed, and only claims device types
// no other handler maps.
func (r *Registry) RegisterCustom(h DetectionHandler) {
	protocol := h.Protocol()

	r.mu.Lock()
	if slices.Contains(r.handlers, h) {
		r.mu.Unlock()
		return
	}
	if _, claimed := r.primary[protocol]; claimed {
		r.layers[protocol] = append(r.layers[protocol], h)
		r.logger.Info().
			Str("protocol", string(protocol)).
			Str("handler", h.Name()).
			Msg("Layered custom handler over existing primary")
	} else {
		r.primary[protocol] = h
	}
	for _, dt := range h.DeviceTypes() {
		if _, claimed := r.byDeviceType[dt]; !claimed {
			r.byDeviceType[dt] = h
		}
	}
	r.addLocked(h)
	n := len(r.handlers)
	r.mu.Unlock()

	r.metrics.SetRegisteredHandlers(n)
}

// Unregister removes every handler of a protocol from all indices. It returns
// false, and logs a warning, when nothing was registered for it.
func (r *Registry) Unregister(protocol model.Protocol) bool {
	r.mu.Lock()
	removed := make([]DetectionHandler, 0, 1+len(r.layers[protocol]))
	if h, ok := r.primary[protocol]; ok {
		removed = append(removed, h)
	}
	removed = append(removed, r.layers[protocol]...)
	for _, h := range removed {
		r.forgetLocked(h)
	}
	delete(r.primary, protocol)
	delete(r.layers, protocol)
	n := len(r.handlers)
	r.mu.Unlock()

	if len(removed) == 0 {
		r.logger.Warn().Str("protocol", string(protocol)).Msg("Unregister called for protocol without handler")
		return false
	}
	r.metrics.SetRegisteredHandlers(n)
	return true
}

// addLocked must be called with mu held
func (r *Registry) addLocked(h DetectionHandler) {
	if !slices.Contains(r.handlers, h) {
		r.handlers = append(r.handlers, h)
	}
}

// forgetLocked drops h from the handler set, the layers and the device-type
// index. The primary index is left to the caller. Must be called with mu held.
func (r *Registry) forgetLocked(h DetectionHandler) {
	r.handlers = slices.DeleteFunc(r.handlers, func(x DetectionHandler) bool { return x == h })
	for p, layered := range r.layers {
		layered = slices.DeleteFunc(layered, func(x DetectionHandler) bool { return x == h })
		if len(layered) == 0 {
			delete(r.layers, p)
		} else {
			r.layers[p] = layered
		}
	}
	for dt, owner := range r.byDeviceType {
		if owner == h {
			delete(r.byDeviceType, dt)
		}
	}
}

// HandlerFor returns the primary handler of a protocol
func (r *Registry) HandlerFor(protocol model.Protocol) (DetectionHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.primary[protocol]
	return h, ok
}

// HandlersFor returns the primary handler followed by any custom layers
func (r *Registry) HandlersFor(protocol model.Protocol) []DetectionHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.primary[protocol]
	if !ok {
		return nil
	}
	out := make([]DetectionHandler, 0, 1+len(r.layers[protocol]))
	out = append(out, h)
	return append(out, r.layers[protocol]...)
}

// Lookup is HandlerFor returning ErrNoHandler instead of a flag
func (r *Registry) Lookup(protocol model.Protocol) (DetectionHandler, error) {
	h, ok := r.HandlerFor(protocol)
	if !ok {
		return nil, fmt.Errorf("%w for protocol %q", ErrNoHandler, protocol)
	}
	return h, nil
}

// HandlerForDeviceType returns the handler that claimed a device type
func (r *Registry) HandlerForDeviceType(dt model.DeviceType) (DetectionHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byDeviceType[dt]
	return h, ok
}

// Handlers returns a snapshot of all registered handlers in registration order
func (r *Registry) Handlers() []DetectionHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.handlers)
}

// Protocols returns the protocols with a primary handler, sorted
func (r *Registry) Protocols() []model.Protocol {
	r.mu.RLock()
	out := make([]model.Protocol, 0, len(r.primary))
	for p := range r.primary {
		out = append(out, p)
	}
	r.mu.RUnlock()
	slices.Sort(out)
	return out
}

// DeviceTypes returns the number of claimed device types
func (r *Registry) DeviceTypes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byDeviceType)
}

// Len returns the number of registered handlers
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// StartAll starts every handler. Failures are logged and returned joined;
// they never stop the remaining handlers from starting.
func (r *Registry) StartAll(ctx context.Context) error {
	return r.fanOut("start", r.Handlers(), func(h DetectionHandler) error { return h.Start(ctx) })
}

// StopAll stops every handler
func (r *Registry) StopAll() error {
	return r.fanOut("stop", r.Handlers(), DetectionHandler.Stop)
}

// UpdateLocationOnAll forwards the receiver position to every handler
func (r *Registry) UpdateLocationOnAll(lat, lon float64) error {
	return r.fanOut("update_location", r.Handlers(), func(h DetectionHandler) error {
		h.UpdateLocation(lat, lon)
		return nil
	})
}

// DestroyAll empties every index and then destroys the handlers that were
// registered. The indices are empty afterwards even when a Destroy fails.
func (r *Registry) DestroyAll() error {
	r.mu.Lock()
	snapshot := r.handlers
	r.handlers = nil
	r.primary = make(map[model.Protocol]DetectionHandler)
	r.layers = make(map[model.Protocol][]DetectionHandler)
	r.byDeviceType = make(map[model.DeviceType]DetectionHandler)
	r.mu.Unlock()

	r.metrics.SetRegisteredHandlers(0)
	return r.fanOut("destroy", snapshot, DetectionHandler.Destroy)
}

// fanOut calls fn on each handler outside the lock. A panic or error in one
// handler is logged and counted and the loop moves on.
func (r *Registry) fanOut(operation string, handlers []DetectionHandler, fn func(DetectionHandler) error) error {
	var errs []error
	for _, h := range handlers {
		if err := r.call(operation, h, fn); err != nil {
			r.logger.Error().
				Err(err).
				Str("handler", h.Name()).
				Str("operation", operation).
				Msg("Handler lifecycle call failed")
			r.metrics.RecordHandlerFailure(h.Name(), operation)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) call(operation string, h DetectionHandler, fn func(DetectionHandler) error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s %s: panic: %v", h.Name(), operation, rec)
		}
	}()
	if err := fn(h); err != nil {
		return fmt.Errorf("%s %s: %w", h.Name(), operation, err)
	}
	return nil
}
