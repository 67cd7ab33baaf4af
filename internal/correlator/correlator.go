// Package correlator groups scored detections into incidents and folds a
// window of them into one aggregate assessment.
package correlator

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/InfraSecConsult/surveillance-detector-go/internal/scoring"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/helper"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// Aggregate multipliers in percent, applied in this order and capped at 100
const (
	CrossProtocolPercent = 120
	RecurringPercent     = 115
	RecentHighPercent    = 110

	// RecurringThreshold is how often one device type must appear to count as a pattern
	RecurringThreshold = 3
)

// Options control the correlation window and incident grouping
type Options struct {
	Window            time.Duration // detections older than now-Window are ignored
	IncidentGap       time.Duration // max gap to the last member of an incident
	LocationTolerance float64       // degrees
	RecentWindow      time.Duration // lookback for the high-severity boost
}

// DefaultOptions returns a 30 minute window with 5 minute incident gaps
func DefaultOptions() Options {
	return Options{
		Window:            30 * time.Minute,
		IncidentGap:       5 * time.Minute,
		LocationTolerance: helper.DefaultLocationTolerance,
		RecentWindow:      5 * time.Minute,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Window <= 0 {
		o.Window = d.Window
	}
	if o.IncidentGap <= 0 {
		o.IncidentGap = d.IncidentGap
	}
	if o.LocationTolerance <= 0 {
		o.LocationTolerance = d.LocationTolerance
	}
	if o.RecentWindow <= 0 {
		o.RecentWindow = d.RecentWindow
	}
	return o
}

// GroupIncidents sorts a copy of the detections by time and groups them
// greedily. A detection joins the open incident when it follows the incident's
// last member within IncidentGap and sits at the incident's location. The
// location of an incident is the first known position among its members; an
// unknown position on either side matches.
func GroupIncidents(detections []model.Detection, opts Options) []model.Incident {
	opts = opts.withDefaults()
	if len(detections) == 0 {
		return nil
	}

	sorted := slices.Clone(detections)
	slices.SortStableFunc(sorted, func(a, b model.Detection) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	var incidents []model.Incident
	var protocols *model.ProtocolSet
	for _, d := range sorted {
		if n := len(incidents); n > 0 {
			cur := &incidents[n-1]
			if d.Timestamp.Sub(cur.End) <= opts.IncidentGap &&
				helper.SameLocation(cur.Location, d.Location, opts.LocationTolerance) {
				cur.Detections = append(cur.Detections, d)
				cur.End = d.Timestamp
				if cur.Location == nil && d.Location != nil {
					loc := *d.Location
					cur.Location = &loc
				}
				cur.PeakScore = max(cur.PeakScore, d.Threat.AdjustedScore)
				protocols.Add(d.Protocol)
				cur.Protocols = protocols.List()
				continue
			}
		}

		inc := model.Incident{
			ID:         uuid.NewString(),
			Detections: []model.Detection{d},
			Start:      d.Timestamp,
			End:        d.Timestamp,
			PeakScore:  d.Threat.AdjustedScore,
			Protocols:  []model.Protocol{d.Protocol},
		}
		if d.Location != nil {
			loc := *d.Location
			inc.Location = &loc
		}
		protocols = model.NewProtocolSet(d.Protocol)
		incidents = append(incidents, inc)
	}
	return incidents
}

// within reports whether ts lies in [from, now]
func within(ts, from, now time.Time) bool {
	return !ts.Before(from) && !ts.After(now)
}

// Correlate assesses the detections inside [now-Window, now]. Empty input or
// an empty window yields an INFO result with score 0 instead of an error.
// The input slice is never modified.
func Correlate(detections []model.Detection, now time.Time, opts Options) model.AggregateThreatResult {
	opts = opts.withDefaults()
	if len(detections) == 0 {
		return quiet("No detections to assess")
	}

	cutoff := now.Add(-opts.Window)
	recentCutoff := now.Add(-opts.RecentWindow)
	window := make([]model.Detection, 0, len(detections))
	for _, d := range detections {
		if within(d.Timestamp, cutoff, now) {
			window = append(window, d)
		}
	}
	if len(window) == 0 {
		return quiet(fmt.Sprintf("No detections in the last %s", minutes(opts.Window)))
	}

	var (
		highest       model.Detection
		protocols     = model.NewProtocolSet()
		perType       = make(map[model.DeviceType]int)
		recentHigh    bool
		recurringType model.DeviceType
	)
	for i, d := range window {
		if i == 0 || d.Threat.AdjustedScore > highest.Threat.AdjustedScore {
			highest = d
		}
		protocols.Add(d.Protocol)
		perType[d.DeviceType]++
		if within(d.Timestamp, recentCutoff, now) && d.Threat.Severity.AtLeast(model.SeverityHigh) {
			recentHigh = true
		}
	}
	recurringCount := 0
	for dt, n := range perType {
		if n > recurringCount || (n == recurringCount && dt < recurringType) {
			recurringType, recurringCount = dt, n
		}
	}

	crossProtocol := protocols.Size() > 1
	recurring := recurringCount >= RecurringThreshold
	incidents := GroupIncidents(window, opts)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d detection(s) in %d incident(s) over the last %s. Highest individual score %d (%s)",
		len(window), len(incidents), minutes(opts.Window), highest.Threat.AdjustedScore, highest.DeviceType)

	score := highest.Threat.AdjustedScore
	if crossProtocol {
		score = boost(score, CrossProtocolPercent)
		fmt.Fprintf(&sb, ". Correlated across %s (x1.20)", strings.ReplaceAll(protocols.ToString(), ",", ", "))
	}
	if recurring {
		score = boost(score, RecurringPercent)
		fmt.Fprintf(&sb, ". %s seen %d times (x1.15)", recurringType, recurringCount)
	}
	if recentHigh {
		score = boost(score, RecentHighPercent)
		fmt.Fprintf(&sb, ". High severity detection in the last %s (x1.10)", minutes(opts.RecentWindow))
	}
	severity := scoring.SeverityFor(score)
	fmt.Fprintf(&sb, ". Aggregate score %d, %s", score, severity)

	return model.AggregateThreatResult{
		Severity:            severity,
		Score:               score,
		HighestScore:        highest.Threat.AdjustedScore,
		DetectionCount:      len(window),
		IncidentCount:       len(incidents),
		Incidents:           incidents,
		CorrelatedProtocols: protocols.List(),
		CrossProtocol:       crossProtocol,
		RecurringPattern:    recurring,
		RecentHighSeverity:  recentHigh,
		Reasoning:           sb.String(),
	}
}

func boost(score, percent int) int {
	return min(score*percent/100, 100)
}

func quiet(reason string) model.AggregateThreatResult {
	return model.AggregateThreatResult{
		Severity:            model.SeverityInfo,
		CorrelatedProtocols: []model.Protocol{},
		Reasoning:           reason,
	}
}

func minutes(d time.Duration) string {
	if d%time.Minute == 0 {
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
	return d.String()
}
