// Package sla holds the pure time math for RFQ response deadlines.
//
// Everything here is a function of (now, deadline, thresholds) so the
// evaluator can be tested without a real clock.
package sla

import (
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
)

// Classification buckets an open RFQ relative to its deadline.
type Classification string

const (
	OnTrack     Classification = "on_track"
	Approaching Classification = "approaching"
	Breached    Classification = "breached"
)

// DefaultApproachingHours flags RFQs within this many hours of deadline.
const DefaultApproachingHours = 2

// Deadline computes (target hours, deadline) for an intake.
func Deadline(urgency entities.Urgency, receivedAt time.Time, standardHours, urgentHours int) (int, time.Time) {
	target := standardHours
	if urgency == entities.UrgencyUrgent {
		target = urgentHours
	}
	return target, receivedAt.Add(time.Duration(target) * time.Hour)
}

// HoursRemaining is negative once the deadline has passed.
func HoursRemaining(now, deadline time.Time) float64 {
	return deadline.Sub(now).Hours()
}

// Classify buckets a deadline against now. A previously recorded breach is
// one-way: it stays breached even if the inputs would say otherwise.
func Classify(now, deadline time.Time, alreadyBreached bool, approachingHours float64) Classification {
	remaining := HoursRemaining(now, deadline)
	switch {
	case alreadyBreached || remaining < 0:
		return Breached
	case remaining <= approachingHours:
		return Approaching
	default:
		return OnTrack
	}
}
