package sla

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
)

func TestDeadline(t *testing.T) {
	received := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	target, deadline := Deadline(entities.UrgencyStandard, received, 24, 4)
	assert.Equal(t, 24, target)
	assert.Equal(t, received.Add(24*time.Hour), deadline)

	target, deadline = Deadline(entities.UrgencyUrgent, received, 24, 4)
	assert.Equal(t, 4, target)
	assert.Equal(t, received.Add(4*time.Hour), deadline)
}

func TestHoursRemaining(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 3.0, HoursRemaining(now, now.Add(3*time.Hour)))
	assert.Equal(t, -1.5, HoursRemaining(now, now.Add(-90*time.Minute)))
}

func TestClassify(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	t.Run("on track when comfortably before deadline", func(t *testing.T) {
		got := Classify(now, now.Add(10*time.Hour), false, 2)
		assert.Equal(t, OnTrack, got)
	})

	t.Run("approaching inside the warning window", func(t *testing.T) {
		got := Classify(now, now.Add(90*time.Minute), false, 2)
		assert.Equal(t, Approaching, got)
	})

	t.Run("approaching exactly at the threshold", func(t *testing.T) {
		got := Classify(now, now.Add(2*time.Hour), false, 2)
		assert.Equal(t, Approaching, got)
	})

	t.Run("breached once the deadline passes", func(t *testing.T) {
		got := Classify(now, now.Add(-time.Minute), false, 2)
		assert.Equal(t, Breached, got)
	})

	t.Run("recorded breach is one-way", func(t *testing.T) {
		got := Classify(now, now.Add(10*time.Hour), true, 2)
		assert.Equal(t, Breached, got)
	})
}
