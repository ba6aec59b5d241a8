package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRate_StatusAt(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	r := Rate{ValidFrom: from, ValidTo: to}

	// Window bounds are inclusive.
	assert.Equal(t, RateStatusActive, r.StatusAt(from))
	assert.Equal(t, RateStatusActive, r.StatusAt(to))
	assert.Equal(t, RateStatusActive, r.StatusAt(from.AddDate(0, 1, 0)))

	assert.Equal(t, RateStatusExpired, r.StatusAt(from.Add(-time.Second)))
	assert.Equal(t, RateStatusExpired, r.StatusAt(to.Add(time.Second)))
}

func TestTransportMode_Valid(t *testing.T) {
	assert.True(t, ModeAir.Valid())
	assert.True(t, ModeSea.Valid())
	assert.True(t, ModeRoad.Valid())
	assert.False(t, TransportMode("RAIL").Valid())
	assert.False(t, TransportMode("").Valid())
}

func TestRateUnit_Valid(t *testing.T) {
	assert.True(t, UnitKG.Valid())
	assert.True(t, UnitCBM.Valid())
	assert.True(t, UnitContainer.Valid())
	assert.False(t, RateUnit("PALLET").Valid())
}
