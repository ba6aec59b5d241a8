package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRFQStatus_CanTransitionTo(t *testing.T) {
	legal := []struct {
		from, to RFQStatus
	}{
		{StatusReceived, StatusParsing},
		{StatusParsing, StatusRatesLookup},
		{StatusRatesLookup, StatusRatesFound},
		{StatusRatesLookup, StatusRatesPending},
		{StatusRatesPending, StatusQuoteDraft},
		{StatusRatesFound, StatusQuoteDraft},
		{StatusQuoteDraft, StatusQuoteReview},
		{StatusQuoteReview, StatusSent},
	}
	for _, tc := range legal {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}

	illegal := []struct {
		from, to RFQStatus
	}{
		{StatusReceived, StatusRatesLookup},
		{StatusReceived, StatusSent},
		{StatusParsing, StatusQuoteDraft},
		{StatusRatesPending, StatusRatesFound},
		{StatusRatesFound, StatusQuoteReview},
		{StatusQuoteDraft, StatusSent},
		{StatusQuoteReview, StatusQuoteDraft},
		{StatusSent, StatusQuoteDraft},
		{StatusCancelled, StatusReceived},
	}
	for _, tc := range illegal {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestRFQStatus_CancelledFromAnyOpenStatus(t *testing.T) {
	for _, s := range OpenStatuses() {
		assert.True(t, s.CanTransitionTo(StatusCancelled), "%s -> cancelled should be legal", s)
	}
}

func TestRFQStatus_TerminalStatesAreDeadEnds(t *testing.T) {
	all := []RFQStatus{
		StatusReceived, StatusParsing, StatusRatesLookup, StatusRatesPending,
		StatusRatesFound, StatusQuoteDraft, StatusQuoteReview, StatusSent, StatusCancelled,
	}
	for _, terminal := range []RFQStatus{StatusSent, StatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s must be rejected", terminal, next)
		}
		assert.Nil(t, terminal.AllowedTransitions())
	}
}

func TestRFQStatus_AllowedTransitionsIncludesCancel(t *testing.T) {
	got := StatusRatesLookup.AllowedTransitions()
	assert.ElementsMatch(t, []RFQStatus{StatusRatesFound, StatusRatesPending, StatusCancelled}, got)
}

func TestRFQ_IsOpen(t *testing.T) {
	assert.True(t, RFQ{Status: StatusQuoteDraft}.IsOpen())
	assert.False(t, RFQ{Status: StatusSent}.IsOpen())
	assert.False(t, RFQ{Status: StatusCancelled}.IsOpen())
}
