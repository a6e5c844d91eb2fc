package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDashboardPeriod(t *testing.T) {
	// Early morning in Jakarta on the 1st is still the previous month in
	// UTC; the window must follow the UTC month the service aggregates.
	wib := time.FixedZone("WIB", 7*3600)
	now := time.Date(2025, 9, 1, 2, 0, 0, 0, wib)

	monthStart, monthEnd := dashboardPeriod(now)

	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), monthStart)
	assert.Equal(t, time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), monthEnd)
}

func TestDashboardPeriod_MidMonth(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

	monthStart, monthEnd := dashboardPeriod(now)

	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), monthStart)
	assert.Equal(t, time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), monthEnd)
}
