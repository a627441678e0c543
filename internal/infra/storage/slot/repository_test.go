package slot

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReserveQuery_IsSingleConditionalUpdate(t *testing.T) {
	id := uuid.New()
	today := time.Date(2026, 6, 1, 18, 30, 0, 0, time.UTC)

	query, args, err := buildReserveQuery(id, today)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE time_slots SET current_bookings = current_bookings + 1, updated_at = NOW() "+
			"WHERE id = $1 AND is_available = $2 AND current_bookings < max_capacity AND date >= $3",
		query)
	assert.Equal(t, []interface{}{id.String(), true, "2026-06-01"}, args)
}

func TestBuildReleaseQuery_FloorsAtZero(t *testing.T) {
	id := uuid.New()

	query, args, err := buildReleaseQuery(id)
	require.NoError(t, err)

	assert.Contains(t, query, "current_bookings = GREATEST(current_bookings - 1, 0)")
	assert.Equal(t, []interface{}{id.String()}, args)
}
