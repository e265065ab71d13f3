package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventStatus(t *testing.T) {
	tests := []struct {
		input string
		want  EventStatus
		ok    bool
	}{
		{"published", EventStatusPublished, true},
		{" Draft ", EventStatusDraft, true},
		{"CANCELLED", EventStatusCancelled, true},
		{"", "", false},
		{"archived", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseEventStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeRange_JSONRoundTrip(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC)

	data, err := json.Marshal(TimeRange{Start: &start, End: &end})
	require.NoError(t, err)

	var got TimeRange
	require.NoError(t, json.Unmarshal(data, &got))
	require.NotNil(t, got.Start)
	require.NotNil(t, got.End)
	assert.True(t, got.Start.Equal(start))
	assert.True(t, got.End.Equal(end))
	assert.True(t, got.Scheduled())
}

func TestTimeRange_UnmarshalNullAndPartial(t *testing.T) {
	var null TimeRange
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	assert.False(t, null.Scheduled())

	var open TimeRange
	require.NoError(t, json.Unmarshal([]byte(`["2025-03-01T10:00:00Z", null]`), &open))
	require.NotNil(t, open.Start)
	assert.Nil(t, open.End)
	assert.True(t, open.Scheduled())
}

func TestEvent_UnmarshalNestedSessions(t *testing.T) {
	payload := `{
		"id": "ev-1",
		"title": "All Hands",
		"status": "published",
		"time_range": ["2025-03-01T10:00:00Z", "2025-03-01T11:00:00Z"],
		"sessions": [
			{"id": "s-1", "event_id": "ev-1", "title": "Q&A", "status": "published",
			 "time_range": ["2025-03-01T10:30:00Z", "2025-03-01T10:45:00Z"]}
		]
	}`

	var ev Event
	require.NoError(t, json.Unmarshal([]byte(payload), &ev))
	assert.Equal(t, EventStatusPublished, ev.Status)
	require.Len(t, ev.Sessions, 1)
	assert.Equal(t, "ev-1", ev.Sessions[0].EventID)
	assert.True(t, ev.Sessions[0].TimeRange.Scheduled())
}
