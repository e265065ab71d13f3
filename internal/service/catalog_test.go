package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpevents/eventdesk/internal/domain/model"
	"github.com/corpevents/eventdesk/internal/testutil"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func TestComposeCatalog_OrdersByStartAcrossKinds(t *testing.T) {
	events := []model.Event{
		testutil.NewEvent("ev-a").
			WithTitle("Conference A").
			WithStart(at(10, 0)).
			WithSession("sub-c", "Workshop C", at(10, 30)).
			Build(),
		testutil.NewEvent("ev-b").
			WithTitle("Breakfast B").
			WithStart(at(9, 0)).
			Build(),
	}

	items := ComposeCatalog(events, nil)
	require.Len(t, items, 3)

	assert.Equal(t, "ev-b", items[0].ID)
	assert.Equal(t, "ev-a", items[1].ID)
	assert.Equal(t, "sub-c", items[2].ID)

	assert.Equal(t, CatalogItemSession, items[2].Kind)
	assert.Equal(t, "ev-a", items[2].ParentID)
	assert.Equal(t, "Conference A", items[2].ParentTitle)
}

func TestComposeCatalog_RegisteredFlagFromLocalSet(t *testing.T) {
	events := []model.Event{
		testutil.NewEvent("ev-1").WithStart(at(9, 0)).Build(),
		testutil.NewEvent("ev-2").WithStart(at(10, 0)).Build(),
	}

	items := ComposeCatalog(events, func(id string) bool { return id == "ev-2" })
	require.Len(t, items, 2)
	assert.False(t, items[0].Registered)
	assert.True(t, items[1].Registered)
}

func TestComposeCatalog_UnscheduledDeferredInInputOrder(t *testing.T) {
	events := []model.Event{
		testutil.NewEvent("ev-draft-1").WithTitle("Unscheduled One").Unscheduled().Build(),
		testutil.NewEvent("ev-1").WithStart(at(12, 0)).Build(),
		testutil.NewEvent("ev-draft-2").WithTitle("Unscheduled Two").Unscheduled().Build(),
	}

	items := ComposeCatalog(events, nil)
	require.Len(t, items, 3)
	assert.Equal(t, "ev-1", items[0].ID)
	assert.Equal(t, "ev-draft-1", items[1].ID)
	assert.Equal(t, "ev-draft-2", items[2].ID)
	assert.True(t, items[1].Unscheduled)
}

func TestComposeCatalog_Pure(t *testing.T) {
	events := []model.Event{
		testutil.NewEvent("ev-1").WithStart(at(9, 0)).Build(),
		testutil.NewEvent("ev-2").Unscheduled().Build(),
	}

	first := ComposeCatalog(events, nil)
	second := ComposeCatalog(events, nil)
	assert.Equal(t, first, second)
}

func TestCalendarItems_DropsUnscheduled(t *testing.T) {
	events := []model.Event{
		testutil.NewEvent("ev-1").WithStart(at(9, 0)).Build(),
		testutil.NewEvent("ev-2").Unscheduled().Build(),
	}

	calendar := CalendarItems(ComposeCatalog(events, nil))
	require.Len(t, calendar, 1)
	assert.Equal(t, "ev-1", calendar[0].ID)
}
