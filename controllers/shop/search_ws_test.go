package shopControllers

import (
	"testing"

	"github.com/shophub-io/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueLatest_NewestSurvivesFullBuffer(t *testing.T) {
	results := make(chan []models.Product, 1)

	queueLatest(results, []models.Product{{ID: 1, Name: "stale"}})
	queueLatest(results, []models.Product{{ID: 2, Name: "newer"}})
	queueLatest(results, []models.Product{{ID: 3, Name: "newest"}})

	got := <-results
	require.Len(t, got, 1)
	assert.Equal(t, "newest", got[0].Name)

	select {
	case extra := <-results:
		t.Fatalf("unexpected queued delivery: %v", extra)
	default:
	}
}

func TestQueueLatest_KeepsEverythingWhileBufferHasRoom(t *testing.T) {
	results := make(chan []models.Product, 2)

	queueLatest(results, []models.Product{{ID: 1}})
	queueLatest(results, nil) // a cleared list is a delivery too

	first := <-results
	require.Len(t, first, 1)
	assert.Equal(t, int64(1), first[0].ID)
	assert.Nil(t, <-results)
}
