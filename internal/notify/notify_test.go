package notify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/barangay_portal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_NotifyFillsDefaults(t *testing.T) {
	feed := NewFeed(10, logger.Discard())

	Failure(feed, "Failed to update emergency status", "status 500")

	items := feed.List()
	require.Len(t, items, 1)
	assert.NotEqual(t, uuid.Nil, items[0].ID)
	assert.Equal(t, VariantDestructive, items[0].Variant)
	assert.False(t, items[0].CreatedAt.IsZero())
}

func TestFeed_ListNewestFirstAndCapacity(t *testing.T) {
	feed := NewFeed(2, logger.Discard())

	Success(feed, "one", "")
	Success(feed, "two", "")
	Success(feed, "three", "")

	items := feed.List()
	require.Len(t, items, 2)
	assert.Equal(t, "three", items[0].Title)
	assert.Equal(t, "two", items[1].Title)
}

func TestFeed_Dismiss(t *testing.T) {
	feed := NewFeed(10, logger.Discard())
	Success(feed, "Report deleted", "")

	id := feed.List()[0].ID
	assert.True(t, feed.Dismiss(id))
	assert.Empty(t, feed.List())
	assert.False(t, feed.Dismiss(id))
}
