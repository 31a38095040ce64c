package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weibo_push/internal/domain"
)

func TestNewNotification(t *testing.T) {
	msg := domain.Message{
		DestinationID: "chat-1",
		AccountID:     "1001",
		PostID:        "42",
		Segments: []domain.Segment{
			{Kind: domain.SegmentText, Value: "hello\n"},
			{Kind: domain.SegmentImage, Value: "https://wx1.sinaimg.cn/large/a.jpg"},
			{Kind: domain.SegmentText, Value: "Link: x"},
		},
	}
	now := time.Date(2024, 3, 2, 18, 0, 0, 0, time.FixedZone("CST", 8*3600))

	n := newNotification(msg, now)

	_, err := uuid.Parse(n.MessageID)
	require.NoError(t, err)
	assert.Equal(t, "hello\nLink: x", n.Text)
	assert.Equal(t, []string{"https://wx1.sinaimg.cn/large/a.jpg"}, n.Images)
	assert.Equal(t, time.UTC, n.Timestamp.Location())
	assert.NotEqual(t, n.MessageID, newNotification(msg, now).MessageID)

	body, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"destination_id":"chat-1"`)
	assert.Contains(t, string(body), `"kind":"image"`)
}
