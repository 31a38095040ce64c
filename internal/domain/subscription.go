package domain

import "time"

// GlobalScope is the blacklist scope that applies to every destination.
const GlobalScope = "*"

// Subscription relates one destination to one followed account.
type Subscription struct {
	DestinationID string    `db:"destination_id"`
	AccountID     string    `db:"account_id"`
	DisplayName   string    `db:"display_name"`
	WatermarkAt   time.Time `db:"watermark_at"`
	WatermarkID   string    `db:"watermark_id"`
	CreatedAt     time.Time `db:"created_at"`
	PushEnabled   bool      `db:"-"`
}

func (s Subscription) Watermark() Watermark {
	return Watermark{PublishedAt: s.WatermarkAt, PostID: s.WatermarkID}
}

func (s *Subscription) SetWatermark(w Watermark) {
	s.WatermarkAt = w.PublishedAt
	s.WatermarkID = w.PostID
}

type Destination struct {
	ID          string `db:"destination_id"`
	PushEnabled bool   `db:"push_enabled"`
}

type BlacklistEntry struct {
	Scope     string    `db:"scope"`
	AccountID string    `db:"account_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (b BlacklistEntry) Global() bool {
	return b.Scope == GlobalScope
}

// BulkResult is the per-destination outcome of a bulk directory operation.
type BulkResult struct {
	DestinationID string
	Err           error
}
