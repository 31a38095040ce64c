package domain

import "time"

// SyncStats holds statistics about one synchronization cycle.
type SyncStats struct {
	CycleID         string
	Accounts        int
	SkippedAccounts int
	Fetched         int
	New             int
	Delivered       int
	Failed          int
	Duration        time.Duration
}

// DispatchOutcome is the result of delivering one account's posts.
type DispatchOutcome struct {
	AccountID string
	Delivered int
	Failed    int
	Muted     int
	Results   []DeliveryResult
}

type DeliveryResult struct {
	DestinationID string
	PostID        string
	Err           error
}
