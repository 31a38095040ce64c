package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"weibo_push/internal/directory"
	"weibo_push/internal/domain"
)

// DirectoryStore implements directory.Store. Times are written in UTC.
type DirectoryStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewDirectoryStore(db *sqlx.DB) *DirectoryStore {
	return &DirectoryStore{db: db, tx: NewTransactionManager(db)}
}

var _ directory.Store = (*DirectoryStore)(nil)

func (s *DirectoryStore) LoadAll(ctx context.Context) (*directory.Snapshot, error) {
	ex := GetExecutor(ctx, s.db)
	snap := &directory.Snapshot{}

	err := sqlx.SelectContext(ctx, ex, &snap.Destinations, `
		SELECT destination_id, push_enabled
		FROM destinations
		ORDER BY destination_id`)
	if err != nil {
		return nil, fmt.Errorf("select destinations: %w", err)
	}

	err = sqlx.SelectContext(ctx, ex, &snap.Subscriptions, `
		SELECT destination_id, account_id, display_name, watermark_at, watermark_id, created_at
		FROM subscriptions
		ORDER BY destination_id, account_id`)
	if err != nil {
		return nil, fmt.Errorf("select subscriptions: %w", err)
	}

	err = sqlx.SelectContext(ctx, ex, &snap.Blacklist, `
		SELECT scope, account_id, created_at
		FROM blacklist
		ORDER BY scope, account_id`)
	if err != nil {
		return nil, fmt.Errorf("select blacklist: %w", err)
	}

	for i := range snap.Subscriptions {
		sub := &snap.Subscriptions[i]
		sub.WatermarkAt = sub.WatermarkAt.UTC()
		sub.CreatedAt = sub.CreatedAt.UTC()
	}
	for i := range snap.Blacklist {
		snap.Blacklist[i].CreatedAt = snap.Blacklist[i].CreatedAt.UTC()
	}
	return snap, nil
}

func (s *DirectoryStore) UpsertDestination(ctx context.Context, d domain.Destination) error {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`
		INSERT INTO destinations (destination_id, push_enabled)
		VALUES (?, ?)
		ON CONFLICT (destination_id) DO UPDATE SET
			push_enabled = EXCLUDED.push_enabled`)

	if _, err := ex.ExecContext(ctx, query, d.ID, d.PushEnabled); err != nil {
		return fmt.Errorf("upsert destination %s: %w", d.ID, err)
	}
	return nil
}

func (s *DirectoryStore) InsertSubscription(ctx context.Context, sub domain.Subscription) error {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`
		INSERT INTO subscriptions (
			destination_id, account_id, display_name, watermark_at, watermark_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (destination_id, account_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			watermark_at = EXCLUDED.watermark_at,
			watermark_id = EXCLUDED.watermark_id`)

	_, err := ex.ExecContext(ctx, query,
		sub.DestinationID,
		sub.AccountID,
		sub.DisplayName,
		sub.WatermarkAt.UTC(),
		sub.WatermarkID,
		sub.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert subscription %s/%s: %w", sub.DestinationID, sub.AccountID, err)
	}
	return nil
}

func (s *DirectoryStore) DeleteSubscription(ctx context.Context, destinationID, accountID string) error {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`DELETE FROM subscriptions WHERE destination_id = ? AND account_id = ?`)

	if _, err := ex.ExecContext(ctx, query, destinationID, accountID); err != nil {
		return fmt.Errorf("delete subscription %s/%s: %w", destinationID, accountID, err)
	}
	return nil
}

func (s *DirectoryStore) UpdateWatermark(ctx context.Context, destinationID, accountID string, w domain.Watermark) error {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`
		UPDATE subscriptions
		SET watermark_at = ?, watermark_id = ?
		WHERE destination_id = ? AND account_id = ?`)

	res, err := ex.ExecContext(ctx, query, w.PublishedAt.UTC(), w.PostID, destinationID, accountID)
	if err != nil {
		return fmt.Errorf("update watermark %s/%s: %w", destinationID, accountID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update watermark %s/%s: %w", destinationID, accountID, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *DirectoryStore) InsertBlacklist(ctx context.Context, e domain.BlacklistEntry) error {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`
		INSERT INTO blacklist (scope, account_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (scope, account_id) DO NOTHING`)

	if _, err := ex.ExecContext(ctx, query, e.Scope, e.AccountID, e.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("insert blacklist %s/%s: %w", e.Scope, e.AccountID, err)
	}
	return nil
}

func (s *DirectoryStore) DeleteBlacklist(ctx context.Context, scope, accountID string) error {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`DELETE FROM blacklist WHERE scope = ? AND account_id = ?`)

	if _, err := ex.ExecContext(ctx, query, scope, accountID); err != nil {
		return fmt.Errorf("delete blacklist %s/%s: %w", scope, accountID, err)
	}
	return nil
}

func (s *DirectoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.tx.WithTransaction(ctx, fn)
}
