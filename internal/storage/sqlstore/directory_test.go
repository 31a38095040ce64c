package sqlstore

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"weibo_push/internal/directory"
	"weibo_push/internal/domain"
)

type DirectoryStoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	db     *sqlx.DB
	store  *DirectoryStore
	logger *slog.Logger
}

func (s *DirectoryStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	db, err := Open(DriverSQLite, filepath.Join(s.T().TempDir(), "directory.db"), s.logger)
	s.Require().NoError(err)
	s.db = db
	s.store = NewDirectoryStore(db)
}

func (s *DirectoryStoreTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func TestDirectoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryStoreTestSuite))
}

func (s *DirectoryStoreTestSuite) TestRoundTrip() {
	at := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.UpsertDestination(s.ctx, domain.Destination{ID: "chat-1", PushEnabled: true}))
	s.Require().NoError(s.store.UpsertDestination(s.ctx, domain.Destination{ID: "chat-1", PushEnabled: false}))
	s.Require().NoError(s.store.InsertSubscription(s.ctx, domain.Subscription{
		DestinationID: "chat-1",
		AccountID:     "1001",
		DisplayName:   "Alice",
		WatermarkAt:   at,
		WatermarkID:   "42",
		CreatedAt:     at,
	}))
	s.Require().NoError(s.store.InsertBlacklist(s.ctx, domain.BlacklistEntry{Scope: domain.GlobalScope, AccountID: "2002", CreatedAt: at}))
	s.Require().NoError(s.store.InsertBlacklist(s.ctx, domain.BlacklistEntry{Scope: domain.GlobalScope, AccountID: "2002", CreatedAt: at}))

	snap, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)

	s.Equal([]domain.Destination{{ID: "chat-1", PushEnabled: false}}, snap.Destinations)
	s.Require().Len(snap.Subscriptions, 1)
	sub := snap.Subscriptions[0]
	s.Equal("Alice", sub.DisplayName)
	s.True(at.Equal(sub.WatermarkAt))
	s.Equal("42", sub.WatermarkID)
	s.Require().Len(snap.Blacklist, 1)
	s.True(snap.Blacklist[0].Global())
}

func (s *DirectoryStoreTestSuite) TestUpdateWatermark() {
	at := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.InsertSubscription(s.ctx, domain.Subscription{
		DestinationID: "chat-1",
		AccountID:     "1001",
		WatermarkAt:   at,
		CreatedAt:     at,
	}))

	next := domain.Watermark{PublishedAt: at.Add(time.Minute), PostID: "43"}
	s.Require().NoError(s.store.UpdateWatermark(s.ctx, "chat-1", "1001", next))
	s.ErrorIs(s.store.UpdateWatermark(s.ctx, "chat-2", "1001", next), domain.ErrNotFound)

	snap, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(next.PostID, snap.Subscriptions[0].WatermarkID)
	s.True(next.PublishedAt.Equal(snap.Subscriptions[0].WatermarkAt))
}

func (s *DirectoryStoreTestSuite) TestTransactionRollback() {
	errBoom := errors.New("boom")

	err := s.store.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := s.store.UpsertDestination(txCtx, domain.Destination{ID: "chat-1", PushEnabled: true}); err != nil {
			return err
		}
		return s.store.WithTransaction(txCtx, func(context.Context) error { return errBoom })
	})
	s.ErrorIs(err, errBoom)

	snap, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(snap.Destinations)
}

func (s *DirectoryStoreTestSuite) TestDirectorySurvivesRestart() {
	dir := directory.New(s.store, s.logger)
	s.Require().NoError(dir.Load(s.ctx))

	seed := domain.Watermark{PublishedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), PostID: "7"}
	_, err := dir.Follow(s.ctx, "chat-1", "1001", "Alice", seed)
	s.Require().NoError(err)
	_, err = dir.Follow(s.ctx, "chat-2", "1001", "", seed)
	s.Require().NoError(err)
	s.Require().NoError(dir.SetPushEnabled(s.ctx, "chat-2", false))
	_, err = dir.AddBlacklist(s.ctx, "chat-1", "1001")
	s.Require().NoError(err)

	restarted := directory.New(s.store, s.logger)
	s.Require().NoError(restarted.Load(s.ctx))

	s.True(restarted.IsBlacklisted("chat-1", "1001"))
	subs := restarted.Subscribers("1001")
	s.Require().Len(subs, 1)
	s.Equal("chat-2", subs[0].DestinationID)
	s.False(subs[0].PushEnabled)
	s.Equal(seed.PostID, subs[0].WatermarkID)
	s.True(seed.PublishedAt.Equal(subs[0].WatermarkAt))
}
