package directory

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"weibo_push/internal/domain"
)

type DirectoryTestSuite struct {
	suite.Suite

	ctx   context.Context
	store *MemoryStore
	dir   *Directory
	now   time.Time
}

func (s *DirectoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewMemoryStore()
	s.now = time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.dir = New(s.store, logger)
	s.dir.now = func() time.Time { return s.now }
}

func TestDirectoryTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryTestSuite))
}

func (s *DirectoryTestSuite) TestFollow_SeedsWatermarkFromNow() {
	sub, err := s.dir.Follow(s.ctx, "chat-1", "1001", "Alice", domain.Watermark{})

	s.Require().NoError(err)
	s.Equal(s.now, sub.WatermarkAt)
	s.True(sub.PushEnabled)

	snap, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(snap.Subscriptions, 1)
	s.Len(snap.Destinations, 1)
	s.Equal("Alice", snap.Subscriptions[0].DisplayName)
}

func (s *DirectoryTestSuite) TestFollow_KeepsExplicitSeed() {
	seed := domain.Watermark{PublishedAt: s.now.Add(-time.Hour), PostID: "500"}

	sub, err := s.dir.Follow(s.ctx, "chat-1", "1001", "", seed)

	s.Require().NoError(err)
	s.Equal(seed, sub.Watermark())
}

func (s *DirectoryTestSuite) TestFollow_AlreadyFollowing() {
	_, err := s.dir.Follow(s.ctx, "chat-1", "1001", "", domain.Watermark{})
	s.Require().NoError(err)

	_, err = s.dir.Follow(s.ctx, "chat-1", "1001", "", domain.Watermark{})

	s.ErrorIs(err, domain.ErrAlreadyFollowing)
	s.Len(s.dir.Subscriptions("chat-1"), 1)
}

func (s *DirectoryTestSuite) TestFollow_Blacklisted() {
	_, err := s.dir.AddBlacklist(s.ctx, "chat-1", "1001")
	s.Require().NoError(err)

	_, err = s.dir.Follow(s.ctx, "chat-1", "1001", "", domain.Watermark{})
	s.ErrorIs(err, domain.ErrBlacklisted)

	_, err = s.dir.Follow(s.ctx, "chat-2", "1001", "", domain.Watermark{})
	s.NoError(err)
}

func (s *DirectoryTestSuite) TestFollowAll_PartialSuccess() {
	_, err := s.dir.AddBlacklist(s.ctx, "chat-2", "1001")
	s.Require().NoError(err)

	results := s.dir.FollowAll(s.ctx, []string{"chat-1", "chat-2", "chat-3"}, "1001", "", domain.Watermark{})

	s.Require().Len(results, 3)
	s.NoError(results[0].Err)
	s.ErrorIs(results[1].Err, domain.ErrBlacklisted)
	s.NoError(results[2].Err)

	subs := s.dir.Subscribers("1001")
	s.Require().Len(subs, 2)
	s.Equal("chat-1", subs[0].DestinationID)
	s.Equal("chat-3", subs[1].DestinationID)
}

func (s *DirectoryTestSuite) TestAddBlacklist_GlobalRemovesEverywhere() {
	for _, dest := range []string{"chat-1", "chat-2"} {
		_, err := s.dir.Follow(s.ctx, dest, "1001", "", domain.Watermark{})
		s.Require().NoError(err)
	}
	_, err := s.dir.Follow(s.ctx, "chat-1", "2002", "", domain.Watermark{})
	s.Require().NoError(err)

	removed, err := s.dir.AddBlacklist(s.ctx, domain.GlobalScope, "1001")

	s.Require().NoError(err)
	s.Equal([]string{"chat-1", "chat-2"}, removed)
	s.Empty(s.dir.Subscribers("1001"))
	s.Equal([]string{"2002"}, s.dir.Accounts())
	s.True(s.dir.IsBlacklisted("chat-9", "1001"))

	snap, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(snap.Subscriptions, 1)
	s.Len(snap.Blacklist, 1)
}

func (s *DirectoryTestSuite) TestAddBlacklist_ScopedLeavesOtherDestinations() {
	for _, dest := range []string{"chat-1", "chat-2"} {
		_, err := s.dir.Follow(s.ctx, dest, "1001", "", domain.Watermark{})
		s.Require().NoError(err)
	}

	removed, err := s.dir.AddBlacklist(s.ctx, "chat-1", "1001")

	s.Require().NoError(err)
	s.Equal([]string{"chat-1"}, removed)
	subs := s.dir.Subscribers("1001")
	s.Require().Len(subs, 1)
	s.Equal("chat-2", subs[0].DestinationID)
}

func (s *DirectoryTestSuite) TestRemoveBlacklist() {
	_, err := s.dir.AddBlacklist(s.ctx, domain.GlobalScope, "1001")
	s.Require().NoError(err)

	s.ErrorIs(s.dir.RemoveBlacklist(s.ctx, "chat-1", "1001"), domain.ErrNotFound)
	s.Require().NoError(s.dir.RemoveBlacklist(s.ctx, domain.GlobalScope, "1001"))
	s.False(s.dir.IsBlacklisted("chat-1", "1001"))
}

func (s *DirectoryTestSuite) TestBlacklist_IncludesGlobalEntriesLast() {
	_, err := s.dir.AddBlacklist(s.ctx, domain.GlobalScope, "3003")
	s.Require().NoError(err)
	_, err = s.dir.AddBlacklist(s.ctx, "chat-1", "1001")
	s.Require().NoError(err)
	_, err = s.dir.AddBlacklist(s.ctx, "chat-2", "2002")
	s.Require().NoError(err)

	entries := s.dir.Blacklist("chat-1")

	s.Require().Len(entries, 2)
	s.Equal("1001", entries[0].AccountID)
	s.True(entries[1].Global())
}

func (s *DirectoryTestSuite) TestUnfollow() {
	_, err := s.dir.Follow(s.ctx, "chat-1", "1001", "", domain.Watermark{})
	s.Require().NoError(err)

	_, err = s.dir.Unfollow(s.ctx, "chat-1", "1001")
	s.Require().NoError(err)

	_, err = s.dir.Unfollow(s.ctx, "chat-1", "1001")
	s.ErrorIs(err, domain.ErrNotFollowing)
	s.Empty(s.dir.Accounts())
}

func (s *DirectoryTestSuite) TestUnfollowAll() {
	for _, dest := range []string{"chat-2", "chat-1"} {
		_, err := s.dir.Follow(s.ctx, dest, "1001", "", domain.Watermark{})
		s.Require().NoError(err)
	}

	affected, err := s.dir.UnfollowAll(s.ctx, "1001")

	s.Require().NoError(err)
	s.Equal([]string{"chat-1", "chat-2"}, affected)
	s.Empty(s.dir.Subscribers("1001"))
}

func (s *DirectoryTestSuite) TestAdvanceWatermark_Monotonic() {
	_, err := s.dir.Follow(s.ctx, "chat-1", "1001", "", domain.Watermark{PublishedAt: s.now, PostID: "10"})
	s.Require().NoError(err)

	advanced, err := s.dir.AdvanceWatermark(s.ctx, "chat-1", "1001", domain.Watermark{PublishedAt: s.now.Add(-time.Minute), PostID: "99"})
	s.Require().NoError(err)
	s.False(advanced)

	advanced, err = s.dir.AdvanceWatermark(s.ctx, "chat-1", "1001", domain.Watermark{PublishedAt: s.now, PostID: "9"})
	s.Require().NoError(err)
	s.False(advanced)

	advanced, err = s.dir.AdvanceWatermark(s.ctx, "chat-1", "1001", domain.Watermark{PublishedAt: s.now, PostID: "11"})
	s.Require().NoError(err)
	s.True(advanced)

	sub, ok := s.dir.Subscription("chat-1", "1001")
	s.Require().True(ok)
	s.Equal("11", sub.WatermarkID)
}

func (s *DirectoryTestSuite) TestAdvanceWatermark_NotFollowing() {
	_, err := s.dir.AdvanceWatermark(s.ctx, "chat-1", "1001", domain.Watermark{PublishedAt: s.now})
	s.ErrorIs(err, domain.ErrNotFollowing)
}

func (s *DirectoryTestSuite) TestSetPushEnabled_VisibleOnSubscribers() {
	_, err := s.dir.Follow(s.ctx, "chat-1", "1001", "", domain.Watermark{})
	s.Require().NoError(err)

	s.Require().NoError(s.dir.SetPushEnabled(s.ctx, "chat-1", false))

	subs := s.dir.Subscribers("1001")
	s.Require().Len(subs, 1)
	s.False(subs[0].PushEnabled)
	s.False(s.dir.PushEnabled("chat-1"))
	s.True(s.dir.PushEnabled("chat-unknown"))
}

func (s *DirectoryTestSuite) TestLoad_UpgradesLegacyWatermarks() {
	s.Require().NoError(s.store.UpsertDestination(s.ctx, domain.Destination{ID: "chat-1", PushEnabled: false}))
	s.Require().NoError(s.store.InsertSubscription(s.ctx, domain.Subscription{
		DestinationID: "chat-1",
		AccountID:     "1001",
		WatermarkID:   "4900000000000000",
	}))
	s.Require().NoError(s.store.InsertSubscription(s.ctx, domain.Subscription{
		DestinationID: "chat-2",
		AccountID:     "1001",
		WatermarkAt:   s.now.Add(-time.Hour),
	}))

	s.Require().NoError(s.dir.Load(s.ctx))

	legacy, ok := s.dir.Subscription("chat-1", "1001")
	s.Require().True(ok)
	s.Equal(s.now, legacy.WatermarkAt)
	s.Equal("4900000000000000", legacy.WatermarkID)
	s.False(legacy.PushEnabled)

	current, ok := s.dir.Subscription("chat-2", "1001")
	s.Require().True(ok)
	s.Equal(s.now.Add(-time.Hour), current.WatermarkAt)
	s.True(current.PushEnabled)

	snap, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	for _, sub := range snap.Subscriptions {
		s.False(sub.WatermarkAt.IsZero())
	}
}
