package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"weibo_push/internal/bot/mocks"
	"weibo_push/internal/domain"
	"weibo_push/internal/service"
)

const adminID = 42

type HandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	commands *mocks.MockCommands
	handler  *Handler
	ctx      context.Context
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.commands = mocks.NewMockCommands(s.ctrl)
	s.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.handler = NewHandler(s.commands, []int64{adminID}, logger)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) request(userID int64, cmd string, args ...string) Request {
	return Request{ChatID: "-100", UserID: userID, Command: cmd, Args: args}
}

func (s *HandlerTestSuite) TestFollow() {
	s.commands.EXPECT().Follow(s.ctx, "-100", "1001", "Alice Smith").
		Return(service.Followed{Name: "Alice Smith"}, nil)

	reply := s.handler.Handle(s.ctx, s.request(7, "/follow", "1001", "Alice", "Smith"))

	s.Equal("✅ Following Alice Smith (1001).", reply)
}

func (s *HandlerTestSuite) TestFollow_UserErrors() {
	s.commands.EXPECT().Follow(s.ctx, "-100", "1001", "").
		Return(service.Followed{}, fmt.Errorf("follow 1001: %w", domain.ErrBlacklisted))

	s.Equal("❌ this account is blacklisted here.", s.handler.Handle(s.ctx, s.request(7, "/follow", "1001")))
	s.Contains(s.handler.Handle(s.ctx, s.request(7, "/follow")), "usage /follow <uid>")
}

func (s *HandlerTestSuite) TestFollow_SystemError() {
	s.commands.EXPECT().Follow(s.ctx, "-100", "1001", "").Return(service.Followed{}, errors.New("disk full"))

	s.Equal("❌ Command failed: disk full", s.handler.Handle(s.ctx, s.request(7, "/follow", "1001")))
}

func (s *HandlerTestSuite) TestPrivilegedCommandsRequireAdmin() {
	for _, cmd := range []string{"/followall", "/unfollowall", "/push", "/block", "/unblock", "/blockglobal", "/unblockglobal", "/sync", "/cookie"} {
		s.Equal("⛔ This command is restricted to admins.", s.handler.Handle(s.ctx, s.request(7, cmd, "1001")), cmd)
	}
}

func (s *HandlerTestSuite) TestFollowAll_ReportsPerChat() {
	s.commands.EXPECT().FollowAll(s.ctx, "1001", "").Return([]domain.BulkResult{
		{DestinationID: "-100"},
		{DestinationID: "-200", Err: domain.ErrBlacklisted},
		{DestinationID: "-300"},
	}, nil)

	reply := s.handler.Handle(s.ctx, s.request(adminID, "/followall", "1001"))

	s.Equal("✅ Followed 1001 in 2 of 3 chat(s).\n- -200: this account is blacklisted here.", reply)
}

func (s *HandlerTestSuite) TestPush() {
	s.commands.EXPECT().SetPushEnabled(s.ctx, "-100", false).Return(nil)

	s.Equal("🔕 Notifications disabled for this chat.", s.handler.Handle(s.ctx, s.request(adminID, "/push", "off")))
	s.Contains(s.handler.Handle(s.ctx, s.request(adminID, "/push", "maybe")), "usage /push on|off")
}

func (s *HandlerTestSuite) TestPush_ReportsCurrentState() {
	gomock.InOrder(
		s.commands.EXPECT().PushEnabled("-100").Return(true),
		s.commands.EXPECT().PushEnabled("-100").Return(false),
	)

	s.Contains(s.handler.Handle(s.ctx, s.request(adminID, "/push")), "Notifications are on")
	s.Contains(s.handler.Handle(s.ctx, s.request(adminID, "/push")), "Notifications are off")
}

func (s *HandlerTestSuite) TestBlockScopes() {
	s.commands.EXPECT().AddBlacklist(s.ctx, "-100", "1001").Return([]string{"-100"}, nil)
	s.commands.EXPECT().AddBlacklist(s.ctx, domain.GlobalScope, "2002").Return(nil, nil)
	s.commands.EXPECT().RemoveBlacklist(s.ctx, domain.GlobalScope, "2002").Return(nil)

	s.Equal("🚫 Blocked 1001 in this chat. Removed from 1 chat(s).", s.handler.Handle(s.ctx, s.request(adminID, "/block", "1001")))
	s.Equal("🚫 Blocked 2002 everywhere.", s.handler.Handle(s.ctx, s.request(adminID, "/blockglobal", "2002")))
	s.Equal("✅ Unblocked 2002 everywhere.", s.handler.Handle(s.ctx, s.request(adminID, "/unblockglobal", "2002")))
}

func (s *HandlerTestSuite) TestList() {
	s.commands.EXPECT().ListSubscriptions("-100").Return([]domain.Account{
		{ID: "1001", DisplayName: "Alice"},
		{ID: "2002", DisplayName: "user 2002"},
	})

	s.Equal("Following:\n- Alice (1001)\n- user 2002 (2002)", s.handler.Handle(s.ctx, s.request(7, "/list")))
}

func (s *HandlerTestSuite) TestBlacklist() {
	s.commands.EXPECT().ListBlacklist("-100").Return([]domain.BlacklistEntry{
		{Scope: "-100", AccountID: "1001"},
		{Scope: domain.GlobalScope, AccountID: "3003"},
	})

	s.Equal("Blacklist:\n- 1001\n- 3003 (global)", s.handler.Handle(s.ctx, s.request(7, "/blacklist")))
}

func (s *HandlerTestSuite) TestSync() {
	gomock.InOrder(
		s.commands.EXPECT().TriggerSync().Return(true),
		s.commands.EXPECT().TriggerSync().Return(false),
	)

	s.Equal("🔄 Sync queued.", s.handler.Handle(s.ctx, s.request(adminID, "/sync")))
	s.Equal("🔄 A sync is already queued.", s.handler.Handle(s.ctx, s.request(adminID, "/sync")))
}

func (s *HandlerTestSuite) TestCookie() {
	s.commands.EXPECT().UpdateCredentials(s.ctx, "SUB=a; SUBP=b").Return(nil)
	s.commands.EXPECT().UpdateCredentials(s.ctx, "SUB=bad").
		Return(fmt.Errorf("validate credentials: %w", domain.ErrCredentialInvalid))

	s.Equal("✅ Credentials updated.", s.handler.Handle(s.ctx, s.request(adminID, "/cookie", "SUB=a;", "SUBP=b")))
	s.Equal("❌ The cookie was rejected upstream, nothing changed.", s.handler.Handle(s.ctx, s.request(adminID, "/cookie", "SUB=bad")))
}

func (s *HandlerTestSuite) TestUnknownCommandIsIgnored() {
	s.Empty(s.handler.Handle(s.ctx, s.request(7, "/weather")))
}

func (s *HandlerTestSuite) TestParseRequest() {
	req, ok := ParseRequest(&models.Message{
		Text: "/Follow@weibo_push_bot  1001 Alice",
		Chat: models.Chat{ID: -100},
		From: &models.User{ID: 7},
	})

	s.Require().True(ok)
	s.Equal(Request{ChatID: "-100", UserID: 7, Command: "/follow", Args: []string{"1001", "Alice"}}, req)

	_, ok = ParseRequest(&models.Message{Text: "hello", Chat: models.Chat{ID: 1}})
	s.False(ok)
}
