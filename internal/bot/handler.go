package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"weibo_push/internal/domain"
	"weibo_push/internal/service"
)

const helpText = `Commands:
/follow <uid> [name] - follow an account in this chat
/unfollow <uid> - stop following an account
/list - accounts followed here
/blacklist - accounts blocked here
/help - this message

Admin:
/followall <uid> [name] - follow in every chat
/unfollowall <uid> - unfollow everywhere
/push on|off - toggle notifications for this chat
/block <uid>, /unblock <uid> - blacklist in this chat
/blockglobal <uid>, /unblockglobal <uid> - blacklist everywhere
/sync - run a sync now
/cookie <cookie> - replace the upstream cookie`

// Request is one parsed chat command.
type Request struct {
	ChatID  string
	UserID  int64
	Command string
	Args    []string
}

// Handler routes chat commands to the command service.
type Handler struct {
	commands Commands
	admins   map[int64]struct{}
	logger   *slog.Logger
}

func NewHandler(commands Commands, admins []int64, logger *slog.Logger) *Handler {
	set := make(map[int64]struct{}, len(admins))
	for _, id := range admins {
		set[id] = struct{}{}
	}
	return &Handler{
		commands: commands,
		admins:   set,
		logger:   logger.With("component", "bot_handler"),
	}
}

// Register installs the handler on b.
func (h *Handler) Register(b *tgbot.Bot) {
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/", tgbot.MatchTypePrefix, h.onMessage)
}

func (h *Handler) onMessage(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	req, ok := ParseRequest(update.Message)
	if !ok {
		return
	}

	reply := h.Handle(ctx, req)
	if reply == "" {
		return
	}
	_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   reply,
	})
	if err != nil {
		h.logger.Error("failed to send reply", "chat_id", req.ChatID, "command", req.Command, "error", err)
	}
}

// ParseRequest extracts the command from a message such as
// "/follow@some_bot 1669879400 Alice".
func ParseRequest(msg *models.Message) (Request, bool) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return Request{}, false
	}
	cmd, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")

	req := Request{
		ChatID:  strconv.FormatInt(msg.Chat.ID, 10),
		Command: cmd,
		Args:    fields[1:],
	}
	if msg.From != nil {
		req.UserID = msg.From.ID
	}
	return req, true
}

// Handle executes req and returns the reply text. Unknown commands get no reply.
func (h *Handler) Handle(ctx context.Context, req Request) string {
	logger := h.logger.With("chat_id", req.ChatID, "user_id", req.UserID, "command", req.Command)

	if privileged(req.Command) && !h.isAdmin(req.UserID) {
		logger.Warn("privileged command denied")
		return "⛔ This command is restricted to admins."
	}

	reply, err := h.route(ctx, req)
	if err != nil {
		if service.IsUserError(err) {
			return "❌ " + userMessage(err)
		}
		logger.Error("command failed", "error", err)
		return "❌ Command failed: " + err.Error()
	}
	return reply
}

func (h *Handler) route(ctx context.Context, req Request) (string, error) {
	switch req.Command {
	case "/start", "/help":
		return helpText, nil
	case "/follow":
		return h.follow(ctx, req)
	case "/unfollow":
		uid, err := accountArg(req)
		if err != nil {
			return "", err
		}
		if err := h.commands.Unfollow(ctx, req.ChatID, uid); err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ Unfollowed %s.", uid), nil
	case "/followall":
		return h.followAll(ctx, req)
	case "/unfollowall":
		uid, err := accountArg(req)
		if err != nil {
			return "", err
		}
		affected, err := h.commands.UnfollowAll(ctx, uid)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ Removed %s from %d chat(s).", uid, len(affected)), nil
	case "/push":
		return h.push(ctx, req)
	case "/block", "/blockglobal":
		uid, err := accountArg(req)
		if err != nil {
			return "", err
		}
		removed, err := h.commands.AddBlacklist(ctx, scope(req), uid)
		if err != nil {
			return "", err
		}
		reply := fmt.Sprintf("🚫 Blocked %s%s.", uid, scopeLabel(req))
		if len(removed) > 0 {
			reply += fmt.Sprintf(" Removed from %d chat(s).", len(removed))
		}
		return reply, nil
	case "/unblock", "/unblockglobal":
		uid, err := accountArg(req)
		if err != nil {
			return "", err
		}
		if err := h.commands.RemoveBlacklist(ctx, scope(req), uid); err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ Unblocked %s%s.", uid, scopeLabel(req)), nil
	case "/list":
		return h.list(req), nil
	case "/blacklist":
		return h.blacklist(req), nil
	case "/sync":
		if h.commands.TriggerSync() {
			return "🔄 Sync queued.", nil
		}
		return "🔄 A sync is already queued.", nil
	case "/cookie":
		if len(req.Args) == 0 {
			return "", fmt.Errorf("%w: usage /cookie <cookie>", domain.ErrInvalidArgument)
		}
		if err := h.commands.UpdateCredentials(ctx, strings.Join(req.Args, " ")); err != nil {
			if errors.Is(err, domain.ErrCredentialInvalid) {
				return "❌ The cookie was rejected upstream, nothing changed.", nil
			}
			return "", err
		}
		return "✅ Credentials updated.", nil
	default:
		return "", nil
	}
}

func (h *Handler) follow(ctx context.Context, req Request) (string, error) {
	uid, err := accountArg(req)
	if err != nil {
		return "", err
	}
	followed, err := h.commands.Follow(ctx, req.ChatID, uid, strings.Join(req.Args[1:], " "))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Following %s (%s).", followed.Name, uid), nil
}

func (h *Handler) followAll(ctx context.Context, req Request) (string, error) {
	uid, err := accountArg(req)
	if err != nil {
		return "", err
	}
	results, err := h.commands.FollowAll(ctx, uid, strings.Join(req.Args[1:], " "))
	if err != nil {
		return "", err
	}

	ok := 0
	var failures []string
	for _, r := range results {
		if r.Err == nil {
			ok++
			continue
		}
		failures = append(failures, fmt.Sprintf("- %s: %s", r.DestinationID, userMessage(r.Err)))
	}

	reply := fmt.Sprintf("✅ Followed %s in %d of %d chat(s).", uid, ok, len(results))
	if len(failures) > 0 {
		reply += "\n" + strings.Join(failures, "\n")
	}
	return reply, nil
}

func (h *Handler) push(ctx context.Context, req Request) (string, error) {
	if len(req.Args) == 0 {
		if h.commands.PushEnabled(req.ChatID) {
			return "🔔 Notifications are on for this chat. Use /push off to mute.", nil
		}
		return "🔕 Notifications are off for this chat. Use /push on to resume.", nil
	}
	if len(req.Args) != 1 {
		return "", fmt.Errorf("%w: usage /push on|off", domain.ErrInvalidArgument)
	}

	var enabled bool
	switch strings.ToLower(req.Args[0]) {
	case "on":
		enabled = true
	case "off":
	default:
		return "", fmt.Errorf("%w: usage /push on|off", domain.ErrInvalidArgument)
	}

	if err := h.commands.SetPushEnabled(ctx, req.ChatID, enabled); err != nil {
		return "", err
	}
	if enabled {
		return "🔔 Notifications enabled for this chat.", nil
	}
	return "🔕 Notifications disabled for this chat.", nil
}

func (h *Handler) list(req Request) string {
	accounts := h.commands.ListSubscriptions(req.ChatID)
	if len(accounts) == 0 {
		return "This chat does not follow anyone yet."
	}

	var sb strings.Builder
	sb.WriteString("Following:")
	for _, a := range accounts {
		fmt.Fprintf(&sb, "\n- %s (%s)", a.DisplayName, a.ID)
	}
	return sb.String()
}

func (h *Handler) blacklist(req Request) string {
	entries := h.commands.ListBlacklist(req.ChatID)
	if len(entries) == 0 {
		return "The blacklist is empty."
	}

	var sb strings.Builder
	sb.WriteString("Blacklist:")
	for _, e := range entries {
		if e.Global() {
			fmt.Fprintf(&sb, "\n- %s (global)", e.AccountID)
		} else {
			fmt.Fprintf(&sb, "\n- %s", e.AccountID)
		}
	}
	return sb.String()
}

func (h *Handler) isAdmin(userID int64) bool {
	_, ok := h.admins[userID]
	return ok
}

func privileged(cmd string) bool {
	switch cmd {
	case "/followall", "/unfollowall", "/push", "/block", "/unblock",
		"/blockglobal", "/unblockglobal", "/sync", "/cookie":
		return true
	}
	return false
}

func scope(req Request) string {
	if strings.HasSuffix(req.Command, "global") {
		return domain.GlobalScope
	}
	return req.ChatID
}

func scopeLabel(req Request) string {
	if strings.HasSuffix(req.Command, "global") {
		return " everywhere"
	}
	return " in this chat"
}

func accountArg(req Request) (string, error) {
	if len(req.Args) == 0 {
		return "", fmt.Errorf("%w: usage %s <uid>", domain.ErrInvalidArgument, req.Command)
	}
	return req.Args[0], nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrBlacklisted):
		return "this account is blacklisted here."
	case errors.Is(err, domain.ErrAlreadyFollowing):
		return "already following this account."
	case errors.Is(err, domain.ErrNotFollowing):
		return "this chat does not follow that account."
	case errors.Is(err, domain.ErrNotFound):
		return "no such entry."
	default:
		return err.Error()
	}
}
