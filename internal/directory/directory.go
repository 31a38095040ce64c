// Package directory owns destinations, subscriptions and blacklist entries.
// All mutations are serialized and written through to a Store.
package directory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"weibo_push/internal/domain"
)

type Directory struct {
	mu     sync.RWMutex
	store  Store
	logger *slog.Logger
	now    func() time.Time

	destinations map[string]bool                             // destination -> push enabled
	subs         map[string]map[string]*domain.Subscription  // destination -> account -> subscription
	blacklist    map[string]map[string]domain.BlacklistEntry // scope -> account -> entry
}

func New(store Store, logger *slog.Logger) *Directory {
	return &Directory{
		store:        store,
		logger:       logger.With("component", "directory"),
		now:          time.Now,
		destinations: make(map[string]bool),
		subs:         make(map[string]map[string]*domain.Subscription),
		blacklist:    make(map[string]map[string]domain.BlacklistEntry),
	}
}

// Load replaces the in-memory state with the persisted one. Subscriptions
// without a timestamp watermark (legacy id-based data) are seeded from now.
func (d *Directory) Load(ctx context.Context) error {
	snap, err := d.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load directory: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.destinations = make(map[string]bool)
	d.subs = make(map[string]map[string]*domain.Subscription)
	d.blacklist = make(map[string]map[string]domain.BlacklistEntry)

	for _, dest := range snap.Destinations {
		d.destinations[dest.ID] = dest.PushEnabled
	}
	for _, e := range snap.Blacklist {
		d.putBlacklist(e)
	}

	upgraded := 0
	for i := range snap.Subscriptions {
		s := snap.Subscriptions[i]
		if s.WatermarkAt.IsZero() {
			s.SetWatermark(domain.Watermark{PublishedAt: d.now(), PostID: s.WatermarkID})
			if err := d.store.UpdateWatermark(ctx, s.DestinationID, s.AccountID, s.Watermark()); err != nil {
				return fmt.Errorf("upgrade watermark %s/%s: %w", s.DestinationID, s.AccountID, err)
			}
			upgraded++
		}
		if _, ok := d.destinations[s.DestinationID]; !ok {
			d.destinations[s.DestinationID] = true
		}
		d.putSub(&s)
	}

	d.logger.Info("directory loaded",
		"destinations", len(d.destinations),
		"subscriptions", len(snap.Subscriptions),
		"blacklist", len(snap.Blacklist),
		"upgraded_watermarks", upgraded,
	)
	return nil
}

// Follow subscribes destinationID to accountID. A zero seed is replaced by now.
func (d *Directory) Follow(ctx context.Context, destinationID, accountID, displayName string, seed domain.Watermark) (domain.Subscription, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.follow(ctx, destinationID, accountID, displayName, seed)
}

func (d *Directory) follow(ctx context.Context, destinationID, accountID, displayName string, seed domain.Watermark) (domain.Subscription, error) {
	if d.isBlacklisted(destinationID, accountID) {
		return domain.Subscription{}, domain.ErrBlacklisted
	}
	if existing, ok := d.subs[destinationID][accountID]; ok {
		return d.view(existing), domain.ErrAlreadyFollowing
	}
	if seed.IsZero() {
		seed = domain.Watermark{PublishedAt: d.now()}
	}

	sub := &domain.Subscription{
		DestinationID: destinationID,
		AccountID:     accountID,
		DisplayName:   displayName,
		CreatedAt:     d.now(),
	}
	sub.SetWatermark(seed)

	_, known := d.destinations[destinationID]
	err := d.store.WithTransaction(ctx, func(txCtx context.Context) error {
		if !known {
			if err := d.store.UpsertDestination(txCtx, domain.Destination{ID: destinationID, PushEnabled: true}); err != nil {
				return fmt.Errorf("save destination: %w", err)
			}
		}
		if err := d.store.InsertSubscription(txCtx, *sub); err != nil {
			return fmt.Errorf("save subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Subscription{}, err
	}

	if !known {
		d.destinations[destinationID] = true
	}
	d.putSub(sub)

	d.logger.Info("followed",
		"destination_id", destinationID,
		"account_id", accountID,
		"watermark", seed.PublishedAt,
	)
	return d.view(sub), nil
}

// FollowAll subscribes every given destination. Blacklisted destinations
// fail individually without affecting the others.
func (d *Directory) FollowAll(ctx context.Context, destinationIDs []string, accountID, displayName string, seed domain.Watermark) []domain.BulkResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	results := make([]domain.BulkResult, 0, len(destinationIDs))
	for _, dest := range destinationIDs {
		_, err := d.follow(ctx, dest, accountID, displayName, seed)
		results = append(results, domain.BulkResult{DestinationID: dest, Err: err})
	}
	return results
}

func (d *Directory) Unfollow(ctx context.Context, destinationID, accountID string) (domain.Subscription, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	sub, ok := d.subs[destinationID][accountID]
	if !ok {
		return domain.Subscription{}, domain.ErrNotFollowing
	}
	if err := d.store.DeleteSubscription(ctx, destinationID, accountID); err != nil {
		return domain.Subscription{}, fmt.Errorf("delete subscription: %w", err)
	}

	view := d.view(sub)
	d.dropSub(destinationID, accountID)

	d.logger.Info("unfollowed", "destination_id", destinationID, "account_id", accountID)
	return view, nil
}

// UnfollowAll removes accountID from every destination and returns the
// destinations that were affected.
func (d *Directory) UnfollowAll(ctx context.Context, accountID string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	affected := d.followers(accountID, "")
	err := d.store.WithTransaction(ctx, func(txCtx context.Context) error {
		return d.deleteSubscriptions(txCtx, affected, accountID)
	})
	if err != nil {
		return nil, err
	}

	for _, dest := range affected {
		d.dropSub(dest, accountID)
	}
	d.logger.Info("unfollowed everywhere", "account_id", accountID, "destinations", len(affected))
	return affected, nil
}

// followers lists destinations following accountID, limited to only when set.
func (d *Directory) followers(accountID, only string) []string {
	var affected []string
	for dest, accounts := range d.subs {
		if only != "" && dest != only {
			continue
		}
		if _, ok := accounts[accountID]; ok {
			affected = append(affected, dest)
		}
	}
	sort.Strings(affected)
	return affected
}

func (d *Directory) deleteSubscriptions(ctx context.Context, destinationIDs []string, accountID string) error {
	for _, dest := range destinationIDs {
		if err := d.store.DeleteSubscription(ctx, dest, accountID); err != nil {
			return fmt.Errorf("delete subscription %s: %w", dest, err)
		}
	}
	return nil
}

func (d *Directory) SetPushEnabled(ctx context.Context, destinationID string, enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.UpsertDestination(ctx, domain.Destination{ID: destinationID, PushEnabled: enabled}); err != nil {
		return fmt.Errorf("save destination: %w", err)
	}
	d.destinations[destinationID] = enabled

	d.logger.Info("push toggled", "destination_id", destinationID, "enabled", enabled)
	return nil
}

func (d *Directory) PushEnabled(destinationID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.pushEnabled(destinationID)
}

// AddBlacklist blocks accountID for scope (a destination or GlobalScope) and
// removes the subscriptions the entry now forbids.
func (d *Directory) AddBlacklist(ctx context.Context, scope, accountID string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry := domain.BlacklistEntry{Scope: scope, AccountID: accountID, CreatedAt: d.now()}
	only := scope
	if entry.Global() {
		only = ""
	}

	removed := d.followers(accountID, only)
	err := d.store.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := d.store.InsertBlacklist(txCtx, entry); err != nil {
			return fmt.Errorf("save blacklist entry: %w", err)
		}
		return d.deleteSubscriptions(txCtx, removed, accountID)
	})
	if err != nil {
		return nil, err
	}

	for _, dest := range removed {
		d.dropSub(dest, accountID)
	}
	d.putBlacklist(entry)
	d.logger.Info("blacklisted", "scope", scope, "account_id", accountID, "removed", len(removed))
	return removed, nil
}

func (d *Directory) RemoveBlacklist(ctx context.Context, scope, accountID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.blacklist[scope][accountID]; !ok {
		return domain.ErrNotFound
	}
	if err := d.store.DeleteBlacklist(ctx, scope, accountID); err != nil {
		return fmt.Errorf("delete blacklist entry: %w", err)
	}

	delete(d.blacklist[scope], accountID)
	if len(d.blacklist[scope]) == 0 {
		delete(d.blacklist, scope)
	}
	return nil
}

func (d *Directory) IsBlacklisted(destinationID, accountID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.isBlacklisted(destinationID, accountID)
}

// Blacklist lists the entries that apply to destinationID, global ones included.
func (d *Directory) Blacklist(destinationID string) []domain.BlacklistEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var entries []domain.BlacklistEntry
	for _, scope := range []string{destinationID, domain.GlobalScope} {
		for _, e := range d.blacklist[scope] {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Scope != entries[j].Scope {
			return entries[i].Scope != domain.GlobalScope
		}
		return entries[i].AccountID < entries[j].AccountID
	})
	return entries
}

// Subscriptions lists what destinationID follows, oldest first.
func (d *Directory) Subscriptions(destinationID string) []domain.Subscription {
	d.mu.RLock()
	defer d.mu.RUnlock()

	subs := make([]domain.Subscription, 0, len(d.subs[destinationID]))
	for _, s := range d.subs[destinationID] {
		subs = append(subs, d.view(s))
	}
	sortSubscriptions(subs)
	return subs
}

// Subscribers lists the subscriptions of every destination following accountID.
func (d *Directory) Subscribers(accountID string) []domain.Subscription {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var subs []domain.Subscription
	for _, accounts := range d.subs {
		if s, ok := accounts[accountID]; ok {
			subs = append(subs, d.view(s))
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].DestinationID < subs[j].DestinationID })
	return subs
}

func (d *Directory) Subscription(destinationID, accountID string) (domain.Subscription, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.subs[destinationID][accountID]
	if !ok {
		return domain.Subscription{}, false
	}
	return d.view(s), true
}

// Accounts returns the distinct followed accounts across all destinations.
func (d *Directory) Accounts() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, accounts := range d.subs {
		for id := range accounts {
			seen[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Destinations returns every destination the directory knows about.
func (d *Directory) Destinations() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.destinations))
	for id := range d.destinations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AdvanceWatermark moves the watermark forward. It reports false when w is
// not newer than the current value.
func (d *Directory) AdvanceWatermark(ctx context.Context, destinationID, accountID string, w domain.Watermark) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.subs[destinationID][accountID]
	if !ok {
		return false, domain.ErrNotFollowing
	}
	if !w.After(s.Watermark()) {
		return false, nil
	}
	if err := d.store.UpdateWatermark(ctx, destinationID, accountID, w); err != nil {
		return false, fmt.Errorf("save watermark: %w", err)
	}
	s.SetWatermark(w)
	return true, nil
}

func (d *Directory) isBlacklisted(destinationID, accountID string) bool {
	if _, ok := d.blacklist[domain.GlobalScope][accountID]; ok {
		return true
	}
	_, ok := d.blacklist[destinationID][accountID]
	return ok
}

func (d *Directory) pushEnabled(destinationID string) bool {
	enabled, ok := d.destinations[destinationID]
	return !ok || enabled
}

func (d *Directory) view(s *domain.Subscription) domain.Subscription {
	v := *s
	v.PushEnabled = d.pushEnabled(s.DestinationID)
	return v
}

func (d *Directory) putSub(s *domain.Subscription) {
	if d.subs[s.DestinationID] == nil {
		d.subs[s.DestinationID] = make(map[string]*domain.Subscription)
	}
	d.subs[s.DestinationID][s.AccountID] = s
}

func (d *Directory) dropSub(destinationID, accountID string) {
	delete(d.subs[destinationID], accountID)
	if len(d.subs[destinationID]) == 0 {
		delete(d.subs, destinationID)
	}
}

func (d *Directory) putBlacklist(e domain.BlacklistEntry) {
	if d.blacklist[e.Scope] == nil {
		d.blacklist[e.Scope] = make(map[string]domain.BlacklistEntry)
	}
	d.blacklist[e.Scope][e.AccountID] = e
}

func sortSubscriptions(subs []domain.Subscription) {
	sort.Slice(subs, func(i, j int) bool {
		if !subs[i].CreatedAt.Equal(subs[j].CreatedAt) {
			return subs[i].CreatedAt.Before(subs[j].CreatedAt)
		}
		return subs[i].AccountID < subs[j].AccountID
	})
}
