package directory

import (
	"context"
	"sort"
	"sync"

	"weibo_push/internal/domain"
)

// MemoryStore is a non-durable Store. Transactions are not isolated.
type MemoryStore struct {
	mu            sync.Mutex
	destinations  map[string]domain.Destination
	subscriptions map[[2]string]domain.Subscription
	blacklist     map[[2]string]domain.BlacklistEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		destinations:  make(map[string]domain.Destination),
		subscriptions: make(map[[2]string]domain.Subscription),
		blacklist:     make(map[[2]string]domain.BlacklistEntry),
	}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) LoadAll(context.Context) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := &Snapshot{}
	for _, d := range m.destinations {
		snap.Destinations = append(snap.Destinations, d)
	}
	for _, s := range m.subscriptions {
		snap.Subscriptions = append(snap.Subscriptions, s)
	}
	for _, e := range m.blacklist {
		snap.Blacklist = append(snap.Blacklist, e)
	}

	sort.Slice(snap.Destinations, func(i, j int) bool { return snap.Destinations[i].ID < snap.Destinations[j].ID })
	sort.Slice(snap.Subscriptions, func(i, j int) bool {
		a, b := snap.Subscriptions[i], snap.Subscriptions[j]
		if a.DestinationID != b.DestinationID {
			return a.DestinationID < b.DestinationID
		}
		return a.AccountID < b.AccountID
	})
	return snap, nil
}

func (m *MemoryStore) UpsertDestination(_ context.Context, d domain.Destination) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destinations[d.ID] = d
	return nil
}

func (m *MemoryStore) InsertSubscription(_ context.Context, s domain.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions[[2]string{s.DestinationID, s.AccountID}] = s
	return nil
}

func (m *MemoryStore) DeleteSubscription(_ context.Context, destinationID, accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscriptions, [2]string{destinationID, accountID})
	return nil
}

func (m *MemoryStore) UpdateWatermark(_ context.Context, destinationID, accountID string, w domain.Watermark) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := [2]string{destinationID, accountID}
	s, ok := m.subscriptions[key]
	if !ok {
		return domain.ErrNotFound
	}
	s.SetWatermark(w)
	m.subscriptions[key] = s
	return nil
}

func (m *MemoryStore) InsertBlacklist(_ context.Context, e domain.BlacklistEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blacklist[[2]string{e.Scope, e.AccountID}] = e
	return nil
}

func (m *MemoryStore) DeleteBlacklist(_ context.Context, scope, accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blacklist, [2]string{scope, accountID})
	return nil
}

func (m *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
