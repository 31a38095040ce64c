// Package watermark decides which posts a destination has not seen yet.
package watermark

import (
	"context"
	"fmt"
	"sort"
	"time"

	"weibo_push/internal/domain"
)

// Directory is the subset of the subscription directory that owns watermarks.
type Directory interface {
	Subscription(destinationID, accountID string) (domain.Subscription, bool)
	AdvanceWatermark(ctx context.Context, destinationID, accountID string, w domain.Watermark) (bool, error)
}

type Store struct {
	dir Directory
}

func New(dir Directory) *Store {
	return &Store{dir: dir}
}

// FilterNew returns the posts newer than the subscription watermark, oldest
// first. It returns nothing when there is no subscription.
func (s *Store) FilterNew(destinationID, accountID string, posts []domain.Post) []domain.Post {
	sub, ok := s.dir.Subscription(destinationID, accountID)
	if !ok {
		return nil
	}
	return Newer(sub.Watermark(), posts)
}

// IsNew reports whether post is still unseen by destinationID.
func (s *Store) IsNew(destinationID string, post domain.Post) bool {
	sub, ok := s.dir.Subscription(destinationID, post.AccountID)
	if !ok {
		return false
	}
	return isNewer(post, sub.Watermark())
}

// Advance moves the watermark to post. Older posts leave it unchanged.
func (s *Store) Advance(ctx context.Context, destinationID string, post domain.Post) (bool, error) {
	if post.PublishedAt.IsZero() {
		return false, nil
	}
	advanced, err := s.dir.AdvanceWatermark(ctx, destinationID, post.AccountID, post.Key())
	if err != nil {
		return false, fmt.Errorf("advance watermark: %w", err)
	}
	return advanced, nil
}

// Newer filters posts strictly after w and sorts them oldest first.
func Newer(w domain.Watermark, posts []domain.Post) []domain.Post {
	var out []domain.Post
	for _, p := range posts {
		if isNewer(p, w) {
			out = append(out, p)
		}
	}
	SortOldestFirst(out)
	return out
}

// Seed returns the newest key among posts, or now when no post has a time.
func Seed(posts []domain.Post, now time.Time) domain.Watermark {
	var newest domain.Watermark
	for _, p := range posts {
		if p.PublishedAt.IsZero() {
			continue
		}
		if k := p.Key(); newest.IsZero() || k.Compare(newest) > 0 {
			newest = k
		}
	}
	if newest.IsZero() {
		return domain.Watermark{PublishedAt: now}
	}
	return newest
}

func SortOldestFirst(posts []domain.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Key().Compare(posts[j].Key()) < 0
	})
}

func isNewer(p domain.Post, w domain.Watermark) bool {
	if p.PublishedAt.IsZero() {
		return false
	}
	return p.Key().After(w)
}
