package domain

import (
	"strings"
	"time"
)

const PermalinkBase = "https://m.weibo.cn/status/"

// TimestampLayout is the canonical rendering of Post.PublishedAt.
const TimestampLayout = "2006-01-02 15:04:05"

// Account is an upstream content source.
type Account struct {
	ID          string
	DisplayName string
}

// Post is the canonical, normalized form of one published item.
type Post struct {
	ID          string
	AccountID   string
	PublishedAt time.Time // zero when the upstream time could not be parsed
	Timestamp   string    // canonical text form, or the raw upstream text when unparseable
	Text        string
	Images      []string
	Video       *Video
	Stats       Stats
}

type Video struct {
	PlayPageURL string
	CoverURL    string
	DownloadURL string // first direct stream, when upstream lists one
}

type Stats struct {
	Reposts  int
	Comments int
	Likes    int
}

func (p Post) Permalink() string {
	return PermalinkBase + p.ID
}

// Key returns the comparison key used by watermarks.
func (p Post) Key() Watermark {
	return Watermark{PublishedAt: p.PublishedAt, PostID: p.ID}
}

// RawPost is the payload produced by a fetch strategy before normalization.
type RawPost struct {
	ID        string
	CreatedAt string
	Text      string
	Pictures  []string
	PageInfo  *RawPageInfo
	Retweeted *RawPost
	Reposts   int
	Comments  int
	Likes     int
	Strategy  string
}

// RawPageInfo is the attachment block of a raw post.
type RawPageInfo struct {
	Type          string
	ObjectID      string
	CoverURL      string
	MediaCoverURL string
	StreamURL     string
	PlaybackURL   string
}

func (p *RawPageInfo) IsVideo() bool {
	return p != nil && strings.EqualFold(p.Type, "video")
}

// KeyPrecision is the coarsest resolution of an upstream publish time.
// Relative times ("5分钟前", "今天 12:30") only resolve to the minute.
const KeyPrecision = time.Minute

// Watermark marks the newest post a destination has seen for an account.
// PublishedAt orders posts; PostID breaks ties and rejects re-fetches.
type Watermark struct {
	PublishedAt time.Time
	PostID      string
}

func (w Watermark) IsZero() bool {
	return w.PublishedAt.IsZero()
}

// After reports whether w is strictly newer than o. When both carry an id,
// w must have the larger id and a publish time no earlier than o at
// KeyPrecision, so the same post fetched twice never compares as newer.
func (w Watermark) After(o Watermark) bool {
	if w.PostID != "" && o.PostID != "" {
		if ComparePostIDs(w.PostID, o.PostID) <= 0 {
			return false
		}
		return !w.PublishedAt.Truncate(KeyPrecision).Before(o.PublishedAt.Truncate(KeyPrecision))
	}
	return w.Compare(o) > 0
}

// Compare orders keys by publish time, then by id. It is a total order and
// is used for sorting; use After for new-post decisions.
func (w Watermark) Compare(o Watermark) int {
	if c := w.PublishedAt.Compare(o.PublishedAt); c != 0 {
		return c
	}
	return ComparePostIDs(w.PostID, o.PostID)
}

// ComparePostIDs compares numeric upstream ids; longer ids are larger.
func ComparePostIDs(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
