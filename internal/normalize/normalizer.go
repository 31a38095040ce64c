// Package normalize converts raw upstream payloads into canonical posts.
package normalize

import (
	"strings"
	"time"

	"weibo_push/internal/domain"
)

const videoPlayPageBase = "https://video.weibo.com/show?fid="

// Normalizer is safe for concurrent use.
type Normalizer struct {
	loc *time.Location
}

func New(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc}
}

// Normalize never fails: fields that cannot be derived get safe defaults and
// the anomaly is reported for the caller to log.
func (n *Normalizer) Normalize(raw domain.RawPost, accountID string, fetchedAt time.Time) (domain.Post, []string) {
	var anomalies []string

	post := domain.Post{
		ID:        raw.ID,
		AccountID: accountID,
	}
	if post.ID == "" {
		anomalies = append(anomalies, "missing post id")
	}

	source := &raw
	if raw.Retweeted != nil {
		source = raw.Retweeted
		original := CleanText(raw.Retweeted.Text)
		if original == "" {
			anomalies = append(anomalies, "shared item has no text")
		}
		post.Text = ComposeShare(CleanText(raw.Text), original)
	} else {
		post.Text = CleanText(raw.Text)
		if post.Text == "" {
			post.Text = emptyTextMarker
		}
	}

	post.Images = make([]string, 0, len(source.Pictures))
	for _, u := range source.Pictures {
		if u != "" {
			post.Images = append(post.Images, u)
		}
	}

	post.Stats = domain.Stats{
		Reposts:  nonNegative(source.Reposts),
		Comments: nonNegative(source.Comments),
		Likes:    nonNegative(source.Likes),
	}

	pageInfo := source.PageInfo
	if pageInfo == nil {
		pageInfo = raw.PageInfo
	}
	if pageInfo.IsVideo() {
		video, ok := extractVideo(pageInfo)
		if !ok {
			anomalies = append(anomalies, "video without identifier")
		}
		post.Video = video
	}

	if t, ok := ParseTime(raw.CreatedAt, fetchedAt, n.loc); ok {
		post.PublishedAt = t
		post.Timestamp = FormatTime(t, n.loc)
	} else {
		post.Timestamp = raw.CreatedAt
		anomalies = append(anomalies, "unparseable time: "+raw.CreatedAt)
	}

	return post, anomalies
}

func extractVideo(info *domain.RawPageInfo) (*domain.Video, bool) {
	video := &domain.Video{}
	ok := info.ObjectID != ""
	if ok {
		video.PlayPageURL = videoPlayPageBase + info.ObjectID
		video.DownloadURL = info.PlaybackURL
	}

	for _, candidate := range []string{
		info.CoverURL,
		info.MediaCoverURL,
		thumbnailFromStream(info.StreamURL),
	} {
		if candidate != "" {
			video.CoverURL = candidate
			break
		}
	}
	return video, ok
}

func thumbnailFromStream(stream string) string {
	if !strings.Contains(stream, ".mp4") {
		return ""
	}
	return strings.Replace(stream, ".mp4", ".jpg", 1)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
