package dispatch

import (
	"fmt"
	"strings"

	"weibo_push/internal/domain"
)

// Renderer turns posts into message segments. The body is shared by every
// destination; only the header carries the per-destination name.
type Renderer struct{}

func (Renderer) Body(p domain.Post) []domain.Segment {
	var segs []domain.Segment
	text := func(s string) {
		if n := len(segs); n > 0 && segs[n-1].Kind == domain.SegmentText {
			segs[n-1].Value += s
			return
		}
		segs = append(segs, domain.Segment{Kind: domain.SegmentText, Value: s})
	}
	image := func(url string) {
		segs = append(segs, domain.Segment{Kind: domain.SegmentImage, Value: url})
	}

	if p.Text != "" {
		text(p.Text + "\n")
	}
	for _, url := range p.Images {
		image(url)
	}
	if p.Video != nil {
		if p.Video.CoverURL != "" {
			image(p.Video.CoverURL)
		}
		text("🎬 Video: " + p.Video.PlayPageURL + "\n")
		if p.Video.DownloadURL != "" {
			text("⬇️ Download: " + p.Video.DownloadURL + "\n")
		}
	}

	var trailer strings.Builder
	fmt.Fprintf(&trailer, "\n👍 %d  🔁 %d  💬 %d\n", p.Stats.Likes, p.Stats.Reposts, p.Stats.Comments)
	fmt.Fprintf(&trailer, "Published: %s\n", p.Timestamp)
	fmt.Fprintf(&trailer, "Link: %s", p.Permalink())
	text(trailer.String())

	return segs
}

// Message prefixes body with the header for displayName.
func (Renderer) Message(destinationID, displayName string, p domain.Post, body []domain.Segment) domain.Message {
	segs := make([]domain.Segment, 0, len(body)+1)
	header := fmt.Sprintf("📢 %s posted a new Weibo:\n\n", displayName)
	if len(body) > 0 && body[0].Kind == domain.SegmentText {
		segs = append(segs, domain.Segment{Kind: domain.SegmentText, Value: header + body[0].Value})
		segs = append(segs, body[1:]...)
	} else {
		segs = append(segs, domain.Segment{Kind: domain.SegmentText, Value: header})
		segs = append(segs, body...)
	}

	return domain.Message{
		DestinationID: destinationID,
		AccountID:     p.AccountID,
		PostID:        p.ID,
		Segments:      segs,
	}
}

// DisplayName picks the subscription override, then the cached name, then a
// placeholder built from the account id.
func DisplayName(override, cached, accountID string) string {
	switch {
	case override != "":
		return override
	case cached != "":
		return cached
	default:
		return "user " + accountID
	}
}
