package weibo

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"weibo_push/internal/domain"
)

const base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	reCounter      = regexp.MustCompile(`^(原文转发|原文评论|赞|转发|评论|Like|Repost|Comment)\[(\d+)\]$`)
	reThumbSegment = regexp.MustCompile(`/(wap180|thumb180|thumbnail|orj360|mw690)/`)
)

// parseFeedPage extracts the posts of one lite-site feed page.
func parseFeedPage(markup string) ([]domain.RawPost, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var posts []domain.RawPost
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "c") && strings.HasPrefix(attr(n, "id"), "M_") {
			posts = append(posts, parsePostBlock(n))
			return false
		}
		return true
	})
	return posts, nil
}

func parsePostBlock(block *html.Node) domain.RawPost {
	raw := domain.RawPost{
		ID:       MidToID(strings.TrimPrefix(attr(block, "id"), "M_")),
		Strategy: StrategyMarkup,
	}

	var rows []*html.Node
	for c := block.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "div" {
			rows = append(rows, c)
		}
	}
	if len(rows) == 0 {
		return raw
	}

	first, last := rows[0], rows[len(rows)-1]
	isShare := findFirst(first, func(n *html.Node) bool {
		return isElement(n, "span") && hasClass(n, "cmt") && strings.Contains(textContent(n), "转发了")
	}) != nil

	content := &raw
	if isShare {
		content = &domain.RawPost{Strategy: StrategyMarkup}
		raw.Retweeted = content
	}

	if ctt := findFirst(first, func(n *html.Node) bool { return isElement(n, "span") && hasClass(n, "ctt") }); ctt != nil {
		content.Text = innerHTML(ctt)
	}

	for _, row := range rows {
		walk(row, func(n *html.Node) bool {
			if isElement(n, "img") && hasClass(n, "ib") {
				if src := attr(n, "src"); src != "" {
					content.Pictures = append(content.Pictures, reThumbSegment.ReplaceAllString(src, "/large/"))
				}
			}
			return true
		})
	}

	for i, row := range rows {
		counters := collectCounters(row)
		if isShare && i == 0 {
			content.Likes = counters["赞"] + counters["Like"]
			content.Reposts = counters["原文转发"]
			content.Comments = counters["原文评论"]
		}
		if i == len(rows)-1 {
			raw.Likes = counters["赞"] + counters["Like"]
			raw.Reposts = counters["转发"] + counters["Repost"]
			raw.Comments = counters["评论"] + counters["Comment"]
		}
	}

	if ct := findFirst(last, func(n *html.Node) bool { return isElement(n, "span") && hasClass(n, "ct") }); ct != nil {
		raw.CreatedAt = cleanTimeText(textContent(ct))
	}

	if isShare {
		raw.Text = shareReason(last)
	}

	return raw
}

// shareReason returns the sharer's own comment from the last row.
func shareReason(row *html.Node) string {
	var buf bytes.Buffer
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case isElement(c, "span") && (hasClass(c, "cmt") || hasClass(c, "ct")):
			continue
		case isElement(c, "a") && isActionLink(textContent(c)):
			continue
		}
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

func isActionLink(text string) bool {
	text = strings.TrimSpace(text)
	return reCounter.MatchString(text) || text == "收藏" || text == "操作" || text == "举报"
}

func collectCounters(row *html.Node) map[string]int {
	counters := make(map[string]int)
	walk(row, func(n *html.Node) bool {
		if isElement(n, "a") || isElement(n, "span") {
			if m := reCounter.FindStringSubmatch(strings.TrimSpace(textContent(n))); m != nil {
				v, _ := strconv.Atoi(m[2])
				counters[m[1]] = v
			}
		}
		return true
	})
	return counters
}

func cleanTimeText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	if i := strings.Index(s, "来自"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// MidToID converts a base62 mid to the numeric post id. Numeric input is
// returned unchanged.
func MidToID(mid string) string {
	if mid == "" || strings.Trim(mid, "0123456789") == "" {
		return mid
	}

	var parts []string
	for end := len(mid); end > 0; end -= 4 {
		start := end - 4
		if start < 0 {
			start = 0
		}
		chunk := mid[start:end]

		var v int64
		for _, r := range chunk {
			idx := strings.IndexRune(base62Alphabet, r)
			if idx < 0 {
				return mid
			}
			v = v*62 + int64(idx)
		}

		s := strconv.FormatInt(v, 10)
		if start > 0 {
			s = strings.Repeat("0", max(0, 7-len(s))) + s
		}
		parts = append([]string{s}, parts...)
	}
	return strings.Join(parts, "")
}

func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}
		if match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}
