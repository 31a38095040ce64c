package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"weibo_push/internal/domain"
)

// APITimeLayout is the absolute time format of the structured API.
const APITimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

var (
	reAgo       = regexp.MustCompile(`(?i)^(\d+)\s*(秒|分钟|小时|seconds?|secs?|minutes?|mins?|hours?|hrs?)\s*(?:前|ago)$`)
	reToday     = regexp.MustCompile(`(?i)^(?:今天|today)\s*(\d{1,2}):(\d{2})$`)
	reYesterday = regexp.MustCompile(`(?i)^(?:昨天|yesterday)\s*(\d{1,2}):(\d{2})$`)
	reMonthDay  = regexp.MustCompile(`^(\d{1,2})(?:-|/|月)(\d{1,2})日?(?:\s*(\d{1,2}):(\d{2}))?$`)
	reFullDate  = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})(?:\s+(\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)
)

// ParseTime resolves absolute and relative upstream time text against the
// fetch instant. Relative forms are truncated to domain.KeyPrecision so that
// nearby fetches of one post agree. It reports false when raw matches no
// known form.
func ParseTime(raw string, fetchedAt time.Time, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	now := fetchedAt.In(loc)
	s := strings.TrimSpace(raw)

	if t, err := time.Parse(APITimeLayout, s); err == nil {
		return t.In(loc), true
	}

	switch strings.ToLower(s) {
	case "刚刚", "just now":
		return now.Truncate(domain.KeyPrecision), true
	}

	if m := reAgo.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		var unit time.Duration
		switch u := strings.ToLower(m[2]); {
		case u == "秒" || strings.HasPrefix(u, "sec"):
			unit = time.Second
		case u == "分钟" || strings.HasPrefix(u, "min"):
			unit = time.Minute
		default:
			unit = time.Hour
		}
		return now.Add(-time.Duration(n) * unit).Truncate(domain.KeyPrecision), true
	}

	if m := reToday.FindStringSubmatch(s); m != nil {
		return clock(now, m[1], m[2]), true
	}

	if m := reYesterday.FindStringSubmatch(s); m != nil {
		return clock(now.AddDate(0, 0, -1), m[1], m[2]), true
	}

	if m := reMonthDay.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		hour, minute := atoiOr(m[3], 0), atoiOr(m[4], 0)
		t := time.Date(now.Year(), time.Month(month), day, hour, minute, 0, 0, loc)
		// a date later than the fetch instant belongs to the previous year
		if t.After(now.Add(24 * time.Hour)) {
			t = t.AddDate(-1, 0, 0)
		}
		return t, true
	}

	if m := reFullDate.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, atoiOr(m[4], 0), atoiOr(m[5], 0), atoiOr(m[6], 0), 0, loc), true
	}

	return time.Time{}, false
}

// FormatTime renders t in the canonical timestamp layout.
func FormatTime(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(domain.TimestampLayout)
}

func clock(day time.Time, h, m string) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), atoiOr(h, 0), atoiOr(m, 0), 0, 0, day.Location())
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
