package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	fetched := time.Date(2024, 3, 2, 10, 30, 15, 0, shanghai)

	tests := []struct {
		raw  string
		want string
	}{
		{"Sat Mar 02 08:00:00 +0800 2024", "2024-03-02 08:00:00"},
		{"Sat Mar 02 00:00:00 +0000 2024", "2024-03-02 08:00:00"},
		{"刚刚", "2024-03-02 10:30:00"},
		{"just now", "2024-03-02 10:30:00"},
		{"5分钟前", "2024-03-02 10:25:00"},
		{"5 minutes ago", "2024-03-02 10:25:00"},
		{"30秒前", "2024-03-02 10:29:00"},
		{"2小时前", "2024-03-02 08:30:00"},
		{"1 hour ago", "2024-03-02 09:30:00"},
		{"今天 09:05", "2024-03-02 09:05:00"},
		{"today 9:05", "2024-03-02 09:05:00"},
		{"昨天 23:59", "2024-03-01 23:59:00"},
		{"yesterday 23:59", "2024-03-01 23:59:00"},
		{"02-28", "2024-02-28 00:00:00"},
		{"02月28日 14:00", "2024-02-28 14:00:00"},
		{"12/31 14:00", "2023-12-31 14:00:00"},
		{"2021-07-01 18:20:30", "2021-07-01 18:20:30"},
		{"2021-07-01", "2021-07-01 00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseTime(tt.raw, fetched, shanghai)
			assert.True(t, ok)
			assert.Equal(t, tt.want, FormatTime(got, shanghai))
		})
	}
}

func TestParseTime_RelativeTimesAgreeWithinAMinute(t *testing.T) {
	first := time.Date(2024, 3, 2, 12, 5, 10, 0, shanghai)
	second := first.Add(40 * time.Second)

	a, ok := ParseTime("刚刚", first, shanghai)
	assert.True(t, ok)
	b, ok := ParseTime("刚刚", second, shanghai)
	assert.True(t, ok)
	assert.Equal(t, a, b)

	a, _ = ParseTime("5分钟前", first, shanghai)
	b, _ = ParseTime("5分钟前", second, shanghai)
	assert.Equal(t, a, b)
}

func TestParseTime_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "未知时间", "13/45", "yesterday"} {
		_, ok := ParseTime(raw, time.Now(), shanghai)
		assert.False(t, ok, raw)
	}
}

func TestIsPunctuationOnly(t *testing.T) {
	assert.True(t, IsPunctuationOnly(""))
	assert.True(t, IsPunctuationOnly(" //@ !"))
	assert.True(t, IsPunctuationOnly("。，！"))
	assert.False(t, IsPunctuationOnly("ok!"))
	assert.False(t, IsPunctuationOnly("转发"))
}
