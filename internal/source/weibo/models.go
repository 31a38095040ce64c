package weibo

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// APIResponse represents the container index response of the mobile API.
type APIResponse struct {
	OK   int     `json:"ok"`
	Msg  string  `json:"msg"`
	Data APIData `json:"data"`
}

type APIData struct {
	Cards    []Card    `json:"cards"`
	UserInfo *UserInfo `json:"userInfo"`
}

type UserInfo struct {
	ID         flexString `json:"id"`
	ScreenName string     `json:"screen_name"`
}

// feedCardType marks cards that carry a post.
const feedCardType = 9

type Card struct {
	CardType int    `json:"card_type"`
	Mblog    *Mblog `json:"mblog"`
}

type Mblog struct {
	ID              flexString `json:"id"`
	CreatedAt       string     `json:"created_at"`
	Text            string     `json:"text"`
	Pics            []Pic      `json:"pics"`
	PageInfo        *PageInfo  `json:"page_info"`
	RetweetedStatus *Mblog     `json:"retweeted_status"`
	RepostsCount    flexCount  `json:"reposts_count"`
	CommentsCount   flexCount  `json:"comments_count"`
	AttitudesCount  flexCount  `json:"attitudes_count"`
}

type Pic struct {
	URL   string  `json:"url"`
	Large *PicURL `json:"large"`
}

type PicURL struct {
	URL string `json:"url"`
}

type PageInfo struct {
	Type      string     `json:"type"`
	ObjectID  string     `json:"object_id"`
	FID       flexString `json:"fid"`
	PagePic   *PicURL    `json:"page_pic"`
	MediaInfo *MediaInfo `json:"media_info"`
	Playback  []Playback `json:"playback_list"`
}

// Playback is one entry of the direct stream list. Older payloads put the
// url at the top level, newer ones under play_info.
type Playback struct {
	URL      string  `json:"url"`
	PlayInfo *PicURL `json:"play_info"`
}

func (p Playback) StreamURL() string {
	if p.URL != "" {
		return p.URL
	}
	if p.PlayInfo != nil {
		return p.PlayInfo.URL
	}
	return ""
}

type MediaInfo struct {
	StreamURLHD   string `json:"stream_url_hd"`
	StreamURL     string `json:"stream_url"`
	CoverImageURL string `json:"cover_image_url"`
}

// flexString accepts both JSON strings and numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

// flexCount accepts numbers and abbreviated strings such as "100万+".
// Anything it cannot read becomes zero.
type flexCount int

func (c *flexCount) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		v, _ := n.Float64()
		*c = flexCount(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*c = 0
		return nil
	}
	*c = flexCount(parseAbbreviatedCount(s))
	return nil
}

func parseAbbreviatedCount(s string) int {
	s = strings.TrimSuffix(strings.TrimSpace(s), "+")
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "亿"):
		mult, s = 1e8, strings.TrimSuffix(s, "亿")
	case strings.HasSuffix(s, "万"):
		mult, s = 1e4, strings.TrimSuffix(s, "万")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(v * mult)
}
