package weibo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weibo_push/internal/domain"
)

const litePage = `<html><body>
<div class="c" id="M_z0JH2lOMb">
  <div><span class="ctt">first &amp; <a href="/n/bob">@bob</a><br/>line</span>&nbsp;</div>
  <div><a href="/mblog/pic/z0JH2lOMb"><img src="http://wx1.sinaimg.cn/wap180/abc.jpg" class="ib" /></a>&nbsp;<a href="/attitude">赞[12]</a>&nbsp;<a href="/repost">转发[3]</a>&nbsp;<a href="/comment">评论[4]</a>&nbsp;<a href="/fav">收藏</a>&nbsp;<span class="ct">今天 12:30&nbsp;来自iPhone客户端</span></div>
</div>
<div class="s"></div>
<div class="c" id="M_3501756485200010">
  <div><span class="cmt">转发了&nbsp;<a href="/u/2">Carol</a>&nbsp;的微博:</span><span class="ctt">original words</span>&nbsp;<span class="cmt">赞[100]</span>&nbsp;<span class="cmt">原文转发[20]</span>&nbsp;<a href="/c">原文评论[30]</a></div>
  <div><img src="http://wx2.sinaimg.cn/thumb180/orig.jpg" class="ib" /></div>
  <div><span class="cmt">转发理由:</span>so true <a href="/n/dan">@dan</a>&nbsp;&nbsp;<a href="/a">赞[1]</a>&nbsp;<a href="/r">转发[2]</a>&nbsp;<a href="/cm">评论[3]</a>&nbsp;<span class="ct">02月28日 14:00&nbsp;来自网页</span></div>
</div>
</body></html>`

func TestParseFeedPage(t *testing.T) {
	posts, err := parseFeedPage(litePage)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	plain := posts[0]
	assert.Equal(t, "3501756485200075", plain.ID)
	assert.Contains(t, plain.Text, "first &amp; ")
	assert.Contains(t, plain.Text, "<br/>line")
	assert.Equal(t, []string{"http://wx1.sinaimg.cn/large/abc.jpg"}, plain.Pictures)
	assert.Equal(t, 12, plain.Likes)
	assert.Equal(t, 3, plain.Reposts)
	assert.Equal(t, 4, plain.Comments)
	assert.Equal(t, "今天 12:30", plain.CreatedAt)
	assert.Nil(t, plain.Retweeted)
	assert.Equal(t, StrategyMarkup, plain.Strategy)

	share := posts[1]
	assert.Equal(t, "3501756485200010", share.ID)
	assert.Equal(t, "02月28日 14:00", share.CreatedAt)
	assert.Contains(t, share.Text, "so true")
	assert.Contains(t, share.Text, "@dan")
	assert.NotContains(t, share.Text, "转发理由")
	assert.NotContains(t, share.Text, "赞[1]")
	assert.Empty(t, share.Pictures)
	assert.Equal(t, 1, share.Likes)

	require.NotNil(t, share.Retweeted)
	assert.Equal(t, "original words", share.Retweeted.Text)
	assert.Equal(t, []string{"http://wx2.sinaimg.cn/large/orig.jpg"}, share.Retweeted.Pictures)
	assert.Equal(t, 100, share.Retweeted.Likes)
	assert.Equal(t, 20, share.Retweeted.Reposts)
	assert.Equal(t, 30, share.Retweeted.Comments)
}

func TestMidToID(t *testing.T) {
	assert.Equal(t, "3501756485200075", MidToID("z0JH2lOMb"))
	assert.Equal(t, "466421653", MidToID("KqWz3"))
	assert.Equal(t, "123456", MidToID("123456"))
	assert.Equal(t, "", MidToID(""))
}

type fakeLoader struct {
	mu    sync.Mutex
	pages map[string]string
	errs  map[string]error
	urls  []string
}

func (f *fakeLoader) Load(_ context.Context, url string, _ Credentials) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	return f.pages[url], nil
}

func pageWith(ids ...string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for _, id := range ids {
		fmt.Fprintf(&sb, `<div class="c" id="M_%s"><div><span class="ctt">post %s</span><span class="ct">刚刚</span></div></div>`, id, id)
	}
	sb.WriteString("</body></html>")
	return sb.String()
}

func newTestMarkupSource(loader PageLoader, maxPages int) *MarkupSource {
	return NewMarkupSource(MarkupConfig{BaseURL: "https://lite", MaxPages: maxPages}, loader, nil, testLogger())
}

func TestMarkupSource_PaginatesUntilCount(t *testing.T) {
	loader := &fakeLoader{pages: map[string]string{
		"https://lite/u/7?page=1": pageWith("10", "9"),
		"https://lite/u/7?page=2": pageWith("8", "7"),
		"https://lite/u/7?page=3": pageWith("6", "5"),
	}}

	posts, err := newTestMarkupSource(loader, 5).FetchFeed(context.Background(), "7", 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"10", "9", "8"}, []string{posts[0].ID, posts[1].ID, posts[2].ID})
	assert.Len(t, loader.urls, 2)
}

func TestMarkupSource_StopsAtPageCeiling(t *testing.T) {
	loader := &fakeLoader{pages: map[string]string{
		"https://lite/u/7?page=1": pageWith("10"),
		"https://lite/u/7?page=2": pageWith("9"),
		"https://lite/u/7?page=3": pageWith("8"),
	}}

	posts, err := newTestMarkupSource(loader, 2).FetchFeed(context.Background(), "7", 10)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Len(t, loader.urls, 2)
}

func TestMarkupSource_StopsOnEmptyPage(t *testing.T) {
	loader := &fakeLoader{pages: map[string]string{
		"https://lite/u/7?page=1": pageWith("10"),
		"https://lite/u/7?page=2": pageWith(),
	}}

	posts, err := newTestMarkupSource(loader, 5).FetchFeed(context.Background(), "7", 10)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Len(t, loader.urls, 2)
}

func TestMarkupSource_NonPositiveCount(t *testing.T) {
	loader := &fakeLoader{pages: map[string]string{"https://lite/u/7?page=1": pageWith("10")}}

	for _, count := range []int{0, -1} {
		posts, err := newTestMarkupSource(loader, 5).FetchFeed(context.Background(), "7", count)
		require.NoError(t, err)
		assert.Empty(t, posts)
	}
	assert.Empty(t, loader.urls)
}

func TestMarkupSource_FirstPageFailure(t *testing.T) {
	loader := &fakeLoader{errs: map[string]error{
		"https://lite/u/7?page=1": fmt.Errorf("%w: boom", domain.ErrUpstreamUnavailable),
	}}

	_, err := newTestMarkupSource(loader, 5).FetchFeed(context.Background(), "7", 10)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestMarkupSource_LaterPageFailureKeepsPartial(t *testing.T) {
	loader := &fakeLoader{
		pages: map[string]string{"https://lite/u/7?page=1": pageWith("10")},
		errs:  map[string]error{"https://lite/u/7?page=2": errors.New("boom")},
	}

	posts, err := newTestMarkupSource(loader, 5).FetchFeed(context.Background(), "7", 10)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestHTTPLoader_ValidatesContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	loader := NewHTTPLoader(LoaderConfig{Timeout: time.Second, MaxAttempts: 2, Backoff: time.Millisecond}, testLogger())
	_, err := loader.Load(context.Background(), srv.URL, StaticCredentials("c=1"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Equal(t, ClassContentType, FailureClass(err))
}

func TestHTTPLoader_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "c=1", r.Header.Get("Cookie"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, litePage)
	}))
	defer srv.Close()

	loader := NewHTTPLoader(LoaderConfig{Timeout: time.Second, MaxAttempts: 1}, testLogger())
	body, err := loader.Load(context.Background(), srv.URL, StaticCredentials("c=1"))

	require.NoError(t, err)
	assert.Equal(t, litePage, body)
}

type stubSource struct {
	name  string
	posts []domain.RawPost
	err   error
	calls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchFeed(context.Context, string, int) ([]domain.RawPost, error) {
	s.calls++
	return s.posts, s.err
}

func TestFallbackSource(t *testing.T) {
	t.Run("primary succeeds", func(t *testing.T) {
		primary := &stubSource{name: "api", posts: []domain.RawPost{{ID: "1"}}}
		fallback := &stubSource{name: "markup"}

		posts, err := NewFallbackSource(primary, fallback, testLogger()).FetchFeed(context.Background(), "7", 5)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, 0, fallback.calls)
	})

	t.Run("primary unavailable", func(t *testing.T) {
		primary := &stubSource{name: "api", err: fmt.Errorf("x: %w", domain.ErrUpstreamUnavailable)}
		fallback := &stubSource{name: "markup", posts: []domain.RawPost{{ID: "2"}}}

		posts, err := NewFallbackSource(primary, fallback, testLogger()).FetchFeed(context.Background(), "7", 5)
		require.NoError(t, err)
		assert.Equal(t, "2", posts[0].ID)
	})

	t.Run("both unavailable", func(t *testing.T) {
		primary := &stubSource{name: "api", err: fmt.Errorf("x: %w", domain.ErrUpstreamUnavailable)}
		fallback := &stubSource{name: "markup", err: fmt.Errorf("y: %w", domain.ErrUpstreamUnavailable)}

		_, err := NewFallbackSource(primary, fallback, testLogger()).FetchFeed(context.Background(), "7", 5)
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})
}

func TestSelect(t *testing.T) {
	api := &stubSource{name: "api"}
	markup := &stubSource{name: "markup"}

	s, err := Select(StrategyAPI, api, markup, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "api", s.Name())

	s, err = Select(StrategyAuto, api, markup, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "api+markup", s.Name())

	_, err = Select("carrier-pigeon", api, markup, testLogger())
	assert.Error(t, err)
}
