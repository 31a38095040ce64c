package weibo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weibo_push/internal/domain"
)

const (
	apiStatusOK           = 1
	apiStatusLoginRequest = -100
	feedContainerPrefix   = "107603"
)

// APIConfig holds structured API source configuration.
type APIConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
	UserAgent   string
}

// APISource implements Source over the mobile container API.
type APISource struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	retry      retryPolicy
	creds      Credentials
	logger     *slog.Logger
}

func NewAPISource(cfg APIConfig, creds Credentials, logger *slog.Logger) *APISource {
	return &APISource{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		retry:     retryPolicy{maxAttempts: cfg.MaxAttempts, backoff: cfg.Backoff},
		creds:     creds,
		logger:    logger.With("strategy", StrategyAPI),
	}
}

func (s *APISource) Name() string {
	return StrategyAPI
}

// FetchFeed returns at most count posts from the first feed page.
func (s *APISource) FetchFeed(ctx context.Context, accountID string, count int) ([]domain.RawPost, error) {
	if count <= 0 {
		return nil, nil
	}

	resp, err := s.fetchIndex(ctx, s.feedURL(accountID), s.creds)
	if err != nil {
		s.logger.Warn("feed unavailable",
			"account_id", accountID,
			"class", FailureClass(err),
			"error", err,
		)
		return nil, fmt.Errorf("fetch feed %s: %w", accountID, err)
	}

	posts := make([]domain.RawPost, 0, count)
	for _, card := range resp.Data.Cards {
		if card.CardType != feedCardType || card.Mblog == nil {
			continue
		}
		posts = append(posts, toRawPost(card.Mblog))
		if len(posts) >= count {
			break
		}
	}

	s.logger.Debug("fetched feed", "account_id", accountID, "posts", len(posts))
	return posts, nil
}

// FetchUser resolves the account's display name.
func (s *APISource) FetchUser(ctx context.Context, accountID string) (domain.Account, error) {
	resp, err := s.fetchIndex(ctx, s.userURL(accountID), s.creds)
	if err != nil {
		return domain.Account{}, fmt.Errorf("fetch user %s: %w", accountID, err)
	}
	if resp.Data.UserInfo == nil || resp.Data.UserInfo.ScreenName == "" {
		return domain.Account{}, fmt.Errorf("fetch user %s: %w", accountID, domain.ErrMalformedContent)
	}

	return domain.Account{
		ID:          accountID,
		DisplayName: resp.Data.UserInfo.ScreenName,
	}, nil
}

// ProbeCredentials performs a test fetch with a candidate cookie.
func (s *APISource) ProbeCredentials(ctx context.Context, cookie string, accountID string) error {
	_, err := s.fetchIndex(ctx, s.feedURL(accountID), StaticCredentials(cookie))
	if err != nil {
		return fmt.Errorf("probe credentials: %w", err)
	}
	return nil
}

func (s *APISource) feedURL(accountID string) string {
	q := url.Values{}
	q.Set("type", "uid")
	q.Set("value", accountID)
	q.Set("containerid", feedContainerPrefix+accountID)
	q.Set("page", "1")
	return s.baseURL + "/api/container/getIndex?" + q.Encode()
}

func (s *APISource) userURL(accountID string) string {
	q := url.Values{}
	q.Set("type", "uid")
	q.Set("value", accountID)
	return s.baseURL + "/api/container/getIndex?" + q.Encode()
}

func (s *APISource) fetchIndex(ctx context.Context, rawURL string, creds Credentials) (*APIResponse, error) {
	var resp *APIResponse
	err := s.retry.do(ctx, s.logger, func() error {
		var err error
		resp, err = s.doRequest(ctx, rawURL, creds)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *APISource) doRequest(ctx context.Context, rawURL string, creds Credentials) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	setHeaders(req, "application/json, text/plain, */*", s.baseURL+"/", s.userAgent, creds)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fetchErr(ClassTransport, "execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.Request != nil && strings.Contains(resp.Request.URL.Host, "passport") {
		return nil, fetchErr(ClassCredential, "redirected to login: %w", domain.ErrCredentialInvalid)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fetchErr(ClassStatus, "unexpected status: %d", resp.StatusCode)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return nil, fetchErr(ClassContentType, "unexpected content type %q", resp.Header.Get("Content-Type"))
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fetchErr(ClassDecode, "decode response: %w", err)
	}

	switch apiResp.OK {
	case apiStatusOK:
		return &apiResp, nil
	case apiStatusLoginRequest:
		return nil, fetchErr(ClassCredential, "api asks for login: %w", domain.ErrCredentialInvalid)
	default:
		return nil, fetchErr(ClassAPI, "api status %d: %s", apiResp.OK, apiResp.Msg)
	}
}

func toRawPost(m *Mblog) domain.RawPost {
	raw := domain.RawPost{
		ID:        string(m.ID),
		CreatedAt: m.CreatedAt,
		Text:      m.Text,
		Reposts:   int(m.RepostsCount),
		Comments:  int(m.CommentsCount),
		Likes:     int(m.AttitudesCount),
		Strategy:  StrategyAPI,
	}

	for _, pic := range m.Pics {
		switch {
		case pic.Large != nil && pic.Large.URL != "":
			raw.Pictures = append(raw.Pictures, pic.Large.URL)
		case pic.URL != "":
			raw.Pictures = append(raw.Pictures, pic.URL)
		}
	}

	if p := m.PageInfo; p != nil {
		info := &domain.RawPageInfo{
			Type:     p.Type,
			ObjectID: p.ObjectID,
		}
		if info.ObjectID == "" {
			info.ObjectID = string(p.FID)
		}
		if p.PagePic != nil {
			info.CoverURL = p.PagePic.URL
		}
		if mi := p.MediaInfo; mi != nil {
			info.MediaCoverURL = mi.CoverImageURL
			info.StreamURL = mi.StreamURLHD
			if info.StreamURL == "" {
				info.StreamURL = mi.StreamURL
			}
		}
		for _, pb := range p.Playback {
			if u := pb.StreamURL(); u != "" {
				info.PlaybackURL = u
				break
			}
		}
		raw.PageInfo = info
	}

	if m.RetweetedStatus != nil {
		original := toRawPost(m.RetweetedStatus)
		raw.Retweeted = &original
	}

	return raw
}
