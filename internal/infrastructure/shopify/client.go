package shopify

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"context"

	jsoniter "github.com/json-iterator/go"

	"salewatch/internal/config"
	"salewatch/internal/domain"
	"salewatch/internal/domain/entity"
	"salewatch/pkg/errcodes"
	"salewatch/pkg/httpx"
	"salewatch/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Client ходит за публичным products.json витрины.
// Любой ответ, который не является валидным JSON-фидом (non-200, HTML от
// анти-бот защиты, битое тело), трактуется как «нет данных», а не как
// ошибка — иначе каждый WAF-блок превращался бы в ложную тревогу.
type Client struct {
	httpClient *http.Client
	feedURL    string
}

func NewClient(cfg config.Store) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidStoreURL, "parse base url")
	}

	feedURL := baseURL.JoinPath(cfg.FeedPath)
	query := feedURL.Query()
	query.Set("limit", strconv.Itoa(cfg.FeedPageLimit))
	feedURL.RawQuery = query.Encode()

	transport := httpx.NewLoggingRoundTripper(
		httpx.NewUserAgentRoundTripper(http.DefaultTransport, cfg.UserAgent),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
	)

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		feedURL: feedURL.String(),
	}, nil
}

// FetchProducts возвращает каталог и ok=true, либо ok=false при «нет данных».
// Ошибка возвращается только на сетевых сбоях — их имеет смысл ретраить.
func (c *Client) FetchProducts(ctx context.Context) ([]entity.Product, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, http.NoBody)
	if err != nil {
		return nil, false, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, domain.WrapError(err, errcodes.FeedFetchFailed, "fetch products feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger(ctx).Warn("feed returned non-200", slog.Int(logx.FieldResponseStatus, resp.StatusCode))
		return nil, false, nil
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "json") {
		// WAF/блок отдаёт HTML вместо JSON
		logger(ctx).Warn("feed returned non-json content type", slog.String("content-type", contentType))
		return nil, false, nil
	}

	var feed feedSchema
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		logger(ctx).Warn("feed body is not valid json", logx.Error(err))
		return nil, false, nil
	}

	return feed.toDomain(), true, nil
}
