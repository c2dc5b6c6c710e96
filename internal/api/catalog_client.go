package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"courtside/internal/config"
	"courtside/internal/constants"
	"courtside/internal/domain"
	"courtside/internal/service"

	"github.com/valyala/fasthttp"
)

// CatalogClient implements service.Catalog against the remote catalog API.
// It is selected over the fixture catalog when CATALOG_API_URL is configured.
type CatalogClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewCatalogClient(cfg *config.Config) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(cfg.CatalogAPIURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

var _ service.Catalog = (*CatalogClient)(nil)

func (c *CatalogClient) ListComplexes(ctx context.Context) ([]domain.Complex, error) {
	complexes, err := doRequest[[]domain.Complex](ctx, c, fasthttp.MethodGet, c.baseURL+"/complexes", nil)
	if err != nil {
		return nil, err
	}
	return *complexes, nil
}

func (c *CatalogClient) SearchComplexes(ctx context.Context, query string) ([]domain.Complex, error) {
	u := fmt.Sprintf("%s/complexes/search?q=%s", c.baseURL, url.QueryEscape(query))
	complexes, err := doRequest[[]domain.Complex](ctx, c, fasthttp.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return *complexes, nil
}

func (c *CatalogClient) GetComplexByID(ctx context.Context, id string) (*domain.Complex, error) {
	u := fmt.Sprintf("%s/complexes/%s", c.baseURL, url.PathEscape(id))
	record, err := doRequest[domain.Complex](ctx, c, fasthttp.MethodGet, u, nil)
	if isStatus(err, fasthttp.StatusNotFound) {
		return nil, service.ErrComplexNotFound
	}
	return record, err
}

func (c *CatalogClient) ListMatches(ctx context.Context) ([]domain.Match, error) {
	matches, err := doRequest[[]domain.Match](ctx, c, fasthttp.MethodGet, c.baseURL+"/matches", nil)
	if err != nil {
		return nil, err
	}
	return *matches, nil
}

func (c *CatalogClient) ListMatchesByLevel(ctx context.Context, level domain.Level) ([]domain.Match, error) {
	u := fmt.Sprintf("%s/matches?level=%s", c.baseURL, url.QueryEscape(string(level)))
	matches, err := doRequest[[]domain.Match](ctx, c, fasthttp.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return *matches, nil
}

func (c *CatalogClient) JoinMatch(ctx context.Context, id string) (*domain.Match, error) {
	u := fmt.Sprintf("%s/matches/%s/join", c.baseURL, url.PathEscape(id))
	match, err := doRequest[domain.Match](ctx, c, fasthttp.MethodPost, u, nil)
	if isStatus(err, fasthttp.StatusNotFound) {
		return nil, service.ErrMatchNotFound
	}
	if isStatus(err, fasthttp.StatusConflict) {
		return nil, service.ErrMatchFull
	}
	return match, err
}

func (c *CatalogClient) CreateMatch(ctx context.Context, draft service.MatchDraft) (*domain.Match, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode match draft: %w", err)
	}
	match, err := doRequest[domain.Match](ctx, c, fasthttp.MethodPost, c.baseURL+"/matches", body)
	if isStatus(err, fasthttp.StatusBadRequest) {
		return nil, fmt.Errorf("%w: rejected by catalog API", service.ErrInvalidMatch)
	}
	return match, err
}

// statusError preserves the remote status code so callers can map the
// well-known refusals onto the catalog sentinel errors.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("catalog API error: %d", e.code)
}

func isStatus(err error, code int) bool {
	se, ok := err.(*statusError)
	return ok && se.code == code
}

func doRequest[T any](ctx context.Context, client *CatalogClient, method, url string, body []byte) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(body)
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &statusError{code: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
