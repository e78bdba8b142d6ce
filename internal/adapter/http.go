package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-event-keeper/internal/config"
	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/models"
	"github.com/go-resty/resty/v2"
)

// Scheme selects the authentication endpoints.
type Scheme string

const (
	SchemePlain Scheme = "auth"
	SchemeToken Scheme = "jwt"
)

const (
	eventsPath      = "/event"
	ownedEventsPath = "/auth-event"
	traceIDHeader   = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout. A non-empty cfg.Token is stored as the initial bearer
// token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(traceIDHeader) == "" {
				if traceID, ok := traceIDFromContext(r.Context()); ok {
					r.SetHeader(traceIDHeader, traceID)
				}
			}
			return nil
		})

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SignUp(ctx context.Context, scheme Scheme, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/" + string(scheme) + "/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) PlainSignIn(ctx context.Context, creds models.Credentials) (string, error) {
	var message string

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&message).
		Post("/" + string(SchemePlain) + "/signin")
	if err != nil {
		return "", fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return message, nil
}

// SignIn implements [ServerAdapter]. The issued token replaces any stored
// one.
func (h *httpServerAdapter) SignIn(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	var token models.AccessToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&token).
		Post("/" + string(SchemeToken) + "/signin")
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessToken{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", creds.Name).Msg("access token stored")

	return token, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) Events(owned bool) EventsAPI {
	if owned {
		return &eventsAPI{adapter: h, path: ownedEventsPath, authed: true}
	}
	return &eventsAPI{adapter: h, path: eventsPath}
}

// eventsAPI sends record requests to one collection path.
type eventsAPI struct {
	adapter *httpServerAdapter
	path    string
	authed  bool
}

func (e *eventsAPI) request(ctx context.Context) *resty.Request {
	req := e.adapter.client.R().SetContext(ctx)
	if e.authed {
		if token := e.adapter.Token(); token != "" {
			req.SetAuthToken(token)
		}
	}
	return req
}

func (e *eventsAPI) Create(ctx context.Context, request models.CreateRecordRequest) (models.Record, error) {
	var record models.Record

	resp, err := e.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&record).
		Post(e.path)
	if err != nil {
		return models.Record{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return record, nil
}

func (e *eventsAPI) Get(ctx context.Context, id string) (models.Record, error) {
	var record models.Record

	resp, err := e.request(ctx).
		SetPathParam("id", id).
		SetResult(&record).
		Get(e.path + "/{id}")
	if err != nil {
		return models.Record{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return record, nil
}

func (e *eventsAPI) Update(ctx context.Context, id string, request models.UpdateRecordRequest) (models.Record, error) {
	var record models.Record

	resp, err := e.request(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&record).
		Patch(e.path + "/{id}")
	if err != nil {
		return models.Record{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return record, nil
}

func (e *eventsAPI) Delete(ctx context.Context, id string) error {
	resp, err := e.request(ctx).
		SetPathParam("id", id).
		Delete(e.path + "/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (e *eventsAPI) Search(ctx context.Context, term string) ([]models.Record, error) {
	records := make([]models.Record, 0)

	resp, err := e.request(ctx).
		SetQueryParam("searchTerm", term).
		SetResult(&records).
		Get(e.path)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

type traceIDKey struct{}

// WithTraceID returns a copy of ctx whose requests carry traceID in the
// X-Trace-ID header.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func traceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	traceID, ok := ctx.Value(traceIDKey{}).(string)
	return traceID, ok && traceID != ""
}
