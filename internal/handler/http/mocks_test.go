package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-event-keeper/internal/config"
	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/internal/service"
	"github.com/MKhiriev/go-event-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements one service interface through per-test function
// fields. A field left nil panics when called, which fails the test.

type mockAuthService struct {
	signUpFn func(ctx context.Context, creds models.Credentials) error
	signInFn func(ctx context.Context, creds models.Credentials) (string, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, creds models.Credentials) error {
	return m.signUpFn(ctx, creds)
}

func (m *mockAuthService) SignIn(ctx context.Context, creds models.Credentials) (string, error) {
	return m.signInFn(ctx, creds)
}

type mockTokenAuthService struct {
	signUpFn       func(ctx context.Context, creds models.Credentials) error
	signInFn       func(ctx context.Context, creds models.Credentials) (models.AccessToken, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.Caller, error)
}

func (m *mockTokenAuthService) SignUp(ctx context.Context, creds models.Credentials) error {
	return m.signUpFn(ctx, creds)
}

func (m *mockTokenAuthService) SignIn(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	return m.signInFn(ctx, creds)
}

func (m *mockTokenAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockTokenAuthService) Authenticate(ctx context.Context, tokenString string) (models.Caller, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockEventService struct {
	createFn func(ctx context.Context, request models.CreateRecordRequest) (models.Record, error)
	getFn    func(ctx context.Context, id string) (models.Record, error)
	updateFn func(ctx context.Context, id string, request models.UpdateRecordRequest) (models.Record, error)
	deleteFn func(ctx context.Context, id string) error
	searchFn func(ctx context.Context, term string) ([]models.Record, error)
}

func (m *mockEventService) Create(ctx context.Context, request models.CreateRecordRequest) (models.Record, error) {
	return m.createFn(ctx, request)
}

func (m *mockEventService) Get(ctx context.Context, id string) (models.Record, error) {
	return m.getFn(ctx, id)
}

func (m *mockEventService) Update(ctx context.Context, id string, request models.UpdateRecordRequest) (models.Record, error) {
	return m.updateFn(ctx, id, request)
}

func (m *mockEventService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockEventService) Search(ctx context.Context, term string) ([]models.Record, error) {
	return m.searchFn(ctx, term)
}

type mockOwnedEventService struct {
	createFn func(ctx context.Context, caller models.Caller, request models.CreateRecordRequest) (models.Record, error)
	getFn    func(ctx context.Context, caller models.Caller, id string) (models.Record, error)
	updateFn func(ctx context.Context, caller models.Caller, id string, request models.UpdateRecordRequest) (models.Record, error)
	deleteFn func(ctx context.Context, caller models.Caller, id string) error
	searchFn func(ctx context.Context, caller models.Caller, term string) ([]models.Record, error)
}

func (m *mockOwnedEventService) Create(ctx context.Context, caller models.Caller, request models.CreateRecordRequest) (models.Record, error) {
	return m.createFn(ctx, caller, request)
}

func (m *mockOwnedEventService) Get(ctx context.Context, caller models.Caller, id string) (models.Record, error) {
	return m.getFn(ctx, caller, id)
}

func (m *mockOwnedEventService) Update(ctx context.Context, caller models.Caller, id string, request models.UpdateRecordRequest) (models.Record, error) {
	return m.updateFn(ctx, caller, id, request)
}

func (m *mockOwnedEventService) Delete(ctx context.Context, caller models.Caller, id string) error {
	return m.deleteFn(ctx, caller, id)
}

func (m *mockOwnedEventService) Search(ctx context.Context, caller models.Caller, term string) ([]models.Record, error) {
	return m.searchFn(ctx, caller, term)
}

type mockAppInfoService struct {
	info models.AppInfo
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return m.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testConfig disables rate limiting so that table tests can hit the
// credential endpoints repeatedly.
func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

// newTestRouter wires svcs into a full router. Services left nil are
// replaced with empty mocks.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return newTestHandlerWithConfig(t, svcs, testConfig()).Init()
}

func newTestHandlerWithConfig(t *testing.T, svcs *service.Services, cfg config.StructuredConfig) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.TokenAuthService == nil {
		svcs.TokenAuthService = &mockTokenAuthService{}
	}
	if svcs.EventService == nil {
		svcs.EventService = &mockEventService{}
	}
	if svcs.OwnedEventService == nil {
		svcs.OwnedEventService = &mockOwnedEventService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{}
	}

	return NewHandler(svcs, cfg, logger.Nop())
}

// serve sends one request through router. body is marshalled to JSON unless
// it is a string, which is sent verbatim.
func serve(t *testing.T, router http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

func decodeValidationError(t *testing.T, rec *httptest.ResponseRecorder) models.ValidationErrorResponse {
	t.Helper()
	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func strPtr(s string) *string { return &s }

var fixedTime = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

func sampleRecord(id string) models.Record {
	return models.Record{
		ID:          id,
		Title:       "Standup",
		Description: "daily sync",
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}
}
