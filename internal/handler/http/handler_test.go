package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/mock"
	"github.com/MKhiriev/thingsfree/internal/service"
	"github.com/MKhiriev/thingsfree/internal/validators"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type handlerMocks struct {
	verification *mock.MockVerificationService
	users        *mock.MockUserService
	resolver     *mock.MockCredentialResolver
	tokens       *mock.MockTokenService
	social       *mock.MockSocialService
	following    *mock.MockFollowingService
	appInfo      *mock.MockAppInfoService
}

// newTestHandler builds a Handler over gomock services and the real
// request validator.
func newTestHandler(t *testing.T) (*Handler, *handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &handlerMocks{
		verification: mock.NewMockVerificationService(ctrl),
		users:        mock.NewMockUserService(ctrl),
		resolver:     mock.NewMockCredentialResolver(ctrl),
		tokens:       mock.NewMockTokenService(ctrl),
		social:       mock.NewMockSocialService(ctrl),
		following:    mock.NewMockFollowingService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	v, err := validators.NewRequestValidator()
	require.NoError(t, err)

	h := NewHandler(&service.Services{
		VerificationService: m.verification,
		UserService:         m.users,
		CredentialResolver:  m.resolver,
		TokenService:        m.tokens,
		SocialService:       m.social,
		FollowingService:    m.following,
		AppInfoService:      m.appInfo,
	}, v, logger.Nop())

	return h, m
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

type testEnvelope struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	// the HTTP code is always the first three digits of the status
	assert.Equal(t, env.Status/1000, rr.Code)
	return env
}

func decodeBody[T any](t *testing.T, env testEnvelope) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(env.Body, &body))
	return body
}

// serve sends a request through the full router.
func serve(h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

const testAccessToken = "access-token"

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testAccessToken}
}

// expectAuthenticated makes testAccessToken resolve to userID.
func expectAuthenticated(m *handlerMocks, userID uuid.UUID) {
	m.tokens.EXPECT().
		ParseAccessToken(gomock.Any(), testAccessToken).
		Return(&models.Claims{TokenType: models.AccessTokenType, UserID: userID.String()}, nil).
		AnyTimes()
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	v, err := validators.NewRequestValidator()
	require.NoError(t, err)
	log := logger.Nop()

	h := NewHandler(svcs, v, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, v, h.validator)
	assert.Same(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_UnknownRouteReturns404000(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/v1/nonexistent/", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, StatusNotFound, decodeEnvelope(t, rr).Status)
}

func TestInit_WrongMethodReturns405000(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/v1/phone/register/", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, StatusMethodNotAllowed, decodeEnvelope(t, rr).Status)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
}

func TestInit_TrailingSlashIsOptional(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{Version: "1.0.0"}).Times(2)

	for _, target := range []string{"/api/v1/version/", "/api/v1/version"} {
		rr := serve(h, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusOK, rr.Code, target)
	}
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestHandler(t)
	userID := uuid.NewString()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/phone/bind/"},
		{http.MethodPost, "/api/v1/users/" + userID + "/follow/"},
		{http.MethodPost, "/api/v1/users/" + userID + "/unfollow/"},
		{http.MethodGet, "/api/v1/users/me/"},
		{http.MethodGet, "/api/v1/users/me/followers/"},
		{http.MethodGet, "/api/v1/users/me/following/"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := serve(h, tc.method, tc.path, "{}", nil)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, StatusNotAuthenticated, decodeEnvelope(t, rr).Status)
		})
	}
}

func TestInit_ResponseHasTraceID(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/v1/nonexistent/", "", map[string]string{traceIDHeader: "trace-1"})

	assert.Equal(t, "trace-1", rr.Header().Get(traceIDHeader))
}

func TestInit_CompressesResponses(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{Version: "1.0.0"})

	rr := serve(h, http.MethodGet, "/api/v1/version/", "", map[string]string{"Accept-Encoding": "gzip"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}
