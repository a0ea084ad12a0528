package router_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/RuleGuard/mocks"
	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/common"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/tenant"
	handlers "github.com/NeuralTrust/RuleGuard/pkg/handlers/http"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/RuleGuard/pkg/middleware"
	"github.com/NeuralTrust/RuleGuard/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, svc *mocks.Service, jwtManager *mocks.Manager) *fiber.App {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mt := &middleware.Transport{
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware: middleware.NewCORSGlobalMiddleware(
			[]string{"*"},
			[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			[]string{"Content-Type", common.ApiKeyHeader},
		),
		AuthMiddleware:      middleware.NewAuthMiddleware(logger, map[string]string{"secret": "k1"}),
		AdminAuthMiddleware: middleware.NewAdminAuthMiddleware(logger, jwtManager),
	}
	ht := &handlers.HandlerTransport{
		StatusHandler:         handlers.NewStatusHandler(),
		HealthHandler:         handlers.NewHealthHandler(),
		GetVersionHandler:     handlers.NewGetVersionHandler(),
		AddRuleHandler:        handlers.NewAddRuleHandler(logger, svc),
		UpdateRuleHandler:     handlers.NewUpdateRuleHandler(logger, svc),
		DeleteRuleHandler:     handlers.NewDeleteRuleHandler(logger, svc),
		ListRulesHandler:      handlers.NewListRulesHandler(logger, svc),
		ModerateHandler:       handlers.NewModerateHandler(logger, svc, time.Second),
		ListScopeRulesHandler: handlers.NewListScopeRulesHandler(logger, svc),
	}

	app := fiber.New()
	require.NoError(t, router.NewRuleGuardRouter(mt, ht, "").BuildRoutes(app))
	return app
}

func TestRouter_OpenRoutes(t *testing.T) {
	app := newTestApp(t, mocks.NewService(t), mocks.NewManager(t))

	for _, path := range []string{router.RootPath, router.HealthPath, router.VersionPath} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.NotEmpty(t, resp.Header.Get(common.RequestIDHeader), path)
	}
}

func TestRouter_RulesRequireApiKey(t *testing.T) {
	app := newTestApp(t, mocks.NewService(t), mocks.NewManager(t))

	req := httptest.NewRequest(http.MethodGet, "/rules/rules/alice/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRouter_PreflightSkipsAuth(t *testing.T) {
	app := newTestApp(t, mocks.NewService(t), mocks.NewManager(t))

	req := httptest.NewRequest(http.MethodOptions, "/rules/moderate/", nil)
	req.Header.Set("Origin", "https://example.com")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_ModerateBindsKeyScope(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Moderate(mock.Anything, tenant.New("alice", "k1"), "hello").
		Return(moderation.Result{Verdict: moderation.VerdictNoViolation, Reason: "fine"})
	app := newTestApp(t, svc, mocks.NewManager(t))

	body, _ := json.Marshal(map[string]string{"user_id": "alice", "text_to_moderate": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/rules/moderate/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.ApiKeyHeader, "secret")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouter_AdminRequiresBearer(t *testing.T) {
	svc := mocks.NewService(t)
	jwtManager := mocks.NewManager(t)
	app := newTestApp(t, svc, jwtManager)

	t.Run("missing token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/scopes/k1/rules", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		jwtManager.EXPECT().DecodeToken("bad").Return(nil, jwt.ErrInvalidToken).Once()
		req := httptest.NewRequest(http.MethodGet, "/admin/scopes/k1/rules", nil)
		req.Header.Set("Authorization", "Bearer bad")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		jwtManager.EXPECT().DecodeToken("good").Return(&jwt.Claims{}, nil).Once()
		svc.EXPECT().ListScopeRules(mock.Anything, "k1").
			Return([]rule.Rule{{ID: "r1", Owner: "alice", Scope: "k1"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/scopes/k1/rules", nil)
		req.Header.Set("Authorization", "Bearer good")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRouter_MissingHandlers(t *testing.T) {
	err := router.NewRuleGuardRouter(&middleware.Transport{}, &handlers.HandlerTransport{}, "").
		BuildRoutes(fiber.New())
	assert.True(t, errors.Is(err, router.ErrMissingHandler))
}
