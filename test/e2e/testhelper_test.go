package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/proximity-api/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/proximity-api/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/auth"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/config"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/database"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/server"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/geo"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/place"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	testRateLimit  = 1000
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Redis      *miniredis.Miniredis
	JWT        *auth.JWTService
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	logger := zap.NewNop()

	placeRepo := pgRepo.NewPlaceRepo(pool)
	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)

	placeSvc := place.NewService(placeRepo, place.Options{
		DefaultNearbyLimit:  20,
		MaxNearbyLimit:      50,
		MaxSearchDistanceKM: 500,
	})
	geoSvc := geo.NewService()

	router := server.NewRouter(server.RouterConfig{
		PlaceHandler:   handler.NewPlaceHandler(placeSvc, valueobject.Miles),
		GeoHandler:     handler.NewGeoHandler(geoSvc, valueobject.Miles),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		RateLimiter: middleware.NewRateLimiter(redisClient, config.RateLimitConfig{
			Enabled:        true,
			RequestsPerMin: testRateLimit,
			Window:         time.Minute,
		}, logger),
		Logger:      logger,
		Environment: "test",
	})

	ts := httptest.NewServer(router.Engine())

	app := &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Redis:     mr,
		JWT:       jwtSvc,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	t.Cleanup(func() { app.cleanup(t) })

	return app
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	if err := app.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) token(t *testing.T, client string) string {
	t.Helper()
	token, _, err := app.JWT.GenerateAccessToken(client)
	require.NoError(t, err)
	return token
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "migrations")
}
