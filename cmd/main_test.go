package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "Version: v1.0.0") ||
		!contains(output, "Commit: abcd1234") ||
		!contains(output, "Build: 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	// Application
	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)

	// PostgreSQL
	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "user", cfg.PGUser)
	assert.Equal(t, "password", cfg.PGPassword)
	assert.Equal(t, "database", cfg.PGDB)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	// Redis
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.RedisPassword)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)
	assert.Equal(t, 600, cfg.RedisExpSecond)

	// Kafka
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "book-activity", cfg.KafkaTopic)

	// JWT
	assert.Equal(t, "my_super_secret_key", cfg.JWTSecretKey)
	assert.Equal(t, 604800, cfg.JWTExpSecond)

	// Catalog and HTTP
	assert.Equal(t, "https://www.googleapis.com/books/v1/volumes", cfg.GoogleBooksURL)
	assert.Empty(t, cfg.GoogleBooksAPIKey)
	assert.Equal(t, 5.0, cfg.GoogleBooksRPS)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, 60, cfg.RateLimitWindowSecond)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("REDIS_EXP_SECOND", "120")

	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	os.Setenv("KAFKA_TOPIC", "shelf-events")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	os.Setenv("GOOGLE_BOOKS_URL", "http://books.local/volumes")
	os.Setenv("GOOGLE_BOOKS_API_KEY", "key")
	os.Setenv("GOOGLE_BOOKS_RPS", "2.5")

	os.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	os.Setenv("RATE_LIMIT_REQUESTS", "10")
	os.Setenv("RATE_LIMIT_WINDOW_SECOND", "1")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, config{
		AppHost:               "127.0.0.1",
		AppPort:               "9090",
		LogLevel:              "debug",
		PGHost:                "pg.example.com",
		PGPort:                5433,
		PGUser:                "admin",
		PGPassword:            "secret",
		PGDB:                  "mydb",
		PGMaxOpenConns:        20,
		PGMaxIdleConns:        10,
		RedisHost:             "redis.example.com",
		RedisPort:             6380,
		RedisDB:               2,
		RedisPassword:         "redispass",
		RedisPoolSize:         15,
		RedisMinIdleConns:     5,
		RedisExpSecond:        120,
		KafkaBrokers:          []string{"kafka-1:9092", "kafka-2:9092"},
		KafkaTopic:            "shelf-events",
		JWTSecretKey:          "supersecret",
		JWTExpSecond:          300,
		GoogleBooksURL:        "http://books.local/volumes",
		GoogleBooksAPIKey:     "key",
		GoogleBooksRPS:        2.5,
		CORSAllowedOrigins:    []string{"https://a.example.com", "https://b.example.com"},
		RateLimitRequests:     10,
		RateLimitWindowSecond: 1,
	}, cfg)
}

func TestParseConfig_InvalidInteger(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func TestNewKafkaWriter(t *testing.T) {
	w := newKafkaWriter(config{KafkaBrokers: []string{"kafka-1:9092", "kafka-2:9092"}, KafkaTopic: "book-activity"})
	defer w.Close()

	assert.Equal(t, "book-activity", w.Topic)
	assert.Contains(t, w.Addr.String(), "kafka-1:9092")
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.Less(t, w.BatchTimeout, 100*time.Millisecond)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
}

// ------------------ Router wiring ------------------

func newTestRouter(t *testing.T, rateLimit int) http.Handler {
	t.Helper()

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { rdb.Close() })

	cfg := config{
		AppHost:               "localhost",
		AppPort:               "8080",
		RedisExpSecond:        60,
		KafkaTopic:            "book-activity",
		JWTSecretKey:          "testsecret",
		JWTExpSecond:          60,
		GoogleBooksURL:        "http://127.0.0.1:0/volumes",
		GoogleBooksRPS:        5,
		CORSAllowedOrigins:    []string{"http://localhost:3000"},
		RateLimitRequests:     rateLimit,
		RateLimitWindowSecond: 60,
	}
	return newRouter(cfg, sqlx.NewDb(mockDB, "sqlmock"), rdb, nil, prometheus.NewRegistry())
}

func TestNewRouter(t *testing.T) {
	router := newTestRouter(t, 1000)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, target: "/metrics", wantStatus: http.StatusOK},
		{name: "swagger doc", method: http.MethodGet, target: "/swagger/doc.json", wantStatus: http.StatusOK},
		{name: "profile needs token", method: http.MethodGet, target: "/api/auth", wantStatus: http.StatusUnauthorized},
		{name: "booklist needs token", method: http.MethodGet, target: "/api/booklist", wantStatus: http.StatusUnauthorized},
		{name: "delete list needs token", method: http.MethodPost, target: "/api/booklist/delete", wantStatus: http.StatusUnauthorized},
		{name: "comment post needs token", method: http.MethodPost, target: "/api/comments", wantStatus: http.StatusUnauthorized},
		{name: "recommendations need token", method: http.MethodGet, target: "/api/books/recommendations", wantStatus: http.StatusUnauthorized},
		{name: "unsupported auth method", method: http.MethodPatch, target: "/api/auth", wantStatus: http.StatusMethodNotAllowed},
		{name: "unsupported ratings method", method: http.MethodDelete, target: "/api/ratings", wantStatus: http.StatusMethodNotAllowed},
		{name: "rating without book id", method: http.MethodGet, target: "/api/ratings", wantStatus: http.StatusBadRequest},
		{name: "comments without book id", method: http.MethodGet, target: "/api/comments", wantStatus: http.StatusBadRequest},
		{name: "search without term", method: http.MethodGet, target: "/api/books/search", wantStatus: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, target: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, 1000)

	req := httptest.NewRequest(http.MethodOptions, "/api/booklist", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_RateLimit(t *testing.T) {
	router := newTestRouter(t, 2)

	var codes []int
	for range 3 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cfg := config{
		AppHost:               "127.0.0.1",
		AppPort:               "8086",
		LogLevel:              "debug",
		PGHost:                pgHost,
		PGPort:                pgPort.Int(),
		PGUser:                "user",
		PGPassword:            "password",
		PGDB:                  "testdb",
		PGMaxOpenConns:        5,
		PGMaxIdleConns:        2,
		RedisHost:             redisHost,
		RedisPort:             redisPort.Int(),
		RedisPoolSize:         10,
		RedisMinIdleConns:     2,
		RedisExpSecond:        60,
		KafkaTopic:            "book-activity",
		JWTSecretKey:          "testsecret",
		JWTExpSecond:          60,
		GoogleBooksURL:        "http://127.0.0.1:0/volumes",
		GoogleBooksRPS:        5,
		CORSAllowedOrigins:    []string{"http://localhost:3000"},
		RateLimitRequests:     100,
		RateLimitWindowSecond: 60,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	// The server answers health checks while running.
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:8086/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 100*time.Millisecond)

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
