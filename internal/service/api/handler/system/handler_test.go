package system

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/devops-info-service/internal/config"
	"github.com/darkkaiser/devops-info-service/internal/pkg/sysinfo"
	"github.com/darkkaiser/devops-info-service/internal/pkg/version"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var (
	testStartTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	testFacts = sysinfo.Facts{
		Hostname:        "test-host",
		Platform:        "Linux",
		PlatformVersion: "6.8.0-45-generic",
		Architecture:    "x86_64",
		CPUCount:        4,
		GoVersion:       "go1.25.1",
	}

	testServiceConfig = config.ServiceConfig{
		Name:        "devops-info-service",
		Version:     "1.0.0",
		Description: "DevOps course info service",
		Framework:   "Echo",
	}
)

// newTestHandler 고정된 시각과 호스트 정보를 사용하는 Handler를 생성합니다.
func newTestHandler(elapsed time.Duration) *Handler {
	h := NewHandler(testServiceConfig, sysinfo.StaticInspector{Facts: testFacts}, version.Info{
		Version:   "v1.2.0",
		Commit:    "f25b8bf",
		BuildDate: "2026-01-01T00:00:00Z",
		GoVersion: "go1.25.1",
		OS:        "linux",
		Arch:      "amd64",
	}, testStartTime)
	h.now = func() time.Time { return testStartTime.Add(elapsed) }
	return h
}

func serve(t *testing.T, handler echo.HandlerFunc, req *http.Request) gjson.Result {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gjson.Valid(rec.Body.String()))

	return gjson.Parse(rec.Body.String())
}

// =============================================================================
// Info
// =============================================================================

func TestInfoHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(time.Hour + 2*time.Minute + 3*time.Second)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "CustomBot/1.0")
	req.RemoteAddr = "203.0.113.7:54321"

	body := serve(t, h.InfoHandler, req)

	t.Run("service", func(t *testing.T) {
		assert.Equal(t, "devops-info-service", body.Get("service.name").String())
		assert.Equal(t, "1.0.0", body.Get("service.version").String())
		assert.Equal(t, "DevOps course info service", body.Get("service.description").String())
		assert.Equal(t, "Echo", body.Get("service.framework").String())
	})

	t.Run("system", func(t *testing.T) {
		assert.Equal(t, "test-host", body.Get("system.hostname").String())
		assert.Equal(t, "Linux", body.Get("system.platform").String())
		assert.Equal(t, "6.8.0-45-generic", body.Get("system.platform_version").String())
		assert.Equal(t, "x86_64", body.Get("system.architecture").String())
		assert.Equal(t, int64(4), body.Get("system.cpu_count").Int())
		assert.Equal(t, "go1.25.1", body.Get("system.go_version").String())
	})

	t.Run("runtime", func(t *testing.T) {
		assert.Equal(t, int64(3723), body.Get("runtime.uptime_seconds").Int())
		assert.Equal(t, "1 hours, 2 minutes", body.Get("runtime.uptime_human").String())
		assert.Equal(t, "UTC", body.Get("runtime.timezone").String())

		ts, err := time.Parse(time.RFC3339Nano, body.Get("runtime.current_time").String())
		require.NoError(t, err)
		assert.Equal(t, time.UTC, ts.Location())
		assert.True(t, ts.Equal(testStartTime.Add(3723*time.Second)))
	})

	t.Run("request", func(t *testing.T) {
		assert.Equal(t, "203.0.113.7", body.Get("request.client_ip").String())
		assert.Equal(t, "CustomBot/1.0", body.Get("request.user_agent").String())
		assert.Equal(t, http.MethodGet, body.Get("request.method").String())
		assert.Equal(t, "/", body.Get("request.path").String())
	})

	t.Run("endpoints", func(t *testing.T) {
		endpoints := body.Get("endpoints").Array()
		require.GreaterOrEqual(t, len(endpoints), 2)

		paths := body.Get("endpoints.#.path").Array()
		var got []string
		for _, p := range paths {
			got = append(got, p.String())
		}
		assert.Contains(t, got, "/")
		assert.Contains(t, got, "/health")
		assert.Equal(t, "GET", body.Get(`endpoints.#(path=="/health").method`).String())
	})
}

func TestInfoHandler_DefaultUserAgent(t *testing.T) {
	t.Parallel()

	h := newTestHandler(0)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Del("User-Agent")

	body := serve(t, h.InfoHandler, req)

	assert.Equal(t, "unknown", body.Get("request.user_agent").String())
	assert.Equal(t, "0 hours, 0 minutes", body.Get("runtime.uptime_human").String())
}

func TestInfoHandler_StableSections(t *testing.T) {
	t.Parallel()

	h := NewHandler(testServiceConfig, sysinfo.StaticInspector{Facts: testFacts}, version.Info{}, time.Now())

	first := serve(t, h.InfoHandler, httptest.NewRequest(http.MethodGet, "/", nil))
	time.Sleep(100 * time.Millisecond)
	second := serve(t, h.InfoHandler, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, first.Get("service").Raw, second.Get("service").Raw, "service 섹션은 호출 간에 동일해야 합니다")
	assert.Equal(t, first.Get("endpoints").Raw, second.Get("endpoints").Raw, "endpoints 섹션은 호출 간에 동일해야 합니다")
	assert.GreaterOrEqual(t, second.Get("runtime.uptime_seconds").Int(), first.Get("runtime.uptime_seconds").Int())
}

func TestInfoHandler_ReadsInspectorPerRequest(t *testing.T) {
	t.Parallel()

	insp := &countingInspector{}
	h := NewHandler(testServiceConfig, insp, version.Info{}, time.Now())

	serve(t, h.InfoHandler, httptest.NewRequest(http.MethodGet, "/", nil))
	serve(t, h.InfoHandler, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 2, insp.calls)
}

type countingInspector struct {
	calls int
}

func (c *countingInspector) Inspect() sysinfo.Facts {
	c.calls++
	return testFacts
}

// =============================================================================
// Health & Version
// =============================================================================

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		elapsed        time.Duration
		expectedUptime int64
	}{
		{"시작 직후", 0, 0},
		{"1.9초 경과는 1초로 내림", 1900 * time.Millisecond, 1},
		{"하루 경과", 24 * time.Hour, 86400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(tt.elapsed)
			body := serve(t, h.HealthHandler, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, "healthy", body.Get("status").String())
			assert.Equal(t, tt.expectedUptime, body.Get("uptime_seconds").Int())

			ts, err := time.Parse(time.RFC3339Nano, body.Get("timestamp").String())
			require.NoError(t, err)
			assert.True(t, ts.Equal(testStartTime.Add(tt.elapsed)))
		})
	}
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(0)
	body := serve(t, h.VersionHandler, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, "v1.2.0", body.Get("version").String())
	assert.Equal(t, "f25b8bf", body.Get("commit").String())
	assert.Equal(t, "linux/amd64", body.Get("platform").String())
}

func TestNewHandler_PanicsWithoutInspector(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewHandler(testServiceConfig, nil, version.Info{}, time.Now())
	})
}
