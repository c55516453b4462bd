package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/devops-info-service/internal/service/api/constants"
	"github.com/darkkaiser/devops-info-service/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLogger(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		userAgent      string
		handler        echo.HandlerFunc
		expectedStatus int
		expectedURI    string
	}{
		{
			name:      "성공: 기본 GET 요청",
			target:    "/health",
			userAgent: "curl/8.5.0",
			handler: func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			expectedURI:    "/health",
		},
		{
			name:   "성공: 민감한 쿼리 파라미터 마스킹",
			target: "/?token=hcloud-token-abcd&page=1",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			expectedStatus: http.StatusOK,
			expectedURI:    "/?page=1&token=hclo%2A%2A%2Aabcd",
		},
		{
			name:   "실패: 핸들러 에러는 실제 응답 코드로 기록",
			target: "/missing",
			handler: func(c echo.Context) error {
				return echo.ErrNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedURI:    "/missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			e := echo.New()
			e.HTTPErrorHandler = httputil.ErrorHandler

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.userAgent != "" {
				req.Header.Set("User-Agent", tt.userAgent)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := HTTPLogger()(tt.handler)(c)
			require.NoError(t, err, "에러는 미들웨어 내부에서 처리되어야 합니다")
			assert.Equal(t, tt.expectedStatus, rec.Code)

			entry := lastLogEntry(t, buf)
			assert.Equal(t, constants.LogMsgHTTPRequest, entry["msg"])
			assert.Equal(t, constants.ComponentMiddlewareHTTPLogger, entry["component"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, tt.expectedURI, entry["uri"])
			assert.EqualValues(t, tt.expectedStatus, entry["status"])
			if tt.userAgent != "" {
				assert.Equal(t, tt.userAgent, entry["user_agent"])
			}
		})
	}
}

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"쿼리 없음", "/health", "/health"},
		{"민감하지 않은 파라미터", "/?page=1", "/?page=1"},
		{"짧은 비밀번호", "/?password=abc", "/?password=%2A%2A%2A"},
		{"api_key", "/?api_key=secret123", "/?api_key=secr%2A%2A%2A"},
		{"파싱 불가 URI", "::not-a-uri", "::not-a-uri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.uri))
		})
	}
}
