package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/devops-info-service/internal/service/api/constants"
	"github.com/darkkaiser/devops-info-service/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/devops-info-service/internal/service/api/middleware"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RateLimitPerSecond, RateLimitBurst 클라이언트 IP별 요청 속도 제한
	RateLimitPerSecond int
	RateLimitBurst     int

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0: 기본값 30초)
	RequestTimeout time.Duration
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다.
//
// 미들웨어 적용 순서:
//
//  1. PanicRecovery: 이후 모든 미들웨어와 핸들러의 panic을 복구합니다.
//  2. RequestID: 로그에 request_id가 포함되도록 로깅보다 먼저 적용합니다.
//  3. Server 헤더 제거
//  4. HTTPLogger: 429/503 응답도 기록되도록 RateLimit/Timeout보다 먼저 적용합니다.
//  5. RateLimiting: 헬스체크 경로는 제외합니다.
//  6. BodyLimit
//  7. Timeout
//  8. CORS
//  9. Secure
//
// 라우트는 포함되지 않으며 RegisterRoutes로 별도 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// 클라이언트가 보낸 X-Forwarded-For, X-Real-IP는 신뢰하지 않고 접속 주소만 사용합니다.
	e.IPExtractor = echo.ExtractIPDirect()

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimitingWithConfig(appmiddleware.RateLimitConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == constants.HealthPath
		},
		RequestsPerSecond: cfg.RateLimitPerSecond,
		Burst:             cfg.RateLimitBurst,
	}))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet},
	}))
	e.Use(middleware.Secure())

	return e
}
