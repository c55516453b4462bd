package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/devops-info-service/internal/service/api/constants"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ipRateLimiter 클라이언트 IP별 Token Bucket을 관리합니다.
//
// 별도의 정리 고루틴 없이, 요청 처리 중 정리 주기가 지났으면 유휴 상태인 IP의 Limiter를 제거합니다.
type ipRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	limit rate.Limit
	burst int

	idleTTL         time.Duration
	cleanupInterval time.Duration
	lastCleanup     time.Time

	now func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		visitors:        make(map[string]*visitor),
		limit:           rate.Limit(requestsPerSecond),
		burst:           burst,
		idleTTL:         constants.DefaultRateLimiterIdleTTL,
		cleanupInterval: constants.DefaultRateLimiterCleanupInterval,
		lastCleanup:     time.Now(),
		now:             time.Now,
	}
}

// allow ip의 요청을 허용할지 여부를 반환합니다.
func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) >= l.cleanupInterval {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) >= l.idleTTL {
				delete(l.visitors, key)
			}
		}
		l.lastCleanup = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// RateLimitConfig RateLimiting 미들웨어의 설정입니다.
type RateLimitConfig struct {
	// Skipper true를 반환하는 요청은 속도 제한 없이 통과합니다. (nil: 모든 요청에 적용)
	Skipper func(c echo.Context) bool

	RequestsPerSecond int
	Burst             int
}

// RateLimiting 클라이언트 IP별 요청 속도를 제한하는 미들웨어를 반환합니다.
// 제한을 초과하면 Retry-After 헤더와 함께 429 응답을 반환합니다.
//
// requestsPerSecond 또는 burst가 0 이하이면 panic이 발생합니다.
func RateLimiting(requestsPerSecond, burst int) echo.MiddlewareFunc {
	return RateLimitingWithConfig(RateLimitConfig{RequestsPerSecond: requestsPerSecond, Burst: burst})
}

// RateLimitingWithConfig 설정값으로 RateLimiting 미들웨어를 생성합니다.
func RateLimitingWithConfig(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.RequestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, cfg.RequestsPerSecond))
	}
	if cfg.Burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, cfg.Burst))
	}

	return rateLimiting(newIPRateLimiter(cfg.RequestsPerSecond, cfg.Burst), cfg.Skipper)
}

func rateLimiting(limiter *ipRateLimiter, skipper func(c echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper != nil && skipper(c) {
				return next(c)
			}

			ip := c.RealIP()

			if !limiter.allow(ip) {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set("Retry-After", "1")

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
