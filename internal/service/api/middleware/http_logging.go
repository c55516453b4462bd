package middleware

import (
	"net/url"
	"time"

	"github.com/darkkaiser/devops-info-service/internal/service/api/constants"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/darkkaiser/devops-info-service/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// HTTPLogger 요청마다 한 줄의 구조화된 접근 로그를 남기는 미들웨어를 반환합니다.
//
// 핸들러가 반환한 에러는 여기서 c.Error()로 먼저 처리하여, 로그에 실제 응답 상태 코드가 기록되도록 합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)

			applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
				"method":        req.Method,
				"uri":           maskSensitiveQueryParams(req.RequestURI),
				"host":          req.Host,
				"protocol":      req.Proto,
				"remote_ip":     c.RealIP(),
				"user_agent":    req.UserAgent(),
				"status":        res.Status,
				"bytes_in":      req.ContentLength,
				"bytes_out":     res.Size,
				"latency_us":    latency.Microseconds(),
				"latency_human": latency.String(),
				"request_id":    res.Header().Get(echo.HeaderXRequestID),
			}).Info(constants.LogMsgHTTPRequest)

			return nil
		}
	}
}

// maskSensitiveQueryParams URI에 포함된 민감한 쿼리 파라미터 값을 가립니다.
// 파싱할 수 없는 URI는 그대로 반환합니다.
//
//	"/?token=hcloud-token-abcd&x=1" -> "/?token=hclo%2A%2A%2Aabcd&x=1"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.ParseRequestURI(uri)
	if err != nil || u.RawQuery == "" {
		return uri
	}

	q := u.Query()
	masked := false
	for _, key := range constants.SensitiveQueryParams {
		if q.Has(key) {
			q.Set(key, strutil.Mask(q.Get(key)))
			masked = true
		}
	}
	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
