package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/devops-info-service/internal/service/api/constants"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize 패닉 스택 트레이스를 담을 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic을 복구하여 500 응답으로 변환하는 미들웨어를 반환합니다.
// 스택 트레이스는 로그에만 남기고 클라이언트에는 노출하지 않습니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err := newErrPanicRecovered(r)

				stack := make([]byte, stackBufferSize)
				stack = stack[:runtime.Stack(stack, false)]

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, applog.Fields{
					"error":      err,
					"path":       c.Request().URL.Path,
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"stack":      string(stack),
				}).Error(constants.LogMsgPanicRecovered)

				returnErr = err
			}()

			return next(c)
		}
	}
}
