package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/devops-info-service/internal/service/api/constants"
	"github.com/darkkaiser/devops-info-service/internal/service/api/model/response"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/labstack/echo/v4"
)

// defaultMessages 라우터가 생성한 에러처럼 메시지를 지정하지 않은 에러에 사용할 상태 코드별 메시지입니다.
var defaultMessages = map[int]string{
	http.StatusBadRequest:            constants.ErrMsgBadRequest,
	http.StatusNotFound:              constants.ErrMsgNotFound,
	http.StatusMethodNotAllowed:      constants.ErrMsgMethodNotAllowed,
	http.StatusRequestEntityTooLarge: constants.ErrMsgRequestEntityTooLarge,
	http.StatusTooManyRequests:       constants.ErrMsgTooManyRequests,
	http.StatusServiceUnavailable:    constants.ErrMsgServiceUnavailable,
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 {result_code, message} 형식의 ErrorResponse JSON으로 변환합니다.
// echo.HTTPError가 아닌 에러는 내부 정보를 노출하지 않도록 500으로 응답합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	entry := applog.WithComponentAndFields(constants.ComponentErrorHandler, fields)
	if code >= http.StatusInternalServerError {
		entry.Error(constants.LogMsgHTTPErrorResponse)
	} else {
		entry.Warn(constants.LogMsgHTTPErrorResponse)
	}

	if c.Response().Committed {
		entry.Debug(constants.LogMsgHTTPResponseWritten)
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러로부터 응답할 상태 코드와 메시지를 결정합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}

	code := he.Code
	switch msg := he.Message.(type) {
	case response.ErrorResponse:
		return code, msg.Message
	case string:
		// Echo 기본 메시지(예: "Not Found")는 한국어 메시지로 대체합니다.
		if msg != http.StatusText(code) {
			return code, msg
		}
	}

	if m, ok := defaultMessages[code]; ok {
		return code, m
	}
	if code >= http.StatusInternalServerError {
		return code, constants.ErrMsgInternalServer
	}
	return code, http.StatusText(code)
}
