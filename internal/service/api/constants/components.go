package constants

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService                 = "api.service"
	ComponentHandler                 = "api.handler"
	ComponentErrorHandler            = "api.error_handler"
	ComponentMiddlewareRateLimit     = "api.middleware.rate_limit"
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"
	ComponentMiddlewareHTTPLogger    = "api.middleware.http_logger"
)
