package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgHTTPServerListening     = "API 서비스 > http 서버 대기 시작"
	LogMsgHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgHTTPServerFatalError    = "API 서비스 > http 서버 실행 중 치명적인 오류가 발생하였습니다"

	LogMsgHTTPRequest         = "HTTP 요청"
	LogMsgPanicRecovered      = "PANIC 복구됨"
	LogMsgRateLimitExceeded   = "요청 속도 제한 초과"
	LogMsgHTTPErrorResponse   = "HTTP 에러 응답"
	LogMsgHTTPResponseWritten = "HTTP 에러 응답 전송 생략 (이미 응답이 전송됨)"
)
