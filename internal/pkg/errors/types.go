package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류
	Internal

	// System 실행 환경 오류 (파일, 소켓, 키링 등)
	System

	// Unauthorized 인증 실패 (API 토큰 누락, 거부)
	Unauthorized

	// InvalidInput 잘못된 입력값
	InvalidInput

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed 외부 엔진 호출 실패
	ExecutionFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 일시적 사용 불가
	Unavailable
)
