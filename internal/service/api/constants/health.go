package constants

// HealthStatusHealthy 헬스체크 상태: 정상
//
// 프로세스가 요청을 처리하고 있다면 항상 이 값을 반환합니다.
const HealthStatusHealthy = "healthy"

// 정보 엔드포인트에 노출되는 고정 값입니다.
const (
	TimezoneUTC = "UTC"

	// UnknownUserAgent User-Agent 헤더가 없을 때 사용하는 값
	UnknownUserAgent = "unknown"
)

// HealthPath 헬스체크 엔드포인트 경로
const HealthPath = "/health"
