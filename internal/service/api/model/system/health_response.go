package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 헬스체크 상태 (항상 healthy)
	Status string `json:"status" example:"healthy"`
	// 응답 생성 시각 (UTC, RFC3339)
	Timestamp string `json:"timestamp" example:"2026-01-01T12:00:00.000000Z"`
	// 서버 가동 시간(초)
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
}
