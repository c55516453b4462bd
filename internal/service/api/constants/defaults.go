package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 최대 시간
	DefaultRequestTimeout = 30 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 진행 중인 요청을 기다리는 최대 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxConnections 동시에 수락하는 최대 TCP 연결 수
	DefaultMaxConnections = 1024

	// HTTP 서버 타임아웃
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 35 * time.Second
	DefaultIdleTimeout  = 120 * time.Second

	// 클라이언트 IP별 Rate Limiter 정리 주기와 유휴 만료 시간
	DefaultRateLimiterCleanupInterval = time.Minute
	DefaultRateLimiterIdleTTL         = 3 * time.Minute
)
