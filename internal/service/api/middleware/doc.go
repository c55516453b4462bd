// Package middleware Echo 프레임워크를 위한 HTTP 미들웨어를 제공합니다.
//
// 제공되는 미들웨어:
//
//   - PanicRecovery: 패닉 복구 및 에러 로깅
//   - HTTPLogger: HTTP 요청/응답 구조화 로깅 (민감 쿼리 파라미터 마스킹)
//   - RateLimiting: 클라이언트 IP 기반 요청 속도 제한 (RateLimitingWithConfig의 Skipper로 경로 제외)
//   - Logger: Echo 내부 로거를 애플리케이션 로거로 연결하는 어댑터
//
// 사용 예시:
//
//	e := echo.New()
//	e.Logger = middleware.Logger{Logger: applog.StandardLogger()}
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.RateLimiting(20, 40))
package middleware
