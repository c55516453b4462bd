package system

// VersionResponse 서버 빌드 정보 응답
type VersionResponse struct {
	// 애플리케이션 버전
	Version string `json:"version" example:"v1.0.0"`
	// Git 커밋 해시
	Commit string `json:"commit" example:"f25b8bf"`
	// 빌드 시간(UTC, RFC3339)
	BuildDate string `json:"build_date" example:"2026-01-01T14:00:00Z"`
	// 컴파일러 버전
	GoVersion string `json:"go_version" example:"go1.25.1"`
	// 빌드 대상 OS/아키텍처
	Platform string `json:"platform" example:"linux/amd64"`
}
