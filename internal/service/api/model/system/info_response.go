package system

// InfoResponse 서비스 정보 응답
//
// 요청마다 새로 생성되며, Service/Endpoints 섹션은 프로세스 수명 동안 변하지 않습니다.
type InfoResponse struct {
	Service   ServiceInfo    `json:"service"`
	System    SystemInfo     `json:"system"`
	Runtime   RuntimeInfo    `json:"runtime"`
	Request   RequestInfo    `json:"request"`
	Endpoints []EndpointInfo `json:"endpoints"`
}

// ServiceInfo 서비스 메타데이터
type ServiceInfo struct {
	Name        string `json:"name" example:"devops-info-service"`
	Version     string `json:"version" example:"1.0.0"`
	Description string `json:"description" example:"DevOps course info service"`
	Framework   string `json:"framework" example:"Echo"`
}

// SystemInfo 호스트 정보
type SystemInfo struct {
	Hostname        string `json:"hostname" example:"devops-vm"`
	Platform        string `json:"platform" example:"Linux"`
	PlatformVersion string `json:"platform_version" example:"6.8.0-45-generic"`
	Architecture    string `json:"architecture" example:"x86_64"`
	CPUCount        int    `json:"cpu_count" example:"2"`
	GoVersion       string `json:"go_version" example:"go1.25.1"`
}

// RuntimeInfo 가동 시간과 현재 시각
type RuntimeInfo struct {
	UptimeSeconds int64  `json:"uptime_seconds" example:"3723"`
	UptimeHuman   string `json:"uptime_human" example:"1 hours, 2 minutes"`
	CurrentTime   string `json:"current_time" example:"2026-01-01T12:00:00.000000Z"`
	Timezone      string `json:"timezone" example:"UTC"`
}

// RequestInfo 현재 요청의 정보
type RequestInfo struct {
	ClientIP  string `json:"client_ip" example:"127.0.0.1"`
	UserAgent string `json:"user_agent" example:"curl/8.5.0"`
	Method    string `json:"method" example:"GET"`
	Path      string `json:"path" example:"/"`
}

// EndpointInfo 제공되는 엔드포인트 정보
type EndpointInfo struct {
	Path        string `json:"path" example:"/health"`
	Method      string `json:"method" example:"GET"`
	Description string `json:"description" example:"Health check"`
}
