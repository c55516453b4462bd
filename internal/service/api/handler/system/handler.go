// Package system 서비스 정보, 헬스체크, 버전 정보 엔드포인트 핸들러를 제공합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/devops-info-service/internal/config"
	"github.com/darkkaiser/devops-info-service/internal/pkg/sysinfo"
	"github.com/darkkaiser/devops-info-service/internal/pkg/uptime"
	"github.com/darkkaiser/devops-info-service/internal/pkg/version"
	"github.com/darkkaiser/devops-info-service/internal/service/api/constants"
	"github.com/darkkaiser/devops-info-service/internal/service/api/model/system"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러
//
// 생성 이후 모든 필드는 읽기 전용이므로 여러 요청이 동시에 호출해도 안전합니다.
type Handler struct {
	service   system.ServiceInfo
	endpoints []system.EndpointInfo

	inspector sysinfo.Inspector
	buildInfo version.Info

	startTime time.Time
	now       func() time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
//
// startTime은 프로세스 시작 시 한 번 기록된 시각이며 가동 시간 계산의 기준이 됩니다.
func NewHandler(svc config.ServiceConfig, inspector sysinfo.Inspector, buildInfo version.Info, startTime time.Time) *Handler {
	if inspector == nil {
		panic(constants.PanicMsgInspectorRequired)
	}

	return &Handler{
		service: system.ServiceInfo{
			Name:        svc.Name,
			Version:     svc.Version,
			Description: svc.Description,
			Framework:   svc.Framework,
		},
		endpoints: []system.EndpointInfo{
			{Path: "/", Method: http.MethodGet, Description: "Service information"},
			{Path: "/health", Method: http.MethodGet, Description: "Health check"},
			{Path: "/version", Method: http.MethodGet, Description: "Build information"},
		},

		inspector: inspector,
		buildInfo: buildInfo,

		startTime: startTime,
		now:       time.Now,
	}
}

// InfoHandler godoc
// @Summary 서비스 정보
// @Description 서비스 메타데이터, 호스트 정보, 가동 시간, 현재 요청 정보, 제공 엔드포인트 목록을 반환합니다.
// @Description
// @Description - service, endpoints: 프로세스 수명 동안 변하지 않습니다.
// @Description - system: 요청마다 호스트에서 다시 읽습니다.
// @Description - runtime.uptime_seconds: 호출할 때마다 감소하지 않습니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.InfoResponse "서비스 정보"
// @Failure 405 {object} response.ErrorResponse "허용되지 않은 메서드"
// @Router / [get]
func (h *Handler) InfoHandler(c echo.Context) error {
	now := h.now()
	up := uptime.Compute(h.startTime, now)
	facts := h.inspector.Inspect()
	req := c.Request()

	userAgent := req.UserAgent()
	if userAgent == "" {
		userAgent = constants.UnknownUserAgent
	}

	return c.JSON(http.StatusOK, system.InfoResponse{
		Service: h.service,
		System: system.SystemInfo{
			Hostname:        facts.Hostname,
			Platform:        facts.Platform,
			PlatformVersion: facts.PlatformVersion,
			Architecture:    facts.Architecture,
			CPUCount:        facts.CPUCount,
			GoVersion:       facts.GoVersion,
		},
		Runtime: system.RuntimeInfo{
			UptimeSeconds: up.Seconds,
			UptimeHuman:   up.Human,
			CurrentTime:   formatTimestamp(now),
			Timezone:      constants.TimezoneUTC,
		},
		Request: system.RequestInfo{
			ClientIP:  c.RealIP(),
			UserAgent: userAgent,
			Method:    req.Method,
			Path:      req.URL.Path,
		},
		Endpoints: h.endpoints,
	})
}

// HealthHandler godoc
// @Summary 서버 헬스체크
// @Description 프로세스가 요청을 처리할 수 있으면 항상 healthy를 반환합니다.
// @Description 오케스트레이터의 liveness/readiness probe에서 사용합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Failure 405 {object} response.ErrorResponse "허용되지 않은 메서드"
// @Router /health [get]
func (h *Handler) HealthHandler(c echo.Context) error {
	now := h.now()

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:        constants.HealthStatusHealthy,
		Timestamp:     formatTimestamp(now),
		UptimeSeconds: uptime.Compute(h.startTime, now).Seconds,
	})
}

// VersionHandler godoc
// @Summary 서버 빌드 정보
// @Description 버전, Git 커밋 해시, 빌드 날짜, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "빌드 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug("빌드 정보 조회")

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.BuildDate,
		GoVersion: h.buildInfo.GoVersion,
		Platform:  h.buildInfo.OS + "/" + h.buildInfo.Arch,
	})
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
