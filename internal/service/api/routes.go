package api

import (
	"github.com/darkkaiser/devops-info-service/internal/service/api/constants"
	"github.com/darkkaiser/devops-info-service/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 서비스의 라우트를 등록합니다.
//
// 모든 엔드포인트는 GET만 허용하며, 다른 메서드는 라우터가 405로 응답합니다.
// Swagger UI(/swagger/*)는 디버그 모드에서만 등록됩니다.
func RegisterRoutes(e *echo.Echo, h *system.Handler, debug bool) {
	registerSystemRoutes(e, h)

	if debug {
		registerSwaggerRoutes(e)
	}
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/", h.InfoHandler)
	e.GET(constants.HealthPath, h.HealthHandler)
	e.GET("/version", h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
