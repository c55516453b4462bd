package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Server    ServerConfig    `json:"server"`
	Service   ServiceConfig   `json:"service"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

// ServerConfig HTTP 서버의 바인딩 주소
type ServerConfig struct {
	Host string `json:"host" validate:"required,bind_host"`
	Port int    `json:"port" validate:"min=1,max=65535"`
}

// Address "host:port" 형태의 리슨 주소를 반환합니다.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ServiceConfig 정보 엔드포인트의 service 섹션에 노출되는 고정 메타데이터
type ServiceConfig struct {
	Name        string `json:"name" validate:"required"`
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`
	Framework   string `json:"framework"`
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// RateLimitConfig 클라이언트 IP별 요청 속도 제한
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=1"`
	Burst             int `json:"burst" validate:"min=1"`
}

func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Service: ServiceConfig{
			Name:        AppName,
			Version:     "1.0.0",
			Description: "DevOps course info service",
			Framework:   "Echo",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
		},
	}
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "설정"); err != nil {
		return err
	}

	return c.CORS.validate()
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) > 1 {
		for _, origin := range c.AllowOrigins {
			if origin == "*" {
				return newInvalidInputError("와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}
		}
	}
	return nil
}

// VerifyRecommendations 동작에는 문제가 없지만 운영 환경에서 권장되지 않는 설정을 경고 메시지로 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.Server.Port < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.Server.Port))
	}

	if !c.Debug && len(c.CORS.AllowOrigins) == 1 && c.CORS.AllowOrigins[0] == "*" {
		warnings = append(warnings, "운영 모드에서 모든 출처(*)의 CORS 요청을 허용하고 있습니다")
	}

	return warnings
}
