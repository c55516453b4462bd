package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv 테스트 결과에 영향을 주는 환경 변수를 비웁니다.
func clearEnv(t *testing.T) {
	t.Helper()

	for name := range flatEnvKeys {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// =============================================================================
// Layering
// =============================================================================

func TestLoadWithFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadWithFile("")
	require.NoError(t, err)

	assert.Equal(t, newDefaultConfig(), *cfg)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Address())
	assert.False(t, cfg.Debug)
	assert.Equal(t, "Echo", cfg.Service.Framework)
}

func TestLoadWithFile_MissingFileIsOptional(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoadWithFile_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := writeConfigFile(t, `{
		"server": {"port": 8080},
		"service": {"description": "수업용 정보 서비스"},
		"cors": {"allow_origins": ["https://example.com"]}
	}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "파일에 없는 값은 기본값을 유지해야 합니다")
	assert.Equal(t, "수업용 정보 서비스", cfg.Service.Description)
	assert.Equal(t, AppName, cfg.Service.Name)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowOrigins)
}

func TestLoadWithFile_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := writeConfigFile(t, `{"server": {"host": "127.0.0.1", "port": 8080}}`)

	t.Setenv("HOST", "localhost")
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("INFO_SERVICE__VERSION", "2.0.0")
	t.Setenv("INFO_CORS__ALLOW_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "2.0.0", cfg.Service.Version)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowOrigins)
}

// =============================================================================
// Failures
// =============================================================================

func TestLoadWithFile_Failures(t *testing.T) {
	tests := []struct {
		name          string
		file          string
		env           map[string]string
		errorContains string
	}{
		{
			name:          "실패: 포트가 숫자가 아님",
			env:           map[string]string{"PORT": "abc"},
			errorContains: "구조체로 변환",
		},
		{
			name:          "실패: 포트 범위 초과",
			env:           map[string]string{"PORT": "70000"},
			errorContains: "server.port",
		},
		{
			name:          "실패: 잘못된 호스트",
			env:           map[string]string{"HOST": "bad_host!"},
			errorContains: "server.host",
		},
		{
			name:          "실패: 알 수 없는 중첩 키",
			env:           map[string]string{"INFO_UNKNOWN_KEY": "x"},
			errorContains: "구조체로 변환",
		},
		{
			name:          "실패: 잘못된 JSON",
			file:          `{"server": `,
			errorContains: "설정 파일 로드",
		},
		{
			name:          "실패: CORS 형식 오류",
			file:          `{"cors": {"allow_origins": ["example.com"]}}`,
			errorContains: "CORS Origin 형식",
		},
		{
			name:          "실패: 와일드카드와 도메인 혼용",
			file:          `{"cors": {"allow_origins": ["*", "https://example.com"]}}`,
			errorContains: "와일드카드",
		},
		{
			name:          "실패: 빈 CORS 목록",
			file:          `{"cors": {"allow_origins": []}}`,
			errorContains: "비어있습니다",
		},
		{
			name:          "실패: 서비스 이름 누락",
			file:          `{"service": {"name": ""}}`,
			errorContains: "service.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var path string
			if tt.file != "" {
				path = writeConfigFile(t, tt.file)
			}

			_, err := LoadWithFile(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		})
	}
}

// =============================================================================
// Helpers
// =============================================================================

func TestEnvKeyMapper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected string
	}{
		{"HOST", "server.host"},
		{"PORT", "server.port"},
		{"DEBUG", "debug"},
		{"INFO_SERVICE__NAME", "service.name"},
		{"INFO_RATE_LIMIT__BURST", "rate_limit.burst"},
		{"INFO_", ""},
		{"PATH", ""},
		{"HOSTNAME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, envKeyMapper(tt.in))
		})
	}
}

func TestVerifyRecommendations(t *testing.T) {
	t.Parallel()

	cfg := newDefaultConfig()
	cfg.Server.Port = 80

	warnings := cfg.VerifyRecommendations()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "시스템 예약 포트")
	assert.Contains(t, warnings[1], "CORS")

	cfg.Debug = true
	cfg.Server.Port = 5000
	assert.Empty(t, cfg.VerifyRecommendations())
}
