package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		origin        string
		errorContains string
	}{
		{name: "성공: 와일드카드", origin: "*"},
		{name: "성공: HTTPS 도메인", origin: "https://example.com"},
		{name: "성공: 서브도메인", origin: "https://api.dev.example.com"},
		{name: "성공: localhost 포트", origin: "http://localhost:3000"},
		{name: "성공: IPv4", origin: "http://192.168.0.1:8080"},
		{name: "성공: 앞뒤 공백", origin: "  https://example.com  "},

		{name: "실패: 빈 문자열", origin: "", errorContains: "비어있을 수 없습니다"},
		{name: "실패: 후행 슬래시", origin: "https://example.com/", errorContains: "'/'로 끝날 수 없습니다"},
		{name: "실패: 경로 포함", origin: "https://example.com/api", errorContains: "경로"},
		{name: "실패: 쿼리 포함", origin: "https://example.com?a=1", errorContains: "쿼리"},
		{name: "실패: 프래그먼트 포함", origin: "https://example.com#top", errorContains: "프래그먼트"},
		{name: "실패: 사용자 정보 포함", origin: "https://user:pw@example.com", errorContains: "사용자 정보"},
		{name: "실패: 지원하지 않는 스키마", origin: "ftp://example.com", errorContains: "스키마"},
		{name: "실패: 포트 범위 초과", origin: "http://localhost:70000", errorContains: "포트"},
		{name: "실패: 잘못된 호스트", origin: "http://exa_mple.com", errorContains: "호스트명"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)

			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}
