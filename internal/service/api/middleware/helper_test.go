package middleware

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// captureLogs 테스트 동안 전역 로거의 출력을 버퍼로 돌립니다.
// 테스트 종료 시 원래 설정으로 복구됩니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	logger := applog.StandardLogger()
	originalOut := logger.Out
	originalFormatter := logger.Formatter
	originalLevel := logger.Level

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(originalOut)
		applog.SetFormatter(originalFormatter)
		applog.SetLevel(originalLevel)
	})

	return buf
}

// lastLogEntry 버퍼에 기록된 마지막 JSON 로그를 파싱합니다.
func lastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	output := strings.TrimSpace(buf.String())
	require.NotEmpty(t, output, "로그가 기록되지 않았습니다")

	lines := strings.Split(output, "\n")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}
