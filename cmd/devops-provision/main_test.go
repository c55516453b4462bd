package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/devops-info-service/internal/cli"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/stretchr/testify/assert"
)

func TestLogOptions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := logOptions(&buf)

	assert.NoError(t, opts.Validate())
	assert.Equal(t, cli.AppName, opts.Name)
	assert.Equal(t, applog.InfoLevel, opts.Level)
	assert.False(t, opts.EnableFileLog, "CLI는 로그 파일을 만들지 않아야 합니다")
	assert.Same(t, &buf, opts.ConsoleWriter)
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.NotEmpty(t, stdout.String())
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"no-such-command"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[ERROR]")
}

func TestRun_PrintsRootCause(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.json")

	code := run([]string{"plan", "--config", missing}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[ERROR] [NotFound] 입력값 파일을 찾을 수 없습니다")
	assert.Contains(t, stderr.String(), "[CAUSE] 파일이 존재하지 않습니다: "+missing)
}

func TestRun_NoCauseForUnwrappedError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"no-such-command"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.NotContains(t, stderr.String(), "[CAUSE]")
}
