package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func newTestEntry(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}

func TestHook_Fire(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error는 Critical과 Main", ErrorLevel, true, true, false},
		{"Warn은 Main", WarnLevel, true, false, false},
		{"Info는 Main", InfoLevel, true, false, false},
		{"Debug는 Verbose", DebugLevel, false, false, true},
		{"Trace는 Verbose", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var console, mainBuf, critical, verbose bytes.Buffer
			h := &hook{
				consoleWriter:  &console,
				mainWriter:     &mainBuf,
				criticalWriter: &critical,
				verboseWriter:  &verbose,
				formatter:      &logrus.TextFormatter{DisableTimestamp: true},
			}

			require.NoError(t, h.Fire(newTestEntry(tt.level, "routed")))

			assert.Contains(t, console.String(), "routed", "콘솔은 모든 레벨을 수신해야 합니다")
			assert.Equal(t, tt.wantMain, mainBuf.Len() > 0)
			assert.Equal(t, tt.wantCritical, critical.Len() > 0)
			assert.Equal(t, tt.wantVerbose, verbose.Len() > 0)
		})
	}
}

func TestHook_Fire_WriterFailure(t *testing.T) {
	t.Parallel()

	var mainBuf bytes.Buffer
	h := &hook{
		mainWriter:     &mainBuf,
		criticalWriter: failingWriter{},
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}

	err := h.Fire(newTestEntry(ErrorLevel, "boom"))

	assert.EqualError(t, err, "disk full")
	assert.Contains(t, mainBuf.String(), "boom", "Critical 실패와 관계없이 Main에는 기록되어야 합니다")
}

func TestHook_Close(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := &hook{
		consoleWriter: &buf,
		formatter:     &logrus.TextFormatter{},
	}
	h.Close()

	require.NoError(t, h.Fire(newTestEntry(InfoLevel, "ignored")))
	assert.Zero(t, buf.Len())
}
