package log

import (
	"context"
	"io"
	"maps"

	"github.com/sirupsen/logrus"
)

// 구조화 로그에서 로그를 남긴 모듈을 식별하는 필드 키
const componentKey = "component"

// StandardLogger 전역 로거 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 전역 로거의 기본 출력 대상을 변경합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 로거의 기본 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// SetLevel 전역 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// SetDebugMode Debug 모드 여부에 따라 로그 레벨을 전환합니다.
//   - Debug 모드: Trace 레벨
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// WithFields 필드가 포함된 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithContext Context가 연결된 로그 Entry를 반환합니다.
func WithContext(ctx context.Context) *Entry {
	return logrus.WithContext(ctx)
}

// WithComponent component 필드가 포함된 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// 전달된 fields 맵은 수정하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	maps.Copy(merged, fields)
	merged[componentKey] = component

	return logrus.WithFields(merged)
}

// New 전역 설정과 독립된 새 로거를 생성합니다.
func New() *Logger {
	return logrus.New()
}
