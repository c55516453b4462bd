package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// 생성되는 로그 파일의 확장자
	fileExt = "log"

	// 기본 로그 디렉토리
	defaultDir = "logs"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 100 // 로그 파일 하나당 최대 크기 (MB)
	defaultMaxBackups = 20  // 로테이션 된 로그 파일의 최대 보관 개수
)

var (
	// Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 초기화 시 생성된 Closer. Setup 재호출 시 동일한 인스턴스를 반환합니다.
	globalCloser io.Closer

	// 최초 초기화 에러. 재호출 시 재시도하지 않고 그대로 반환합니다.
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화합니다.
//
// 주의:
//   - main 함수 도입부에서 한 번 호출합니다.
//   - 반환된 Closer는 defer로 해제해야 버퍼에 남은 로그가 디스크에 기록됩니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})

	return globalCloser, globalSetupErr
}

func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 기본 출력 경로는 비활성화하고 모든 기록을 Hook에 위임합니다.
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)

	h := &hook{
		formatter: newFormatter(opts),
	}

	if opts.EnableConsoleLog {
		h.consoleWriter = opts.ConsoleWriter
		if h.consoleWriter == nil {
			h.consoleWriter = os.Stdout
		}
	}

	var closers []io.Closer
	if opts.EnableFileLog {
		var err error
		closers, err = attachFileWriters(h, opts)
		if err != nil {
			return nil, err
		}
	}

	logrus.AddHook(h)

	c := &closer{
		closers: closers,
		hook:    h,
	}

	// Fatal 로그로 os.Exit이 호출되기 직전에 파일 버퍼를 비웁니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// attachFileWriters 로그 디렉토리를 만들고 Main/Critical/Verbose 파일 Writer를 Hook에 연결합니다.
func attachFileWriters(h *hook, opts Options) ([]io.Closer, error) {
	logDir := opts.Dir
	if logDir == "" {
		logDir = defaultDir
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	var closers []io.Closer
	newRotatingFile := func(suffix string) *lumberjack.Logger {
		name := opts.Name
		if suffix != "" {
			name += "." + suffix
		}
		l := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, fmt.Sprintf("%s.%s", name, fileExt)),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   false,
			LocalTime:  true,
		}
		closers = append(closers, l)
		return l
	}

	h.mainWriter = newRotatingFile("")
	if opts.EnableCriticalLog {
		h.criticalWriter = newRotatingFile("critical")
	}
	if opts.EnableVerboseLog {
		h.verboseWriter = newRotatingFile("verbose")
	}

	return closers, nil
}
