package log

import (
	"fmt"
	"io"
	"os"
)

// Format 로그 출력 형식입니다.
type Format string

const (
	// FormatText 사람이 읽기 쉬운 key=value 형식
	FormatText Format = "text"

	// FormatJSON 한 줄 단위 JSON 형식 (로그 수집기 연동용)
	FormatJSON Format = "json"
)

// Options 로거 설정을 위한 구조체입니다.
type Options struct {
	Name   string // 로그 파일명 생성에 사용될 애플리케이션 식별자
	Dir    string // 로그 파일이 저장될 디렉토리 경로 (기본값: logs)
	Level  Level  // 로그 레벨 (0: Info 사용)
	Format Format // 출력 형식 (빈 값: text)

	MaxAge     int // 오래된 로그 삭제 기준일 (일 단위, 0: 삭제 안 함)
	MaxSizeMB  int // 로그 파일 최대 크기 (MB, 0: 기본값 100MB)
	MaxBackups int // 최대 백업 파일 수 (0: 기본값 20개)

	EnableFileLog     bool // 로그 파일(lumberjack) 기록 여부. false면 콘솔 출력만 사용합니다.
	EnableCriticalLog bool // ERROR 이상 로그를 별도 파일로 분리 저장할지 여부 (EnableFileLog 필요)
	EnableVerboseLog  bool // DEBUG 이하 로그를 별도 파일로 분리 저장할지 여부 (EnableFileLog 필요)
	EnableConsoleLog  bool // 콘솔에도 로그를 출력할지 여부

	// 콘솔 출력 대상 (nil: os.Stdout)
	ConsoleWriter io.Writer

	// 로그를 호출한 소스 코드의 위치를 함께 기록할지 여부
	ReportCaller bool

	// 호출자 함수 경로에서 잘라낼 접두사
	// 예: "github.com/darkkaiser/devops-info-service" -> ".../internal/service/api.(*Service).Start"
	CallerPathPrefix string
}

// Validate Options 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	switch opts.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("지원하지 않는 로그 형식입니다: %q (text 또는 json)", opts.Format)
	}

	if !opts.EnableFileLog && (opts.EnableCriticalLog || opts.EnableVerboseLog) {
		return fmt.Errorf("Critical/Verbose 로그 분리는 파일 로그(EnableFileLog)가 활성화된 경우에만 사용할 수 있습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}

// NewProductionOptions 운영 환경용 로그 설정을 반환합니다.
//
// 컨테이너 오케스트레이터가 표준 출력을 수집하므로 콘솔에는 JSON으로 출력하고,
// 호스트 장애 분석을 위해 파일 로그와 Critical 분리도 함께 유지합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:   appName,
		Level:  InfoLevel,
		Format: FormatJSON,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableFileLog:     true,
		EnableCriticalLog: true,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller: false,
	}
}

// NewDevelopmentOptions 개발 환경용 로그 설정을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:   appName,
		Level:  TraceLevel,
		Format: FormatText,

		EnableFileLog:    false,
		EnableConsoleLog: true,

		ReportCaller: true,
	}
}
