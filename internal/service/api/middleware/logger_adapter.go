package middleware

import (
	"io"

	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger Echo의 로거 인터페이스(gommon/log)를 애플리케이션 로거에 연결하는 어댑터입니다.
// Echo 내부에서 남기는 로그(서버 시작 실패 등)도 동일한 출력 경로와 형식을 따르게 됩니다.
type Logger struct {
	*applog.Logger
}

var (
	toEchoLevel = map[applog.Level]log.Lvl{
		applog.DebugLevel: log.DEBUG,
		applog.InfoLevel:  log.INFO,
		applog.WarnLevel:  log.WARN,
		applog.ErrorLevel: log.ERROR,
	}
	fromEchoLevel = map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
)

func (l Logger) Output() io.Writer     { return l.Logger.Out }
func (l Logger) SetOutput(w io.Writer) { l.Logger.SetOutput(w) }
func (l Logger) Prefix() string        { return "" }
func (l Logger) SetPrefix(string)      {}
func (l Logger) SetHeader(string)      {}

// Level Echo에 대응하는 레벨이 없는 경우(Trace, Fatal, Panic) OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	if lvl, ok := toEchoLevel[l.Logger.GetLevel()]; ok {
		return lvl
	}
	return log.OFF
}

// SetLevel 대응하는 레벨이 없는 값(OFF)은 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if level, ok := fromEchoLevel[lvl]; ok {
		l.Logger.SetLevel(level)
	}
}

func (l Logger) Print(i ...any)                 { l.Logger.Print(i...) }
func (l Logger) Printf(format string, a ...any) { l.Logger.Printf(format, a...) }
func (l Logger) Printj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Print() }
func (l Logger) Debug(i ...any)                 { l.Logger.Debug(i...) }
func (l Logger) Debugf(format string, a ...any) { l.Logger.Debugf(format, a...) }
func (l Logger) Debugj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Debug() }
func (l Logger) Info(i ...any)                  { l.Logger.Info(i...) }
func (l Logger) Infof(format string, a ...any)  { l.Logger.Infof(format, a...) }
func (l Logger) Infoj(j log.JSON)               { l.Logger.WithFields(applog.Fields(j)).Info() }
func (l Logger) Warn(i ...any)                  { l.Logger.Warn(i...) }
func (l Logger) Warnf(format string, a ...any)  { l.Logger.Warnf(format, a...) }
func (l Logger) Warnj(j log.JSON)               { l.Logger.WithFields(applog.Fields(j)).Warn() }
func (l Logger) Error(i ...any)                 { l.Logger.Error(i...) }
func (l Logger) Errorf(format string, a ...any) { l.Logger.Errorf(format, a...) }
func (l Logger) Errorj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Error() }
func (l Logger) Fatal(i ...any)                 { l.Logger.Fatal(i...) }
func (l Logger) Fatalf(format string, a ...any) { l.Logger.Fatalf(format, a...) }
func (l Logger) Fatalj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Fatal() }
func (l Logger) Panic(i ...any)                 { l.Logger.Panic(i...) }
func (l Logger) Panicf(format string, a ...any) { l.Logger.Panicf(format, a...) }
func (l Logger) Panicj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Panic() }
