package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 로그 이벤트를 여러 출력 채널로 분배합니다.
//
// 라우팅 규칙:
//   - 콘솔: 모든 레벨
//   - Critical 파일: ERROR 이상
//   - Main 파일: INFO 이상 (DEBUG/TRACE 제외)
//   - Verbose 파일: DEBUG 이하
//
// 파일 로그가 비활성화된 경우 파일 채널은 모두 nil이며 콘솔로만 출력됩니다.
type hook struct {
	consoleWriter  io.Writer
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

// Levels 모든 레벨의 로그를 수신합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그 이벤트를 한 번만 포맷팅한 뒤 해당 레벨의 채널들에 기록합니다.
// 어느 한 채널의 실패가 다른 채널의 기록을 막지 않으며, 첫 번째 파일 쓰기 에러만 반환합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 쓰기 실패는 경고만 남기고 전파하지 않습니다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-WARN] 콘솔 출력 실패: %v\n", err)
		}
	}

	var firstErr error
	for _, ch := range h.channelsFor(entry.Level) {
		if ch.w == nil {
			continue
		}
		if _, err := ch.w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-FAILURE] %s 로그 파일 쓰기 실패: %v\n", ch.name, err)
		}
	}

	return firstErr
}

type channel struct {
	name string
	w    io.Writer
}

func (h *hook) channelsFor(level Level) []channel {
	switch {
	case level >= DebugLevel:
		return []channel{{"Verbose", h.verboseWriter}}
	case level <= ErrorLevel:
		return []channel{{"Critical", h.criticalWriter}, {"Main", h.mainWriter}}
	default:
		return []channel{{"Main", h.mainWriter}}
	}
}

// Close 이후의 로그 기록 요청을 모두 무시하도록 전환합니다.
// 진행 중인 Fire 호출이 끝날 때까지 대기합니다.
func (h *hook) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
}
