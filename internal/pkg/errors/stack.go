package errors

import (
	"path/filepath"
	"runtime"
	"strings"
)

// defaultCallerSkip 스택 수집 시 건너뛸 프레임 수입니다.
//
// runtime.Callers, captureStack, newAppError, New/Wrap 계열 생성 함수 4단계를 건너뛰어
// 에러를 만든 호출 지점이 0번째 프레임이 되도록 합니다.
const defaultCallerSkip = 4

// maxStackFrames 에러 하나가 보관하는 최대 프레임 수입니다.
const maxStackFrames = 5

// StackFrame 단일 호출 프레임 정보입니다.
type StackFrame struct {
	File     string // 파일 이름 (경로 제외)
	Line     int    // 줄 번호
	Function string // 패키지 경로를 포함한 함수 이름
}

// captureStack 현재 실행 위치의 스택 정보를 최대 maxStackFrames 단계까지 수집합니다.
func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(pc[:n])

	frames := make([]StackFrame, 0, n)
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}

// shortFunction 패키지 경로를 뺀 "패키지.함수" 형식의 이름
func (f StackFrame) shortFunction() string {
	if idx := strings.LastIndex(f.Function, "/"); idx != -1 {
		return f.Function[idx+1:]
	}
	return f.Function
}
