// Package errors 서비스와 프로비저닝 도구가 공유하는 타입 기반 에러 처리 시스템을 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며, Wrap 계열 함수로 문맥을 누적할 수 있습니다.
// HTTP 계층은 UnderlyingType으로 응답 코드를 결정하고, CLI 계층은 종료 메시지를 결정합니다.
//
// # 기본 사용법
//
// 새 에러 생성:
//
//	err := errors.New(errors.InvalidInput, "SSH 공개키가 설정되지 않았습니다")
//
// 외부 에러 래핑:
//
//	if err != nil {
//	    return errors.Wrap(err, errors.ExecutionFailed, "네트워크 생성에 실패했습니다")
//	}
//
// 타입 검사:
//
//	if errors.Is(err, errors.InvalidInput) {
//	    // 입력값 오류 처리
//	}
//
// # ErrorType 선택 가이드
//
// Internal:
//   - 애플리케이션 내부 로직 오류 (버그로 간주)
//   - 예: "리소스 그래프에 순환 의존성이 존재합니다"
//
// System:
//   - 파일, 네트워크 소켓, 키링 등 실행 환경 수준의 장애
//   - 예: "설정 파일 로드 실패", "포트 바인딩 실패"
//
// Unauthorized:
//   - 클라우드 API 토큰 누락 또는 거부
//
// InvalidInput:
//   - 설정값, 프로비저닝 입력값 검증 실패
//   - 예: "CIDR 형식이 올바르지 않습니다"
//
// NotFound:
//   - 조회 대상 리소스가 존재하지 않음
//   - 예: "조건을 만족하는 서버 타입이 없습니다"
//
// ExecutionFailed:
//   - 외부 엔진(클라우드 API) 호출 실패
//
// Timeout, Unavailable:
//   - 작업 시간 초과, 일시적 사용 불가
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류(ErrorType)와 메시지, 감싼 원인, 생성 위치를 함께 보관하는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// newAppError 모든 생성 함수가 공유합니다. 생성 함수에서 직접 호출해야 스택의 첫 프레임이 호출 지점이 됩니다.
func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(defaultCallerSkip),
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf 포맷 문자열로 메시지를 만들어 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap err을 원인으로 갖는 에러를 생성합니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf Wrap과 같지만 포맷 문자열로 메시지를 만듭니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

func (e *AppError) Type() ErrorType     { return e.errType }
func (e *AppError) Message() string     { return e.message }
func (e *AppError) Stack() []StackFrame { return e.stack }
func (e *AppError) Unwrap() error       { return e.cause }

func (e *AppError) Error() string {
	var b strings.Builder
	e.writeHeadline(&b)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// writeHeadline "[타입] 메시지" 형식의 한 줄을 기록합니다.
func (e *AppError) writeHeadline(w io.Writer) {
	fmt.Fprintf(w, "[%s] %s", e.errType, e.message)
}

// Format %+v로 출력하면 체인의 각 에러를 줄 단위로 나열하고, AppError가 아닌 원인을 만나는 경계에서
// 스택을 함께 기록합니다. 그 외의 동사는 Error()와 같습니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		e.writeDetail(s)
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	case verb == 'v' || verb == 's':
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *AppError) writeDetail(s fmt.State) {
	e.writeHeadline(s)

	var inner *AppError
	if e.cause == nil || !errors.As(e.cause, &inner) {
		e.writeStack(s)
	}

	if e.cause == nil {
		return
	}

	io.WriteString(s, "\nCaused by:\n")
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, 'v')
		return
	}
	fmt.Fprintf(s, "\t%v", e.cause)
}

func (e *AppError) writeStack(w io.Writer) {
	if len(e.stack) == 0 {
		return
	}

	io.WriteString(w, "\nStack trace:")
	for _, frame := range e.stack {
		fmt.Fprintf(w, "\n\t%s:%d %s", frame.File, frame.Line, frame.shortFunction())
	}
}

// Is err 또는 err이 감싼 에러 중 errType으로 분류된 AppError가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	found := false
	walk(err, func(appErr *AppError) bool {
		found = appErr.errType == errType
		return !found
	})
	return found
}

// As 표준 errors.As와 같습니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 체인을 끝까지 따라가 더 이상 감싼 에러가 없는 에러를 반환합니다.
// 여러 에러를 묶은 에러(errors.Join)는 첫 번째 에러를 따라갑니다.
func RootCause(err error) error {
	for err != nil {
		next := unwrapOne(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// UnderlyingType 체인에서 가장 안쪽에 있는 AppError의 ErrorType을 반환합니다.
//
// 클라우드 SDK 에러를 ExecutionFailed로 감싼 뒤 상위 계층에서 Internal로 다시 감싸더라도
// ExecutionFailed를 돌려줍니다. 체인에 AppError가 없으면 Unknown입니다.
func UnderlyingType(err error) ErrorType {
	t := Unknown
	walk(err, func(appErr *AppError) bool {
		t = appErr.errType
		return true
	})
	return t
}

// walk 체인의 AppError마다 visit을 호출합니다. visit이 false를 반환하면 중단합니다.
func walk(err error, visit func(*AppError) bool) {
	for ; err != nil; err = unwrapOne(err) {
		if appErr, ok := err.(*AppError); ok && !visit(appErr) {
			return
		}
	}
}

func unwrapOne(err error) error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return u.Unwrap()
	case interface{ Unwrap() []error }:
		if errs := u.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	}
	return nil
}
