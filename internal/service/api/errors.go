package api

import (
	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
)

var (
	// ErrServiceAlreadyRunning 이미 실행 중인 서비스를 다시 시작하려 할 때 반환됩니다.
	ErrServiceAlreadyRunning = apperrors.New(apperrors.Internal, "API 서비스가 이미 실행 중입니다")
)

// newErrListenFailed 서버 주소에 바인딩하지 못했을 때의 에러를 생성합니다.
func newErrListenFailed(cause error, address string) error {
	return apperrors.Wrapf(cause, apperrors.System, "http 서버가 %s 주소에서 대기할 수 없습니다", address)
}
