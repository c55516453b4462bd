package hetzner

import (
	"fmt"

	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// wrapAPIError 프로바이더 에러를 원문 그대로 감싸 반환합니다.
// 인증 실패는 Unauthorized, 그 외에는 ExecutionFailed로 분류합니다.
func wrapAPIError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	errType := apperrors.ExecutionFailed
	if hcloud.IsError(err, hcloud.ErrorCodeUnauthorized) {
		errType = apperrors.Unauthorized
	}
	return apperrors.Wrap(err, errType, fmt.Sprintf(format, args...))
}

func newErrMissingDependency(resource, dependency string) error {
	return apperrors.Newf(apperrors.Internal, "%s를 생성하기 전에 %s가 생성되어야 합니다", resource, dependency)
}

func newErrNoServerType(cores, memoryGB, diskGB int) error {
	return apperrors.Newf(apperrors.NotFound, "조건(vCPU %d개, 메모리 %dGB, 디스크 %dGB)을 만족하는 서버 타입이 없습니다", cores, memoryGB, diskGB)
}
