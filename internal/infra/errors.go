package infra

import (
	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
)

var (
	// ErrSSHPublicKeyRequired SSH 공개키 입력이 없을 때 Declare가 리소스를 만들기 전에 반환합니다.
	ErrSSHPublicKeyRequired = apperrors.New(apperrors.InvalidInput, "ssh_public_key는 필수 입력값입니다")

	// ErrCyclicDependency 리소스 의존 관계에 순환이 있을 때 반환됩니다.
	ErrCyclicDependency = apperrors.New(apperrors.Internal, "리소스 의존 관계에 순환이 있습니다")
)

func newErrUnknownDependency(resource, dependency string) error {
	return apperrors.Newf(apperrors.Internal, "리소스 '%s'가 존재하지 않는 리소스 '%s'에 의존합니다", resource, dependency)
}

func newErrDuplicateResource(name string) error {
	return apperrors.Newf(apperrors.Internal, "리소스 이름 '%s'가 중복되었습니다", name)
}
