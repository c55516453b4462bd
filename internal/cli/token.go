package cli

import (
	"errors"
	"strings"

	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/zalando/go-keyring"
)

const (
	// tokenEnv Hetzner 공식 CLI(hcloud)와 같은 환경 변수 이름을 사용합니다.
	tokenEnv = "HCLOUD_TOKEN"

	// tokenAccount 키링에서 토큰을 식별하는 계정 이름
	tokenAccount = "hetzner"
)

// ErrTokenNotFound 저장된 토큰이 없습니다.
var ErrTokenNotFound = apperrors.New(apperrors.NotFound, "저장된 API 토큰이 없습니다")

// TokenStore API 토큰 저장소
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// KeyringStore OS 키링(macOS Keychain, Secret Service, Windows Credential Manager)에 토큰을 저장합니다.
type KeyringStore struct {
	service string
}

// NewKeyringStore 주어진 서비스 이름으로 키링 저장소를 생성합니다.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

func (s *KeyringStore) Get() (string, error) {
	token, err := keyring.Get(s.service, tokenAccount)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrTokenNotFound
		}
		return "", apperrors.Wrap(err, apperrors.System, "키링에서 토큰을 읽을 수 없습니다")
	}
	return token, nil
}

func (s *KeyringStore) Set(token string) error {
	if err := keyring.Set(s.service, tokenAccount, token); err != nil {
		return apperrors.Wrap(err, apperrors.System, "키링에 토큰을 저장할 수 없습니다")
	}
	return nil
}

func (s *KeyringStore) Delete() error {
	if err := keyring.Delete(s.service, tokenAccount); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrTokenNotFound
		}
		return apperrors.Wrap(err, apperrors.System, "키링에서 토큰을 삭제할 수 없습니다")
	}
	return nil
}

// resolveToken --token 플래그, HCLOUD_TOKEN 환경 변수, 키링 순으로 토큰을 찾습니다.
func resolveToken(flagValue string, deps Dependencies) (string, error) {
	if token := strings.TrimSpace(flagValue); token != "" {
		return token, nil
	}

	if deps.LookupEnv != nil {
		if token, ok := deps.LookupEnv(tokenEnv); ok && strings.TrimSpace(token) != "" {
			return strings.TrimSpace(token), nil
		}
	}

	if deps.Tokens != nil {
		token, err := deps.Tokens.Get()
		if err == nil && token != "" {
			return token, nil
		}
		if err != nil && !errors.Is(err, ErrTokenNotFound) {
			return "", err
		}
	}

	return "", apperrors.New(apperrors.Unauthorized, "Hetzner API 토큰이 없습니다. --token, HCLOUD_TOKEN 또는 'devops-provision auth login'으로 설정하세요")
}
