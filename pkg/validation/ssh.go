package validation

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"
)

// ValidateSSHPublicKey authorized_keys 한 줄 형식의 공개키인지 검증하고 키 타입을 반환합니다.
func ValidateSSHPublicKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("SSH 공개키가 비어있습니다")
	}
	if strings.Contains(key, "PRIVATE KEY") {
		return "", fmt.Errorf("SSH 개인키가 입력되었습니다. 공개키(.pub)를 사용해야 합니다")
	}

	pub, _, _, rest, err := ssh.ParseAuthorizedKey([]byte(key))
	if err != nil {
		return "", fmt.Errorf("SSH 공개키 형식이 올바르지 않습니다: %w", err)
	}
	if len(strings.TrimSpace(string(rest))) > 0 {
		return "", fmt.Errorf("SSH 공개키는 한 개만 지정할 수 있습니다")
	}

	return pub.Type(), nil
}
