package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ValidateFileExists 경로가 읽을 수 있는 일반 파일인지 검증합니다. 빈 경로는 검사하지 않습니다.
func ValidateFileExists(path string) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("파일이 존재하지 않습니다: %s", path)
		}
		return fmt.Errorf("파일 접근 오류: %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("파일이 아닌 디렉토리입니다: %s", path)
	}
	return nil
}
