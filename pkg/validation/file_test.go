package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// File
// =============================================================================

func TestValidateFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "id_ed25519.pub")
	require.NoError(t, os.WriteFile(file, []byte("ssh-ed25519 AAAA"), 0o600))

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"성공: 존재하는 파일", file, ""},
		{"성공: 빈 경로", "", ""},
		{"실패: 존재하지 않는 파일", filepath.Join(dir, "missing.pub"), "파일이 존재하지 않습니다"},
		{"실패: 디렉토리", dir, "디렉토리"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateFileExists(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
