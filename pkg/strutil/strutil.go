// Package strutil 로그 출력과 입력 파싱에 사용하는 문자열 유틸리티를 제공합니다.
package strutil

import "strings"

// Mask 토큰, 키 등 민감한 값을 로그에 남길 수 있도록 가립니다.
//
//	""                  -> ""
//	"abc"               -> "***"
//	"secret123"         -> "secr***"
//	"hcloud-token-abcd" -> "hclo***abcd"
func Mask(s string) string {
	switch n := len(s); {
	case n == 0:
		return ""
	case n <= 3:
		return "***"
	case n <= 12:
		return s[:4] + "***"
	default:
		return s[:4] + "***" + s[n-4:]
	}
}

// SplitAndTrim 구분자로 분리한 뒤 공백을 제거하고 빈 항목을 제외합니다.
// 남는 항목이 없으면 nil을 반환합니다.
func SplitAndTrim(s, sep string) []string {
	var result []string
	for token := range strings.SplitSeq(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}
