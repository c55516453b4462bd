package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin Origin 문자열이 'scheme://host[:port]' 형식인지 검증합니다.
//
// 와일드카드("*")는 허용합니다. 스키마는 http/https만 허용하며
// 경로(후행 슬래시 포함), 쿼리, 프래그먼트, 사용자 정보가 포함되면 거부합니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)

	switch {
	case origin == "*":
		return nil
	case origin == "":
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	case strings.HasSuffix(origin, "/"):
		return fmt.Errorf("CORS Origin은 '/'로 끝날 수 없습니다 (origin=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin이 유효한 URL이 아닙니다 (origin=%q): %w", origin, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마는 http 또는 https만 허용됩니다 (origin=%q)", origin)
	}

	var extra string
	switch {
	case u.Path != "":
		extra = "경로"
	case u.RawQuery != "" || u.ForceQuery:
		extra = "쿼리"
	case u.Fragment != "":
		extra = "프래그먼트"
	case u.User != nil:
		extra = "사용자 정보"
	}
	if extra != "" {
		return fmt.Errorf("CORS Origin에 %s를 포함할 수 없습니다 (origin=%q)", extra, origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트가 숫자가 아닙니다 (origin=%q)", origin)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류 (origin=%q): %w", origin, err)
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("CORS Origin에 호스트가 없습니다 (origin=%q)", origin)
	}

	return ValidateHostname(host)
}
