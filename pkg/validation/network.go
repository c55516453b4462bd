package validation

import (
	"fmt"
	"net"
	"net/netip"
	"strings"
)

// ValidatePort 포트 번호가 1-65535 범위인지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소 또는 RFC 1123 호스트명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명은 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if err := validateLabel(label); err != nil {
			return fmt.Errorf("유효하지 않은 호스트명입니다 (host=%q): %w", host, err)
		}
	}

	// 최상위 도메인은 숫자로만 구성될 수 없습니다.
	if tld := labels[len(labels)-1]; strings.Trim(tld, "0123456789") == "" {
		return fmt.Errorf("최상위 도메인은 숫자로만 구성될 수 없습니다 (tld=%q)", tld)
	}

	return nil
}

// ValidateResourceName 클라우드 리소스 이름(VM, 네트워크 등)으로 사용할 수 있는 단일 DNS 레이블인지 검증합니다.
func ValidateResourceName(name string) error {
	if err := validateLabel(name); err != nil {
		return fmt.Errorf("유효하지 않은 리소스 이름입니다 (name=%q): %w", name, err)
	}
	return nil
}

func validateLabel(label string) error {
	switch {
	case label == "":
		return fmt.Errorf("빈 레이블")
	case len(label) > 63:
		return fmt.Errorf("레이블은 63자를 초과할 수 없습니다 (label=%q)", label)
	case label[0] == '-' || label[len(label)-1] == '-':
		return fmt.Errorf("레이블은 하이픈으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
	}

	for _, r := range label {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
			return fmt.Errorf("허용되지 않는 문자 %q", r)
		}
	}

	return nil
}

// ValidateCIDR IPv4 CIDR 표기법인지 검증하고 정규화된 Prefix를 반환합니다.
// 호스트 비트가 설정된 값(예: 10.0.0.1/24)은 거부합니다.
func ValidateCIDR(cidr string) (netip.Prefix, error) {
	p, err := netip.ParsePrefix(strings.TrimSpace(cidr))
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("CIDR 형식이 아닙니다 (cidr=%q): %w", cidr, err)
	}
	if !p.Addr().Is4() {
		return netip.Prefix{}, fmt.Errorf("IPv4 CIDR만 지원합니다 (cidr=%q)", cidr)
	}
	if p.Masked() != p {
		return netip.Prefix{}, fmt.Errorf("CIDR에 호스트 비트가 포함되어 있습니다 (cidr=%q, expected=%s)", cidr, p.Masked())
	}
	return p, nil
}

// ValidateCIDRWithin inner 대역이 outer 대역에 완전히 포함되는지 검증합니다.
func ValidateCIDRWithin(inner, outer string) error {
	in, err := ValidateCIDR(inner)
	if err != nil {
		return err
	}
	out, err := ValidateCIDR(outer)
	if err != nil {
		return err
	}

	if in.Bits() < out.Bits() || !out.Contains(in.Addr()) {
		return fmt.Errorf("서브넷 대역(%s)이 네트워크 대역(%s)에 포함되지 않습니다", in, out)
	}
	return nil
}
