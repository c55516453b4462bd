package hetzner

import (
	"net"

	"github.com/darkkaiser/devops-info-service/internal/infra"
	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// anyIPv6 IPv4 0.0.0.0/0 규칙에 대응하는 IPv6 전체 대역
const anyIPv6 = "::/0"

// firewallRules 보안 그룹 규칙을 Hetzner 방화벽 규칙으로 변환합니다.
//
// Hetzner 방화벽은 ANY 프로토콜과 0번 포트를 지원하지 않으므로, ANY 규칙은
// TCP 1-65535, UDP 1-65535, ICMP 세 규칙으로 확장합니다.
// 0.0.0.0/0 대상은 IPv6 전체 대역(::/0)도 함께 허용합니다.
func firewallRules(spec infra.SecurityGroupSpec) ([]hcloud.FirewallRule, error) {
	var rules []hcloud.FirewallRule

	for _, r := range spec.Ingress {
		converted, err := convertRule(hcloud.FirewallRuleDirectionIn, r)
		if err != nil {
			return nil, err
		}
		rules = append(rules, converted...)
	}
	for _, r := range spec.Egress {
		converted, err := convertRule(hcloud.FirewallRuleDirectionOut, r)
		if err != nil {
			return nil, err
		}
		rules = append(rules, converted...)
	}

	return rules, nil
}

func convertRule(direction hcloud.FirewallRuleDirection, r infra.Rule) ([]hcloud.FirewallRule, error) {
	ipNets, err := parseCIDRs(r.CIDRs)
	if err != nil {
		return nil, err
	}

	newRule := func(protocol hcloud.FirewallRuleProtocol, port *string) hcloud.FirewallRule {
		rule := hcloud.FirewallRule{
			Direction:   direction,
			Protocol:    protocol,
			Port:        port,
			Description: hcloud.Ptr(r.Description),
		}
		if direction == hcloud.FirewallRuleDirectionIn {
			rule.SourceIPs = ipNets
		} else {
			rule.DestinationIPs = ipNets
		}
		return rule
	}

	switch r.Protocol {
	case infra.ProtocolTCP:
		return []hcloud.FirewallRule{newRule(hcloud.FirewallRuleProtocolTCP, hcloud.Ptr(r.PortRange()))}, nil
	case infra.ProtocolUDP:
		return []hcloud.FirewallRule{newRule(hcloud.FirewallRuleProtocolUDP, hcloud.Ptr(r.PortRange()))}, nil
	case infra.ProtocolICMP:
		return []hcloud.FirewallRule{newRule(hcloud.FirewallRuleProtocolICMP, nil)}, nil
	case infra.ProtocolAny:
		allPorts := hcloud.Ptr("1-65535")
		return []hcloud.FirewallRule{
			newRule(hcloud.FirewallRuleProtocolTCP, allPorts),
			newRule(hcloud.FirewallRuleProtocolUDP, allPorts),
			newRule(hcloud.FirewallRuleProtocolICMP, nil),
		}, nil
	default:
		return nil, apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 프로토콜입니다: %s", r.Protocol)
	}
}

func parseCIDRs(cidrs []string) ([]net.IPNet, error) {
	var out []net.IPNet
	for _, c := range cidrs {
		_, ipNet, err := net.ParseCIDR(c)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "방화벽 규칙의 대역이 올바르지 않습니다 (cidr=%q)", c)
		}
		out = append(out, *ipNet)

		if c == "0.0.0.0/0" {
			_, v6, _ := net.ParseCIDR(anyIPv6)
			out = append(out, *v6)
		}
	}
	return out, nil
}
