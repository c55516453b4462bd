package infra

import (
	"context"
	"fmt"
)

// Outputs 평가가 끝난 뒤 엔진이 돌려주는 리소스 식별자와 접속 정보입니다.
type Outputs struct {
	VMID            string `json:"vm_id" yaml:"vm_id"`
	VMName          string `json:"vm_name" yaml:"vm_name"`
	VMFQDN          string `json:"vm_fqdn" yaml:"vm_fqdn"`
	VMPublicIP      string `json:"vm_public_ip" yaml:"vm_public_ip"`
	VMPrivateIP     string `json:"vm_private_ip" yaml:"vm_private_ip"`
	SSHConnection   string `json:"ssh_connection" yaml:"ssh_connection"`
	VMZone          string `json:"vm_zone" yaml:"vm_zone"`
	NetworkID       string `json:"network_id" yaml:"network_id"`
	SubnetID        string `json:"subnet_id" yaml:"subnet_id"`
	SecurityGroupID string `json:"security_group_id" yaml:"security_group_id"`
}

// SSHConnection "ssh <user>@<ip>" 형식의 접속 명령을 반환합니다. ip가 없으면 빈 문자열입니다.
func SSHConnection(user, ip string) string {
	if ip == "" {
		return ""
	}
	return fmt.Sprintf("ssh %s@%s", user, ip)
}

// Engine 리소스 그래프를 실제 인프라로 평가합니다.
//
// 재시도나 롤백은 엔진 구현체의 책임이며, 프로바이더 에러는 감싸서 그대로 반환합니다.
type Engine interface {
	// Apply 의존 순서대로 리소스를 생성하고 Outputs를 반환합니다.
	Apply(ctx context.Context, g *Graph) (*Outputs, error)

	// Destroy 생성의 역순으로 리소스를 삭제합니다. 이미 없는 리소스는 건너뜁니다.
	Destroy(ctx context.Context, g *Graph) error
}
