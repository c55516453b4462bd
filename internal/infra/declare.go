package infra

import (
	"fmt"

	"github.com/darkkaiser/devops-info-service/internal/infra/cloudinit"
	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
)

// 프로바이더에 생성되는 리소스 이름
const (
	NetworkName       = "devops-network"
	SubnetName        = "devops-subnet"
	SecurityGroupName = "devops-security-group"
)

// anyIPv4 모든 IPv4 주소
const anyIPv4 = "0.0.0.0/0"

// Declare 입력값으로부터 리소스 그래프를 선언합니다.
//
// 기본값을 적용하고 검증한 뒤 cloud-init 문서를 생성하며, 다음 의존 관계를 갖는 네 개의 리소스를 반환합니다.
//
//	network -> subnet -> security group -> instance
//
// SSH 공개키가 없으면 리소스를 하나도 만들지 않고 ErrSSHPublicKeyRequired를 반환합니다.
func Declare(in Inputs) (*Graph, error) {
	in = in.WithDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	userData, err := cloudinit.New(cloudinit.Options{
		User:         in.VMUser,
		SSHPublicKey: in.SSHPublicKey,
	}).Render()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "cloud-init 문서를 생성할 수 없습니다")
	}

	return buildGraph(in, userData), nil
}

// DeclareForDestroy 삭제할 리소스를 찾기 위한 그래프를 선언합니다.
//
// 리소스 이름과 위치만 필요하므로 SSH 공개키를 요구하지 않으며, 인스턴스의 UserData는 비어있습니다.
// 공개키가 지정되어 있어도 검증하지 않습니다.
func DeclareForDestroy(in Inputs) (*Graph, error) {
	in = in.WithDefaults()
	if err := in.validateFields(); err != nil {
		return nil, err
	}

	return buildGraph(in, ""), nil
}

func buildGraph(in Inputs, userData string) *Graph {
	labels := commonLabels(in)

	return &Graph{
		Inputs: in,
		Resources: []Resource{
			{
				Name: ResourceNetwork,
				Kind: KindNetwork,
				Spec: NetworkSpec{
					Name:        NetworkName,
					Description: "Network for DevOps course lab infrastructure",
					CIDR:        in.NetworkCIDR,
					Labels:      labels,
				},
			},
			{
				Name:      ResourceSubnet,
				Kind:      KindSubnet,
				DependsOn: []string{ResourceNetwork},
				Spec: SubnetSpec{
					Name:        SubnetName,
					Description: "Subnet for DevOps VMs",
					Network:     ResourceNetwork,
					CIDR:        in.SubnetCIDR,
					Zone:        in.Zone,
					NetworkZone: in.NetworkZone(),
				},
			},
			{
				Name:      ResourceSecurityGroup,
				Kind:      KindSecurityGroup,
				DependsOn: []string{ResourceSubnet},
				Spec: SecurityGroupSpec{
					Name:        SecurityGroupName,
					Description: "Security group for DevOps VM",
					Network:     ResourceNetwork,
					Ingress:     ingressRules(in.AllowSSHFromCIDR),
					Egress:      egressRules(),
					Labels:      labels,
				},
			},
			{
				Name:      ResourceInstance,
				Kind:      KindInstance,
				DependsOn: []string{ResourceSubnet, ResourceSecurityGroup},
				Spec: InstanceSpec{
					Name:          in.VMName,
					Zone:          in.Zone,
					Image:         in.Image,
					ServerType:    in.ServerType,
					Cores:         in.VMCores,
					MemoryGB:      in.VMMemory,
					CoreFraction:  in.VMCoreFraction,
					DiskSizeGB:    in.DiskSize,
					DiskType:      in.DiskType,
					Subnet:        ResourceSubnet,
					SecurityGroup: ResourceSecurityGroup,
					PublicIP:      true,
					AdminUser:     in.VMUser,
					UserData:      userData,
					Labels:        instanceLabels(in),
				},
			},
		},
	}
}

func ingressRules(sshCIDR string) []Rule {
	return []Rule{
		tcpRule("Allow SSH", sshCIDR, 22),
		tcpRule("Allow HTTP", anyIPv4, 80),
		tcpRule("Allow HTTPS", anyIPv4, 443),
	}
}

func egressRules() []Rule {
	return []Rule{{
		Protocol:    ProtocolAny,
		Description: "Allow all outbound traffic",
		CIDRs:       []string{anyIPv4},
		FromPort:    0,
		ToPort:      65535,
	}}
}

func tcpRule(description, cidr string, port int) Rule {
	return Rule{
		Protocol:    ProtocolTCP,
		Description: description,
		CIDRs:       []string{cidr},
		FromPort:    port,
		ToPort:      port,
	}
}

// PortRange 규칙의 포트 범위를 "22" 또는 "1-65535" 형식으로 반환합니다.
func (r Rule) PortRange() string {
	if r.FromPort == r.ToPort {
		return fmt.Sprintf("%d", r.FromPort)
	}
	return fmt.Sprintf("%d-%d", r.FromPort, r.ToPort)
}
