package hetzner

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/darkkaiser/devops-info-service/internal/infra"
	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

const component = "infra.hetzner"

var _ infra.Engine = (*Engine)(nil)

// Engine 리소스 그래프를 Hetzner Cloud 리소스로 평가합니다.
//
//   - network        -> Network
//   - subnet         -> Network 서브넷 (ID: "<network id>-<cidr>")
//   - security group -> Firewall (ANY 규칙은 TCP/UDP 1-65535와 ICMP로 확장)
//   - instance       -> Server (네트워크, 방화벽, cloud-init 사용자 데이터 연결)
type Engine struct {
	networks    networkAPI
	firewalls   firewallAPI
	servers     serverAPI
	serverTypes serverTypeAPI
	actions     actionWaiter
}

// New hcloud 클라이언트를 사용하는 Engine을 생성합니다.
func New(client *hcloud.Client) *Engine {
	return &Engine{
		networks:    &client.Network,
		firewalls:   &client.Firewall,
		servers:     &client.Server,
		serverTypes: &client.ServerType,
		actions:     &client.Action,
	}
}

// applyState 평가 중 생성된 리소스입니다. 같은 단계의 리소스가 동시에 기록하므로 mu로 보호합니다.
type applyState struct {
	mu       sync.Mutex
	network  *hcloud.Network
	firewall *hcloud.Firewall
	outputs  infra.Outputs
}

func (s *applyState) getNetwork() *hcloud.Network {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.network
}

func (s *applyState) getFirewall() *hcloud.Firewall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firewall
}

// Apply 그래프를 의존 순서대로 평가하여 리소스를 생성합니다.
// 실패한 경우 그때까지 생성된 리소스는 그대로 남으며, Destroy로 정리할 수 있습니다.
func (e *Engine) Apply(ctx context.Context, g *infra.Graph) (*infra.Outputs, error) {
	state := &applyState{}

	err := infra.Evaluate(ctx, g, func(ctx context.Context, r infra.Resource) error {
		applog.WithComponentAndFields(component, applog.Fields{
			"resource": r.Name,
			"kind":     r.Kind,
		}).Info("리소스 생성 시작")

		switch spec := r.Spec.(type) {
		case infra.NetworkSpec:
			return e.createNetwork(ctx, state, spec)
		case infra.SubnetSpec:
			return e.createSubnet(ctx, state, spec)
		case infra.SecurityGroupSpec:
			return e.createFirewall(ctx, state, spec)
		case infra.InstanceSpec:
			return e.createServer(ctx, state, spec)
		default:
			return apperrors.Newf(apperrors.Internal, "지원하지 않는 리소스 종류입니다: %s", r.Kind)
		}
	})
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	out := state.outputs
	out.SSHConnection = infra.SSHConnection(g.Inputs.VMUser, out.VMPublicIP)
	return &out, nil
}

func (e *Engine) createNetwork(ctx context.Context, state *applyState, spec infra.NetworkSpec) error {
	_, ipRange, err := net.ParseCIDR(spec.CIDR)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "네트워크 대역이 올바르지 않습니다")
	}

	network, _, err := e.networks.Create(ctx, hcloud.NetworkCreateOpts{
		Name:    spec.Name,
		IPRange: ipRange,
		Labels:  spec.Labels,
	})
	if err != nil {
		return wrapAPIError(err, "네트워크(%s)를 생성할 수 없습니다", spec.Name)
	}

	state.mu.Lock()
	state.network = network
	state.outputs.NetworkID = strconv.FormatInt(network.ID, 10)
	state.mu.Unlock()

	return nil
}

func (e *Engine) createSubnet(ctx context.Context, state *applyState, spec infra.SubnetSpec) error {
	network := state.getNetwork()
	if network == nil {
		return newErrMissingDependency(spec.Name, spec.Network)
	}

	_, ipRange, err := net.ParseCIDR(spec.CIDR)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "서브넷 대역이 올바르지 않습니다")
	}

	action, _, err := e.networks.AddSubnet(ctx, network, hcloud.NetworkAddSubnetOpts{
		Subnet: hcloud.NetworkSubnet{
			Type:        hcloud.NetworkSubnetTypeCloud,
			IPRange:     ipRange,
			NetworkZone: hcloud.NetworkZone(spec.NetworkZone),
		},
	})
	if err != nil {
		return wrapAPIError(err, "서브넷(%s)을 생성할 수 없습니다", spec.CIDR)
	}
	if err := e.wait(ctx, action); err != nil {
		return wrapAPIError(err, "서브넷(%s) 생성 완료를 기다리는 중 오류가 발생했습니다", spec.CIDR)
	}

	state.mu.Lock()
	state.outputs.SubnetID = fmt.Sprintf("%d-%s", network.ID, ipRange.String())
	state.mu.Unlock()

	return nil
}

func (e *Engine) createFirewall(ctx context.Context, state *applyState, spec infra.SecurityGroupSpec) error {
	rules, err := firewallRules(spec)
	if err != nil {
		return err
	}

	result, _, err := e.firewalls.Create(ctx, hcloud.FirewallCreateOpts{
		Name:   spec.Name,
		Labels: spec.Labels,
		Rules:  rules,
	})
	if err != nil {
		return wrapAPIError(err, "방화벽(%s)을 생성할 수 없습니다", spec.Name)
	}
	if err := e.wait(ctx, result.Actions...); err != nil {
		return wrapAPIError(err, "방화벽(%s) 생성 완료를 기다리는 중 오류가 발생했습니다", spec.Name)
	}

	state.mu.Lock()
	state.firewall = result.Firewall
	state.outputs.SecurityGroupID = strconv.FormatInt(result.Firewall.ID, 10)
	state.mu.Unlock()

	return nil
}

func (e *Engine) createServer(ctx context.Context, state *applyState, spec infra.InstanceSpec) error {
	network := state.getNetwork()
	if network == nil {
		return newErrMissingDependency(spec.Name, spec.Subnet)
	}
	firewall := state.getFirewall()
	if firewall == nil {
		return newErrMissingDependency(spec.Name, spec.SecurityGroup)
	}

	serverType := &hcloud.ServerType{Name: spec.ServerType}
	if spec.ServerType == "" {
		var err error
		serverType, err = selectServerType(ctx, e.serverTypes, spec.Cores, spec.MemoryGB, spec.DiskSizeGB)
		if err != nil {
			return err
		}
		applog.WithComponentAndFields(component, applog.Fields{
			"server_type": serverType.Name,
			"cores":       serverType.Cores,
			"memory_gb":   serverType.Memory,
			"disk_gb":     serverType.Disk,
		}).Info("서버 타입 자동 선택")
	}

	result, _, err := e.servers.Create(ctx, hcloud.ServerCreateOpts{
		Name:       spec.Name,
		ServerType: serverType,
		Image:      &hcloud.Image{Name: spec.Image},
		Location:   &hcloud.Location{Name: spec.Zone},
		UserData:   spec.UserData,
		Labels:     spec.Labels,
		Networks:   []*hcloud.Network{network},
		Firewalls:  []*hcloud.ServerCreateFirewall{{Firewall: *firewall}},
		PublicNet: &hcloud.ServerCreatePublicNet{
			EnableIPv4: spec.PublicIP,
			EnableIPv6: spec.PublicIP,
		},
	})
	if err != nil {
		return wrapAPIError(err, "서버(%s)를 생성할 수 없습니다", spec.Name)
	}

	actions := append([]*hcloud.Action{result.Action}, result.NextActions...)
	if err := e.wait(ctx, actions...); err != nil {
		return wrapAPIError(err, "서버(%s) 생성 완료를 기다리는 중 오류가 발생했습니다", spec.Name)
	}

	// 생성 응답에는 사설 IP가 아직 할당되지 않았을 수 있으므로 다시 조회합니다.
	server, _, err := e.servers.GetByID(ctx, result.Server.ID)
	if err != nil {
		return wrapAPIError(err, "서버(%s) 정보를 조회할 수 없습니다", spec.Name)
	}
	if server == nil {
		server = result.Server
	}

	state.mu.Lock()
	fillServerOutputs(&state.outputs, server, spec.Zone)
	state.mu.Unlock()

	return nil
}

func fillServerOutputs(out *infra.Outputs, server *hcloud.Server, zone string) {
	out.VMID = strconv.FormatInt(server.ID, 10)
	out.VMName = server.Name
	out.VMZone = zone
	out.VMFQDN = server.Name

	if ip := server.PublicNet.IPv4.IP; ip != nil && !ip.IsUnspecified() {
		out.VMPublicIP = ip.String()
	}
	if ptr := server.PublicNet.IPv4.DNSPtr; ptr != "" {
		out.VMFQDN = ptr
	}
	if len(server.PrivateNet) > 0 && server.PrivateNet[0].IP != nil {
		out.VMPrivateIP = server.PrivateNet[0].IP.String()
	}
	if server.Datacenter != nil && server.Datacenter.Location != nil {
		out.VMZone = server.Datacenter.Location.Name
	}
}

// wait nil이 아닌 Action이 모두 완료될 때까지 기다립니다.
func (e *Engine) wait(ctx context.Context, actions ...*hcloud.Action) error {
	pending := make([]*hcloud.Action, 0, len(actions))
	for _, a := range actions {
		if a != nil {
			pending = append(pending, a)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	return e.actions.WaitFor(ctx, pending...)
}
