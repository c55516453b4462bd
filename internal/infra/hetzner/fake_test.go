package hetzner

import (
	"context"
	"net"
	"sync"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// fakeCloud 엔진 테스트용 인메모리 Hetzner API입니다.
// 호출 순서를 calls에 기록하며, failOn에 지정된 호출은 해당 에러를 반환합니다.
type fakeCloud struct {
	mu sync.Mutex

	calls  []string
	failOn map[string]error

	nextID int64

	networks  map[string]*hcloud.Network
	firewalls map[string]*hcloud.Firewall
	servers   map[string]*hcloud.Server

	serverTypes []*hcloud.ServerType

	lastNetworkOpts  hcloud.NetworkCreateOpts
	lastSubnetOpts   hcloud.NetworkAddSubnetOpts
	lastFirewallOpts hcloud.FirewallCreateOpts
	lastServerOpts   hcloud.ServerCreateOpts

	waited int
}

func newFakeCloud() *fakeCloud {
	return &fakeCloud{
		failOn:    make(map[string]error),
		nextID:    100,
		networks:  make(map[string]*hcloud.Network),
		firewalls: make(map[string]*hcloud.Firewall),
		servers:   make(map[string]*hcloud.Server),
		serverTypes: []*hcloud.ServerType{
			{ID: 1, Name: "cx23", Cores: 2, Memory: 4, Disk: 40, Architecture: hcloud.ArchitectureX86},
			{ID: 2, Name: "cpx11", Cores: 2, Memory: 2, Disk: 40, Architecture: hcloud.ArchitectureX86},
			{ID: 3, Name: "cax11", Cores: 2, Memory: 4, Disk: 40, Architecture: hcloud.ArchitectureARM},
		},
	}
}

func (f *fakeCloud) engine() *Engine {
	return &Engine{
		networks:    fakeNetworks{f},
		firewalls:   fakeFirewalls{f},
		servers:     fakeServers{f},
		serverTypes: fakeServerTypes{f},
		actions:     fakeActions{f},
	}
}

// record 호출을 기록하고, 실패가 예약된 호출이면 에러를 반환합니다.
func (f *fakeCloud) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call)
	return f.failOn[call]
}

func (f *fakeCloud) newID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	return f.nextID
}

func (f *fakeCloud) recordedCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

func newAction(id int64) *hcloud.Action {
	return &hcloud.Action{ID: id, Status: hcloud.ActionStatusRunning}
}

// =============================================================================
// Network
// =============================================================================

type fakeNetworks struct{ f *fakeCloud }

func (n fakeNetworks) Create(_ context.Context, opts hcloud.NetworkCreateOpts) (*hcloud.Network, *hcloud.Response, error) {
	if err := n.f.record("network.create"); err != nil {
		return nil, nil, err
	}
	network := &hcloud.Network{ID: n.f.newID(), Name: opts.Name, IPRange: opts.IPRange, Labels: opts.Labels}

	n.f.mu.Lock()
	n.f.lastNetworkOpts = opts
	n.f.networks[opts.Name] = network
	n.f.mu.Unlock()

	return network, nil, nil
}

func (n fakeNetworks) AddSubnet(_ context.Context, network *hcloud.Network, opts hcloud.NetworkAddSubnetOpts) (*hcloud.Action, *hcloud.Response, error) {
	if err := n.f.record("network.add_subnet"); err != nil {
		return nil, nil, err
	}

	n.f.mu.Lock()
	n.f.lastSubnetOpts = opts
	network.Subnets = append(network.Subnets, opts.Subnet)
	n.f.mu.Unlock()

	return newAction(n.f.newID()), nil, nil
}

func (n fakeNetworks) GetByName(_ context.Context, name string) (*hcloud.Network, *hcloud.Response, error) {
	if err := n.f.record("network.get"); err != nil {
		return nil, nil, err
	}

	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	return n.f.networks[name], nil, nil
}

func (n fakeNetworks) Delete(_ context.Context, network *hcloud.Network) (*hcloud.Response, error) {
	if err := n.f.record("network.delete"); err != nil {
		return nil, err
	}

	n.f.mu.Lock()
	delete(n.f.networks, network.Name)
	n.f.mu.Unlock()

	return nil, nil
}

// =============================================================================
// Firewall
// =============================================================================

type fakeFirewalls struct{ f *fakeCloud }

func (fw fakeFirewalls) Create(_ context.Context, opts hcloud.FirewallCreateOpts) (hcloud.FirewallCreateResult, *hcloud.Response, error) {
	if err := fw.f.record("firewall.create"); err != nil {
		return hcloud.FirewallCreateResult{}, nil, err
	}
	firewall := &hcloud.Firewall{ID: fw.f.newID(), Name: opts.Name, Rules: opts.Rules, Labels: opts.Labels}

	fw.f.mu.Lock()
	fw.f.lastFirewallOpts = opts
	fw.f.firewalls[opts.Name] = firewall
	fw.f.mu.Unlock()

	return hcloud.FirewallCreateResult{Firewall: firewall}, nil, nil
}

func (fw fakeFirewalls) GetByName(_ context.Context, name string) (*hcloud.Firewall, *hcloud.Response, error) {
	if err := fw.f.record("firewall.get"); err != nil {
		return nil, nil, err
	}

	fw.f.mu.Lock()
	defer fw.f.mu.Unlock()
	return fw.f.firewalls[name], nil, nil
}

func (fw fakeFirewalls) Delete(_ context.Context, firewall *hcloud.Firewall) (*hcloud.Response, error) {
	if err := fw.f.record("firewall.delete"); err != nil {
		return nil, err
	}

	fw.f.mu.Lock()
	delete(fw.f.firewalls, firewall.Name)
	fw.f.mu.Unlock()

	return nil, nil
}

// =============================================================================
// Server
// =============================================================================

type fakeServers struct{ f *fakeCloud }

func (s fakeServers) Create(_ context.Context, opts hcloud.ServerCreateOpts) (hcloud.ServerCreateResult, *hcloud.Response, error) {
	if err := s.f.record("server.create"); err != nil {
		return hcloud.ServerCreateResult{}, nil, err
	}

	server := &hcloud.Server{
		ID:         s.f.newID(),
		Name:       opts.Name,
		ServerType: opts.ServerType,
		Labels:     opts.Labels,
		Datacenter: &hcloud.Datacenter{Name: opts.Location.Name + "-dc14", Location: opts.Location},
	}
	// 생성 응답에는 IP가 채워지지 않고, 이후 조회에서만 확인됩니다.
	created := *server

	server.PublicNet = hcloud.ServerPublicNet{
		IPv4: hcloud.ServerPublicNetIPv4{IP: net.ParseIP("198.51.100.10"), DNSPtr: "static.10.100.51.198.clients.your-server.de"},
	}
	server.PrivateNet = []hcloud.ServerPrivateNet{{IP: net.ParseIP("10.129.0.2")}}

	s.f.mu.Lock()
	s.f.lastServerOpts = opts
	s.f.servers[opts.Name] = server
	s.f.mu.Unlock()

	return hcloud.ServerCreateResult{
		Server:      &created,
		Action:      newAction(s.f.newID()),
		NextActions: []*hcloud.Action{newAction(s.f.newID())},
	}, nil, nil
}

func (s fakeServers) GetByID(_ context.Context, id int64) (*hcloud.Server, *hcloud.Response, error) {
	if err := s.f.record("server.get"); err != nil {
		return nil, nil, err
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	for _, server := range s.f.servers {
		if server.ID == id {
			return server, nil, nil
		}
	}
	return nil, nil, nil
}

func (s fakeServers) GetByName(_ context.Context, name string) (*hcloud.Server, *hcloud.Response, error) {
	if err := s.f.record("server.get"); err != nil {
		return nil, nil, err
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	return s.f.servers[name], nil, nil
}

func (s fakeServers) DeleteWithResult(_ context.Context, server *hcloud.Server) (*hcloud.ServerDeleteResult, *hcloud.Response, error) {
	if err := s.f.record("server.delete"); err != nil {
		return nil, nil, err
	}

	s.f.mu.Lock()
	delete(s.f.servers, server.Name)
	s.f.mu.Unlock()

	return &hcloud.ServerDeleteResult{Action: newAction(s.f.newID())}, nil, nil
}

// =============================================================================
// ServerType & Action
// =============================================================================

type fakeServerTypes struct{ f *fakeCloud }

func (st fakeServerTypes) All(_ context.Context) ([]*hcloud.ServerType, error) {
	if err := st.f.record("server_type.all"); err != nil {
		return nil, err
	}
	return st.f.serverTypes, nil
}

type fakeActions struct{ f *fakeCloud }

func (a fakeActions) WaitFor(_ context.Context, actions ...*hcloud.Action) error {
	if err := a.f.record("action.wait"); err != nil {
		return err
	}

	a.f.mu.Lock()
	a.f.waited += len(actions)
	a.f.mu.Unlock()

	return nil
}
