package infra

// Kind 리소스 종류
type Kind string

const (
	KindNetwork       Kind = "network"
	KindSubnet        Kind = "subnet"
	KindSecurityGroup Kind = "security_group"
	KindInstance      Kind = "instance"
)

// 그래프 안에서 리소스를 식별하는 논리 이름입니다.
const (
	ResourceNetwork       = "devops-network"
	ResourceSubnet        = "devops-subnet"
	ResourceSecurityGroup = "devops-sg"
	ResourceInstance      = "devops-vm"
)

// Resource 그래프의 노드입니다.
// DependsOn에 나열된 리소스가 모두 생성된 뒤에 생성되어야 합니다.
type Resource struct {
	Name      string   `json:"name" yaml:"name"`
	Kind      Kind     `json:"kind" yaml:"kind"`
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	Spec      Spec     `json:"spec" yaml:"spec"`
}

// Spec 리소스 종류별 속성입니다.
type Spec interface {
	Kind() Kind
}

// NetworkSpec 사설 네트워크
type NetworkSpec struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	CIDR        string            `json:"cidr" yaml:"cidr"`
	Labels      map[string]string `json:"labels" yaml:"labels"`
}

func (NetworkSpec) Kind() Kind { return KindNetwork }

// SubnetSpec 네트워크 안의 서브넷
type SubnetSpec struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Network     string `json:"network" yaml:"network"`
	CIDR        string `json:"cidr" yaml:"cidr"`
	Zone        string `json:"zone" yaml:"zone"`
	NetworkZone string `json:"network_zone" yaml:"network_zone"`
}

func (SubnetSpec) Kind() Kind { return KindSubnet }

// Protocol 방화벽 규칙 프로토콜
type Protocol string

const (
	ProtocolTCP  Protocol = "TCP"
	ProtocolUDP  Protocol = "UDP"
	ProtocolICMP Protocol = "ICMP"
	ProtocolAny  Protocol = "ANY"
)

// Rule 보안 그룹 규칙
type Rule struct {
	Protocol    Protocol `json:"protocol" yaml:"protocol"`
	Description string   `json:"description" yaml:"description"`
	CIDRs       []string `json:"cidrs" yaml:"cidrs"`
	FromPort    int      `json:"from_port" yaml:"from_port"`
	ToPort      int      `json:"to_port" yaml:"to_port"`
}

// SecurityGroupSpec 인스턴스에 적용되는 방화벽
type SecurityGroupSpec struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Network     string            `json:"network" yaml:"network"`
	Ingress     []Rule            `json:"ingress" yaml:"ingress"`
	Egress      []Rule            `json:"egress" yaml:"egress"`
	Labels      map[string]string `json:"labels" yaml:"labels"`
}

func (SecurityGroupSpec) Kind() Kind { return KindSecurityGroup }

// InstanceSpec 가상 머신
type InstanceSpec struct {
	Name          string            `json:"name" yaml:"name"`
	Zone          string            `json:"zone" yaml:"zone"`
	Image         string            `json:"image" yaml:"image"`
	ServerType    string            `json:"server_type,omitempty" yaml:"server_type,omitempty"`
	Cores         int               `json:"cores" yaml:"cores"`
	MemoryGB      int               `json:"memory_gb" yaml:"memory_gb"`
	CoreFraction  int               `json:"core_fraction" yaml:"core_fraction"`
	DiskSizeGB    int               `json:"disk_size_gb" yaml:"disk_size_gb"`
	DiskType      string            `json:"disk_type" yaml:"disk_type"`
	Subnet        string            `json:"subnet" yaml:"subnet"`
	SecurityGroup string            `json:"security_group" yaml:"security_group"`
	PublicIP      bool              `json:"public_ip" yaml:"public_ip"`
	AdminUser     string            `json:"admin_user" yaml:"admin_user"`
	UserData      string            `json:"user_data" yaml:"user_data"`
	Labels        map[string]string `json:"labels" yaml:"labels"`
}

func (InstanceSpec) Kind() Kind { return KindInstance }
