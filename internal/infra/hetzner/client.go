// Package hetzner 리소스 그래프를 Hetzner Cloud API로 평가하는 infra.Engine 구현체를 제공합니다.
package hetzner

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// hcloud 클라이언트 중 엔진이 사용하는 메서드만 추려낸 인터페이스입니다.
type (
	networkAPI interface {
		Create(ctx context.Context, opts hcloud.NetworkCreateOpts) (*hcloud.Network, *hcloud.Response, error)
		AddSubnet(ctx context.Context, network *hcloud.Network, opts hcloud.NetworkAddSubnetOpts) (*hcloud.Action, *hcloud.Response, error)
		GetByName(ctx context.Context, name string) (*hcloud.Network, *hcloud.Response, error)
		Delete(ctx context.Context, network *hcloud.Network) (*hcloud.Response, error)
	}

	firewallAPI interface {
		Create(ctx context.Context, opts hcloud.FirewallCreateOpts) (hcloud.FirewallCreateResult, *hcloud.Response, error)
		GetByName(ctx context.Context, name string) (*hcloud.Firewall, *hcloud.Response, error)
		Delete(ctx context.Context, firewall *hcloud.Firewall) (*hcloud.Response, error)
	}

	serverAPI interface {
		Create(ctx context.Context, opts hcloud.ServerCreateOpts) (hcloud.ServerCreateResult, *hcloud.Response, error)
		GetByID(ctx context.Context, id int64) (*hcloud.Server, *hcloud.Response, error)
		GetByName(ctx context.Context, name string) (*hcloud.Server, *hcloud.Response, error)
		DeleteWithResult(ctx context.Context, server *hcloud.Server) (*hcloud.ServerDeleteResult, *hcloud.Response, error)
	}

	serverTypeAPI interface {
		All(ctx context.Context) ([]*hcloud.ServerType, error)
	}

	actionWaiter interface {
		WaitFor(ctx context.Context, actions ...*hcloud.Action) error
	}
)

// ClientOptions Hetzner Cloud API 클라이언트 설정
type ClientOptions struct {
	Token      string
	Endpoint   string // 비어있으면 공식 API 주소
	AppName    string
	AppVersion string
}

// NewClient hcloud 클라이언트를 생성합니다.
func NewClient(opts ClientOptions) *hcloud.Client {
	clientOpts := []hcloud.ClientOption{
		hcloud.WithToken(opts.Token),
		hcloud.WithApplication(opts.AppName, opts.AppVersion),
	}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, hcloud.WithEndpoint(opts.Endpoint))
	}
	return hcloud.NewClient(clientOpts...)
}
