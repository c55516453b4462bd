package hetzner

import (
	"context"

	"github.com/darkkaiser/devops-info-service/internal/infra"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
)

// Destroy 생성의 역순으로 리소스를 이름으로 찾아 삭제합니다.
//
// 이미 삭제된 리소스는 건너뜁니다. 서브넷은 네트워크와 함께 삭제되므로 별도로 처리하지 않습니다.
func (e *Engine) Destroy(ctx context.Context, g *infra.Graph) error {
	ordered, err := g.Reversed()
	if err != nil {
		return err
	}

	for _, r := range ordered {
		if err := ctx.Err(); err != nil {
			return err
		}

		var deleted bool
		switch spec := r.Spec.(type) {
		case infra.InstanceSpec:
			deleted, err = e.deleteServer(ctx, spec.Name)
		case infra.SecurityGroupSpec:
			deleted, err = e.deleteFirewall(ctx, spec.Name)
		case infra.NetworkSpec:
			deleted, err = e.deleteNetwork(ctx, spec.Name)
		default:
			continue
		}
		if err != nil {
			return err
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"resource": r.Name,
			"kind":     r.Kind,
			"deleted":  deleted,
		}).Info("리소스 삭제 처리 완료")
	}

	return nil
}

func (e *Engine) deleteServer(ctx context.Context, name string) (bool, error) {
	server, _, err := e.servers.GetByName(ctx, name)
	if err != nil {
		return false, wrapAPIError(err, "서버(%s)를 조회할 수 없습니다", name)
	}
	if server == nil {
		return false, nil
	}

	result, _, err := e.servers.DeleteWithResult(ctx, server)
	if err != nil {
		return false, wrapAPIError(err, "서버(%s)를 삭제할 수 없습니다", name)
	}
	if result != nil {
		if err := e.wait(ctx, result.Action); err != nil {
			return false, wrapAPIError(err, "서버(%s) 삭제 완료를 기다리는 중 오류가 발생했습니다", name)
		}
	}
	return true, nil
}

func (e *Engine) deleteFirewall(ctx context.Context, name string) (bool, error) {
	firewall, _, err := e.firewalls.GetByName(ctx, name)
	if err != nil {
		return false, wrapAPIError(err, "방화벽(%s)을 조회할 수 없습니다", name)
	}
	if firewall == nil {
		return false, nil
	}

	if _, err := e.firewalls.Delete(ctx, firewall); err != nil {
		return false, wrapAPIError(err, "방화벽(%s)을 삭제할 수 없습니다", name)
	}
	return true, nil
}

func (e *Engine) deleteNetwork(ctx context.Context, name string) (bool, error) {
	network, _, err := e.networks.GetByName(ctx, name)
	if err != nil {
		return false, wrapAPIError(err, "네트워크(%s)를 조회할 수 없습니다", name)
	}
	if network == nil {
		return false, nil
	}

	if _, err := e.networks.Delete(ctx, network); err != nil {
		return false, wrapAPIError(err, "네트워크(%s)를 삭제할 수 없습니다", name)
	}
	return true, nil
}
