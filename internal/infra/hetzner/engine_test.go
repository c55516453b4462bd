package hetzner

import (
	"context"
	"errors"
	"testing"

	"github.com/darkkaiser/devops-info-service/internal/infra"
	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPublicKey = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIHpCNabn8AyVMfaAXZSFLrqK5ZpHRuI9uIQdKcj45uue student@lab"

func newTestGraph(t *testing.T, mutate func(in *infra.Inputs)) *infra.Graph {
	t.Helper()

	in := infra.Inputs{SSHPublicKey: testPublicKey}
	if mutate != nil {
		mutate(&in)
	}

	g, err := infra.Declare(in)
	require.NoError(t, err)
	return g
}

// =============================================================================
// Apply
// =============================================================================

func TestEngine_Apply(t *testing.T) {
	t.Parallel()

	cloud := newFakeCloud()
	g := newTestGraph(t, nil)

	out, err := cloud.engine().Apply(context.Background(), g)
	require.NoError(t, err)
	require.NotNil(t, out)

	t.Run("Outputs", func(t *testing.T) {
		network := cloud.networks[infra.NetworkName]
		require.NotNil(t, network)
		firewall := cloud.firewalls[infra.SecurityGroupName]
		require.NotNil(t, firewall)
		server := cloud.servers[g.Inputs.VMName]
		require.NotNil(t, server)

		assert.Equal(t, "devops-vm", out.VMName)
		assert.NotEmpty(t, out.VMID)
		assert.Equal(t, "198.51.100.10", out.VMPublicIP)
		assert.Equal(t, "10.129.0.2", out.VMPrivateIP)
		assert.Equal(t, "static.10.100.51.198.clients.your-server.de", out.VMFQDN)
		assert.Equal(t, "ssh ubuntu@198.51.100.10", out.SSHConnection)
		assert.Equal(t, "fsn1", out.VMZone)
		assert.NotEmpty(t, out.NetworkID)
		assert.Equal(t, out.NetworkID+"-10.129.0.0/24", out.SubnetID)
		assert.NotEmpty(t, out.SecurityGroupID)
	})

	t.Run("생성 순서", func(t *testing.T) {
		calls := cloud.recordedCalls()

		idx := func(call string) int {
			for i, c := range calls {
				if c == call {
					return i
				}
			}
			t.Fatalf("호출되지 않았습니다: %s (calls=%v)", call, calls)
			return -1
		}

		assert.Less(t, idx("network.create"), idx("network.add_subnet"))
		assert.Less(t, idx("network.add_subnet"), idx("firewall.create"))
		assert.Less(t, idx("firewall.create"), idx("server.create"))
	})

	t.Run("네트워크와 서브넷 설정", func(t *testing.T) {
		assert.Equal(t, "10.128.0.0/9", cloud.lastNetworkOpts.IPRange.String())
		assert.Equal(t, infra.LabelPurpose, cloud.lastNetworkOpts.Labels["purpose"])

		subnet := cloud.lastSubnetOpts.Subnet
		assert.Equal(t, hcloud.NetworkSubnetTypeCloud, subnet.Type)
		assert.Equal(t, "10.129.0.0/24", subnet.IPRange.String())
		assert.Equal(t, hcloud.NetworkZone("eu-central"), subnet.NetworkZone)
	})

	t.Run("서버 설정", func(t *testing.T) {
		opts := cloud.lastServerOpts

		assert.Equal(t, "cpx11", opts.ServerType.Name, "조건을 만족하는 가장 작은 x86 타입을 선택해야 합니다")
		assert.Equal(t, "ubuntu-24.04", opts.Image.Name)
		assert.Equal(t, "fsn1", opts.Location.Name)
		assert.True(t, len(opts.UserData) > 0 && opts.UserData[:len("#cloud-config")] == "#cloud-config")
		require.Len(t, opts.Networks, 1)
		assert.Equal(t, cloud.networks[infra.NetworkName].ID, opts.Networks[0].ID)
		require.Len(t, opts.Firewalls, 1)
		assert.Equal(t, cloud.firewalls[infra.SecurityGroupName].ID, opts.Firewalls[0].Firewall.ID)
		require.NotNil(t, opts.PublicNet)
		assert.True(t, opts.PublicNet.EnableIPv4)
	})

	t.Run("Action 대기", func(t *testing.T) {
		// 서브넷 1개, 서버 생성 Action 1개와 후속 Action 1개
		assert.Equal(t, 3, cloud.waited)
	})
}

func TestEngine_Apply_ExplicitServerType(t *testing.T) {
	t.Parallel()

	cloud := newFakeCloud()
	g := newTestGraph(t, func(in *infra.Inputs) { in.ServerType = "cx33" })

	_, err := cloud.engine().Apply(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, "cx33", cloud.lastServerOpts.ServerType.Name)
	assert.NotContains(t, cloud.recordedCalls(), "server_type.all", "서버 타입이 지정되면 목록을 조회하지 않아야 합니다")
}

func TestEngine_Apply_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		failCall    string
		failErr     error
		expectType  apperrors.ErrorType
		notExpected []string
	}{
		{
			name:        "실패: 인증 거부",
			failCall:    "network.create",
			failErr:     hcloud.Error{Code: hcloud.ErrorCodeUnauthorized, Message: "unable to authenticate"},
			expectType:  apperrors.Unauthorized,
			notExpected: []string{"network.add_subnet", "firewall.create", "server.create"},
		},
		{
			name:        "실패: 방화벽 생성 오류 시 서버를 생성하지 않음",
			failCall:    "firewall.create",
			failErr:     hcloud.Error{Code: hcloud.ErrorCodeInvalidInput, Message: "invalid input"},
			expectType:  apperrors.ExecutionFailed,
			notExpected: []string{"server.create"},
		},
		{
			name:        "실패: 서버 생성 오류",
			failCall:    "server.create",
			failErr:     errors.New("connection reset"),
			expectType:  apperrors.ExecutionFailed,
			notExpected: []string{"server.get"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cloud := newFakeCloud()
			cloud.failOn[tt.failCall] = tt.failErr

			out, err := cloud.engine().Apply(context.Background(), newTestGraph(t, nil))

			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, apperrors.Is(err, tt.expectType), "err=%v", err)
			assert.ErrorIs(t, err, tt.failErr, "프로바이더 에러 원문이 유지되어야 합니다")

			calls := cloud.recordedCalls()
			for _, c := range tt.notExpected {
				assert.NotContains(t, calls, c)
			}
		})
	}
}

func TestEngine_Apply_NoServerType(t *testing.T) {
	t.Parallel()

	cloud := newFakeCloud()
	g := newTestGraph(t, func(in *infra.Inputs) { in.VMCores = 64 })

	_, err := cloud.engine().Apply(context.Background(), g)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
	assert.NotContains(t, cloud.recordedCalls(), "server.create")
}

func TestEngine_Apply_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cloud := newFakeCloud()
	_, err := cloud.engine().Apply(ctx, newTestGraph(t, nil))

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, cloud.recordedCalls(), "server.create")
}

// =============================================================================
// Destroy
// =============================================================================

func TestEngine_Destroy(t *testing.T) {
	t.Parallel()

	t.Run("성공: 생성의 역순으로 삭제", func(t *testing.T) {
		t.Parallel()

		cloud := newFakeCloud()
		e := cloud.engine()
		g := newTestGraph(t, nil)

		_, err := e.Apply(context.Background(), g)
		require.NoError(t, err)

		cloud.calls = nil
		require.NoError(t, e.Destroy(context.Background(), g))

		var deletes []string
		for _, c := range cloud.recordedCalls() {
			if c == "server.delete" || c == "firewall.delete" || c == "network.delete" {
				deletes = append(deletes, c)
			}
		}
		assert.Equal(t, []string{"server.delete", "firewall.delete", "network.delete"}, deletes)
		assert.Empty(t, cloud.servers)
		assert.Empty(t, cloud.firewalls)
		assert.Empty(t, cloud.networks)
	})

	t.Run("성공: 존재하지 않는 리소스는 건너뜀", func(t *testing.T) {
		t.Parallel()

		cloud := newFakeCloud()

		require.NoError(t, cloud.engine().Destroy(context.Background(), newTestGraph(t, nil)))

		calls := cloud.recordedCalls()
		assert.Equal(t, []string{"server.get", "firewall.get", "network.get"}, calls)
	})

	t.Run("실패: 조회 오류", func(t *testing.T) {
		t.Parallel()

		cloud := newFakeCloud()
		cloud.failOn["server.get"] = hcloud.Error{Code: hcloud.ErrorCodeUnauthorized, Message: "unable to authenticate"}

		err := cloud.engine().Destroy(context.Background(), newTestGraph(t, nil))

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unauthorized))
		assert.Equal(t, []string{"server.get"}, cloud.recordedCalls())
	})
}
