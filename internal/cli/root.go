// Package cli 실습용 가상 머신을 선언, 생성, 삭제하는 devops-provision 명령어를 제공합니다.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/darkkaiser/devops-info-service/internal/infra"
	"github.com/darkkaiser/devops-info-service/internal/infra/hetzner"
	"github.com/darkkaiser/devops-info-service/internal/pkg/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// AppName 명령어 이름이자 키링 서비스 이름입니다.
const AppName = "devops-provision"

// defaultApplyTimeout apply/destroy 한 번에 허용하는 최대 시간
const defaultApplyTimeout = 10 * time.Minute

// Dependencies 명령어가 사용하는 외부 자원입니다. 테스트에서 교체할 수 있습니다.
type Dependencies struct {
	// Tokens API 토큰 저장소
	Tokens TokenStore

	// NewEngine 토큰으로 인프라 엔진을 생성합니다.
	NewEngine func(token string) infra.Engine

	// ReadSecret 터미널에서 입력을 화면에 표시하지 않고 읽습니다.
	ReadSecret func() (string, error)

	// LookupEnv 환경 변수를 조회합니다.
	LookupEnv func(key string) (string, bool)
}

// DefaultDependencies OS 키링과 Hetzner Cloud API를 사용하는 기본 구성을 반환합니다.
func DefaultDependencies() Dependencies {
	return Dependencies{
		Tokens: NewKeyringStore(AppName),
		NewEngine: func(token string) infra.Engine {
			bi := version.Get()
			return hetzner.New(hetzner.NewClient(hetzner.ClientOptions{
				Token:      token,
				AppName:    AppName,
				AppVersion: bi.Version,
			}))
		},
		ReadSecret: func() (string, error) {
			b, err := term.ReadPassword(int(os.Stdin.Fd()))
			return string(b), err
		},
		LookupEnv: os.LookupEnv,
	}
}

// NewRootCommand devops-provision 최상위 명령어를 생성합니다.
func NewRootCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   AppName,
		Short: "DevOps 실습용 가상 머신을 선언하고 Hetzner Cloud에 생성합니다",
		Long: `devops-provision은 실습용 가상 머신 한 대와 그 네트워크 환경
(네트워크, 서브넷, 방화벽)을 선언하고 Hetzner Cloud에 생성합니다.

입력값 우선순위 (낮음 -> 높음):
  기본값 < --config JSON 파일 < PROVISION_* 환경 변수 < 명령행 플래그

API 토큰 우선순위:
  --token < HCLOUD_TOKEN 환경 변수 < 키링 ('auth login'으로 저장)
  (왼쪽이 먼저 사용됩니다)

사용 예:
  devops-provision auth login
  devops-provision plan --ssh-public-key-file ~/.ssh/id_ed25519.pub
  devops-provision apply --ssh-public-key-file ~/.ssh/id_ed25519.pub
  devops-provision destroy`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var inputFlags inputFlags
	inputFlags.register(cmd)

	cmd.AddCommand(newPlanCommand(&inputFlags))
	cmd.AddCommand(newApplyCommand(deps, &inputFlags))
	cmd.AddCommand(newDestroyCommand(deps, &inputFlags))
	cmd.AddCommand(newCloudInitCommand(&inputFlags))
	cmd.AddCommand(newAuthCommand(deps))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "빌드 정보를 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), version.Get().String()+"\n")
			return err
		},
	}
}
