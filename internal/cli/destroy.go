package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/spf13/cobra"
)

func newDestroyCommand(deps Dependencies, inputs *inputFlags) *cobra.Command {
	var (
		token   string
		yes     bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "생성한 리소스를 역순으로 삭제합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := inputs.declareForDestroy()
			if err != nil {
				return err
			}

			if !yes {
				confirmed, err := confirm(cmd, fmt.Sprintf("가상 머신 '%s'와 네트워크 리소스를 삭제합니다. 계속하시겠습니까? [y/N]: ", g.Inputs.VMName))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "삭제를 취소했습니다")
					return nil
				}
			}

			apiToken, err := resolveToken(token, deps)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			logger := applog.WithComponentAndFields("cli.destroy", applog.Fields{
				"vm_name": g.Inputs.VMName,
			})
			logger.Info("리소스 삭제 시작")

			if err := deps.NewEngine(apiToken).Destroy(ctx, g); err != nil {
				logger.WithError(err).Error("리소스 삭제 실패")
				return err
			}

			logger.Info("리소스 삭제 완료")
			fmt.Fprintln(cmd.OutOrStdout(), "리소스를 삭제했습니다")

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Hetzner API 토큰")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "확인 없이 삭제합니다")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultApplyTimeout, "전체 작업 제한 시간")

	return cmd
}

// confirm 표준 입력에서 y 또는 yes를 입력받았는지 확인합니다.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
