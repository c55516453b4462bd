package cli

import (
	"context"
	"time"

	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/spf13/cobra"
)

func newApplyCommand(deps Dependencies, inputs *inputFlags) *cobra.Command {
	var (
		token   string
		output  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "리소스를 생성하고 접속 정보를 출력합니다",
		Long: `네트워크, 서브넷, 방화벽, 가상 머신을 의존 순서대로 생성합니다.

생성 도중 실패하면 이미 생성된 리소스는 그대로 남습니다.
'devops-provision destroy'로 정리한 뒤 다시 실행하세요.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			g, err := inputs.declare()
			if err != nil {
				return err
			}

			apiToken, err := resolveToken(token, deps)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			logger := applog.WithComponentAndFields("cli.apply", applog.Fields{
				"vm_name": g.Inputs.VMName,
				"zone":    g.Inputs.Zone,
			})
			logger.Info("리소스 생성 시작")

			start := time.Now()
			out, err := deps.NewEngine(apiToken).Apply(ctx, g)
			if err != nil {
				logger.WithError(err).Error("리소스 생성 실패")
				return err
			}

			logger.WithFields(applog.Fields{
				"vm_id":      out.VMID,
				"elapsed_ms": time.Since(start).Milliseconds(),
			}).Info("리소스 생성 완료")

			return writeOutput(cmd.OutOrStdout(), format, out)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Hetzner API 토큰")
	cmd.Flags().StringVarP(&output, "output", "o", string(outputJSON), "출력 형식 (json, yaml)")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultApplyTimeout, "전체 작업 제한 시간")

	return cmd
}
