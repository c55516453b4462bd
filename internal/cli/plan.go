package cli

import (
	"github.com/darkkaiser/devops-info-service/internal/infra"
	"github.com/darkkaiser/devops-info-service/internal/infra/cloudinit"
	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/spf13/cobra"
)

// planDocument plan 명령어의 출력
type planDocument struct {
	Inputs    infra.Inputs     `json:"inputs" yaml:"inputs"`
	Resources []infra.Resource `json:"resources" yaml:"resources"`

	// CloudInit 가상 머신 사용자 데이터를 구조화한 내용
	CloudInit cloudinit.Config `json:"cloud_init" yaml:"cloud_init"`
}

func newPlanCommand(inputs *inputFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "API를 호출하지 않고 생성될 리소스를 생성 순서대로 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			g, err := inputs.declare()
			if err != nil {
				return err
			}

			ordered, err := g.Order()
			if err != nil {
				return err
			}

			cloudConfig, err := parseUserData(g)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), format, planDocument{
				Inputs:    g.Inputs,
				Resources: ordered,
				CloudInit: cloudConfig,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(outputYAML), "출력 형식 (yaml, json)")

	return cmd
}

// parseUserData 그래프에 선언된 가상 머신의 사용자 데이터를 cloud-config로 해석합니다.
func parseUserData(g *infra.Graph) (cloudinit.Config, error) {
	spec, err := instanceSpec(g)
	if err != nil {
		return cloudinit.Config{}, err
	}

	c, err := cloudinit.Parse(spec.UserData)
	if err != nil {
		return cloudinit.Config{}, apperrors.Wrap(err, apperrors.Internal, "가상 머신 사용자 데이터를 해석할 수 없습니다")
	}
	return c, nil
}

// instanceSpec 그래프에서 가상 머신 리소스의 속성을 찾습니다.
func instanceSpec(g *infra.Graph) (infra.InstanceSpec, error) {
	r, ok := g.Resource(infra.ResourceInstance)
	if !ok {
		return infra.InstanceSpec{}, apperrors.New(apperrors.Internal, "가상 머신 리소스가 선언되지 않았습니다")
	}
	spec, ok := r.Spec.(infra.InstanceSpec)
	if !ok {
		return infra.InstanceSpec{}, apperrors.Newf(apperrors.Internal, "가상 머신 리소스의 속성 타입이 올바르지 않습니다: %T", r.Spec)
	}
	return spec, nil
}
