package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newCloudInitCommand(inputs *inputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cloud-init",
		Short: "가상 머신에 전달될 cloud-init 사용자 데이터를 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := inputs.declare()
			if err != nil {
				return err
			}

			spec, err := instanceSpec(g)
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), spec.UserData)
			return err
		},
	}
}
