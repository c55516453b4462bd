package cli

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/spf13/cobra"
)

func newAuthCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Hetzner API 토큰을 관리합니다",
	}

	cmd.AddCommand(newAuthLoginCommand(deps))
	cmd.AddCommand(newAuthLogoutCommand(deps))

	return cmd
}

func newAuthLoginCommand(deps Dependencies) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Hetzner API 토큰을 OS 키링에 저장합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token = strings.TrimSpace(token)
			if token == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Hetzner API 토큰: ")
				secret, err := deps.ReadSecret()
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return apperrors.Wrap(err, apperrors.System, "토큰을 입력받을 수 없습니다")
				}
				token = strings.TrimSpace(secret)
			}

			if token == "" {
				return apperrors.New(apperrors.InvalidInput, "토큰이 비어있습니다")
			}

			if err := deps.Tokens.Set(token); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "토큰을 저장했습니다")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "저장할 토큰 (생략하면 입력을 요청합니다)")

	return cmd
}

func newAuthLogoutCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "저장된 Hetzner API 토큰을 삭제합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.Tokens.Delete(); err != nil {
				if errors.Is(err, ErrTokenNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "저장된 토큰이 없습니다")
					return nil
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "토큰을 삭제했습니다")
			return nil
		},
	}
}
