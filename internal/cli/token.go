package cli

import (
	"fmt"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/platform/config"
	"github.com/SscSPs/mobilepos_backend/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a gateway access token signed with JWT_SECRET",
		Long: `Issues an HS256 token accepted by the gateway's /api/v1 routes.
Intended for local testing and service accounts; shop users get their tokens from the backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != utils.RoleAdmin && role != utils.RoleCashier {
				return fmt.Errorf("role must be %s or %s", utils.RoleAdmin, utils.RoleCashier)
			}
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive")
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			token, err := utils.GenerateJWT(userID, role, cfg.JWTSecret, ttl, cfg.JWTIssuer)
			if err != nil {
				return err
			}
			cmd.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Subject of the token")
	cmd.Flags().StringVar(&role, "role", utils.RoleCashier, "Role claim: admin or cashier")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
