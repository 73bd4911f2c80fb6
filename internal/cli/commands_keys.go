package cli

import (
	"fmt"
	"strings"

	"github.com/loganlanou/shopify-buy-button/internal/auth"
	"github.com/spf13/cobra"
)

func newKeysCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys for editor access.",
	}

	var permissions []string
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an API key. The key is shown once.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, info, err := auth.CreateAPIKey(cmd.Context(), deps.Queries, args[0], permissions)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "id:          %s\n", info.ID)
			_, _ = fmt.Fprintf(out, "permissions: %s\n", strings.Join(permissions, ","))
			printSuccess(out, "key:         %s", key)
			printWarning(out, "Store this key now, it cannot be shown again.")
			return nil
		},
	}
	create.Flags().StringSliceVarP(&permissions, "permission", "p", []string{auth.PermissionEditPosts}, "Permissions to grant.")
	cmd.AddCommand(create)

	return cmd
}
