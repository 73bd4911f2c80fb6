package cli

import (
	"errors"

	"github.com/loganlanou/shopify-buy-button/internal/appearance"
	"github.com/loganlanou/shopify-buy-button/internal/options"
	"github.com/spf13/cobra"
)

type appearanceOutput struct {
	Settings appearance.Settings   `json:"settings" yaml:"settings"`
	Resolved appearance.Appearance `json:"resolved" yaml:"resolved"`
}

func newAppearanceCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appearance",
		Short: "Show or change the default embed appearance.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the stored settings and the values embeds resolve to.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseFormat(flags.Format)
			if err != nil {
				return err
			}
			settings, err := appearance.LoadSettings(cmd.Context(), options.NewStore(deps.Queries))
			if err != nil {
				return err
			}
			return writePayload(cmd.OutOrStdout(), appearanceOutput{
				Settings: settings,
				Resolved: settings.Resolve(),
			}, format)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <file|->",
		Short: "Replace the stored settings with a YAML or JSON document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			var settings appearance.Settings
			if err := decodeYAML(data, &settings); err != nil {
				return err
			}

			err = appearance.Save(cmd.Context(), options.NewStore(deps.Queries), settings)
			if errors.Is(err, appearance.ErrInvalidColor) || errors.Is(err, appearance.ErrInvalidRedirect) {
				return &validationError{err: err}
			}
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "appearance settings saved")
			return nil
		},
	})

	return cmd
}

func newShopCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Show or change the shop embeds fall back to.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the fallback shop and the connected site.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := options.NewStore(deps.Queries)
			shop, err := store.FallbackShop(cmd.Context())
			if err != nil {
				return err
			}
			site, err := store.Get(cmd.Context(), options.ConnectedSite, "")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if shop == "" {
				printWarning(out, "shop: (none)")
			} else {
				printSuccess(out, "shop: %s", shop)
			}
			if site == "" {
				printWarning(out, "connected_site: (none)")
			} else {
				printSuccess(out, "connected_site: %s", site)
			}
			return nil
		},
	})

	var site string
	set := &cobra.Command{
		Use:   "set <shop>",
		Short: "Store the fallback shop.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := options.NewStore(deps.Queries)
			if err := store.SaveShop(cmd.Context(), args[0]); err != nil {
				return err
			}
			if cmd.Flags().Changed("site") {
				if err := store.Set(cmd.Context(), options.ConnectedSite, site); err != nil {
					return err
				}
			}
			printSuccess(cmd.OutOrStdout(), "shop set to %s", args[0])
			return nil
		},
	}
	set.Flags().StringVar(&site, "site", "", "Also set the connected site the picker opens.")
	cmd.AddCommand(set)

	return cmd
}
