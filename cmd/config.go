package cmd

import (
	"fmt"
	"strings"

	"github.com/billie-coop/dialogstack/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the project configuration",
		Long: "Show or change the settings stored in " + config.DirName + "/config.toml.\n\n" +
			"Keys: " + strings.Join(config.Keys, ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range config.Keys {
				v, err := a.configs.Value(k)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, v)
			}
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "get <key>",
			Short:     "Print one setting",
			Args:      cobra.ExactArgs(1),
			ValidArgs: config.Keys,
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.configs.Value(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <key> <value>",
			Short:     "Change one setting and save the file",
			Args:      cobra.ExactArgs(2),
			ValidArgs: config.Keys,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.configs.Set(args[0], args[1]); err != nil {
					return err
				}
				a.logger.Info("config updated", "key", args[0], "value", args[1])
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), a.configs.Path())
				return nil
			},
		},
	)
	return cmd
}
