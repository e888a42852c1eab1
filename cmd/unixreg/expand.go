package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/unixreg/registry"
)

func init() {
	rootCmd.AddCommand(newExpandCmd())
}

func newExpandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand <string>",
		Short: "Expand %VAR% environment references",
		Long: `The expand command replaces %NAME% references with environment values.
Windows names are mapped to their Unix equivalents first (USERPROFILE to HOME,
USERNAME to USER, APPDATA to XDG_CONFIG_HOME, plus any configured aliases),
and backslashes become path separators. Undefined references are left as-is.

Example:
  unixreg expand "%USERPROFILE%\Documents"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(args)
		},
	}
	return cmd
}

func runExpand(args []string) error {
	cfg, err := currentConfig()
	if err != nil {
		return err
	}

	aliases := append(append([]registry.Alias{}, registry.DefaultAliases...), cfg.aliases()...)
	expanded := registry.NewExpander(aliases, nil).Expand(args[0])

	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":  args[0],
			"output": expanded,
		})
	}

	fmt.Println(expanded)
	return nil
}
