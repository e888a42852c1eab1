package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getExpand bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getExpand, "expand", false, "Expand %VAR% references in the value")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key> <name>",
		Short: "Get a registry value",
		Long: `The get command prints the value stored under name in key.
Use @ as the name to read the default value.

Example:
  unixreg get "HKCU\Software\MyApp" Version
  unixreg get "HKCU\Software\MyApp" @
  unixreg get "HKCU\Software\MyApp" InstallDir --expand`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	k := parseKeyArg(args[0])
	name := parseValueName(args[1])

	value, err := s.GetValue(k, name)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	if getExpand {
		value = s.Config().Expander().Expand(value)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"key":   k.String(),
			"name":  name,
			"value": value,
		})
	}

	fmt.Println(value)
	return nil
}
