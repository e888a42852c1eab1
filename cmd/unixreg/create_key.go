package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/unixreg/registry"
)

func init() {
	rootCmd.AddCommand(newCreateKeyCmd())
}

func newCreateKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-key <key>",
		Short: "Create a registry key",
		Long: `The create-key command creates a key and any missing parents.
Creating a key that already exists succeeds.

Example:
  unixreg create-key "HKCU\Software\MyApp"
  unixreg create-key "HKLM\Software\MyApp\Settings" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateKey(args)
		},
	}
	return cmd
}

func runCreateKey(args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	k, err := s.CreateKey(parseKeyArg(args[0]), registry.NoSubKey())
	if err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}
	defer s.CloseKey(k)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"key":     k.String(),
			"path":    s.Resolver().Resolve(k),
			"success": true,
		})
	}

	printInfo("✓ Created %s\n", k)
	printVerbose("  Path: %s\n", s.Resolver().Resolve(k))
	return nil
}
