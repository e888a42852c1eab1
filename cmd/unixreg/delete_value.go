package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteValueCmd())
}

func newDeleteValueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-value <key> <name>",
		Short: "Delete a registry value",
		Long: `The delete-value command removes a value from a key. A missing value is
not an error.

Example:
  unixreg delete-value "HKCU\Software\MyApp" Obsolete`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(args)
		},
	}
	return cmd
}

func runDeleteValue(args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	k := parseKeyArg(args[0])
	name := parseValueName(args[1])
	if err := s.DeleteValue(k, name); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"key":     k.String(),
			"name":    name,
			"success": true,
		})
	}

	printInfo("✓ Deleted %s\\%s\n", k, args[1])
	return nil
}
