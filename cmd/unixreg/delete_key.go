package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteKeyCmd())
}

func newDeleteKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-key <key>",
		Short: "Delete a registry key",
		Long: `The delete-key command deletes a key. A missing key is not an error.

Keys stored as directories are left in place; only a key whose storage is a
plain file is removed.

Example:
  unixreg delete-key "HKCU\Software\OldApp"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteKey(args)
		},
	}
	return cmd
}

func runDeleteKey(args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	k := parseKeyArg(args[0])
	if err := s.DeleteKey(k, nil); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"key":     k.String(),
			"success": true,
		})
	}

	printInfo("✓ Deleted %s\n", k)
	return nil
}
