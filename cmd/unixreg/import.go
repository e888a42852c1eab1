package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/unixreg/internal/logger"
	"github.com/joshuapare/unixreg/registry"
)

var (
	importEncoding string
	importOptimize bool
)

func init() {
	cmd := newImportCmd()
	cmd.Flags().StringVar(&importEncoding, "encoding", "",
		"Encoding when the file has no byte order mark (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	cmd.Flags().BoolVar(&importOptimize, "optimize", false,
		"Skip edits that a later line or file overwrites")
	rootCmd.AddCommand(cmd)
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <reg-file>...",
		Short: "Apply .reg files to the registry",
		Long: `The import command applies Windows .reg files (Registry Editor format)
in the order given, so later files override earlier ones.

Sections create keys, "name"="value" lines set values, "name"=- deletes a
value and [-key] sections delete keys. The whole file is parsed before
anything is written, so a malformed file changes nothing. With --optimize,
values overwritten later in the batch are never written.

String values are stored unescaped; dword: and hex: values are stored as
their .reg text.

Examples:
  unixreg import settings.reg
  unixreg import -v exported.reg --encoding windows-1252
  unixreg import base.reg patch.reg --optimize`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args)
		},
	}
	return cmd
}

func runImport(args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	for _, path := range args {
		printVerbose("Importing %s\n", path)
	}

	stats, err := registry.ImportFiles(s, args, registry.ImportOptions{
		Encoding: importEncoding,
		Optimize: importOptimize,
	})
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	logger.Info("import finished",
		zap.Strings("files", args),
		zap.Int("values_set", stats.ValuesSet),
		zap.Int("skipped", stats.Skipped))

	if jsonOut {
		return printJSON(map[string]interface{}{
			"files":          args,
			"keys_created":   stats.KeysCreated,
			"keys_deleted":   stats.KeysDeleted,
			"values_set":     stats.ValuesSet,
			"values_deleted": stats.ValuesDeleted,
			"skipped":        stats.Skipped,
			"success":        true,
		})
	}

	printInfo("\nImported %s:\n", strings.Join(args, ", "))
	printInfo("  Keys created:   %d\n", stats.KeysCreated)
	printInfo("  Keys deleted:   %d\n", stats.KeysDeleted)
	printInfo("  Values set:     %d\n", stats.ValuesSet)
	printInfo("  Values deleted: %d\n", stats.ValuesDeleted)
	if importOptimize {
		printInfo("  Skipped:        %d\n", stats.Skipped)
	}
	printInfo("\n✓ Import complete\n")
	return nil
}
