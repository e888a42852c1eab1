package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/unixreg/pkg/types"
	"github.com/joshuapare/unixreg/registry"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where the registry is stored",
		Long: `The info command shows the resolved registry root, the directory each
root key maps to and the environment aliases used by expand.

Example:
  unixreg info
  unixreg info --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type infoResult struct {
	Root    string            `json:"root"`
	Exists  bool              `json:"exists"`
	Roots   map[string]string `json:"roots"`
	Aliases map[string]string `json:"aliases"`
}

func runInfo(args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	cfg := s.Config()

	res := infoResult{
		Root:    cfg.Root,
		Roots:   make(map[string]string, len(types.RootKeys)),
		Aliases: make(map[string]string, len(cfg.Aliases)),
	}

	_, err = os.Stat(cfg.Root)
	switch {
	case err == nil:
		res.Exists = true
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to stat registry root: %w", err)
	}

	for _, root := range types.RootKeys {
		res.Roots[root.String()] = s.Resolver().Resolve(registry.FromRoot(root))
	}
	for _, a := range cfg.Aliases {
		res.Aliases[a.From] = a.To
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nRegistry Information:\n")
	printInfo("  Root: %s\n", res.Root)
	if !res.Exists {
		printInfo("  (not created yet)\n")
	}
	printInfo("\nRoot keys:\n")
	for _, root := range types.RootKeys {
		printInfo("  %-22s %s\n", root.String(), res.Roots[root.String()])
	}
	printInfo("\nAliases:\n")
	for _, a := range cfg.Aliases {
		printInfo("  %%%s%% -> $%s\n", a.From, a.To)
	}
	return nil
}
