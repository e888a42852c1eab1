package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/unixreg/pkg/types"
)

var (
	setType      string
	setCreateKey bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "sz", "Value type (sz, expand_sz, dword, qword, binary, multi_sz)")
	cmd.Flags().BoolVar(&setCreateKey, "create-key", true, "Create key if it doesn't exist")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <name> <value>",
		Short: "Set a registry value",
		Long: `The set command stores value under name in key. Use @ as the name to
set the default value. The type is validated but values are always stored as
text.

Example:
  unixreg set "HKCU\Software\MyApp" Version 1.0.0
  unixreg set "HKCU\Software\MyApp" InstallDir "%USERPROFILE%\MyApp" --type expand_sz
  unixreg set "HKCU\Software\NewApp" Name Test --create-key=false`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	typ, ok := types.ParseRegType(setType)
	if !ok {
		return fmt.Errorf("unknown value type %q", setType)
	}

	s, err := openSession()
	if err != nil {
		return err
	}

	k := parseKeyArg(args[0])
	name := parseValueName(args[1])
	value := args[2]

	if setCreateKey {
		created, err := s.CreateKey(k, nil)
		if err != nil {
			return fmt.Errorf("failed to create key: %w", err)
		}
		defer s.CloseKey(created)
	}

	if err := s.SetValueEx(k, name, typ, value); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"key":     k.String(),
			"name":    name,
			"type":    typ.String(),
			"success": true,
		})
	}

	printInfo("✓ Set %s\\%s\n", k, args[1])
	printVerbose("  Type: %s\n", typ)
	printVerbose("  File: %s\n", s.Resolver().ValuePath(k, name))
	return nil
}
