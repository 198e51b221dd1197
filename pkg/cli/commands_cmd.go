package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// CommandEntry describes a single CLI command for introspection output.
type CommandEntry struct {
	Path  string      `yaml:"path"`
	Short string      `yaml:"short"`
	Args  string      `yaml:"args,omitempty"`
	Flags []FlagEntry `yaml:"flags,omitempty"`
}

// FlagEntry describes a single CLI flag for introspection output.
type FlagEntry struct {
	Name    string `yaml:"name"`
	Short   string `yaml:"shorthand,omitempty"`
	Type    string `yaml:"type"`
	Default string `yaml:"default,omitempty"`
	Usage   string `yaml:"usage,omitempty"`
}

func newCommandsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List all available commands with their flags",
		Long:  "Introspects the command tree and lists every command with its path, description, and flags. Works offline, designed for scripted discovery.",
		Example: `  sqlfront commands
  sqlfront commands --filter fmt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := walkCommands(cmd.Root(), "")
			if filter != "" {
				var kept []CommandEntry
				for _, e := range entries {
					if strings.Contains(e.Path, filter) || strings.Contains(e.Short, filter) {
						kept = append(kept, e)
					}
				}
				entries = kept
			}
			out, err := yaml.Marshal(entries)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only list commands whose path or description contains this text")
	return cmd
}

// walkCommands flattens the command tree into entries, skipping hidden and
// builtin helper commands.
func walkCommands(cmd *cobra.Command, prefix string) []CommandEntry {
	path := strings.TrimSpace(prefix + " " + cmd.Name())

	var entries []CommandEntry
	if cmd.Runnable() && !cmd.Hidden {
		entry := CommandEntry{
			Path:  path,
			Short: cmd.Short,
			Args:  strings.TrimPrefix(cmd.Use, cmd.Name()+" "),
		}
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Hidden {
				return
			}
			entry.Flags = append(entry.Flags, FlagEntry{
				Name:    f.Name,
				Short:   f.Shorthand,
				Type:    f.Value.Type(),
				Default: f.DefValue,
				Usage:   f.Usage,
			})
		})
		entries = append(entries, entry)
	}

	for _, sub := range cmd.Commands() {
		if sub.Hidden || sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		entries = append(entries, walkCommands(sub, path)...)
	}
	return entries
}
