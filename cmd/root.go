package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gunktools/gunk/internal/rules"
)

var (
	// Global flags
	configPath     string
	includeNames   []string
	includeExts    []string
	includeFolders []string
	excludeRules   []string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "gunk",
	Short: "Find and clean junk files",
	Long: `gunk - Find and clean junk files.

Scans a directory tree for cache folders, OS metadata files, logs, and
temp files, then lets you review and delete them interactively.
Running gunk with no arguments scans your home directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON rules file")
	rootCmd.PersistentFlags().StringSliceVar(&includeNames, "include-name", nil, "Additional exact file names to match")
	rootCmd.PersistentFlags().StringSliceVar(&includeExts, "include-ext", nil, "Additional file extensions to match (with leading dot)")
	rootCmd.PersistentFlags().StringSliceVar(&includeFolders, "include-folder", nil, "Additional folder names to match")
	rootCmd.PersistentFlags().StringSliceVar(&excludeRules, "exclude", nil, "Rules to drop, by literal value")

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveRoot turns the optional positional argument into an absolute scan
// root, defaulting to the home directory and expanding a leading tilde.
func resolveRoot(args []string) (string, error) {
	if len(args) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return home, nil
	}

	path := args[0]
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}

// buildRules assembles the active rule set: built-ins, then the config file
// overlay, then command-line additions and exclusions.
func buildRules(root string) (*rules.Set, error) {
	set := rules.Default()

	if path, ok := rules.ResolveConfigPath(root, configPath); ok {
		cfg, err := rules.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		set, err = cfg.Apply(set)
		if err != nil {
			return nil, err
		}
	}

	if len(includeNames)+len(includeExts)+len(includeFolders)+len(excludeRules) > 0 {
		overlay := rules.Config{
			Names:      includeNames,
			Extensions: includeExts,
			Folders:    includeFolders,
			Exclude:    excludeRules,
		}
		var err error
		set, err = overlay.Apply(set)
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}
