package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vanderheijden86/adpf/pkg/config"
	"github.com/vanderheijden86/adpf/pkg/debug"
	"github.com/vanderheijden86/adpf/pkg/section"
	"github.com/vanderheijden86/adpf/pkg/version"
)

// rootOptions carries the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	debug      bool

	// TUI only
	section string
	render  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "adpf",
		Short: "Browse the Archetypal Dynamics Prosperity Framework",
		Long: `adpf presents the Archetypal Dynamics Prosperity Framework site: seven
sections covering integrity, diversity, prosperity, modularity, scale and
the mapped knowledge systems.

Run without arguments to open the interactive viewer.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				debug.SetLogger(debug.NewLogger(cmd.ErrOrStderr()))
				debug.SetEnabled(true)
			}
			debug.Section(cmd.CommandPath())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/adpf/config.yaml)")
	pf.BoolVar(&opts.debug, "debug", false, "write debug logs to stderr (same as ADPF_DEBUG=1)")

	f := cmd.Flags()
	f.StringVarP(&opts.section, "section", "s", "", "section to open first ("+strings.Join(section.Tags(), ", ")+")")
	f.StringVar(&opts.render, "render", "", "render mode: native or markdown")

	cmd.AddCommand(
		newSectionsCmd(),
		newShowCmd(),
		newExportCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig reads the config file. Read and validation failures are
// reported on stderr and never fatal; whatever could be loaded is used.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, string) {
	path := opts.configPath
	if path == "" {
		path = config.ConfigPath()
	}

	var (
		cfg config.Config
		err error
	)
	if path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFrom(path)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	debug.Dump("config", cfg)
	return cfg, path
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the width of stdout, or fallback when it is not a
// terminal.
func terminalWidth(fallback int) int {
	if !stdoutIsTerminal() {
		return fallback
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
