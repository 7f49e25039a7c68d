package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vanderheijden86/adpf/pkg/config"
	"github.com/vanderheijden86/adpf/pkg/content"
	"github.com/vanderheijden86/adpf/pkg/debug"
	"github.com/vanderheijden86/adpf/pkg/section"
	"github.com/vanderheijden86/adpf/pkg/ui"
	"github.com/vanderheijden86/adpf/pkg/watcher"
)

// EnvAutoClose quits the TUI after the given number of milliseconds, for
// automated runs.
const EnvAutoClose = "ADPF_TUI_AUTOCLOSE_MS"

// buildModel resolves the start section and render mode from flags and
// config. Flags win over the config file.
func buildModel(cfg config.Config, opts *rootOptions) (ui.Model, error) {
	start := cfg.StartSection()
	if opts.section != "" {
		id, ok := section.Parse(opts.section)
		if !ok {
			return ui.Model{}, fmt.Errorf("--section: %w: %q", section.ErrUnknownSection, opts.section)
		}
		start = id
	}

	mode := cfg.UI.RenderMode
	if opts.render != "" {
		if opts.render != config.RenderNative && opts.render != config.RenderMarkdown {
			return ui.Model{}, fmt.Errorf("--render: unknown mode %q (want native or markdown)", opts.render)
		}
		mode = opts.render
	}

	sel := section.NewSelector(start)
	sel.OnChange(func(from, to section.ID) {
		debug.Log("section %s -> %s", from, to)
	})

	return ui.NewModel(content.Default(), sel,
		ui.WithRenderMode(mode),
		ui.WithShowHelp(cfg.UI.ShowHelp),
	), nil
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, path := loadConfig(cmd, opts)
	m, err := buildModel(cfg, opts)
	if err != nil {
		return err
	}
	return runTUIProgram(m, path)
}

func runTUIProgram(m ui.Model, configPath string) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	if configPath != "" {
		cw, err := watcher.New(configPath, func(cfg config.Config, err error) {
			p.Send(ui.ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err == nil {
			err = cw.Start()
		}
		if err != nil {
			debug.Log("config watcher disabled: %v", err)
		} else {
			defer cw.Stop()
		}
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	if v := os.Getenv(EnvAutoClose); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}
				p.Quit()
			}()
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
