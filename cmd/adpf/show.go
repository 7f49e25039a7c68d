package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vanderheijden86/adpf/pkg/content"
	"github.com/vanderheijden86/adpf/pkg/export"
	"github.com/vanderheijden86/adpf/pkg/section"
	"github.com/vanderheijden86/adpf/pkg/ui"
)

func newShowCmd() *cobra.Command {
	var (
		pretty bool
		width  int
	)

	cmd := &cobra.Command{
		Use:       "show <section>",
		Short:     "Print one section as markdown",
		Args:      cobra.ExactArgs(1),
		ValidArgs: section.Tags(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 {
				width = terminalWidth(80)
			}
			return showSection(cmd.OutOrStdout(), args[0], pretty, width)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render the markdown for the terminal")
	cmd.Flags().IntVar(&width, "width", 0, "wrap width for --pretty (default: terminal width)")
	return cmd
}

func showSection(w io.Writer, tag string, pretty bool, width int) error {
	e, ok := content.Default().LookupTag(tag)
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", section.ErrUnknownSection, tag, strings.Join(section.Tags(), ", "))
	}

	md := export.SectionMarkdown(e)
	if !pretty {
		_, err := io.WriteString(w, md)
		return err
	}

	r := ui.NewMarkdownRendererWithTheme(width, ui.DefaultTheme(lipgloss.NewRenderer(w)))
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render %s: %w", e.ID, err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
