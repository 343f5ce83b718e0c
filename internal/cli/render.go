package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vvka-141/dbconfig/internal/generator"
	"github.com/vvka-141/dbconfig/internal/services"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

var (
	colorPrimary = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("240")
	colorSuccess = lipgloss.Color("34")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted).Width(16)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)

// useColor reports whether w is a terminal that accepts styling.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, color: useColor(w)}
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *printer) title(text string) {
	fmt.Fprintln(p.w, p.style(titleStyle, text))
}

func (p *printer) field(label string, value any) {
	fmt.Fprintf(p.w, "  %s %v\n", p.style(labelStyle, label), value)
}

func (p *printer) ok(text string) {
	fmt.Fprintln(p.w, p.style(successStyle, text))
}

func (p *printer) repositories(repos []dbconfig.Repository) {
	p.title(fmt.Sprintf("Repositories (%d)", len(repos)))
	for _, r := range repos {
		p.field(r.Name, fmt.Sprintf("%s @ %s (%s)", r.RepoURL, r.BranchName, shortCommit(r.LatestCommit)))
	}
}

func (p *printer) summary(res *services.GenerationResult) {
	p.repositories(res.Repositories)
	fmt.Fprintln(p.w)

	p.title("Compilation")
	p.field("Config files", len(res.Compilation.Configs))
	p.field("Data owner", valueOr(res.Compilation.DataOwner, "-"))

	if res.Summary == nil {
		return
	}
	fmt.Fprintln(p.w)
	p.title("Scripts")
	for _, c := range generator.RunOrder {
		if n := res.Summary.Counts[c]; n > 0 {
			p.field(c, n)
		}
	}
	fmt.Fprintln(p.w)
	p.ok(fmt.Sprintf("Wrote %d scripts; deployment script: %s", len(res.Summary.Entries), res.Summary.DeploymentScript))
}

func shortCommit(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return valueOr(sha, "-")
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
