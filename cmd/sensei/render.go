package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"sensei/internal/catalog"
	"sensei/internal/diag"
	"sensei/internal/exercise"
	"sensei/internal/tutor"
)

// renderer turns check results into terminal output: one location-prefixed
// line per finding plus the source line it points at.
type renderer struct {
	cat *catalog.Catalog

	errColor  *color.Color
	warnColor *color.Color
	okColor   *color.Color
	dimColor  *color.Color
}

func newRenderer(cat *catalog.Catalog) *renderer {
	return &renderer{
		cat:       cat,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow, color.Bold),
		okColor:   color.New(color.FgGreen, color.Bold),
		dimColor:  color.New(color.Faint),
	}
}

// renderResult formats every finding of one check, ending with a newline.
func (r *renderer) renderResult(path string, res *tutor.Result) string {
	if len(res.Diags) == 0 {
		return r.dimColor.Sprint("nothing to report; does the file declare an analyzer class?") + "\n"
	}
	var b strings.Builder
	for _, d := range res.Diags {
		b.WriteString(r.renderDiag(path, res, d))
	}
	return b.String()
}

// renderDiag formats one finding as
//
//	<path>:<line>:<col>: <severity>: <message> [<id>]
//	    <source line>
func (r *renderer) renderDiag(path string, res *tutor.Result, d diag.Diagnostic) string {
	pos := res.File.Text.PositionFor(d.Span.Start)
	sev := r.cat.Severity(d.ID)

	var label string
	switch sev {
	case diag.SevError:
		label = r.errColor.Sprint(sev.String())
	case diag.SevWarning:
		label = r.warnColor.Sprint(sev.String())
	default:
		label = r.okColor.Sprint(sev.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%s: %s: %s %s\n",
		path, pos, label, r.cat.Render(d), r.dimColor.Sprintf("[%s]", d.ID))
	if line := res.File.Text.Line(d.Span.Start); strings.TrimSpace(line) != "" {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	return b.String()
}

// renderProgress formats one exercise's list entry with a completion marker.
func (r *renderer) renderProgress(name string) string {
	w, err := exercise.Open(name)
	if err != nil {
		return fmt.Sprintf("  %s  %s", name, r.dimColor.Sprintf("(%v)", err))
	}
	res, err := tutor.CheckFile(w.SourcePath())
	if err != nil {
		return fmt.Sprintf("  %s  %s", name, r.dimColor.Sprintf("(%v)", err))
	}
	status := r.warnColor.Sprint("in progress")
	if res.Complete() {
		status = r.okColor.Sprint("complete")
	}
	return fmt.Sprintf("  %-20s %s", name, status)
}
