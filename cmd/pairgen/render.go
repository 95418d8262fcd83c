package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ersonp/pairgen/internal/domain/entities"
	"github.com/ersonp/pairgen/internal/domain/services"
)

const unpairedLabel = "(unpaired)"

// styles holds the text renderer styles for one output writer.
type styles struct {
	heading lipgloss.Style
	pair    lipgloss.Style
	score   lipgloss.Style
	muted   lipgloss.Style
	warn    lipgloss.Style
}

// newStyles binds styles to w so colors are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		pair:    r.NewStyle().Foreground(lipgloss.Color("252")),
		score:   r.NewStyle().Foreground(lipgloss.Color("214")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func renderResult(w io.Writer, format string, result *entities.Result) error {
	switch format {
	case outputText:
		return renderText(w, result)
	case outputJSON:
		return renderJSON(w, result)
	case outputCSV:
		return renderCSV(w, result)
	case outputMarkdown:
		return renderMarkdown(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderText(w io.Writer, result *entities.Result) error {
	st := newStyles(w)
	scored := result.Mode == entities.ModeScored

	fmt.Fprintln(w, st.heading.Render(fmt.Sprintf("Pairs (%s, %d):", result.Mode, len(result.Pairs))))
	if len(result.Pairs) == 0 {
		fmt.Fprintln(w, st.muted.Render("  No pairs generated."))
	}
	for i, p := range result.Pairs {
		line := fmt.Sprintf("  %d. %s", i+1, pairLabel(p))
		if scored && p.IsComplete() {
			line += " " + st.score.Render(fmt.Sprintf("[score %.2f]", p.Score))
		}
		fmt.Fprintln(w, st.pair.Render(line))
	}

	if len(result.Unmatched) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.heading.Render(fmt.Sprintf("Unmatched (%d):", len(result.Unmatched))))
		for _, e := range result.Unmatched {
			fmt.Fprintln(w, st.muted.Render("  - "+entityLabel(e)))
		}
	}
	return nil
}

func pairLabel(p entities.Pair) string {
	if !p.IsComplete() {
		return p.First.Name + " " + unpairedLabel
	}
	return p.First.Name + " & " + p.Second.Name
}

func entityLabel(e *entities.Entity) string {
	if e.Category == "" {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Category)
}

func renderJSON(w io.Writer, result *entities.Result) error {
	type exportMember struct {
		Name     string   `json:"name"`
		Category string   `json:"category,omitempty"`
		Tags     []string `json:"tags,omitempty"`
	}
	type exportPair struct {
		Members []exportMember `json:"members"`
		Score   *float64       `json:"score,omitempty"`
	}
	type exportResult struct {
		Mode      string         `json:"mode"`
		Pairs     []exportPair   `json:"pairs"`
		Unmatched []exportMember `json:"unmatched"`
	}

	toMember := func(e *entities.Entity) exportMember {
		return exportMember{Name: e.Name, Category: string(e.Category), Tags: e.Tags}
	}

	out := exportResult{
		Mode:      string(result.Mode),
		Pairs:     make([]exportPair, 0, len(result.Pairs)),
		Unmatched: make([]exportMember, 0, len(result.Unmatched)),
	}
	for _, p := range result.Pairs {
		ep := exportPair{}
		for _, m := range p.Members() {
			ep.Members = append(ep.Members, toMember(m))
		}
		if result.Mode == entities.ModeScored && p.IsComplete() {
			score := p.Score
			ep.Score = &score
		}
		out.Pairs = append(out.Pairs, ep)
	}
	for _, e := range result.Unmatched {
		out.Unmatched = append(out.Unmatched, toMember(e))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func renderCSV(w io.Writer, result *entities.Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"pair", "member1", "member2", "status", "score"}); err != nil {
		return err
	}

	for i, p := range result.Pairs {
		second, status := "", "paired"
		if p.IsComplete() {
			second = p.Second.Name
		} else {
			status = "unpaired"
		}
		score := ""
		if result.Mode == entities.ModeScored && p.IsComplete() {
			score = strconv.FormatFloat(p.Score, 'f', 4, 64)
		}
		record := []string{strconv.Itoa(i + 1), p.First.Name, second, status, score}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	for _, e := range result.Unmatched {
		if err := writer.Write([]string{"", e.Name, "", "unmatched", ""}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func renderMarkdown(w io.Writer, result *entities.Result) error {
	fmt.Fprintf(w, "# Pairs (%s)\n\n", result.Mode)

	if len(result.Pairs) == 0 {
		fmt.Fprintln(w, "_No pairs generated._")
	}
	for i, p := range result.Pairs {
		fmt.Fprintf(w, "%d. %s\n", i+1, pairLabel(p))
	}

	if len(result.Unmatched) > 0 {
		fmt.Fprintf(w, "\n## Unmatched\n\n")
		for _, e := range result.Unmatched {
			fmt.Fprintf(w, "- %s\n", entityLabel(e))
		}
	}
	return nil
}

// renderRoster prints the loaded entities and per-category counts.
func renderRoster(w io.Writer, roster []*entities.Entity, skipped []services.RowSkip) {
	st := newStyles(w)

	fmt.Fprintln(w, st.heading.Render(fmt.Sprintf("Roster (%d):", len(roster))))
	for i, e := range roster {
		line := fmt.Sprintf("  %d. %s", i+1, entityLabel(e))
		if len(e.Tags) > 0 {
			line += st.muted.Render(" [" + strings.Join(e.Tags, ", ") + "]")
		}
		fmt.Fprintln(w, line)
	}

	renderCounts(w, st, services.CountRoster(roster))

	if len(skipped) > 0 {
		fmt.Fprintln(w, st.warn.Render(fmt.Sprintf("Skipped %d row(s); use --verbose for details.", len(skipped))))
	}
}

func renderCounts(w io.Writer, st styles, counts services.Counts) {
	if len(counts.ByCategory) == 0 {
		return
	}

	keys := make([]string, 0, len(counts.ByCategory))
	for c := range counts.ByCategory {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, counts.ByCategory[entities.Category(k)]))
	}
	fmt.Fprintln(w, st.muted.Render("  "+strings.Join(parts, ", ")))
}
