package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/acro/internal/domain/catalog"
	"github.com/corey/acro/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// palette holds the escape codes in use; the zero value prints plain text.
type palette struct {
	reset, bold, cyan, magenta, green, yellow, gray string
}

func newPalette(color bool) palette {
	if !color {
		return palette{}
	}
	return palette{
		reset:   colorReset,
		bold:    colorBold,
		cyan:    colorCyan,
		magenta: colorMagenta,
		green:   colorGreen,
		yellow:  colorYellow,
		gray:    colorGray,
	}
}

var separator = strings.Repeat("-", 60)

// formatEntry renders one entry like a man page section:
//
//	------------------------------------------------------------
//	Acronym: IDS
//	Definition: Intrusion Detection System
//	Description:
//	Monitors traffic for malicious activity.
//	...
//	See also: SIEM
//	------------------------------------------------------------
//
// Every field is printed; absent ones show "None". The "See also" line is
// only printed when the entry mentions other catalog acronyms.
func formatEntry(e *ports.Entry, mentions []*ports.Entry, p palette) string {
	var sb strings.Builder
	sb.WriteString(p.magenta + separator + p.reset + "\n")
	for _, f := range catalog.DisplayFields(e) {
		label := p.yellow + p.bold
		if f.Field == ports.FieldAcronym {
			label = p.cyan + p.bold
		}
		value := f.Value
		if f.Empty {
			value = p.gray + value + p.reset
		}
		if f.Field == ports.FieldDescription {
			fmt.Fprintf(&sb, "%s%s:%s\n%s\n", label, f.Label, p.reset, value)
			continue
		}
		fmt.Fprintf(&sb, "%s%s:%s %s\n", label, f.Label, p.reset, value)
	}
	if len(mentions) > 0 {
		fmt.Fprintf(&sb, "%sSee also:%s %s\n", p.green+p.bold, p.reset, joinAcronyms(mentions))
	}
	sb.WriteString(p.magenta + separator + p.reset + "\n")
	return sb.String()
}

func joinAcronyms(entries []*ports.Entry) string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Acronym
	}
	return strings.Join(names, ", ")
}

// formatNotFound explains a miss and suggests fuzzy mode.
func formatNotFound(query string, p palette) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n❌ Acronym '%s' not found.\n\n", strings.ToUpper(query))
	sb.WriteString("Tip: Try using -f for fuzzy matching:\n")
	fmt.Fprintf(&sb, "    %sacro %s -f%s\n", p.bold, query, p.reset)
	sb.WriteString(separator + "\n")
	return sb.String()
}

// formatMatches lists fuzzy results before their full entries are printed.
func formatMatches(query string, results []*ports.Entry, p palette) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n❌ No exact match for '%s'.\n", strings.ToUpper(query))
	if len(results) == 0 {
		sb.WriteString("\nNo similar acronyms found.\n")
		sb.WriteString(separator + "\n")
		return sb.String()
	}
	sb.WriteString("\nClosest matches:\n\n")
	for _, e := range results {
		fmt.Fprintf(&sb, "  • %s%s%s\n", p.cyan, e.Acronym, p.reset)
	}
	sb.WriteString("\nShowing similar entries:\n\n")
	return sb.String()
}

// formatPartial lists entries whose acronym or an alias contains query.
func formatPartial(query string, hits []*ports.Entry, p palette) string {
	if len(hits) == 0 {
		return fmt.Sprintf("No acronyms containing '%s'.\n", strings.ToUpper(query))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%d acronyms containing '%s'%s\n", p.bold, len(hits), strings.ToUpper(query), p.reset)
	for _, e := range hits {
		sb.WriteString(summaryLine(e, p))
	}
	return sb.String()
}

// summaryText is the entry's definition, or "None".
func summaryText(e *ports.Entry) string {
	if def := strings.TrimSpace(ports.Value(e.Definition)); def != "" {
		return def
	}
	return catalog.NoValue
}

// summaryLine is the one-line form used by list views.
func summaryLine(e *ports.Entry, p palette) string {
	def := summaryText(e)
	if def == catalog.NoValue {
		def = p.gray + def + p.reset
	}
	return fmt.Sprintf("  %s%-10s%s %s\n", p.cyan, e.Acronym, p.reset, def)
}
