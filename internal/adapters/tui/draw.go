package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

var (
	styleNormal   = tcell.StyleDefault
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleLabel    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleInput    = tcell.StyleDefault.Underline(true)
)

// rect is a screen region; x, y is the top-left corner.
type rect struct {
	x, y, w, h int
}

// centered returns a w x h rect centered on a screen of sw x sh, shrunk to
// leave a margin on every side.
func centered(sw, sh, w, h, margin int) rect {
	if limit := sw - 2*margin; w > limit {
		w = limit
	}
	if limit := sh - 2*margin; h > limit {
		h = limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return rect{x: (sw - w) / 2, y: (sh - h) / 2, w: w, h: h}
}

// drawText writes s at x, y clipped to width cells. Returns the cells used.
func drawText(s tcell.Screen, x, y, width int, style tcell.Style, text string) int {
	used := 0
	for _, r := range text {
		rw := uniseg.StringWidth(string(r))
		if rw == 0 {
			continue
		}
		if used+rw > width {
			break
		}
		s.SetContent(x+used, y, r, nil, style)
		used += rw
	}
	return used
}

// fill paints a region with spaces.
func fill(s tcell.Screen, r rect, style tcell.Style) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawBox clears r and draws a rounded border with an optional title on the
// top edge.
func drawBox(s tcell.Screen, r rect, title string) {
	if r.w < 2 || r.h < 2 {
		return
	}
	fill(s, r, styleNormal)
	right, bottom := r.x+r.w-1, r.y+r.h-1
	for x := r.x + 1; x < right; x++ {
		s.SetContent(x, r.y, '─', nil, styleBorder)
		s.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := r.y + 1; y < bottom; y++ {
		s.SetContent(r.x, y, '│', nil, styleBorder)
		s.SetContent(right, y, '│', nil, styleBorder)
	}
	s.SetContent(r.x, r.y, '╭', nil, styleBorder)
	s.SetContent(right, r.y, '╮', nil, styleBorder)
	s.SetContent(r.x, bottom, '╰', nil, styleBorder)
	s.SetContent(right, bottom, '╯', nil, styleBorder)

	if title != "" && r.w > 6 {
		drawText(s, r.x+2, r.y, r.w-4, styleTitle, " "+title+" ")
	}
}

// wrap splits text into lines of at most width cells, breaking on spaces
// where possible. Explicit newlines are kept.
func wrap(text string, width int) []string {
	if width < 1 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		start := len(out)
		line := ""
		for _, word := range strings.Fields(para) {
			for uniseg.StringWidth(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				head, tail := splitWidth(word, width)
				out = append(out, head)
				word = tail
			}
			if word == "" {
				continue
			}
			switch {
			case line == "":
				line = word
			case uniseg.StringWidth(line)+1+uniseg.StringWidth(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		if line != "" || len(out) == start {
			out = append(out, line)
		}
	}
	return out
}

// splitWidth cuts s after the grapheme clusters that fit in width cells.
// The head always holds at least one cluster, even one wider than width.
func splitWidth(s string, width int) (string, string) {
	used, n := 0, 0
	rest, state := s, -1
	for rest != "" {
		cluster, next, w, st := uniseg.FirstGraphemeClusterInString(rest, state)
		if n > 0 && used+w > width {
			break
		}
		used += w
		n += len(cluster)
		rest, state = next, st
	}
	return s[:n], s[n:]
}

// scroll keeps cursor inside a window of rows lines starting at offset.
func scroll(cursor, offset, rows int) int {
	if rows < 1 {
		return cursor
	}
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+rows {
		return cursor - rows + 1
	}
	return offset
}
