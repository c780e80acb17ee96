package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/core"
)

// styleCache maps core.Style to lipgloss styles. Only the game loop renders,
// so it is not guarded.
var styleCache = map[core.Style]lipgloss.Style{}

func lipglossStyle(st core.Style) lipgloss.Style {
	if s, ok := styleCache[st]; ok {
		return s
	}
	s := lipgloss.NewStyle().Bold(st.Bold)
	if code := st.Fg.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code := st.Bg.ANSI(); code != "" {
		s = s.Background(lipgloss.Color(code))
	}
	styleCache[st] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipglossStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
