/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	crossedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// BuildScheduleOutputStyled is BuildScheduleOutput with each flight line
// coloured after the quadrant its left (or only) flight came from.
func BuildScheduleOutputStyled(s *Schedule) string {
	var sb strings.Builder
	for i, line := range FormatTable(s.Table()) {
		line = strings.TrimRight(line, " ")
		switch {
		case i == 0:
			line = headerStyle.Render(line)
		case s.Lines[i-1].Kind == LineFlight:
			line = s.lineStyle(s.Lines[i-1]).Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(crossedStyle.Render(
		fmt.Sprintf("Crossing time: %v", s.CrossingTime)))
	sb.WriteString("\n")

	return sb.String()
}

func (s *Schedule) lineStyle(l Line) lipgloss.Style {
	r := l.Left
	if r == nil {
		r = l.Right
	}
	style := lipgloss.NewStyle()
	if r == nil {
		return style
	}
	if tint := Tint(s.Config, r.Quadrant); tint != "" {
		style = style.Background(lipgloss.Color(tint)).
			Foreground(lipgloss.Color("#1F1F1F"))
	}
	return style
}
