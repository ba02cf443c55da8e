// Package report summarizes generated shapes for terminal output.
//
// [Table] lists every shape record with one row per shape:
//
//	CNT SHA X Y RAD RX RY W H R G B OP
//
// CNT counts from 0 in drawing order and SHA is the numeric kind tag
// (0 circle, 1 rectangle, 2 ellipse). [Summary] condenses the same records
// into per-kind counts and opacity figures.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/cardgen/pkg/shape"
)

// Headers are the column names of [Table], in order.
var Headers = []string{"CNT", "SHA", "X", "Y", "RAD", "RX", "RY", "W", "H", "R", "G", "B", "OP"}

var (
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// Row returns the cells of record p at position i.
func Row(i int, p shape.Params) []string {
	return []string{
		strconv.Itoa(i),
		strconv.Itoa(int(p.Kind)),
		strconv.Itoa(p.X),
		strconv.Itoa(p.Y),
		strconv.Itoa(p.Radius),
		strconv.Itoa(p.RX),
		strconv.Itoa(p.RY),
		strconv.Itoa(p.Width),
		strconv.Itoa(p.Height),
		strconv.Itoa(int(p.Fill.R)),
		strconv.Itoa(int(p.Fill.G)),
		strconv.Itoa(int(p.Fill.B)),
		strconv.FormatFloat(p.Opacity, 'f', -1, 64),
	}
}

// Line returns record p as a single space-separated line without the
// counter: "SHA X Y RAD RX RY W H R G B OP".
func Line(p shape.Params) string {
	return strings.Join(Row(0, p)[1:], " ")
}

// Table renders records as a bordered table.
func Table(records []shape.Params) string {
	rows := make([][]string, len(records))
	for i, p := range records {
		rows[i] = Row(i, p)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
	return t.String()
}

// Stats condenses a set of shape records.
type Stats struct {
	Total       int
	Circles     int
	Rectangles  int
	Ellipses    int
	MinOpacity  float64
	MaxOpacity  float64
	MeanOpacity float64

	// Shapes by strongest fill channel.
	RedDominant   int
	GreenDominant int
	BlueDominant  int
}

// Summary computes Stats over records. Opacity figures are zero when records
// is empty.
func Summary(records []shape.Params) Stats {
	s := Stats{Total: len(records)}
	if len(records) == 0 {
		return s
	}

	s.MinOpacity, s.MaxOpacity = 1, 0
	var sum float64
	for _, p := range records {
		switch p.Kind {
		case shape.Circle:
			s.Circles++
		case shape.Rectangle:
			s.Rectangles++
		case shape.Ellipse:
			s.Ellipses++
		}
		switch p.Fill.Dominant() {
		case 'r':
			s.RedDominant++
		case 'g':
			s.GreenDominant++
		case 'b':
			s.BlueDominant++
		}
		s.MinOpacity = min(s.MinOpacity, p.Opacity)
		s.MaxOpacity = max(s.MaxOpacity, p.Opacity)
		sum += p.Opacity
	}
	s.MeanOpacity = sum / float64(len(records))
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("%d shapes (%d circles, %d rectangles, %d ellipses), opacity %.2f..%.2f mean %.2f, dominant r/g/b %d/%d/%d",
		s.Total, s.Circles, s.Rectangles, s.Ellipses, s.MinOpacity, s.MaxOpacity, s.MeanOpacity,
		s.RedDominant, s.GreenDominant, s.BlueDominant)
}
