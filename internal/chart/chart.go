// Package chart turns rating captures into a line chart rendered as inline SVG.
package chart

import (
	"fmt"
	"strings"

	"github.com/agstats/shionweb/internal/models"
)

const labelLayout = "2006-01-02"

// Point is one plotted capture.
type Point struct {
	Label  string
	Rating int
}

// Series is the plotted rating history, oldest first.
type Series struct {
	Points []Point
}

// FromCaptures builds a series. A single capture is duplicated so the line
// has a span to draw; the result is a flat line, not a lone dot.
func FromCaptures(captures []models.PlayerHistoryCapture) Series {
	if len(captures) == 0 {
		return Series{}
	}
	if len(captures) == 1 {
		p := Point{Label: captures[0].CapturedAt.Format(labelLayout), Rating: captures[0].Rating}
		return Series{Points: []Point{p, p}}
	}
	points := make([]Point, len(captures))
	for i, c := range captures {
		points[i] = Point{Label: c.CapturedAt.Format(labelLayout), Rating: c.Rating}
	}
	return Series{Points: points}
}

func (s Series) Empty() bool {
	return len(s.Points) == 0
}

// Bounds returns the lowest and highest rating in the series.
func (s Series) Bounds() (lo, hi int) {
	for i, p := range s.Points {
		if i == 0 || p.Rating < lo {
			lo = p.Rating
		}
		if i == 0 || p.Rating > hi {
			hi = p.Rating
		}
	}
	return lo, hi
}

// Path renders the series as an SVG path in a width x height box with y
// growing downward. A flat series is drawn through the vertical middle.
func (s Series) Path(width, height float64) string {
	if len(s.Points) < 2 {
		return ""
	}
	lo, hi := s.Bounds()
	span := float64(hi - lo)
	step := width / float64(len(s.Points)-1)

	var sb strings.Builder
	for i, p := range s.Points {
		y := height / 2
		if span > 0 {
			y = height - (float64(p.Rating-lo)/span)*height
		}
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%s%.1f,%.1f", cmd, float64(i)*step, y))
	}
	return sb.String()
}
