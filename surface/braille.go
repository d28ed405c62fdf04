// seehuhn.de/go/carto - cartographic projections and geometry streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package surface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seehuhn.de/go/carto/geopath"
)

// Braille is a monochrome drawing surface for text terminals.
//
// Every character cell holds a 2x4 grid of dots, using the Unicode braille
// patterns.  Coordinates are measured in dots, with the origin in the
// top-left corner.  Only outlines are drawn.
type Braille struct {
	w, h  int // in cells
	cells []uint8

	hasCur     bool
	curX, curY float64
	startX     float64
	startY     float64
}

var _ geopath.Context = (*Braille)(nil)

// NewBraille allocates a surface of the given size in character cells.
// The drawing area is 2*cols dots wide and 4*rows dots high.
func NewBraille(cols, rows int) *Braille {
	return &Braille{
		w:     cols,
		h:     rows,
		cells: make([]uint8, cols*rows),
	}
}

// Size returns the size of the drawing area in dots.
func (b *Braille) Size() (width, height int) {
	return 2 * b.w, 4 * b.h
}

// Set switches on the dot at (x, y).  Dots outside the drawing area are
// ignored.
func (b *Braille) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.cells[cy*b.w+cx] |= dotBits[x%2][y%4]
}

// dotBits maps a dot position within a cell to its bit in the braille
// pattern.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (b *Braille) MoveTo(x, y float64) {
	b.hasCur = true
	b.curX, b.curY = x, y
	b.startX, b.startY = x, y
	b.plot(x, y)
}

func (b *Braille) LineTo(x, y float64) {
	if !b.hasCur {
		b.MoveTo(x, y)
		return
	}
	b.line(b.curX, b.curY, x, y)
	b.curX, b.curY = x, y
}

func (b *Braille) ClosePath() {
	if !b.hasCur {
		return
	}
	b.line(b.curX, b.curY, b.startX, b.startY)
	b.curX, b.curY = b.startX, b.startY
}

// Arc implements [geopath.Context].  The arc is drawn as a polygon with
// roughly one vertex per dot of arc length.
func (b *Braille) Arc(x, y, r, a0, a1 float64) {
	n := max(int(math.Ceil(math.Abs(a1-a0)*r)), 4)
	for i := 0; i <= n; i++ {
		phi := a0 + (a1-a0)*float64(i)/float64(n)
		px, py := x+r*math.Cos(phi), y+r*math.Sin(phi)
		if i == 0 && !b.hasCur {
			b.MoveTo(px, py)
		} else {
			b.LineTo(px, py)
		}
	}
}

func (b *Braille) plot(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	b.Set(int(math.Floor(x)), int(math.Floor(y)))
}

// line draws a line using Bresenham's algorithm on the dot grid.
func (b *Braille) line(x0f, y0f, x1f, y1f float64) {
	if !finite(x0f) || !finite(y0f) || !finite(x1f) || !finite(y1f) {
		return
	}
	// Lines far outside the drawing area are clamped, so that the loop
	// below stays short.
	w, h := b.Size()
	lim := float64(4 * (w + h + 1))
	x0, y0 := clampInt(x0f, lim), clampInt(y0f, lim)
	x1, y1 := clampInt(x1f, lim), clampInt(y1f, lim)

	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		b.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Clear switches off all dots.
func (b *Braille) Clear() {
	clear(b.cells)
	b.hasCur = false
}

// String returns the drawing as lines of braille characters.
func (b *Braille) String() string {
	var sb strings.Builder
	for y := range b.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.cells[y*b.w : (y+1)*b.w] {
			sb.WriteRune(rune(brailleBase + int(c)))
		}
	}
	return sb.String()
}

// Framed returns the drawing inside a rounded border, with an optional
// title on top.
func (b *Braille) Framed(title string) string {
	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#243141")).
		Render(b.String())
	if title == "" {
		return body
	}
	head := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(title)
	return lipgloss.JoinVertical(lipgloss.Left, head, body)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func clampInt(x, lim float64) int {
	return int(math.Floor(max(-lim, min(lim, x))))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

const brailleBase = 0x2800
