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

package geopath

import (
	"math"
	"strconv"
	"strings"
)

// PathString renders geometry as SVG path data.
//
// Lines become "M" and "L" commands, polygon rings are closed with "Z" and
// isolated points are drawn as circles of radius PointRadius.
//
// The zero value is usable but rounds all coordinates to integers and
// draws points as zero-radius circles.  Use [NewPathString] to get the
// usual defaults.
type PathString struct {
	// PointRadius is the radius of the circles drawn for points.
	PointRadius float64

	// Digits is the number of fractional digits in the output.
	// Negative values select the shortest exact representation.
	// Zero rounds to integers.
	Digits int

	buf    strings.Builder
	inPoly bool
	state  lineState

	circleRadius float64
	circleDigits int
	circle       string
}

// lineState records the position within a line.
type lineState int

const (
	outsideLine lineState = iota
	lineFirst
	lineRest
)

// NewPathString returns a PathString with point radius 4.5 and full
// precision output.
func NewPathString() *PathString {
	return &PathString{PointRadius: 4.5, Digits: -1}
}

func (s *PathString) Point(x, y, _ float64) {
	switch s.state {
	case lineFirst:
		s.buf.WriteByte('M')
		s.pair(x, y)
		s.state = lineRest
	case lineRest:
		s.buf.WriteByte('L')
		s.pair(x, y)
	default:
		s.buf.WriteByte('M')
		s.pair(x, y)
		s.buf.WriteString(s.circlePath())
	}
}

func (s *PathString) LineStart() {
	s.state = lineFirst
}

func (s *PathString) LineEnd() {
	if s.inPoly {
		s.buf.WriteByte('Z')
	}
	s.state = outsideLine
}

func (s *PathString) PolygonStart() { s.inPoly = true }
func (s *PathString) PolygonEnd()   { s.inPoly = false }
func (s *PathString) Sphere()       {}

// Result returns the path data and clears the buffer.  The second return
// value is false if no path data was generated.
func (s *PathString) Result() (string, bool) {
	res := s.buf.String()
	s.buf.Reset()
	return res, res != ""
}

// circlePath returns the relative path of a circle around the current
// point.  The result is cached.
func (s *PathString) circlePath() string {
	r := s.PointRadius
	if s.circle != "" && r == s.circleRadius && s.Digits == s.circleDigits {
		return s.circle
	}
	rs := s.format(r)
	var b strings.Builder
	b.WriteString("m0,")
	b.WriteString(rs)
	b.WriteString("a")
	b.WriteString(rs + "," + rs)
	b.WriteString(" 0 1,1 0,")
	b.WriteString(s.format(-2 * r))
	b.WriteString("a")
	b.WriteString(rs + "," + rs)
	b.WriteString(" 0 1,1 0,")
	b.WriteString(s.format(2 * r))
	b.WriteString("z")
	s.circle = b.String()
	s.circleRadius = r
	s.circleDigits = s.Digits
	return s.circle
}

func (s *PathString) pair(x, y float64) {
	s.buf.WriteString(s.format(x))
	s.buf.WriteByte(',')
	s.buf.WriteString(s.format(y))
}

func (s *PathString) format(x float64) string {
	if s.Digits >= 0 {
		k := math.Pow(10, float64(s.Digits))
		x = math.Round(x*k) / k
	}
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
