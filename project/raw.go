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

package project

import (
	"fmt"
	"math"
	"sort"

	"seehuhn.de/go/carto/sphere"
)

// EquirectangularRaw is the plate carrée projection.
var EquirectangularRaw = sphere.Transform{
	Forward: func(lambda, phi float64) (float64, float64) {
		return lambda, phi
	},
	Inverse: func(x, y float64) (float64, float64) {
		return x, y
	},
}

// MercatorRaw is the spherical Mercator projection.
var MercatorRaw = sphere.Transform{
	Forward: func(lambda, phi float64) (float64, float64) {
		return lambda, math.Log(math.Tan((halfPi + phi) / 2))
	},
	Inverse: func(x, y float64) (float64, float64) {
		return x, 2*math.Atan(math.Exp(y)) - halfPi
	},
}

// azimuthal returns an azimuthal projection.  The function scale maps
// cos(λ)cos(φ) to the radial scale factor, and angle maps the planar
// distance from the origin back to the angular distance.
func azimuthal(scale func(cxcy float64) float64, angle func(z float64) float64) sphere.Transform {
	return sphere.Transform{
		Forward: func(lambda, phi float64) (float64, float64) {
			cx, cy := math.Cos(lambda), math.Cos(phi)
			k := scale(cx * cy)
			if math.IsInf(k, 1) {
				return 2, 0
			}
			return k * cy * math.Sin(lambda), k * math.Sin(phi)
		},
		Inverse: func(x, y float64) (float64, float64) {
			z := math.Hypot(x, y)
			c := angle(z)
			sc, cc := math.Sin(c), math.Cos(c)
			var phi float64
			if z != 0 {
				phi = sphere.Asin(y * sc / z)
			}
			return math.Atan2(x*sc, z*cc), phi
		},
	}
}

// OrthographicRaw shows the globe as seen from infinitely far away.
var OrthographicRaw = azimuthal(
	func(float64) float64 { return 1 },
	sphere.Asin,
)

// StereographicRaw is the conformal azimuthal projection.
var StereographicRaw = azimuthal(
	func(cxcy float64) float64 { return 1 / (1 + cxcy) },
	func(z float64) float64 { return 2 * math.Atan(z) },
)

// GnomonicRaw maps great circles to straight lines.
var GnomonicRaw = azimuthal(
	func(cxcy float64) float64 { return 1 / cxcy },
	math.Atan,
)

// AzimuthalEqualAreaRaw is the Lambert azimuthal equal-area projection.
var AzimuthalEqualAreaRaw = azimuthal(
	func(cxcy float64) float64 { return math.Sqrt(2 / (1 + cxcy)) },
	func(z float64) float64 { return 2 * sphere.Asin(z/2) },
)

// AzimuthalEquidistantRaw preserves distances from the centre.
var AzimuthalEquidistantRaw = azimuthal(
	func(cxcy float64) float64 {
		c := sphere.Acos(cxcy)
		if c == 0 {
			return 0
		}
		return c / math.Sin(c)
	},
	func(z float64) float64 { return z },
)

// EqualEarthRaw is the Equal Earth pseudocylindrical projection of Šavrič,
// Patterson and Jenny.
var EqualEarthRaw = sphere.Transform{
	Forward: func(lambda, phi float64) (float64, float64) {
		l := math.Asin(eeM * math.Sin(phi))
		l2 := l * l
		l6 := l2 * l2 * l2
		x := lambda * math.Cos(l) / (eeM * (eeA1 + 3*eeA2*l2 + l6*(7*eeA3+9*eeA4*l2)))
		y := l * (eeA1 + eeA2*l2 + l6*(eeA3+eeA4*l2))
		return x, y
	},
	Inverse: func(x, y float64) (float64, float64) {
		l := y
		l2 := l * l
		l6 := l2 * l2 * l2
		for range 12 {
			fy := l*(eeA1+eeA2*l2+l6*(eeA3+eeA4*l2)) - y
			fpy := eeA1 + 3*eeA2*l2 + l6*(7*eeA3+9*eeA4*l2)
			delta := fy / fpy
			l -= delta
			l2 = l * l
			l6 = l2 * l2 * l2
			if math.Abs(delta) < epsilon2 {
				break
			}
		}
		lambda := eeM * x * (eeA1 + 3*eeA2*l2 + l6*(7*eeA3+9*eeA4*l2)) / math.Cos(l)
		return lambda, sphere.Asin(math.Sin(l) / eeM)
	},
}

const (
	eeA1 = 1.340264
	eeA2 = -0.081106
	eeA3 = 0.000893
	eeA4 = 0.003796
	eeM  = 0.8660254037844386 // √3/2
)

// NaturalEarth1Raw is the Natural Earth projection of Tom Patterson.
var NaturalEarth1Raw = sphere.Transform{
	Forward: func(lambda, phi float64) (float64, float64) {
		phi2 := phi * phi
		phi4 := phi2 * phi2
		x := lambda * (0.8707 - 0.131979*phi2 + phi4*(-0.013791+phi4*(0.003971*phi2-0.001529*phi4)))
		y := phi * (1.007226 + phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4)))
		return x, y
	},
	Inverse: func(x, y float64) (float64, float64) {
		phi := y
		for range 25 {
			phi2 := phi * phi
			phi4 := phi2 * phi2
			delta := (phi*(1.007226+phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4))) - y) /
				(1.007226 + phi2*(0.015085*3+phi4*(-0.044475*7+0.028874*9*phi2-0.005916*11*phi4)))
			phi -= delta
			if math.Abs(delta) <= epsilon {
				break
			}
		}
		phi2 := phi * phi
		lambda := x / (0.8707 + phi2*(-0.131979+phi2*(-0.013791+phi2*phi2*phi2*(0.003971-0.001529*phi2))))
		return lambda, phi
	},
}

// Equirectangular returns the plate carrée projection.
func Equirectangular() *Projection {
	return New(EquirectangularRaw).SetScale(152.63)
}

// Mercator returns the spherical Mercator projection.
func Mercator() *Projection {
	return New(MercatorRaw).SetScale(961 / (2 * math.Pi))
}

// Orthographic returns the orthographic projection, clipped to the
// visible hemisphere.
func Orthographic() *Projection {
	return New(OrthographicRaw).SetScale(249.5).SetClipAngle(90 + epsilon)
}

// Stereographic returns the stereographic projection.
func Stereographic() *Projection {
	return New(StereographicRaw).SetScale(250).SetClipAngle(142)
}

// Gnomonic returns the gnomonic projection.
func Gnomonic() *Projection {
	return New(GnomonicRaw).SetScale(144.049).SetClipAngle(60)
}

// AzimuthalEqualArea returns the Lambert azimuthal equal-area projection.
func AzimuthalEqualArea() *Projection {
	return New(AzimuthalEqualAreaRaw).SetScale(124.75).SetClipAngle(180 - 1e-3)
}

// AzimuthalEquidistant returns the azimuthal equidistant projection.
func AzimuthalEquidistant() *Projection {
	return New(AzimuthalEquidistantRaw).SetScale(79.4188).SetClipAngle(180 - 1e-3)
}

// EqualEarth returns the Equal Earth projection.
func EqualEarth() *Projection {
	return New(EqualEarthRaw).SetScale(177.158)
}

// NaturalEarth1 returns the Natural Earth projection.
func NaturalEarth1() *Projection {
	return New(NaturalEarth1Raw).SetScale(175.295)
}

var byName = map[string]func() *Projection{
	"equirectangular":      Equirectangular,
	"mercator":             Mercator,
	"orthographic":         Orthographic,
	"stereographic":        Stereographic,
	"gnomonic":             Gnomonic,
	"azimuthalEqualArea":   AzimuthalEqualArea,
	"azimuthalEquidistant": AzimuthalEquidistant,
	"equalEarth":           EqualEarth,
	"naturalEarth1":        NaturalEarth1,
}

// ByName returns a new projection with default settings, selected by name.
// See [Names] for the list of valid names.
func ByName(name string) (*Projection, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, name)
	}
	return f(), nil
}

// Names lists the projections known to [ByName], in alphabetical order.
func Names() []string {
	res := make([]string, 0, len(byName))
	for name := range byName {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
