// SPDX-License-Identifier: MIT
package unit_test

import (
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/unit"
)

var (
	kilo = unit.Prefix{Name: "kilo", Symbol: "k", Magnitude: magnitude.MustInt(1000)}

	metre    = unit.NewBase("metre", "m", "length", dimension.Of("L"))
	second   = unit.NewBase("second", "s", "time", dimension.Of("T"))
	kilogram = unit.NewBase("kilogram", "kg", "mass", dimension.Of("M"))
	radian   = unit.NewBase("radian", "rad", "angle", dimension.Dimensionless)

	kilometre = must(unit.Prefixed(kilo, metre))
	foot      = must(unit.Scaled("foot", "ft", magnitude.MustRational(3048, 10000), metre))
	inch      = must(unit.Scaled("inch", "in", magnitude.MustRational(254, 10000), metre))
	degree    = must(unit.Scaled("degree", "°",
		mustMag(magnitude.Multiply(magnitude.MustRational(1, 180), magnitude.MustIrrational(magnitude.Pi))), radian))

	hertz     = unit.Named("hertz", "Hz", "frequency", unit.Invert(second))
	becquerel = unit.Named("becquerel", "Bq", "activity", unit.Invert(second))
)

func must(u unit.Unit, err error) unit.Unit {
	if err != nil {
		panic(err)
	}

	return u
}

func mustMag(m magnitude.Magnitude, err error) magnitude.Magnitude {
	if err != nil {
		panic(err)
	}

	return m
}
