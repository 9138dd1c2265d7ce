// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/unit"
)

// siUnits are the SI units other systems are defined from.
type siUnits struct {
	metre, kilogram, gram, second, hour unit.Unit
	newton, joule, pascal              unit.Unit
}

func defineSI(b *builder) siUnits {
	var u siUnits
	u.metre = b.add(SI, unit.NewBase("metre", "m", "length", dimension.Of(Length)))
	u.kilogram = b.add(SI, unit.NewBase("kilogram", "kg", "mass", dimension.Of(Mass)))
	u.second = b.add(SI, unit.NewBase("second", "s", "time", dimension.Of(Time)))
	ampere := b.add(SI, unit.NewBase("ampere", "A", "electric current", dimension.Of(Current)))
	kelvin := b.add(SI, unit.NewBase("kelvin", "K", "temperature", dimension.Of(Temperature)))
	mole := b.add(SI, unit.NewBase("mole", "mol", "amount of substance", dimension.Of(Amount)))
	candela := b.add(SI, unit.NewBase("candela", "cd", "luminous intensity", dimension.Of(Luminous)))

	radian := b.add(SI, unit.NewBase("radian", "rad", "angle", dimension.Dimensionless))
	b.add(SI, unit.NewBase("steradian", "sr", "solid angle", dimension.Dimensionless))

	u.gram = b.add(SI, b.must(unit.Scaled("gram", "g", magnitude.MustRational(1, 1000), u.kilogram)))

	perSecond := unit.Invert(u.second)
	hertz := b.add(SI, unit.Named("hertz", "Hz", "frequency", perSecond))
	becquerel := b.add(SI, unit.Named("becquerel", "Bq", "activity", perSecond))

	s2 := b.must(unit.Pow(u.second, 2, 1))
	m2 := b.must(unit.Pow(u.metre, 2, 1))
	u.newton = b.add(SI, unit.Named("newton", "N", "force",
		b.must(unit.Divide(b.must(unit.Multiply(u.kilogram, u.metre)), s2))))
	u.pascal = b.add(SI, unit.Named("pascal", "Pa", "pressure", b.must(unit.Divide(u.newton, m2))))
	u.joule = b.add(SI, unit.Named("joule", "J", "energy", b.must(unit.Multiply(u.newton, u.metre))))
	watt := b.add(SI, unit.Named("watt", "W", "power", b.must(unit.Divide(u.joule, u.second))))
	coulomb := b.add(SI, unit.Named("coulomb", "C", "electric charge", b.must(unit.Multiply(ampere, u.second))))
	volt := b.add(SI, unit.Named("volt", "V", "voltage", b.must(unit.Divide(watt, ampere))))
	ohm := b.add(SI, unit.Named("ohm", "Ω", "resistance", b.must(unit.Divide(volt, ampere))))

	minute := b.add(SI, b.must(unit.Scaled("minute", "min", magnitude.MustInt(60), u.second)))
	u.hour = b.add(SI, b.must(unit.Scaled("hour", "h", magnitude.MustInt(60), minute)))
	b.add(SI, b.must(unit.Scaled("day", "d", magnitude.MustInt(24), u.hour)))
	litre := b.add(SI, unit.Named("litre", "L", "volume",
		b.must(unit.Scaled("", "", magnitude.MustRational(1, 1000), b.must(unit.Pow(u.metre, 3, 1))))))
	b.add(SI, b.must(unit.Scaled("tonne", "t", magnitude.MustInt(1000), u.kilogram)))
	deg := b.mag(magnitude.Multiply(magnitude.MustRational(1, 180), magnitude.MustIrrational(magnitude.Pi)))
	b.add(SI, b.must(unit.Scaled("degree", "°", deg, radian)))

	for _, x := range []unit.Unit{
		u.metre, u.gram, u.second, ampere, kelvin, mole, candela,
		hertz, becquerel, u.newton, u.pascal, u.joule, watt, coulomb, volt, ohm, litre,
	} {
		b.prefixed(SI, x, SIPrefixes)
	}

	return u
}

func defineQuantities(b *builder, si siUnits) {
	b.quantity("area", b.must(unit.Pow(si.metre, 2, 1)).Dimension())
	velocity := b.must(unit.Divide(si.metre, si.second))
	b.quantity("velocity", velocity.Dimension())
	b.quantity("acceleration", b.must(unit.Divide(velocity, si.second)).Dimension())
}
