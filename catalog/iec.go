// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/unit"
)

// defineIEC registers bit and byte. Information is dimensionless and carries
// the kind "information".
func defineIEC(b *builder) {
	bit := b.add(IEC, unit.NewBase("bit", "bit", "information", dimension.Dimensionless))
	byteUnit := b.add(IEC, b.must(unit.Scaled("byte", "B", magnitude.MustInt(8), bit)))

	for _, x := range []unit.Unit{bit, byteUnit} {
		b.prefixed(IEC, x, largeSIPrefixes())
		if b.opts.binaryPrefixes {
			b.prefixed(IEC, x, BinaryPrefixes)
		}
	}
}
