// SPDX-License-Identifier: MIT

// Package catalog defines a ready-made set of units on top of the unit
// package and indexes them by symbol and by name.
//
// Systems:
//
//	SI            — base units m kg s A K mol cd, rad and sr, the named
//	                derived units Hz Bq N Pa J W C V Ω, the accepted units
//	                min h d L t °, and every SI prefix (quecto…quetta)
//	IEC           — bit and byte with SI and binary prefixes (kibi…yobi)
//	International — yd ft in mi nmi lb oz lbf psi kn mph, defined exactly
//	                through the 1959 yard and pound
//	CGS           — cm g dyn erg Ba Gal
//
// All magnitudes are exact: the foot is 3048/10000 m, the pound-force uses
// standard gravity 980665/100000 m/s², and the degree is π/180 rad.
//
// A Catalog is immutable once New returns and may be shared freely. Default
// builds the full catalog once and returns the same instance to every caller.
//
// Example:
//
//	c := catalog.Default()
//	km, _ := c.Lookup("km")
//	m, _ := c.Lookup("m")
//	v, _ := unit.Convert[int64](1, km, m) // 1000
package catalog
