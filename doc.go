// Package lvunits is an exact dimensional-analysis engine: physical units
// whose conversion factors are computed without rounding, and a dimension
// algebra that rejects meaningless conversions before any arithmetic happens.
//
// What is inside?
//
//	ratio/      — overflow-checked int64 rationals (exponents)
//	prime/      — wheel factorization (2·3·5·7·11 wheel) and Miller–Rabin
//	magnitude/  — exact scale factors: Π pᵢ^eᵢ × Π atomⱼ^fⱼ (π and friends)
//	dimension/  — canonical exponent lists: L·T⁻², M·L⁻¹·T⁻², …
//	unit/       — units = magnitude + dimension + kind; Convertible,
//	              ConversionFactor, CommonUnit, Convert[T]
//	catalog/    — SI (with every prefix), IEC, international and CGS units
//	cmd/unitconv — command-line front end over catalog and unit
//
// Why exact?
//
//   - 1 ft is 3048/10000 m by definition, so 3 ft is exactly 36 in, not 35.99…
//   - integer conversions either produce the exact integer or fail with
//     magnitude.ErrInexactIntegral; they never truncate silently
//   - overflow is an error (ErrDefinition), never a wrap-around
//   - π is a symbolic factor: degree→radian is 2⁻²·3⁻²·5⁻¹·π until evaluated
//
// Quick example:
//
//	c := catalog.Default()
//	ft, _ := c.Lookup("ft")
//	in, _ := c.Lookup("in")
//	n, _ := unit.Convert[int64](3, ft, in) // 36
//
//	go get github.com/katalvlaran/lvunits
package lvunits
