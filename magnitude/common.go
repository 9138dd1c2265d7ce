// SPDX-License-Identifier: MIT

package magnitude

// Common returns the largest magnitude C such that a/C and b/C contain only
// non-negative prime exponents. For rational inputs this is the familiar
// "greatest common divisor" convention: Common(1000, 1) is 1 and
// Common(1, 1/1000) is 1/1000.
//
// Rules:
//   - for each prime the result carries min(eₐ, e_b), an absent prime counting
//     as exponent 0; so a prime present in only one operand survives only
//     with a negative exponent, and positive-only primes are excluded;
//   - the irrational part is kept only when both operands carry exactly the
//     same irrational factors; otherwise the result has none.
//
// Common is commutative and never fails.
func Common(a, b Magnitude) Magnitude {
	out := Magnitude{}
	terms := make([]Term, 0, len(a.terms)+len(b.terms))
	i, j := 0, 0
	for i < len(a.terms) || j < len(b.terms) {
		switch {
		case j == len(b.terms) || (i < len(a.terms) && a.terms[i].Prime < b.terms[j].Prime):
			if a.terms[i].Exp.Sign() < 0 {
				terms = append(terms, a.terms[i])
			}
			i++
		case i == len(a.terms) || b.terms[j].Prime < a.terms[i].Prime:
			if b.terms[j].Exp.Sign() < 0 {
				terms = append(terms, b.terms[j])
			}
			j++
		default:
			t := a.terms[i]
			if b.terms[j].Exp.Cmp(t.Exp) < 0 {
				t = b.terms[j]
			}
			terms = append(terms, t)
			i++
			j++
		}
	}
	out.terms = compactTerms(terms)

	if sameIrrationals(a.irrationals, b.irrationals) {
		out.irrationals = a.Irrationals()
	}

	return out
}

// CommonOf folds Common over ms. CommonOf() is One.
func CommonOf(ms ...Magnitude) Magnitude {
	if len(ms) == 0 {
		return One
	}
	acc := ms[0]
	for _, m := range ms[1:] {
		acc = Common(acc, m)
	}

	return acc
}
