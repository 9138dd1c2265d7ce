// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/unit"
)

// Base quantities of the International System of Quantities.
const (
	Length      dimension.Base = "L"
	Mass        dimension.Base = "M"
	Time        dimension.Base = "T"
	Current     dimension.Base = "I"
	Temperature dimension.Base = "Θ"
	Amount      dimension.Base = "N"
	Luminous    dimension.Base = "J"
)

// Operation tags used to prefix errors.
const (
	opNew    = "New"
	opLookup = "Lookup"
)

// Entry is a registered unit together with the system that defined it.
type Entry struct {
	Unit   unit.Unit
	System System
}

// Catalog is an ordered, read-only registry of units.
type Catalog struct {
	entries    []Entry
	bySymbol   map[string]int
	byName     map[string]int
	quantities *unit.Quantities
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog with every system enabled. It is built on the
// first call and shared afterwards.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})

	return defaultCatalog
}

// New builds a catalog.
//
// Errors: ErrDuplicateSymbol when two different units share a symbol or a
// name; ErrDefinition from the unit package when a definition is invalid.
func New(opts ...Option) (*Catalog, error) {
	b := newBuilder(gatherOptions(opts...))
	si := defineSI(b)
	defineIEC(b)
	defineInternational(b, si)
	defineCGS(b, si)
	defineQuantities(b, si)

	if b.err != nil {
		return nil, catalogErrorf(opNew, b.err)
	}
	b.log.WithField("units", len(b.cat.entries)).Debug("catalog built")

	return b.cat, nil
}

// Lookup returns the unit with the given symbol, or failing that, the given
// long name ("km" or "kilometre").
func (c *Catalog) Lookup(s string) (unit.Unit, error) {
	if i, ok := c.bySymbol[s]; ok {
		return c.entries[i].Unit, nil
	}
	if i, ok := c.byName[s]; ok {
		return c.entries[i].Unit, nil
	}

	return unit.Unit{}, catalogErrorf(opLookup, fmt.Errorf("%w: %q", ErrUnknownUnit, s))
}

// System returns the system that defined the unit with symbol s.
func (c *Catalog) System(s string) (System, bool) {
	i, ok := c.bySymbol[s]
	if !ok {
		return "", false
	}

	return c.entries[i].System, true
}

// Entries returns the registered units in definition order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Units returns the registered units in definition order.
func (c *Catalog) Units() []unit.Unit {
	out := make([]unit.Unit, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Unit
	}

	return out
}

// Len returns the number of registered units.
func (c *Catalog) Len() int { return len(c.entries) }

// Quantities returns the quantity table filled from the kinds of the
// registered units plus a few unnamed compositions (area, velocity, ...).
func (c *Catalog) Quantities() *unit.Quantities { return c.quantities }

// builder accumulates definitions; the first error sticks and turns every
// later call into a no-op.
type builder struct {
	opts Options
	log  logrus.FieldLogger
	cat  *Catalog
	err  error
}

func newBuilder(o Options) *builder {
	return &builder{
		opts: o,
		log:  o.logger,
		cat: &Catalog{
			bySymbol:   make(map[string]int),
			byName:     make(map[string]int),
			quantities: unit.NewQuantities(),
		},
	}
}

// must records err and returns u unchanged.
func (b *builder) must(u unit.Unit, err error) unit.Unit {
	if err != nil && b.err == nil {
		b.err = err
	}

	return u
}

// mag is must for magnitudes.
func (b *builder) mag(m magnitude.Magnitude, err error) magnitude.Magnitude {
	if err != nil && b.err == nil {
		b.err = err
	}

	return m
}

// add registers u under sys and returns it. Units of disabled systems are
// returned without registration so that other systems can build on them.
// Re-adding an identical unit is a no-op.
func (b *builder) add(sys System, u unit.Unit) unit.Unit {
	if b.err != nil || !b.opts.systems[sys] {
		return u
	}
	fields := logrus.Fields{"symbol": u.Symbol(), "system": sys, "dimension": u.Dimension().String()}

	if i, ok := b.cat.bySymbol[u.Symbol()]; ok {
		if sameUnit(b.cat.entries[i].Unit, u) {
			b.log.WithFields(fields).Debug("unit already registered")
			return u
		}
		b.err = fmt.Errorf("%w: %q", ErrDuplicateSymbol, u.Symbol())
		return u
	}
	if _, ok := b.cat.byName[u.Name()]; ok {
		b.err = fmt.Errorf("%w: name %q", ErrDuplicateSymbol, u.Name())
		return u
	}

	b.cat.entries = append(b.cat.entries, Entry{Unit: u, System: sys})
	b.cat.bySymbol[u.Symbol()] = len(b.cat.entries) - 1
	b.cat.byName[u.Name()] = len(b.cat.entries) - 1
	if u.Kind() != "" {
		b.quantity(u.Kind(), u.Dimension())
	}
	b.log.WithFields(fields).WithField("magnitude", u.Magnitude().String()).Debug("unit registered")

	return u
}

// prefixed registers p+of for every prefix p.
func (b *builder) prefixed(sys System, of unit.Unit, ps []unit.Prefix) {
	for _, p := range ps {
		b.add(sys, b.must(unit.Prefixed(p, of)))
	}
}

// quantity registers a quantity name.
func (b *builder) quantity(name string, dim dimension.List) {
	if b.err != nil {
		return
	}
	if err := b.cat.quantities.Register(name, dim); err != nil {
		b.err = err
	}
}

func sameUnit(a, b unit.Unit) bool {
	return a.Name() == b.Name() && a.Kind() == b.Kind() &&
		a.Magnitude().Equal(b.Magnitude()) && a.Dimension().Equal(b.Dimension())
}
