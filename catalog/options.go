// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// System selects a group of unit definitions.
type System string

// Known systems.
const (
	SI            System = "si"
	IEC           System = "iec"
	International System = "international"
	CGS           System = "cgs"
)

// Systems lists every known system in definition order.
var Systems = []System{SI, IEC, International, CGS}

// DefaultBinaryPrefixes controls whether IEC units get kibi…yobi variants.
const DefaultBinaryPrefixes = true

// Option configures New.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	logger         logrus.FieldLogger
	binaryPrefixes bool
	systems        map[System]bool
}

// WithLogger routes registration diagnostics to l at debug level.
// Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("catalog: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

// WithoutBinaryPrefixes omits kibi…yobi variants of IEC units.
func WithoutBinaryPrefixes() Option {
	return func(o *Options) { o.binaryPrefixes = false }
}

// WithSystems restricts the catalog to the given systems. Units of other
// systems are still used internally as building blocks but are not
// registered. Panics on an empty list or an unknown system.
func WithSystems(systems ...System) Option {
	if len(systems) == 0 {
		panic("catalog: WithSystems needs at least one system")
	}
	set := make(map[System]bool, len(systems))
	for _, s := range systems {
		if !knownSystem(s) {
			panic(fmt.Sprintf("catalog: unknown system %q", s))
		}
		set[s] = true
	}

	return func(o *Options) { o.systems = set }
}

// ParseSystem maps a system name such as "si" or "cgs" to a System.
func ParseSystem(name string) (System, error) {
	if s := System(name); knownSystem(s) {
		return s, nil
	}

	return "", fmt.Errorf("catalog: unknown system %q", name)
}

func knownSystem(s System) bool {
	for _, k := range Systems {
		if k == s {
			return true
		}
	}

	return false
}

// discardLogger is the default: a logrus logger writing nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:         nil,
		binaryPrefixes: DefaultBinaryPrefixes,
		systems:        make(map[System]bool, len(Systems)),
	}
	for _, s := range Systems {
		o.systems[s] = true
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	return o
}
