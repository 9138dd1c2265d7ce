// SPDX-License-Identifier: MIT

package unit

import (
	"sort"
	"sync"

	"github.com/katalvlaran/lvunits/dimension"
)

// Quantities maps canonical dimensions to the names of the quantities
// registered for them, in registration order. Several names may share a
// dimension (frequency and activity are both T⁻¹).
//
// A Quantities is safe for concurrent use; Register and Lookup may overlap.
type Quantities struct {
	mu     sync.RWMutex              // guards the maps below
	byKey  map[string][]string       // dimension.Key → names
	byName map[string]dimension.List // name → dimension
}

// NewQuantities returns an empty table.
func NewQuantities() *Quantities {
	return &Quantities{
		byKey:  make(map[string][]string),
		byName: make(map[string]dimension.List),
	}
}

// Register records name as a quantity of dimension dim. Registering the same
// pair twice is a no-op.
//
// Errors: ErrDefinition for an empty name or a name already registered with
// a different dimension.
func (q *Quantities) Register(name string, dim dimension.List) error {
	if name == "" {
		return definitionErrorf(opRegister, errEmptyName)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if prev, ok := q.byName[name]; ok {
		if dimension.Equivalent(prev, dim) {
			return nil
		}
		return definitionErrorf(opRegister, errNameInUse)
	}
	q.byName[name] = dim
	key := dim.Key()
	q.byKey[key] = append(q.byKey[key], name)

	return nil
}

// Lookup returns the quantity names registered for dim, or nil.
func (q *Quantities) Lookup(dim dimension.List) []string {
	q.mu.RLock()
	defer q.mu.RUnlock()

	names := q.byKey[dim.Key()]
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)

	return out
}

// Dimension returns the dimension registered under name.
func (q *Quantities) Dimension(name string) (dimension.List, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	d, ok := q.byName[name]

	return d, ok
}

// Names returns every registered name in ascending order.
func (q *Quantities) Names() []string {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]string, 0, len(q.byName))
	for n := range q.byName {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
