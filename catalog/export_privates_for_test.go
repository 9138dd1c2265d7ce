// SPDX-License-Identifier: MIT

package catalog

import "github.com/katalvlaran/lvunits/unit"

// RegisterForTest adds us to an empty catalog under SI and returns the first
// registration error.
func RegisterForTest(us ...unit.Unit) error {
	b := newBuilder(gatherOptions())
	for _, u := range us {
		b.add(SI, u)
	}

	return b.err
}
