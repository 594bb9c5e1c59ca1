// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the internal options snapshot.
// Compiled only with tests; exposes unexported helpers to matrix_test.

// ExportedGatherOptions exposes gatherOptions for white-box tests.
var ExportedGatherOptions = gatherOptions

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
