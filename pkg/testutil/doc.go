// Package testutil provides helpers shared by modkeeper's tests.
//
// Key components:
//   - WriteTree / ReadTree: declarative directory fixtures on any afero.Fs
//   - FailingFs: an afero.Fs wrapper that fails chosen operations on chosen
//     paths, for exercising partial-failure handling
//
// All test data should be defined inline, not in external files.
package testutil
