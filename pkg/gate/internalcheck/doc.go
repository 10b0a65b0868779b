// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests used internally by the gate-go library
// to keep implementation rules from regressing. It is not intended for
// external use and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the gate library. Use the public API
// provided by pkg/gate instead.
package internalcheck
