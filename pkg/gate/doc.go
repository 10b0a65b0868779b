// Package gate provides a generic binary decision tree for replacing deeply
// nested conditional logic with a composable tree of small, independently
// testable decision units.
//
// A Gate[C, T] is either a decision branch, holding a classifier predicate
// func(T) bool and two child trees, or a terminal leaf, holding a
// classification value of type C. Evaluation descends from the root: at each
// branch the classifier is applied to the input, true selects the left
// child, false the right, until a leaf is reached and its value is returned.
//
// # Building Trees
//
// Trees are assembled bottom up. Leaves wrap classification values; branches
// are assembled through a staged Builder that validates completeness at a
// single point:
//
//	evens, err := gate.NewBuilder[string, int]().
//	    WithClassifier(func(n int) bool { return n > 100 }).
//	    WhenTrue(gate.NewLeaf[string, int]("even->100")).
//	    WhenFalse(gate.NewLeaf[string, int]("even-<=100")).
//	    Build()
//
// Build fails with a *BuildError (matching ErrBuildIncomplete) if the
// classifier or either child is unset; it is the only operation in the
// package that can fail. Setters are total and simply overwrite.
//
// # Evaluation
//
//	result := gate.Evaluate(root, 42)
//
// Evaluate is a plain iterative walk, so tree depth is bounded only by
// memory, never by the call stack. Scan performs the same walk and
// additionally returns the root-to-leaf sequence of branches visited with
// the outcome of each classifier, for tracing and audit:
//
//	result, path := gate.Scan(root, 42)
//	for _, step := range path {
//	    fmt.Println(step.TookLeft)
//	}
//
// # Leaves Are Their Own Children
//
// Left and Right on a leaf return the leaf itself. This is deliberate: it
// makes one-step descent past a terminal a no-op instead of an error, so
// callers walking a step at a time need not check the variant first.
//
// # Concurrency
//
// Trees are immutable after construction and safe for concurrent read-only
// use, provided the caller-supplied classifiers are themselves safe for
// concurrent invocation; the package does not enforce this. Builders hold
// plain mutable fields and require external synchronization if shared.
//
// # Errors From Classifiers
//
// The package never calls recover. A classifier that panics during Evaluate
// or Scan unwinds to the caller unmodified, and the tree, which evaluation
// never mutates, remains fully reusable afterwards.
package gate
