package gate

import "fmt"

// Gate is a binary decision tree node. A Gate is either a decision branch,
// holding a classifier and two children, or a terminal leaf, holding a
// classification value of type C. C is the classification result type and T
// is the type of the value being classified.
//
// The variant set is closed: only NewLeaf and Builder.Build can produce
// Gate values, so every tree is well formed by construction.
type Gate[C, T any] interface {
	// Value returns the classification value and true when the node is a
	// leaf. For a branch it returns the zero value of C and false.
	Value() (C, bool)

	// Left returns the child taken when the classifier reports true. For a
	// leaf it returns the leaf itself, so one-step descent past a terminal
	// is a no-op rather than an error.
	Left() Gate[C, T]

	// Right returns the child taken when the classifier reports false. For
	// a leaf it returns the leaf itself.
	Right() Gate[C, T]

	isGate()
}

// branch is an internal decision node. Both children and the classifier are
// always present once built.
type branch[C, T any] struct {
	classify func(T) bool
	left     Gate[C, T]
	right    Gate[C, T]
}

func (*branch[C, T]) isGate() {}

func (*branch[C, T]) Value() (C, bool) {
	var zero C
	return zero, false
}

func (b *branch[C, T]) Left() Gate[C, T] { return b.left }
func (b *branch[C, T]) Right() Gate[C, T] { return b.right }

// leaf is a terminal node carrying a classification value. A leaf is its own
// left and right child.
type leaf[C, T any] struct {
	value C
}

func (*leaf[C, T]) isGate() {}

func (l *leaf[C, T]) Value() (C, bool) { return l.value, true }
func (l *leaf[C, T]) Left() Gate[C, T] { return l }
func (l *leaf[C, T]) Right() Gate[C, T] { return l }

// NewLeaf creates a terminal node carrying the given classification value.
func NewLeaf[C, T any](value C) Gate[C, T] {
	return &leaf[C, T]{value: value}
}

// Evaluate descends from g to a leaf and returns that leaf's classification
// value. At each branch the classifier is applied to input: true selects the
// left child, false the right. The walk is a plain loop, so tree depth is
// not bounded by the call stack.
//
// Evaluate never modifies the tree. If a classifier panics, the panic
// propagates to the caller unmodified and g remains fully reusable.
func Evaluate[C, T any](g Gate[C, T], input T) C {
	cur := g
	for {
		switch n := cur.(type) {
		case *branch[C, T]:
			if n.classify(input) {
				cur = n.left
			} else {
				cur = n.right
			}
		case *leaf[C, T]:
			return n.value
		default:
			panic(fmt.Sprintf("gate: unknown node variant %T", cur))
		}
	}
}

// Scan descends exactly like Evaluate but additionally records, for every
// branch visited, the branch itself and the classifier outcome. The returned
// path is ordered root to leaf; callers building tracing or audit features
// may rely on that order. Scanning a bare leaf returns an empty path.
func Scan[C, T any](g Gate[C, T], input T) (C, []Step[C, T]) {
	var path []Step[C, T]
	cur := g
	for {
		switch n := cur.(type) {
		case *branch[C, T]:
			took := n.classify(input)
			path = append(path, Step[C, T]{Node: n, TookLeft: took})
			if took {
				cur = n.left
			} else {
				cur = n.right
			}
		case *leaf[C, T]:
			return n.value, path
		default:
			panic(fmt.Sprintf("gate: unknown node variant %T", cur))
		}
	}
}

// Summary returns a one-line description of the tree, e.g.
// "gate with 4 leaves, depth 2". Useful for debugging and logging.
func Summary[C, T any](g Gate[C, T]) string {
	type frame struct {
		node  Gate[C, T]
		depth int
	}

	leaves := 0
	maxDepth := 0
	stack := []frame{{node: g}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := f.node.(type) {
		case *branch[C, T]:
			stack = append(stack,
				frame{node: n.left, depth: f.depth + 1},
				frame{node: n.right, depth: f.depth + 1},
			)
		case *leaf[C, T]:
			leaves++
			if f.depth > maxDepth {
				maxDepth = f.depth
			}
		}
	}
	return fmt.Sprintf("gate with %d leaves, depth %d", leaves, maxDepth)
}
