package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gatekit/gate-go/pkg/gate"
)

func TestScanAgreesWithEvaluate(t *testing.T) {
	root, _, _ := numberTree(t)

	for _, input := range []int{12, 150, 99, 101, 100, 0, -7} {
		want := gate.Evaluate(root, input)
		got, _ := gate.Scan(root, input)
		assert.Equal(t, want, got, "input %d", input)
	}
}

func TestScanPathOrderRootToLeaf(t *testing.T) {
	root, evens, odds := numberTree(t)

	// 12 is even (left at root) and <=100 (right at the evens branch).
	result, path := gate.Scan(root, 12)
	if result != "even-<=100" {
		t.Fatalf("Scan result = %q, want %q", result, "even-<=100")
	}
	if len(path) != 2 {
		t.Fatalf("path length = %d, want 2", len(path))
	}
	if path[0].Node != root || !path[0].TookLeft {
		t.Errorf("step 0 TookLeft = %v at wrong node, want root with left branch", path[0].TookLeft)
	}
	if path[1].Node != evens || path[1].TookLeft {
		t.Errorf("step 1 TookLeft = %v at wrong node, want evens branch with right branch", path[1].TookLeft)
	}

	// 101 is odd (right at root) and >=100 (right at the odds branch).
	result, path = gate.Scan(root, 101)
	if result != "odd->=100" {
		t.Fatalf("Scan result = %q, want %q", result, "odd->=100")
	}
	if len(path) != 2 {
		t.Fatalf("path length = %d, want 2", len(path))
	}
	if path[0].Node != root || path[0].TookLeft {
		t.Errorf("step 0 TookLeft = %v at wrong node, want root with right branch", path[0].TookLeft)
	}
	if path[1].Node != odds || path[1].TookLeft {
		t.Errorf("step 1 TookLeft = %v at wrong node, want odds branch with right branch", path[1].TookLeft)
	}
}

func TestScanBareLeafEmptyPath(t *testing.T) {
	l := gate.NewLeaf[string, int]("only")

	result, path := gate.Scan(l, 42)
	if result != "only" {
		t.Errorf("Scan(leaf) = %q, want %q", result, "only")
	}
	if len(path) != 0 {
		t.Errorf("Scan(leaf) path length = %d, want 0", len(path))
	}
}

func TestClassifierPanicPropagates(t *testing.T) {
	g, err := gate.NewBuilder[string, int]().
		WithClassifier(func(n int) bool {
			if n == 13 {
				panic("unlucky input")
			}
			return n > 0
		}).
		WhenTrue(gate.NewLeaf[string, int]("positive")).
		WhenFalse(gate.NewLeaf[string, int]("non-positive")).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	recovered := func() (r any) {
		defer func() { r = recover() }()
		gate.Evaluate(g, 13)
		return nil
	}()
	if recovered != "unlucky input" {
		t.Fatalf("recovered %v, want classifier panic value unmodified", recovered)
	}

	// A faulted evaluation leaves the tree fully reusable.
	if got := gate.Evaluate(g, 5); got != "positive" {
		t.Errorf("Evaluate after panic = %q, want %q", got, "positive")
	}
	if got, path := gate.Scan(g, -1); got != "non-positive" || len(path) != 1 {
		t.Errorf("Scan after panic = (%q, %d steps), want (\"non-positive\", 1)", got, len(path))
	}
}
