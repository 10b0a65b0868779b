package gate

// Builder assembles one decision branch step by step. The three slots
// (classifier, true child, false child) are independently optional until
// Build, which is the single point where an incomplete configuration is
// rejected. Setters always succeed and simply overwrite the prior value.
//
// A Builder is not consumed by Build: further setter calls followed by
// another Build produce an independent new branch reflecting the builder's
// current state. Builders hold plain mutable fields and are not safe for
// concurrent use without external synchronization.
type Builder[C, T any] struct {
	classify  func(T) bool
	whenTrue  Gate[C, T]
	whenFalse Gate[C, T]
}

// NewBuilder returns a fresh builder with classifier and both children
// unset.
func NewBuilder[C, T any]() *Builder[C, T] {
	return &Builder[C, T]{}
}

// WithClassifier sets or replaces the predicate applied to the input during
// descent. Returns the builder for chaining.
func (b *Builder[C, T]) WithClassifier(classify func(T) bool) *Builder[C, T] {
	b.classify = classify
	return b
}

// WhenTrue sets or replaces the child taken when the classifier reports
// true. Returns the builder for chaining.
func (b *Builder[C, T]) WhenTrue(child Gate[C, T]) *Builder[C, T] {
	b.whenTrue = child
	return b
}

// WhenFalse sets or replaces the child taken when the classifier reports
// false. Returns the builder for chaining.
func (b *Builder[C, T]) WhenFalse(child Gate[C, T]) *Builder[C, T] {
	b.whenFalse = child
	return b
}

// Build validates that the classifier and both children are set and returns
// a new immutable decision branch wrapping them. If any slot is unset it
// returns a *BuildError naming every missing slot; the error matches
// ErrBuildIncomplete under errors.Is. The caller can fix the builder state
// and call Build again.
func (b *Builder[C, T]) Build() (Gate[C, T], error) {
	var missing []string
	if b.classify == nil {
		missing = append(missing, "classifier")
	}
	if b.whenTrue == nil {
		missing = append(missing, "true child")
	}
	if b.whenFalse == nil {
		missing = append(missing, "false child")
	}
	if len(missing) > 0 {
		return nil, &BuildError{Missing: missing}
	}
	return &branch[C, T]{
		classify: b.classify,
		left:     b.whenTrue,
		right:    b.whenFalse,
	}, nil
}
