package component

// Static is an in-memory Handle for embedders that drive the renderer
// without a layout engine, and for tests.
type Static struct {
	ID    string
	Kind  Type
	Props map[string]any

	// OnLayout, if set, is called from EnsureLayout.
	OnLayout func()

	layouts int
}

// UniqueID implements Handle.
func (s *Static) UniqueID() string { return s.ID }

// Type implements Handle.
func (s *Static) Type() Type { return s.Kind }

// Property implements Handle.
func (s *Static) Property(name string) (any, bool) {
	v, ok := s.Props[name]
	return v, ok
}

// EnsureLayout implements Handle.
func (s *Static) EnsureLayout() {
	s.layouts++
	if s.OnLayout != nil {
		s.OnLayout()
	}
}

// LayoutCount returns how many times EnsureLayout has been called.
func (s *Static) LayoutCount() int { return s.layouts }
