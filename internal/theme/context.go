package theme

// Context is what consumers read: a snapshot of the mode and the two mutators.
// Consumers switch themes through SetDark and SetLight only.
type Context struct {
	Mode     Mode
	SetDark  func()
	SetLight func()
}

// IsDark reports whether the snapshot is dark.
func (c Context) IsDark() bool {
	return c.Mode == ModeDark
}

// Context returns the current theme context bound to s.
func (s *Store) Context() Context {
	return Context{
		Mode:     s.Mode(),
		SetDark:  s.SetDark,
		SetLight: s.SetLight,
	}
}
