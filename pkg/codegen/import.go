package codegen

// Import is a single imported type within a scope's import table. The
// zero value is an unqualified import; Vis upgrades it to a re-export
// (`pub use ...`). Re-registering the same (path, type) pair returns the
// same Import, so the last visibility written wins.
type Import struct {
	vis string
}

// Vis sets the visibility token emitted before the use statement.
func (i *Import) Vis(vis string) *Import {
	i.vis = vis
	return i
}
