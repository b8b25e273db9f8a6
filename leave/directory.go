package leave

// =============================================================================
// DIRECTORY - Static employee id to name mapping
// =============================================================================

// Directory is the read-only employee roster. It is built once at startup
// and never mutated afterwards, so lookups need no locking.
type Directory struct {
	byID  map[EmployeeID]Employee
	order []EmployeeID
}

// NewDirectory builds a directory from the seeded employees, preserving
// seed order for iteration.
func NewDirectory(employees []Employee) *Directory {
	d := &Directory{byID: make(map[EmployeeID]Employee, len(employees))}
	for _, e := range employees {
		if _, exists := d.byID[e.ID]; exists {
			continue
		}
		d.byID[e.ID] = e
		d.order = append(d.order, e.ID)
	}
	return d
}

// Lookup returns the employee for id, if known.
func (d *Directory) Lookup(id EmployeeID) (Employee, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// All returns the employees in seed order.
func (d *Directory) All() []Employee {
	out := make([]Employee, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.byID[id])
	}
	return out
}

// Len returns the roster size.
func (d *Directory) Len() int { return len(d.order) }
