// Package validate runs the installation checks behind `translator doctor`.
package validate

// Status represents the outcome of a check item.
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusPending
	StatusError
)

// Item is a single line of a check report.
type Item struct {
	Name    string
	Status  Status
	Details string
}

// Result collects the items of one check.
type Result struct {
	Section  string
	Items    []Item
	Errors   []string
	Warnings []string
}

// AddItem appends an item with status and optional details.
func (r *Result) AddItem(status Status, name, details string) {
	r.Items = append(r.Items, Item{
		Name:    name,
		Status:  status,
		Details: details,
	})
}

// Fail records an error item.
func (r *Result) Fail(name string, err error) {
	r.Errors = append(r.Errors, name+": "+err.Error())
	r.AddItem(StatusError, name, err.Error())
}

// Warn records a warning item.
func (r *Result) Warn(name, details string) {
	r.Warnings = append(r.Warnings, name+": "+details)
	r.AddItem(StatusWarning, name, details)
}

// OK reports whether the check found no errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}
