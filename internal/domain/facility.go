package domain

// Facility represents a bookable sports facility (pool, tennis court, gym, ...)
type Facility struct {
	ID          string
	Name        string
	Type        string // football, tennis, basketball, ...
	Capacity    int
	Description *string
}

// DisplayName returns the user-facing name of the facility,
// falling back to the raw id when no name has been set
func (f *Facility) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}
