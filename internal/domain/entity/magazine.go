package entity

// MagazineID is the arena index of a Magazine inside the store that created it.
type MagazineID int64

// Magazine represents a publication that articles appear in.
// Category drives an author's topic areas.
type Magazine struct {
	ID       MagazineID
	name     string
	category string
}

// NewMagazine validates both fields and returns an unregistered Magazine.
func NewMagazine(name, category string) (*Magazine, error) {
	m := &Magazine{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetCategory(category); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the magazine's name.
func (m *Magazine) Name() string {
	return m.name
}

// SetName replaces the name. It must be 2 to 16 characters long.
func (m *Magazine) SetName(name string) error {
	if err := ValidateLength("name", name, MagazineNameMinLength, MagazineNameMaxLength); err != nil {
		return err
	}
	m.name = name
	return nil
}

// Category returns the magazine's category.
func (m *Magazine) Category() string {
	return m.category
}

// SetCategory replaces the category. Whitespace-only values are rejected.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateRequired("category", category); err != nil {
		return err
	}
	m.category = category
	return nil
}
