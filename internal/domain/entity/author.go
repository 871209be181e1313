package entity

// AuthorID is the arena index of an Author inside the store that created it.
type AuthorID int64

// Author represents a writer who contributes articles to magazines.
// The articles themselves are indexed by the store, not held here.
type Author struct {
	ID   AuthorID
	name string
}

// NewAuthor validates name and returns an unregistered Author.
// The ID is assigned when the author is added to a store.
func NewAuthor(name string) (*Author, error) {
	a := &Author{}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

// Name returns the author's current name.
func (a *Author) Name() string {
	return a.name
}

// SetName replaces the author's name. The value is stored as given but must
// contain something other than whitespace.
func (a *Author) SetName(name string) error {
	if err := ValidateRequired("name", name); err != nil {
		return err
	}
	a.name = name
	return nil
}
