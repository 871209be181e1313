// Package entity defines the core domain entities and validation logic for the catalog.
// It contains the Author, Magazine and Article types, their field rules,
// and the error kinds returned when those rules are broken.
package entity

// ArticleID is the arena index of an Article inside the store that created it.
type ArticleID int64

// Article represents a piece written by one author and published in one magazine.
// It joins the two by ID; the owning store resolves the references.
type Article struct {
	ID         ArticleID
	AuthorID   AuthorID
	MagazineID MagazineID
	title      string
	titleSet   bool
}

// NewArticle checks the relationship arguments and the title and returns an
// unregistered Article linking author and magazine.
// A nil author or magazine yields a TypeConstraintError; a title outside
// 5..50 characters yields a ValidationError.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if author == nil {
		return nil, &TypeConstraintError{Field: "author", Expected: "Author"}
	}
	if magazine == nil {
		return nil, &TypeConstraintError{Field: "magazine", Expected: "Magazine"}
	}

	art := &Article{
		AuthorID:   author.ID,
		MagazineID: magazine.ID,
	}
	if err := art.SetTitle(title); err != nil {
		return nil, err
	}
	return art, nil
}

// Title returns the article's title.
func (a *Article) Title() string {
	return a.title
}

// SetTitle assigns the title. It succeeds only once; any later call returns
// ImmutableFieldError, even when the value is unchanged.
func (a *Article) SetTitle(title string) error {
	if a.titleSet {
		return &ImmutableFieldError{Field: "title"}
	}
	if err := ValidateLength("title", title, ArticleTitleMinLength, ArticleTitleMaxLength); err != nil {
		return err
	}
	a.title = title
	a.titleSet = true
	return nil
}
