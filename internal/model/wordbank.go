package model

import "fmt"

// CategoryID identifies a word bank category
type CategoryID string

// CategoryAll selects the concatenation of every category
const CategoryAll CategoryID = "all"

// AllCategoriesLabel is the display label for CategoryAll
const AllCategoriesLabel = "Cocktail"

// Category is a named, curated list of candidate secret words
type Category struct {
	ID    CategoryID `json:"id" mapstructure:"id"`
	Label string     `json:"label" mapstructure:"label"`
	Words []string   `json:"words" mapstructure:"words"`
}

// WordBank is the ordered set of categories available to a session
type WordBank struct {
	Categories []Category `json:"categories" mapstructure:"categories"`
}

// Validate checks that every category has an id and at least one word, and
// that ids are unique and do not collide with CategoryAll
func (b *WordBank) Validate() error {
	seen := make(map[CategoryID]bool, len(b.Categories))
	for _, c := range b.Categories {
		if c.ID == "" {
			return fmt.Errorf("%w: category with empty id", ErrInvalidWordBank)
		}
		if c.ID == CategoryAll {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidWordBank, CategoryAll)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidWordBank, c.ID)
		}
		if len(c.Words) == 0 {
			return fmt.Errorf("%w: category %q has no words", ErrInvalidWordBank, c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// Category returns the category with the given id, or nil if not found
func (b *WordBank) Category(id CategoryID) *Category {
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			return &b.Categories[i]
		}
	}
	return nil
}

// AllWords returns every category's words concatenated in category order
func (b *WordBank) AllWords() []string {
	var words []string
	for _, c := range b.Categories {
		words = append(words, c.Words...)
	}
	return words
}

// Pool returns the candidate words for a selector
func (b *WordBank) Pool(selector CategoryID) ([]string, error) {
	if selector == CategoryAll {
		return b.AllWords(), nil
	}
	c := b.Category(selector)
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, selector)
	}
	return c.Words, nil
}
