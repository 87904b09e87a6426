package models

import (
	"errors"
	"strings"
)

// Category is a label used to classify expenses and goals.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var ErrCategoryExists = errors.New("a category with this ID already exists")

var ErrCategoryInUse = errors.New("this category is being used by existing expenses")

// CategoryID derives the category ID from its name: lowercased, with
// whitespace runs replaced by a single hyphen.
func CategoryID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// CategoryName resolves a category ID to its name. Dangling references
// resolve to "Uncategorized".
func CategoryName(categories []Category, id string) string {
	for _, category := range categories {
		if category.ID == id {
			return category.Name
		}
	}

	return "Uncategorized"
}
