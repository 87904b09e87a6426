// Package budget implements the repository that owns the expense, category
// and goal collections and keeps them consistent across edits.
package budget

import (
	"fmt"
	"slices"

	"github.com/budgetbuddy/backend/internal/models"
	"github.com/budgetbuddy/backend/internal/notify"
	"github.com/budgetbuddy/backend/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The storage keys for the three collections. Stable across restarts.
const (
	KeyExpenses   = "budgetbuddy-expenses"
	KeyCategories = "budgetbuddy-categories"
	KeyGoals      = "budgetbuddy-goals"
)

// amounts in notices are printed with locale-aware grouping, e.g. "1,250.00"
var printer = message.NewPrinter(language.English)

// Repository owns the three collections. The in-memory state is
// authoritative for the session; every mutation is persisted synchronously
// and followed by a notification.
//
// A Repository is not safe for concurrent use, matching the single-writer
// execution model. Callers with concurrent access serialize externally.
type Repository struct {
	store *storage.Store
	sink  notify.Sink

	expenses   []models.Expense
	categories []models.Category
	goals      []models.SpendingGoal
}

// New loads all three collections from the store, falling back to the seed
// data for any collection that is absent or unreadable.
func New(store *storage.Store, sink notify.Sink) *Repository {
	return &Repository{
		store:      store,
		sink:       sink,
		expenses:   storage.Load(store, KeyExpenses, models.SampleExpenses()),
		categories: storage.Load(store, KeyCategories, models.DefaultCategories()),
		goals:      storage.Load(store, KeyGoals, models.DefaultGoals()),
	}
}

// Expenses returns a copy of the current expense collection.
func (r *Repository) Expenses() []models.Expense {
	return slices.Clone(r.expenses)
}

// Categories returns a copy of the current category collection.
func (r *Repository) Categories() []models.Category {
	return slices.Clone(r.categories)
}

// Goals returns a copy of the current goal collection.
func (r *Repository) Goals() []models.SpendingGoal {
	return slices.Clone(r.goals)
}

// AddExpense assigns a new ID to the expense and appends it.
func (r *Repository) AddExpense(expense models.Expense) models.Expense {
	expense.ID = newID()
	r.expenses = append(r.expenses, expense)
	r.persist(KeyExpenses, r.expenses)

	name := expense.Category
	for _, category := range r.categories {
		if category.ID == expense.Category {
			name = category.Name
			break
		}
	}

	r.notify("Expense added", printer.Sprintf("$%.2f added to %s", expense.Amount.InexactFloat64(), name), notify.SeverityNormal)
	return expense
}

// UpdateExpense replaces the expense with the same ID. Unknown IDs are a
// no-op.
func (r *Repository) UpdateExpense(expense models.Expense) {
	for i := range r.expenses {
		if r.expenses[i].ID == expense.ID {
			r.expenses[i] = expense
		}
	}

	r.persist(KeyExpenses, r.expenses)
	r.notify("Expense updated", "Your expense has been updated successfully.", notify.SeverityNormal)
}

// DeleteExpense removes the expense with the given ID. Unknown IDs are a
// no-op.
func (r *Repository) DeleteExpense(id string) {
	r.expenses = slices.DeleteFunc(r.expenses, func(e models.Expense) bool { return e.ID == id })
	r.persist(KeyExpenses, r.expenses)
	r.notify("Expense deleted", "Your expense has been removed.", notify.SeverityDestructive)
}

// AddCategory derives the category's ID from its name and appends it.
// Names that normalize to the ID of an existing category are rejected.
func (r *Repository) AddCategory(category models.Category) (models.Category, error) {
	category.ID = models.CategoryID(category.Name)

	for _, existing := range r.categories {
		if existing.ID == category.ID {
			r.notify("Cannot create category", fmt.Sprintf("A category with the ID %q already exists.", category.ID), notify.SeverityDestructive)
			return models.Category{}, models.ErrCategoryExists
		}
	}

	r.categories = append(r.categories, category)
	r.persist(KeyCategories, r.categories)
	r.notify("Category created", fmt.Sprintf("%q category has been added.", category.Name), notify.SeverityNormal)
	return category, nil
}

// UpdateCategory replaces the category with the same ID. Unknown IDs are a
// no-op.
func (r *Repository) UpdateCategory(category models.Category) {
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = category
		}
	}

	r.persist(KeyCategories, r.categories)
	r.notify("Category updated", fmt.Sprintf("%q category has been updated.", category.Name), notify.SeverityNormal)
}

// DeleteCategory removes the category with the given ID together with every
// goal referencing it. Deletion is refused with ErrCategoryInUse while any
// expense references the category; in that case nothing is mutated.
func (r *Repository) DeleteCategory(id string) error {
	for _, expense := range r.expenses {
		if expense.Category == id {
			r.notify("Cannot delete category", "This category is being used by existing expenses.", notify.SeverityDestructive)
			return models.ErrCategoryInUse
		}
	}

	r.categories = slices.DeleteFunc(r.categories, func(c models.Category) bool { return c.ID == id })
	r.goals = slices.DeleteFunc(r.goals, func(g models.SpendingGoal) bool { return g.Category == id })
	r.persist(KeyCategories, r.categories)
	r.persist(KeyGoals, r.goals)
	r.notify("Category deleted", "Category has been removed.", notify.SeverityDestructive)
	return nil
}

// AddGoal assigns a new ID to the goal and appends it. The goal amount must
// be positive.
func (r *Repository) AddGoal(goal models.SpendingGoal) (models.SpendingGoal, error) {
	if !goal.Amount.IsPositive() {
		return models.SpendingGoal{}, models.ErrGoalAmountNotPositive
	}

	goal.ID = newID()
	r.goals = append(r.goals, goal)
	r.persist(KeyGoals, r.goals)
	r.notify("Goal created", "Your new spending goal has been added.", notify.SeverityNormal)
	return goal, nil
}

// UpdateGoal replaces the goal with the same ID. The goal amount must be
// positive. Unknown IDs are a no-op.
func (r *Repository) UpdateGoal(goal models.SpendingGoal) error {
	if !goal.Amount.IsPositive() {
		return models.ErrGoalAmountNotPositive
	}

	for i := range r.goals {
		if r.goals[i].ID == goal.ID {
			r.goals[i] = goal
		}
	}

	r.persist(KeyGoals, r.goals)
	r.notify("Goal updated", "Your spending goal has been updated.", notify.SeverityNormal)
	return nil
}

// DeleteGoal removes the goal with the given ID. Unknown IDs are a no-op.
func (r *Repository) DeleteGoal(id string) {
	r.goals = slices.DeleteFunc(r.goals, func(g models.SpendingGoal) bool { return g.ID == id })
	r.persist(KeyGoals, r.goals)
	r.notify("Goal deleted", "Your spending goal has been removed.", notify.SeverityDestructive)
}

// ResetToDefault replaces all three collections with their seed values and
// persists them. A single notification follows.
func (r *Repository) ResetToDefault() {
	r.expenses = models.SampleExpenses()
	r.categories = models.DefaultCategories()
	r.goals = models.DefaultGoals()

	r.persist(KeyExpenses, r.expenses)
	r.persist(KeyCategories, r.categories)
	r.persist(KeyGoals, r.goals)
	r.notify("Reset to default", "All data has been reset to default values.", notify.SeverityNormal)
}

// persist writes a collection to the store. Write failures do not roll back
// the in-memory mutation, they are surfaced as a notice: storage is a
// best-effort cache of the session state.
func (r *Repository) persist(key string, value any) {
	err := storage.Save(r.store, key, value)
	if err != nil {
		r.notify("Storage error", fmt.Sprintf("Your change could not be saved: %s", err), notify.SeverityDestructive)
	}
}

func (r *Repository) notify(title, description string, severity notify.Severity) {
	r.sink.Notify(notify.Notification{
		Title:       title,
		Description: description,
		Severity:    severity,
	})
}

func newID() string {
	return uuid.NewString()
}
