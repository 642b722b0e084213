package domain

// Book is a catalogued title with a count of available copies.
// Amount never goes below zero and is mutated only by the inventory workflow.
type Book struct {
	ID              int64
	Name            string
	Author          string
	YearPublication *int
	ISNB            *string
	Amount          int
}
