package domain

// Reader is a registered library member who can borrow books.
type Reader struct {
	ID       int64
	Fullname string
	Email    string
}
