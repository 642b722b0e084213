package domain

// Librarian is a staff account that authenticates against the API.
// PasswordHash holds a bcrypt digest, never a plaintext password.
type Librarian struct {
	ID           int64
	Email        string
	PasswordHash string
}
