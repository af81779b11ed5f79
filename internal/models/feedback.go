package models

// Feedback is a short note owned by exactly one user.
type Feedback struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Username string `json:"username"` // owner, FK to users.username
}
