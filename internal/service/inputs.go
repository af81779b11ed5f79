package service

// RegisterInput carries validated registration fields. Password is plaintext
// and is hashed before it reaches the repository.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// FeedbackInput carries the mutable feedback fields.
type FeedbackInput struct {
	Title   string
	Content string
}
