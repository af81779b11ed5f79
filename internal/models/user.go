package models

// User is an account holder. Username is the primary key.
type User struct {
	Username  string `json:"username"`
	Password  string `json:"-"` // bcrypt hash, never the plaintext
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewUser builds an unsaved user from already hashed credentials.
func NewUser(username, passwordHash, email, firstName, lastName string) User {
	return User{
		Username:  username,
		Password:  passwordHash,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
}

// FullName joins first and last name with a single space.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
