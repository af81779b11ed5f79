package forms

// RegisterForm is the account registration form.
type RegisterForm struct {
	Username  string `form:"username" validate:"required,min=5,max=20"`
	Password  string `form:"password" validate:"required,min=6"`
	Email     string `form:"email" validate:"required,max=50,email"`
	FirstName string `form:"first_name" validate:"required,max=30"`
	LastName  string `form:"last_name" validate:"required,max=30"`
}

var registerMessages = map[string]string{
	"username.required":   "You must have a username.",
	"username.min":        "Username must be between 5 & 20 characters long.",
	"username.max":        "Username must be between 5 & 20 characters long.",
	"password.required":   "You must have a password.",
	"password.min":        "Password must be longer than 6 characters.",
	"email.required":      "You must have an email.",
	"email.max":           "Email cannot be longer than 50 characters.",
	"email.email":         "Email must be a valid email.",
	"first_name.required": "You must have an first name.",
	"first_name.max":      "First name cannot be longer than 30 characters.",
	"last_name.required":  "You must have an last name.",
	"last_name.max":       "Last name cannot be longer than 30 characters.",
}

func (RegisterForm) messages() map[string]string { return registerMessages }

// LoginForm is the credentials form.
type LoginForm struct {
	Username string `form:"username" validate:"required,min=5,max=20"`
	Password string `form:"password" validate:"required,min=6"`
}

var loginMessages = map[string]string{
	"username.required": registerMessages["username.required"],
	"username.min":      registerMessages["username.min"],
	"username.max":      registerMessages["username.max"],
	"password.required": registerMessages["password.required"],
	"password.min":      registerMessages["password.min"],
}

func (LoginForm) messages() map[string]string { return loginMessages }

// FeedbackForm is used both to add and to update feedback.
type FeedbackForm struct {
	Title   string `form:"title" validate:"required,max=100"`
	Content string `form:"content" validate:"required"`
}

var feedbackMessages = map[string]string{
	"title.required":   "You must have an title.",
	"title.max":        "A title cannot be longer than 100 characters.",
	"content.required": "You must have some content.",
}

func (FeedbackForm) messages() map[string]string { return feedbackMessages }
