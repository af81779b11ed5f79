package handlers

import (
	"errors"
	"net/http"

	"feedback_app/internal/forms"
	"feedback_app/internal/service"
	"feedback_app/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgUserCreated    = "User successfully created."
	msgUserTaken      = "Username/email already taken."
	msgLoggedIn       = "Logged in successfully."
	msgBadCredentials = "Incorrect username/password."
	msgLoggedOut      = "Logged out successfully."
	msgNotLoggedIn    = "You're not logged in yet."
	msgPasswordBlank  = "You must have a password."

	msgPasswordTooLong = "Password cannot be longer than 72 bytes."
)

// bindForm decodes the urlencoded body into dst. Plain string fields never
// fail to bind, so an error here means a malformed body.
func (h *Handler) bindForm(c *gin.Context, dst any) bool {
	if err := c.ShouldBindWith(dst, binding.Form); err != nil {
		h.logFor(c).Infow("bad_request_body", "path", c.Request.URL.Path, "err", err)
		h.render(c, http.StatusBadRequest, web.PageError, web.Page{Title: "Bad Request", Message: "The submitted form could not be read."})
		return false
	}
	return true
}

func (h *Handler) index(c *gin.Context) {
	h.redirect(c, "/register")
}

// health godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func registerView(f forms.RegisterForm, errs forms.Errors) web.Page {
	values := map[string]string{
		"username":   f.Username,
		"email":      f.Email,
		"first_name": f.FirstName,
		"last_name":  f.LastName,
	}
	return web.Page{Title: "Register", Form: buildForm("/register", "Register", registerFields, values, errs)}
}

func loginView(f forms.LoginForm, errs forms.Errors) web.Page {
	values := map[string]string{"username": f.Username}
	return web.Page{Title: "Log in", Form: buildForm("/login", "Log in", loginFields, values, errs)}
}

func (h *Handler) showRegister(c *gin.Context) {
	h.render(c, http.StatusOK, web.PageRegister, registerView(forms.RegisterForm{}, nil))
}

// register godoc
// @Summary      Create an account
// @Description  Creates the user, logs them in and redirects to their profile.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username    formData  string  true  "5-20 characters"
// @Param        password    formData  string  true  "at least 6 characters"
// @Param        email       formData  string  true  "valid email, at most 50 characters"
// @Param        first_name  formData  string  true  "at most 30 characters"
// @Param        last_name   formData  string  true  "at most 30 characters"
// @Param        csrf_token  formData  string  true  "session CSRF token"
// @Success      302
// @Failure      200  "form re-rendered with errors"
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input forms.RegisterForm
	if !h.bindForm(c, &input) {
		return
	}
	if errs := h.forms.Validate(input); errs.Any() {
		h.render(c, http.StatusOK, web.PageRegister, registerView(input, errs))
		return
	}

	user, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		errs := forms.Errors{}
		switch {
		case errors.Is(err, service.ErrUserTaken):
			errs.Add("username", msgUserTaken)
		case errors.Is(err, service.ErrEmptyPassword):
			errs.Add("password", msgPasswordBlank)
		case errors.Is(err, service.ErrPasswordTooLong):
			errs.Add("password", msgPasswordTooLong)
		default:
			h.internalError(c, "register_failed", err)
			return
		}
		h.logFor(c).Infow("register_failed", "username", input.Username, "err", err)
		h.render(c, http.StatusOK, web.PageRegister, registerView(input, errs))
		return
	}

	s := currentSession(c)
	s.Login(user.Username)
	h.flashRedirect(c, msgUserCreated, userPath(user.Username))
}

func (h *Handler) showLogin(c *gin.Context) {
	h.render(c, http.StatusOK, web.PageLogin, loginView(forms.LoginForm{}, nil))
}

// login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username    formData  string  true  "username"
// @Param        password    formData  string  true  "password"
// @Param        csrf_token  formData  string  true  "session CSRF token"
// @Success      302
// @Failure      200  "form re-rendered with errors"
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input forms.LoginForm
	if !h.bindForm(c, &input) {
		return
	}
	if errs := h.forms.Validate(input); errs.Any() {
		h.render(c, http.StatusOK, web.PageLogin, loginView(input, errs))
		return
	}

	user, err := h.services.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.internalError(c, "login_failed", err)
		return
	}
	if user == nil {
		h.logFor(c).Infow("login_rejected", "username", input.Username)
		errs := forms.Errors{}
		errs.Add("username", msgBadCredentials)
		h.render(c, http.StatusOK, web.PageLogin, loginView(input, errs))
		return
	}

	s := currentSession(c)
	s.AddFlash(msgLoggedIn)
	s.Login(user.Username)
	h.redirect(c, userPath(user.Username))
}

// logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      html
// @Success      302
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	s := currentSession(c)
	if !s.LoggedIn() {
		h.flashRedirect(c, msgNotLoggedIn, "/login")
		return
	}
	s.Logout()
	h.flashRedirect(c, msgLoggedOut, "/")
}
