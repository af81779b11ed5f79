package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"feedback_app/internal/forms"
	"feedback_app/internal/models"
	"feedback_app/internal/service"
	"feedback_app/internal/web"

	"github.com/gin-gonic/gin"
)

const (
	msgAccountDeleted = "Successfully deleted your account."

	denyViewUser       = "You have to be logged in as %s to view this information."
	denyDeleteUser     = "You have to be logged in as %s to delete their account."
	denyAddFeedback    = "You have to be logged in as %s to add feedback as them."
	denyEditFeedback   = "You have to be logged in as %s to edit feedback as them."
	denyDeleteFeedback = "You have to be logged in as %s to delete their feedback."
)

// authorize reports whether the session owns owner's data. Otherwise it
// flashes the formatted denial and redirects home.
func (h *Handler) authorize(c *gin.Context, owner, denial string) bool {
	if currentSession(c).IsOwner(owner) {
		return true
	}
	h.logFor(c).Infow("access_denied", "owner", owner, "actor", currentSession(c).Username, "path", c.Request.URL.Path)
	h.flashRedirect(c, fmt.Sprintf(denial, owner), "/")
	return false
}

// loadUser fetches username, answering 404 or 500 itself on failure.
func (h *Handler) loadUser(c *gin.Context, username string) (models.User, bool) {
	user, err := h.services.GetUser(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.notFound(c)
		} else {
			h.internalError(c, "user_lookup_failed", err)
		}
		return models.User{}, false
	}
	return user, true
}

// showUser godoc
// @Summary      User profile with their feedback
// @Tags         users
// @Produce      html
// @Param        username  path  string  true  "username"
// @Success      200
// @Failure      302  "not logged in as username"
// @Failure      404
// @Router       /users/{username} [get]
func (h *Handler) showUser(c *gin.Context) {
	username := c.Param("username")
	if !h.authorize(c, username, denyViewUser) {
		return
	}
	user, ok := h.loadUser(c, username)
	if !ok {
		return
	}
	feedback, err := h.services.ListFeedback(c.Request.Context(), user.Username)
	if err != nil {
		h.internalError(c, "feedback_list_failed", err)
		return
	}
	h.render(c, http.StatusOK, web.PageUser, web.Page{
		Title:    user.Username,
		Profile:  &user,
		Feedback: feedback,
	})
}

// deleteUser godoc
// @Summary      Delete the account and all its feedback
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username    path      string  true  "username"
// @Param        csrf_token  formData  string  true  "session CSRF token"
// @Success      302
// @Failure      404
// @Router       /users/{username}/delete [post]
func (h *Handler) deleteUser(c *gin.Context) {
	username := c.Param("username")
	if !h.authorize(c, username, denyDeleteUser) {
		return
	}
	if err := h.services.DeleteUser(c.Request.Context(), username); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.notFound(c)
			return
		}
		h.internalError(c, "user_delete_failed", err)
		return
	}

	h.logFor(c).Infow("user_deleted", "username", username)
	currentSession(c).Logout()
	h.flashRedirect(c, msgAccountDeleted, "/")
}

func addFeedbackView(username string, f forms.FeedbackForm, errs forms.Errors) web.Page {
	values := map[string]string{"title": f.Title, "content": f.Content}
	action := userPath(username) + "/feedback/add"
	return web.Page{Title: "Add feedback", Form: buildForm(action, "Add", feedbackFields, values, errs)}
}

func (h *Handler) showAddFeedback(c *gin.Context) {
	username := c.Param("username")
	if !h.authorize(c, username, denyAddFeedback) {
		return
	}
	if _, ok := h.loadUser(c, username); !ok {
		return
	}
	h.render(c, http.StatusOK, web.PageAddFeedback, addFeedbackView(username, forms.FeedbackForm{}, nil))
}

// addFeedback godoc
// @Summary      Add feedback as username
// @Tags         feedback
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username    path      string  true  "owner"
// @Param        title       formData  string  true  "at most 100 characters"
// @Param        content     formData  string  true  "body"
// @Param        csrf_token  formData  string  true  "session CSRF token"
// @Success      302
// @Failure      200  "form re-rendered with errors"
// @Failure      404
// @Router       /users/{username}/feedback/add [post]
func (h *Handler) addFeedback(c *gin.Context) {
	username := c.Param("username")
	if !h.authorize(c, username, denyAddFeedback) {
		return
	}
	if _, ok := h.loadUser(c, username); !ok {
		return
	}

	var input forms.FeedbackForm
	if !h.bindForm(c, &input) {
		return
	}
	if errs := h.forms.Validate(input); errs.Any() {
		h.render(c, http.StatusOK, web.PageAddFeedback, addFeedbackView(username, input, errs))
		return
	}

	_, err := h.services.AddFeedback(c.Request.Context(), username, service.FeedbackInput{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.notFound(c)
			return
		}
		h.internalError(c, "feedback_create_failed", err)
		return
	}
	h.flashRedirect(c, msgFeedbackCreated, userPath(username))
}
