package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"feedback_app/internal/forms"
	"feedback_app/internal/models"
	"feedback_app/internal/service"
	"feedback_app/internal/web"

	"github.com/gin-gonic/gin"
)

const (
	msgFeedbackCreated = "Feedback successfully created."
	msgFeedbackUpdated = "Feedback successfully updated."
	msgFeedbackDeleted = "Feedback deleted successfully."
)

// loadFeedback resolves the :id path parameter. Non-numeric, out of int32
// range (the SERIAL column type) and unknown ids are answered with 404.
func (h *Handler) loadFeedback(c *gin.Context) (models.Feedback, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return models.Feedback{}, false
	}
	f, err := h.services.GetFeedback(c.Request.Context(), int(id))
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			h.notFound(c)
		} else {
			h.internalError(c, "feedback_lookup_failed", err)
		}
		return models.Feedback{}, false
	}
	return f, true
}

func updateFeedbackView(id int, f forms.FeedbackForm, errs forms.Errors) web.Page {
	values := map[string]string{"title": f.Title, "content": f.Content}
	action := fmt.Sprintf("/feedback/%d/update", id)
	return web.Page{Title: "Edit feedback", Form: buildForm(action, "Update", feedbackFields, values, errs)}
}

func (h *Handler) showUpdateFeedback(c *gin.Context) {
	f, ok := h.loadFeedback(c)
	if !ok {
		return
	}
	if !h.authorize(c, f.Username, denyEditFeedback) {
		return
	}
	prefill := forms.FeedbackForm{Title: f.Title, Content: f.Content}
	h.render(c, http.StatusOK, web.PageUpdateFeedback, updateFeedbackView(f.ID, prefill, nil))
}

// updateFeedback godoc
// @Summary      Edit a feedback's title and content
// @Tags         feedback
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id          path      int     true  "feedback id"
// @Param        title       formData  string  true  "at most 100 characters"
// @Param        content     formData  string  true  "body"
// @Param        csrf_token  formData  string  true  "session CSRF token"
// @Success      302
// @Failure      200  "form re-rendered with errors"
// @Failure      404
// @Router       /feedback/{id}/update [post]
func (h *Handler) updateFeedback(c *gin.Context) {
	f, ok := h.loadFeedback(c)
	if !ok {
		return
	}
	if !h.authorize(c, f.Username, denyEditFeedback) {
		return
	}

	var input forms.FeedbackForm
	if !h.bindForm(c, &input) {
		return
	}
	if errs := h.forms.Validate(input); errs.Any() {
		h.render(c, http.StatusOK, web.PageUpdateFeedback, updateFeedbackView(f.ID, input, errs))
		return
	}

	updated, err := h.services.UpdateFeedback(c.Request.Context(), f.ID, service.FeedbackInput{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			h.notFound(c)
			return
		}
		h.internalError(c, "feedback_update_failed", err)
		return
	}
	h.flashRedirect(c, msgFeedbackUpdated, userPath(updated.Username))
}

// deleteFeedback godoc
// @Summary      Delete a feedback
// @Tags         feedback
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id          path      int     true  "feedback id"
// @Param        csrf_token  formData  string  true  "session CSRF token"
// @Success      302
// @Failure      404
// @Router       /feedback/{id}/delete [post]
func (h *Handler) deleteFeedback(c *gin.Context) {
	f, ok := h.loadFeedback(c)
	if !ok {
		return
	}
	if !h.authorize(c, f.Username, denyDeleteFeedback) {
		return
	}

	if err := h.services.DeleteFeedback(c.Request.Context(), f.ID); err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			h.notFound(c)
			return
		}
		h.internalError(c, "feedback_delete_failed", err)
		return
	}
	h.flashRedirect(c, msgFeedbackDeleted, userPath(f.Username))
}
