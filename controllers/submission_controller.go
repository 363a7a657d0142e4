package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tours-backend/models"
	"tours-backend/services"
	"tours-backend/utils"
)

type SubmissionController struct {
	Submissions *services.SubmissionService
}

func NewSubmissionController(submissions *services.SubmissionService) *SubmissionController {
	return &SubmissionController{Submissions: submissions}
}

// Contact handles the public contact form. A populated honeypot field means
// an automated submission: discard silently and redirect home.
func (sc *SubmissionController) Contact(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	if name == "" || email == "" {
		c.String(http.StatusBadRequest, "Name and email are required.")
		return
	}
	if c.PostForm("bot-field") != "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	_, err := sc.Submissions.CreateContact(models.ContactSubmission{
		Name:     name,
		Email:    email,
		Interest: c.PostForm("interest"),
		Message:  c.PostForm("message"),
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.String(http.StatusBadRequest, "Name and email are required.")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to save submission.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/inquiry-success")
}

// Inquiry handles the tour inquiry form, same policy as Contact.
func (sc *SubmissionController) Inquiry(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	if name == "" || email == "" {
		c.String(http.StatusBadRequest, "Name and email are required.")
		return
	}
	if c.PostForm("bot-field") != "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	_, err := sc.Submissions.CreateInquiry(models.InquirySubmission{
		Name:      name,
		Email:     email,
		Phone:     c.PostForm("phone"),
		Tour:      c.PostForm("tour"),
		GroupSize: c.PostForm("groupSize"),
		Dates:     c.PostForm("dates"),
		Message:   c.PostForm("message"),
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.String(http.StatusBadRequest, "Name and email are required.")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to save submission.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/inquiry-success")
}

func (sc *SubmissionController) ListContact(c *gin.Context) {
	subs, err := sc.Submissions.ListContact()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load submissions")
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (sc *SubmissionController) ListInquiry(c *gin.Context) {
	subs, err := sc.Submissions.ListInquiry()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load submissions")
		return
	}
	c.JSON(http.StatusOK, subs)
}
