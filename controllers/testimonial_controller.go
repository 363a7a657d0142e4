package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tours-backend/models"
	"tours-backend/services"
	"tours-backend/utils"
)

type TestimonialController struct {
	Testimonials *services.TestimonialService
}

func NewTestimonialController(testimonials *services.TestimonialService) *TestimonialController {
	return &TestimonialController{Testimonials: testimonials}
}

func (tc *TestimonialController) List(c *gin.Context) {
	items, err := tc.Testimonials.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (tc *TestimonialController) Get(c *gin.Context) {
	item, err := tc.Testimonials.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "testimonial not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load testimonial")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (tc *TestimonialController) Create(c *gin.Context) {
	var draft models.Testimonial
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	item, err := tc.Testimonials.Create(draft)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create testimonial")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (tc *TestimonialController) Update(c *gin.Context) {
	var patch models.TestimonialPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	item, err := tc.Testimonials.Update(c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "testimonial not found")
		case errors.Is(err, services.ErrValidation):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update testimonial")
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

func (tc *TestimonialController) Delete(c *gin.Context) {
	deleted, err := tc.Testimonials.Delete(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete testimonial")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "testimonial not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
