package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tours-backend/models"
	"tours-backend/services"
	"tours-backend/utils"
)

type TourController struct {
	Tours *services.TourService
}

func NewTourController(tours *services.TourService) *TourController {
	return &TourController{Tours: tours}
}

func (tc *TourController) List(c *gin.Context) {
	tours, err := tc.Tours.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tours")
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (tc *TourController) Get(c *gin.Context) {
	tour, err := tc.Tours.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "tour not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tour")
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (tc *TourController) Create(c *gin.Context) {
	var draft models.Tour
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if strings.TrimSpace(draft.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	tour, err := tc.Tours.Create(draft)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("slug %q already exists", draft.Slug))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create tour")
		return
	}
	c.JSON(http.StatusCreated, tour)
}

func (tc *TourController) Update(c *gin.Context) {
	var patch models.TourPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	tour, err := tc.Tours.Update(c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "tour not found")
		case errors.Is(err, services.ErrConflict):
			utils.JSONError(c, http.StatusConflict, "slug already exists")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update tour")
		}
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (tc *TourController) Delete(c *gin.Context) {
	deleted, err := tc.Tours.Delete(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete tour")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "tour not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
