package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tours-backend/models"
	"tours-backend/services"
	"tours-backend/utils"
)

type GalleryController struct {
	Gallery *services.GalleryService
}

func NewGalleryController(gallery *services.GalleryService) *GalleryController {
	return &GalleryController{Gallery: gallery}
}

func (gc *GalleryController) List(c *gin.Context) {
	images, err := gc.Gallery.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load gallery")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (gc *GalleryController) Get(c *gin.Context) {
	img, err := gc.Gallery.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "image not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load image")
		return
	}
	c.JSON(http.StatusOK, img)
}

func (gc *GalleryController) Create(c *gin.Context) {
	var draft models.GalleryImage
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	img, err := gc.Gallery.Create(draft)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create image")
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (gc *GalleryController) Update(c *gin.Context) {
	var patch models.GalleryImagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	img, err := gc.Gallery.Update(c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "image not found")
		case errors.Is(err, services.ErrValidation):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update image")
		}
		return
	}
	c.JSON(http.StatusOK, img)
}

func (gc *GalleryController) Delete(c *gin.Context) {
	deleted, err := gc.Gallery.Delete(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete image")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "image not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
