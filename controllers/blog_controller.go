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

type BlogController struct {
	Blog *services.BlogService
}

func NewBlogController(blog *services.BlogService) *BlogController {
	return &BlogController{Blog: blog}
}

func (bc *BlogController) List(c *gin.Context) {
	posts, err := bc.Blog.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (bc *BlogController) Get(c *gin.Context) {
	post, err := bc.Blog.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "post not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (bc *BlogController) Create(c *gin.Context) {
	var draft models.BlogPost
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if strings.TrimSpace(draft.Title) == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	post, err := bc.Blog.Create(draft)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			utils.JSONError(c, http.StatusConflict, "slug already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (bc *BlogController) Update(c *gin.Context) {
	var patch models.BlogPostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	post, err := bc.Blog.Update(c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "post not found")
		case errors.Is(err, services.ErrConflict):
			utils.JSONError(c, http.StatusConflict, "slug already exists")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update post")
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

func (bc *BlogController) Delete(c *gin.Context) {
	deleted, err := bc.Blog.Delete(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete post")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "post not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
