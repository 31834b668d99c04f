package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/models"
	"blogapi/repositories"
	"blogapi/utils"
)

// CommentController maps the /comments endpoints onto the repository. Unlike
// the post-scoped routes, these endpoints do not verify that the referenced
// post exists.
type CommentController struct {
	comments repositories.CommentRepository
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(comments repositories.CommentRepository) *CommentController {
	return &CommentController{comments: comments}
}

// List returns every comment, possibly an empty array.
func (c *CommentController) List(ctx *gin.Context) {
	comments, err := c.comments.GetAll()
	if err != nil {
		utils.ServerError(ctx, "failed to list comments", err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// Get returns a single comment by id.
func (c *CommentController) Get(ctx *gin.Context) {
	comment, err := c.comments.Get(ctx.Param("id"))
	if err != nil {
		utils.ServerError(ctx, "failed to load comment", err)
		return
	}
	if comment == nil {
		utils.NotFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// Create persists a new comment and answers 201 with a Location header.
func (c *CommentController) Create(ctx *gin.Context) {
	var comment models.Comment
	if err := ctx.ShouldBindJSON(&comment); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	comment.Content = utils.Sanitize(comment.Content)
	comment.Author = utils.SanitizePlain(comment.Author)
	if msgs := comment.Validate(); len(msgs) > 0 {
		utils.ValidationFailed(ctx, msgs)
		return
	}

	created, err := c.comments.Create(&comment)
	if err != nil {
		utils.ServerError(ctx, "failed to create comment", err)
		return
	}

	ctx.Header("Location", "/comments/"+created.ID)
	ctx.JSON(http.StatusCreated, created)
}

// Update replaces all mutable fields of a comment. The body id must match
// the path id.
func (c *CommentController) Update(ctx *gin.Context) {
	var comment models.Comment
	if err := ctx.ShouldBindJSON(&comment); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	if comment.ID != ctx.Param("id") {
		utils.BadRequest(ctx, "comment id in body must match id in path")
		return
	}

	comment.Content = utils.Sanitize(comment.Content)
	comment.Author = utils.SanitizePlain(comment.Author)
	if msgs := comment.Validate(); len(msgs) > 0 {
		utils.ValidationFailed(ctx, msgs)
		return
	}

	updated, err := c.comments.Update(&comment)
	if err != nil {
		utils.ServerError(ctx, "failed to update comment", err)
		return
	}
	if updated == nil {
		utils.NotFound(ctx)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete removes a comment by id.
func (c *CommentController) Delete(ctx *gin.Context) {
	deleted, err := c.comments.Delete(ctx.Param("id"))
	if err != nil {
		utils.ServerError(ctx, "failed to delete comment", err)
		return
	}
	if !deleted {
		utils.NotFound(ctx)
		return
	}
	ctx.Status(http.StatusNoContent)
}
