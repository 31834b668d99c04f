package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/models"
	"blogapi/repositories"
	"blogapi/utils"
)

// PostController maps the /posts endpoints onto the repositories.
type PostController struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository

	// emptyCommentsAsNotFound turns an empty comment list into a 404
	// instead of a 200 with an empty array.
	emptyCommentsAsNotFound bool
}

// NewPostController creates a new PostController instance.
func NewPostController(posts repositories.PostRepository, comments repositories.CommentRepository, emptyCommentsAsNotFound bool) *PostController {
	return &PostController{posts: posts, comments: comments, emptyCommentsAsNotFound: emptyCommentsAsNotFound}
}

// List returns every post, possibly an empty array.
func (p *PostController) List(ctx *gin.Context) {
	posts, err := p.posts.GetAll()
	if err != nil {
		utils.ServerError(ctx, "failed to list posts", err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// Get returns a single post by id.
func (p *PostController) Get(ctx *gin.Context) {
	post, err := p.posts.Get(ctx.Param("id"))
	if err != nil {
		utils.ServerError(ctx, "failed to load post", err)
		return
	}
	if post == nil {
		utils.NotFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// Create persists a new post and answers 201 with a Location header.
func (p *PostController) Create(ctx *gin.Context) {
	var post models.Post
	if err := ctx.ShouldBindJSON(&post); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	post.Title = utils.SanitizePlain(post.Title)
	post.Content = utils.Sanitize(post.Content)
	if msgs := post.Validate(); len(msgs) > 0 {
		utils.ValidationFailed(ctx, msgs)
		return
	}

	created, err := p.posts.Create(&post)
	if err != nil {
		utils.ServerError(ctx, "failed to create post", err)
		return
	}

	ctx.Header("Location", "/posts/"+created.ID)
	ctx.JSON(http.StatusCreated, created)
}

// Update replaces all mutable fields of a post. The body id must match the
// path id.
func (p *PostController) Update(ctx *gin.Context) {
	var post models.Post
	if err := ctx.ShouldBindJSON(&post); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	if post.ID != ctx.Param("id") {
		utils.BadRequest(ctx, "post id in body must match id in path")
		return
	}

	post.Title = utils.SanitizePlain(post.Title)
	post.Content = utils.Sanitize(post.Content)
	if msgs := post.Validate(); len(msgs) > 0 {
		utils.ValidationFailed(ctx, msgs)
		return
	}

	updated, err := p.posts.Update(&post)
	if err != nil {
		utils.ServerError(ctx, "failed to update post", err)
		return
	}
	if updated == nil {
		utils.NotFound(ctx)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete removes a post by id. Comments are left in place; the store keeps
// no foreign key, so orphans are allowed.
func (p *PostController) Delete(ctx *gin.Context) {
	deleted, err := p.posts.Delete(ctx.Param("id"))
	if err != nil {
		utils.ServerError(ctx, "failed to delete post", err)
		return
	}
	if !deleted {
		utils.NotFound(ctx)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListComments returns the comments attached to a post.
func (p *PostController) ListComments(ctx *gin.Context) {
	comments, err := p.comments.GetByPostID(ctx.Param("id"))
	if err != nil {
		utils.ServerError(ctx, "failed to list comments", err)
		return
	}
	if len(comments) == 0 && p.emptyCommentsAsNotFound {
		utils.NotFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}
