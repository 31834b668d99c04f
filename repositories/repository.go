package repositories

import "blogapi/models"

// PostRepository is the persistence contract for posts. Get and Update
// signal absence with a nil entity and a nil error; store failures are
// returned as-is.
type PostRepository interface {
	GetAll() ([]models.Post, error)
	Get(id string) (*models.Post, error)
	Create(post *models.Post) (*models.Post, error)
	Update(post *models.Post) (*models.Post, error)
	Delete(id string) (bool, error)
}

// CommentRepository is the persistence contract for comments.
type CommentRepository interface {
	GetAll() ([]models.Comment, error)
	Get(id string) (*models.Comment, error)
	Create(comment *models.Comment) (*models.Comment, error)
	Update(comment *models.Comment) (*models.Comment, error)
	Delete(id string) (bool, error)
	GetByPostID(postID string) ([]models.Comment, error)
}
