package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blogapi/models"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a GORM backed PostRepository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetAll() ([]models.Post, error) {
	posts := []models.Post{}
	if err := r.db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Get(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(post *models.Post) (*models.Post, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Update overwrites all mutable fields of an existing post. A missing id is
// absence, not an error.
func (r *postRepository) Update(post *models.Post) (*models.Post, error) {
	var existing models.Post
	err := r.db.Where("id = ?", post.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	existing.Title = post.Title
	existing.Content = post.Content
	existing.CreationDate = post.CreationDate
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *postRepository) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&models.Post{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
