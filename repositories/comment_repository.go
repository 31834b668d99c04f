package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blogapi/models"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a GORM backed CommentRepository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) GetAll() ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Get(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Create(comment *models.Comment) (*models.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if err := r.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *commentRepository) Update(comment *models.Comment) (*models.Comment, error) {
	var existing models.Comment
	err := r.db.Where("id = ?", comment.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	existing.PostID = comment.PostID
	existing.Content = comment.Content
	existing.Author = comment.Author
	existing.CreationDate = comment.CreationDate
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *commentRepository) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetByPostID filters comments by post id; storage order, no guarantee beyond it.
func (r *commentRepository) GetByPostID(postID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
