// Package mock provides testify based mocks for the repository contracts.
package mock

import (
	"github.com/stretchr/testify/mock"

	"blogapi/models"
	"blogapi/repositories"
)

// PostRepository is a mock implementation of repositories.PostRepository.
type PostRepository struct {
	mock.Mock
}

var _ repositories.PostRepository = (*PostRepository)(nil)

func (m *PostRepository) GetAll() ([]models.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *PostRepository) Get(id string) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *PostRepository) Create(post *models.Post) (*models.Post, error) {
	args := m.Called(post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *PostRepository) Update(post *models.Post) (*models.Post, error) {
	args := m.Called(post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *PostRepository) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// CommentRepository is a mock implementation of repositories.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

var _ repositories.CommentRepository = (*CommentRepository)(nil)

func (m *CommentRepository) GetAll() ([]models.Comment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *CommentRepository) Get(id string) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *CommentRepository) Create(comment *models.Comment) (*models.Comment, error) {
	args := m.Called(comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *CommentRepository) Update(comment *models.Comment) (*models.Comment, error) {
	args := m.Called(comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *CommentRepository) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *CommentRepository) GetByPostID(postID string) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}
