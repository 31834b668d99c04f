package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blogapi/models"
	"blogapi/repositories"
	repomock "blogapi/repositories/mock"
)

const postID = "8f8c8d6e-1111-2222-3333-444455556666"

func newFilteredRouter(repo repositories.PostRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/posts/:id", PostExists(repo), func(c *gin.Context) {
		c.String(http.StatusOK, "handler reached")
	})
	return r
}

func TestPostExists_ExistingPostProceeds(t *testing.T) {
	repo := new(repomock.PostRepository)
	repo.On("Get", postID).Return(&models.Post{ID: postID}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/"+postID, nil)
	newFilteredRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "handler reached", w.Body.String())
}

func TestPostExists_MissingPostShortCircuits(t *testing.T) {
	repo := new(repomock.PostRepository)
	repo.On("Get", postID).Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/"+postID, nil)
	newFilteredRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), PostExistsMessage)
	assert.NotContains(t, w.Body.String(), "handler reached")
}

func TestPostExists_MalformedIDBypassesEnforcement(t *testing.T) {
	repo := new(repomock.PostRepository)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/not-a-uuid", nil)
	newFilteredRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertNotCalled(t, "Get")
}

func TestPostExists_StoreFailureShortCircuits(t *testing.T) {
	repo := new(repomock.PostRepository)
	repo.On("Get", postID).Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/"+postID, nil)
	newFilteredRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPostExists_NilRepositoryShortCircuits(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/"+postID, nil)
	newFilteredRouter(nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"post store unavailable"}`, w.Body.String())
}
