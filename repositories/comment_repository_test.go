package repositories

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/models"
)

const commentID = "0b7f8a8e-aaaa-bbbb-cccc-ddddeeeeffff"

func commentColumns() []string {
	return []string{"id", "post_id", "content", "author", "creation_date"}
}

func TestCommentRepository_GetByPostID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	ts := testTime(t)

	rows := sqlmock.NewRows(commentColumns()).
		AddRow(commentID, postID, "First comment", "John Doe", ts).
		AddRow(uuid.New().String(), postID, "Second comment", "Jane Smith", ts)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE post_id = ?")).
		WithArgs(postID).
		WillReturnRows(rows)

	comments, err := repo.GetByPostID(postID)

	require.NoError(t, err)
	assert.Len(t, comments, 2)
	for _, c := range comments {
		assert.Equal(t, postID, c.PostID)
	}
}

func TestCommentRepository_GetByPostID_NoComments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE post_id = ?")).
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows(commentColumns()))

	comments, err := repo.GetByPostID(postID)

	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestCommentRepository_Get_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(commentColumns()))

	comment, err := repo.Get(commentID)

	require.NoError(t, err)
	assert.Nil(t, comment)
}

func TestCommentRepository_Create_AssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	ts := testTime(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comments`")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(&models.Comment{PostID: postID, Content: "First comment", Author: "John Doe", CreationDate: &ts})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(created.ID)
	assert.NoError(t, parseErr)
}

func TestCommentRepository_Update_OverwritesFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	ts := testTime(t)

	rows := sqlmock.NewRows(commentColumns()).
		AddRow(commentID, postID, "Old comment", "John Doe", ts)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE id = ?")).
		WillReturnRows(rows)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `comments` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(&models.Comment{ID: commentID, PostID: postID, Content: "New comment", Author: "Jane Smith", CreationDate: &ts})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "New comment", updated.Content)
	assert.Equal(t, "Jane Smith", updated.Author)
}

func TestCommentRepository_Update_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	ts := testTime(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(commentColumns()))

	updated, err := repo.Update(&models.Comment{ID: commentID, PostID: postID, Content: "New comment", Author: "Jane Smith", CreationDate: &ts})

	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_Delete_TrueExactlyOnce(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comments` WHERE id = ?")).
		WithArgs(commentID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comments` WHERE id = ?")).
		WithArgs(commentID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	first, err := repo.Delete(commentID)
	require.NoError(t, err)
	second, err := repo.Delete(commentID)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}
