package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blogapi/repositories"
	"blogapi/utils"
)

// PostExistsMessage is the body sent when a post-scoped request references a
// post that does not exist.
const PostExistsMessage = "Post should exist."

// PostExists verifies that the post named by the :id path parameter exists
// before the handler runs. Requests without a well-formed identifier pass
// through untouched; enforcement only happens for parseable ids.
func PostExists(repo repositories.PostRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			ctx.Next()
			return
		}

		if repo == nil {
			utils.ServerError(ctx, "post store unavailable", nil)
			ctx.Abort()
			return
		}

		post, err := repo.Get(id)
		if err != nil {
			utils.ServerError(ctx, "failed to look up post", err)
			ctx.Abort()
			return
		}
		if post == nil {
			utils.BadRequest(ctx, PostExistsMessage)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
