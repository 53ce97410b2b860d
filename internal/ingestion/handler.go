package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/poststats-lab/project-poststats/internal/api/v1"
	httperr "github.com/poststats-lab/project-poststats/internal/core/errors"
	"github.com/poststats-lab/project-poststats/internal/core/storage"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgPersistFailed  = "Failed to persist post"
	msgDuplicatePost  = "Post already exists"
	msgListFailed     = "Failed to list posts"
)

// ingestionError carries the structured HTTP error shape from a helper back to the handler.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestHandler handles POST /v1/posts.
func (s *Service) IngestHandler(c *gin.Context) {
	post, payloadSize, err := s.parsePost(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := post.Validate(); err != nil {
		slog.Warn("Post validation failed", "error", err, "post_id", post.ID)
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpPostValidationError,
			message:    err.Error(),
		})
		return
	}

	slog.Info("Received Post",
		"post_id", post.ID,
		"author_id", post.AuthorID,
		"post_type", post.Type,
		"payload_size", payloadSize)

	if err := s.persistPost(c.Request.Context(), post); err != nil {
		writeError(c, err)
		return
	}

	// Statistics read posts straight from the store; nothing else to trigger.
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// parsePost reads the raw request body and binds it into a Post.
// Returns the parsed post and the raw payload size.
func (s *Service) parsePost(c *gin.Context) (*v1.Post, int, *ingestionError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLargeError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_bytes": maxBytes,
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var post v1.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}

	post.IngestedAt = time.Now().UTC()
	return &post, len(bodyBytes), nil
}

// persistPost saves the post to the backing store.
func (s *Service) persistPost(ctx context.Context, post *v1.Post) *ingestionError {
	if err := s.store.SavePost(ctx, post); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("Duplicate post rejected", "post_id", post.ID, "author_id", post.AuthorID)
			return &ingestionError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicatePostError,
				message:    msgDuplicatePost,
			}
		}

		slog.Error("Failed to persist post", "error", err, "post_id", post.ID)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}

	return nil
}

// ListPostsHandler handles GET /v1/posts/:author_id
// Query parameters: start, end (RFC3339, optional), limit.
func (s *Service) ListPostsHandler(c *gin.Context) {
	var query struct {
		Start time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
		End   time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
		Limit int       `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidQueryError,
			message:    "Invalid query parameters",
			details:    err.Error(),
		})
		return
	}

	if !query.Start.IsZero() && !query.End.IsZero() && query.End.Before(query.Start) {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidQueryError,
			message:    "end time must not be before start time",
		})
		return
	}

	limit := query.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	start, end := query.Start, query.End
	if start.IsZero() {
		start = time.Unix(0, 0).UTC()
	}
	if end.IsZero() {
		end = s.nowFn()
	}

	authorID := c.Param("author_id")
	posts, err := s.store.RetrieveAuthorPosts(c.Request.Context(), authorID, start, end, limit)
	if err != nil {
		slog.Error("Failed to list posts", "error", err, "author_id", authorID)
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgListFailed,
		})
		return
	}

	if posts == nil {
		posts = []*v1.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
