package ingestion

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poststats-lab/project-poststats/internal/core/storage"
)

const (
	defaultListLimit = 1000
	maxListLimit     = 10000
)

type Service struct {
	store            storage.PostStore
	maxBodySizeBytes int
	nowFn            func() time.Time
}

func NewService(repo storage.PostStore, maxBodySizeMB int) *Service {
	if repo == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            repo,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/posts", s.IngestHandler)
	r.GET("/v1/posts/:author_id", s.ListPostsHandler)
}
