package rest

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"github.com/discostamp/discostamp/blog/application"
)

// NewApi registers every route group on the router.
func NewApi(router *gin.Engine, posts *application.PostService, clock clockwork.Clock, baseURL string) {
	NewPostsHandler(posts, baseURL).RegisterRoutes(router)
	NewTimestampHandler(clock).RegisterRoutes(router)
}

// requestBaseURL resolves the externally visible base URL: an explicit
// override wins, otherwise it is derived from the forwarded-protocol
// and host headers set by the reverse proxy.
func requestBaseURL(c *gin.Context, override string) string {
	if override != "" {
		return strings.TrimSuffix(override, "/")
	}

	scheme := c.GetHeader("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
	}

	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}

	return scheme + "://" + host
}
