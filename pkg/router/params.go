package router

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DominusMortem/foodgram-project-react/pkg/server"
	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

const maxPageSize = 100

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: no resource with id %q", server.ErrNotFound, c.Param("id"))
	}

	return uint(id), nil
}

func (r *Router) pagination(c *gin.Context) (rest.Pagination, error) {
	pagination := rest.Pagination{Page: 1, Limit: r.config.Server.PageSize}

	if page := c.Query("page"); len(page) > 0 {
		value, err := strconv.Atoi(page)
		if err != nil || value < 1 {
			return pagination, fmt.Errorf("%w: invalid page %q", server.ErrNotFound, page)
		}

		pagination.Page = value
	}

	if limit := c.Query("limit"); len(limit) > 0 {
		value, err := strconv.Atoi(limit)
		if err != nil || value < 1 {
			return pagination, fmt.Errorf("%w: invalid limit %q", server.ErrInvalidInput, limit)
		}

		pagination.Limit = min(value, maxPageSize)
	}

	return pagination, nil
}

// requestURL rebuilds the absolute URL of the current request for page links.
func requestURL(c *gin.Context) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	if forwarded := c.GetHeader("X-Forwarded-Proto"); len(forwarded) > 0 {
		scheme = forwarded
	}

	return &url.URL{Scheme: scheme, Host: c.Request.Host, Path: c.Request.URL.Path, RawQuery: c.Request.URL.RawQuery}
}

func queryFlag(c *gin.Context, name string) bool {
	switch c.Query(name) {
	case "1", "true", "True":
		return true
	default:
		return false
	}
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if len(raw) == 0 {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", server.ErrInvalidInput, name)
	}

	return value, nil
}
