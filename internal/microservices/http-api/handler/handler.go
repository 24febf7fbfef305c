package handler

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"storerating/internal/apperror"
	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/middleware"
	"storerating/internal/microservices/http-api/policy"
	"storerating/internal/microservices/http-api/repository"
	"storerating/internal/microservices/http-api/response"

	"github.com/gin-gonic/gin"
)

const (
	requestTimeout = 5 * time.Second

	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	// keeps (page-1)*limit inside int
	maxPage      = math.MaxInt / maxLimit
)

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// listParams reads page, limit, search, sortBy and sortOrder from the query
// string. Bad page/limit values fall back to the defaults; sort columns are
// checked against an allow-list further down.
func listParams(c *gin.Context) repository.ListParams {
	params := repository.ListParams{
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      defaultPage,
		Limit:     defaultLimit,
	}
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		params.Page = min(p, maxPage)
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		params.Limit = min(l, maxLimit)
	}
	return params
}

// idParam parses a positive integer path parameter, writing a validation
// error when it is malformed.
func idParam(c *gin.Context, log *logger.Logger, name, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, log, apperror.Validation(msg))
		return 0, false
	}
	return id, true
}

func principal(c *gin.Context, log *logger.Logger) (policy.Principal, bool) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, log, apperror.Unauthorized("Authentication required"))
	}
	return p, ok
}
