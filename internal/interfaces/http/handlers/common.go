package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sellora-inc/sellora/internal/shared/constants"
	"github.com/sellora-inc/sellora/internal/shared/errors"
)

// actorFromContext extracts the authenticated user's ID and role set by the
// auth middleware. The ID is nil for unauthenticated contexts.
func actorFromContext(c *gin.Context) (*uint, string) {
	var actorID *uint
	if v, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			actorID = &id
		}
	}

	role := c.GetString(constants.ContextKeyUserRole)
	return actorID, role
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	if idStr == "" {
		return 0, errors.NewValidationError(name + " is required")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}

	return uint(id), nil
}

func parsePageQuery(c *gin.Context) (page, pageSize int, err error) {
	page = constants.DefaultPage
	pageSize = constants.DefaultPageSize

	if pageStr := c.Query("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return 0, 0, errors.NewValidationError("invalid page parameter")
		}
	}

	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		pageSize, err = strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 1 {
			return 0, 0, errors.NewValidationError("invalid page_size parameter")
		}
		if pageSize > constants.MaxPageSize {
			pageSize = constants.MaxPageSize
		}
	}

	return page, pageSize, nil
}
