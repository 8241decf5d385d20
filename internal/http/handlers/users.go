package handlers

import (
	"net/http"

	"fastbus/internal/http/middleware"
	"fastbus/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/users/:id — callers may only read their own account.
func GetUser(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if middleware.UserID(c) != id {
		RespondError(c, http.StatusForbidden, "cannot read another user's account", nil)
		return
	}

	user, err := repositories.UserRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
