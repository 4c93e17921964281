package handlers

import (
	"net/http"
	"strconv"

	"towdispatch/pkg"

	"github.com/gin-gonic/gin"
)

const defaultActor = "admin"

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func renderError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// actor is the BasicAuth user of an admin request.
func actor(c *gin.Context) string {
	if user := c.GetString(gin.AuthUserKey); user != "" {
		return user
	}
	return defaultActor
}

func queryInt64(c *gin.Context, key string, def int64) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return def
	}
	return v
}

func queryBool(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}
