package handlers

import (
	"net/http"
	"strings"

	"dental_lab/pkg"

	"github.com/gin-gonic/gin"
)

// OwnerHeader carries the authenticated owner id. Authentication itself happens
// upstream of this service.
const OwnerHeader = "X-Owner-ID"

const ownerContextKey = "owner_id"

var errMissingOwner = pkg.NewDomainErrorSimple("MISSING_OWNER", "Missing "+OwnerHeader+" header", http.StatusUnauthorized)

// RequireOwner rejects requests without an owner id and stores it on the context.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := strings.TrimSpace(c.GetHeader(OwnerHeader))
		if ownerID == "" {
			c.AbortWithStatusJSON(errMissingOwner.HTTPStatus, errMissingOwner.ToHTTPError())
			return
		}
		c.Set(ownerContextKey, ownerID)
		c.Next()
	}
}

// ownerID falls back to the header so handlers also work when mounted without
// the middleware.
func ownerID(c *gin.Context) string {
	if v := c.GetString(ownerContextKey); v != "" {
		return v
	}
	return strings.TrimSpace(c.GetHeader(OwnerHeader))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
