// Package healthz implements the liveness endpoint.
package healthz

import (
	"net/http"

	"github.com/budgetbuddy/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the healthz route with the RouterGroup that is
// passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", Get)
}

// @Summary		Liveness
// @Description	Returns an empty response. As the core keeps all state in
// @Description	memory, a responding process is a healthy process.
// @Tags			General
// @Success		204
// @Router			/healthz [get]
func Get(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
