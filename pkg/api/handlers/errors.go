package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pmartell/sonyadcp/pkg/adcp"
	"github.com/pmartell/sonyadcp/pkg/api/types"
	"github.com/pmartell/sonyadcp/pkg/registry"
)

// writeProjectorError maps protocol and registry errors onto HTTP status
// codes. Device-side rejections are the client's fault (422), transport
// failures are the projector's (502/504).
func writeProjectorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, registry.ErrProjectorNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "Projector not found",
		})
	case errors.Is(err, adcp.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, types.ErrorResponse{
			Error:   "timeout",
			Message: "Projector did not respond before the deadline",
		})
	case errors.Is(err, adcp.ErrAuthentication):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "auth_failed",
			Message: "Projector rejected the configured password",
		})
	case errors.Is(err, adcp.ErrConnection):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "unreachable",
			Message: err.Error(),
		})
	case errors.Is(err, adcp.ErrCommandNotRecognized),
		errors.Is(err, adcp.ErrValueOutOfRange),
		errors.Is(err, adcp.ErrOptionUnsupported),
		errors.Is(err, adcp.ErrValueNotAllowed),
		errors.Is(err, adcp.ErrQueryParameterRequired):
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{
			Error:   "rejected",
			Message: err.Error(),
		})
	case errors.Is(err, adcp.ErrTemporarilyUnavailable):
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
			Error:   "busy",
			Message: "Projector cannot accept this command in its current state",
		})
	default:
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "device_error",
			Message: err.Error(),
		})
	}
}
