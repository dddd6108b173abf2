package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
)

// writeValidationError reports a field validation failure as 400 and
// returns true when err was one.
func writeValidationError(c *gin.Context, err error) bool {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		common.ErrorResponse(c, 400, verr.Error(), err)
		return true
	}
	return false
}
