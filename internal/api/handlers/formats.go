package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rpgo/investment-calculator/internal/api/models"
	"github.com/rpgo/investment-calculator/internal/output"
)

// ListFormats handles GET /api/v1/formats
func ListFormats(c *gin.Context) {
	c.JSON(http.StatusOK, models.FormatsResponse{
		Formats: output.AvailableFormatterNames(),
		Aliases: output.AvailableFormatAliases(),
	})
}
