package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studhub/eventrec/pkg/models"
)

// ReferenceHandler serves the static reference tables consumed by callers
// when assembling requests.
type ReferenceHandler struct {
	skills       []string
	universities models.UniversityTable
}

func NewReferenceHandler(skills []string, universities models.UniversityTable) *ReferenceHandler {
	return &ReferenceHandler{
		skills:       skills,
		universities: universities,
	}
}

func (h *ReferenceHandler) Skills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skills": h.skills})
}

func (h *ReferenceHandler) Universities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"universities": h.universities})
}
