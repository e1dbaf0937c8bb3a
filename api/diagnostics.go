package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listTables reports the tables present in the sqlite file, a quick health
// check for deployments.
func (m *Module) listTables(c *gin.Context) {
	var tables []string
	err := m.db.Raw("SELECT name FROM sqlite_master WHERE type='table'").Scan(&tables).Error
	if err != nil {
		serverError(c, "Failed to fetch tables", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tables": tables})
}
