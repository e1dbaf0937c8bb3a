package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"devportfolio/models"
)

// getSiteContent returns the whole key/value map of editable site copy. The
// public pages merge it over their hardcoded defaults.
func (m *Module) getSiteContent(c *gin.Context) {
	data, err := m.cache.Remember("site-content", c.Request.RequestURI, func() (interface{}, error) {
		var entries []models.SiteContent
		if err := m.db.Find(&entries).Error; err != nil {
			return nil, err
		}

		contentMap := make(map[string]string, len(entries))
		for _, entry := range entries {
			contentMap[entry.ID] = entry.Content
		}
		return contentMap, nil
	})
	if err != nil {
		serverError(c, "Failed to fetch site content", err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// updateSiteContent upserts every key in the payload. Keys not included are
// left untouched, so the admin forms can submit partial maps.
func (m *Module) updateSiteContent(c *gin.Context) {
	var data map[string]string
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	for id, content := range data {
		entry := models.SiteContent{ID: id, Content: content}
		err := m.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).Create(&entry).Error
		if err != nil {
			serverError(c, "Failed to update site content", err)
			return
		}
	}

	m.cache.Invalidate("site-content")
	c.JSON(http.StatusOK, gin.H{"message": "Site content updated successfully"})
}
