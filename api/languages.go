package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devportfolio/models"
)

type languageRequest struct {
	Name        string  `json:"name"`
	Proficiency *int    `json:"proficiency"`
	IconURL     *string `json:"icon_url"`
}

func (m *Module) listLanguages(c *gin.Context) {
	data, err := m.cache.Remember("programming-languages", c.Request.RequestURI, func() (interface{}, error) {
		languages := []models.ProgrammingLanguage{}
		if err := m.db.Order("name").Find(&languages).Error; err != nil {
			return nil, err
		}
		return languages, nil
	})
	if err != nil {
		serverError(c, "Failed to fetch programming languages", err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (m *Module) getLanguage(c *gin.Context) {
	var language models.ProgrammingLanguage
	if err := m.db.First(&language, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Programming language not found")
			return
		}
		serverError(c, "Failed to fetch programming language", err)
		return
	}

	c.JSON(http.StatusOK, language)
}

func (m *Module) createLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	if req.Proficiency == nil || !validProficiency(*req.Proficiency) {
		badRequest(c, "Proficiency must be between 1 and 100")
		return
	}

	language := models.ProgrammingLanguage{
		Name:        req.Name,
		Proficiency: *req.Proficiency,
		IconURL:     orPrevPtr(req.IconURL, ""),
	}

	if err := m.db.Create(&language).Error; err != nil {
		serverError(c, "Failed to create programming language", err)
		return
	}

	m.cache.Invalidate("programming-languages")
	c.JSON(http.StatusOK, language)
}

func (m *Module) updateLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	if req.Proficiency != nil && !validProficiency(*req.Proficiency) {
		badRequest(c, "Proficiency must be between 1 and 100")
		return
	}

	var language models.ProgrammingLanguage
	if err := m.db.First(&language, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Programming language not found")
			return
		}
		serverError(c, "Failed to update programming language", err)
		return
	}

	language.Name = orPrev(req.Name, language.Name)
	if req.Proficiency != nil {
		language.Proficiency = *req.Proficiency
	}
	language.IconURL = orPrevPtr(req.IconURL, language.IconURL)

	if err := m.db.Save(&language).Error; err != nil {
		serverError(c, "Failed to update programming language", err)
		return
	}

	m.cache.Invalidate("programming-languages")
	c.JSON(http.StatusOK, language)
}

func (m *Module) deleteLanguage(c *gin.Context) {
	res := m.db.Delete(&models.ProgrammingLanguage{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		serverError(c, "Failed to delete programming language", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Programming language not found")
		return
	}

	m.cache.Invalidate("programming-languages")
	c.JSON(http.StatusOK, gin.H{"message": "Programming language deleted successfully"})
}
