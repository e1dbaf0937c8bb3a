package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devportfolio/models"
)

type skillRequest struct {
	Name        string `json:"name"`
	Proficiency *int   `json:"proficiency"`
	Category    string `json:"category"`
}

func (m *Module) listSkills(c *gin.Context) {
	data, err := m.cache.Remember("skills", c.Request.RequestURI, func() (interface{}, error) {
		skills := []models.Skill{}
		if err := m.db.Order("category, name").Find(&skills).Error; err != nil {
			return nil, err
		}
		return skills, nil
	})
	if err != nil {
		serverError(c, "Failed to fetch skills", err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (m *Module) getSkill(c *gin.Context) {
	var skill models.Skill
	if err := m.db.First(&skill, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Skill not found")
			return
		}
		serverError(c, "Failed to fetch skill", err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

func (m *Module) createSkill(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	if req.Proficiency == nil || !validProficiency(*req.Proficiency) {
		badRequest(c, "Proficiency must be between 1 and 100")
		return
	}

	skill := models.Skill{
		Name:        req.Name,
		Proficiency: *req.Proficiency,
		Category:    req.Category,
	}

	if err := m.db.Create(&skill).Error; err != nil {
		serverError(c, "Failed to create skill", err)
		return
	}

	m.cache.Invalidate("skills")
	c.JSON(http.StatusOK, skill)
}

func (m *Module) updateSkill(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	if req.Proficiency != nil && !validProficiency(*req.Proficiency) {
		badRequest(c, "Proficiency must be between 1 and 100")
		return
	}

	var skill models.Skill
	if err := m.db.First(&skill, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Skill not found")
			return
		}
		serverError(c, "Failed to update skill", err)
		return
	}

	skill.Name = orPrev(req.Name, skill.Name)
	if req.Proficiency != nil {
		skill.Proficiency = *req.Proficiency
	}
	skill.Category = orPrev(req.Category, skill.Category)

	if err := m.db.Save(&skill).Error; err != nil {
		serverError(c, "Failed to update skill", err)
		return
	}

	m.cache.Invalidate("skills")
	c.JSON(http.StatusOK, skill)
}

func (m *Module) deleteSkill(c *gin.Context) {
	res := m.db.Delete(&models.Skill{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		serverError(c, "Failed to delete skill", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Skill not found")
		return
	}

	m.cache.Invalidate("skills")
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
