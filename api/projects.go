package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"devportfolio/models"
)

type projectRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies *[]string `json:"technologies"`
	ImageURL     *string   `json:"imageUrl"`
	DemoURL      *string   `json:"demoUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Date         string    `json:"date"`
}

func (m *Module) listProjects(c *gin.Context) {
	data, err := m.cache.Remember("projects", c.Request.RequestURI, func() (interface{}, error) {
		projects := []models.Project{}
		if err := m.db.Order("date DESC").Find(&projects).Error; err != nil {
			return nil, err
		}
		for i := range projects {
			ensureProjectArrays(&projects[i])
		}
		return projects, nil
	})
	if err != nil {
		serverError(c, "Failed to fetch projects", err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (m *Module) getProject(c *gin.Context) {
	var project models.Project
	if err := m.db.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Project not found")
			return
		}
		serverError(c, "Failed to fetch project", err)
		return
	}

	ensureProjectArrays(&project)
	c.JSON(http.StatusOK, project)
}

func (m *Module) createProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	if req.Title == "" || req.Description == "" || req.Date == "" || req.Technologies == nil {
		badRequest(c, "Missing required fields")
		return
	}

	project := models.Project{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: datatypes.NewJSONSlice(*req.Technologies),
		ImageURL:     orPrevPtr(req.ImageURL, ""),
		DemoURL:      orPrevPtr(req.DemoURL, ""),
		GithubURL:    orPrevPtr(req.GithubURL, ""),
		Date:         req.Date,
	}

	if err := m.db.Create(&project).Error; err != nil {
		serverError(c, "Failed to create project", err)
		return
	}

	m.cache.Invalidate("projects")
	ensureProjectArrays(&project)
	c.JSON(http.StatusOK, project)
}

func (m *Module) updateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	var project models.Project
	if err := m.db.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Project not found")
			return
		}
		serverError(c, "Failed to update project", err)
		return
	}

	project.Title = orPrev(req.Title, project.Title)
	project.Description = orPrev(req.Description, project.Description)
	project.Date = orPrev(req.Date, project.Date)
	if req.Technologies != nil {
		project.Technologies = datatypes.NewJSONSlice(*req.Technologies)
	}
	project.ImageURL = orPrevPtr(req.ImageURL, project.ImageURL)
	project.DemoURL = orPrevPtr(req.DemoURL, project.DemoURL)
	project.GithubURL = orPrevPtr(req.GithubURL, project.GithubURL)

	if err := m.db.Save(&project).Error; err != nil {
		serverError(c, "Failed to update project", err)
		return
	}

	m.cache.Invalidate("projects")
	ensureProjectArrays(&project)
	c.JSON(http.StatusOK, project)
}

func (m *Module) deleteProject(c *gin.Context) {
	res := m.db.Delete(&models.Project{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		serverError(c, "Failed to delete project", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Project not found")
		return
	}

	m.cache.Invalidate("projects")
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// ensureProjectArrays keeps the wire shape stable: a never-set technologies
// column decodes to an empty array, not null.
func ensureProjectArrays(p *models.Project) {
	if p.Technologies == nil {
		p.Technologies = datatypes.NewJSONSlice([]string{})
	}
}
