package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devportfolio/cache"
)

// Module serves the JSON resource API consumed by the public site and the
// admin panel.
type Module struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewModule(db *gorm.DB, c *cache.Cache) *Module {
	return &Module{db: db, cache: c}
}

func (m *Module) RegisterRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/projects", m.listProjects)
		apiGroup.POST("/projects", m.createProject)
		apiGroup.GET("/projects/:id", m.getProject)
		apiGroup.PUT("/projects/:id", m.updateProject)
		apiGroup.DELETE("/projects/:id", m.deleteProject)

		apiGroup.GET("/blog", m.listBlogPosts)
		apiGroup.POST("/blog", m.createBlogPost)
		apiGroup.GET("/blog/:id", m.getBlogPost)
		apiGroup.PUT("/blog/:id", m.updateBlogPost)
		apiGroup.DELETE("/blog/:id", m.deleteBlogPost)

		apiGroup.GET("/certifications", m.listCertifications)
		apiGroup.POST("/certifications", m.createCertification)
		apiGroup.GET("/certifications/:id", m.getCertification)
		apiGroup.PUT("/certifications/:id", m.updateCertification)
		apiGroup.DELETE("/certifications/:id", m.deleteCertification)

		apiGroup.GET("/skills", m.listSkills)
		apiGroup.POST("/skills", m.createSkill)
		apiGroup.GET("/skills/:id", m.getSkill)
		apiGroup.PUT("/skills/:id", m.updateSkill)
		apiGroup.DELETE("/skills/:id", m.deleteSkill)

		apiGroup.GET("/programming-languages", m.listLanguages)
		apiGroup.POST("/programming-languages", m.createLanguage)
		apiGroup.GET("/programming-languages/:id", m.getLanguage)
		apiGroup.PUT("/programming-languages/:id", m.updateLanguage)
		apiGroup.DELETE("/programming-languages/:id", m.deleteLanguage)

		apiGroup.GET("/site-content", m.getSiteContent)
		apiGroup.PUT("/site-content", m.updateSiteContent)

		apiGroup.GET("/test-db", m.listTables)
	}
}

// serverError hides the storage error behind a generic message, the original
// cause only ever reaches the server log.
func serverError(c *gin.Context, msg string, err error) {
	log.Printf("%s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// orPrev keeps the stored value when an update payload omits a required
// field or sends it empty.
func orPrev(v, prev string) string {
	if v == "" {
		return prev
	}
	return v
}

// orPrevPtr is the merge rule for optional fields: nil means "not supplied"
// (keep the stored value), a pointer to the empty string explicitly clears it.
func orPrevPtr(v *string, prev string) string {
	if v == nil {
		return prev
	}
	return *v
}

func validProficiency(p int) bool {
	return p >= 1 && p <= 100
}
