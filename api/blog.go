package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"devportfolio/models"
)

// contentPolicy strips scripts and event handlers from post content before it
// ever reaches the database. The rendering layer can then trust stored HTML.
var contentPolicy = bluemonday.UGCPolicy()

type blogPostRequest struct {
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Date     string    `json:"date"`
	Tags     *[]string `json:"tags"`
	ImageURL *string   `json:"imageUrl"`
	LinkURL  *string   `json:"linkUrl"`
}

func (m *Module) listBlogPosts(c *gin.Context) {
	data, err := m.cache.Remember("blog", c.Request.RequestURI, func() (interface{}, error) {
		posts := []models.BlogPost{}
		if err := m.db.Order("date DESC").Find(&posts).Error; err != nil {
			return nil, err
		}
		for i := range posts {
			ensureBlogPostArrays(&posts[i])
		}
		return posts, nil
	})
	if err != nil {
		serverError(c, "Failed to fetch blog posts", err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (m *Module) getBlogPost(c *gin.Context) {
	var post models.BlogPost
	if err := m.db.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Blog post not found")
			return
		}
		serverError(c, "Failed to fetch blog post", err)
		return
	}

	ensureBlogPostArrays(&post)
	c.JSON(http.StatusOK, post)
}

func (m *Module) createBlogPost(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	post := models.BlogPost{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  contentPolicy.Sanitize(req.Content),
		Date:     req.Date,
		ImageURL: orPrevPtr(req.ImageURL, ""),
		LinkURL:  orPrevPtr(req.LinkURL, ""),
	}
	if req.Tags != nil {
		post.Tags = datatypes.NewJSONSlice(*req.Tags)
	}

	if err := m.db.Create(&post).Error; err != nil {
		serverError(c, "Failed to create blog post", err)
		return
	}

	m.cache.Invalidate("blog")
	ensureBlogPostArrays(&post)
	c.JSON(http.StatusOK, post)
}

func (m *Module) updateBlogPost(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	var post models.BlogPost
	if err := m.db.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Blog post not found")
			return
		}
		serverError(c, "Failed to update blog post", err)
		return
	}

	post.Title = orPrev(req.Title, post.Title)
	post.Excerpt = orPrev(req.Excerpt, post.Excerpt)
	if req.Content != "" {
		post.Content = contentPolicy.Sanitize(req.Content)
	}
	if req.Tags != nil {
		post.Tags = datatypes.NewJSONSlice(*req.Tags)
	}
	post.ImageURL = orPrevPtr(req.ImageURL, post.ImageURL)
	post.LinkURL = orPrevPtr(req.LinkURL, post.LinkURL)

	if err := m.db.Save(&post).Error; err != nil {
		serverError(c, "Failed to update blog post", err)
		return
	}

	m.cache.Invalidate("blog")
	ensureBlogPostArrays(&post)
	c.JSON(http.StatusOK, post)
}

func (m *Module) deleteBlogPost(c *gin.Context) {
	res := m.db.Delete(&models.BlogPost{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		serverError(c, "Failed to delete blog post", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Blog post not found")
		return
	}

	m.cache.Invalidate("blog")
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}

func ensureBlogPostArrays(p *models.BlogPost) {
	if p.Tags == nil {
		p.Tags = datatypes.NewJSONSlice([]string{})
	}
}
