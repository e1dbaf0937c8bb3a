package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"devportfolio/models"
)

func TestCreateBlogPost_RoundTrip(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := performJSON(router, "POST", "/api/blog", map[string]interface{}{
		"title":   "A Post",
		"excerpt": "Short version",
		"content": "<p>Long version</p>",
		"date":    "2025-03-03",
		"tags":    []string{"go", "web"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, "A Post", created["title"])
	assert.Equal(t, "<p>Long version</p>", created["content"])
	assert.Equal(t, []interface{}{"go", "web"}, created["tags"])

	id := int(created["id"].(float64))
	w = performJSON(router, "GET", fmt.Sprintf("/api/blog/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodeBody(t, w))
}

func TestCreateBlogPost_SanitizesContent(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := performJSON(router, "POST", "/api/blog", map[string]interface{}{
		"title":   "Unsafe",
		"content": `<p>hello</p><script>alert("x")</script>`,
		"date":    "2025-03-03",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, "<p>hello</p>", created["content"])
	assert.NotContains(t, created["content"], "script")
}

func TestCreateBlogPost_WithoutTagsReturnsEmptyArray(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := performJSON(router, "POST", "/api/blog", map[string]interface{}{
		"title": "Tagless",
		"date":  "2025-03-03",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, []interface{}{}, created["tags"])
}

func TestUpdateBlogPost_PartialPayload(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	post := createTestPost(db)

	w := performJSON(router, "PUT", fmt.Sprintf("/api/blog/%d", post.ID), map[string]interface{}{
		"excerpt": "New excerpt",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, "New excerpt", updated["excerpt"])
	assert.Equal(t, "Test Post", updated["title"])
	assert.Equal(t, "<p>Test content</p>", updated["content"])
	assert.Equal(t, []interface{}{"go", "testing"}, updated["tags"])
}

func TestUpdateBlogPost_DateIsNotUpdatable(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	post := createTestPost(db)

	w := performJSON(router, "PUT", fmt.Sprintf("/api/blog/%d", post.ID), map[string]interface{}{
		"date": "1999-12-31",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-02-01", decodeBody(t, w)["date"])
}

func TestUpdateBlogPost_SanitizesContent(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	post := createTestPost(db)

	w := performJSON(router, "PUT", fmt.Sprintf("/api/blog/%d", post.ID), map[string]interface{}{
		"content": `<em>fine</em><img src=x onerror="alert(1)">`,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Contains(t, updated["content"], "<em>fine</em>")
	assert.NotContains(t, updated["content"], "onerror")
}

func TestDeleteBlogPost(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	post := createTestPost(db)

	w := performJSON(router, "DELETE", fmt.Sprintf("/api/blog/%d", post.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.BlogPost{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteBlogPost_NotFound(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := performJSON(router, "DELETE", "/api/blog/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Blog post not found", decodeBody(t, w)["error"])
}
