package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"devportfolio/models"
)

func getContentMap(t *testing.T, router *gin.Engine) map[string]string {
	t.Helper()
	w := performJSON(router, "GET", "/api/site-content", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var contentMap map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &contentMap))
	return contentMap
}

func TestSiteContent_EmptyMap(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	contentMap := getContentMap(t, router)
	assert.Empty(t, contentMap)
}

func TestSiteContent_UpsertInsertsNewKeys(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := performJSON(router, "PUT", "/api/site-content", map[string]string{
		"hero_title": "Hello",
		"hero_sub":   "World",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Site content updated successfully", decodeBody(t, w)["message"])

	contentMap := getContentMap(t, router)
	assert.Equal(t, "Hello", contentMap["hero_title"])
	assert.Equal(t, "World", contentMap["hero_sub"])
}

func TestSiteContent_UpsertReplacesIncludedKeysOnly(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	db.Create(&models.SiteContent{ID: "hero_title", Content: "Old"})
	db.Create(&models.SiteContent{ID: "footer_copyright", Content: "Untouched"})

	w := performJSON(router, "PUT", "/api/site-content", map[string]string{
		"hero_title": "New",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	contentMap := getContentMap(t, router)
	assert.Equal(t, "New", contentMap["hero_title"])
	assert.Equal(t, "Untouched", contentMap["footer_copyright"])
	assert.Equal(t, 2, len(contentMap))
}

func TestSiteContent_MalformedBody(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := performJSON(router, "PUT", "/api/site-content", []string{"not", "a", "map"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
