package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"devportfolio/models"
)

func createTestCertification(db *gorm.DB) *models.Certification {
	cert := &models.Certification{
		Title:        "AWS Certified Developer",
		Organization: "Amazon Web Services",
		DateIssued:   "2025-01-15",
		ExpiryDate:   "2028-01-15",
		CredentialID: "AWS-DEV-123456",
	}
	db.Create(cert)
	return cert
}

func TestCreateCertification_RoundTrip(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := performJSON(router, "POST", "/api/certifications", map[string]interface{}{
		"title":        "CKA",
		"organization": "CNCF",
		"date_issued":  "2025-02-02",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, "CKA", created["title"])
	assert.Equal(t, "CNCF", created["organization"])
	assert.Equal(t, "", created["expiry_date"])

	id := int(created["id"].(float64))
	w = performJSON(router, "GET", fmt.Sprintf("/api/certifications/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodeBody(t, w))
}

func TestUpdateCertification_ClearsOptionalField(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	cert := createTestCertification(db)

	w := performJSON(router, "PUT", fmt.Sprintf("/api/certifications/%d", cert.ID), map[string]interface{}{
		"expiry_date": "",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, "", updated["expiry_date"])
	assert.Equal(t, "AWS-DEV-123456", updated["credential_id"])
	assert.Equal(t, "AWS Certified Developer", updated["title"])
}

func TestUpdateCertification_NotFound(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := performJSON(router, "PUT", "/api/certifications/5", map[string]interface{}{
		"title": "x",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Certification not found", decodeBody(t, w)["error"])
}

func TestDeleteCertification(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	cert := createTestCertification(db)

	w := performJSON(router, "DELETE", fmt.Sprintf("/api/certifications/%d", cert.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, "GET", fmt.Sprintf("/api/certifications/%d", cert.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
