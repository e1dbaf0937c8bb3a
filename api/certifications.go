package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devportfolio/models"
)

type certificationRequest struct {
	Title        string  `json:"title"`
	Organization string  `json:"organization"`
	DateIssued   string  `json:"date_issued"`
	ExpiryDate   *string `json:"expiry_date"`
	CredentialID *string `json:"credential_id"`
	URL          *string `json:"url"`
}

func (m *Module) listCertifications(c *gin.Context) {
	data, err := m.cache.Remember("certifications", c.Request.RequestURI, func() (interface{}, error) {
		certs := []models.Certification{}
		if err := m.db.Order("date_issued DESC").Find(&certs).Error; err != nil {
			return nil, err
		}
		return certs, nil
	})
	if err != nil {
		serverError(c, "Failed to fetch certifications", err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (m *Module) getCertification(c *gin.Context) {
	var cert models.Certification
	if err := m.db.First(&cert, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Certification not found")
			return
		}
		serverError(c, "Failed to fetch certification", err)
		return
	}

	c.JSON(http.StatusOK, cert)
}

func (m *Module) createCertification(c *gin.Context) {
	var req certificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	cert := models.Certification{
		Title:        req.Title,
		Organization: req.Organization,
		DateIssued:   req.DateIssued,
		ExpiryDate:   orPrevPtr(req.ExpiryDate, ""),
		CredentialID: orPrevPtr(req.CredentialID, ""),
		URL:          orPrevPtr(req.URL, ""),
	}

	if err := m.db.Create(&cert).Error; err != nil {
		serverError(c, "Failed to create certification", err)
		return
	}

	m.cache.Invalidate("certifications")
	c.JSON(http.StatusOK, cert)
}

func (m *Module) updateCertification(c *gin.Context) {
	var req certificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON in request body")
		return
	}

	var cert models.Certification
	if err := m.db.First(&cert, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Certification not found")
			return
		}
		serverError(c, "Failed to update certification", err)
		return
	}

	cert.Title = orPrev(req.Title, cert.Title)
	cert.Organization = orPrev(req.Organization, cert.Organization)
	cert.DateIssued = orPrev(req.DateIssued, cert.DateIssued)
	cert.ExpiryDate = orPrevPtr(req.ExpiryDate, cert.ExpiryDate)
	cert.CredentialID = orPrevPtr(req.CredentialID, cert.CredentialID)
	cert.URL = orPrevPtr(req.URL, cert.URL)

	if err := m.db.Save(&cert).Error; err != nil {
		serverError(c, "Failed to update certification", err)
		return
	}

	m.cache.Invalidate("certifications")
	c.JSON(http.StatusOK, cert)
}

func (m *Module) deleteCertification(c *gin.Context) {
	res := m.db.Delete(&models.Certification{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		serverError(c, "Failed to delete certification", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "Certification not found")
		return
	}

	m.cache.Invalidate("certifications")
	c.JSON(http.StatusOK, gin.H{"message": "Certification deleted successfully"})
}
