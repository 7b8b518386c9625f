package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elena-voss/luxe-salon-api/config"
	"github.com/elena-voss/luxe-salon-api/services"
)

// uploadRequest builds a multipart request carrying one file in the 'image' field
func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/uploads/images", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImage_Success(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedUser(t, db, "auth0|manager", "manager")

	mockImages := services.NewMockImageService()
	services.SetImageService(mockImages)
	defer services.SetImageService(nil)

	router := setupTestRouter()
	router.POST("/uploads/images", mockAuthMiddleware("auth0|manager", "manager", "token"), UploadImage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "portfolio.png", "png-bytes"))

	assert.Equal(t, http.StatusCreated, w.Code, "Response body: %s", w.Body.String())

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	key := data["image_s3_key"].(string)
	assert.True(t, strings.HasPrefix(key, "images/"))
	assert.Contains(t, data["image_url"].(string), key)
	assert.True(t, mockImages.UploadedImages[key])
}

func TestUploadImage_ManagerOnly(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedUser(t, db, "auth0|stylist", "stylist")

	services.SetImageService(services.NewMockImageService())
	defer services.SetImageService(nil)

	router := setupTestRouter()
	router.POST("/uploads/images", mockAuthMiddleware("auth0|stylist", "stylist", "token"), UploadImage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "portfolio.png", "png-bytes"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUploadImage_RejectsNonPNG(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedUser(t, db, "auth0|manager", "manager")

	services.SetImageService(services.NewMockImageService())
	defer services.SetImageService(nil)

	router := setupTestRouter()
	router.POST("/uploads/images", mockAuthMiddleware("auth0|manager", "manager", "token"), UploadImage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "portfolio.jpg", "jpg-bytes"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "INVALID_FILE_FORMAT", errorCode(response))
}

func TestUploadImage_MissingFile(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedUser(t, db, "auth0|manager", "manager")

	services.SetImageService(services.NewMockImageService())
	defer services.SetImageService(nil)

	router := setupTestRouter()
	router.POST("/uploads/images", mockAuthMiddleware("auth0|manager", "manager", "token"), UploadImage)

	req := httptest.NewRequest(http.MethodPost, "/uploads/images", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "MISSING_FILE", errorCode(response))
}

func TestUploadImage_StorageNotConfigured(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	seedUser(t, db, "auth0|manager", "manager")

	services.SetImageService(nil)

	router := setupTestRouter()
	router.POST("/uploads/images", mockAuthMiddleware("auth0|manager", "manager", "token"), UploadImage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "portfolio.png", "png-bytes"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "UPLOAD_UNAVAILABLE", errorCode(response))
}
