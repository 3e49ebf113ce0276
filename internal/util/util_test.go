package util

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"video-hosting-server/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestS3Uploader_UploadFile(t *testing.T) {
	var gotBody, gotType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	path := writeTempFile(t, "clip.mp4", "video-bytes")

	err := NewS3Uploader(server.Client()).UploadFile(context.Background(), server.URL+"/bucket/clip.mp4", path)
	require.NoError(t, err)

	assert.Equal(t, "video-bytes", gotBody)
	assert.Equal(t, "video/mp4", gotType)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "локальный файл должен быть удалён")
}

func TestS3Uploader_UploadFile_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("SignatureDoesNotMatch"))
	}))
	defer server.Close()

	path := writeTempFile(t, "avatar.png", "png")

	err := NewS3Uploader(server.Client()).UploadFile(context.Background(), server.URL, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "статус 403")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestS3Uploader_AsyncWait(t *testing.T) {
	var mu sync.Mutex
	uploaded := map[string]bool{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		mu.Lock()
		uploaded[r.URL.Path] = true
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	uploader := NewS3Uploader(server.Client())
	uploader.UploadFileAsync(context.Background(), server.URL+"/a", writeTempFile(t, "a.jpg", "a"))
	uploader.UploadFileAsync(context.Background(), server.URL+"/b", writeTempFile(t, "b.jpg", "b"))
	require.NoError(t, uploader.Wait())
	assert.True(t, uploaded["/a"])
	assert.True(t, uploaded["/b"])

	failing := NewS3Uploader(server.Client())
	failing.UploadFileAsync(context.Background(), server.URL+"/fail", writeTempFile(t, "c.jpg", "c"))
	err := failing.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c.jpg")
}

func TestContentTypeOf(t *testing.T) {
	assert.Equal(t, "video/webm", ContentTypeOf("x.WEBM"))
	assert.Equal(t, "image/jpeg", ContentTypeOf("x.jpeg"))
	assert.Equal(t, "application/octet-stream", ContentTypeOf("x.unknownext"))
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantFields int
	}{
		{"auth", apperror.Unauthorized(errors.New("token expired")), http.StatusUnauthorized, "unauthorized request", 0},
		{"validation", apperror.Validation("validation failed", apperror.FieldError{Field: "email", Message: "required"}), http.StatusBadRequest, "validation failed", 1},
		{"internal", errors.New("pq: boom"), http.StatusInternalServerError, "internal server error", 0},
		{"conflict", apperror.ConflictError("user with email or username already exists"), http.StatusConflict, "user with email or username already exists", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["message"])
			if tt.wantFields == 0 {
				assert.NotContains(t, body, "errors")
			} else {
				assert.Len(t, body["errors"], tt.wantFields)
			}
		})
	}
}

func TestWriteResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponse(rec, http.StatusCreated, map[string]string{"uuid": "v1"}, "Video uploaded successfully")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(201), body["statusCode"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Video uploaded successfully", body["message"])
}

func TestSaveFormFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("avatar", "me.PNG")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("image"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/register", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	dir := t.TempDir()
	path, err := SaveFormFile(req, "avatar", dir)
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image", string(content))

	missing, err := SaveFormFile(req, "coverImage", dir)
	require.NoError(t, err)
	assert.Empty(t, missing)
}
