package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"recruithub/config"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	conf := &config.Configuration{}
	conf.Storage.BaseURL = baseURL
	conf.Storage.APIKey = "test-key"
	conf.Storage.UploadFolder = "recruitments"
	conf.Storage.MaxFileSizeMB = 5

	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	return NewClient(trace, http.DefaultClient, conf)
}

// makeFileHeader 組一個 multipart 請求再解析回 *multipart.FileHeader
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	headers := req.MultipartForm.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/files", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "recruitments", r.FormValue("folder"))
		assert.Equal(t, "cv", r.FormValue("field"))

		files := r.MultipartForm.File["file"]
		require.Len(t, files, 1)
		assert.Equal(t, "resume.pdf", files[0].Filename)
		assert.Equal(t, "application/pdf", files[0].Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(UploadResult{PublicID: "abc123", URL: "https://cdn.example.com/abc123"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Upload(context.Background(), "cv", makeFileHeader(t, "resume.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.PublicID)
	assert.Equal(t, "https://cdn.example.com/abc123", result.URL)
}

func TestUpload_RejectsUnsupportedExtension(t *testing.T) {
	client := newTestClient(t, "http://storage.invalid")

	_, err := client.Upload(context.Background(), "cv", makeFileHeader(t, "resume.exe", []byte("MZ")))
	require.Error(t, err)
	var domainErr *cErr.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusBadRequest, domainErr.HttpCode())
}

func TestUpload_RemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "disk full", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Upload(context.Background(), "photo", makeFileHeader(t, "photo.jpg", []byte{0xFF, 0xD8}))
	require.Error(t, err)
	var domainErr *cErr.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusBadGateway, domainErr.HttpCode())
}

func TestUpload_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"publicId": ""}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Upload(context.Background(), "photo", makeFileHeader(t, "photo.png", []byte("png")))
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	require.NoError(t, client.Delete(context.Background(), "abc123"))
	assert.Equal(t, "/v1/files/abc123", gotPath)
}

func TestDelete_NotFoundIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	assert.NoError(t, client.Delete(context.Background(), "gone"))
}
