package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weiyue/internal/infrastructure/storage"
	"weiyue/internal/interfaces/http/handlers/testutil"
)

func uploadContext(t *testing.T, filename string, content []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/files", &body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func TestFileHandler_UploadThenDownload(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), 1)
	require.NoError(t, err)
	h := NewFileHandler(store, testutil.NewMockLogger())

	c, w := uploadContext(t, "合同.pdf", []byte("%PDF-1.4 test"))
	h.Upload(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var uploaded UploadResponse
	require.NoError(t, json.Unmarshal(resp.Data, &uploaded))
	assert.Equal(t, "合同.pdf", uploaded.FileName)
	assert.NotEmpty(t, uploaded.AttachmentRef)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/files/"+uploaded.AttachmentRef, nil)
	testutil.SetURLParam(c, "name", uploaded.AttachmentRef)
	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 test", w.Body.String())
}

func TestFileHandler_RejectsBadInput(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), 1)
	require.NoError(t, err)
	h := NewFileHandler(store, testutil.NewMockLogger())

	c, w := uploadContext(t, "run.exe", []byte("MZ"))
	h.Upload(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/files/..", nil)
	testutil.SetURLParam(c, "name", "..")
	h.Download(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/files/missing.pdf", nil)
	testutil.SetURLParam(c, "name", "missing.pdf")
	h.Download(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
