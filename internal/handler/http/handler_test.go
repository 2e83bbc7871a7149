package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-keeper/internal/adapter"
	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/mock"
	"github.com/MKhiriev/go-file-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-file-keeper/internal/service"
	"github.com/MKhiriev/go-file-keeper/internal/utils"
	"github.com/MKhiriev/go-file-keeper/models"
)

const testCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

type testAPI struct {
	router  http.Handler
	files   *mock.MockFilesService
	appInfo *mock.MockAppInfoService
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := testAPI{
		files:   mock.NewMockFilesService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		FilesService:   api.files,
		AppInfoService: api.appInfo,
	}, config.Server{}, logger.Nop())
	api.router = h.Init()
	return api
}

func (a testAPI) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(body))
	req := httptest.NewRequest(method, target, buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, target string, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandler_CreateDirectory(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().CreateDirectory(gomock.Any(), "/docs").Return(nil)

	rec := api.do(jsonRequest(t, http.MethodPost, "/api/files/directory", models.DirectoryRequest{Directory: "/docs"}))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_InvalidJSON(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPut, "/api/files/list", strings.NewReader("{not json"))
	rec := api.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, ErrInvalidJSON.Error())
	assert.NotEmpty(t, body.TraceID)
}

func TestHandler_List(t *testing.T) {
	api := newTestAPI(t)
	entries := []models.Entry{
		{Name: "a.txt", CID: testCID, Type: models.EntryTypeFile, Size: 3, StatusPin: models.PinStatusPinned, StatusContent: models.ContentStatusAvailable},
		{Name: "incoming", CID: testCID, Type: models.EntryTypeFile, StatusPin: models.PinStatusUnpinned, StatusContent: models.ContentStatusSearching},
	}
	api.files.EXPECT().List(gomock.Any(), "/docs").Return(entries, nil)

	rec := api.do(jsonRequest(t, http.MethodPut, "/api/files/list", models.DirectoryRequest{Directory: "/docs"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, entries, got)
}

func TestHandler_ListEmptyDirectory(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().List(gomock.Any(), "/empty").Return(nil, nil)

	rec := api.do(jsonRequest(t, http.MethodPut, "/api/files/list", models.DirectoryRequest{Directory: "/empty"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandler_Transfer(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().Copy(gomock.Any(), "/a", "/b").Return(nil)
	api.files.EXPECT().Move(gomock.Any(), "/b", "/c").Return(nil)
	api.files.EXPECT().Remove(gomock.Any(), "/c").Return(nil)

	assert.Equal(t, http.StatusOK, api.do(jsonRequest(t, http.MethodPut, "/api/files/copy", models.TransferRequest{From: "/a", To: "/b"})).Code)
	assert.Equal(t, http.StatusOK, api.do(jsonRequest(t, http.MethodPost, "/api/files/move", models.TransferRequest{From: "/b", To: "/c"})).Code)
	assert.Equal(t, http.StatusOK, api.do(jsonRequest(t, http.MethodPost, "/api/files/remove", models.DirectoryRequest{Directory: "/c"})).Code)
}

func TestHandler_Upload(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().Upload(gomock.Any(), "/docs", "a.txt", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, r io.Reader) (string, error) {
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "hello", string(b))
			return testCID, nil
		})

	rec := api.do(multipartRequest(t, "/api/files/upload", map[string]string{"directory": "/docs"}, "a.txt", []byte("hello")))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"cid":%q}`, testCID), rec.Body.String())
}

func TestHandler_UploadWithoutFile(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(multipartRequest(t, "/api/files/upload", map[string]string{"directory": "/docs"}, "", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Import(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().StartImport(gomock.Any(), testCID, "/docs", "movie.mkv").Return(nil)
	api.files.EXPECT().CancelImport(gomock.Any(), testCID, "/docs").Return(service.ErrImportNotFound)

	rec := api.do(jsonRequest(t, http.MethodPut, "/api/files/import/"+testCID, models.DirectoryRequest{Directory: "/docs", Name: "movie.mkv"}))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = api.do(jsonRequest(t, http.MethodPut, "/api/files/import/cancel/"+testCID, models.DirectoryRequest{Directory: "/docs"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Read(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().Read(gomock.Any(), testCID).Return(io.NopCloser(strings.NewReader("file body")), nil)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/files/"+testCID+"?name=/etc/report.pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "file body", rec.Body.String())
	assert.Equal(t, "report.pdf", rec.Header().Get("File-Name"))
	assert.Equal(t, `attachment; filename=report.pdf`, rec.Header().Get("Content-Disposition"))
}

func TestHandler_Read_GETOnListPathIsACIDLookup(t *testing.T) {
	api := newTestAPI(t)
	// PUT /api/files/list exists, GET falls through to /{cid}
	api.files.EXPECT().Read(gomock.Any(), "list").
		Return(nil, fmt.Errorf("%w: malformed cid", service.ErrInvalidDataProvided))

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/files/list", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Pin(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().GetPinStatus(gomock.Any(), testCID).Return(models.PinStatusQueued, nil)
	api.files.EXPECT().Pin(gomock.Any(), testCID).Return(nil)
	api.files.EXPECT().Unpin(gomock.Any(), testCID).Return(nil)
	api.files.EXPECT().PinByUpload(gomock.Any(), testCID).Return(nil)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/files/pin/"+testCID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"cid":%q,"status":"queued"}`, testCID), rec.Body.String())

	assert.Equal(t, http.StatusOK, api.do(httptest.NewRequest(http.MethodPut, "/api/files/pin/"+testCID, nil)).Code)
	assert.Equal(t, http.StatusOK, api.do(httptest.NewRequest(http.MethodDelete, "/api/files/pin/"+testCID, nil)).Code)
	assert.Equal(t, http.StatusOK, api.do(httptest.NewRequest(http.MethodPut, "/api/files/pin/upload/"+testCID, nil)).Code)
}

func TestHandler_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: fmt.Errorf("%w: bad cid", service.ErrInvalidDataProvided), status: http.StatusBadRequest},
		{name: "rate limited", err: ratelimit.ErrRateLimited, status: http.StatusTooManyRequests},
		{name: "remote throttled", err: fmt.Errorf("pin: %w: %w", adapter.ErrExternalService, adapter.ErrTooManyRequests), status: http.StatusTooManyRequests},
		{name: "remote failure", err: fmt.Errorf("pin: %w: http 500", adapter.ErrExternalService), status: http.StatusBadGateway},
		{name: "timeout", err: adapter.ErrTimeout, status: http.StatusGatewayTimeout},
		{name: "unknown", err: io.ErrUnexpectedEOF, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.files.EXPECT().Pin(gomock.Any(), testCID).Return(tt.err)

			rec := api.do(httptest.NewRequest(http.MethodPut, "/api/files/pin/"+testCID, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_InternalErrorIsNotEchoed(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().Unpin(gomock.Any(), testCID).Return(fmt.Errorf("dial tcp 10.0.0.7:5001: refused"))

	rec := api.do(httptest.NewRequest(http.MethodDelete, "/api/files/pin/"+testCID, nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
}

func TestHandler_UploadBundleFile(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().UploadEncrypted(gomock.Any(), models.BundleUploadRequest{
		Directory:  "/vault",
		Name:       "report.pdf",
		Passphrase: "correct horse battery",
		Remember:   true,
	}, models.BundleKindFile, gomock.Any()).Return(testCID, nil)

	fields := map[string]string{"directory": "/vault", "passphrase": "correct horse battery", "remember": "true"}
	rec := api.do(multipartRequest(t, "/api/files/bundle/upload/file", fields, "report.pdf", []byte("%PDF")))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"cid":%q}`, testCID), rec.Body.String())
}

func TestHandler_UploadBundleFolder(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().UploadEncrypted(gomock.Any(), models.BundleUploadRequest{
		Directory:  "/vault",
		Name:       "album",
		Passphrase: "correct horse battery",
	}, models.BundleKindFolder, gomock.Any()).Return(testCID, nil)

	fields := map[string]string{"directory": "/vault", "name": "album", "passphrase": "correct horse battery"}
	rec := api.do(multipartRequest(t, "/api/files/bundle/upload/folder", fields, "album.zip", []byte("PK")))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_UploadBundleInvalidRemember(t *testing.T) {
	api := newTestAPI(t)

	fields := map[string]string{"directory": "/vault", "passphrase": "correct horse battery", "remember": "maybe"}
	rec := api.do(multipartRequest(t, "/api/files/bundle/upload/file", fields, "a.txt", []byte("a")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestHandler_DownloadDecrypted(t *testing.T) {
	api := newTestAPI(t)
	payload := &closeTracker{Reader: strings.NewReader("decrypted")}
	api.files.EXPECT().DownloadDecrypted(gomock.Any(), testCID, "correct horse battery").
		Return(&models.Download{ReadCloser: payload, Name: "report.pdf", Kind: models.BundleKindFile}, nil)

	rec := api.do(jsonRequest(t, http.MethodPost, "/api/files/bundle/"+testCID, models.DownloadRequest{Passphrase: "correct horse battery"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "decrypted", rec.Body.String())
	assert.Equal(t, "report.pdf", rec.Header().Get("File-Name"))
	assert.True(t, payload.closed)
}

func TestHandler_DownloadDecryptedEmptyBody(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().DownloadDecrypted(gomock.Any(), testCID, "").Return(nil, service.ErrPassphraseRequired)

	rec := api.do(httptest.NewRequest(http.MethodPost, "/api/files/bundle/"+testCID, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_IsEncrypted(t *testing.T) {
	api := newTestAPI(t)
	api.files.EXPECT().IsEncrypted(gomock.Any(), testCID).Return(true, nil)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/files/encrypted/"+testCID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"is_encrypted":true}`, rec.Body.String())
}

func TestHandler_Version(t *testing.T) {
	api := newTestAPI(t)
	api.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.2.3", BuildCommit: "abc"})

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","build_commit":"abc"}`, rec.Body.String())
}

func TestHandler_Metrics(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# HELP")
}

func TestHandler_UnknownRouteAndWrongMethod(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodPost, "/api/version"},
		{http.MethodPatch, "/api/files/pin/" + testCID},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := api.do(httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}
