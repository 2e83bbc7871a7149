package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/models"
)

// multipartMemory is the part of a multipart body kept in memory. The rest
// is spooled to temporary files by net/http.
const multipartMemory = 32 << 20

func (h *Handler) createDirectory(w http.ResponseWriter, r *http.Request) {
	var request models.DirectoryRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.createDirectory", err)
		return
	}

	if err := h.services.FilesService.CreateDirectory(r.Context(), request.Directory); err != nil {
		writeError(w, r, "*Handler.createDirectory", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form, err := parseUpload(r)
	if err != nil {
		writeError(w, r, "*Handler.upload", err)
		return
	}
	defer form.Close()

	log.Info().Str("func", "*Handler.upload").Str("file", form.filename).Msg("upload started")
	cid, err := h.services.FilesService.Upload(r.Context(), form.value("directory"), form.filename, form.file)
	if err != nil {
		writeError(w, r, "*Handler.upload", err)
		return
	}

	writeJSON(w, r, "*Handler.upload", models.UploadResponse{CID: cid}, http.StatusCreated)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var request models.DirectoryRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.list", err)
		return
	}

	entries, err := h.services.FilesService.List(r.Context(), request.Directory)
	if err != nil {
		writeError(w, r, "*Handler.list", err)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	writeJSON(w, r, "*Handler.list", entries, http.StatusOK)
}

func (h *Handler) copy(w http.ResponseWriter, r *http.Request) {
	var request models.TransferRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.copy", err)
		return
	}

	if err := h.services.FilesService.Copy(r.Context(), request.From, request.To); err != nil {
		writeError(w, r, "*Handler.copy", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
	var request models.TransferRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.move", err)
		return
	}

	if err := h.services.FilesService.Move(r.Context(), request.From, request.To); err != nil {
		writeError(w, r, "*Handler.move", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	var request models.DirectoryRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.remove", err)
		return
	}

	if err := h.services.FilesService.Remove(r.Context(), request.Directory); err != nil {
		writeError(w, r, "*Handler.remove", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) startImport(w http.ResponseWriter, r *http.Request) {
	var request models.DirectoryRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.startImport", err)
		return
	}

	cid := cidParam(r)
	if err := h.services.FilesService.StartImport(r.Context(), cid, request.Directory, request.Name); err != nil {
		writeError(w, r, "*Handler.startImport", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) cancelImport(w http.ResponseWriter, r *http.Request) {
	var request models.DirectoryRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.cancelImport", err)
		return
	}

	if err := h.services.FilesService.CancelImport(r.Context(), cidParam(r), request.Directory); err != nil {
		writeError(w, r, "*Handler.cancelImport", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// read streams the content of a cid. The optional "name" query parameter
// names the download.
func (h *Handler) read(w http.ResponseWriter, r *http.Request) {
	cid := cidParam(r)

	content, err := h.services.FilesService.Read(r.Context(), cid)
	if err != nil {
		writeError(w, r, "*Handler.read", err)
		return
	}
	defer content.Close()

	filename := cid
	if name := r.URL.Query().Get("name"); name != "" {
		filename = path.Base(name)
	}

	writeAttachment(w, r, "*Handler.read", filename, content)
}

func (h *Handler) pinStatus(w http.ResponseWriter, r *http.Request) {
	cid := cidParam(r)

	status, err := h.services.FilesService.GetPinStatus(r.Context(), cid)
	if err != nil {
		writeError(w, r, "*Handler.pinStatus", err)
		return
	}

	writeJSON(w, r, "*Handler.pinStatus", models.PinStatusResponse{CID: cid, Status: status}, http.StatusOK)
}

func (h *Handler) pin(w http.ResponseWriter, r *http.Request) {
	if err := h.services.FilesService.Pin(r.Context(), cidParam(r)); err != nil {
		writeError(w, r, "*Handler.pin", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) unpin(w http.ResponseWriter, r *http.Request) {
	if err := h.services.FilesService.Unpin(r.Context(), cidParam(r)); err != nil {
		writeError(w, r, "*Handler.unpin", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) pinByUpload(w http.ResponseWriter, r *http.Request) {
	if err := h.services.FilesService.PinByUpload(r.Context(), cidParam(r)); err != nil {
		writeError(w, r, "*Handler.pinByUpload", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// uploadBundleFile encrypts a single uploaded file. The bundle is named after
// the uploaded file.
func (h *Handler) uploadBundleFile(w http.ResponseWriter, r *http.Request) {
	h.uploadBundle(w, r, models.BundleKindFile)
}

// uploadBundleFolder encrypts a folder uploaded as a zip. The bundle name
// comes from the "name" field.
func (h *Handler) uploadBundleFolder(w http.ResponseWriter, r *http.Request) {
	h.uploadBundle(w, r, models.BundleKindFolder)
}

func (h *Handler) uploadBundle(w http.ResponseWriter, r *http.Request, kind models.BundleKind) {
	form, err := parseUpload(r)
	if err != nil {
		writeError(w, r, "*Handler.uploadBundle", err)
		return
	}
	defer form.Close()

	remember, err := form.flag("remember")
	if err != nil {
		writeError(w, r, "*Handler.uploadBundle", err)
		return
	}

	request := models.BundleUploadRequest{
		Directory:  form.value("directory"),
		Name:       form.filename,
		Passphrase: form.value("passphrase"),
		Remember:   remember,
	}
	if kind == models.BundleKindFolder {
		request.Name = form.value("name")
	}

	cid, err := h.services.FilesService.UploadEncrypted(r.Context(), request, kind, form.file)
	if err != nil {
		writeError(w, r, "*Handler.uploadBundle", err)
		return
	}

	writeJSON(w, r, "*Handler.uploadBundle", models.UploadResponse{CID: cid}, http.StatusCreated)
}

// downloadDecrypted streams the decrypted payload of a bundle. The body may
// be empty, in which case the stored passphrase is used.
func (h *Handler) downloadDecrypted(w http.ResponseWriter, r *http.Request) {
	var request models.DownloadRequest
	if err := decodeJSON(r, &request); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, "*Handler.downloadDecrypted", err)
		return
	}

	download, err := h.services.FilesService.DownloadDecrypted(r.Context(), cidParam(r), request.Passphrase)
	if err != nil {
		writeError(w, r, "*Handler.downloadDecrypted", err)
		return
	}
	defer download.Close()

	writeAttachment(w, r, "*Handler.downloadDecrypted", download.Name, download)
}

func (h *Handler) isEncrypted(w http.ResponseWriter, r *http.Request) {
	encrypted, err := h.services.FilesService.IsEncrypted(r.Context(), cidParam(r))
	if err != nil {
		writeError(w, r, "*Handler.isEncrypted", err)
		return
	}

	writeJSON(w, r, "*Handler.isEncrypted", models.EncryptedResponse{IsEncrypted: encrypted}, http.StatusOK)
}

func cidParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "cid"))
}

// uploadForm is a parsed multipart upload with its "file" part opened.
type uploadForm struct {
	form     *multipart.Form
	file     multipart.File
	filename string
}

func parseUpload(r *http.Request) (*uploadForm, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		_ = r.MultipartForm.RemoveAll()
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrNoFileAttached
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	return &uploadForm{form: r.MultipartForm, file: file, filename: header.Filename}, nil
}

func (f *uploadForm) value(key string) string {
	if values := f.form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func (f *uploadForm) flag(key string) (bool, error) {
	raw := f.value(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInvalidForm, key, err)
	}
	return v, nil
}

// Close releases the opened part and the spooled temporary files.
func (f *uploadForm) Close() error {
	return errors.Join(f.file.Close(), f.form.RemoveAll())
}
