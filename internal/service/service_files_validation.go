package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-file-keeper/internal/validators"
	"github.com/MKhiriev/go-file-keeper/models"
)

// FilesValidationService rejects malformed paths, names, cids and
// passphrases before they reach the wrapped service.
type FilesValidationService struct {
	inner     FilesService
	validator validators.Validator
}

func NewFilesValidationService() FilesServiceWrapper {
	return &FilesValidationService{
		validator: validators.NewFilesValidator(),
	}
}

func (v *FilesValidationService) Wrap(inner FilesService) FilesService {
	v.inner = inner
	return v
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

func (v *FilesValidationService) CreateDirectory(ctx context.Context, directory string) error {
	if err := v.validator.Validate(ctx, models.DirectoryRequest{Directory: directory}); err != nil {
		return invalid(err)
	}
	return v.inner.CreateDirectory(ctx, directory)
}

func (v *FilesValidationService) Upload(ctx context.Context, directory, name string, content io.Reader) (string, error) {
	request := models.DirectoryRequest{Directory: directory, Name: name}
	if err := v.validator.Validate(ctx, request, validators.FieldDirectory, validators.FieldName); err != nil {
		return "", invalid(err)
	}
	return v.inner.Upload(ctx, directory, name, content)
}

func (v *FilesValidationService) List(ctx context.Context, directory string) ([]models.Entry, error) {
	if err := v.validator.Validate(ctx, models.DirectoryRequest{Directory: directory}); err != nil {
		return nil, invalid(err)
	}
	return v.inner.List(ctx, directory)
}

func (v *FilesValidationService) Copy(ctx context.Context, from, to string) error {
	// the source may also be an /ipfs/<cid> path
	if err := v.validator.Validate(ctx, models.TransferRequest{From: from, To: to}); err != nil {
		return invalid(err)
	}
	return v.inner.Copy(ctx, from, to)
}

func (v *FilesValidationService) Move(ctx context.Context, from, to string) error {
	if err := v.validator.Validate(ctx, models.TransferRequest{From: from, To: to}); err != nil {
		return invalid(err)
	}
	return v.inner.Move(ctx, from, to)
}

func (v *FilesValidationService) Remove(ctx context.Context, path string) error {
	if err := v.validator.Validate(ctx, models.DirectoryRequest{Directory: path}); err != nil {
		return invalid(err)
	}
	if path == "/" {
		return invalid(validators.ErrInvalidPath)
	}
	return v.inner.Remove(ctx, path)
}

func (v *FilesValidationService) Read(ctx context.Context, cid string) (io.ReadCloser, error) {
	if err := validators.ValidateCID(cid); err != nil {
		return nil, invalid(err)
	}
	return v.inner.Read(ctx, cid)
}

func (v *FilesValidationService) StartImport(ctx context.Context, cid, directory, name string) error {
	if err := validators.ValidateCID(cid); err != nil {
		return invalid(err)
	}
	fields := []string{validators.FieldDirectory}
	if name != "" {
		fields = append(fields, validators.FieldName)
	}
	if err := v.validator.Validate(ctx, models.DirectoryRequest{Directory: directory, Name: name}, fields...); err != nil {
		return invalid(err)
	}
	return v.inner.StartImport(ctx, cid, directory, name)
}

func (v *FilesValidationService) CancelImport(ctx context.Context, cid, directory string) error {
	if err := validators.ValidateCID(cid); err != nil {
		return invalid(err)
	}
	if err := v.validator.Validate(ctx, models.DirectoryRequest{Directory: directory}); err != nil {
		return invalid(err)
	}
	return v.inner.CancelImport(ctx, cid, directory)
}

func (v *FilesValidationService) GetPinStatus(ctx context.Context, cid string) (models.PinStatus, error) {
	if err := validators.ValidateCID(cid); err != nil {
		return "", invalid(err)
	}
	return v.inner.GetPinStatus(ctx, cid)
}

func (v *FilesValidationService) Pin(ctx context.Context, cid string) error {
	if err := validators.ValidateCID(cid); err != nil {
		return invalid(err)
	}
	return v.inner.Pin(ctx, cid)
}

func (v *FilesValidationService) Unpin(ctx context.Context, cid string) error {
	if err := validators.ValidateCID(cid); err != nil {
		return invalid(err)
	}
	return v.inner.Unpin(ctx, cid)
}

func (v *FilesValidationService) PinByUpload(ctx context.Context, cid string) error {
	if err := validators.ValidateCID(cid); err != nil {
		return invalid(err)
	}
	return v.inner.PinByUpload(ctx, cid)
}

func (v *FilesValidationService) IsEncrypted(ctx context.Context, cid string) (bool, error) {
	if err := validators.ValidateCID(cid); err != nil {
		return false, invalid(err)
	}
	return v.inner.IsEncrypted(ctx, cid)
}

func (v *FilesValidationService) UploadEncrypted(ctx context.Context, request models.BundleUploadRequest, kind models.BundleKind, content io.Reader) (string, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return "", invalid(err)
	}
	if _, err := models.ParseBundleKind(string(kind)); err != nil {
		return "", invalid(err)
	}
	return v.inner.UploadEncrypted(ctx, request, kind, content)
}

func (v *FilesValidationService) DownloadDecrypted(ctx context.Context, cid, passphrase string) (*models.Download, error) {
	if err := validators.ValidateCID(cid); err != nil {
		return nil, invalid(err)
	}
	return v.inner.DownloadDecrypted(ctx, cid, passphrase)
}
