package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-file-keeper/internal/adapter"
	"github.com/MKhiriev/go-file-keeper/internal/archive"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/store"
	"github.com/MKhiriev/go-file-keeper/internal/workspace"
	"github.com/MKhiriev/go-file-keeper/models"
)

type filesService struct {
	store      adapter.ContentStore
	imports    ImportManager
	pins       PinStatusService
	bundler    Bundler
	keys       store.KeyRepository
	workspaces *workspace.Provider

	logger *logger.Logger
}

func NewFilesService(contentStore adapter.ContentStore, imports ImportManager, pins PinStatusService, bundler Bundler, keys store.KeyRepository, workspaces *workspace.Provider, logger *logger.Logger) FilesService {
	return &filesService{
		store:      contentStore,
		imports:    imports,
		pins:       pins,
		bundler:    bundler,
		keys:       keys,
		workspaces: workspaces,
		logger:     logger.WithComponent("files"),
	}
}

func (s *filesService) CreateDirectory(ctx context.Context, directory string) error {
	return s.store.MakeDir(ctx, directory)
}

// Upload writes content to directory/name and returns the resulting cid.
func (s *filesService) Upload(ctx context.Context, directory, name string, content io.Reader) (string, error) {
	target := path.Join(directory, name)
	if err := s.store.Write(ctx, target, content, models.WriteOptions{Create: true, Parents: true}); err != nil {
		return "", err
	}

	stat, err := s.store.Stat(ctx, target)
	if err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info().Str("func", "*filesService.Upload").Str("path", target).Str("cid", stat.CID).Msg("file uploaded")
	return stat.CID, nil
}

// List merges the store listing of directory with the import jobs targeting
// it. A finished import that already shows up in the store is not repeated.
func (s *filesService) List(ctx context.Context, directory string) ([]models.Entry, error) {
	stored, err := s.store.List(ctx, directory)
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, len(stored))
	present := make(map[[2]string]struct{}, len(stored))
	for _, e := range stored {
		present[[2]string{e.Name, e.CID}] = struct{}{}
		entries = append(entries, models.Entry{
			Name:          e.Name,
			CID:           e.CID,
			Type:          e.Type,
			Size:          e.Size,
			StatusPin:     s.pins.GetPinStatus(ctx, e.CID),
			StatusContent: models.ContentStatusAvailable,
			IsEncrypted:   strings.HasSuffix(e.Name, models.EncryptedSuffix),
		})
	}

	for _, e := range s.imports.ListByDirectory(ctx, directory) {
		if _, ok := present[[2]string{e.Name, e.CID}]; ok && e.StatusContent == models.ContentStatusAvailable {
			continue
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (s *filesService) Copy(ctx context.Context, from, to string) error {
	return s.store.Copy(ctx, from, to)
}

func (s *filesService) Move(ctx context.Context, from, to string) error {
	return s.store.Move(ctx, from, to)
}

func (s *filesService) Remove(ctx context.Context, path string) error {
	return s.store.Remove(ctx, path, true)
}

func (s *filesService) Read(ctx context.Context, cid string) (io.ReadCloser, error) {
	return s.store.ReadByCID(ctx, cid)
}

func (s *filesService) StartImport(ctx context.Context, cid, directory, name string) error {
	if name == "" {
		name = cid
	}
	s.imports.AddImport(ctx, cid, directory, name)
	return nil
}

func (s *filesService) CancelImport(ctx context.Context, cid, directory string) error {
	return s.imports.CancelImport(ctx, cid, directory)
}

func (s *filesService) GetPinStatus(ctx context.Context, cid string) (models.PinStatus, error) {
	return s.pins.GetPinStatus(ctx, cid), nil
}

func (s *filesService) Pin(ctx context.Context, cid string) error {
	return s.pins.Pin(ctx, cid)
}

func (s *filesService) Unpin(ctx context.Context, cid string) error {
	return s.pins.Unpin(ctx, cid)
}

func (s *filesService) PinByUpload(ctx context.Context, cid string) error {
	content, err := s.store.ReadByCID(ctx, cid)
	if err != nil {
		return err
	}
	defer content.Close()

	return s.pins.PinByUpload(ctx, cid, content)
}

func (s *filesService) IsEncrypted(ctx context.Context, cid string) (bool, error) {
	return s.keys.HasKey(ctx, cid)
}

func (s *filesService) UploadEncrypted(ctx context.Context, request models.BundleUploadRequest, kind models.BundleKind, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	ws, err := s.workspaces.Acquire("upload-encrypted")
	if err != nil {
		return "", err
	}
	defer ws.Close()

	source, err := stagePayload(ws, kind, request.Name, content)
	if err != nil {
		return "", err
	}

	bundlePath := ws.Path("bundle" + models.EncryptedSuffix)
	if err = s.bundler.Bundle(ctx, kind, source, request.Passphrase, bundlePath); err != nil {
		log.Err(err).Str("func", "*filesService.UploadEncrypted").Str("kind", string(kind)).Msg("error bundling payload")
		return "", err
	}

	bundle, err := os.Open(bundlePath)
	if err != nil {
		return "", err
	}
	defer bundle.Close()

	cid, err := s.Upload(ctx, request.Directory, request.Name+models.EncryptedSuffix, bundle)
	if err != nil {
		return "", err
	}

	if request.Remember {
		if err = s.keys.SetKey(ctx, cid, request.Passphrase); err != nil {
			log.Err(err).Str("func", "*filesService.UploadEncrypted").Str("cid", cid).Msg("error remembering passphrase")
			return "", err
		}
	}

	return cid, nil
}

// stagePayload writes the uploaded content into ws. A folder arrives as a
// zip and is expanded before bundling.
func stagePayload(ws *workspace.Workspace, kind models.BundleKind, name string, content io.Reader) (string, error) {
	switch kind {
	case models.BundleKindFile:
		target := ws.Path(filepath.Base(name))
		return target, writeFile(target, content)
	case models.BundleKindFolder:
		uploaded := ws.Path("folder.zip")
		if err := writeFile(uploaded, content); err != nil {
			return "", err
		}
		target := ws.Path("folder")
		if err := archive.Unzip(uploaded, target); err != nil {
			return "", fmt.Errorf("%w: folder upload is not a zip: %w", ErrInvalidDataProvided, err)
		}
		return target, nil
	default:
		return "", fmt.Errorf("%w: unknown bundle kind %q", ErrInvalidDataProvided, kind)
	}
}

func writeFile(target string, content io.Reader) error {
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, content); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (s *filesService) DownloadDecrypted(ctx context.Context, cid, passphrase string) (download *models.Download, err error) {
	ws, err := s.workspaces.Acquire("download-decrypted")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = ws.Close()
		}
	}()

	if passphrase == "" {
		passphrase, err = s.keys.GetKey(ctx, cid)
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrPassphraseRequired
		}
		if err != nil {
			return nil, err
		}
	}

	content, err := s.store.ReadByCID(ctx, cid)
	if err != nil {
		return nil, err
	}
	bundlePath := ws.Path("bundle" + models.EncryptedSuffix)
	err = writeFile(bundlePath, content)
	content.Close()
	if err != nil {
		return nil, err
	}

	out := ws.Path("out")
	if err = os.MkdirAll(out, 0o700); err != nil {
		return nil, err
	}
	result, err := s.bundler.Unbundle(ctx, bundlePath, passphrase, out)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(result.Path)
	if err != nil {
		return nil, err
	}

	return &models.Download{
		ReadCloser: &workspaceFile{File: f, ws: ws},
		Name:       result.Name,
		Kind:       result.Kind,
	}, nil
}

// workspaceFile removes its workspace once closed.
type workspaceFile struct {
	*os.File
	ws *workspace.Workspace
}

func (f *workspaceFile) Close() error {
	return errors.Join(f.File.Close(), f.ws.Close())
}
