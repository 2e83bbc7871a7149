package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-keeper/internal/adapter"
	"github.com/MKhiriev/go-file-keeper/internal/archive"
	"github.com/MKhiriev/go-file-keeper/internal/crypto"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/mock"
	"github.com/MKhiriev/go-file-keeper/internal/store"
	"github.com/MKhiriev/go-file-keeper/internal/workspace"
	"github.com/MKhiriev/go-file-keeper/models"
)

type filesFixture struct {
	svc     *filesService
	store   *mock.MockContentStore
	imports *mock.MockImportManager
	pins    *mock.MockPinStatusService
	keys    *mock.MockKeyRepository
	root    string
}

func newFilesFixture(t *testing.T) filesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := filesFixture{
		store:   mock.NewMockContentStore(ctrl),
		imports: mock.NewMockImportManager(ctrl),
		pins:    mock.NewMockPinStatusService(ctrl),
		keys:    mock.NewMockKeyRepository(ctrl),
		root:    filepath.Join(t.TempDir(), "workspaces"),
	}
	workspaces := workspace.NewProvider(f.root)
	bundler := NewBundler(crypto.NewStreamCipher(), workspaces, logger.Nop())
	f.svc = NewFilesService(f.store, f.imports, f.pins, bundler, f.keys, workspaces, logger.Nop()).(*filesService)
	return f
}

func TestFilesService_List_MergesImports(t *testing.T) {
	f := newFilesFixture(t)
	ctx := context.Background()

	f.store.EXPECT().List(ctx, "/docs").Return([]models.StoreEntry{
		{Name: "a.txt", Type: models.EntryTypeFile, Size: 3, CID: testCID},
		{Name: "secret.pdf.encrypted", Type: models.EntryTypeFile, Size: 100, CID: otherCID},
		{Name: "sub", Type: models.EntryTypeDirectory, CID: "dir-cid"},
	}, nil)
	f.pins.EXPECT().GetPinStatus(ctx, testCID).Return(models.PinStatusPinned)
	f.pins.EXPECT().GetPinStatus(ctx, otherCID).Return(models.PinStatusQueued)
	f.pins.EXPECT().GetPinStatus(ctx, "dir-cid").Return(models.PinStatusUnpinned)
	f.imports.EXPECT().ListByDirectory(ctx, "/docs").Return([]models.Entry{
		// already linked into the directory
		{Name: "a.txt", CID: testCID, Type: models.EntryTypeFile, StatusContent: models.ContentStatusAvailable, StatusPin: models.PinStatusUnpinned},
		{Name: "incoming.bin", CID: "import-cid", Type: models.EntryTypeFile, StatusContent: models.ContentStatusDownloading, StatusPin: models.PinStatusUnpinned},
	})

	entries, err := f.svc.List(ctx, "/docs")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, models.Entry{Name: "a.txt", CID: testCID, Type: models.EntryTypeFile, Size: 3, StatusPin: models.PinStatusPinned, StatusContent: models.ContentStatusAvailable}, entries[0])
	assert.True(t, entries[1].IsEncrypted)
	assert.Equal(t, models.PinStatusQueued, entries[1].StatusPin)
	assert.Equal(t, models.EntryTypeDirectory, entries[2].Type)
	assert.Equal(t, "incoming.bin", entries[3].Name)
	assert.Equal(t, models.ContentStatusDownloading, entries[3].StatusContent)
}

func TestFilesService_List_StoreError(t *testing.T) {
	f := newFilesFixture(t)
	f.store.EXPECT().List(gomock.Any(), "/missing").Return(nil, adapter.ErrNotFound)

	_, err := f.svc.List(context.Background(), "/missing")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestFilesService_Upload(t *testing.T) {
	f := newFilesFixture(t)
	ctx := context.Background()
	body := strings.NewReader("hello")

	gomock.InOrder(
		f.store.EXPECT().Write(ctx, "/docs/a.txt", body, models.WriteOptions{Create: true, Parents: true}).Return(nil),
		f.store.EXPECT().Stat(ctx, "/docs/a.txt").Return(models.StoreStat{CID: testCID, Size: 5}, nil),
	)

	cid, err := f.svc.Upload(ctx, "/docs", "a.txt", body)
	require.NoError(t, err)
	assert.Equal(t, testCID, cid)
}

func TestFilesService_SimpleDelegation(t *testing.T) {
	f := newFilesFixture(t)
	ctx := context.Background()

	f.store.EXPECT().MakeDir(ctx, "/new").Return(nil)
	f.store.EXPECT().Copy(ctx, "/a", "/b").Return(nil)
	f.store.EXPECT().Move(ctx, "/b", "/c").Return(nil)
	f.store.EXPECT().Remove(ctx, "/c", true).Return(nil)
	f.imports.EXPECT().AddImport(ctx, testCID, "/docs", testCID)
	f.imports.EXPECT().CancelImport(ctx, testCID, "/docs").Return(ErrImportNotFound)
	f.keys.EXPECT().HasKey(ctx, testCID).Return(true, nil)

	require.NoError(t, f.svc.CreateDirectory(ctx, "/new"))
	require.NoError(t, f.svc.Copy(ctx, "/a", "/b"))
	require.NoError(t, f.svc.Move(ctx, "/b", "/c"))
	require.NoError(t, f.svc.Remove(ctx, "/c"))
	// an empty name defaults to the cid
	require.NoError(t, f.svc.StartImport(ctx, testCID, "/docs", ""))
	assert.ErrorIs(t, f.svc.CancelImport(ctx, testCID, "/docs"), ErrImportNotFound)

	encrypted, err := f.svc.IsEncrypted(ctx, testCID)
	require.NoError(t, err)
	assert.True(t, encrypted)
}

func TestFilesService_PinByUpload_StreamsFromStore(t *testing.T) {
	f := newFilesFixture(t)
	ctx := context.Background()
	content := io.NopCloser(strings.NewReader("pinned bytes"))

	f.store.EXPECT().ReadByCID(ctx, testCID).Return(content, nil)
	f.pins.EXPECT().PinByUpload(ctx, testCID, content).Return(nil)

	require.NoError(t, f.svc.PinByUpload(ctx, testCID))
}

func TestFilesService_EncryptedRoundTrip(t *testing.T) {
	f := newFilesFixture(t)
	ctx := context.Background()
	payload := bytes.Repeat([]byte("quarterly numbers "), 1000)

	var uploaded bytes.Buffer
	f.store.EXPECT().Write(ctx, "/vault/report.pdf.encrypted", gomock.Any(), models.WriteOptions{Create: true, Parents: true}).
		DoAndReturn(func(_ context.Context, _ string, r io.Reader, _ models.WriteOptions) error {
			_, err := io.Copy(&uploaded, r)
			return err
		})
	f.store.EXPECT().Stat(ctx, "/vault/report.pdf.encrypted").Return(models.StoreStat{CID: testCID}, nil)
	f.keys.EXPECT().SetKey(ctx, testCID, testPassphrase).Return(nil)

	request := models.BundleUploadRequest{Directory: "/vault", Name: "report.pdf", Passphrase: testPassphrase, Remember: true}
	cid, err := f.svc.UploadEncrypted(ctx, request, models.BundleKindFile, bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, testCID, cid)
	assertNoWorkspaces(t, f.root)

	// download with the remembered passphrase
	f.keys.EXPECT().GetKey(ctx, testCID).Return(testPassphrase, nil)
	f.store.EXPECT().ReadByCID(ctx, testCID).Return(io.NopCloser(bytes.NewReader(uploaded.Bytes())), nil)

	download, err := f.svc.DownloadDecrypted(ctx, testCID, "")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", download.Name)
	assert.Equal(t, models.BundleKindFile, download.Kind)

	got, err := io.ReadAll(download)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, download.Close())
	assertNoWorkspaces(t, f.root)
}

func TestFilesService_UploadEncryptedFolder(t *testing.T) {
	f := newFilesFixture(t)
	ctx := context.Background()

	folder := t.TempDir()
	writeTestFile(t, filepath.Join(folder, "a.txt"), []byte("alpha"))
	writeTestFile(t, filepath.Join(folder, "nested", "b.txt"), []byte("beta"))
	var folderZip bytes.Buffer
	require.NoError(t, archive.Write(&folderZip, archive.Directory{Source: folder}))

	var uploaded bytes.Buffer
	f.store.EXPECT().Write(ctx, "/vault/album.encrypted", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, r io.Reader, _ models.WriteOptions) error {
			_, err := io.Copy(&uploaded, r)
			return err
		})
	f.store.EXPECT().Stat(ctx, "/vault/album.encrypted").Return(models.StoreStat{CID: otherCID}, nil)

	request := models.BundleUploadRequest{Directory: "/vault", Name: "album", Passphrase: testPassphrase}
	cid, err := f.svc.UploadEncrypted(ctx, request, models.BundleKindFolder, &folderZip)
	require.NoError(t, err)
	assert.Equal(t, otherCID, cid)

	f.store.EXPECT().ReadByCID(ctx, otherCID).Return(io.NopCloser(bytes.NewReader(uploaded.Bytes())), nil)
	download, err := f.svc.DownloadDecrypted(ctx, otherCID, testPassphrase)
	require.NoError(t, err)
	defer download.Close()
	assert.Equal(t, "data.zip", download.Name)

	zipped := filepath.Join(t.TempDir(), "data.zip")
	out, err := os.Create(zipped)
	require.NoError(t, err)
	_, err = io.Copy(out, download)
	require.NoError(t, err)
	require.NoError(t, out.Close())

	expanded := filepath.Join(t.TempDir(), "expanded")
	require.NoError(t, archive.Unzip(zipped, expanded))
	b, err := os.ReadFile(filepath.Join(expanded, "data", "nested", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", string(b))
}

func TestFilesService_UploadEncryptedFolder_NotAZip(t *testing.T) {
	f := newFilesFixture(t)

	request := models.BundleUploadRequest{Directory: "/vault", Name: "album", Passphrase: testPassphrase}
	_, err := f.svc.UploadEncrypted(context.Background(), request, models.BundleKindFolder, strings.NewReader("plain text"))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assertNoWorkspaces(t, f.root)
}

func TestFilesService_DownloadDecrypted_PassphraseRequired(t *testing.T) {
	f := newFilesFixture(t)
	ctx := context.Background()

	f.keys.EXPECT().GetKey(ctx, testCID).Return("", store.ErrKeyNotFound)

	_, err := f.svc.DownloadDecrypted(ctx, testCID, "")
	assert.ErrorIs(t, err, ErrPassphraseRequired)
	assertNoWorkspaces(t, f.root)
}

func TestFilesService_DownloadDecrypted_InvalidBundle(t *testing.T) {
	f := newFilesFixture(t)
	ctx := context.Background()

	f.store.EXPECT().ReadByCID(ctx, testCID).Return(io.NopCloser(strings.NewReader("not a bundle")), nil)

	_, err := f.svc.DownloadDecrypted(ctx, testCID, testPassphrase)
	assert.ErrorIs(t, err, ErrInvalidBundle)
	assertNoWorkspaces(t, f.root)
}
