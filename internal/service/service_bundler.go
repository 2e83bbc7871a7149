// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-file-keeper/internal/archive"
	"github.com/MKhiriev/go-file-keeper/internal/crypto"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/metrics"
	"github.com/MKhiriev/go-file-keeper/internal/workspace"
	"github.com/MKhiriev/go-file-keeper/models"
)

// Entry names of an encrypted bundle.
const (
	bundleDataEntry = "data.zip.aes"
	bundleIVEntry   = "iv.dat"
	bundleTypeEntry = "type.dat"

	// bundleContentDir prefixes the entries of bundles we write, the layout
	// existing bundles already use, so they stay readable by every reader of
	// the format. Bundles without it are read as well.
	bundleContentDir = "content"
	// payloadDir prefixes the entries of the inner archive.
	payloadDir = "data"

	folderPayloadName = "data.zip"
)

type bundler struct {
	cipher     crypto.StreamCipher
	workspaces *workspace.Provider
	logger     *logger.Logger
}

func NewBundler(cipher crypto.StreamCipher, workspaces *workspace.Provider, logger *logger.Logger) Bundler {
	return &bundler{
		cipher:     cipher,
		workspaces: workspaces,
		logger:     logger.WithComponent("bundler"),
	}
}

func (b *bundler) Bundle(ctx context.Context, kind models.BundleKind, sourcePath, passphrase, dst string) (err error) {
	defer func() { metrics.RecordBundleOperation("bundle", err == nil) }()

	ws, err := b.workspaces.Acquire("bundle")
	if err != nil {
		return err
	}
	defer ws.Close()

	var payload archive.Content
	switch kind {
	case models.BundleKindFile:
		payload = archive.File{Source: sourcePath, Name: payloadDir + "/" + filepath.Base(sourcePath)}
	case models.BundleKindFolder:
		payload = archive.Directory{Source: sourcePath, Prefix: payloadDir}
	default:
		return fmt.Errorf("%w: unknown bundle kind %q", ErrInvalidDataProvided, kind)
	}

	plainZip := ws.Path(folderPayloadName)
	if err = archive.Zip(plainZip, payload); err != nil {
		return fmt.Errorf("archive payload: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	key, err := b.cipher.DeriveKey(passphrase)
	if err != nil {
		return err
	}
	iv, err := b.cipher.NewIV()
	if err != nil {
		return err
	}

	encrypted := ws.Path(bundleDataEntry)
	if err = encryptFile(b.cipher, plainZip, encrypted, key, iv); err != nil {
		return err
	}
	_ = os.Remove(plainZip)
	if err = ctx.Err(); err != nil {
		return err
	}

	err = archive.Zip(dst,
		archive.File{Source: encrypted, Name: bundleContentDir + "/" + bundleDataEntry},
		archive.Buffer{Name: bundleContentDir + "/" + bundleIVEntry, Data: iv},
		archive.Buffer{Name: bundleContentDir + "/" + bundleTypeEntry, Data: []byte(kind)},
	)
	if err != nil {
		return fmt.Errorf("archive bundle: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*bundler.Bundle").Str("kind", string(kind)).Msg("bundle created")
	return nil
}

func (b *bundler) Unbundle(ctx context.Context, bundlePath, passphrase, dstDir string) (result models.UnbundleResult, err error) {
	defer func() { metrics.RecordBundleOperation("unbundle", err == nil) }()

	ws, err := b.workspaces.Acquire("unbundle")
	if err != nil {
		return models.UnbundleResult{}, err
	}
	defer ws.Close()

	extracted := ws.Path("bundle")
	if err = archive.Unzip(bundlePath, extracted); err != nil {
		return models.UnbundleResult{}, asInvalidBundle(err)
	}
	root := extracted
	if info, statErr := os.Stat(filepath.Join(extracted, bundleContentDir)); statErr == nil && info.IsDir() {
		root = filepath.Join(extracted, bundleContentDir)
	}

	rawKind, err := os.ReadFile(filepath.Join(root, bundleTypeEntry))
	if err != nil {
		return models.UnbundleResult{}, fmt.Errorf("%w: missing %s", ErrInvalidBundle, bundleTypeEntry)
	}
	kind, err := models.ParseBundleKind(strings.TrimSpace(string(rawKind)))
	if err != nil {
		return models.UnbundleResult{}, fmt.Errorf("%w: %w", ErrInvalidBundle, err)
	}
	iv, err := os.ReadFile(filepath.Join(root, bundleIVEntry))
	if err != nil {
		return models.UnbundleResult{}, fmt.Errorf("%w: missing %s", ErrInvalidBundle, bundleIVEntry)
	}
	if len(iv) != crypto.IVSize {
		return models.UnbundleResult{}, fmt.Errorf("%w: iv is %d bytes", ErrInvalidBundle, len(iv))
	}
	encrypted := filepath.Join(root, bundleDataEntry)
	if _, err = os.Stat(encrypted); err != nil {
		return models.UnbundleResult{}, fmt.Errorf("%w: missing %s", ErrInvalidBundle, bundleDataEntry)
	}
	if err = ctx.Err(); err != nil {
		return models.UnbundleResult{}, err
	}

	key, err := b.cipher.DeriveKey(passphrase)
	if err != nil {
		return models.UnbundleResult{}, err
	}
	plainZip := ws.Path(folderPayloadName)
	if err = decryptFile(b.cipher, encrypted, plainZip, key, iv); err != nil {
		return models.UnbundleResult{}, asInvalidBundle(err)
	}

	// a wrong passphrase only shows up here, as an unreadable archive
	payload := ws.Path("payload")
	if err = archive.Unzip(plainZip, payload); err != nil {
		return models.UnbundleResult{}, asInvalidBundle(err)
	}
	if err = ctx.Err(); err != nil {
		return models.UnbundleResult{}, err
	}

	if kind == models.BundleKindFolder {
		out := filepath.Join(dstDir, folderPayloadName)
		if err = copyFile(plainZip, out); err != nil {
			return models.UnbundleResult{}, err
		}
		return models.UnbundleResult{Path: out, Name: folderPayloadName, Kind: kind}, nil
	}

	source, name, err := singleFile(payload)
	if err != nil {
		return models.UnbundleResult{}, err
	}
	out := filepath.Join(dstDir, name)
	if err = copyFile(source, out); err != nil {
		return models.UnbundleResult{}, err
	}
	return models.UnbundleResult{Path: out, Name: name, Kind: kind}, nil
}

// singleFile finds the only regular file of an expanded file payload.
func singleFile(payload string) (string, string, error) {
	dir := payload
	if info, err := os.Stat(filepath.Join(payload, payloadDir)); err == nil && info.IsDir() {
		dir = filepath.Join(payload, payloadDir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidBundle, err)
	}
	var found []os.DirEntry
	for _, e := range entries {
		if e.Type().IsRegular() {
			found = append(found, e)
		}
	}
	if len(found) != 1 {
		return "", "", fmt.Errorf("%w: expected one file in payload, found %d", ErrInvalidBundle, len(found))
	}
	return filepath.Join(dir, found[0].Name()), found[0].Name(), nil
}

func asInvalidBundle(err error) error {
	if errors.Is(err, archive.ErrCodec) || errors.Is(err, crypto.ErrCodec) {
		return fmt.Errorf("%w: %w", ErrInvalidBundle, err)
	}
	return err
}

func encryptFile(c crypto.StreamCipher, src, dst string, key, iv []byte) error {
	return transformFile(src, dst, func(w io.Writer, r io.Reader) error {
		return c.Encrypt(w, r, key, iv)
	})
}

func decryptFile(c crypto.StreamCipher, src, dst string, key, iv []byte) error {
	return transformFile(src, dst, func(w io.Writer, r io.Reader) error {
		return c.Decrypt(w, r, key, iv)
	})
}

func transformFile(src, dst string, fn func(io.Writer, io.Reader) error) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err = fn(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}

func copyFile(src, dst string) error {
	return transformFile(src, dst, func(w io.Writer, r io.Reader) error {
		_, err := io.Copy(w, r)
		return err
	})
}
