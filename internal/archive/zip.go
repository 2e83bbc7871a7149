// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// Zip writes contents into a new archive at dst. On failure the partial
// archive is removed.
func Zip(dst string, contents ...Content) (err error) {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close archive: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	return Write(out, contents...)
}

// Write streams an archive of contents into w.
func Write(w io.Writer, contents ...Content) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	for _, content := range contents {
		var err error
		switch c := content.(type) {
		case File:
			err = addFile(zw, c.Source, c.Name)
		case Directory:
			err = addDirectory(zw, c.Source, c.Prefix)
		case Buffer:
			err = addBuffer(zw, c.Name, c.Data)
		default:
			err = fmt.Errorf("%w: %T", ErrUnknownContent, content)
		}
		if err != nil {
			_ = zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, source, name string) error {
	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open %s: %w", source, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", source, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("header for %s: %w", source, err)
	}
	header.Name = name
	header.Method = zip.Deflate

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := io.Copy(entry, f); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}

func addDirectory(zw *zip.Writer, source, prefix string) error {
	return filepath.WalkDir(source, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(source, p)
		if err != nil {
			return err
		}
		name := path.Join(prefix, filepath.ToSlash(rel))

		if d.IsDir() {
			if rel == "." || name == "" || name == "." {
				return nil
			}
			_, err := zw.Create(name + "/")
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		return addFile(zw, p, name)
	})
}

func addBuffer(zw *zip.Writer, name string, data []byte) error {
	entry, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := io.Copy(entry, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}

// Unzip expands the archive at src into the directory dst, creating it if
// needed. Entries whose names would land outside dst are rejected.
func Unzip(src, dst string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCodec, err)
	}
	defer zr.Close()

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	for _, f := range zr.File {
		if err := extract(f, dst); err != nil {
			return err
		}
	}
	return nil
}

func extract(f *zip.File, dst string) error {
	target := filepath.Join(dst, filepath.FromSlash(f.Name))
	if target != filepath.Clean(dst) && !strings.HasPrefix(target, filepath.Clean(dst)+string(os.PathSeparator)) {
		return fmt.Errorf("%w: illegal entry path %q", ErrCodec, f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCodec, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: %s: %v", ErrCodec, f.Name, err)
	}
	return out.Close()
}
