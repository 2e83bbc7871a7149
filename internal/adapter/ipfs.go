// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strconv"

	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/utils"
	"github.com/MKhiriev/go-file-keeper/models"
)

// ipfsContentStore talks to the RPC API of a content store node
// ("/api/v0/files/*" and "/api/v0/cat").
type ipfsContentStore struct {
	// client carries the request timeout and serves metadata calls.
	client *utils.HTTPClient
	// streams serves reads and writes, bounded only by their context.
	streams *utils.HTTPClient

	logger *logger.Logger
}

// statResponse is the body of files/stat.
type statResponse struct {
	Hash           string `json:"Hash"`
	Size           int64  `json:"Size"`
	CumulativeSize int64  `json:"CumulativeSize"`
	Type           string `json:"Type"`
}

// lsResponse is the body of files/ls?long=true. Type is 0 for files and 1
// for directories.
type lsResponse struct {
	Entries []struct {
		Name string `json:"Name"`
		Type int    `json:"Type"`
		Size int64  `json:"Size"`
		Hash string `json:"Hash"`
	} `json:"Entries"`
}

// NewIPFSContentStore constructs a [ContentStore] for the RPC API at
// cfg.APIAddress ("host:port" or a URL).
func NewIPFSContentStore(cfg config.IPFS, logger *logger.Logger) (ContentStore, error) {
	baseURL, err := normalizeBaseURL(cfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid content store address: %w", err)
	}
	baseURL += "/api/v0"

	return &ipfsContentStore{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		streams: utils.NewStreamingHTTPClient(baseURL),
		logger:  logger.WithComponent("content-store"),
	}, nil
}

func args(values ...string) url.Values {
	return url.Values{"arg": values}
}

// call runs a metadata RPC and decodes a JSON answer into result when it is
// not nil.
func (s *ipfsContentStore) call(ctx context.Context, op, endpoint string, query url.Values, result any) error {
	req := s.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(endpoint)
	if err != nil {
		return mapTransportError(op, err)
	}
	return mapStoreError(op, resp.StatusCode(), resp.Body())
}

// stream runs an RPC whose answer is a raw byte stream.
func (s *ipfsContentStore) stream(ctx context.Context, op, endpoint string, query url.Values) (io.ReadCloser, error) {
	resp, err := s.streams.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetDoNotParseResponse(true).
		Post(endpoint)
	if err != nil {
		return nil, mapTransportError(op, err)
	}

	body := resp.RawBody()
	if resp.IsError() {
		defer body.Close()
		payload, _ := io.ReadAll(io.LimitReader(body, 64*1024))
		return nil, mapStoreError(op, resp.StatusCode(), payload)
	}
	return &ctxReadCloser{ctx: ctx, op: op, ReadCloser: body}, nil
}

// MakeDir implements [ContentStore].
func (s *ipfsContentStore) MakeDir(ctx context.Context, dir string) error {
	query := args(dir)
	query.Set("parents", "true")
	return s.call(ctx, "mkdir", "/files/mkdir", query, nil)
}

// Write implements [ContentStore]. The body is streamed as multipart.
func (s *ipfsContentStore) Write(ctx context.Context, filePath string, r io.Reader, opts models.WriteOptions) error {
	query := args(filePath)
	query.Set("create", strconv.FormatBool(opts.Create))
	query.Set("parents", strconv.FormatBool(opts.Parents))
	query.Set("truncate", "true")

	body, contentType := streamMultipart("file", path.Base(filePath), r)
	defer body.Close()

	resp, err := s.streams.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post("/files/write")
	if err != nil {
		return mapTransportError("write", err)
	}
	return mapStoreError("write", resp.StatusCode(), resp.Body())
}

// Stat implements [ContentStore].
func (s *ipfsContentStore) Stat(ctx context.Context, p string) (models.StoreStat, error) {
	var out statResponse
	if err := s.call(ctx, "stat", "/files/stat", args(p), &out); err != nil {
		return models.StoreStat{}, err
	}

	stat := models.StoreStat{CID: out.Hash, Size: out.Size, Type: models.EntryTypeFile}
	if out.Type == "directory" {
		stat.Type = models.EntryTypeDirectory
		stat.Size = out.CumulativeSize
	}
	return stat, nil
}

// List implements [ContentStore].
func (s *ipfsContentStore) List(ctx context.Context, dir string) ([]models.StoreEntry, error) {
	query := args(dir)
	query.Set("long", "true")

	var out lsResponse
	if err := s.call(ctx, "ls", "/files/ls", query, &out); err != nil {
		return nil, err
	}

	entries := make([]models.StoreEntry, 0, len(out.Entries))
	for _, e := range out.Entries {
		entryType := models.EntryTypeFile
		if e.Type == 1 {
			entryType = models.EntryTypeDirectory
		}
		entries = append(entries, models.StoreEntry{
			Name: e.Name,
			Type: entryType,
			Size: e.Size,
			CID:  e.Hash,
		})
	}
	return entries, nil
}

// Copy implements [ContentStore].
func (s *ipfsContentStore) Copy(ctx context.Context, from, to string) error {
	query := args(from, to)
	query.Set("parents", "true")
	return s.call(ctx, "cp", "/files/cp", query, nil)
}

// Move implements [ContentStore].
func (s *ipfsContentStore) Move(ctx context.Context, from, to string) error {
	return s.call(ctx, "mv", "/files/mv", args(from, to), nil)
}

// Remove implements [ContentStore].
func (s *ipfsContentStore) Remove(ctx context.Context, p string, recursive bool) error {
	query := args(p)
	query.Set("recursive", strconv.FormatBool(recursive))
	return s.call(ctx, "rm", "/files/rm", query, nil)
}

// ReadByCID implements [ContentStore].
func (s *ipfsContentStore) ReadByCID(ctx context.Context, cid string) (io.ReadCloser, error) {
	return s.stream(ctx, "cat", "/cat", args(cid))
}

// Probe implements [ContentStore].
func (s *ipfsContentStore) Probe(ctx context.Context, cid string, maxBytes int64) (io.ReadCloser, error) {
	query := args(cid)
	query.Set("length", strconv.FormatInt(maxBytes, 10))
	return s.stream(ctx, "probe", "/cat", query)
}

// ctxReadCloser maps a context deadline hit while reading the body onto
// [ErrTimeout].
type ctxReadCloser struct {
	io.ReadCloser
	ctx context.Context
	op  string
}

func (r *ctxReadCloser) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	if err != nil && err != io.EOF && r.ctx.Err() != nil {
		return n, mapTransportError(r.op, r.ctx.Err())
	}
	return n, err
}
