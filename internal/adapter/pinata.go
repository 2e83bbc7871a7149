// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/metrics"
	"github.com/MKhiriev/go-file-keeper/internal/utils"
	"github.com/MKhiriev/go-file-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	apiKeyHeader    = "pinata_api_key"
	secretKeyHeader = "pinata_secret_api_key"
)

type pinataAdapter struct {
	client  *utils.HTTPClient
	uploads *utils.HTTPClient

	pageLimit int

	logger *logger.Logger
}

type pinByHashRequest struct {
	HashToPin string `json:"hashToPin"`
}

type pinFileResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

type pinListResponse struct {
	Count int `json:"count"`
	Rows  []struct {
		IpfsPinHash  string     `json:"ipfs_pin_hash"`
		DatePinned   *time.Time `json:"date_pinned"`
		DateUnpinned *time.Time `json:"date_unpinned"`
	} `json:"rows"`
}

type pinJobsResponse struct {
	Count int `json:"count"`
	Rows  []struct {
		IpfsPinHash string `json:"ipfs_pin_hash"`
		Status      string `json:"status"`
	} `json:"rows"`
}

// NewPinataAdapter constructs a [PinningService] for the Pinata API. Both
// credentials are sent as headers on every call.
func NewPinataAdapter(cfg config.Pinning, logger *logger.Logger) (PinningService, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid pinning service address: %w", err)
	}

	headers := map[string]string{
		apiKeyHeader:    cfg.APIKey,
		secretKeyHeader: cfg.SecretKey,
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeaders(headers)
	uploads := utils.NewStreamingHTTPClient(baseURL)
	uploads.SetHeaders(headers)

	return &pinataAdapter{
		client:    client,
		uploads:   uploads,
		pageLimit: cfg.PageLimit,
		logger:    logger.WithComponent("pinning-service"),
	}, nil
}

// observe records the outcome of one remote call.
func observe(op string, start time.Time, err *error) {
	metrics.RecordPinningCall(op, time.Since(start), *err == nil)
}

func (p *pinataAdapter) limit(requested int) int {
	if requested > 0 {
		return requested
	}
	return p.pageLimit
}

func (p *pinataAdapter) do(op string, resp *resty.Response, err error) error {
	if err != nil {
		return mapTransportError(op, err)
	}
	return mapPinningError(op, resp)
}

// PinByHash implements [PinningService].
func (p *pinataAdapter) PinByHash(ctx context.Context, cid string) (err error) {
	defer observe("pin_by_hash", time.Now(), &err)

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(pinByHashRequest{HashToPin: cid}).
		Post("/pinning/pinByHash")
	return p.do("pin by hash", resp, err)
}

// PinByUpload implements [PinningService]. content is rewound before upload.
func (p *pinataAdapter) PinByUpload(ctx context.Context, name string, content io.ReadSeeker) (remoteCID string, err error) {
	defer observe("pin_by_upload", time.Now(), &err)

	if _, err = content.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	body, contentType := streamMultipart("file", name, content)
	defer body.Close()

	var out pinFileResponse
	resp, err := p.uploads.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		SetResult(&out).
		Post("/pinning/pinFileToIPFS")
	if err = p.do("pin by upload", resp, err); err != nil {
		return "", err
	}
	if out.IpfsHash == "" {
		return "", fmt.Errorf("pin by upload: %w: empty IpfsHash in response", ErrExternalService)
	}

	return out.IpfsHash, nil
}

// Unpin implements [PinningService].
func (p *pinataAdapter) Unpin(ctx context.Context, cid string) (err error) {
	defer observe("unpin", time.Now(), &err)

	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("cid", cid).
		Delete("/pinning/unpin/{cid}")
	return p.do("unpin", resp, err)
}

// ListPins implements [PinningService].
func (p *pinataAdapter) ListPins(ctx context.Context, filter models.PinListFilter) (pins []models.RemotePin, err error) {
	defer observe("list_pins", time.Now(), &err)

	req := p.client.R().
		SetContext(ctx).
		SetQueryParam("pageLimit", strconv.Itoa(p.limit(filter.Limit)))
	if filter.CID != "" {
		req.SetQueryParam("hashContains", filter.CID)
	}
	if filter.Status != "" {
		req.SetQueryParam("status", filter.Status)
	}

	var out pinListResponse
	resp, err := req.SetResult(&out).Get("/data/pinList")
	if err = p.do("list pins", resp, err); err != nil {
		return nil, err
	}

	pins = make([]models.RemotePin, 0, len(out.Rows))
	for _, row := range out.Rows {
		pins = append(pins, models.RemotePin{
			CID:        row.IpfsPinHash,
			PinnedAt:   row.DatePinned,
			UnpinnedAt: row.DateUnpinned,
		})
	}
	return pins, nil
}

// ListPinJobs implements [PinningService].
func (p *pinataAdapter) ListPinJobs(ctx context.Context, filter models.PinJobFilter) (jobs []models.RemotePinJob, err error) {
	defer observe("list_pin_jobs", time.Now(), &err)

	req := p.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(p.limit(filter.Limit)))
	if filter.CID != "" {
		req.SetQueryParam("ipfs_pin_hash", filter.CID)
	}

	var out pinJobsResponse
	resp, err := req.SetResult(&out).Get("/pinning/pinJobs")
	if err = p.do("list pin jobs", resp, err); err != nil {
		return nil, err
	}

	jobs = make([]models.RemotePinJob, 0, len(out.Rows))
	for _, row := range out.Rows {
		jobs = append(jobs, models.RemotePinJob{CID: row.IpfsPinHash, Status: row.Status})
	}
	return jobs, nil
}
