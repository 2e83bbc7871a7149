// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-file-keeper/models"
)

const (
	FieldDirectory  = "directory"
	FieldName       = "name"
	FieldFrom       = "from"
	FieldTo         = "to"
	FieldPassphrase = "passphrase"
)

// FilesValidator validates the request bodies of the files API.
type FilesValidator struct{}

func NewFilesValidator() Validator {
	return &FilesValidator{}
}

func (v *FilesValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DirectoryRequest:
		return v.validateDirectoryRequest(ctx, value, fields...)
	case *models.DirectoryRequest:
		return v.validateDirectoryRequest(ctx, *value, fields...)

	case models.TransferRequest:
		return v.validateTransferRequest(ctx, value, fields...)
	case *models.TransferRequest:
		return v.validateTransferRequest(ctx, *value, fields...)

	case models.BundleUploadRequest:
		return v.validateBundleUploadRequest(ctx, value, fields...)
	case *models.BundleUploadRequest:
		return v.validateBundleUploadRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FilesValidator) validateDirectoryRequest(_ context.Context, request models.DirectoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDirectory}
	}

	for _, f := range fields {
		switch f {
		case FieldDirectory:
			if err := ValidatePath(request.Directory); err != nil {
				return err
			}
		case FieldName:
			if err := ValidateName(request.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FilesValidator) validateTransferRequest(_ context.Context, request models.TransferRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFrom, FieldTo}
	}

	for _, f := range fields {
		switch f {
		case FieldFrom:
			if err := ValidatePath(request.From); err != nil {
				return err
			}
		case FieldTo:
			if err := ValidatePath(request.To); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FilesValidator) validateBundleUploadRequest(_ context.Context, request models.BundleUploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDirectory, FieldName, FieldPassphrase}
	}

	for _, f := range fields {
		switch f {
		case FieldDirectory:
			if err := ValidatePath(request.Directory); err != nil {
				return err
			}
		case FieldName:
			if err := ValidateName(request.Name); err != nil {
				return err
			}
		case FieldPassphrase:
			if err := ValidatePassphrase(request.Passphrase); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
