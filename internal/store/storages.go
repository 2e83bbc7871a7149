package store

import (
	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
)

// Storages groups the repositories built on top of one database handle.
type Storages struct {
	KeyRepository KeyRepository
}

// NewStorages wires every repository to db. The master key from cfg seals
// keystore records.
func NewStorages(db *DB, cfg config.App, log *logger.Logger) (*Storages, error) {
	sealer, err := NewAgeSealer(cfg.MasterKey, cfg.KeystoreWorkFactor)
	if err != nil {
		return nil, err
	}

	return &Storages{
		KeyRepository: NewKeyRepository(db, sealer, log),
	}, nil
}
