package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/utils"
)

const bundleKeysTable = "bundle_keys"

// keyRepository is the SQL-backed implementation of [KeyRepository]. Records
// live in the bundle_keys table, the passphrase column holds an age
// ciphertext.
type keyRepository struct {
	db     *DB
	sealer Sealer
	clock  utils.Clock
	logger *logger.Logger
}

// NewKeyRepository constructs a [KeyRepository] on top of db.
func NewKeyRepository(db *DB, sealer Sealer, logger *logger.Logger) KeyRepository {
	logger.Debug().Msg("creating key repository")
	return &keyRepository{
		db:     db,
		sealer: sealer,
		clock:  utils.RealClock{},
		logger: logger,
	}
}

// SetKey upserts the sealed passphrase for cid. A write failing with a
// retryable driver error is attempted once more.
func (r *keyRepository) SetKey(ctx context.Context, cid, passphrase string) error {
	log := logger.FromContext(ctx)

	sealed, err := r.sealer.Seal([]byte(passphrase))
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.SetKey").Str("cid", cid).Msg("error sealing passphrase")
		return err
	}

	query, args, err := r.db.statementBuilder().
		Insert(bundleKeysTable).
		Columns("cid", "sealed_passphrase", "created_at").
		Values(cid, sealed, r.clock.Now().UTC()).
		Suffix("ON CONFLICT (cid) DO UPDATE SET sealed_passphrase = excluded.sealed_passphrase, created_at = excluded.created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil && r.db.classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*keyRepository.SetKey").Str("cid", cid).Msg("retrying upsert")
		result, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.SetKey").Str("cid", cid).Str("pg_code", postgresError(err)).Msg("error upserting bundle key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrKeyNotSaved
	}

	return nil
}

// GetKey loads and opens the passphrase remembered for cid.
func (r *keyRepository) GetKey(ctx context.Context, cid string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.statementBuilder().
		Select("sealed_passphrase").
		From(bundleKeysTable).
		Where(sq.Eq{"cid": cid}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sealed []byte
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&sealed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		log.Err(err).Str("func", "*keyRepository.GetKey").Str("cid", cid).Msg("error reading bundle key")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	plaintext, err := r.sealer.Open(sealed)
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.GetKey").Str("cid", cid).Msg("error opening bundle key")
		return "", err
	}

	return string(plaintext), nil
}

func (r *keyRepository) HasKey(ctx context.Context, cid string) (bool, error) {
	query, args, err := r.db.statementBuilder().
		Select("COUNT(*)").
		From(bundleKeysTable).
		Where(sq.Eq{"cid": cid}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyRepository.HasKey").Str("cid", cid).Msg("error counting bundle keys")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *keyRepository) DeleteKey(ctx context.Context, cid string) error {
	query, args, err := r.db.statementBuilder().
		Delete(bundleKeysTable).
		Where(sq.Eq{"cid": cid}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyRepository.DeleteKey").Str("cid", cid).Msg("error deleting bundle key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
