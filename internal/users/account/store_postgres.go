// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package account

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftboard/craftboard/internal/platform/database/schema"
	"github.com/craftboard/craftboard/internal/platform/dberr"
	"github.com/craftboard/craftboard/internal/platform/sec"
)

// PostgresRepository implements [Repository] on the pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed profile repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.AvatarURL, schema.UserAccount.Role, schema.UserAccount.Bio,
		schema.UserAccount.Website, schema.UserAccount.Social,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.ID,
	)

	profile := &Profile{}
	var social []byte

	err := repository.db.QueryRow(context, query, id).Scan(
		&profile.ID, &profile.Name, &profile.Email, &profile.AvatarURL,
		&profile.Role, &profile.Bio, &profile.Website, &social,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_profile_by_id")
	}

	if len(social) > 0 {
		if err := json.Unmarshal(social, &profile.Social); err != nil {
			return nil, dberr.Wrap(err, "decode_profile_social")
		}
	}

	return profile, nil
}

func (repository *PostgresRepository) FindRoleByID(context context.Context, id string) (sec.UserRole, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.UserAccount.Role, schema.UserAccount.Table, schema.UserAccount.ID)

	var role sec.UserRole
	if err := repository.db.QueryRow(context, query, id).Scan(&role); err != nil {
		return "", dberr.Wrap(err, "find_role_by_id")
	}

	return role, nil
}

func (repository *PostgresRepository) Update(context context.Context, profile *Profile) error {
	social, err := json.Marshal(profile.Social)
	if err != nil {
		return dberr.Wrap(err, "encode_profile_social")
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Name, schema.UserAccount.AvatarURL, schema.UserAccount.Bio,
		schema.UserAccount.Website, schema.UserAccount.Social, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
	)

	tag, err := repository.db.Exec(context, query,
		profile.ID, profile.Name, profile.AvatarURL, profile.Bio, profile.Website, social)
	if err != nil {
		return dberr.Wrap(err, "update_profile")
	}

	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
