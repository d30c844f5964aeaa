// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package project

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftboard/craftboard/internal/platform/database/schema"
	"github.com/craftboard/craftboard/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on the pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed project repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Insert(context context.Context, project *Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		schema.Project.Table,
		schema.Project.ID, schema.Project.Title, schema.Project.Description,
		schema.Project.ImageURL, schema.Project.ProjectURL, schema.Project.Categories,
		schema.Project.AuthorID, schema.Project.Status, schema.Project.Featured,
		schema.Project.Likes, schema.Project.Comments, schema.Project.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		project.ID, project.Title, project.Description,
		project.ImageURL, project.ProjectURL, project.Categories,
		project.Author.ID, project.Status, project.Featured,
		project.Likes, project.Comments, project.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_project")
	}

	return nil
}

func (repository *PostgresRepository) ListApproved(context context.Context) ([]Project, error) {
	query := repository.selectJoined(fmt.Sprintf("p.%s = $1", schema.Project.Status))

	rows, err := repository.db.Query(context, query, StatusApproved)
	if err != nil {
		return nil, dberr.Wrap(err, "list_approved_projects")
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (repository *PostgresRepository) ListFeatured(context context.Context, limit int) ([]Project, error) {
	query := repository.selectJoined(fmt.Sprintf("p.%s = $1 AND p.%s = TRUE",
		schema.Project.Status, schema.Project.Featured)) + " LIMIT $2"

	rows, err := repository.db.Query(context, query, StatusApproved, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_featured_projects")
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (repository *PostgresRepository) ListPending(context context.Context) ([]Project, error) {
	query := repository.selectJoined(fmt.Sprintf("p.%s = $1", schema.Project.Status))

	rows, err := repository.db.Query(context, query, StatusPending)
	if err != nil {
		return nil, dberr.Wrap(err, "list_pending_projects")
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id string, status Status, featured bool, approvedAt *time.Time) error {
	// Scoped to still-pending rows: a second review of the same project is a
	// NotFound, never a silent overwrite of a terminal state.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1 AND %s = $5
	`,
		schema.Project.Table,
		schema.Project.Status, schema.Project.Featured, schema.Project.ApprovedAt,
		schema.Project.ID, schema.Project.Status,
	)

	tag, err := repository.db.Exec(context, query, id, status, featured, approvedAt, StatusPending)
	if err != nil {
		return dberr.Wrap(err, "update_project_status")
	}

	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Project.Table, schema.Project.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_project")
	}

	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// selectJoined builds the author-joined SELECT with the given WHERE clause,
// ordered newest-first.
func (repository *PostgresRepository) selectJoined(where string) string {
	return fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
		       a.%s, a.%s, a.%s
		FROM %s p
		JOIN %s a ON p.%s = a.%s
		WHERE %s
		ORDER BY p.%s DESC
	`,
		schema.Project.ID, schema.Project.Title, schema.Project.Description,
		schema.Project.ImageURL, schema.Project.ProjectURL, schema.Project.Categories,
		schema.Project.Status, schema.Project.Featured, schema.Project.Likes,
		schema.Project.Comments, schema.Project.CreatedAt, schema.Project.ApprovedAt,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.AvatarURL,
		schema.Project.Table, schema.UserAccount.Table,
		schema.Project.AuthorID, schema.UserAccount.ID,
		where,
		schema.Project.CreatedAt,
	)
}

// scanProjects drains author-joined rows into domain entities.
func scanProjects(rows pgx.Rows) ([]Project, error) {
	projects := make([]Project, 0)

	for rows.Next() {
		p := Project{}
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectURL,
			&p.Categories, &p.Status, &p.Featured, &p.Likes, &p.Comments,
			&p.CreatedAt, &p.ApprovedAt,
			&p.Author.ID, &p.Author.Name, &p.Author.AvatarURL,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_project")
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_projects")
	}

	return projects, nil
}
