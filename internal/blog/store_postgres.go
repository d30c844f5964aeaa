// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package blog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftboard/craftboard/internal/platform/database/schema"
	"github.com/craftboard/craftboard/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on the pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed blog repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Insert(context context.Context, post *Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		schema.BlogPost.Table,
		schema.BlogPost.ID, schema.BlogPost.Title, schema.BlogPost.Excerpt,
		schema.BlogPost.Body, schema.BlogPost.Slug, schema.BlogPost.AuthorID,
		schema.BlogPost.Status, schema.BlogPost.CreatedAt, schema.BlogPost.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query,
		post.ID, post.Title, post.Excerpt, post.Body, post.Slug,
		post.Author.ID, post.Status, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_blog_post")
	}

	return nil
}

func (repository *PostgresRepository) ListPublished(context context.Context) ([]Post, error) {
	query := repository.selectJoined(fmt.Sprintf("b.%s = $1", schema.BlogPost.Status))

	rows, err := repository.db.Query(context, query, StatusPublished)
	if err != nil {
		return nil, dberr.Wrap(err, "list_published_posts")
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]Post, error) {
	query := repository.selectJoined("TRUE")

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_all_posts")
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Post, error) {
	query := repository.selectJoined(fmt.Sprintf("b.%s = $1", schema.BlogPost.Slug))

	rows, err := repository.db.Query(context, query, slug)
	if err != nil {
		return nil, dberr.Wrap(err, "find_post_by_slug")
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, dberr.ErrNotFound
	}

	return &posts[0], nil
}

func (repository *PostgresRepository) Update(context context.Context, post *Post) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		schema.BlogPost.Table,
		schema.BlogPost.Title, schema.BlogPost.Excerpt, schema.BlogPost.Body,
		schema.BlogPost.Status, schema.BlogPost.UpdatedAt,
		schema.BlogPost.ID,
	)

	tag, err := repository.db.Exec(context, query,
		post.ID, post.Title, post.Excerpt, post.Body, post.Status, post.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_blog_post")
	}

	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BlogPost.Table, schema.BlogPost.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_blog_post")
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
		SELECT b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
		       a.%s, a.%s, a.%s
		FROM %s b
		JOIN %s a ON b.%s = a.%s
		WHERE %s
		ORDER BY b.%s DESC
	`,
		schema.BlogPost.ID, schema.BlogPost.Title, schema.BlogPost.Excerpt,
		schema.BlogPost.Body, schema.BlogPost.Slug, schema.BlogPost.Status,
		schema.BlogPost.CreatedAt, schema.BlogPost.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.AvatarURL,
		schema.BlogPost.Table, schema.UserAccount.Table,
		schema.BlogPost.AuthorID, schema.UserAccount.ID,
		where,
		schema.BlogPost.CreatedAt,
	)
}

// scanPosts drains author-joined rows into domain entities.
func scanPosts(rows pgx.Rows) ([]Post, error) {
	posts := make([]Post, 0)

	for rows.Next() {
		p := Post{}
		err := rows.Scan(
			&p.ID, &p.Title, &p.Excerpt, &p.Body, &p.Slug, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Name, &p.Author.AvatarURL,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_blog_post")
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_blog_posts")
	}

	return posts, nil
}
