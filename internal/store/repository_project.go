package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository] over the "projects" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database interactions are traced with the request id.
type projectRepository struct {
	*DB
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] backed by db.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *projectRepository) Create(ctx context.Context, project models.Project) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProjectQuery(project)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = p.withRetry(ctx, func() error {
		_, execErr := p.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.Create").
			Str("project_id", project.ID).
			Msg("failed to insert project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProjectsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = p.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = p.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "projectRepository.List").Msg("failed to execute query for listing projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	for rows.Next() {
		project, scanErr := scanProject(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "projectRepository.List").Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, project)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "projectRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return projects, nil
}

func (p *projectRepository) Get(ctx context.Context, id string) (models.Project, error) {
	query, args, err := buildGetProjectQuery(id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryOne(ctx, "projectRepository.Get", id, query, args)
}

func (p *projectRepository) UpdateMetadata(ctx context.Context, id string, meta models.ProjectMetadata) (models.Project, error) {
	query, args, err := buildUpdateProjectMetadataQuery(id, meta)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryOne(ctx, "projectRepository.UpdateMetadata", id, query, args)
}

func (p *projectRepository) Delete(ctx context.Context, id string) (models.Project, error) {
	query, args, err := buildDeleteProjectQuery(id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryOne(ctx, "projectRepository.Delete", id, query, args)
}

func (p *projectRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := buildCountProjectsQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.count(ctx, "projectRepository.Count", query, args)
}

func (p *projectRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	query, args, err := buildCountProjectsSinceQuery(since)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.count(ctx, "projectRepository.CountSince", query, args)
}

func (p *projectRepository) ListMediaKeys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMediaKeysQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.ListMediaKeys").Msg("failed to execute query for media keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, 32)
	for rows.Next() {
		var videoKey, thumbnailKey string
		if scanErr := rows.Scan(&videoKey, &thumbnailKey); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		keys = append(keys, videoKey)
		if thumbnailKey != "" {
			keys = append(keys, thumbnailKey)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return keys, nil
}

func (p *projectRepository) queryOne(ctx context.Context, fn, id, query string, args []any) (models.Project, error) {
	log := logger.FromContext(ctx)

	var project models.Project
	err := p.withRetry(ctx, func() error {
		var scanErr error
		project, scanErr = scanProject(p.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Str("project_id", id).Msg("failed to query project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}

func (p *projectRepository) count(ctx context.Context, fn, query string, args []any) (int64, error) {
	var n int64
	err := p.withRetry(ctx, func() error {
		return p.DB.QueryRowContext(ctx, query, args...).Scan(&n)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to count projects")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Category,
		&project.VideoKey,
		&project.ThumbnailKey,
		&project.CreatedAt,
	)
	return project, err
}
