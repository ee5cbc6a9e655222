package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/rexora-cms/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var projectColumns = []string{
	"id",
	"title",
	"description",
	"category",
	"video_key",
	"thumbnail_key",
	"created_at",
}

var reviewColumns = []string{
	"id",
	"client_name",
	"review_text",
	"star_rating",
	"created_at",
}

var settingsColumns = []string{
	"logo",
	"hero_title",
	"hero_tagline",
	"about_title",
	"about_text_1",
	"about_text_2",
	"services",
	"stats",
	"instagram_url",
	"contact_email",
	"version",
}

func buildInsertProjectQuery(p models.Project) (string, []any, error) {
	return psql.Insert(models.Project{}.TableName()).
		Columns(projectColumns...).
		Values(p.ID, p.Title, p.Description, p.Category, p.VideoKey, p.ThumbnailKey, p.CreatedAt).
		ToSql()
}

// buildListProjectsQuery orders newest first; ties are broken by id so the
// order is stable.
func buildListProjectsQuery() (string, []any, error) {
	return psql.Select(projectColumns...).
		From(models.Project{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildGetProjectQuery(id string) (string, []any, error) {
	return psql.Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateProjectMetadataQuery never touches video_key or thumbnail_key.
func buildUpdateProjectMetadataQuery(id string, meta models.ProjectMetadata) (string, []any, error) {
	return psql.Update(models.Project{}.TableName()).
		Set("title", meta.Title).
		Set("description", meta.Description).
		Set("category", meta.Category).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		ToSql()
}

func buildDeleteProjectQuery(id string) (string, []any, error) {
	return psql.Delete(models.Project{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		ToSql()
}

func buildCountProjectsQuery() (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(models.Project{}.TableName()).
		ToSql()
}

func buildCountProjectsSinceQuery(since time.Time) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(models.Project{}.TableName()).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
}

func buildListMediaKeysQuery() (string, []any, error) {
	return psql.Select("video_key", "thumbnail_key").
		From(models.Project{}.TableName()).
		ToSql()
}

func buildGetSettingsQuery() (string, []any, error) {
	return psql.Select(settingsColumns...).
		From(models.SiteSettings{}.TableName()).
		Where(sq.Eq{"id": models.SiteSettingsID}).
		ToSql()
}

// buildInsertSettingsQuery creates the single settings row. ON CONFLICT DO
// NOTHING makes a concurrent first write lose instead of failing.
func buildInsertSettingsQuery(s models.SiteSettings, services, stats []byte) (string, []any, error) {
	return psql.Insert(models.SiteSettings{}.TableName()).
		Columns(append([]string{"id"}, settingsColumns...)...).
		Values(
			models.SiteSettingsID,
			s.Logo, s.HeroTitle, s.HeroTagline, s.AboutTitle, s.AboutText1, s.AboutText2,
			services, stats, s.InstagramURL, s.ContactEmail, int64(1),
		).
		Suffix("ON CONFLICT (id) DO NOTHING RETURNING version").
		ToSql()
}

// buildReplaceSettingsQuery overwrites the whole document and bumps the
// version. A positive expectedVersion turns the statement into a
// compare-and-swap.
func buildReplaceSettingsQuery(s models.SiteSettings, services, stats []byte, expectedVersion int64) (string, []any, error) {
	where := sq.And{sq.Eq{"id": models.SiteSettingsID}}
	if expectedVersion > 0 {
		where = append(where, sq.Eq{"version": expectedVersion})
	}

	return psql.Update(models.SiteSettings{}.TableName()).
		Set("logo", s.Logo).
		Set("hero_title", s.HeroTitle).
		Set("hero_tagline", s.HeroTagline).
		Set("about_title", s.AboutTitle).
		Set("about_text_1", s.AboutText1).
		Set("about_text_2", s.AboutText2).
		Set("services", services).
		Set("stats", stats).
		Set("instagram_url", s.InstagramURL).
		Set("contact_email", s.ContactEmail).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(where).
		Suffix("RETURNING version").
		ToSql()
}

func buildInsertReviewQuery(r models.Review) (string, []any, error) {
	return psql.Insert(models.Review{}.TableName()).
		Columns(reviewColumns...).
		Values(r.ID, r.ClientName, r.ReviewText, r.StarRating, r.CreatedAt).
		ToSql()
}

func buildListReviewsQuery() (string, []any, error) {
	return psql.Select(reviewColumns...).
		From(models.Review{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildGetReviewQuery(id string) (string, []any, error) {
	return psql.Select(reviewColumns...).
		From(models.Review{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateReviewQuery(r models.Review) (string, []any, error) {
	return psql.Update(models.Review{}.TableName()).
		Set("client_name", r.ClientName).
		Set("review_text", r.ReviewText).
		Set("star_rating", r.StarRating).
		Where(sq.Eq{"id": r.ID}).
		ToSql()
}

func buildDeleteReviewQuery(id string) (string, []any, error) {
	return psql.Delete(models.Review{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
