package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsRowColumns = []string{
	"logo", "hero_title", "hero_tagline", "about_title", "about_text_1", "about_text_2",
	"services", "stats", "instagram_url", "contact_email", "version",
}

func newTestSettingsRepo(t *testing.T) (SettingsRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewSettingsRepository(newDBFromSQL(db), logger.Nop()), mock
}

// ── Get ──

func TestSettingsRepository_Get(t *testing.T) {
	t.Run("decodes jsonb sections", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT logo, hero_title, hero_tagline, about_title, about_text_1, about_text_2, services, stats, instagram_url, contact_email, version FROM site_settings WHERE id = $1`)).
			WithArgs(models.SiteSettingsID).
			WillReturnRows(sqlmock.NewRows(settingsRowColumns).AddRow(
				"/api/media/logo.png", "Hero", "Tag", "About", "One", "Two",
				[]byte(`[{"icon":"Film","title":"Edit","description":"Cuts"}]`),
				[]byte(`[{"icon":"Award","value":"10+","label":"Years"}]`),
				"https://instagram.com/x", "hi@example.com", int64(3),
			))

		got, err := repo.Get(testContext())
		require.NoError(t, err)
		assert.Equal(t, "Hero", got.HeroTitle)
		require.Len(t, got.Services, 1)
		assert.Equal(t, models.IconFilm, got.Services[0].Icon)
		require.Len(t, got.Stats, 1)
		assert.Equal(t, "10+", got.Stats[0].Value)
		assert.EqualValues(t, 3, got.Version)
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery("FROM site_settings").
			WillReturnRows(sqlmock.NewRows(settingsRowColumns))

		_, err := repo.Get(testContext())
		assert.ErrorIs(t, err, ErrSettingsNotFound)
	})

	t.Run("stored icon no longer known", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery("FROM site_settings").
			WillReturnRows(sqlmock.NewRows(settingsRowColumns).AddRow(
				"", "", "", "", "", "",
				[]byte(`[{"icon":"Rocket","title":"x","description":"y"}]`),
				[]byte(`[]`), "", "", int64(1),
			))

		_, err := repo.Get(testContext())
		assert.ErrorIs(t, err, ErrEncodingColumn)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery("FROM site_settings").WillReturnError(errors.New("down"))

		_, err := repo.Get(testContext())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

// ── Replace ──

func TestSettingsRepository_Replace(t *testing.T) {
	doc := models.DefaultSiteSettings()

	t.Run("update without expected version bumps version", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE site_settings SET logo = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(8)))

		got, err := repo.Replace(testContext(), doc, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 8, got.Version)
		assert.Equal(t, doc.HeroTitle, got.HeroTitle)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expected version is part of the where clause", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE (id = $11 AND version = $12) RETURNING version`)).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(5)))

		got, err := repo.Replace(testContext(), doc, 4)
		require.NoError(t, err)
		assert.EqualValues(t, 5, got.Version)
	})

	t.Run("version mismatch", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery("UPDATE site_settings").
			WillReturnRows(sqlmock.NewRows([]string{"version"}))

		_, err := repo.Replace(testContext(), doc, 4)
		assert.ErrorIs(t, err, ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first write inserts the row", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery("UPDATE site_settings").
			WillReturnRows(sqlmock.NewRows([]string{"version"}))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO site_settings (id,logo,`)).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(1)))

		got, err := repo.Replace(testContext(), doc, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, got.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent first write", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery("UPDATE site_settings").
			WillReturnRows(sqlmock.NewRows([]string{"version"}))
		mock.ExpectQuery("INSERT INTO site_settings").
			WillReturnRows(sqlmock.NewRows([]string{"version"}))

		_, err := repo.Replace(testContext(), doc, 0)
		assert.ErrorIs(t, err, ErrVersionConflict)
	})

	t.Run("update error", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectQuery("UPDATE site_settings").WillReturnError(errors.New("down"))

		_, err := repo.Replace(testContext(), doc, 0)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}
