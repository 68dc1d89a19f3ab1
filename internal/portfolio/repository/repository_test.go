package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
	"github.com/muhammad-hassn/portfolio/internal/portfolio/repository"
)

func setupRepos(t *testing.T) (*repository.Repositories, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewRepositories(db), mock
}

var projectColumns = []string{"id", "title", "description", "image", "git_link", "live_link", "date_created", "categories"}

func TestProjectRepository_List(t *testing.T) {
	repos, mock := setupRepos(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT p.id, p.title.*ORDER BY p.date_created DESC, p.id DESC`).
		WithArgs("", "").
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(int64(2), "Chatbot", "LLM bot", "projects/bot.png", "https://github.com/x/bot", nil,
				time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), "{AI/ML,Web Development}").
			AddRow(int64(1), "Blog", "", "", nil, nil,
				time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "{}"))

	projects, err := repos.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, "Chatbot", projects[0].Title)
	require.NotNil(t, projects[0].GitLink)
	assert.Equal(t, "https://github.com/x/bot", *projects[0].GitLink)
	assert.Nil(t, projects[0].LiveLink)
	assert.Equal(t, []string{"AI/ML", "Web Development"}, projects[0].Categories)
	assert.Equal(t, domain.NewDate(2026, time.May, 1), projects[0].DateCreated)

	assert.Equal(t, []string{}, projects[1].Categories)
	assert.Nil(t, projects[1].GitLink)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_SearchPassesFilter(t *testing.T) {
	repos, mock := setupRepos(t)

	mock.ExpectQuery(`ILIKE`).
		WithArgs("bot", "AI/ML").
		WillReturnRows(sqlmock.NewRows(projectColumns))

	projects, err := repos.Projects.Search(context.Background(), repository.ProjectFilter{Query: " bot ", Category: "AI/ML"})
	require.NoError(t, err)
	assert.Empty(t, projects)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Create(t *testing.T) {
	repos, mock := setupRepos(t)

	p := &domain.Project{
		Title:      "Portfolio",
		Categories: []string{"Web Development", " Web Development ", ""},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO projects`).
		WithArgs("Portfolio", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date_created"}).
			AddRow(int64(10), time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))
	mock.ExpectQuery(`INSERT INTO categories`).
		WithArgs("Web Development").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec(`INSERT INTO project_categories`).
		WithArgs(int64(10), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repos.Projects.Create(context.Background(), p))
	assert.Equal(t, int64(10), p.ID)
	assert.Equal(t, domain.NewDate(2026, time.October, 18), p.DateCreated)
	assert.Equal(t, []string{"Web Development"}, p.Categories)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_UpdateMissingRollsBack(t *testing.T) {
	repos, mock := setupRepos(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE projects`).
		WillReturnRows(sqlmock.NewRows([]string{"date_created"}))
	mock.ExpectRollback()

	err := repos.Projects.Update(context.Background(), &domain.Project{ID: 99, Title: "Gone"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillRepository(t *testing.T) {
	t.Run("list keeps insertion order", func(t *testing.T) {
		repos, mock := setupRepos(t)

		mock.ExpectQuery(`SELECT id, name, category, proficiency FROM skills`).
			WithArgs("").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "proficiency"}).
				AddRow(int64(1), "Python", "Language", 90).
				AddRow(int64(2), "SQL", "Language", 85).
				AddRow(int64(3), "Django", "Framework", 90))

		skills, err := repos.Skills.List(context.Background())
		require.NoError(t, err)
		require.Len(t, skills, 3)
		assert.Equal(t, "Python", skills[0].Name)
		assert.Equal(t, 85, skills[1].Proficiency)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update of unknown id", func(t *testing.T) {
		repos, mock := setupRepos(t)

		mock.ExpectQuery(`UPDATE skills`).
			WithArgs(int64(42), "Go", "Language", 80).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := repos.Skills.Update(context.Background(), &domain.Skill{ID: 42, Name: "Go", Category: "Language", Proficiency: 80})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("check violation is invalid input", func(t *testing.T) {
		repos, mock := setupRepos(t)

		mock.ExpectQuery(`INSERT INTO skills`).
			WillReturnError(&pq.Error{Code: "23514", Message: "violates check constraint"})

		err := repos.Skills.Create(context.Background(), &domain.Skill{Name: "Go", Category: "Language", Proficiency: 101})
		assert.ErrorIs(t, err, domain.ErrInvalid)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete reports missing rows", func(t *testing.T) {
		repos, mock := setupRepos(t)

		mock.ExpectExec(`DELETE FROM skills`).
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repos.Skills.Delete(context.Background(), 9)
		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepository_CreateDuplicate(t *testing.T) {
	repos, mock := setupRepos(t)

	mock.ExpectQuery(`INSERT INTO categories`).
		WithArgs("Web").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

	err := repos.Categories.Create(context.Background(), &domain.Category{Name: " Web "})
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExperienceRepository(t *testing.T) {
	columns := []string{"id", "title", "company", "location", "description", "start_date", "end_date", "is_current"}

	t.Run("list scans nullable end date", func(t *testing.T) {
		repos, mock := setupRepos(t)

		mock.ExpectQuery(`FROM experiences .* ORDER BY start_date DESC`).
			WithArgs("", nil).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(2), "Engineer", "Acme", "Remote", "", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil, true).
				AddRow(int64(1), "Intern", "Initech", "Karachi, Pakistan", "", time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC), false))

		items, err := repos.Experiences.List(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, items[0].IsCurrent)
		assert.Nil(t, items[0].EndDate)
		require.NotNil(t, items[1].EndDate)
		assert.Equal(t, domain.NewDate(2022, time.September, 1), *items[1].EndDate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search by current flag", func(t *testing.T) {
		repos, mock := setupRepos(t)
		current := true

		mock.ExpectQuery(`FROM experiences`).
			WithArgs("acme", true).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repos.Experiences.Search(context.Background(), repository.ExperienceFilter{Company: "acme", IsCurrent: &current})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create fills default location", func(t *testing.T) {
		repos, mock := setupRepos(t)
		e := &domain.Experience{Title: "Dev", Company: "Acme", StartDate: domain.NewDate(2024, time.January, 1), IsCurrent: true}

		mock.ExpectQuery(`INSERT INTO experiences`).
			WithArgs("Dev", "Acme", domain.DefaultExperienceLocation, "", sqlmock.AnyArg(), nil, true).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

		require.NoError(t, repos.Experiences.Create(context.Background(), e))
		assert.Equal(t, int64(5), e.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCertificationRepository_List(t *testing.T) {
	repos, mock := setupRepos(t)

	mock.ExpectQuery(`ORDER BY date_issued DESC NULLS FIRST`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "issued_by", "link", "date_issued"}).
			AddRow(int64(1), "Deep Learning", "Coursera", nil, nil).
			AddRow(int64(2), "Python", "Udemy", "https://example.com/c/2", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))

	certs, err := repos.Certifications.List(context.Background())
	require.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Nil(t, certs[0].DateIssued)
	assert.Nil(t, certs[0].Link)
	require.NotNil(t, certs[1].DateIssued)
	assert.Equal(t, "2024-02-10", certs[1].DateIssued.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEducationRepository_List(t *testing.T) {
	repos, mock := setupRepos(t)

	mock.ExpectQuery(`ORDER BY start_year DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "degree", "school", "description", "start_year", "end_year"}).
			AddRow(int64(1), "BS Computer Science", "FAST", "", "2021", "Present"))

	items, err := repos.Educations.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Present", items[0].EndYear)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository(t *testing.T) {
	t.Run("create returns database timestamp", func(t *testing.T) {
		repos, mock := setupRepos(t)
		created := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

		mock.ExpectQuery(`INSERT INTO contact_messages`).
			WithArgs("Jane", "jane@x.com", "Hi", "Hello").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

		m := &domain.ContactMessage{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"}
		require.NoError(t, repos.Contacts.Create(context.Background(), m))
		assert.Equal(t, int64(1), m.ID)
		assert.Equal(t, created, m.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get missing", func(t *testing.T) {
		repos, mock := setupRepos(t)

		mock.ExpectQuery(`FROM contact_messages`).
			WithArgs(int64(3)).
			WillReturnError(sql.ErrNoRows)

		_, err := repos.Contacts.Get(context.Background(), 3)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver errors are wrapped", func(t *testing.T) {
		repos, mock := setupRepos(t)
		boom := errors.New("connection reset")

		mock.ExpectQuery(`FROM contact_messages`).WillReturnError(boom)

		_, err := repos.Contacts.List(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "list contact messages")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
