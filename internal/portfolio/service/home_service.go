// Package service assembles the home page from stored records and the
// cached list of GitHub repositories.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhammad-hassn/portfolio/internal/cache"
	"github.com/muhammad-hassn/portfolio/internal/githubapi"
	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
	"github.com/muhammad-hassn/portfolio/internal/portfolio/repository"
)

const (
	// GitHubReposCacheKey holds the JSON array returned by the last successful fetch.
	GitHubReposCacheKey = "github_repos"
	GitHubReposTTL      = time.Hour
	// DisplayedRepoLimit caps what the page shows; the cache may hold more.
	DisplayedRepoLimit = 10
)

type RepoFetcher interface {
	ListRecentRepos(ctx context.Context) ([]githubapi.Repository, error)
}

type ProjectLister interface {
	List(ctx context.Context) ([]domain.Project, error)
}

type SkillLister interface {
	List(ctx context.Context) ([]domain.Skill, error)
}

type ExperienceLister interface {
	List(ctx context.Context) ([]domain.Experience, error)
}

type EducationLister interface {
	List(ctx context.Context) ([]domain.Education, error)
}

type CertificationLister interface {
	List(ctx context.Context) ([]domain.Certification, error)
}

type ContactCreator interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
}

// HomeStores are the record sources read by the home page.
type HomeStores struct {
	Projects       ProjectLister
	Skills         SkillLister
	Experiences    ExperienceLister
	Educations     EducationLister
	Certifications CertificationLister
	Contacts       ContactCreator
}

// StoresFrom adapts the SQL repositories.
func StoresFrom(r *repository.Repositories) HomeStores {
	return HomeStores{
		Projects:       r.Projects,
		Skills:         r.Skills,
		Experiences:    r.Experiences,
		Educations:     r.Educations,
		Certifications: r.Certifications,
		Contacts:       r.Contacts,
	}
}

// HomeContext is everything the home template renders.
type HomeContext struct {
	Projects         []domain.Project          `json:"projects"`
	GitHubRepos      []githubapi.Repository    `json:"github_repos"`
	SkillsByCategory map[string][]domain.Skill `json:"skills_by_category"`
	Experiences      []domain.Experience       `json:"experiences"`
	Educations       []domain.Education        `json:"educations"`
	Certifications   []domain.Certification    `json:"certifications"`
}

// Data exposes the context under the template keys.
func (h *HomeContext) Data() map[string]any {
	return map[string]any{
		"projects":           h.Projects,
		"github_repos":       h.GitHubRepos,
		"skills_by_category": h.SkillsByCategory,
		"experiences":        h.Experiences,
		"educations":         h.Educations,
		"certifications":     h.Certifications,
	}
}

// ContactForm carries the submitted fields as-is. Missing fields are empty strings.
type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

type HomeService struct {
	stores HomeStores
	cache  cache.Cache
	github RepoFetcher
}

func NewHomeService(stores HomeStores, c cache.Cache, github RepoFetcher) *HomeService {
	return &HomeService{stores: stores, cache: c, github: github}
}

// BuildHomeContext reads every section of the page. Store errors are
// returned; a failed GitHub fetch only yields an empty repository list.
func (s *HomeService) BuildHomeContext(ctx context.Context) (*HomeContext, error) {
	projects, err := s.stores.Projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	repos := s.recentRepos(ctx)

	skills, err := s.stores.Skills.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	experiences, err := s.stores.Experiences.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	educations, err := s.stores.Educations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list educations: %w", err)
	}
	certifications, err := s.stores.Certifications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}

	return &HomeContext{
		Projects:         projects,
		GitHubRepos:      repos,
		SkillsByCategory: domain.GroupByCategory(skills),
		Experiences:      experiences,
		Educations:       educations,
		Certifications:   certifications,
	}, nil
}

// SubmitContact stores one contact message. The database assigns CreatedAt.
func (s *HomeService) SubmitContact(ctx context.Context, form ContactForm) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := s.stores.Contacts.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}

	zerolog.Ctx(ctx).Info().Int64("contact_id", m.ID).Msg("contact message saved")
	return m, nil
}

// recentRepos serves the cached list when present. On a miss it fetches once
// and caches only a successful result, so a failure is retried by the next request.
func (s *HomeService) recentRepos(ctx context.Context) []githubapi.Repository {
	log := zerolog.Ctx(ctx)

	raw, err := s.cache.Get(ctx, GitHubReposCacheKey)
	switch {
	case err == nil:
		var cached []githubapi.Repository
		decodeErr := json.Unmarshal(raw, &cached)
		if decodeErr == nil {
			return displayed(cached)
		}
		log.Warn().Err(decodeErr).Str("key", GitHubReposCacheKey).Msg("ignoring undecodable cache entry")
	case !errors.Is(err, cache.ErrMiss):
		log.Warn().Err(err).Str("key", GitHubReposCacheKey).Msg("cache unavailable, fetching")
	}

	repos, err := s.github.ListRecentRepos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("github fetch failed, rendering without repositories")
		return []githubapi.Repository{}
	}

	payload, err := json.Marshal(repos)
	if err == nil {
		err = s.cache.Set(ctx, GitHubReposCacheKey, payload, GitHubReposTTL)
	}
	if err != nil {
		log.Warn().Err(err).Str("key", GitHubReposCacheKey).Msg("could not cache repositories")
	}
	return displayed(repos)
}

func displayed(repos []githubapi.Repository) []githubapi.Repository {
	n := min(len(repos), DisplayedRepoLimit)
	out := make([]githubapi.Repository, n)
	copy(out, repos[:n])
	return out
}
