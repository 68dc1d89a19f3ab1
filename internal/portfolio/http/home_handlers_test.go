package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammad-hassn/portfolio/internal/githubapi"
	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
	portfoliohttp "github.com/muhammad-hassn/portfolio/internal/portfolio/http"
	"github.com/muhammad-hassn/portfolio/internal/portfolio/service"
	"github.com/muhammad-hassn/portfolio/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeHomeService struct {
	home      *service.HomeContext
	buildErr  error
	submitErr error
	submitted []service.ContactForm
}

func (f *fakeHomeService) BuildHomeContext(context.Context) (*service.HomeContext, error) {
	return f.home, f.buildErr
}

func (f *fakeHomeService) SubmitContact(_ context.Context, form service.ContactForm) (*domain.ContactMessage, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, form)
	return &domain.ContactMessage{
		ID: int64(len(f.submitted)), Name: form.Name, Email: form.Email,
		Subject: form.Subject, Message: form.Message, CreatedAt: time.Now(),
	}, nil
}

func newHomeRouter(t *testing.T, svc portfoliohttp.HomeService) *gin.Engine {
	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	portfoliohttp.NewHomeHandler(svc).Register(r)
	return r
}

func sampleHome() *service.HomeContext {
	git := "https://github.com/octocat/chatbot"
	lang := "Go"
	end := domain.NewDate(2023, time.June, 1)
	return &service.HomeContext{
		Projects: []domain.Project{{ID: 1, Title: "Chatbot", GitLink: &git, Categories: []string{"AI/ML"}}},
		GitHubRepos: []githubapi.Repository{
			{Name: "portfolio", HTMLURL: "https://github.com/octocat/portfolio", Language: &lang},
		},
		SkillsByCategory: domain.GroupByCategory([]domain.Skill{{Name: "Python", Category: "Language", Proficiency: 90}}),
		Experiences: []domain.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: domain.NewDate(2024, time.January, 1), IsCurrent: true},
			{Title: "Intern", Company: "Initech", StartDate: domain.NewDate(2023, time.January, 1), EndDate: &end},
		},
		Educations:     []domain.Education{{Degree: "BS Computer Science", StartYear: "2021", EndYear: "Present"}},
		Certifications: []domain.Certification{{Title: "Deep Learning", IssuedBy: "Coursera"}},
	}
}

func TestHomePage_Renders(t *testing.T) {
	r := newHomeRouter(t, &fakeHomeService{home: sampleHome()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Chatbot")
	assert.Contains(t, body, "https://github.com/octocat/chatbot")
	assert.Contains(t, body, "https://github.com/octocat/portfolio")
	assert.Contains(t, body, "Python")
	assert.Contains(t, body, "2023-06-01")
	assert.Contains(t, body, "BS Computer Science")
	assert.Contains(t, body, "Deep Learning")
	assert.NotContains(t, body, "alert-success")
}

func TestHomePage_StoreFailureIs500(t *testing.T) {
	r := newHomeRouter(t, &fakeHomeService{buildErr: errors.New("db down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestContactSubmission_RedirectsWithNotice(t *testing.T) {
	svc := &fakeHomeService{home: sampleHome()}
	r := newHomeRouter(t, svc)

	form := url.Values{"name": {"Jane"}, "email": {"jane@x.com"}, "subject": {"Hi"}, "message": {"Hello"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.Len(t, svc.submitted, 1)
	assert.Equal(t, service.ContactForm{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"}, svc.submitted[0])
	assert.NotContains(t, w.Body.String(), "Chatbot")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	follow := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		follow.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, follow)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your message has been sent successfully!")
}

func TestContactSubmission_MissingFields(t *testing.T) {
	svc := &fakeHomeService{}
	r := newHomeRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Only"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Len(t, svc.submitted, 1)
	assert.Equal(t, service.ContactForm{Name: "Only"}, svc.submitted[0])
}

func TestContactSubmission_StoreFailureIs500(t *testing.T) {
	r := newHomeRouter(t, &fakeHomeService{submitErr: errors.New("db down")})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Jane"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestHomeJSON(t *testing.T) {
	r := newHomeRouter(t, &fakeHomeService{home: sampleHome()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/home", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK   bool                       `json:"ok"`
		Home map[string]json.RawMessage `json:"home"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	for _, key := range []string{"projects", "github_repos", "skills_by_category", "experiences", "educations", "certifications"} {
		assert.Contains(t, resp.Home, key)
	}
}
