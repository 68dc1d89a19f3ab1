package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
	"github.com/muhammad-hassn/portfolio/internal/portfolio/repository"
)

// AdminHandler exposes CRUD over every stored entity. Contact messages are read-only.
type AdminHandler struct {
	repos *repository.Repositories
}

func NewAdminHandler(repos *repository.Repositories) *AdminHandler {
	return &AdminHandler{repos: repos}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.GET("", h.listCategories)
	categories.POST("", h.createCategory)
	categories.DELETE("/:id", h.deleteCategory)

	projects := rg.Group("/projects")
	projects.GET("", h.listProjects)
	projects.POST("", h.createProject)
	projects.GET("/:id", h.getProject)
	projects.PUT("/:id", h.updateProject)
	projects.DELETE("/:id", h.deleteProject)

	skills := rg.Group("/skills")
	skills.GET("", h.listSkills)
	skills.POST("", h.createSkill)
	skills.PUT("/:id", h.updateSkill)
	skills.DELETE("/:id", h.deleteSkill)

	experiences := rg.Group("/experiences")
	experiences.GET("", h.listExperiences)
	experiences.POST("", h.createExperience)
	experiences.PUT("/:id", h.updateExperience)
	experiences.DELETE("/:id", h.deleteExperience)

	educations := rg.Group("/educations")
	educations.GET("", h.listEducations)
	educations.POST("", h.createEducation)
	educations.PUT("/:id", h.updateEducation)
	educations.DELETE("/:id", h.deleteEducation)

	certifications := rg.Group("/certifications")
	certifications.GET("", h.listCertifications)
	certifications.POST("", h.createCertification)
	certifications.PUT("/:id", h.updateCertification)
	certifications.DELETE("/:id", h.deleteCertification)

	messages := rg.Group("/contact-messages")
	messages.GET("", h.listMessages)
	messages.GET("/:id", h.getMessage)
	messages.DELETE("/:id", h.deleteMessage)
}

// categories

func (h *AdminHandler) listCategories(c *gin.Context) {
	items, err := h.repos.Categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "categories": items})
}

func (h *AdminHandler) createCategory(c *gin.Context) {
	var in domain.Category
	if !bindValid(c, &in) {
		return
	}
	if err := h.repos.Categories.Create(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "category": in})
}

func (h *AdminHandler) deleteCategory(c *gin.Context) {
	h.remove(c, "category", h.repos.Categories.Delete)
}

// projects

func (h *AdminHandler) listProjects(c *gin.Context) {
	items, err := h.repos.Projects.Search(c.Request.Context(), repository.ProjectFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *AdminHandler) getProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.repos.Projects.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *AdminHandler) createProject(c *gin.Context) {
	var in domain.Project
	if !bindValid(c, &in) {
		return
	}
	if err := h.repos.Projects.Create(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": in})
}

func (h *AdminHandler) updateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.Project
	if !bindValid(c, &in) {
		return
	}
	in.ID = id
	if err := h.repos.Projects.Update(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": in})
}

func (h *AdminHandler) deleteProject(c *gin.Context) {
	h.remove(c, "project", h.repos.Projects.Delete)
}

// skills

func (h *AdminHandler) listSkills(c *gin.Context) {
	items, err := h.repos.Skills.ListByCategory(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "skills": items})
}

func (h *AdminHandler) createSkill(c *gin.Context) {
	var in domain.Skill
	if !bindValid(c, &in) {
		return
	}
	if err := h.repos.Skills.Create(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "skill": in})
}

func (h *AdminHandler) updateSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.Skill
	if !bindValid(c, &in) {
		return
	}
	in.ID = id
	if err := h.repos.Skills.Update(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "skill": in})
}

func (h *AdminHandler) deleteSkill(c *gin.Context) {
	h.remove(c, "skill", h.repos.Skills.Delete)
}

// experiences

func (h *AdminHandler) listExperiences(c *gin.Context) {
	filter := repository.ExperienceFilter{Company: c.Query("company")}
	if raw := c.Query("is_current"); raw != "" {
		current, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "is_current must be a boolean"})
			return
		}
		filter.IsCurrent = &current
	}

	items, err := h.repos.Experiences.Search(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "experiences": items})
}

func (h *AdminHandler) createExperience(c *gin.Context) {
	var in domain.Experience
	if !bindValid(c, &in) {
		return
	}
	if err := h.repos.Experiences.Create(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "experience": in})
}

func (h *AdminHandler) updateExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.Experience
	if !bindValid(c, &in) {
		return
	}
	in.ID = id
	if err := h.repos.Experiences.Update(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "experience": in})
}

func (h *AdminHandler) deleteExperience(c *gin.Context) {
	h.remove(c, "experience", h.repos.Experiences.Delete)
}

// educations

func (h *AdminHandler) listEducations(c *gin.Context) {
	items, err := h.repos.Educations.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "educations": items})
}

func (h *AdminHandler) createEducation(c *gin.Context) {
	var in domain.Education
	if !bindValid(c, &in) {
		return
	}
	if err := h.repos.Educations.Create(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "education": in})
}

func (h *AdminHandler) updateEducation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.Education
	if !bindValid(c, &in) {
		return
	}
	in.ID = id
	if err := h.repos.Educations.Update(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "education": in})
}

func (h *AdminHandler) deleteEducation(c *gin.Context) {
	h.remove(c, "education", h.repos.Educations.Delete)
}

// certifications

func (h *AdminHandler) listCertifications(c *gin.Context) {
	items, err := h.repos.Certifications.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "certifications": items})
}

func (h *AdminHandler) createCertification(c *gin.Context) {
	var in domain.Certification
	if !bindValid(c, &in) {
		return
	}
	if err := h.repos.Certifications.Create(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "certification": in})
}

func (h *AdminHandler) updateCertification(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.Certification
	if !bindValid(c, &in) {
		return
	}
	in.ID = id
	if err := h.repos.Certifications.Update(c.Request.Context(), &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "certification": in})
}

func (h *AdminHandler) deleteCertification(c *gin.Context) {
	h.remove(c, "certification", h.repos.Certifications.Delete)
}

// contact messages

func (h *AdminHandler) listMessages(c *gin.Context) {
	items, err := h.repos.Contacts.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contact_messages": items})
}

func (h *AdminHandler) getMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.repos.Contacts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contact_message": m})
}

func (h *AdminHandler) deleteMessage(c *gin.Context) {
	h.remove(c, "contact message", h.repos.Contacts.Delete)
}
