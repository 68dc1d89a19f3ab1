// Package http serves the portfolio page, its JSON view and the admin API.
package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/muhammad-hassn/portfolio/internal/portfolio/domain"
	"github.com/muhammad-hassn/portfolio/internal/portfolio/service"
)

// HomeTemplate is the template name rendered for GET /.
const HomeTemplate = "index.html"

type HomeService interface {
	BuildHomeContext(ctx context.Context) (*service.HomeContext, error)
	SubmitContact(ctx context.Context, form service.ContactForm) (*domain.ContactMessage, error)
}

type HomeHandler struct {
	svc HomeService
}

func NewHomeHandler(svc HomeService) *HomeHandler {
	return &HomeHandler{svc: svc}
}

func (h *HomeHandler) Register(r gin.IRouter) {
	r.GET("/", h.page)
	r.POST("/", h.contact)
	r.GET("/api/v1/home", h.homeJSON)
}

func (h *HomeHandler) page(c *gin.Context) {
	home, err := h.svc.BuildHomeContext(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("build home page")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	data := home.Data()
	data["messages"] = popFlash(c)
	c.HTML(http.StatusOK, HomeTemplate, data)
}

// contact stores the submission and redirects back so a refresh does not resend it.
func (h *HomeHandler) contact(c *gin.Context) {
	var form service.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	if _, err := h.svc.SubmitContact(c.Request.Context(), form); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("submit contact form")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	setFlash(c, ContactSentNotice)
	c.Redirect(http.StatusFound, "/")
}

func (h *HomeHandler) homeJSON(c *gin.Context) {
	home, err := h.svc.BuildHomeContext(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("build home json")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "home": home})
}
