package http

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "portfolio_flash"
	// ContactSentNotice is shown after a contact message was stored.
	ContactSentNotice = "Your message has been sent successfully! I'll get back to you soon."
)

// setFlash stores a one-shot notice for the next page render.
func setFlash(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString([]byte(msg)), 60, "/", "", false, true)
}

// popFlash returns the pending notices and clears the cookie.
func popFlash(c *gin.Context) []string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	msg, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	return []string{string(msg)}
}
