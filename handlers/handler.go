package handlers

import (
	"log"

	"gorm.io/gorm"

	"github.com/sellywck/API/auth"
	"github.com/sellywck/API/mailer"
	"github.com/sellywck/API/models"
)

// Handler carries the injected dependencies every request needs: the shared
// connection pool, the token service and the mailer.
type Handler struct {
	DB     *gorm.DB
	Tokens *auth.TokenService
	Mail   mailer.Mailer
}

func New(db *gorm.DB, tokens *auth.TokenService, mail mailer.Mailer) *Handler {
	return &Handler{DB: db, Tokens: tokens, Mail: mail}
}

// sendWelcome fires the welcome email after the account write has committed.
// Failures are logged and never surfaced to the caller.
func (h *Handler) sendWelcome(email string, username string) {
	if h.Mail == nil {
		return
	}
	if err := h.Mail.SendWelcome(email, username); err != nil {
		log.Println("Welcome email failed:", err)
		models.LogError(h.DB, "welcome email to "+email+" failed: "+err.Error())
	}
}
