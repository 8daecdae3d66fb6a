package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/session"
)

const (
	ContextPhysician = "physician"
	ContextSession   = "session"
)

// SessionAuth liga o cookie assinado à sessão guardada no servidor.
type SessionAuth struct {
	store      session.Store
	codec      *session.CookieCodec
	physicians physician.Repository
	ttl        time.Duration
	secure     bool
	log        zerolog.Logger
}

func NewSessionAuth(
	store session.Store,
	codec *session.CookieCodec,
	physicians physician.Repository,
	ttl time.Duration,
	secure bool,
	log zerolog.Logger,
) *SessionAuth {
	return &SessionAuth{
		store:      store,
		codec:      codec,
		physicians: physicians,
		ttl:        ttl,
		secure:     secure,
		log:        log,
	}
}

// RequirePhysician protege as páginas HTML: sem sessão válida, volta ao login.
func (a *SessionAuth) RequirePhysician() gin.HandlerFunc {
	return a.require(func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	})
}

// RequirePhysicianAPI é a variante JSON, responde 401.
func (a *SessionAuth) RequirePhysicianAPI() gin.HandlerFunc {
	return a.require(func(c *gin.Context) {
		httperr.Abort(c, http.StatusUnauthorized, "unauthenticated", "Sessão expirada. Faça login novamente.")
	})
}

func (a *SessionAuth) require(deny gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := a.current(c)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) && !errors.Is(err, session.ErrInvalidCookie) {
				a.log.Error().Err(err).Msg("load session")
			}
			a.clearCookie(c)
			deny(c)
			return
		}

		doc, err := a.physicians.FindByID(c.Request.Context(), sess.PhysicianID)
		if err != nil {
			if !errors.Is(err, physician.ErrNotFound) {
				a.log.Error().Err(err).Uint("physician_id", sess.PhysicianID).Msg("load session physician")
				httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Erro interno.")
				return
			}

			// médico removido: a sessão não vale mais
			if err := a.store.Delete(c.Request.Context(), sess.ID); err != nil {
				a.log.Warn().Err(err).Msg("delete stale session")
			}
			a.clearCookie(c)
			deny(c)
			return
		}

		c.Set(ContextSession, sess)
		c.Set(ContextPhysician, doc)
		c.Next()
	}
}

// Start abre uma nova sessão para o médico, descartando a anterior.
func (a *SessionAuth) Start(c *gin.Context, physicianID uint) error {
	a.End(c)

	sess, err := a.store.Create(c.Request.Context(), physicianID, a.ttl)
	if err != nil {
		return err
	}

	value, err := a.codec.Encode(sess)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, value, int(a.ttl.Seconds()), "/", "", a.secure, true)
	return nil
}

// End remove a sessão atual, se houver, e limpa o cookie. Devolve a
// sessão encerrada ou nil.
func (a *SessionAuth) End(c *gin.Context) *session.Session {
	sess, err := a.current(c)
	if err == nil {
		if err := a.store.Delete(c.Request.Context(), sess.ID); err != nil {
			a.log.Warn().Err(err).Msg("delete session")
		}
	}
	a.clearCookie(c)

	if err != nil {
		return nil
	}
	return sess
}

func (a *SessionAuth) current(c *gin.Context) (*session.Session, error) {
	value, err := c.Cookie(session.CookieName)
	if err != nil || value == "" {
		return nil, session.ErrNotFound
	}

	id, err := a.codec.Decode(value)
	if err != nil {
		return nil, err
	}

	return a.store.Get(c.Request.Context(), id)
}

func (a *SessionAuth) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", a.secure, true)
}

// CurrentPhysician devolve o médico carregado por RequirePhysician.
func CurrentPhysician(c *gin.Context) *models.Physician {
	return c.MustGet(ContextPhysician).(*models.Physician)
}
