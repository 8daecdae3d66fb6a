package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	ucAuth "github.com/BruksfildServices01/consultorio/internal/usecase/auth"
)

type AuthHandler struct {
	register   *ucAuth.RegisterPhysician
	login      *ucAuth.Login
	physicians physician.Repository
	sessions   *middleware.SessionAuth
	audit      *audit.Dispatcher
	log        zerolog.Logger
}

func NewAuthHandler(
	register *ucAuth.RegisterPhysician,
	login *ucAuth.Login,
	physicians physician.Repository,
	sessions *middleware.SessionAuth,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		register:   register,
		login:      login,
		physicians: physicians,
		sessions:   sessions,
		audit:      audit,
		log:        log,
	}
}

// --------- Forms ---------

type loginForm struct {
	Code     string `form:"codigoLogin" binding:"required"`
	Password string `form:"senha" binding:"required"`
}

type registerForm struct {
	Name         string `form:"nome" binding:"required"`
	Email        string `form:"email" binding:"required,email"`
	Password     string `form:"senha" binding:"required,min=6,max=72"`
	SpecialtyIDs []uint `form:"especialidadesIds"`
}

// ======================================================
// LOGIN
// ======================================================

func (h *AuthHandler) LoginPage(c *gin.Context) {
	data := gin.H{"erro": loginFlags[c.Query("error")]}

	switch {
	case c.Query("registro") == "success":
		data["aviso"] = "Cadastro realizado! Seu código de login foi enviado para o seu e-mail."
	case c.Query("reset") == "success":
		data["aviso"] = "Senha redefinida com sucesso. Faça login com a nova senha."
	case c.Query("logout") == "true":
		data["aviso"] = "Você saiu da sua conta."
	}

	c.HTML(http.StatusOK, "login", data)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, "/login", flag("error", "codigo"))
		return
	}

	doc, err := h.login.Execute(c.Request.Context(), form.Code, form.Password)
	if err != nil {
		switch businessCode(err) {
		case "invalid_login_code":
			redirect(c, "/login", flag("error", "codigo"))
		case "invalid_password":
			redirect(c, "/login", flag("error", "senha"))
		default:
			h.log.Error().Err(err).Msg("login")
			redirect(c, "/login", flag("error", "interno"))
		}
		return
	}

	if err := h.sessions.Start(c, doc.ID); err != nil {
		h.log.Error().Err(err).Uint("physician_id", doc.ID).Msg("start session")
		redirect(c, "/login", flag("error", "interno"))
		return
	}

	redirect(c, "/home", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := h.sessions.End(c); sess != nil {
		h.audit.Dispatch(audit.Event{
			PhysicianID: audit.Uint(sess.PhysicianID),
			Action:      audit.ActionLogout,
			Entity:      "physician",
			EntityID:    audit.Uint(sess.PhysicianID),
		})
	}
	redirect(c, "/login", flag("logout", "true"))
}

// ======================================================
// REGISTRO
// ======================================================

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.renderRegister(c, http.StatusOK, "", registerForm{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		code := "registration_fields_required"
		if physician.PasswordTooLong(form.Password) {
			code = "password_too_long"
		}
		h.renderRegister(c, http.StatusBadRequest, registerMessages[code], form)
		return
	}

	_, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Name:         form.Name,
		Email:        form.Email,
		Password:     form.Password,
		SpecialtyIDs: form.SpecialtyIDs,
	})
	if err != nil {
		if msg, ok := registerMessages[businessCode(err)]; ok {
			h.renderRegister(c, http.StatusOK, msg, form)
			return
		}

		h.log.Error().Err(err).Msg("register physician")
		h.renderRegister(c, http.StatusInternalServerError, msgInternal, form)
		return
	}

	redirect(c, "/login", flag("registro", "success"))
}

// renderRegister reexibe o formulário com o que já foi digitado, nunca a senha.
func (h *AuthHandler) renderRegister(c *gin.Context, status int, msg string, form registerForm) {
	specialties, err := h.physicians.ListSpecialties(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list specialties")
	}

	selected := make(map[uint]bool, len(form.SpecialtyIDs))
	for _, id := range form.SpecialtyIDs {
		selected[id] = true
	}

	form.Password = ""

	c.HTML(status, "registro", gin.H{
		"erro":           msg,
		"form":           form,
		"especialidades": specialties,
		"selecionadas":   selected,
	})
}
