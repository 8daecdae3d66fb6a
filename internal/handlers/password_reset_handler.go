package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	ucAuth "github.com/BruksfildServices01/consultorio/internal/usecase/auth"
)

type PasswordResetHandler struct {
	reset *ucAuth.PasswordReset
	log   zerolog.Logger
}

func NewPasswordResetHandler(reset *ucAuth.PasswordReset, log zerolog.Logger) *PasswordResetHandler {
	return &PasswordResetHandler{reset: reset, log: log}
}

type resetRequestForm struct {
	Email string `form:"email"`
}

type verifyCodeForm struct {
	Email string `form:"email"`
	Code  string `form:"codigo"`
}

type newPasswordForm struct {
	Token        string `form:"token"`
	Password     string `form:"novaSenha"`
	Confirmation string `form:"confirmarSenha"`
}

// ======================================================
// 1️⃣ PEDIDO
// ======================================================

func (h *PasswordResetHandler) RequestPage(c *gin.Context) {
	c.HTML(http.StatusOK, "esqueceu-senha", gin.H{
		"erro": resetFlags[c.Query("error")],
	})
}

func (h *PasswordResetHandler) Request(c *gin.Context) {
	var form resetRequestForm
	_ = c.ShouldBind(&form)

	err := h.reset.Request(c.Request.Context(), form.Email)
	switch businessCode(err) {
	case "":
		if err != nil {
			h.log.Error().Err(err).Msg("request password reset")
			redirect(c, "/esqueceu-senha", flag("error", "interno"))
			return
		}
		redirect(c, "/codigo-verificacao", flag("email", form.Email))
	case "email_not_found":
		redirect(c, "/esqueceu-senha", flag("error", "email-nao-encontrado"))
	default:
		redirect(c, "/esqueceu-senha", flag("error", "email"))
	}
}

// ======================================================
// 2️⃣ VERIFICAÇÃO
// ======================================================

func (h *PasswordResetHandler) VerifyPage(c *gin.Context) {
	c.HTML(http.StatusOK, "codigo-verificacao", gin.H{
		"email": c.Query("email"),
		"erro":  resetFlags[c.Query("error")],
	})
}

func (h *PasswordResetHandler) Verify(c *gin.Context) {
	var form verifyCodeForm
	_ = c.ShouldBind(&form)

	token, err := h.reset.Verify(c.Request.Context(), form.Email, form.Code)
	if err == nil {
		redirect(c, "/nova-senha", flag("token", token))
		return
	}

	back := url.Values{"email": {form.Email}}
	switch businessCode(err) {
	case "email_not_found":
		back.Set("error", "email-nao-encontrado")
	case "invalid_code":
		back.Set("error", "codigo-invalido")
	case "token_expired":
		back.Set("error", "token-expirado")
	default:
		h.log.Error().Err(err).Msg("verify reset code")
		back.Set("error", "interno")
	}
	redirect(c, "/codigo-verificacao", back)
}

// ======================================================
// 3️⃣ NOVA SENHA
// ======================================================

func (h *PasswordResetHandler) NewPasswordPage(c *gin.Context) {
	token := c.Query("token")

	if err := h.reset.CheckToken(c.Request.Context(), token); err != nil {
		if businessCode(err) == "" {
			h.log.Error().Err(err).Msg("check reset token")
		}
		redirect(c, "/esqueceu-senha", flag("error", "token-invalido"))
		return
	}

	c.HTML(http.StatusOK, "nova-senha", gin.H{
		"token": token,
		"erro":  resetFlags[c.Query("error")],
	})
}

func (h *PasswordResetHandler) SetNewPassword(c *gin.Context) {
	var form newPasswordForm
	_ = c.ShouldBind(&form)

	err := h.reset.Finalize(c.Request.Context(), ucAuth.FinalizeInput{
		Token:        form.Token,
		Password:     form.Password,
		Confirmation: form.Confirmation,
	})
	if err == nil {
		redirect(c, "/login", flag("reset", "success"))
		return
	}

	switch businessCode(err) {
	case "passwords_mismatch":
		redirect(c, "/nova-senha", url.Values{"error": {"senhas-nao-coincidem"}, "token": {form.Token}})
	case "invalid_password":
		redirect(c, "/nova-senha", url.Values{"error": {"senha-invalida"}, "token": {form.Token}})
	case "token_expired":
		redirect(c, "/esqueceu-senha", flag("error", "token-expirado"))
	case "invalid_token":
		redirect(c, "/esqueceu-senha", flag("error", "token-invalido"))
	default:
		h.log.Error().Err(err).Msg("finalize password reset")
		redirect(c, "/esqueceu-senha", flag("error", "interno"))
	}
}
