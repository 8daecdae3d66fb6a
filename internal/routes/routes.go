package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	"github.com/BruksfildServices01/consultorio/internal/config"
	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/handlers"
	infraRepo "github.com/BruksfildServices01/consultorio/internal/infra/repository"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/notification"
	"github.com/BruksfildServices01/consultorio/internal/session"
	"github.com/BruksfildServices01/consultorio/internal/storage"
	ucAuth "github.com/BruksfildServices01/consultorio/internal/usecase/auth"
	ucPatient "github.com/BruksfildServices01/consultorio/internal/usecase/patient"
	ucProfile "github.com/BruksfildServices01/consultorio/internal/usecase/profile"
)

// Deps são as dependências montadas pelo main (ou pelos testes).
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    zerolog.Logger

	Sessions session.Store
	Photos   storage.PhotoStore
	Notifier notification.Notifier
	Audit    *audit.Dispatcher
	Codes    physician.CodeSource

	// nil desliga a checagem de MX do e-mail no cadastro
	Domains ucAuth.DomainChecker
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	physicianRepo := infraRepo.NewPhysicianGormRepository(d.DB)
	patientRepo := infraRepo.NewPatientGormRepository(d.DB)

	sessions := middleware.NewSessionAuth(
		d.Sessions,
		session.NewCookieCodec(cfg.SessionSecret),
		physicianRepo,
		cfg.SessionTTL,
		cfg.SecureCookies,
		d.Log,
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limited := limiter.Middleware()

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegisterPhysician(physicianRepo, d.Codes, d.Notifier, d.Domains, d.Audit, d.Log)
	loginUC := ucAuth.NewLogin(physicianRepo, d.Audit)
	resetUC := ucAuth.NewPasswordReset(physicianRepo, d.Codes, d.Notifier, d.Sessions, d.Audit, d.Log, cfg.ResetTokenTTL)

	listPatientsUC := ucPatient.NewListPatients(patientRepo)
	createPatientUC := ucPatient.NewCreatePatient(patientRepo, d.Audit)
	updatePatientUC := ucPatient.NewUpdatePatient(patientRepo, d.Audit)
	deletePatientUC := ucPatient.NewDeletePatient(patientRepo, d.Audit)

	uploadPhotoUC := ucProfile.NewUploadPhoto(physicianRepo, d.Photos, cfg.MaxPhotoBytes, d.Audit, d.Log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, physicianRepo, sessions, d.Audit, d.Log)
	resetHandler := handlers.NewPasswordResetHandler(resetUC, d.Log)
	dashboardHandler := handlers.NewDashboardHandler(listPatientsUC, d.Log)
	patientHandler := handlers.NewPatientHandler(listPatientsUC, createPatientUC, updatePatientUC, deletePatientUC, d.Log)
	profileHandler := handlers.NewProfileHandler(uploadPhotoUC, dashboardHandler, cfg.MaxPhotoBytes, d.Log)
	specialtyHandler := handlers.NewSpecialtyHandler(physicianRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB))

	// ======================================================
	// 🖼️ FOTOS
	// ======================================================
	uploads := r.Group("/uploads")
	uploads.Use(middleware.NoSniff())
	if disk, ok := d.Photos.(*storage.DiskStore); ok {
		uploads.Static("/", disk.Dir())
	} else {
		uploadsHandler := handlers.NewUploadsHandler(d.Photos, d.Log)
		uploads.GET("/:name", uploadsHandler.Serve)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌍 PÁGINAS PÚBLICAS
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", limited, authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	r.GET("/registro", authHandler.RegisterPage)
	r.POST("/registro", limited, authHandler.Register)

	r.GET("/esqueceu-senha", resetHandler.RequestPage)
	r.POST("/esqueceu-senha", limited, resetHandler.Request)
	r.GET("/codigo-verificacao", resetHandler.VerifyPage)
	r.POST("/verificar-codigo", limited, resetHandler.Verify)
	r.GET("/nova-senha", resetHandler.NewPasswordPage)
	r.POST("/definir-nova-senha", limited, resetHandler.SetNewPassword)

	// ======================================================
	// 🔐 PÁGINAS DO MÉDICO
	// ======================================================
	app := r.Group("/")
	app.Use(sessions.RequirePhysician())
	{
		app.GET("/home", dashboardHandler.Home)
		app.GET("/configuracoes", dashboardHandler.Settings)

		app.GET("/pacientes", patientHandler.List)
		app.POST("/pacientes", patientHandler.Create)
		app.POST("/pacientes/:id/editar", patientHandler.Update)
		app.POST("/pacientes/:id/excluir", patientHandler.Delete)

		app.POST("/perfil/foto", profileHandler.UploadPhoto)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.CORS(cfg.CORSOrigins))
	{
		api.GET("/especialidades", specialtyHandler.List)

		me := api.Group("/me")
		me.Use(sessions.RequirePhysicianAPI())
		{
			me.GET("/auditoria", auditLogsHandler.List)
		}
	}
}
