package handlers

import (
	"feedback_app/internal/forms"
	"feedback_app/internal/logger"
	"feedback_app/internal/service"
	"feedback_app/internal/session"
	"feedback_app/internal/web"

	_ "feedback_app/docs"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, sessions and logging.
type Handler struct {
	services *service.Service
	sessions *session.Manager
	forms    *forms.Validator
	views    *web.Renderer
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sessions *session.Manager, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		services: services,
		sessions: sessions,
		forms:    forms.NewValidator(),
		views:    web.MustRenderer(),
		log:      log,
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.HTMLRender = h.views
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	pages := router.Group("/", h.sessionMiddleware, h.csrfMiddleware)
	{
		pages.GET("/", h.index)
		h.registerAuthRoutes(pages)
		h.registerUserRoutes(pages)
		h.registerFeedbackRoutes(pages)
	}

	router.NoRoute(h.sessionMiddleware, h.notFound)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.RouterGroup) {
	r.GET("/register", h.showRegister)
	r.POST("/register", h.register)
	r.GET("/login", h.showLogin)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerUserRoutes(r *gin.RouterGroup) {
	users := r.Group("/users/:username")
	{
		users.GET("", h.showUser)
		users.POST("/delete", h.deleteUser)
		users.GET("/feedback/add", h.showAddFeedback)
		users.POST("/feedback/add", h.addFeedback)
	}
}

func (h *Handler) registerFeedbackRoutes(r *gin.RouterGroup) {
	feedback := r.Group("/feedback/:id")
	{
		feedback.GET("/update", h.showUpdateFeedback)
		feedback.POST("/update", h.updateFeedback)
		feedback.POST("/delete", h.deleteFeedback)
	}
}
