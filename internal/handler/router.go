package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"levelup-store/internal/handler/api"
	"levelup-store/internal/handler/middleware"
	"levelup-store/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Product *api.ProductHandler
	Cart    *api.CartHandler
	Sale    *api.SaleHandler
	User    *api.UserHandler
	Review  *api.ReviewHandler
	Event   *api.EventHandler
	Blog    *api.BlogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		productos := apiGroup.Group("/productos")
		{
			addRoutes(productos, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
				{Method: http.MethodGet, Path: "/:id/resenas", Handler: h.Review.ListByProduct},
				{Method: http.MethodPost, Path: "", Handler: h.Product.Create, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Product.Update, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}

		carrito := apiGroup.Group("/carrito")
		carrito.Use(requireAuth)
		{
			addRoutes(carrito, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodDelete, Path: "/items/:productoId", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Cart.Checkout},
			})
		}

		boletas := apiGroup.Group("/boletas")
		boletas.Use(requireAuth)
		{
			addRoutes(boletas, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Sale.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Sale.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Sale.Get},
			})
		}

		usuarios := apiGroup.Group("/usuarios")
		usuarios.Use(requireAuth)
		{
			addRoutes(usuarios, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "", Handler: h.User.Create, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.User.Update, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.Delete, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		resenas := apiGroup.Group("/resenas")
		{
			addRoutes(resenas, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Review.List},
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		eventos := apiGroup.Group("/eventos")
		{
			addRoutes(eventos, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Event.List},
				{Method: http.MethodPost, Path: "", Handler: h.Event.Create, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Event.Update, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Event.Delete, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}

		blogs := apiGroup.Group("/blogs")
		{
			addRoutes(blogs, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Blog.List},
				{Method: http.MethodPost, Path: "", Handler: h.Blog.Create, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Blog.Update, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Blog.Delete, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
