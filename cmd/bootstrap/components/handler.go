package components

import (
	"levelup-store/internal/handler"
	"levelup-store/internal/handler/api"
	"levelup-store/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewCartHandler,
		api.NewSaleHandler,
		api.NewUserHandler,
		api.NewReviewHandler,
		api.NewEventHandler,
		api.NewBlogHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	product *api.ProductHandler,
	cart *api.CartHandler,
	sale *api.SaleHandler,
	user *api.UserHandler,
	review *api.ReviewHandler,
	event *api.EventHandler,
	blog *api.BlogHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Product: product,
		Cart:    cart,
		Sale:    sale,
		User:    user,
		Review:  review,
		Event:   event,
		Blog:    blog,
	}
}
