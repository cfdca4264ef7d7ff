package components

import (
	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/usecase"
	"levelup-store/internal/usecase/commands"
	"levelup-store/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,

		usecase.NewAuthUseCase,
		NewTokenValidator,

		queries.NewProductQueries,
		queries.NewSaleQueries,
		queries.NewUserQueries,
		queries.NewReviewQueries,
		queries.NewContentQueries,

		commands.NewCheckoutUseCase,
		commands.NewCartUseCase,
		commands.NewProductUseCase,
		commands.NewUserUseCase,
		commands.NewReviewUseCase,
		commands.NewContentUseCase,
	),
)

func NewTokenValidator(auth usecase.AuthUseCase) usecase.TokenValidator {
	return auth
}
