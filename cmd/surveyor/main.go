package main

import (
	"context"
	"log/slog"
	"os"

	"surveyor/config"
	"surveyor/internal/delivery"
	"surveyor/internal/delivery/api"
	"surveyor/internal/delivery/api/middleware"
	"surveyor/internal/delivery/api/router/handler"
	"surveyor/internal/infra/auth"
	logs "surveyor/internal/infra/log"
	"surveyor/internal/infra/persistence/postgres"
	"surveyor/internal/infra/pubsub"
	"surveyor/internal/infra/survey"
	"surveyor/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPrincipalRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			survey.NewRequiredQuestionsRule,
		),
	)
}

// The admin and company services share one implementation and differ only by variant.
func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				impl.NewAdminAuthService,
				fx.ResultTags(`name:"admin"`),
			),
			fx.Annotate(
				impl.NewCompanyAuthService,
				fx.ResultTags(`name:"company"`),
			),
			impl.NewSurveyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				handler.NewAuthHandler,
				fx.ParamTags(`name:"admin"`),
				fx.ResultTags(`name:"admin"`),
			),
			fx.Annotate(
				handler.NewAuthHandler,
				fx.ParamTags(`name:"company"`),
				fx.ResultTags(`name:"company"`),
			),
			handler.NewSurveyHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
