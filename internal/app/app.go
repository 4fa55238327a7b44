package app

import (
	"context"
	"fmt"
	"os"

	"github.com/Abotareq/imDb-sub000/internal/auth"
	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/datasources/localdisk"
	"github.com/Abotareq/imDb-sub000/internal/datasources/mysql"
	"github.com/Abotareq/imDb-sub000/internal/datasources/smtp"
	"github.com/Abotareq/imDb-sub000/internal/transport/web/router"
	"github.com/Abotareq/imDb-sub000/internal/transport/web/server"
	"github.com/Abotareq/imDb-sub000/internal/worker"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	catalog, err := setupCatalogRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up catalog repository: %w", err)
	}

	images, err := localdisk.New(
		MustGetEnvAsString(ctx, "IMAGE_DIR"),
		MustGetEnvAsString(ctx, "IMAGE_BASE_URL"),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up image store: %w", err)
	}

	notifier, err := setupNotifier(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up notifier: %w", err)
	}

	tokens := auth.TokenService{
		Secret:   []byte(MustGetEnvAsString(ctx, "SESSION_SECRET")),
		Issuer:   MustGetEnvAsString(ctx, "SESSION_ISSUER"),
		Duration: MustGetEnvAsDuration(ctx, "SESSION_DURATION"),
	}

	aggregateCmd := command.NewAggregateEntityRating(catalog, catalog)
	autoVerifyCmd := command.NewAutoVerifyUsers(
		catalog,
		catalog,
		catalog,
		notifier,
		command.DefaultAutoVerifyUsersConfig(),
	)

	commands := router.Commands{
		RegisterUser:          command.NewRegisterUser(catalog),
		AuthenticateUser:      command.NewAuthenticateUser(catalog),
		AggregateEntityRating: aggregateCmd,
		CreateReview:          command.NewCreateReview(catalog, catalog, catalog, aggregateCmd),
		UpdateReview:          command.NewUpdateReview(catalog, catalog, aggregateCmd),
		DeleteReview:          command.NewDeleteReview(catalog, catalog, aggregateCmd),
		DeleteEntityReviews:   command.NewDeleteEntityReviews(catalog, catalog, catalog),
		DeleteUserReviews:     command.NewDeleteUserReviews(catalog, catalog, aggregateCmd),
		RecommendEntities:     command.NewRecommendEntities(catalog, catalog, catalog, catalog, catalog),
		AutoVerifyUsers:       autoVerifyCmd,
	}

	authMiddleware := router.NewAuthMiddleware([]router.AuthValidator{
		router.NewSessionCookieValidator(tokens),
	})

	httpRouter, err := router.MakeRouter(catalog, images, tokens, commands, authMiddleware)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}

	if MustGetEnvAsBoolean(ctx, "AUTO_VERIFY_ENABLED") {
		components = append(components, &worker.AutoVerifier{
			Command:  autoVerifyCmd,
			Interval: MustGetEnvAsDuration(ctx, "AUTO_VERIFY_INTERVAL"),
		})
	}

	return components, nil
}

func setupCatalogRepository(ctx context.Context) (datasources.CatalogRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	if err := mysql.EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("ensuring MySQL schema: %w", err)
	}
	return mysql.New(db), nil
}

func setupNotifier(ctx context.Context) (datasources.Notifier, error) {
	switch driver := MustGetEnvAsString(ctx, "MAIL_DRIVER"); driver {
	case "null":
		return datasources.NullNotifier{}, nil
	case "smtp":
		return smtp.NewMailer(smtp.Config{
			Host:     MustGetEnvAsString(ctx, "SMTP_HOST"),
			Port:     MustGetEnvAsInt(ctx, "SMTP_PORT"),
			Username: MustGetEnvAsString(ctx, "SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     MustGetEnvAsString(ctx, "SMTP_FROM"),
			UseTLS:   MustGetEnvAsBoolean(ctx, "SMTP_TLS"),
		})
	default:
		return nil, fmt.Errorf("unknown mail driver [%s]", driver)
	}
}
