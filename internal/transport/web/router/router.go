package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Abotareq/imDb-sub000/internal/auth"
	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
	"github.com/Abotareq/imDb-sub000/internal/transport/web/controller"
)

// Commands bundles the commands the router wires into controllers.
type Commands struct {
	RegisterUser          *command.RegisterUser
	AuthenticateUser      *command.AuthenticateUser
	AggregateEntityRating *command.AggregateEntityRating
	CreateReview          *command.CreateReview
	UpdateReview          *command.UpdateReview
	DeleteReview          *command.DeleteReview
	DeleteEntityReviews   *command.DeleteEntityReviews
	DeleteUserReviews     *command.DeleteUserReviews
	RecommendEntities     *command.RecommendEntities
	AutoVerifyUsers       *command.AutoVerifyUsers
}

func MakeRouter(
	catalog datasources.CatalogRepository,
	images datasources.ImageStore,
	tokens auth.TokenService,
	commands Commands,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	requireAuth := requireAuthMiddleware
	requireAdmin := func(next http.Handler) http.Handler {
		return requireRoleMiddleware(domain.RoleAdmin, next)
	}

	r.Handle("/v1/auth/register", controller.AuthRegister{
		RegisterCmd: commands.RegisterUser,
		Tokens:      tokens,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/auth/login", controller.AuthLogin{
		AuthenticateCmd: commands.AuthenticateUser,
		Tokens:          tokens,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/auth/logout", controller.AuthLogout{}).
		Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/auth/me", requireAuth(controller.AuthMe{
		Fetcher: catalog,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/entities", controller.EntitiesList{
		Lister: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/entities", requireAdmin(controller.EntityCreate{
		Creator: catalog,
	})).Methods(http.MethodPost)

	r.Handle("/v1/entities/{entityID}", controller.EntityGet{
		Fetcher: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/entities/{entityID}", requireAdmin(controller.EntityUpdate{
		Repository: catalog,
	})).Methods(http.MethodPatch)

	r.Handle("/v1/entities/{entityID}", requireAdmin(controller.EntityDelete{
		Deleter:        catalog,
		ReviewsDeleter: catalog,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/entities/{entityID}/rating", controller.EntityRatingGet{
		Fetcher:    catalog,
		Aggregator: commands.AggregateEntityRating,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/entities/{entityID}/poster", requireAdmin(controller.EntityPosterUpload{
		Repository: catalog,
		Images:     images,
	})).Methods(http.MethodPost)

	r.Handle("/v1/entities/{entityID}/reviews", controller.EntityReviewsList{
		Fetcher: catalog,
		Lister:  catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/entities/{entityID}/reviews", requireAdmin(controller.EntityReviewsDelete{
		Command: commands.DeleteEntityReviews,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/reviews", requireAuth(controller.ReviewCreate{
		Command: commands.CreateReview,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/reviews/{reviewID}", controller.ReviewGet{
		Fetcher: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/reviews/{reviewID}", requireAuth(controller.ReviewUpdate{
		Command: commands.UpdateReview,
	})).Methods(http.MethodPatch)

	r.Handle("/v1/reviews/{reviewID}", requireAuth(controller.ReviewDelete{
		Command: commands.DeleteReview,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/recommendations", requireAuth(controller.RecommendationsList{
		Command: commands.RecommendEntities,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/people", controller.PeopleList{
		Lister: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/people", requireAdmin(controller.PersonCreate{
		Creator: catalog,
	})).Methods(http.MethodPost)

	r.Handle("/v1/people/{personID}", controller.PersonGet{
		Fetcher: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/people/{personID}", requireAdmin(controller.PersonUpdate{
		Repository: catalog,
	})).Methods(http.MethodPatch)

	r.Handle("/v1/people/{personID}", requireAdmin(controller.PersonDelete{
		Deleter: catalog,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/people/{personID}/photo", requireAdmin(controller.PersonPhotoUpload{
		Repository: catalog,
		Images:     images,
	})).Methods(http.MethodPost)

	r.Handle("/v1/characters", controller.CharactersList{
		Lister: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/characters", requireAdmin(controller.CharacterCreate{
		Creator: catalog,
	})).Methods(http.MethodPost)

	r.Handle("/v1/characters/{characterID}", controller.CharacterGet{
		Fetcher: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/characters/{characterID}", requireAdmin(controller.CharacterUpdate{
		Repository: catalog,
	})).Methods(http.MethodPatch)

	r.Handle("/v1/characters/{characterID}", requireAdmin(controller.CharacterDelete{
		Deleter: catalog,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/articles", controller.ArticlesList{
		Lister: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles", requireAuth(controller.ArticleCreate{
		EntityFetcher: catalog,
		Creator:       catalog,
	})).Methods(http.MethodPost)

	r.Handle("/v1/articles/{articleID}", controller.ArticleGet{
		Fetcher: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{articleID}", requireAuth(controller.ArticleUpdate{
		Repository: catalog,
	})).Methods(http.MethodPatch)

	r.Handle("/v1/articles/{articleID}", requireAuth(controller.ArticleDelete{
		Repository: catalog,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/awards", controller.AwardsList{
		Lister: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/awards", requireAdmin(controller.AwardCreate{
		EntityFetcher: catalog,
		PersonFetcher: catalog,
		Creator:       catalog,
	})).Methods(http.MethodPost)

	r.Handle("/v1/awards/{awardID}", controller.AwardGet{
		Fetcher: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/awards/{awardID}", requireAdmin(controller.AwardUpdate{
		Repository: catalog,
	})).Methods(http.MethodPatch)

	r.Handle("/v1/awards/{awardID}", requireAdmin(controller.AwardDelete{
		Deleter: catalog,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/users", requireAdmin(controller.UsersList{
		Lister: catalog,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{userID}", requireAuth(controller.UserGet{
		Fetcher: catalog,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{userID}", requireAuth(controller.UserUpdate{
		Repository: catalog,
	})).Methods(http.MethodPatch)

	r.Handle("/v1/users/{userID}", requireAdmin(controller.UserDelete{
		Deleter:        catalog,
		ReviewsCommand: commands.DeleteUserReviews,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/users/{userID}/reviews", requireAdmin(controller.UserReviewsDelete{
		Command: commands.DeleteUserReviews,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/admin/verify-users", requireAdmin(controller.VerificationRun{
		Command: commands.AutoVerifyUsers,
	})).Methods(http.MethodPost, http.MethodOptions)

	return r, nil
}
