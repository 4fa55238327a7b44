package command

import "context"

// Command is the shape shared by request/response commands in this package.
// Commands keyed by a single identifier (rating aggregation, recommendation
// scoring) take that identifier directly instead of a request struct.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

var (
	_ Command[RegisterUserRequest, RegisterUserResponse]               = (*RegisterUser)(nil)
	_ Command[AuthenticateUserRequest, AuthenticateUserResponse]       = (*AuthenticateUser)(nil)
	_ Command[CreateReviewRequest, CreateReviewResponse]               = (*CreateReview)(nil)
	_ Command[UpdateReviewRequest, UpdateReviewResponse]               = (*UpdateReview)(nil)
	_ Command[DeleteReviewRequest, DeleteReviewResponse]               = (*DeleteReview)(nil)
	_ Command[DeleteEntityReviewsRequest, DeleteEntityReviewsResponse] = (*DeleteEntityReviews)(nil)
	_ Command[DeleteUserReviewsRequest, DeleteUserReviewsResponse]     = (*DeleteUserReviews)(nil)
	_ Command[AutoVerifyUsersRequest, AutoVerifyUsersResponse]         = (*AutoVerifyUsers)(nil)
)
