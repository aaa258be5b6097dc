package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-item-reviews/internal/config"
	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/service"
	"github.com/MKhiriev/go-item-reviews/internal/utils"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ─────────────────────────────────────────────
// Service fakes. Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	getUserFn      func(ctx context.Context, userID uuid.UUID) (models.User, error)
	deleteUserFn   func(ctx context.Context, userID uuid.UUID) error
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return m.deleteUserFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockItemService struct {
	createItemFn         func(ctx context.Context, request models.CreateItemRequest) (models.Item, error)
	listItemsFn          func(ctx context.Context) ([]models.Item, error)
	getItemWithReviewsFn func(ctx context.Context, itemID uuid.UUID) (models.ItemDetails, error)
	deleteItemFn         func(ctx context.Context, itemID uuid.UUID) error
}

func (m *mockItemService) CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error) {
	return m.createItemFn(ctx, request)
}

func (m *mockItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return m.listItemsFn(ctx)
}

func (m *mockItemService) GetItemWithReviews(ctx context.Context, itemID uuid.UUID) (models.ItemDetails, error) {
	return m.getItemWithReviewsFn(ctx, itemID)
}

func (m *mockItemService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return m.deleteItemFn(ctx, itemID)
}

type mockReviewService struct {
	createReviewFn       func(ctx context.Context, userID, itemID uuid.UUID, request models.ReviewRequest) (models.Review, error)
	listReviewsForItemFn func(ctx context.Context, itemID uuid.UUID) ([]models.Review, error)
	listReviewsByUserFn  func(ctx context.Context, userID uuid.UUID) ([]models.Review, error)
	updateReviewFn       func(ctx context.Context, update models.ReviewUpdate) (models.Review, error)
	deleteReviewFn       func(ctx context.Context, reviewID, userID uuid.UUID) (models.Review, error)
}

func (m *mockReviewService) CreateReview(ctx context.Context, userID, itemID uuid.UUID, request models.ReviewRequest) (models.Review, error) {
	return m.createReviewFn(ctx, userID, itemID, request)
}

func (m *mockReviewService) ListReviewsForItem(ctx context.Context, itemID uuid.UUID) ([]models.Review, error) {
	return m.listReviewsForItemFn(ctx, itemID)
}

func (m *mockReviewService) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]models.Review, error) {
	return m.listReviewsByUserFn(ctx, userID)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, update models.ReviewUpdate) (models.Review, error) {
	return m.updateReviewFn(ctx, update)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, reviewID, userID uuid.UUID) (models.Review, error) {
	return m.deleteReviewFn(ctx, reviewID, userID)
}

type mockCommentService struct {
	createCommentFn         func(ctx context.Context, userID, reviewID uuid.UUID, request models.CommentRequest) (models.Comment, error)
	listCommentsForReviewFn func(ctx context.Context, reviewID uuid.UUID) ([]models.Comment, error)
	listCommentsByUserFn    func(ctx context.Context, userID uuid.UUID) ([]models.Comment, error)
	updateCommentFn         func(ctx context.Context, update models.CommentUpdate) (models.Comment, error)
	deleteCommentFn         func(ctx context.Context, commentID, userID uuid.UUID) (models.Comment, error)
}

func (m *mockCommentService) CreateComment(ctx context.Context, userID, reviewID uuid.UUID, request models.CommentRequest) (models.Comment, error) {
	return m.createCommentFn(ctx, userID, reviewID, request)
}

func (m *mockCommentService) ListCommentsForReview(ctx context.Context, reviewID uuid.UUID) ([]models.Comment, error) {
	return m.listCommentsForReviewFn(ctx, reviewID)
}

func (m *mockCommentService) ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Comment, error) {
	return m.listCommentsByUserFn(ctx, userID)
}

func (m *mockCommentService) UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error) {
	return m.updateCommentFn(ctx, update)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) (models.Comment, error) {
	return m.deleteCommentFn(ctx, commentID, userID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices returns services backed by empty fakes. Tests fill in
// the function fields they need.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &mockAuthService{},
		ItemService:    &mockItemService{},
		ReviewService:  &mockReviewService{},
		CommentService: &mockCommentService{},
		AppInfoService: &mockAppInfoService{version: "test"},
	}
}

func newTestHandlerWithServices(services *service.Services) *Handler {
	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
}

// withURLParams attaches chi URL parameters to r, as the router would.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asUser stores userID in the request context the way the auth middleware does.
func asUser(r *http.Request, userID uuid.UUID) *http.Request {
	claims := &models.Claims{UserID: userID, Username: "alice", Email: "alice@example.com"}
	return r.WithContext(utils.WithUser(r.Context(), claims))
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validTokenFor returns a ParseToken fake that accepts "good-token" for userID.
func validTokenFor(t *testing.T, userID uuid.UUID) func(context.Context, string) (models.Token, error) {
	t.Helper()
	return func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString != "good-token" {
			return models.Token{}, service.ErrInvalidToken
		}
		return models.Token{
			SignedString: tokenString,
			UserClaims:   &models.Claims{UserID: userID, Username: "alice", Email: "alice@example.com"},
		}, nil
	}
}
