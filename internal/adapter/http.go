package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/utils"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// HTTPClientConfig configures [NewHTTPServerAdapter].
type HTTPClientConfig struct {
	// Address is the server base URL. A missing scheme defaults to http.
	Address string

	// Timeout bounds every request. Zero means 15s.
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty-backed [ServerAdapter].
//
// Returns an error if cfg.Address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User
	err := h.do(h.client.R().SetContext(ctx).SetBody(req).SetResult(&user), "POST", "/api/auth/register")
	return user, err
}

// Login stores the token from the response body, falling back to the
// Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&login).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("POST /api/auth/login: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if login.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		login.Token = token
	}

	h.SetToken(login.Token)
	h.logger.Debug().Str("user_id", login.User.UserID.String()).Msg("logged in")

	return login, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.do(h.authedRequest(ctx).SetResult(&user), "GET", "/api/auth/me")
	return user, err
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return h.do(h.authedRequest(ctx), "DELETE", "/api/users/"+userID.String())
}

func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := h.do(h.client.R().SetContext(ctx).SetResult(&items), "GET", "/api/items")
	return items, err
}

func (h *httpServerAdapter) GetItem(ctx context.Context, itemID uuid.UUID) (models.ItemDetails, error) {
	var details models.ItemDetails
	err := h.do(h.client.R().SetContext(ctx).SetResult(&details), "GET", "/api/items/"+itemID.String())
	return details, err
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	var item models.Item
	err := h.do(h.authedRequest(ctx).SetBody(req).SetResult(&item), "POST", "/api/items")
	return item, err
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return h.do(h.authedRequest(ctx), "DELETE", "/api/items/"+itemID.String())
}

func (h *httpServerAdapter) ListItemReviews(ctx context.Context, itemID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := h.do(h.client.R().SetContext(ctx).SetResult(&reviews), "GET", itemReviewsPath(itemID))
	return reviews, err
}

func (h *httpServerAdapter) CreateReview(ctx context.Context, itemID uuid.UUID, req models.ReviewRequest) (models.Review, error) {
	var review models.Review
	err := h.do(h.authedRequest(ctx).SetBody(req).SetResult(&review), "POST", itemReviewsPath(itemID))
	return review, err
}

func (h *httpServerAdapter) MyReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	err := h.do(h.authedRequest(ctx).SetResult(&reviews), "GET", "/api/reviews/me")
	return reviews, err
}

func (h *httpServerAdapter) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, req models.ReviewRequest) (models.Review, error) {
	var review models.Review
	err := h.do(h.authedRequest(ctx).SetBody(req).SetResult(&review), "PUT", userReviewPath(userID, reviewID))
	return review, err
}

func (h *httpServerAdapter) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	return h.do(h.authedRequest(ctx), "DELETE", userReviewPath(userID, reviewID))
}

func (h *httpServerAdapter) ListReviewComments(ctx context.Context, itemID, reviewID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := h.do(h.client.R().SetContext(ctx).SetResult(&comments), "GET", reviewCommentsPath(itemID, reviewID))
	return comments, err
}

func (h *httpServerAdapter) CreateComment(ctx context.Context, itemID, reviewID uuid.UUID, req models.CommentRequest) (models.Comment, error) {
	var comment models.Comment
	err := h.do(h.authedRequest(ctx).SetBody(req).SetResult(&comment), "POST", reviewCommentsPath(itemID, reviewID))
	return comment, err
}

func (h *httpServerAdapter) MyComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	err := h.do(h.authedRequest(ctx).SetResult(&comments), "GET", "/api/comments/me")
	return comments, err
}

func (h *httpServerAdapter) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req models.CommentRequest) (models.Comment, error) {
	var comment models.Comment
	err := h.do(h.authedRequest(ctx).SetBody(req).SetResult(&comment), "PUT", userCommentPath(userID, commentID))
	return comment, err
}

func (h *httpServerAdapter) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	return h.do(h.authedRequest(ctx), "DELETE", userCommentPath(userID, commentID))
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("GET /api/version: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// do sends req and maps a non-2xx answer to a sentinel error.
func (h *httpServerAdapter) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func itemReviewsPath(itemID uuid.UUID) string {
	return "/api/items/" + itemID.String() + "/reviews"
}

func reviewCommentsPath(itemID, reviewID uuid.UUID) string {
	return itemReviewsPath(itemID) + "/" + reviewID.String() + "/comments"
}

func userReviewPath(userID, reviewID uuid.UUID) string {
	return "/api/users/" + userID.String() + "/reviews/" + reviewID.String()
}

func userCommentPath(userID, commentID uuid.UUID) string {
	return "/api/users/" + userID.String() + "/comments/" + commentID.String()
}
