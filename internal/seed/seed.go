// Package seed loads a small demo catalogue of users, cars, reviews and
// comments through the service layer.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/service"
	"github.com/MKhiriev/go-item-reviews/internal/store"
	"github.com/MKhiriev/go-item-reviews/models"
)

var demoUsers = []models.RegisterRequest{
	{Username: "john_doe", Email: "john@example.com", Password: "password1"},
	{Username: "jane_doe", Email: "jane@example.com", Password: "password2"},
	{Username: "jim_bean", Email: "jim@example.com", Password: "password3"},
	{Username: "susan_storm", Email: "susan@example.com", Password: "password4"},
	{Username: "peter_parker", Email: "peter@example.com", Password: "password5"},
}

var demoItems = []models.CreateItemRequest{
	{Name: "Toyota Camry", Description: "A reliable and fuel-efficient sedan."},
	{Name: "Honda Civic", Description: "Compact car with great mileage and durability."},
	{Name: "Ford Mustang", Description: "A classic American muscle car."},
	{Name: "Chevrolet Malibu", Description: "A midsize sedan with a comfortable ride."},
	{Name: "Tesla Model 3", Description: "An all-electric sedan with cutting-edge technology."},
}

// demoReview references demoUsers and demoItems by index.
type demoReview struct {
	user, item int
	models.ReviewRequest
}

var demoReviews = []demoReview{
	{user: 0, item: 0, ReviewRequest: models.ReviewRequest{Score: 5, Text: "Excellent car!"}},
	{user: 1, item: 1, ReviewRequest: models.ReviewRequest{Score: 4, Text: "Good value for money."}},
}

// demoComment references demoUsers and demoReviews by index.
type demoComment struct {
	user, review int
	models.CommentRequest
}

var demoComments = []demoComment{
	{user: 1, review: 0, CommentRequest: models.CommentRequest{Text: "I agree, it's amazing!"}},
	{user: 0, review: 1, CommentRequest: models.CommentRequest{Text: "Thanks for sharing!"}},
}

// Seeder writes the demo data set.
type Seeder struct {
	auth     service.AuthService
	items    service.ItemService
	reviews  service.ReviewService
	comments service.CommentService
}

// NewSeeder returns a Seeder writing through services.
func NewSeeder(services *service.Services) *Seeder {
	return &Seeder{
		auth:     services.AuthService,
		items:    services.ItemService,
		reviews:  services.ReviewService,
		comments: services.CommentService,
	}
}

// Seed creates the demo users, items, reviews and comments in that order.
//
// A unique violation on the first user means the data set was loaded by an
// earlier start, in which case Seed returns nil without writing anything.
func (s *Seeder) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	users := make([]models.User, 0, len(demoUsers))
	for i, req := range demoUsers {
		user, err := s.auth.RegisterUser(ctx, req)
		if i == 0 && errors.Is(err, store.ErrUniqueViolation) {
			log.Info().Msg("demo data already present, skipping seed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("seed user %q: %w", req.Username, err)
		}
		users = append(users, user)
	}

	items := make([]models.Item, 0, len(demoItems))
	for _, req := range demoItems {
		item, err := s.items.CreateItem(ctx, req)
		if err != nil {
			return fmt.Errorf("seed item %q: %w", req.Name, err)
		}
		items = append(items, item)
	}

	reviews := make([]models.Review, 0, len(demoReviews))
	for _, d := range demoReviews {
		review, err := s.reviews.CreateReview(ctx, users[d.user].UserID, items[d.item].ItemID, d.ReviewRequest)
		if err != nil {
			return fmt.Errorf("seed review of %q: %w", items[d.item].Name, err)
		}
		reviews = append(reviews, review)
	}

	for _, d := range demoComments {
		if _, err := s.comments.CreateComment(ctx, users[d.user].UserID, reviews[d.review].ReviewID, d.CommentRequest); err != nil {
			return fmt.Errorf("seed comment by %q: %w", users[d.user].Username, err)
		}
	}

	log.Info().
		Int("users", len(users)).
		Int("items", len(items)).
		Int("reviews", len(reviews)).
		Int("comments", len(demoComments)).
		Msg("demo data seeded")

	return nil
}
