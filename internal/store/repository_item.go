package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/metrics"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
)

const itemsTable = "items"

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
type itemRepository struct {
	db         DBTX
	classifier ErrorClassificator
	logger     *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// connection pool and logger.
func NewItemRepository(db DBTX, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:         db,
		classifier: NewPostgresErrorClassifier(),
		logger:     logger,
	}
}

// CreateItem inserts a new item. Its average score starts at 0.00.
//
// A taken name yields [ErrUniqueViolation].
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	defer metrics.TrackQuery("insert", itemsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildCreateItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("failed to create query")
		return models.Item{}, err
	}

	created, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Item{}, handleQueryError(ctx, r.classifier, "*itemRepository.CreateItem", "insert", itemsTable, err)
	}

	log.Debug().Str("func", "*itemRepository.CreateItem").Stringer("item_id", created.ItemID).Msg("item created")
	return created, nil
}

// ListItems returns every item in no particular order.
func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	defer metrics.TrackQuery("select", itemsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, handleQueryError(ctx, r.classifier, "*itemRepository.ListItems", "select", itemsTable, err)
	}

	items, err := collectRows(rows, scanItem)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("failed to read item rows")
		return nil, err
	}

	return items, nil
}

// FindItemByID returns the item or [ErrNotFound].
func (r *itemRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	defer metrics.TrackQuery("select", itemsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildFindItemByIDQuery(itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemByID").Msg("failed to create query")
		return models.Item{}, err
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrNotFound
	}
	if err != nil {
		return models.Item{}, handleQueryError(ctx, r.classifier, "*itemRepository.FindItemByID", "select", itemsTable, err)
	}

	return item, nil
}

// DeleteItem removes the item; its reviews and their comments cascade.
//
// Returns [ErrNotFound] when no such item exists.
func (r *itemRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	defer metrics.TrackQuery("delete", itemsTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("failed to create query")
		return err
	}

	var deletedID uuid.UUID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&deletedID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return handleQueryError(ctx, r.classifier, "*itemRepository.DeleteItem", "delete", itemsTable, err)
	}

	log.Info().Str("func", "*itemRepository.DeleteItem").Stringer("item_id", deletedID).Msg("item deleted")
	return nil
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ItemID, &item.Name, &item.Description, &item.AverageScore, &item.CreatedAt)
	return item, err
}
