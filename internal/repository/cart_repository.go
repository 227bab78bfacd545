package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazario-backend/internal/models"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(collection *mongo.Collection) *CartRepository {
	return &CartRepository{collection: collection}
}

// AddItem merges on insert in one upsert: the unique (uid, product_info.id)
// index plus $inc makes concurrent adds for the same pair commute instead
// of racing a read-then-write.
func (r *CartRepository) AddItem(ctx context.Context, item *models.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"uid": item.UID, "product_info.id": item.ProductInfo.ProductID}
	update := bson.M{
		"$inc": bson.M{"product_info.quantity": item.ProductInfo.Quantity},
		"$setOnInsert": bson.M{
			"uid":                item.UID,
			"product_info.id":    item.ProductInfo.ProductID,
			"product_info.name":  item.ProductInfo.Name,
			"product_info.image": item.ProductInfo.Image,
			"product_info.price": item.ProductInfo.Price,
			"createdAt":          time.Now(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *CartRepository) ListByUID(ctx context.Context, uid string) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"uid": uid})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItem is scoped to the owner: the uid in the filter keeps one user
// from deleting another's line by guessing ids.
func (r *CartRepository) DeleteItem(ctx context.Context, uid, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID, "uid": uid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearByUID is idempotent; retrying after a partial checkout failure is safe.
func (r *CartRepository) ClearByUID(ctx context.Context, uid string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{"uid": uid})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
