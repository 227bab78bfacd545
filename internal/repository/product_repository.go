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

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{collection: collection}
}

// ListPublic returns visible products with skip/limit pagination and the
// total visible count.
func (r *ProductRepository) ListPublic(ctx context.Context, page, perPage int64) ([]models.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"visibility": true}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(perPage * page).
		SetLimit(perPage).
		SetSort(bson.D{{Key: "createAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListBySeller includes hidden items; it backs the seller/admin listing.
func (r *ProductRepository) ListBySeller(ctx context.Context, sellerUID string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"seller_info.seller_uid": sellerUID}, nil)
}

func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"product_info.category": category, "visibility": true}, nil)
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// UpdateFields applies a partial merge: only the enumerated, non-nil
// fields are replaced.
func (r *ProductRepository) UpdateFields(ctx context.Context, id string, update models.ProductUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["product_info.name"] = *update.Name
	}
	if update.Description != nil {
		set["product_info.description"] = *update.Description
	}
	if update.Category != nil {
		set["product_info.category"] = *update.Category
	}
	if update.Image != nil {
		set["product_info.image"] = *update.Image
	}
	if update.Price != nil {
		set["product_info.price"] = *update.Price
	}
	if update.Quantity != nil {
		set["product_info.quantity"] = *update.Quantity
	}
	if len(set) == 0 {
		return nil
	}
	return r.updateOne(ctx, id, bson.M{"$set": set})
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) SetVisibility(ctx context.Context, id string, visible bool) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"visibility": visible}})
}

// Purchase is the single write closing the inventory lost-update race:
// the filter carries the stock guard, so a concurrent decrement can never
// drive quantity negative or overwrite another request's write.
func (r *ProductRepository) Purchase(ctx context.Context, id string, qty int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	filter := bson.M{"_id": objID, "product_info.quantity": bson.M{"$gte": qty}}
	update := bson.M{"$inc": bson.M{
		"product_info.quantity":  -qty,
		"product_info.totalSale": qty,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing product from a failed stock guard.
		switch err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Err(); err {
		case mongo.ErrNoDocuments:
			return ErrNotFound
		case nil:
			return ErrInsufficientStock
		default:
			return err
		}
	}
	return nil
}

func (r *ProductRepository) TopSelling(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "product_info.totalSale", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *ProductRepository) Recent(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createAt", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
