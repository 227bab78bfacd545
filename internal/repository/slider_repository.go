package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bazario-backend/internal/models"
)

type SliderRepository struct {
	collection *mongo.Collection
}

func NewSliderRepository(collection *mongo.Collection) *SliderRepository {
	return &SliderRepository{collection: collection}
}

func (r *SliderRepository) List(ctx context.Context) ([]models.Slider, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sliders := make([]models.Slider, 0)
	if err := cursor.All(ctx, &sliders); err != nil {
		return nil, err
	}
	return sliders, nil
}

func (r *SliderRepository) Create(ctx context.Context, slider *models.Slider) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	slider.ID = primitive.NewObjectID()
	slider.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, slider)
	return err
}

func (r *SliderRepository) Delete(ctx context.Context, id string) error {
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
