package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
)

type StoryRepository interface {
	Insert(ctx context.Context, story *domain.SuccessStory) (*domain.SuccessStory, error)
	FindByEmail(ctx context.Context, email string) (*domain.SuccessStory, error)
	List(ctx context.Context) ([]domain.SuccessStory, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type storyRepository struct {
	coll *mongo.Collection
}

func NewStoryRepository(coll *mongo.Collection) StoryRepository {
	return &storyRepository{coll: coll}
}

func (r *storyRepository) Insert(ctx context.Context, story *domain.SuccessStory) (*domain.SuccessStory, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now().UTC()
	}
	res, err := r.coll.InsertOne(ctx, story)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		story.ID = oid
	}
	return story, nil
}

func (r *storyRepository) FindByEmail(ctx context.Context, email string) (*domain.SuccessStory, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var s domain.SuccessStory
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storyRepository) List(ctx context.Context) ([]domain.SuccessStory, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var stories []domain.SuccessStory
	if err := cur.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
