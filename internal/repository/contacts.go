package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
)

type ContactRepository interface {
	Insert(ctx context.Context, req *domain.ContactRequest) (*domain.ContactRequest, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.ContactRequest, error)
	ListByCheckoutEmail(ctx context.Context, email string) ([]domain.ContactRequest, error)
	ListByStatus(ctx context.Context, status domain.ContactStatus) ([]domain.ContactRequest, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status domain.ContactStatus) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type contactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(coll *mongo.Collection) ContactRepository {
	return &contactRepository{coll: coll}
}

func (r *contactRepository) Insert(ctx context.Context, req *domain.ContactRequest) (*domain.ContactRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		req.ID = oid
	}
	return req, nil
}

func (r *contactRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.ContactRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var req domain.ContactRequest
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *contactRepository) ListByCheckoutEmail(ctx context.Context, email string) ([]domain.ContactRequest, error) {
	return r.list(ctx, bson.M{"checkoutEmail": email})
}

func (r *contactRepository) ListByStatus(ctx context.Context, status domain.ContactStatus) ([]domain.ContactRequest, error) {
	return r.list(ctx, bson.M{"status": status})
}

func (r *contactRepository) list(ctx context.Context, filter bson.M) ([]domain.ContactRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var requests []domain.ContactRequest
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// SetStatus overwrites the status unconditionally; it does not verify the
// prior state. Re-approving an approved request is a no-op at the document
// level but still reports a match.
func (r *contactRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.ContactStatus) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *contactRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
