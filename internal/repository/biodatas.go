package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
)

type BiodataRepository interface {
	Insert(ctx context.Context, biodata *domain.Biodata) (*domain.Biodata, error)
	FindByBiodataID(ctx context.Context, biodataID int64) (*domain.Biodata, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Biodata, error)
	FindByContactEmail(ctx context.Context, email string) (*domain.Biodata, error)
	List(ctx context.Context, filter domain.BiodataFilter) ([]domain.Biodata, int64, error)
	ListPremium(ctx context.Context, limit, offset int64) ([]domain.Biodata, int64, error)
	ListRelated(ctx context.Context, biodataType string, excludeID, limit int64) ([]domain.Biodata, error)
	ListByTier(ctx context.Context, tier domain.Tier) ([]domain.Biodata, error)
	ListByBiodataIDs(ctx context.Context, ids []int64) ([]domain.Biodata, error)
	LastBiodataID(ctx context.Context) (int64, error)
	UpdateByContactEmail(ctx context.Context, email string, fields bson.M) (bool, error)
	SetTierPending(ctx context.Context, email string, requestedAt time.Time) (bool, error)
	SetTierPremium(ctx context.Context, email string, approvedAt time.Time) (bool, error)
}

type biodataRepository struct {
	coll *mongo.Collection
}

func NewBiodataRepository(coll *mongo.Collection) BiodataRepository {
	return &biodataRepository{coll: coll}
}

func (r *biodataRepository) Insert(ctx context.Context, biodata *domain.Biodata) (*domain.Biodata, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, biodata)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		biodata.ID = oid
	}
	return biodata, nil
}

func (r *biodataRepository) findOne(ctx context.Context, filter bson.M) (*domain.Biodata, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var b domain.Biodata
	err := r.coll.FindOne(ctx, filter).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *biodataRepository) FindByBiodataID(ctx context.Context, biodataID int64) (*domain.Biodata, error) {
	return r.findOne(ctx, bson.M{"bioData_id": biodataID})
}

func (r *biodataRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Biodata, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *biodataRepository) FindByContactEmail(ctx context.Context, email string) (*domain.Biodata, error) {
	return r.findOne(ctx, bson.M{"contact_email": email})
}

func (r *biodataRepository) List(ctx context.Context, filter domain.BiodataFilter) ([]domain.Biodata, int64, error) {
	filter.Normalize()

	query := bson.M{}
	if filter.AgeMin > 0 && filter.AgeMax > 0 {
		query["age"] = bson.M{"$gte": filter.AgeMin, "$lte": filter.AgeMax}
	}
	if filter.Type != "" {
		query["bioData_type"] = filter.Type
	}
	if filter.Division != "" {
		query["permanent_division"] = filter.Division
	}

	return r.listWithCount(ctx, query, filter.Limit, filter.Offset)
}

func (r *biodataRepository) ListPremium(ctx context.Context, limit, offset int64) ([]domain.Biodata, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 6
	}
	if offset < 0 {
		offset = 0
	}
	return r.listWithCount(ctx, bson.M{"tire": domain.TierPremium}, limit, offset)
}

func (r *biodataRepository) listWithCount(ctx context.Context, query bson.M, limit, offset int64) ([]domain.Biodata, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSkip(offset).SetLimit(limit)
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var biodatas []domain.Biodata
	if err := cur.All(ctx, &biodatas); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return biodatas, total, nil
}

func (r *biodataRepository) ListRelated(ctx context.Context, biodataType string, excludeID, limit int64) ([]domain.Biodata, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if limit <= 0 || limit > 20 {
		limit = 3
	}
	query := bson.M{"bioData_type": biodataType, "bioData_id": bson.M{"$ne": excludeID}}
	cur, err := r.coll.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var biodatas []domain.Biodata
	if err := cur.All(ctx, &biodatas); err != nil {
		return nil, err
	}
	return biodatas, nil
}

func (r *biodataRepository) ListByTier(ctx context.Context, tier domain.Tier) ([]domain.Biodata, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"tire": tier})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var biodatas []domain.Biodata
	if err := cur.All(ctx, &biodatas); err != nil {
		return nil, err
	}
	return biodatas, nil
}

func (r *biodataRepository) ListByBiodataIDs(ctx context.Context, ids []int64) ([]domain.Biodata, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"bioData_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var biodatas []domain.Biodata
	if err := cur.All(ctx, &biodatas); err != nil {
		return nil, err
	}
	return biodatas, nil
}

// LastBiodataID returns the highest assigned external id, or 0 when the
// collection is empty. Callers assign the next dense id themselves.
func (r *biodataRepository) LastBiodataID(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "bioData_id", Value: -1}}).
		SetProjection(bson.M{"_id": 0, "bioData_id": 1})

	var doc struct {
		BiodataID int64 `bson:"bioData_id"`
	}
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.BiodataID, nil
}

func (r *biodataRepository) UpdateByContactEmail(ctx context.Context, email string, fields bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"contact_email": email},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0 || res.UpsertedCount > 0, nil
}

func (r *biodataRepository) SetTierPending(ctx context.Context, email string, requestedAt time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"tire": domain.TierPending, "requestedAt": requestedAt}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"contact_email": email}, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *biodataRepository) SetTierPremium(ctx context.Context, email string, approvedAt time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"tire": domain.TierPremium, "approvedAt": approvedAt}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"contact_email": email}, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
