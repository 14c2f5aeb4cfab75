package service_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
)

// ---------- Mocks ----------

type mockPublisher struct {
	subjects []string
}

func (m *mockPublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	m.subjects = append(m.subjects, subject)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

type mockMailer struct {
	premiumTo []string
	contactTo []string
}

func (m *mockMailer) SendPremiumApproved(toEmail, _ string) error {
	m.premiumTo = append(m.premiumTo, toEmail)
	return nil
}

func (m *mockMailer) SendContactApproved(toEmail string, _ int64) error {
	m.contactTo = append(m.contactTo, toEmail)
	return nil
}

type mockUserRepo struct {
	users map[string]*domain.User // email -> user
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) put(u *domain.User) *domain.User {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users[u.Email] = u
	return u
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return m.put(user), nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return m.users[email], nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) SetRole(_ context.Context, id primitive.ObjectID, role string) (bool, error) {
	for _, u := range m.users {
		if u.ID == id {
			u.Role = role
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) SetTierByID(_ context.Context, id primitive.ObjectID, tier domain.Tier, approvedAt time.Time) (bool, error) {
	for _, u := range m.users {
		if u.ID == id {
			u.Tier = tier
			u.ApprovedAt = &approvedAt
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) SetTierByEmail(_ context.Context, email string, tier domain.Tier, approvedAt time.Time) (bool, error) {
	u, ok := m.users[email]
	if !ok {
		return false, nil
	}
	u.Tier = tier
	u.ApprovedAt = &approvedAt
	return true, nil
}

func (m *mockUserRepo) AddFavorite(_ context.Context, email string, biodataID int64) (bool, error) {
	u, ok := m.users[email]
	if !ok {
		return false, nil
	}
	for _, id := range u.Favorites {
		if id == biodataID {
			return true, nil
		}
	}
	u.Favorites = append(u.Favorites, biodataID)
	return true, nil
}

func (m *mockUserRepo) RemoveFavorite(_ context.Context, email string, biodataID int64) (bool, error) {
	u, ok := m.users[email]
	if !ok {
		return false, nil
	}
	out := u.Favorites[:0]
	for _, id := range u.Favorites {
		if id != biodataID {
			out = append(out, id)
		}
	}
	u.Favorites = out
	return true, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for email, u := range m.users {
		if u.ID == id {
			delete(m.users, email)
			return true, nil
		}
	}
	return false, nil
}

type mockBiodataRepo struct {
	biodatas map[int64]*domain.Biodata // bioData_id -> biodata
}

func newMockBiodataRepo() *mockBiodataRepo {
	return &mockBiodataRepo{biodatas: make(map[int64]*domain.Biodata)}
}

func (m *mockBiodataRepo) put(b *domain.Biodata) *domain.Biodata {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	m.biodatas[b.BiodataID] = b
	return b
}

func (m *mockBiodataRepo) Insert(_ context.Context, biodata *domain.Biodata) (*domain.Biodata, error) {
	return m.put(biodata), nil
}

func (m *mockBiodataRepo) FindByBiodataID(_ context.Context, biodataID int64) (*domain.Biodata, error) {
	return m.biodatas[biodataID], nil
}

func (m *mockBiodataRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Biodata, error) {
	for _, b := range m.biodatas {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (m *mockBiodataRepo) FindByContactEmail(_ context.Context, email string) (*domain.Biodata, error) {
	for _, b := range m.biodatas {
		if b.ContactEmail == email {
			return b, nil
		}
	}
	return nil, nil
}

func (m *mockBiodataRepo) List(_ context.Context, _ domain.BiodataFilter) ([]domain.Biodata, int64, error) {
	var out []domain.Biodata
	for _, b := range m.biodatas {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (m *mockBiodataRepo) ListPremium(_ context.Context, _, _ int64) ([]domain.Biodata, int64, error) {
	var out []domain.Biodata
	for _, b := range m.biodatas {
		if b.Tier == domain.TierPremium {
			out = append(out, *b)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockBiodataRepo) ListRelated(_ context.Context, _ string, _, _ int64) ([]domain.Biodata, error) {
	return nil, nil
}

func (m *mockBiodataRepo) ListByTier(_ context.Context, tier domain.Tier) ([]domain.Biodata, error) {
	var out []domain.Biodata
	for _, b := range m.biodatas {
		if b.Tier == tier {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBiodataRepo) ListByBiodataIDs(_ context.Context, ids []int64) ([]domain.Biodata, error) {
	var out []domain.Biodata
	for _, id := range ids {
		if b, ok := m.biodatas[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBiodataRepo) LastBiodataID(_ context.Context) (int64, error) {
	var last int64
	for id := range m.biodatas {
		if id > last {
			last = id
		}
	}
	return last, nil
}

func (m *mockBiodataRepo) UpdateByContactEmail(_ context.Context, email string, fields bson.M) (bool, error) {
	for _, b := range m.biodatas {
		if b.ContactEmail == email {
			if v, ok := fields["mobile_number"].(string); ok {
				b.MobileNumber = v
			}
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBiodataRepo) SetTierPending(_ context.Context, email string, requestedAt time.Time) (bool, error) {
	for _, b := range m.biodatas {
		if b.ContactEmail == email {
			b.Tier = domain.TierPending
			b.RequestedAt = &requestedAt
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBiodataRepo) SetTierPremium(_ context.Context, email string, approvedAt time.Time) (bool, error) {
	for _, b := range m.biodatas {
		if b.ContactEmail == email {
			b.Tier = domain.TierPremium
			b.ApprovedAt = &approvedAt
			return true, nil
		}
	}
	return false, nil
}

type mockContactRepo struct {
	requests map[primitive.ObjectID]*domain.ContactRequest
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{requests: make(map[primitive.ObjectID]*domain.ContactRequest)}
}

func (m *mockContactRepo) Insert(_ context.Context, req *domain.ContactRequest) (*domain.ContactRequest, error) {
	req.ID = primitive.NewObjectID()
	m.requests[req.ID] = req
	return req, nil
}

func (m *mockContactRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.ContactRequest, error) {
	return m.requests[id], nil
}

func (m *mockContactRepo) ListByCheckoutEmail(_ context.Context, email string) ([]domain.ContactRequest, error) {
	var out []domain.ContactRequest
	for _, req := range m.requests {
		if req.CheckoutEmail == email {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (m *mockContactRepo) ListByStatus(_ context.Context, status domain.ContactStatus) ([]domain.ContactRequest, error) {
	var out []domain.ContactRequest
	for _, req := range m.requests {
		if req.Status == status {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (m *mockContactRepo) SetStatus(_ context.Context, id primitive.ObjectID, status domain.ContactStatus) (bool, error) {
	req, ok := m.requests[id]
	if !ok {
		return false, nil
	}
	req.Status = status
	return true, nil
}

func (m *mockContactRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := m.requests[id]; !ok {
		return false, nil
	}
	delete(m.requests, id)
	return true, nil
}
