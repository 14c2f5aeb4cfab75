package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/service"
)

func newPremiumService(users *mockUserRepo, biodatas *mockBiodataRepo) (service.PremiumService, *mockPublisher, *mockMailer) {
	bus := &mockPublisher{}
	mail := &mockMailer{}
	return service.NewPremiumService(users, biodatas, bus, mail), bus, mail
}

func TestRequestUpgradeSetsPending(t *testing.T) {
	biodatas := newMockBiodataRepo()
	biodatas.put(&domain.Biodata{BiodataID: 1, ContactEmail: "owner@x.com", Tier: domain.TierNone})
	svc, bus, _ := newPremiumService(newMockUserRepo(), biodatas)

	result, err := svc.RequestUpgrade(context.Background(), "owner@x.com")
	if err != nil {
		t.Fatalf("RequestUpgrade: %v", err)
	}
	if !result.Success {
		t.Errorf("result = %+v, want success", result)
	}

	b := biodatas.biodatas[1]
	if b.Tier != domain.TierPending {
		t.Errorf("tier = %q, want pending", b.Tier)
	}
	if b.RequestedAt == nil {
		t.Error("requestedAt not stamped")
	}
	if len(bus.subjects) != 1 {
		t.Errorf("published %d events, want 1", len(bus.subjects))
	}
}

func TestRequestUpgradeAlreadyPremium(t *testing.T) {
	approvedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	biodatas := newMockBiodataRepo()
	biodatas.put(&domain.Biodata{
		BiodataID:    1,
		ContactEmail: "owner@x.com",
		Tier:         domain.TierPremium,
		ApprovedAt:   &approvedAt,
	})
	svc, _, _ := newPremiumService(newMockUserRepo(), biodatas)

	result, err := svc.RequestUpgrade(context.Background(), "owner@x.com")
	if err != nil {
		t.Fatalf("RequestUpgrade: %v", err)
	}
	if result.Success {
		t.Errorf("result = %+v, want non-success already-premium signal", result)
	}

	b := biodatas.biodatas[1]
	if b.Tier != domain.TierPremium {
		t.Errorf("tier = %q, want premium unchanged", b.Tier)
	}
	if b.ApprovedAt == nil || !b.ApprovedAt.Equal(approvedAt) {
		t.Errorf("approvedAt = %v, want unchanged %v", b.ApprovedAt, approvedAt)
	}
}

func TestRequestUpgradeAlreadyPending(t *testing.T) {
	biodatas := newMockBiodataRepo()
	biodatas.put(&domain.Biodata{BiodataID: 1, ContactEmail: "owner@x.com", Tier: domain.TierPending})
	svc, _, _ := newPremiumService(newMockUserRepo(), biodatas)

	result, err := svc.RequestUpgrade(context.Background(), "owner@x.com")
	if err != nil {
		t.Fatalf("RequestUpgrade: %v", err)
	}
	if result.Success {
		t.Errorf("result = %+v, want non-success already-pending signal", result)
	}
}

func TestRequestUpgradeMissingBiodata(t *testing.T) {
	svc, _, _ := newPremiumService(newMockUserRepo(), newMockBiodataRepo())

	_, err := svc.RequestUpgrade(context.Background(), "nobody@x.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestApproveUpdatesBothDocuments(t *testing.T) {
	users := newMockUserRepo()
	user := users.put(&domain.User{Email: "owner@x.com", Role: domain.RoleMember})
	biodatas := newMockBiodataRepo()
	biodatas.put(&domain.Biodata{BiodataID: 1, ContactEmail: "owner@x.com", Tier: domain.TierPending})
	svc, _, mail := newPremiumService(users, biodatas)

	if err := svc.Approve(context.Background(), user.ID.Hex(), "owner@x.com"); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	if user.Tier != domain.TierPremium || user.ApprovedAt == nil {
		t.Errorf("user tier = %q approvedAt = %v, want premium + stamp", user.Tier, user.ApprovedAt)
	}
	b := biodatas.biodatas[1]
	if b.Tier != domain.TierPremium || b.ApprovedAt == nil {
		t.Errorf("biodata tier = %q approvedAt = %v, want premium + stamp", b.Tier, b.ApprovedAt)
	}
	if len(mail.premiumTo) != 1 || mail.premiumTo[0] != "owner@x.com" {
		t.Errorf("approval email to %v, want [owner@x.com]", mail.premiumTo)
	}
}

func TestApprovePartialFailureKeepsUserUpdate(t *testing.T) {
	users := newMockUserRepo()
	user := users.put(&domain.User{Email: "owner@x.com", Role: domain.RoleMember})
	// No biodata document exists for the owner.
	svc, _, _ := newPremiumService(users, newMockBiodataRepo())

	err := svc.Approve(context.Background(), user.ID.Hex(), "owner@x.com")
	if err == nil {
		t.Fatal("Approve succeeded, want failure on missing biodata")
	}

	// The user-side update is not rolled back.
	if user.Tier != domain.TierPremium {
		t.Errorf("user tier = %q, want premium despite reported failure", user.Tier)
	}
}

func TestApproveByEmailRequiresBothDocuments(t *testing.T) {
	users := newMockUserRepo()
	users.put(&domain.User{Email: "owner@x.com", Role: domain.RoleMember})
	svc, _, _ := newPremiumService(users, newMockBiodataRepo())

	err := svc.ApproveByEmail(context.Background(), "owner@x.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound when biodata is absent", err)
	}
}

func TestApproveByEmailConverges(t *testing.T) {
	users := newMockUserRepo()
	user := users.put(&domain.User{Email: "owner@x.com", Role: domain.RoleMember})
	biodatas := newMockBiodataRepo()
	biodatas.put(&domain.Biodata{BiodataID: 1, ContactEmail: "owner@x.com", Tier: domain.TierPending})
	svc, _, _ := newPremiumService(users, biodatas)

	if err := svc.ApproveByEmail(context.Background(), "owner@x.com"); err != nil {
		t.Fatalf("first ApproveByEmail: %v", err)
	}
	// Retrying the approval is idempotent once both sides are premium.
	if err := svc.ApproveByEmail(context.Background(), "owner@x.com"); err != nil {
		t.Fatalf("retry ApproveByEmail: %v", err)
	}
	if user.Tier != domain.TierPremium || biodatas.biodatas[1].Tier != domain.TierPremium {
		t.Error("documents did not converge to premium")
	}
}
