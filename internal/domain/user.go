package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Tier is the premium-visibility status shared by a User and their Biodata.
// The bson field is spelled "tire" because that is what the production data
// carries.
type Tier string

const (
	TierNone    Tier = "none"
	TierPending Tier = "pending"
	TierPremium Tier = "premium"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL   string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Tier       Tier               `bson:"tire,omitempty" json:"tire,omitempty"`
	ApprovedAt *time.Time         `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	Favorites  []int64            `bson:"favorites,omitempty" json:"favorites,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateUserRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is invalid")
	}
	return nil
}

type FavoriteRequest struct {
	Email     string `json:"email"`
	BiodataID int64  `json:"bioDataId"`
}

func (r *FavoriteRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *FavoriteRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.BiodataID <= 0 {
		return fmt.Errorf("bioDataId is required")
	}
	return nil
}
