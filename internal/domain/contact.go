package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactStatus string

const (
	ContactPending  ContactStatus = "Pending"
	ContactApproved ContactStatus = "Approved"
)

// ContactRequest is a paid request to see a profile owner's private contact
// details. The biodata fields are snapshotted at initiation so later profile
// edits cannot change what an existing request shows.
type ContactRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BiodataID         int64              `bson:"bioData_id" json:"bioData_id"`
	Name              string             `bson:"name" json:"name"`
	ContactEmail      string             `bson:"contact_email" json:"contact_email"`
	ContactPhone      string             `bson:"contact_phone" json:"contact_phone"`
	Image             string             `bson:"image" json:"image"`
	CheckoutEmail     string             `bson:"checkoutEmail" json:"checkoutEmail"`
	CheckoutCreatedAt time.Time          `bson:"checkoutCreatedAt" json:"checkoutCreatedAt"`
	Status            ContactStatus      `bson:"status" json:"status"`
}

type InitiateContactRequest struct {
	BiodataRef string `json:"biodataId"`
	Email      string `json:"email"`
}

func (r *InitiateContactRequest) Normalize() {
	r.BiodataRef = strings.TrimSpace(r.BiodataRef)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *InitiateContactRequest) Validate() error {
	if r.BiodataRef == "" || r.Email == "" {
		return fmt.Errorf("biodata id and email are required")
	}
	return nil
}
