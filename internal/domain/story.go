package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuccessStory is a couple's submitted story. One story per submitter email.
type SuccessStory struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email            string             `bson:"email" json:"email"`
	SelfBiodataID    int64              `bson:"self_biodata_id,omitempty" json:"self_biodata_id,omitempty"`
	PartnerBiodataID int64              `bson:"partner_biodata_id,omitempty" json:"partner_biodata_id,omitempty"`
	CoupleImage      string             `bson:"couple_image,omitempty" json:"couple_image,omitempty"`
	Story            string             `bson:"story,omitempty" json:"story,omitempty"`
	MarriageDate     string             `bson:"marriage_date,omitempty" json:"marriage_date,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
