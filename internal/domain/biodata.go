package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Biodata is a matchmaking profile. BiodataID is a dense, caller-assigned
// external identifier and is distinct from the Mongo document id.
type Biodata struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BiodataID         int64              `bson:"bioData_id" json:"bioData_id"`
	Type              string             `bson:"bioData_type,omitempty" json:"bioData_type,omitempty"`
	Name              string             `bson:"name,omitempty" json:"name,omitempty"`
	ProfileImage      string             `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	DateOfBirth       string             `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Age               int                `bson:"age,omitempty" json:"age,omitempty"`
	Height            string             `bson:"height,omitempty" json:"height,omitempty"`
	Weight            string             `bson:"weight,omitempty" json:"weight,omitempty"`
	Occupation        string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Race              string             `bson:"race,omitempty" json:"race,omitempty"`
	FathersName       string             `bson:"fathers_name,omitempty" json:"fathers_name,omitempty"`
	MothersName       string             `bson:"mothers_name,omitempty" json:"mothers_name,omitempty"`
	PermanentDivision string             `bson:"permanent_division,omitempty" json:"permanent_division,omitempty"`
	PresentDivision   string             `bson:"present_division,omitempty" json:"present_division,omitempty"`
	ExpectedAge       string             `bson:"expected_partner_age,omitempty" json:"expected_partner_age,omitempty"`
	ExpectedHeight    string             `bson:"expected_partner_height,omitempty" json:"expected_partner_height,omitempty"`
	ExpectedWeight    string             `bson:"expected_partner_weight,omitempty" json:"expected_partner_weight,omitempty"`
	ContactEmail      string             `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	MobileNumber      string             `bson:"mobile_number,omitempty" json:"mobile_number,omitempty"`
	Tier              Tier               `bson:"tire,omitempty" json:"tire,omitempty"`
	RequestedAt       *time.Time         `bson:"requestedAt,omitempty" json:"requestedAt,omitempty"`
	ApprovedAt        *time.Time         `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
}

// BiodataFilter narrows public browsing. Zero values mean "no constraint".
type BiodataFilter struct {
	AgeMin   int
	AgeMax   int
	Type     string
	Division string
	Limit    int64
	Offset   int64
}

func (f *BiodataFilter) Normalize() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 9
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// ParseBiodataRef accepts the external biodata reference as clients send it:
// either a bare integer or an integer with a single-character prefix the way
// the web client renders ids ("B12").
func ParseBiodataRef(ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, fmt.Errorf("biodata id is required")
	}
	if ref[0] < '0' || ref[0] > '9' {
		ref = ref[1:]
	}
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("biodata id %q is invalid", ref)
	}
	return id, nil
}
