package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxNameLength is the upper bound on a hospital name after trimming.
const MaxNameLength = 100

// DefaultWaitTime is the display string used when a client omits waitTime.
const DefaultWaitTime = "0 mins"

// Specialty is one of the fixed medical specialties a hospital can offer.
// Values outside the enumeration are rejected at validation time, never
// silently dropped.
type Specialty string

const (
	SpecialtyCardiology  Specialty = "Cardiology"
	SpecialtyEmergency   Specialty = "Emergency"
	SpecialtyNeurology   Specialty = "Neurology"
	SpecialtyOrthopedics Specialty = "Orthopedics"
	SpecialtyPediatrics  Specialty = "Pediatrics"
	SpecialtySurgery     Specialty = "Surgery"
)

// AllSpecialties lists the closed specialty enumeration in display order.
var AllSpecialties = []Specialty{
	SpecialtyCardiology,
	SpecialtyEmergency,
	SpecialtyNeurology,
	SpecialtyOrthopedics,
	SpecialtyPediatrics,
	SpecialtySurgery,
}

// IsValid reports whether s is a member of the specialty enumeration.
func (s Specialty) IsValid() bool {
	for _, known := range AllSpecialties {
		if s == known {
			return true
		}
	}
	return false
}

// Hospital represents a hospital record in the directory
type Hospital struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Address       string             `bson:"address" json:"address"`
	Phone         string             `bson:"phone" json:"phone"`
	Beds          int                `bson:"beds" json:"beds"`
	AvailableBeds int                `bson:"availableBeds" json:"availableBeds"`
	Emergency     bool               `bson:"emergency" json:"emergency"`
	OpenNow       bool               `bson:"openNow" json:"openNow"`
	Rating        float64            `bson:"rating" json:"rating"`
	Specialties   []Specialty        `bson:"specialties" json:"specialties"`
	WaitTime      string             `bson:"waitTime" json:"waitTime"`
	Distance      float64            `bson:"distance" json:"distance"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CollectionName specifies the MongoDB collection for Hospital records
func (Hospital) CollectionName() string {
	return "hospitals"
}

// HospitalInput is the client-supplied shape for create and full update.
// OpenNow is a pointer so an omitted field can default to true instead of
// false; the id and timestamps are store-owned and not accepted here.
type HospitalInput struct {
	Name          string   `json:"name" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	Phone         string   `json:"phone" binding:"required"`
	Beds          int      `json:"beds"`
	AvailableBeds int      `json:"availableBeds"`
	Emergency     bool     `json:"emergency"`
	OpenNow       *bool    `json:"openNow"`
	Rating        float64  `json:"rating"`
	Specialties   []string `json:"specialties" binding:"omitempty,dive,specialty"`
	WaitTime      string   `json:"waitTime"`
	Distance      float64  `json:"distance"`
}

// Validate trims text fields, applies defaults for omitted optional fields,
// and checks every record invariant. It returns the normalized record and
// the full list of violations, not just the first one found; the record is
// only meaningful when the returned ValidationErrors is empty.
//
// This runs on every create and full update, even single-field edits: the
// bed-count invariant depends on the beds/availableBeds combination, so a
// candidate must always be checked as a whole.
func (in HospitalInput) Validate() (Hospital, ValidationErrors) {
	var errs ValidationErrors

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = errs.Add("name", "Name is required")
	} else if len(name) > MaxNameLength {
		errs = errs.Add("name", fmt.Sprintf("Name cannot be more than %d characters", MaxNameLength))
	}

	address := strings.TrimSpace(in.Address)
	if address == "" {
		errs = errs.Add("address", "Address is required")
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		errs = errs.Add("phone", "Phone number is required")
	}

	if in.Beds < 0 {
		errs = errs.Add("beds", "Total beds cannot be negative")
	}
	if in.AvailableBeds < 0 {
		errs = errs.Add("availableBeds", "Available beds cannot be negative")
	} else if in.AvailableBeds > in.Beds {
		errs = errs.Add("availableBeds", "Available beds cannot exceed total beds")
	}

	if in.Rating < 0 {
		errs = errs.Add("rating", "Rating cannot be less than 0")
	} else if in.Rating > 5 {
		errs = errs.Add("rating", "Rating cannot exceed 5")
	}

	if in.Distance < 0 {
		errs = errs.Add("distance", "Distance cannot be negative")
	}

	specialties := make([]Specialty, 0, len(in.Specialties))
	for _, raw := range in.Specialties {
		s := Specialty(strings.TrimSpace(raw))
		if !s.IsValid() {
			errs = errs.Add("specialties", fmt.Sprintf("%s is not a valid specialty", raw))
			continue
		}
		specialties = append(specialties, s)
	}

	openNow := true
	if in.OpenNow != nil {
		openNow = *in.OpenNow
	}

	waitTime := strings.TrimSpace(in.WaitTime)
	if waitTime == "" {
		waitTime = DefaultWaitTime
	}

	return Hospital{
		Name:          name,
		Address:       address,
		Phone:         phone,
		Beds:          in.Beds,
		AvailableBeds: in.AvailableBeds,
		Emergency:     in.Emergency,
		OpenNow:       openNow,
		Rating:        in.Rating,
		Specialties:   specialties,
		WaitTime:      waitTime,
		Distance:      in.Distance,
	}, errs
}
