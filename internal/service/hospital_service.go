package service

import (
	"context"
	"fmt"

	"hospital-directory-backend/internal/models"
)

// HospitalRepository is the persistence gateway the service drives. The
// MongoDB implementation lives in internal/repository; tests substitute an
// in-memory fake.
type HospitalRepository interface {
	FindAll(ctx context.Context) ([]models.Hospital, error)
	Insert(ctx context.Context, hospital *models.Hospital) error
	Replace(ctx context.Context, id string, hospital *models.Hospital) (*models.Hospital, error)
	SetOpenNow(ctx context.Context, id string, openNow bool) (*models.Hospital, error)
	Delete(ctx context.Context, id string) error
}

type HospitalService struct {
	hospitalRepo HospitalRepository
}

func NewHospitalService(hospitalRepo HospitalRepository) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
	}
}

// ListHospitals retrieves all hospitals, newest first.
func (s *HospitalService) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	return s.hospitalRepo.FindAll(ctx)
}

// CreateHospital validates and normalizes the candidate, then writes it.
// Nothing reaches the store while any constraint is violated.
func (s *HospitalService) CreateHospital(ctx context.Context, input models.HospitalInput) (*models.Hospital, error) {
	hospital, errs := input.Validate()
	if len(errs) > 0 {
		return nil, errs
	}

	if err := s.hospitalRepo.Insert(ctx, &hospital); err != nil {
		if err == models.ErrDuplicateHospital {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}
	return &hospital, nil
}

// UpdateHospital replaces all mutable fields of an existing record. The
// candidate is re-validated as a whole, not as a diff: the bed-count
// invariant spans two fields, so a partial check cannot be trusted.
func (s *HospitalService) UpdateHospital(ctx context.Context, id string, input models.HospitalInput) (*models.Hospital, error) {
	hospital, errs := input.Validate()
	if len(errs) > 0 {
		return nil, errs
	}

	updated, err := s.hospitalRepo.Replace(ctx, id, &hospital)
	if err != nil {
		if err == models.ErrHospitalNotFound || err == models.ErrDuplicateHospital {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}
	return updated, nil
}

// SetStatus flips only openNow. It deliberately skips full re-validation:
// toggling open/closed is frequent and low-risk, and must not fail on
// unrelated stale fields.
func (s *HospitalService) SetStatus(ctx context.Context, id string, openNow bool) (*models.Hospital, error) {
	updated, err := s.hospitalRepo.SetOpenNow(ctx, id, openNow)
	if err != nil {
		if err == models.ErrHospitalNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	return updated, nil
}

// DeleteHospital removes a record by id.
func (s *HospitalService) DeleteHospital(ctx context.Context, id string) error {
	if err := s.hospitalRepo.Delete(ctx, id); err != nil {
		if err == models.ErrHospitalNotFound {
			return err
		}
		return fmt.Errorf("failed to delete hospital: %w", err)
	}
	return nil
}
