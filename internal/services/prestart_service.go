package services

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/RogerGower/hsw-mvp/internal/models"
	"github.com/RogerGower/hsw-mvp/internal/store"
	"github.com/RogerGower/hsw-mvp/internal/utils"
)

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

type PrestartService interface {
	// Schema returns the published structural schema document.
	Schema(ctx context.Context) ([]byte, error)

	// Example returns the canonical valid example record.
	Example(ctx context.Context) *models.Prestart

	// Submit appends an already-validated record and returns the new
	// store count.
	Submit(ctx context.Context, rec *models.Prestart) (int, error)

	Ping(ctx context.Context) error // tiny health-probe
}

type prestartService struct {
	store store.SubmissionStore
}

func NewPrestartService(s store.SubmissionStore) PrestartService {
	return &prestartService{store: s}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *prestartService) Schema(_ context.Context) ([]byte, error) {
	return models.Schema()
}

func (s *prestartService) Example(_ context.Context) *models.Prestart {
	return models.Example()
}

func (s *prestartService) Submit(ctx context.Context, rec *models.Prestart) (int, error) {
	// Absent optional collections default to empty, not null.
	if rec.Tyres == nil {
		rec.Tyres = []models.Tyre{}
	}
	if rec.Defects == nil {
		rec.Defects = []models.Defect{}
	}

	idx, err := s.store.Append(ctx, rec)
	if err != nil {
		return 0, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Could not store submission",
			Err:        err,
		}
	}

	utils.Logger.WithFields(logrus.Fields{
		"plantNumber": rec.GeneralInfo.PlantNumber,
		"position":    idx,
		"checks":      len(rec.Checks),
		"defects":     len(rec.Defects),
	}).Info("Stored pre-start submission")

	return idx + 1, nil
}

func (s *prestartService) Ping(ctx context.Context) error {
	// The schema must be buildable and the store reachable.
	if _, err := models.Schema(); err != nil {
		return err
	}
	_, err := s.store.Count(ctx)
	return err
}
