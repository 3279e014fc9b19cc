package services

import (
	"context"
	"fmt"
	"log"

	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
)

// HotelSettingService exposes the single-row hotel profile printed on bills.
type HotelSettingService struct {
	Settings *repositories.HotelSettingRepository
}

func NewHotelSettingService(settings *repositories.HotelSettingRepository) *HotelSettingService {
	return &HotelSettingService{Settings: settings}
}

func (s *HotelSettingService) Get(ctx context.Context) (*models.HotelSettings, error) {
	return s.Settings.Get(ctx)
}

func (s *HotelSettingService) Update(ctx context.Context, req *models.UpdateHotelSettingsRequest) (*models.HotelSettings, error) {
	if err := s.Settings.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	log.Printf("[Settings] Hotel profile updated (%s)", req.Name)
	return s.Settings.Get(ctx)
}
