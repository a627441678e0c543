package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// StudioResponse публичный профиль студии
type StudioResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Website     *string   `json:"website"`

	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postal_code"`
	Country      *string `json:"country"`

	Timezone              string `json:"timezone"`
	Currency              string `json:"currency"`
	BookingWindowDays     int    `json:"booking_window_days"`
	MinBookingNoticeHours int    `json:"min_booking_notice_hours"`
}

// PackageResponse пакет для страницы бронирования
type PackageResponse struct {
	ID                  uuid.UUID               `json:"id"`
	Name                string                  `json:"name"`
	Slug                string                  `json:"slug"`
	Description         *string                 `json:"description"`
	SessionType         string                  `json:"session_type"`
	DurationMinutes     int                     `json:"duration_minutes"`
	MinDurationMinutes  *int                    `json:"min_duration_minutes"`
	MaxDurationMinutes  *int                    `json:"max_duration_minutes"`
	AllowCustomDuration bool                    `json:"allow_custom_duration"`
	BasePrice           float64                 `json:"base_price"`
	Currency            string                  `json:"currency"`
	FeaturedImageURL    *string                 `json:"featured_image_url"`
	Color               *string                 `json:"color"`
	CustomQuestions     []domain.CustomQuestion `json:"custom_questions"`
}

// FromDomainStudio конвертирует студию в публичный профиль
func FromDomainStudio(s *domain.Studio) *StudioResponse {
	return &StudioResponse{
		ID:                    s.ID,
		Name:                  s.Name,
		Slug:                  s.Slug,
		Description:           s.Description,
		Email:                 s.Email,
		Phone:                 s.Phone,
		Website:               s.Website,
		AddressLine1:          s.AddressLine1,
		AddressLine2:          s.AddressLine2,
		City:                  s.City,
		State:                 s.State,
		PostalCode:            s.PostalCode,
		Country:               s.Country,
		Timezone:              s.Timezone,
		Currency:              s.Currency,
		BookingWindowDays:     s.BookingWindowDays,
		MinBookingNoticeHours: s.MinBookingNoticeHours,
	}
}

// FromDomainPackage конвертирует пакет в публичный DTO
func FromDomainPackage(p *domain.Package) *PackageResponse {
	return &PackageResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Slug:                p.Slug,
		Description:         p.Description,
		SessionType:         string(p.SessionType),
		DurationMinutes:     p.DurationMinutes,
		MinDurationMinutes:  p.MinDurationMinutes,
		MaxDurationMinutes:  p.MaxDurationMinutes,
		AllowCustomDuration: p.AllowCustomDuration,
		BasePrice:           p.BasePrice,
		Currency:            p.Currency,
		FeaturedImageURL:    p.FeaturedImageURL,
		Color:               p.Color,
		CustomQuestions:     p.CustomQuestions,
	}
}

// FromDomainPackageList конвертирует список пакетов, пустой список - не nil
func FromDomainPackageList(packages []*domain.Package) []PackageResponse {
	result := make([]PackageResponse, 0, len(packages))
	for _, p := range packages {
		result = append(result, *FromDomainPackage(p))
	}
	return result
}
