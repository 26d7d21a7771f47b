package dto

import (
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
)

type MarketStatusResponseDTO struct {
	Status       string    `json:"status" example:"success"`
	IsOpen       bool      `json:"is_open" example:"true"`
	Override     string    `json:"override,omitempty" example:"CLOSED" enums:"OPEN,CLOSED"`
	HoursEnabled bool      `json:"hours_enabled" example:"true"`
	OpenHour     *int      `json:"open_hour,omitempty" example:"18"`
	CloseHour    *int      `json:"close_hour,omitempty" example:"23"`
	Timestamp    time.Time `json:"timestamp"`
}

func FromMarketStatus(s *domain.MarketStatus, now time.Time) MarketStatusResponseDTO {
	resp := MarketStatusResponseDTO{
		Status:    string(domain.CodeSuccess),
		IsOpen:    s.Open,
		Timestamp: now,
	}
	if s.Override != nil {
		resp.Override = "CLOSED"
		if *s.Override {
			resp.Override = "OPEN"
		}
	}
	if s.Hours != nil {
		start, end := s.Hours.Start, s.Hours.End
		resp.HoursEnabled = true
		resp.OpenHour, resp.CloseHour = &start, &end
	}
	return resp
}
