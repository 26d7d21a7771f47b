package marketservice

//go:generate mockgen -source=marketservice.go -destination=mock_marketservice.go -package=marketservice

import (
	"context"
	"strconv"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

const (
	OverrideKey             = "market_override"
	RedistributionAmountKey = "redistribution_amount"

	// OverrideOpen forces the market open regardless of the hour window.
	OverrideOpen = "OPEN"
	// OverrideClosed forces the market closed.
	OverrideClosed = "CLOSED"

	MaxRedistributionAmount = domain.MaxRedistributionAmount
)

type Options struct {
	Open                 bool
	HoursEnabled         bool
	OpenHour             int
	CloseHour            int
	RedistributionAmount int64
}

type Service struct {
	repo Repo
	opts Options
	now  func() time.Time
}

func New(repo Repo, opts Options) *Service {
	return &Service{
		repo: repo,
		opts: opts,
		now:  time.Now,
	}
}

func (s *Service) override(ctx context.Context) (*bool, error) {
	value, ok, err := s.repo.Get(ctx, OverrideKey)
	if err != nil || !ok {
		return nil, err
	}
	var open bool
	switch value {
	case OverrideOpen:
		open = true
	case OverrideClosed:
		open = false
	default:
		zap.L().Warn("ignoring unknown market override", zap.String("value", value))
		return nil, nil
	}
	return &open, nil
}

// Status resolves the market state. A stored override wins, then the
// configured open flag, then the hour window.
func (s *Service) Status(ctx context.Context) (*domain.MarketStatus, error) {
	override, err := s.override(ctx)
	if err != nil {
		zap.L().Error("can't read market override", zap.Error(err))
		return nil, err
	}

	status := &domain.MarketStatus{Override: override}
	if s.opts.HoursEnabled {
		status.Hours = &domain.HourWindow{Start: s.opts.OpenHour, End: s.opts.CloseHour}
	}
	switch {
	case override != nil:
		status.Open = *override
	case !s.opts.Open:
		status.Open = false
	case status.Hours != nil:
		status.Open = status.Hours.Contains(s.now().Hour())
	default:
		status.Open = true
	}
	return status, nil
}

func (s *Service) IsOpen(ctx context.Context) (bool, error) {
	status, err := s.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Open, nil
}

func (s *Service) SetOverride(ctx context.Context, open bool) error {
	value := OverrideClosed
	if open {
		value = OverrideOpen
	}
	if err := s.repo.Set(ctx, OverrideKey, value); err != nil {
		return domain.OperationFailed(err)
	}
	zap.L().Info("market override set", zap.String("value", value))
	return nil
}

func (s *Service) ClearOverride(ctx context.Context) error {
	if err := s.repo.Delete(ctx, OverrideKey); err != nil {
		return domain.OperationFailed(err)
	}
	zap.L().Info("market override cleared")
	return nil
}

// Toggle overrides the market to the opposite of its current state and
// returns the new state.
func (s *Service) Toggle(ctx context.Context) (bool, error) {
	open, err := s.IsOpen(ctx)
	if err != nil {
		return false, domain.OperationFailed(err)
	}
	if err := s.SetOverride(ctx, !open); err != nil {
		return false, err
	}
	return !open, nil
}

// RedistributionAmount is the per-audience payout, from the stored setting
// when present.
func (s *Service) RedistributionAmount(ctx context.Context) (int64, error) {
	value, ok, err := s.repo.Get(ctx, RedistributionAmountKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return s.opts.RedistributionAmount, nil
	}
	amount, err := strconv.ParseInt(value, 10, 64)
	if err != nil || amount <= 0 || amount > MaxRedistributionAmount {
		zap.L().Warn("ignoring invalid redistribution amount", zap.String("value", value))
		return s.opts.RedistributionAmount, nil
	}
	return amount, nil
}

func (s *Service) SetRedistributionAmount(ctx context.Context, amount int64) error {
	if err := validate.AmountAtMost(amount, MaxRedistributionAmount); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, RedistributionAmountKey, strconv.FormatInt(amount, 10)); err != nil {
		return domain.OperationFailed(err)
	}
	zap.L().Info("redistribution amount changed", zap.Int64("amount", amount))
	return nil
}
