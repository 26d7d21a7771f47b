package ledgerservice

import (
	"context"
	"errors"
	"strings"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/pkg/validate"
	"go.uber.org/zap"
)

// Party is one side of a bulk transfer: a whole group when Group is set,
// otherwise the single user Username.
type Party struct {
	Group    domain.Group
	Username string
}

// ParseParty reads a group label ("All Performers", "All Audience", any
// case) or falls back to a username. Labels contain a space, so they never
// collide with a valid username.
func ParseParty(raw string) Party {
	raw = strings.TrimSpace(raw)
	for _, g := range []domain.Group{domain.GroupPerformers, domain.GroupAudience} {
		if strings.EqualFold(raw, string(g)) {
			return Party{Group: g}
		}
	}
	return Party{Username: raw}
}

func (p Party) String() string {
	if p.Group != "" {
		return string(p.Group)
	}
	return p.Username
}

// ListUsers returns every account, privileged one included, by username.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// PerformersToAudience makes every performer pay amount to every audience
// member.
func (s *Service) PerformersToAudience(ctx context.Context, amount int64, note string) (*domain.BulkTransferResult, error) {
	return s.bulkTransfer(ctx, Party{Group: domain.GroupPerformers}, Party{Group: domain.GroupAudience}, amount, note)
}

// AudienceToPerformers makes every audience member pay amount to every
// performer.
func (s *Service) AudienceToPerformers(ctx context.Context, amount int64, note string) (*domain.BulkTransferResult, error) {
	return s.bulkTransfer(ctx, Party{Group: domain.GroupAudience}, Party{Group: domain.GroupPerformers}, amount, note)
}

// GroupTransfer moves amount from a group to one user or from one user to
// each member of a group. Exactly one side must be a group.
func (s *Service) GroupTransfer(ctx context.Context, from, to Party, amount int64, note string) (*domain.BulkTransferResult, error) {
	if (from.Group == "") == (to.Group == "") {
		return nil, domain.Validation("exactly one side of a group transfer must be a group")
	}
	return s.bulkTransfer(ctx, from, to, amount, note)
}

func (s *Service) checkParty(p *Party) error {
	switch p.Group {
	case domain.GroupPerformers, domain.GroupAudience:
		return nil
	case "":
	default:
		return domain.Validation("unknown group " + string(p.Group))
	}
	name, err := validate.Username(p.Username)
	if err != nil {
		return err
	}
	if name == s.opts.PrivilegedUsername {
		return domain.ErrSameParty
	}
	p.Username = name
	return nil
}

func (s *Service) members(ctx context.Context, p Party) ([]domain.User, error) {
	switch p.Group {
	case domain.GroupPerformers:
		return s.users.ListByRole(ctx, true, s.opts.PrivilegedUsername)
	case domain.GroupAudience:
		return s.users.ListByRole(ctx, false, s.opts.PrivilegedUsername)
	}
	user, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return []domain.User{*user}, nil
}

func without(users []domain.User, id int) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

// bulkTransfer pays amount from every sender to every recipient other than
// itself, all in one transaction. A sender that cannot cover all of its
// payments is reported in Failed and left untouched.
func (s *Service) bulkTransfer(ctx context.Context, from, to Party, amount int64, note string) (*domain.BulkTransferResult, error) {
	if err := validate.Amount(amount); err != nil {
		return nil, err
	}
	if err := s.checkParty(&from); err != nil {
		return nil, err
	}
	if err := s.checkParty(&to); err != nil {
		return nil, err
	}
	if from.Group == "" && from.Username == to.Username {
		return nil, domain.ErrSameParty
	}

	var result *domain.BulkTransferResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		senders, err := s.members(ctx, from)
		if err != nil {
			return err
		}
		recipients, err := s.members(ctx, to)
		if err != nil {
			return err
		}
		if len(senders) == 0 || len(recipients) == 0 {
			return domain.ErrNoParticipants
		}
		if _, err := validate.Total(amount, len(recipients)); err != nil {
			return err
		}

		res := &domain.BulkTransferResult{AmountPerTransfer: amount}
		now := s.now()
		for _, sd := range senders {
			targets := without(recipients, sd.ID)
			if len(targets) == 0 {
				continue
			}
			required, err := validate.Total(amount, len(targets))
			if err != nil {
				return err
			}
			sender, err := s.users.FindByIDForUpdate(ctx, sd.ID)
			if err != nil {
				return err
			}
			if sender == nil || sender.Balance < required {
				failed := domain.FailedTransfer{Sender: sd.Username, Required: required}
				if sender != nil {
					failed.Balance = sender.Balance
				}
				res.Failed = append(res.Failed, failed)
				continue
			}
			if err := s.payEach(ctx, sender, targets, amount, required, domain.KindForced, note, now); err != nil {
				return err
			}
			for _, r := range targets {
				res.Transfers = append(res.Transfers, domain.TransferLeg{Sender: sender.Username, Recipient: r.Username, Amount: amount})
			}
			res.TotalTransferred += required
		}
		if _, err := s.snapshots.CreateForAll(ctx); err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) {
			zap.L().Info("bulk transfer refused",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
				zap.String("code", string(derr.Code)),
			)
			return nil, err
		}
		zap.L().Error("bulk transfer failed", zap.String("from", from.String()), zap.String("to", to.String()), zap.Error(err))
		return nil, domain.OperationFailed(err)
	}

	zap.L().Info("bulk transfer completed",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Int("transfers", len(result.Transfers)),
		zap.Int("failed", len(result.Failed)),
		zap.Int64("total", result.TotalTransferred),
	)
	return result, nil
}
