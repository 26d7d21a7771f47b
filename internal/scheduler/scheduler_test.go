package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alexrkaufman/strawcoin/internal/domain"
)

type mocks struct {
	ledger   *MockLedger
	market   *MockMarket
	sessions *MockSessions
}

func setup(t *testing.T, opts Options) (*Scheduler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		ledger:   NewMockLedger(ctrl),
		market:   NewMockMarket(ctrl),
		sessions: NewMockSessions(ctrl),
	}
	return New(m.ledger, m.market, m.sessions, opts), m
}

func TestScheduler_RunRedistribution(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		wantErr     bool
	}{
		{
			name: "Market closed skips the cycle",
			prepareMock: func(m *mocks) {
				m.market.EXPECT().IsOpen(ctx).Return(false, nil)
			},
		},
		{
			name: "Market open redistributes the configured amount",
			prepareMock: func(m *mocks) {
				m.market.EXPECT().IsOpen(ctx).Return(true, nil)
				m.market.EXPECT().RedistributionAmount(ctx).Return(int64(7), nil)
				m.ledger.EXPECT().Redistribute(ctx, int64(7)).Return(&domain.RedistributionResult{
					PerformerCount: 1, AudienceCount: 2, Eligible: 2, TotalRedistributed: 14,
				}, nil)
			},
		},
		{
			name: "No participants is not a failure",
			prepareMock: func(m *mocks) {
				m.market.EXPECT().IsOpen(ctx).Return(true, nil)
				m.market.EXPECT().RedistributionAmount(ctx).Return(int64(5), nil)
				m.ledger.EXPECT().Redistribute(ctx, int64(5)).Return(nil, domain.ErrNoParticipants)
			},
		},
		{
			name: "Market status error",
			prepareMock: func(m *mocks) {
				m.market.EXPECT().IsOpen(ctx).Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "Amount lookup error",
			prepareMock: func(m *mocks) {
				m.market.EXPECT().IsOpen(ctx).Return(true, nil)
				m.market.EXPECT().RedistributionAmount(ctx).Return(int64(0), errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "Redistribution failure",
			prepareMock: func(m *mocks) {
				m.market.EXPECT().IsOpen(ctx).Return(true, nil)
				m.market.EXPECT().RedistributionAmount(ctx).Return(int64(5), nil)
				m.ledger.EXPECT().Redistribute(ctx, int64(5)).Return(nil, domain.OperationFailed(errors.New("deadlock")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := setup(t, Options{})
			tt.prepareMock(m)

			err := s.RunRedistribution(ctx)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduler_RunSnapshot(t *testing.T) {
	ctx := context.Background()
	retention := 6 * time.Hour

	t.Run("All steps succeed", func(t *testing.T) {
		s, m := setup(t, Options{SnapshotRetention: retention})
		gomock.InOrder(
			m.ledger.EXPECT().SnapshotAll(ctx).Return(int64(3), nil),
			m.ledger.EXPECT().PruneSnapshots(ctx, retention).Return(int64(10), nil),
			m.sessions.EXPECT().PurgeExpired(ctx).Return(int64(1), nil),
		)
		assert.NoError(t, s.RunSnapshot(ctx))
	})

	t.Run("A failing step does not stop the rest", func(t *testing.T) {
		s, m := setup(t, Options{SnapshotRetention: retention})
		snapErr := errors.New("snapshot failed")
		purgeErr := errors.New("purge failed")
		m.ledger.EXPECT().SnapshotAll(ctx).Return(int64(0), snapErr)
		m.ledger.EXPECT().PruneSnapshots(ctx, retention).Return(int64(0), nil)
		m.sessions.EXPECT().PurgeExpired(ctx).Return(int64(0), purgeErr)

		err := s.RunSnapshot(ctx)
		assert.ErrorIs(t, err, snapErr)
		assert.ErrorIs(t, err, purgeErr)
	})
}

func TestScheduler_Disabled(t *testing.T) {
	s, _ := setup(t, Options{Enabled: false})
	s.Start(context.Background())
	assert.NoError(t, s.Stop(time.Second))
}

func TestScheduler_StartStop(t *testing.T) {
	s, m := setup(t, Options{
		Enabled:                true,
		RedistributionInterval: 10 * time.Millisecond,
		SnapshotInterval:       time.Hour,
		SnapshotRetention:      time.Hour,
	})

	snapshotted := make(chan struct{}, 1)
	redistributed := make(chan struct{}, 1)

	m.ledger.EXPECT().SnapshotAll(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		select {
		case snapshotted <- struct{}{}:
		default:
		}
		return 2, nil
	}).AnyTimes()
	m.ledger.EXPECT().PruneSnapshots(gomock.Any(), time.Hour).Return(int64(0), nil).AnyTimes()
	m.sessions.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.market.EXPECT().IsOpen(gomock.Any()).Return(true, nil).AnyTimes()
	m.market.EXPECT().RedistributionAmount(gomock.Any()).Return(int64(5), nil).AnyTimes()
	m.ledger.EXPECT().Redistribute(gomock.Any(), int64(5)).DoAndReturn(func(context.Context, int64) (*domain.RedistributionResult, error) {
		select {
		case redistributed <- struct{}{}:
		default:
		}
		return &domain.RedistributionResult{}, nil
	}).AnyTimes()

	s.Start(context.Background())

	select {
	case <-snapshotted:
	case <-time.After(time.Second):
		t.Fatal("snapshot loop did not run its immediate first cycle")
	}
	select {
	case <-redistributed:
	case <-time.After(time.Second):
		t.Fatal("redistribution loop did not tick")
	}

	require.NoError(t, s.Stop(time.Second))
}

func TestScheduler_PanicDoesNotStopLoop(t *testing.T) {
	s, m := setup(t, Options{
		Enabled:                true,
		RedistributionInterval: 10 * time.Millisecond,
		SnapshotInterval:       time.Hour,
	})

	var calls atomic.Int32
	recovered := make(chan struct{})

	m.ledger.EXPECT().SnapshotAll(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.ledger.EXPECT().PruneSnapshots(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.sessions.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.market.EXPECT().IsOpen(gomock.Any()).DoAndReturn(func(context.Context) (bool, error) {
		n := calls.Add(1)
		if n == 1 {
			panic("settings row corrupted")
		}
		if n == 2 {
			close(recovered)
		}
		return false, nil
	}).AnyTimes()

	s.Start(context.Background())

	select {
	case <-recovered:
	case <-time.After(time.Second):
		t.Fatal("loop stopped after a panicking cycle")
	}
	require.NoError(t, s.Stop(time.Second))
}

func TestScheduler_StopTimeout(t *testing.T) {
	s, m := setup(t, Options{
		Enabled:                true,
		RedistributionInterval: time.Hour,
		SnapshotInterval:       time.Hour,
	})

	blocked := make(chan struct{})
	release := make(chan struct{})

	m.ledger.EXPECT().SnapshotAll(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		close(blocked)
		<-release
		return 0, nil
	})
	m.ledger.EXPECT().PruneSnapshots(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.sessions.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), nil).AnyTimes()

	s.Start(context.Background())
	<-blocked

	assert.ErrorIs(t, s.Stop(20*time.Millisecond), ErrStopTimeout)

	close(release)
	assert.NoError(t, s.Stop(time.Second))
}
