package parcel

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"zapshift/internal/apperr"
	"zapshift/internal/domain"
)

type stubRepo struct {
	createFn func(context.Context, *domain.Parcel) (int64, error)
	getFn    func(context.Context, int64) (*domain.Parcel, error)
	listFn   func(context.Context, domain.ParcelFilter) ([]domain.Parcel, error)
	deleteFn func(context.Context, int64) (bool, error)
	statsFn  func(context.Context) ([]domain.StatusCount, error)
}

func (s *stubRepo) Create(ctx context.Context, p *domain.Parcel) (int64, error) {
	if s.createFn == nil {
		return 1, nil
	}
	return s.createFn(ctx, p)
}
func (s *stubRepo) Get(ctx context.Context, id int64) (*domain.Parcel, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}
func (s *stubRepo) List(ctx context.Context, f domain.ParcelFilter) ([]domain.Parcel, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, f)
}
func (s *stubRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}
func (s *stubRepo) StatsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	if s.statsFn == nil {
		return nil, nil
	}
	return s.statsFn(ctx)
}

func validParcel() *domain.Parcel {
	return &domain.Parcel{
		ParcelName:  "books",
		SenderEmail: "sender@example.com",
		Cost:        1500,
	}
}

func TestService_Create_AssignsTrackingIDAndInitialState(t *testing.T) {
	t.Parallel()

	var stored *domain.Parcel
	repo := &stubRepo{
		createFn: func(_ context.Context, p *domain.Parcel) (int64, error) {
			stored = p
			return 42, nil
		},
	}
	svc := NewService(repo, 3*time.Second)

	p := validParcel()
	id, err := svc.Create(context.Background(), p)

	require.NoError(t, err)
	require.Equal(t, int64(42), id)
	require.Equal(t, int64(42), p.ID)
	require.NotNil(t, stored)
	require.True(t, strings.HasPrefix(stored.TrackingID, "PRCL-"), stored.TrackingID)
	require.Equal(t, domain.DeliveryCreated, stored.DeliveryStatus)
	require.Equal(t, domain.PaymentUnpaid, stored.PaymentStatus)
	require.False(t, stored.CreatedAt.IsZero())
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*domain.Parcel)
	}{
		{"empty name", func(p *domain.Parcel) { p.ParcelName = "  " }},
		{"bad email", func(p *domain.Parcel) { p.SenderEmail = "nope" }},
		{"zero cost", func(p *domain.Parcel) { p.Cost = 0 }},
		{"negative cost", func(p *domain.Parcel) { p.Cost = -5 }},
	}

	repo := &stubRepo{
		createFn: func(context.Context, *domain.Parcel) (int64, error) {
			t.Fatal("must not store an invalid parcel")
			return 0, nil
		},
	}
	svc := NewService(repo, 3*time.Second)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := validParcel()
			tc.mutate(p)
			_, err := svc.Create(context.Background(), p)
			require.ErrorIs(t, err, apperr.ErrInvalid)
		})
	}

	t.Run("nil parcel", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Create(context.Background(), nil)
		require.ErrorIs(t, err, apperr.ErrInvalid)
	})
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	want := &domain.Parcel{ID: 7, TrackingID: "PRCL-20260301-AB12CD"}
	repo := &stubRepo{
		getFn: func(_ context.Context, id int64) (*domain.Parcel, error) {
			if id == 7 {
				return want, nil
			}
			return nil, nil
		},
	}
	svc := NewService(repo, 3*time.Second)

	got, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = svc.Get(context.Background(), 99)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Get(context.Background(), 0)
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestService_List_FilterValidation(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		listFn: func(_ context.Context, f domain.ParcelFilter) ([]domain.Parcel, error) {
			return []domain.Parcel{{ID: 1}}, nil
		},
	}
	svc := NewService(repo, 3*time.Second)

	status := domain.DeliveryPendingPickup
	out, err := svc.List(context.Background(), domain.ParcelFilter{DeliveryStatus: &status})
	require.NoError(t, err)
	require.Len(t, out, 1)

	bad := domain.DeliveryStatus("shipped")
	_, err = svc.List(context.Background(), domain.ParcelFilter{DeliveryStatus: &bad})
	require.ErrorIs(t, err, apperr.ErrInvalid)

	email := "nope"
	_, err = svc.List(context.Background(), domain.ParcelFilter{SenderEmail: &email})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		deleteFn: func(_ context.Context, id int64) (bool, error) {
			return id == 7, nil
		},
	}
	svc := NewService(repo, 3*time.Second)

	require.NoError(t, svc.Delete(context.Background(), 7))
	require.ErrorIs(t, svc.Delete(context.Background(), 99), apperr.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), -1), apperr.ErrInvalid)
}

func TestService_Stats(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		statsFn: func(context.Context) ([]domain.StatusCount, error) {
			return []domain.StatusCount{{Status: domain.DeliveryCreated, Count: 3}}, nil
		},
	}
	svc := NewService(repo, 3*time.Second)

	out, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.StatusCount{{Status: domain.DeliveryCreated, Count: 3}}, out)
}

func TestService_Create_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("insert failed")
	repo := &stubRepo{
		createFn: func(context.Context, *domain.Parcel) (int64, error) { return 0, boom },
	}
	svc := NewService(repo, 3*time.Second)

	_, err := svc.Create(context.Background(), validParcel())
	require.ErrorIs(t, err, boom)
}
