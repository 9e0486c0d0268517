package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	guestMocks "innkeep/internal/domains/guest/mocks"
	"innkeep/internal/domains/guest/model"
	"innkeep/internal/domains/guest/model/dto"
	"innkeep/internal/domains/guest/service"
	cacheMocks "innkeep/shared/cache/mocks"
	gModel "innkeep/shared/model"
)

type guestMockSet struct {
	repo  *guestMocks.MockGuest
	cache *cacheMocks.MockRedisCache
}

func newGuestService(t *testing.T, ctrl *gomock.Controller) (service.Guest, guestMockSet) {
	t.Helper()

	m := guestMockSet{
		repo:  guestMocks.NewMockGuest(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache invalidation and saves run on goroutines.
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func sampleGuest(id, passport string) model.Guest {
	return model.Guest{
		ID: id,
		Contact: gModel.Contact{
			FirstName: "Anna",
			LastName:  "Karlsson",
			Phone:     "+46701234567",
			Email:     "anna.karlsson@example.com",
		},
		Passport: passport,
	}
}

func TestGuestService_Create(t *testing.T) {
	req := dto.CreateGuestRequest{
		FirstName: "Anna",
		LastName:  "Karlsson",
		Phone:     "+46701234567",
		Email:     "anna.karlsson@example.com",
		Passport:  "N1234567",
	}

	tests := []struct {
		name      string
		setupMock func(m guestMockSet)
		wantErr   bool
		errMsg    string
	}{
		{
			name: "registers a guest",
			setupMock: func(m guestMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "rejects a registered passport",
			setupMock: func(m guestMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
			errMsg:  "passport is already registered",
		},
		{
			name: "propagates repository errors",
			setupMock: func(m guestMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newGuestService(t, ctrl)
			tt.setupMock(m)

			err := svc.Create(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)

				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	t.Run("returns the guest on cache miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newGuestService(t, ctrl)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleGuest("guest-1", "N1234567"), nil)

		res, err := svc.Get(context.Background(), "guest-1")
		require.NoError(t, err)
		assert.Equal(t, "guest-1", res.ID)
		assert.Equal(t, "N1234567", res.Passport)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newGuestService(t, ctrl)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "guest not found")
	})
}

func TestGuestService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateGuestRequest
		setupMock func(m guestMockSet)
		wantErr   bool
		errMsg    string
	}{
		{
			name: "updates contact details",
			req:  dto.UpdateGuestRequest{Phone: "+46709998877"},
			setupMock: func(m guestMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "allows keeping the own passport",
			req:  dto.UpdateGuestRequest{Passport: "N1234567"},
			setupMock: func(m guestMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				// The second existence check excludes the guest itself.
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "rejects a passport held by another guest",
			req:  dto.UpdateGuestRequest{Passport: "N7654321"},
			setupMock: func(m guestMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
			errMsg:  "passport is already registered",
		},
		{
			name:      "rejects an empty request",
			req:       dto.UpdateGuestRequest{},
			setupMock: func(m guestMockSet) {},
			wantErr:   true,
			errMsg:    "update request cannot be empty",
		},
		{
			name: "returns not found for an unknown guest",
			req:  dto.UpdateGuestRequest{Phone: "+46709998877"},
			setupMock: func(m guestMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
			errMsg:  "guest not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newGuestService(t, ctrl)
			tt.setupMock(m)

			err := svc.Update(context.Background(), tt.req, "guest-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGuestService_Delete(t *testing.T) {
	t.Run("deletes the guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newGuestService(t, ctrl)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), "guest-1"))
	})

	t.Run("returns not found for an unknown guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newGuestService(t, ctrl)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "guest not found")
	})
}
