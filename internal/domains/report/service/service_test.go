package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	bookingModel "innkeep/internal/domains/booking/model"
	employeeMocks "innkeep/internal/domains/employee/mocks"
	employeeModel "innkeep/internal/domains/employee/model"
	guestMocks "innkeep/internal/domains/guest/mocks"
	guestModel "innkeep/internal/domains/guest/model"
	"innkeep/internal/domains/report/service"
	roomModel "innkeep/internal/domains/room/model"
	roomMocks "innkeep/internal/domains/room/mocks"
	"innkeep/shared"
	cacheMocks "innkeep/shared/cache/mocks"
	gModel "innkeep/shared/model"
)

type reportMockSet struct {
	booking  *bookingMocks.MockBooking
	room     *roomMocks.MockRoom
	guest    *guestMocks.MockGuest
	employee *employeeMocks.MockEmployee
	cache    *cacheMocks.MockRedisCache
}

func newReportService(t *testing.T, ctrl *gomock.Controller) (service.Report, reportMockSet) {
	t.Helper()

	m := reportMockSet{
		booking:  bookingMocks.NewMockBooking(ctrl),
		room:     roomMocks.NewMockRoom(ctrl),
		guest:    guestMocks.NewMockGuest(ctrl),
		employee: employeeMocks.NewMockEmployee(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(m.booking, m.room, m.guest, m.employee, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := shared.ParseCalendarDate(value)
	require.NoError(t, err)

	return parsed
}

func stay(t *testing.T, id, roomID, guestID, checkIn, checkOut, status string) bookingModel.Booking {
	t.Helper()

	return bookingModel.Booking{
		ID:       id,
		RoomID:   roomID,
		GuestID:  guestID,
		CheckIn:  day(t, checkIn),
		CheckOut: day(t, checkOut),
		Status:   status,
	}
}

func TestReportService_Financial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(t, ctrl)

	rooms := []roomModel.Room{
		{ID: "room-a", Number: "101", Type: roomModel.TypeStandard, Price: 100},
		{ID: "room-b", Number: "102", Type: roomModel.TypeStandard, Price: 100},
	}

	tests := []struct {
		name         string
		from, to     string
		setupMock    func()
		wantErr      bool
		wantRevenue  float64
		wantBookings int
		wantDays     int
		wantPossible int
		wantRate     float64
	}{
		{
			name: "revenue sums clipped booking days at room price",
			from: "2026-01-10",
			to:   "2026-01-16",
			setupMock: func() {
				m.room.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)

				m.booking.EXPECT().
					GetOverlappingWindow(gomock.Any(), day(t, "2026-01-10"), day(t, "2026-01-16")).
					Return([]bookingModel.Booking{
						stay(t, "b1", "room-a", "g1", "2026-01-08", "2026-01-12", bookingModel.StatusCheckedOut),
						stay(t, "b2", "room-b", "g2", "2026-01-13", "2026-01-16", bookingModel.StatusActive),
					}, nil)
			},
			wantRevenue:  700,
			wantBookings: 2,
			wantDays:     7,
			wantPossible: 14,
			wantRate:     0.5,
		},
		{
			name: "cancelled bookings earn nothing",
			from: "2026-01-10",
			to:   "2026-01-16",
			setupMock: func() {
				m.room.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)

				m.booking.EXPECT().
					GetOverlappingWindow(gomock.Any(), day(t, "2026-01-10"), day(t, "2026-01-16")).
					Return([]bookingModel.Booking{
						stay(t, "b1", "room-a", "g1", "2026-01-10", "2026-01-14", bookingModel.StatusCancelled),
					}, nil)
			},
			wantRevenue:  0,
			wantBookings: 0,
			wantDays:     0,
			wantPossible: 14,
			wantRate:     0,
		},
		{
			name: "empty window with no rooms",
			from: "2026-01-10",
			to:   "2026-01-16",
			setupMock: func() {
				m.room.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				m.booking.EXPECT().
					GetOverlappingWindow(gomock.Any(), day(t, "2026-01-10"), day(t, "2026-01-16")).
					Return(nil, nil)
			},
			wantRevenue:  0,
			wantBookings: 0,
			wantDays:     0,
			wantPossible: 0,
			wantRate:     0,
		},
		{
			name:      "window runs backwards",
			from:      "2026-01-16",
			to:        "2026-01-10",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "malformed from date",
			from:      "16-01-2026",
			to:        "2026-01-20",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Financial(ctx, tt.from, tt.to)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRevenue, result.TotalRevenue)
			assert.Equal(t, tt.wantRevenue, result.RoomRevenue)
			assert.Equal(t, tt.wantBookings, result.TotalBookings)
			assert.Equal(t, tt.wantDays, result.OccupiedDays)
			assert.Equal(t, tt.wantPossible, result.TotalPossibleDays)
			assert.InDelta(t, tt.wantRate, result.OccupancyRate, 0.0001)
		})
	}
}

func TestReportService_Occupancy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(t, ctrl)

	rooms := []roomModel.Room{
		{ID: "room-a", Number: "101", Type: roomModel.TypeStandard, Price: 150},
		{ID: "room-b", Number: "205", Type: roomModel.TypeLux, Price: 400},
	}

	m.room.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rooms, nil)

	// Stay runs past the window end; only the days inside count.
	m.booking.EXPECT().
		GetOverlappingWindow(gomock.Any(), day(t, "2026-02-01"), day(t, "2026-02-07")).
		Return([]bookingModel.Booking{
			stay(t, "b1", "room-a", "g1", "2026-02-05", "2026-02-12", bookingModel.StatusActive),
		}, nil)

	result, err := svc.Occupancy(context.Background(), "2026-02-01", "2026-02-07")
	require.NoError(t, err)

	assert.Equal(t, "2026-02-01", result.From)
	assert.Equal(t, "2026-02-07", result.To)
	require.Len(t, result.Rooms, 2)

	assert.Equal(t, "room-a", result.Rooms[0].RoomID)
	assert.Equal(t, 7, result.Rooms[0].TotalDays)
	assert.Equal(t, 3, result.Rooms[0].OccupiedDays)
	assert.InDelta(t, 3.0/7.0, result.Rooms[0].Rate, 0.0001)
	assert.Equal(t, float64(450), result.Rooms[0].Revenue)

	assert.Equal(t, "room-b", result.Rooms[1].RoomID)
	assert.Equal(t, 7, result.Rooms[1].TotalDays)
	assert.Equal(t, 0, result.Rooms[1].OccupiedDays)
	assert.InDelta(t, 0, result.Rooms[1].Rate, 0.0001)
	assert.Equal(t, float64(0), result.Rooms[1].Revenue)

	assert.Equal(t, 3, result.TotalOccupiedDays)
}

func TestReportService_Guests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(t, ctrl)

	guests := []guestModel.Guest{
		{
			ID:       "g1",
			Passport: "A1234567",
			Contact: gModel.Contact{
				FirstName: "Budi",
				LastName:  "Santoso",
			},
		},
		{
			ID:       "g2",
			Passport: "B7654321",
			Contact: gModel.Contact{
				FirstName: "Sari",
				LastName:  "Wijaya",
			},
		},
	}

	m.guest.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(guests, nil)

	m.booking.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{
			// Inside the window, 4 nights.
			stay(t, "b1", "room-a", "g1", "2026-03-10", "2026-03-14", bookingModel.StatusCheckedOut),
			// Outside the window but still counted and the most recent booking.
			stay(t, "b2", "room-a", "g1", "2026-05-01", "2026-05-03", bookingModel.StatusActive),
			// Cancelled bookings never count.
			stay(t, "b3", "room-b", "g2", "2026-03-11", "2026-03-13", bookingModel.StatusCancelled),
		}, nil)

	m.room.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{ID: "room-a", Number: "101", Type: roomModel.TypeStandard, Price: 150},
			{ID: "room-b", Number: "205", Type: roomModel.TypeLux, Price: 400},
		}, nil)

	result, err := svc.Guests(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, result.Guests, 2)

	// The booking count spans the whole history; nights and spend only
	// cover stays touching the window.
	assert.Equal(t, "Budi Santoso", result.Guests[0].Name)
	assert.Equal(t, 2, result.Guests[0].Bookings)
	assert.Equal(t, 4, result.Guests[0].Nights)
	assert.Equal(t, float64(600), result.Guests[0].AmountSpent)
	assert.Equal(t, "2026-05-01", result.Guests[0].LastBookingDate)

	assert.Equal(t, "Sari Wijaya", result.Guests[1].Name)
	assert.Equal(t, 0, result.Guests[1].Bookings)
	assert.Equal(t, 0, result.Guests[1].Nights)
	assert.Equal(t, float64(0), result.Guests[1].AmountSpent)
	assert.Empty(t, result.Guests[1].LastBookingDate)
}

func TestReportService_Staff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(t, ctrl)

	employees := []employeeModel.Employee{
		{
			ID: "e1",
			Contact: gModel.Contact{
				FirstName: "Nadia",
				LastName:  "Putri",
			},
			Position: "Receptionist",
			Salary:   4_500_000,
			HireDate: day(t, "2023-04-01"),
		},
		{
			ID: "e2",
			Contact: gModel.Contact{
				FirstName: "Rudi",
				LastName:  "Hartono",
			},
			Position: "Manager",
			Salary:   9_000_000,
			HireDate: day(t, "2020-01-15"),
		},
	}

	m.employee.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(employees, nil)

	result, err := svc.Staff(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Staff, 2)

	assert.Equal(t, "Nadia Putri", result.Staff[0].Name)
	assert.Equal(t, "2023-04-01", result.Staff[0].HireDate)
	assert.Positive(t, result.Staff[0].TenureMonths)
	assert.Greater(t, result.Staff[1].TenureMonths, result.Staff[0].TenureMonths)
	assert.Equal(t, float64(13_500_000), result.TotalMonthlySalary)
}

func TestReportService_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(t, ctrl)

	m.room.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := svc.Financial(context.Background(), "2026-01-10", "2026-01-16")
	assert.Error(t, err)

	m.employee.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err = svc.Staff(context.Background())
	assert.Error(t, err)
}
