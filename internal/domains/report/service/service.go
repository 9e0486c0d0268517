package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	bookingModel "innkeep/internal/domains/booking/model"
	bookingRepo "innkeep/internal/domains/booking/repository"
	employeeRepo "innkeep/internal/domains/employee/repository"
	guestRepo "innkeep/internal/domains/guest/repository"
	"innkeep/internal/domains/report/model/dto"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	"innkeep/shared/daterange"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheOccupancyReport = "report:occupancy"
	cacheFinancialReport = "report:financial"
	cacheGuestReport     = "report:guests"
	cacheStaffReport     = "report:staff"
)

type Report interface {
	Occupancy(ctx context.Context, from, to string) (dto.OccupancyReport, error)
	Financial(ctx context.Context, from, to string) (dto.FinancialReport, error)
	Guests(ctx context.Context, from, to string) (dto.GuestReport, error)
	Staff(ctx context.Context) (dto.StaffReport, error)
}

type serviceImpl struct {
	bookingRepo  bookingRepo.Booking
	roomRepo     roomRepo.Room
	guestRepo    guestRepo.Guest
	employeeRepo employeeRepo.Employee
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	bookingRepo bookingRepo.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	employeeRepo employeeRepo.Employee,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		guestRepo:    guestRepo,
		employeeRepo: employeeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Occupancy reports per room how many days of the closed window [from, to]
// were held by bookings, counting both endpoint days. Cancelled bookings do
// not hold days.
func (s *serviceImpl) Occupancy(ctx context.Context, from, to string) (res dto.OccupancyReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	window, err := parseWindow(from, to)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheOccupancyReport, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for occupancy report")

		return res, nil
	}

	rooms, err := s.getRooms(ctx)
	if err != nil {
		return res, err
	}

	bookings, err := s.getWindowBookings(ctx, window)
	if err != nil {
		return res, err
	}

	daysByRoom := make(map[string]int, len(rooms))
	for _, booking := range bookings {
		daysByRoom[booking.RoomID] += daterange.OverlapDays(window, booking.Stay())
	}

	totalDays := daterange.DaysInclusive(window)

	res.From = from
	res.To = to
	res.Rooms = make([]dto.RoomOccupancy, len(rooms))

	for i, room := range rooms {
		days := daysByRoom[room.ID]
		res.Rooms[i] = dto.RoomOccupancy{
			RoomID:       room.ID,
			Number:       room.Number,
			Type:         room.Type,
			Price:        room.Price,
			TotalDays:    totalDays,
			OccupiedDays: days,
			Rate:         float64(days) / float64(totalDays),
			Revenue:      float64(days) * room.Price,
		}
		res.TotalOccupiedDays += days
	}

	s.saveReport(ctx, cacheKey, res)

	return res, nil
}

// Financial aggregates revenue and occupancy over the closed window. Each
// booking contributes its days inside the window at the room's current
// price. The occupancy rate divides occupied days by rooms times window
// length.
func (s *serviceImpl) Financial(ctx context.Context, from, to string) (res dto.FinancialReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Financial")
	defer scope.End()
	defer scope.TraceIfError(err)

	window, err := parseWindow(from, to)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheFinancialReport, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for financial report")

		return res, nil
	}

	rooms, err := s.getRooms(ctx)
	if err != nil {
		return res, err
	}

	bookings, err := s.getWindowBookings(ctx, window)
	if err != nil {
		return res, err
	}

	priceByRoom := make(map[string]float64, len(rooms))
	for _, room := range rooms {
		priceByRoom[room.ID] = room.Price
	}

	res.From = from
	res.To = to

	for _, booking := range bookings {
		days := daterange.OverlapDays(window, booking.Stay())
		res.TotalBookings++
		res.OccupiedDays += days
		res.RoomRevenue += float64(days) * priceByRoom[booking.RoomID]
	}

	// Lodging is the only revenue source, so room revenue and total
	// revenue coincide; both are reported.
	res.TotalRevenue = res.RoomRevenue

	res.TotalPossibleDays = len(rooms) * daterange.DaysInclusive(window)
	if res.TotalPossibleDays > 0 {
		res.OccupancyRate = float64(res.OccupiedDays) / float64(res.TotalPossibleDays)
	}

	s.saveReport(ctx, cacheKey, res)

	return res, nil
}

// Guests lists every guest with nights and spend for stays that share at
// least one day with the window. The booking count and last booking date
// consider the guest's entire history, not just the window.
func (s *serviceImpl) Guests(ctx context.Context, from, to string) (res dto.GuestReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guests")
	defer scope.End()
	defer scope.TraceIfError(err)

	window, err := parseWindow(from, to)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGuestReport, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest report")

		return res, nil
	}

	guests, err := s.guestRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	rooms, err := s.getRooms(ctx)
	if err != nil {
		return res, err
	}

	priceByRoom := make(map[string]float64, len(rooms))
	for _, room := range rooms {
		priceByRoom[room.ID] = room.Price
	}

	res.From = from
	res.To = to
	res.Guests = make([]dto.GuestActivity, len(guests))

	for i, guest := range guests {
		activity := dto.GuestActivity{
			GuestID:  guest.ID,
			Name:     guest.FullName(),
			Passport: guest.Passport,
		}

		for _, booking := range bookings {
			if booking.GuestID != guest.ID || booking.Status == bookingModel.StatusCancelled {
				continue
			}

			activity.Bookings++

			last := booking.CheckIn.Format(constant.CalendarDateFormat)
			if last > activity.LastBookingDate {
				activity.LastBookingDate = last
			}

			if daterange.Overlaps(window, booking.Stay()) {
				activity.Nights += booking.Nights()
				activity.AmountSpent += float64(booking.Nights()) * priceByRoom[booking.RoomID]
			}
		}

		res.Guests[i] = activity
	}

	s.saveReport(ctx, cacheKey, res)

	return res, nil
}

// Staff lists every employee with tenure in whole months as of today.
func (s *serviceImpl) Staff(ctx context.Context) (res dto.StaffReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff")
	defer scope.End()
	defer scope.TraceIfError(err)

	asOf := timezone.Now()
	cacheKey := shared.BuildCacheKey(cacheStaffReport, asOf.Format(constant.CalendarDateFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff report")

		return res, nil
	}

	employees, err := s.employeeRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.AsOf = asOf.Format(constant.CalendarDateFormat)
	res.Staff = make([]dto.StaffMember, len(employees))

	for i, employee := range employees {
		res.Staff[i] = dto.StaffMember{
			EmployeeID:   employee.ID,
			Name:         employee.FullName(),
			Position:     employee.Position,
			Salary:       employee.Salary,
			HireDate:     employee.HireDate.Format(constant.CalendarDateFormat),
			TenureMonths: employee.TenureMonths(asOf),
		}
		res.TotalMonthlySalary += employee.Salary
	}

	s.saveReport(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) getRooms(ctx context.Context) ([]roomModel.Room, error) {
	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return rooms, nil
}

// getWindowBookings returns non-cancelled bookings sharing at least one day
// with the window.
func (s *serviceImpl) getWindowBookings(ctx context.Context, window daterange.Range) ([]bookingModel.Booking, error) {
	bookings, err := s.bookingRepo.GetOverlappingWindow(ctx, window.Start, window.End)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for window")

		return nil, fmt.Errorf("failed to get bookings for window: %w", err)
	}

	kept := bookings[:0]

	for _, booking := range bookings {
		if booking.Status == bookingModel.StatusCancelled {
			continue
		}

		kept = append(kept, booking)
	}

	return kept, nil
}

func parseWindow(from, to string) (daterange.Range, error) {
	start, err := shared.ParseCalendarDate(from)
	if err != nil {
		return daterange.Range{}, failure.BadRequestFromString("from must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	end, err := shared.ParseCalendarDate(to)
	if err != nil {
		return daterange.Range{}, failure.BadRequestFromString("to must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	window := daterange.New(start, end)
	if !window.Valid() {
		return daterange.Range{}, failure.BadRequestFromString("to must not be before from") // nolint:wrapcheck
	}

	return window, nil
}

func (s *serviceImpl) saveReport(ctx context.Context, cacheKey string, res any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save report to cache")
		}
	}()
}
