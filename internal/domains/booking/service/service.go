package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/repository"
	guestModel "innkeep/internal/domains/guest/model"
	guestRepo "innkeep/internal/domains/guest/repository"
	roomService "innkeep/internal/domains/room/service"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	"innkeep/shared/daterange"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/lock"
	"innkeep/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Modify(ctx context.Context, req dto.ModifyBookingRequest, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	guestRepo   guestRepo.Guest
	roomService roomService.Room
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafkaClient kafka.Client
	locks       *lock.Keyed
}

func New(
	repo repository.Booking,
	guestRepo guestRepo.Guest,
	roomService roomService.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Booking {
	return &serviceImpl{
		repo:        repo,
		guestRepo:   guestRepo,
		roomService: roomService,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafkaClient: kafkaClient,
		locks:       lock.NewKeyed(),
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, err := shared.ParseCalendarDate(req.CheckIn)
	if err != nil {
		return failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	checkOut, err := shared.ParseCalendarDate(req.CheckOut)
	if err != nil {
		return failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	stay := daterange.New(checkIn, checkOut)
	if daterange.Nights(stay) < 1 {
		return failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	if err = s.checkPastLimit(checkIn); err != nil {
		return err
	}

	guestFilter := shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName)

	guestExists, err := s.guestRepo.Exist(ctx, guestFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	if _, err = s.roomService.Get(ctx, req.RoomID); err != nil {
		return err
	}

	s.locks.Lock(req.RoomID)
	defer s.locks.Unlock(req.RoomID)

	available, err := s.isRoomAvailable(ctx, req.RoomID, stay, constant.Empty)
	if err != nil {
		return err
	}

	if !available {
		return failure.Conflict("room is already booked for the requested dates") // nolint:wrapcheck
	}

	booking := req.ToModel(user, stay.Start, stay.End)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err = s.roomService.SetOccupied(ctx, booking.RoomID, true); err != nil {
		log.Error().Err(err).Str("room_id", booking.RoomID).Msg("failed to mark room occupied")

		// Either the booking exists with the room marked occupied or
		// neither happened, so the insert is taken back.
		filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)
		if delErr := s.repo.Delete(ctx, filter); delErr != nil {
			log.Error().Err(delErr).Str("booking_id", booking.ID).Msg("failed to roll back booking insert")
		}

		return fmt.Errorf("failed to mark room occupied: %w", err)
	}

	s.publishEvent(ctx, dto.EventBookingCreated, booking)
	s.invalidateBooking(ctx, booking.ID)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Modify(ctx context.Context, req dto.ModifyBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Modify")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.ModifyBookingRequest{}) {
		return failure.BadRequestFromString("modify request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !booking.IsActive() {
		return failure.InvalidState("only active bookings can be modified") // nolint:wrapcheck
	}

	checkIn := booking.CheckIn
	checkOut := booking.CheckOut

	if req.CheckIn != constant.Empty {
		if checkIn, err = shared.ParseCalendarDate(req.CheckIn); err != nil {
			return failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format") // nolint:wrapcheck
		}
	}

	if req.CheckOut != constant.Empty {
		if checkOut, err = shared.ParseCalendarDate(req.CheckOut); err != nil {
			return failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format") // nolint:wrapcheck
		}
	}

	stay := daterange.New(checkIn, checkOut)
	if daterange.Nights(stay) < 1 {
		return failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	targetRoom := booking.RoomID
	if req.RoomID != constant.Empty && req.RoomID != booking.RoomID {
		if _, err = s.roomService.Get(ctx, req.RoomID); err != nil {
			return err
		}

		targetRoom = req.RoomID
	}

	targetGuest := booking.GuestID
	if req.GuestID != constant.Empty && req.GuestID != booking.GuestID {
		guestFilter := shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName)

		guestExists, existErr := s.guestRepo.Exist(ctx, guestFilter)
		if existErr != nil {
			log.Error().Err(existErr).Msg("failed to check if guest exists")

			return fmt.Errorf("failed to check if guest exists: %w", existErr)
		}

		if !guestExists {
			return failure.NotFound("guest not found") // nolint:wrapcheck
		}

		targetGuest = req.GuestID
	}

	// Both room locks are taken in sorted order so two concurrent moves
	// between the same pair of rooms cannot deadlock.
	roomKeys := []string{booking.RoomID}
	if targetRoom != booking.RoomID {
		roomKeys = append(roomKeys, targetRoom)
		sort.Strings(roomKeys)
	}

	for _, key := range roomKeys {
		s.locks.Lock(key)
	}

	defer func() {
		for _, key := range roomKeys {
			s.locks.Unlock(key)
		}
	}()

	available, err := s.isRoomAvailable(ctx, targetRoom, stay, booking.ID)
	if err != nil {
		return err
	}

	if !available {
		return failure.Conflict("room is already booked for the requested dates") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldRoomID:        targetRoom,
		model.FieldGuestID:       targetGuest,
		model.FieldCheckIn:       stay.Start,
		model.FieldCheckOut:      stay.End,
		constant.FieldModifiedBy: user,
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to modify booking")

		return fmt.Errorf("failed to modify booking: %w", err)
	}

	if targetRoom != booking.RoomID {
		if err = s.roomService.SetOccupied(ctx, targetRoom, true); err != nil {
			// Put the booking back on its previous room so the move is
			// all-or-nothing.
			restore := map[string]any{
				model.FieldRoomID:        booking.RoomID,
				model.FieldGuestID:       booking.GuestID,
				model.FieldCheckIn:       booking.CheckIn,
				model.FieldCheckOut:      booking.CheckOut,
				constant.FieldModifiedBy: user,
			}
			if rbErr := s.repo.Update(ctx, restore, filter); rbErr != nil {
				log.Error().Err(rbErr).Str("booking_id", booking.ID).Msg("failed to roll back booking move")
			}

			return err
		}

		if err = s.freeRoomIfIdle(ctx, booking.RoomID); err != nil {
			return err
		}
	}

	booking.RoomID = targetRoom
	booking.GuestID = targetGuest
	booking.CheckIn = stay.Start
	booking.CheckOut = stay.End

	s.publishEvent(ctx, dto.EventBookingModified, booking)
	s.invalidateBooking(ctx, id)

	return nil
}

// CheckIn marks the guest's arrival by asserting the room's occupancy
// for an active booking. The flag is already set at creation time, so
// this also repairs it if the room was freed out of band.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !booking.IsActive() {
		return failure.InvalidState("only active bookings can be checked in") // nolint:wrapcheck
	}

	s.locks.Lock(booking.RoomID)
	defer s.locks.Unlock(booking.RoomID)

	if err = s.roomService.SetOccupied(ctx, booking.RoomID, true); err != nil {
		return err
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.closeBooking(ctx, id, model.StatusCheckedOut, dto.EventBookingCheckedOut)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.closeBooking(ctx, id, model.StatusCancelled, dto.EventBookingCancelled)
}

// closeBooking moves an active booking to a terminal status and frees the
// room once no other active booking holds it.
func (s *serviceImpl) closeBooking(ctx context.Context, id, status, eventType string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !booking.IsActive() {
		return failure.InvalidState("booking is not active") // nolint:wrapcheck
	}

	s.locks.Lock(booking.RoomID)
	defer s.locks.Unlock(booking.RoomID)

	updatedFields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedBy: user,
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if err = s.freeRoomIfIdle(ctx, booking.RoomID); err != nil {
		return err
	}

	booking.Status = status

	s.publishEvent(ctx, eventType, booking)
	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.IsActive() {
		return failure.InvalidState("active bookings must be checked out or cancelled first") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// checkPastLimit rejects check-in dates further in the past than the
// configured backfill window.
func (s *serviceImpl) checkPastLimit(checkIn time.Time) error {
	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, checkIn.Location())
	earliest := today.AddDate(0, 0, -s.cfg.Booking.MaxPastDays)

	if checkIn.Before(earliest) {
		return failure.BadRequestFromString("check_in is too far in the past") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) freeRoomIfIdle(ctx context.Context, roomID string) error {
	active, err := s.repo.GetActiveByRoom(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get active bookings for room")

		return fmt.Errorf("failed to get active bookings for room: %w", err)
	}

	if len(active) > 0 {
		return nil
	}

	if err = s.roomService.SetOccupied(ctx, roomID, false); err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to free room")

		return fmt.Errorf("failed to free room: %w", err)
	}

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   booking.RoomID,
			Value: dto.NewBookingEvent(eventType, booking),
		}

		if err := s.kafkaClient.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
