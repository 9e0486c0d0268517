package service

import (
	"context"
	"fmt"

	"innkeep/shared/daterange"

	"github.com/rs/zerolog/log"
)

// isRoomAvailable reports whether the room has no active booking whose stay
// conflicts with the requested one. Stays are half-open: a stay ending on a
// day does not block another starting that same day, so back-to-back
// turnovers are allowed. excludeBookingID skips one booking from the check,
// used when a booking's own dates are being modified.
func (s *serviceImpl) isRoomAvailable(ctx context.Context, roomID string, stay daterange.Range, excludeBookingID string) (bool, error) {
	active, err := s.repo.GetActiveByRoom(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get active bookings for room")

		return false, fmt.Errorf("failed to get active bookings for room: %w", err)
	}

	for _, booking := range active {
		if booking.ID == excludeBookingID {
			continue
		}

		if daterange.Conflicts(stay, booking.Stay()) {
			return false, nil
		}
	}

	return true, nil
}
