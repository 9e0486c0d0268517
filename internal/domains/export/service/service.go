package service

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/infras/s3"
	bookingRepo "innkeep/internal/domains/booking/repository"
	employeeRepo "innkeep/internal/domains/employee/repository"
	"innkeep/internal/domains/export/model/dto"
	guestRepo "innkeep/internal/domains/guest/repository"
	reportService "innkeep/internal/domains/report/service"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	exportDirectory      = "exports"
	exportFileNameFormat = "20060102150405"

	sheetRooms     = "Rooms"
	sheetGuests    = "Guests"
	sheetEmployees = "Employees"
	sheetBookings  = "Bookings"

	sheetOccupancyReport = "Occupancy"
	sheetFinancialReport = "Financial"
	sheetGuestReport     = "GuestActivity"
)

type Export interface {
	Workbook(ctx context.Context) (dto.ExportResponse, error)
	ReportWorkbook(ctx context.Context, from, to string) (dto.ExportResponse, error)
}

type serviceImpl struct {
	roomRepo     roomRepo.Room
	guestRepo    guestRepo.Guest
	employeeRepo employeeRepo.Employee
	bookingRepo  bookingRepo.Booking
	report       reportService.Report
	s3           s3.S3
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	employeeRepo employeeRepo.Employee,
	bookingRepo bookingRepo.Booking,
	report reportService.Report,
	s3 s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Export {
	return &serviceImpl{
		roomRepo:     roomRepo,
		guestRepo:    guestRepo,
		employeeRepo: employeeRepo,
		bookingRepo:  bookingRepo,
		report:       report,
		s3:           s3,
		cfg:          cfg,
		otel:         otel,
	}
}

// Workbook builds an Excel workbook holding the full hotel inventory, one
// sheet per entity, uploads it to object storage and returns the URL.
func (s *serviceImpl) Workbook(ctx context.Context) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Workbook")
	defer scope.End()
	defer scope.TraceIfError(err)

	file := excelize.NewFile()

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close workbook")
		}
	}()

	if err = s.writeRooms(ctx, file); err != nil {
		return res, err
	}

	if err = s.writeGuests(ctx, file); err != nil {
		return res, err
	}

	if err = s.writeEmployees(ctx, file); err != nil {
		return res, err
	}

	if err = s.writeBookings(ctx, file); err != nil {
		return res, err
	}

	fileName := fmt.Sprintf("innkeep-%s.xlsx", timezone.Now().Format(exportFileNameFormat))

	return s.uploadWorkbook(ctx, file, fileName)
}

// ReportWorkbook renders the occupancy, financial and guest reports for the
// closed window [from, to] into one workbook, one sheet per report, uploads
// it to object storage and returns the URL.
func (s *serviceImpl) ReportWorkbook(ctx context.Context, from, to string) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReportWorkbook")
	defer scope.End()
	defer scope.TraceIfError(err)

	occupancy, err := s.report.Occupancy(ctx, from, to)
	if err != nil {
		return res, err
	}

	financial, err := s.report.Financial(ctx, from, to)
	if err != nil {
		return res, err
	}

	guests, err := s.report.Guests(ctx, from, to)
	if err != nil {
		return res, err
	}

	file := excelize.NewFile()

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close workbook")
		}
	}()

	occupancyRows := make([][]any, len(occupancy.Rooms))
	for i, room := range occupancy.Rooms {
		occupancyRows[i] = []any{
			room.Number, room.Type, room.TotalDays, room.OccupiedDays, room.Rate, room.Revenue,
		}
	}

	if err = writeSheet(file, sheetOccupancyReport,
		[]string{"Number", "Type", "TotalDays", "OccupiedDays", "Rate", "Revenue"},
		occupancyRows,
	); err != nil {
		return res, err
	}

	if err = writeSheet(file, sheetFinancialReport,
		[]string{"Period", "TotalRevenue", "RoomRevenue", "OccupancyRate", "TotalBookings"},
		[][]any{{
			financial.From + " - " + financial.To,
			financial.TotalRevenue,
			financial.RoomRevenue,
			financial.OccupancyRate,
			financial.TotalBookings,
		}},
	); err != nil {
		return res, err
	}

	guestRows := make([][]any, len(guests.Guests))
	for i, guest := range guests.Guests {
		guestRows[i] = []any{
			guest.Name, guest.Passport, guest.Bookings, guest.Nights, guest.AmountSpent, guest.LastBookingDate,
		}
	}

	if err = writeSheet(file, sheetGuestReport,
		[]string{"Guest", "Passport", "Bookings", "Nights", "AmountSpent", "LastBooking"},
		guestRows,
	); err != nil {
		return res, err
	}

	fileName := fmt.Sprintf("innkeep-reports-%s-%s-%s.xlsx",
		from, to, timezone.Now().Format(exportFileNameFormat))

	return s.uploadWorkbook(ctx, file, fileName)
}

func (s *serviceImpl) uploadWorkbook(ctx context.Context, file *excelize.File, fileName string) (res dto.ExportResponse, err error) {
	if err = file.DeleteSheet("Sheet1"); err != nil {
		log.Warn().Err(err).Msg("failed to drop default sheet")
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		log.Error().Err(err).Msg("failed to serialize workbook")

		return res, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	url, err := s.s3.UploadFileBytes(
		ctx,
		s.cfg.External.S3.BucketName,
		exportDirectory,
		fileName,
		constant.ContentTypeXLSX,
		buffer.Bytes(),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload workbook")

		return res, fmt.Errorf("failed to upload workbook: %w", err)
	}

	res.URL = url
	res.FileName = fileName
	res.CreatedAt = timezone.Now().Format(constant.CalendarDateFormat)

	return res, nil
}

func (s *serviceImpl) writeRooms(ctx context.Context, file *excelize.File) error {
	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return fmt.Errorf("failed to get rooms: %w", err)
	}

	headers := []string{"ID", "Number", "Type", "Price", "Capacity", "Occupied"}
	rows := make([][]any, len(rooms))

	for i, room := range rooms {
		rows[i] = []any{room.ID, room.Number, room.Type, room.Price, room.Capacity, room.Occupied}
	}

	return writeSheet(file, sheetRooms, headers, rows)
}

func (s *serviceImpl) writeGuests(ctx context.Context, file *excelize.File) error {
	guests, err := s.guestRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return fmt.Errorf("failed to get guests: %w", err)
	}

	headers := []string{"ID", "FirstName", "LastName", "Passport", "Phone", "Email"}
	rows := make([][]any, len(guests))

	for i, guest := range guests {
		rows[i] = []any{guest.ID, guest.FirstName, guest.LastName, guest.Passport, guest.Phone, guest.Email}
	}

	return writeSheet(file, sheetGuests, headers, rows)
}

func (s *serviceImpl) writeEmployees(ctx context.Context, file *excelize.File) error {
	employees, err := s.employeeRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return fmt.Errorf("failed to get employees: %w", err)
	}

	headers := []string{"ID", "FirstName", "LastName", "Position", "Salary", "HireDate", "Role"}
	rows := make([][]any, len(employees))

	for i, employee := range employees {
		rows[i] = []any{
			employee.ID,
			employee.FirstName,
			employee.LastName,
			employee.Position,
			employee.Salary,
			employee.HireDate.Format(constant.CalendarDateFormat),
			employee.Role,
		}
	}

	return writeSheet(file, sheetEmployees, headers, rows)
}

func (s *serviceImpl) writeBookings(ctx context.Context, file *excelize.File) error {
	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return fmt.Errorf("failed to get bookings: %w", err)
	}

	headers := []string{"ID", "RoomID", "GuestID", "CheckIn", "CheckOut", "Nights", "Status"}
	rows := make([][]any, len(bookings))

	for i, booking := range bookings {
		rows[i] = []any{
			booking.ID,
			booking.RoomID,
			booking.GuestID,
			booking.CheckIn.Format(constant.CalendarDateFormat),
			booking.CheckOut.Format(constant.CalendarDateFormat),
			booking.Nights(),
			booking.Status,
		}
	}

	return writeSheet(file, sheetBookings, headers, rows)
}

func writeSheet(file *excelize.File, sheet string, headers []string, rows [][]any) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}

		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, values := range rows {
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}

			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	return nil
}
