package dto

import (
	"time"

	"github.com/google/uuid"

	"lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type SubmitBookingRequest struct {
	GuestName    string `json:"guest_name"    validate:"required,max=100"`
	GuestEmail   string `json:"guest_email"   validate:"required,email,max=100"`
	GuestPhone   string `json:"guest_phone"   validate:"omitempty,max=20"`
	RoomType     string `json:"room_type"     validate:"required,max=50"`
	CheckIn      string `json:"check_in"      validate:"required,datetime=2006-01-02"`
	CheckOut     string `json:"check_out"     validate:"required,datetime=2006-01-02"`
	PaymentProof string `json:"payment_proof" validate:"omitempty,proofpayload=image/png image/jpeg application/pdf"`
}

// ToModels builds the booking and its initial meta row. A submitted
// payment proof moves the initial payment status from unpaid to pending.
func (c *SubmitBookingRequest) ToModels(reference, user string) (model.Booking, model.BookingMeta, error) {
	checkIn, err := time.ParseInLocation(constant.DateOnlyFormat, c.CheckIn, timezone.GetLocation())
	if err != nil {
		return model.Booking{}, model.BookingMeta{}, err
	}

	checkOut, err := time.ParseInLocation(constant.DateOnlyFormat, c.CheckOut, timezone.GetLocation())
	if err != nil {
		return model.Booking{}, model.BookingMeta{}, err
	}

	now := timezone.Now()
	metadata := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	booking := model.Booking{
		ID:              uuid.NewString(),
		ReferenceNumber: reference,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		RoomType:        c.RoomType,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Metadata:        metadata,
	}

	meta := model.BookingMeta{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
		Metadata:      metadata,
	}

	if c.PaymentProof != "" {
		meta.PaymentStatus = model.PaymentStatusPending
		meta.PaymentProof = c.PaymentProof
	}

	return booking, meta, nil
}

type SubmitBookingResponse struct {
	Message         string `json:"message"`
	ReferenceNumber string `json:"reference_number"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status"         validate:"required,max=50"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,max=50"`
}

type UpdatePaymentProofRequest struct {
	PaymentProof string `json:"payment_proof" validate:"required,proofpayload=image/png image/jpeg application/pdf"`
}

type UpdateMetaRequest struct {
	Status        string `json:"status"         validate:"omitempty,max=50"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,max=50"`
	PaymentProof  string `json:"payment_proof"  validate:"omitempty,proofpayload=image/png image/jpeg application/pdf"`
}

type BookingMetaResponse struct {
	BookingID     string `json:"booking_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	PaymentProof  string `json:"payment_proof,omitempty"`
	UpdatedAt     string `json:"updated_at"`
}

func (r *BookingMetaResponse) FromModel(meta model.BookingMeta) {
	r.BookingID = meta.BookingID
	r.Status = meta.Status
	r.PaymentStatus = meta.PaymentStatus
	r.PaymentProof = meta.PaymentProof
	r.UpdatedAt = meta.ModifiedAt.Format(constant.DateFormat)
}

type BookingResponse struct {
	ID              string `json:"id"`
	ReferenceNumber string `json:"reference_number"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone,omitempty"`
	RoomType        string `json:"room_type"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	PaymentProof    string `json:"payment_proof,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromRow(row model.BookingRow) {
	r.ID = row.ID
	r.ReferenceNumber = row.ReferenceNumber
	r.GuestName = row.GuestName
	r.GuestEmail = row.GuestEmail
	r.GuestPhone = row.GuestPhone
	r.RoomType = row.RoomType
	r.CheckIn = row.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = row.CheckOut.Format(constant.DateOnlyFormat)
	r.Status = row.Status()
	r.PaymentStatus = row.PaymentStatus()
	r.PaymentProof = row.PaymentProof()
	r.Metadata.FromModel(row.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromRows(rows []model.BookingRow, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(rows))
	for i, row := range rows {
		r.Bookings[i].FromRow(row)
	}
}
