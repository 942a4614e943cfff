package console

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/Freeeeeet/hotel_console/internal/model"
)

// ComplaintSource удалённые операции, нужные форме жалобы
type ComplaintSource interface {
	GetAllBookings(ctx context.Context) ([]model.Booking, error)
	CreateComplaint(ctx context.Context, draft map[string]any) error
}

// ComplaintRequired обязательные поля формы жалобы
var ComplaintRequired = []string{FieldReason, FieldBookingID}

var complaintIntFields = []string{FieldBookingID}

// ComplaintForm контроллер формы создания жалобы
type ComplaintForm struct {
	mu        sync.Mutex
	src       ComplaintSource
	onCreated func(ctx context.Context)

	status    Status
	lookupErr error
	bookings  []model.Booking
	draft     Draft

	submitting bool
	submitErr  error
	created    bool
	closed     bool
}

// ComplaintFormSnapshot копия состояния формы жалобы
type ComplaintFormSnapshot struct {
	Status     Status
	LookupErr  error
	Bookings   []model.Booking
	Draft      Draft
	Submitting bool
	SubmitErr  error
	Created    bool
}

func NewComplaintForm(src ComplaintSource, onCreated func(ctx context.Context)) *ComplaintForm {
	return &ComplaintForm{
		src:       src,
		onCreated: onCreated,
		status:    StatusIdle,
		draft:     Draft{},
	}
}

// Mount загружает бронирования для выбора, к какому относится жалоба
func (f *ComplaintForm) Mount(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrDiscarded
	}
	f.status = StatusLoading
	f.mu.Unlock()

	bookings, err := f.src.GetAllBookings(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrDiscarded
	}
	if err != nil {
		f.status = StatusFailed
		f.lookupErr = err
		return err
	}
	f.status = StatusReady
	f.lookupErr = nil
	f.bookings = bookings
	return nil
}

// Set записывает поле. booking_id должен быть одним из загруженных бронирований.
func (f *ComplaintForm) Set(field, value string) error {
	value = strings.TrimSpace(value)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrDiscarded
	}
	if field == FieldBookingID && value != "" && !f.bookingOffered(value) {
		return ErrIllegalChoice
	}
	if value == "" {
		delete(f.draft, field)
	} else {
		f.draft[field] = value
	}
	f.submitErr = nil
	f.created = false
	return nil
}

func (f *ComplaintForm) Missing() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.draft.missing(ComplaintRequired)
}

// Submit проверяет и отправляет жалобу
func (f *ComplaintForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrDiscarded
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	if missing := f.draft.missing(ComplaintRequired); len(missing) > 0 {
		f.submitErr = &ValidationError{Missing: missing}
		f.mu.Unlock()
		return f.submitErr
	}
	payload, err := f.draft.payload(complaintIntFields, nil)
	if err != nil {
		f.submitErr = err
		f.mu.Unlock()
		return err
	}
	f.submitting = true
	f.submitErr = nil
	f.mu.Unlock()

	err = f.src.CreateComplaint(ctx, payload)

	f.mu.Lock()
	f.submitting = false
	if f.closed {
		f.mu.Unlock()
		return ErrDiscarded
	}
	if err != nil {
		f.submitErr = err
		f.mu.Unlock()
		return err
	}
	f.created = true
	f.draft = Draft{}
	f.mu.Unlock()

	if f.onCreated != nil {
		f.onCreated(ctx)
	}
	return nil
}

func (f *ComplaintForm) Snapshot() ComplaintFormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return ComplaintFormSnapshot{
		Status:     f.status,
		LookupErr:  f.lookupErr,
		Bookings:   append([]model.Booking(nil), f.bookings...),
		Draft:      f.draft.clone(),
		Submitting: f.submitting,
		SubmitErr:  f.submitErr,
		Created:    f.created,
	}
}

func (f *ComplaintForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
}

func (f *ComplaintForm) bookingOffered(value string) bool {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false
	}
	for _, b := range f.bookings {
		if b.ID == id {
			return true
		}
	}
	return false
}
