package console

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"golang.org/x/sync/errgroup"
)

// BookingSource удалённые операции, нужные форме бронирования
type BookingSource interface {
	GetRoomCategories(ctx context.Context) ([]model.Lookup, error)
	GetPaymentMethods(ctx context.Context) ([]model.Lookup, error)
	GetFreeRooms(ctx context.Context, filter model.FreeRoomsFilter) ([]int, error)
	CreateBooking(ctx context.Context, draft map[string]any) error
}

// BookingRequired обязательные поля формы бронирования
var BookingRequired = []string{
	FieldStartDate,
	FieldEndDate,
	FieldCategoryCode,
	FieldRoomNumber,
	FieldGuestName,
	FieldGuestPassportNumber,
	FieldGuestPhoneNumber,
	FieldPaymentMethodCode,
}

var (
	bookingIntFields  = []string{FieldCategoryCode, FieldRoomNumber, FieldPaymentMethodCode}
	bookingBoolFields = []string{FieldBabyBed}
)

// BookingForm контроллер формы создания бронирования
type BookingForm struct {
	mu        sync.Mutex
	src       BookingSource
	onCreated func(ctx context.Context)

	status         Status
	lookupErr      error
	categories     []model.Lookup
	paymentMethods []model.Lookup

	draft Draft

	// результат последнего запроса свободных номеров и фильтр, для которого он получен
	freeRooms    []int
	freeRoomsFor model.FreeRoomsFilter
	freeRoomsErr error
	pending      *model.FreeRoomsFilter

	submitting bool
	submitErr  error
	created    bool
	closed     bool
}

// BookingFormSnapshot копия состояния формы для отрисовки
type BookingFormSnapshot struct {
	Status         Status
	LookupErr      error
	Categories     []model.Lookup
	PaymentMethods []model.Lookup
	Draft          Draft
	// FreeRooms nil пока фильтр не заполнен полностью
	FreeRooms        []int
	FreeRoomsLoading bool
	FreeRoomsErr     error
	Submitting       bool
	SubmitErr        error
	Created          bool
}

// NewBookingForm создаёт форму; onCreated вызывается после успешного создания
func NewBookingForm(src BookingSource, onCreated func(ctx context.Context)) *BookingForm {
	return &BookingForm{
		src:       src,
		onCreated: onCreated,
		status:    StatusIdle,
		draft:     Draft{},
	}
}

// Mount параллельно загружает категории номеров и способы оплаты
func (f *BookingForm) Mount(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrDiscarded
	}
	f.status = StatusLoading
	f.mu.Unlock()

	var categories, methods []model.Lookup
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = f.src.GetRoomCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		methods, err = f.src.GetPaymentMethods(gctx)
		return err
	})
	err := g.Wait()

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
	f.categories = categories
	f.paymentMethods = methods
	return nil
}

// Set записывает строковое поле. Пустое значение очищает поле.
// Изменение даты начала, даты окончания или категории сбрасывает выбранный номер
// и, когда все три заполнены, запрашивает список свободных номеров.
// Ответ, пришедший для устаревшего фильтра, отбрасывается (ErrDiscarded).
func (f *BookingForm) Set(ctx context.Context, field, value string) error {
	value = strings.TrimSpace(value)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrDiscarded
	}

	if field == FieldRoomNumber && value != "" && !f.roomOffered(value) {
		f.mu.Unlock()
		return ErrIllegalChoice
	}

	previous := f.draft.String(field)
	if value == "" {
		delete(f.draft, field)
	} else {
		f.draft[field] = value
	}
	f.submitErr = nil
	f.created = false

	switch field {
	case FieldStartDate:
		if value != "" {
			f.draft[FieldCheckIn] = CheckInFor(value)
		}
	case FieldEndDate:
		if value != "" {
			f.draft[FieldCheckOut] = CheckOutFor(value)
		}
	}

	if !isFreeRoomsTrigger(field) || previous == value {
		f.mu.Unlock()
		return nil
	}

	delete(f.draft, FieldRoomNumber)
	f.freeRooms = nil
	f.freeRoomsFor = model.FreeRoomsFilter{}
	f.freeRoomsErr = nil

	filter := f.filter()
	if !filter.Complete() {
		f.pending = nil
		f.mu.Unlock()
		return nil
	}
	f.pending = &filter
	f.mu.Unlock()

	rooms, err := f.src.GetFreeRooms(ctx, filter)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.filter() != filter {
		return ErrDiscarded
	}
	if f.pending != nil && *f.pending == filter {
		f.pending = nil
	}
	f.freeRoomsFor = filter
	if err != nil {
		f.freeRooms = []int{}
		f.freeRoomsErr = err
		return err
	}
	if rooms == nil {
		rooms = []int{}
	}
	f.freeRooms = rooms
	f.freeRoomsErr = nil
	return nil
}

// SetFlag записывает поле-флажок
func (f *BookingForm) SetFlag(field string, checked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrDiscarded
	}
	f.draft[field] = checked
	f.created = false
	return nil
}

// Toggle инвертирует поле-флажок и возвращает новое значение
func (f *BookingForm) Toggle(field string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false, ErrDiscarded
	}
	checked := !f.draft.Bool(field)
	f.draft[field] = checked
	f.created = false
	return checked, nil
}

// Missing незаполненные обязательные поля
func (f *BookingForm) Missing() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.draft.missing(BookingRequired)
}

// Submit проверяет и отправляет черновик.
// При ошибке черновик сохраняется, ошибка доступна в снимке.
func (f *BookingForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrDiscarded
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	if missing := f.draft.missing(BookingRequired); len(missing) > 0 {
		f.submitErr = &ValidationError{Missing: missing}
		f.mu.Unlock()
		return f.submitErr
	}
	payload, err := f.draft.payload(bookingIntFields, bookingBoolFields)
	if err != nil {
		f.submitErr = err
		f.mu.Unlock()
		return err
	}
	f.submitting = true
	f.submitErr = nil
	f.mu.Unlock()

	err = f.src.CreateBooking(ctx, payload)

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
	f.freeRooms = nil
	f.freeRoomsFor = model.FreeRoomsFilter{}
	f.mu.Unlock()

	if f.onCreated != nil {
		f.onCreated(ctx)
	}
	return nil
}

func (f *BookingForm) Snapshot() BookingFormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := BookingFormSnapshot{
		Status:           f.status,
		LookupErr:        f.lookupErr,
		Categories:       append([]model.Lookup(nil), f.categories...),
		PaymentMethods:   append([]model.Lookup(nil), f.paymentMethods...),
		Draft:            f.draft.clone(),
		FreeRoomsLoading: f.pending != nil,
		FreeRoomsErr:     f.freeRoomsErr,
		Submitting:       f.submitting,
		SubmitErr:        f.submitErr,
		Created:          f.created,
	}
	if f.freeRooms != nil {
		snap.FreeRooms = append([]int{}, f.freeRooms...)
	}
	return snap
}

func (f *BookingForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	f.pending = nil
}

// filter текущий фильтр свободных номеров; вызывается под f.mu
func (f *BookingForm) filter() model.FreeRoomsFilter {
	return model.FreeRoomsFilter{
		StartDate:    f.draft.String(FieldStartDate),
		EndDate:      f.draft.String(FieldEndDate),
		CategoryCode: f.draft.String(FieldCategoryCode),
	}
}

// roomOffered номер есть в последнем актуальном списке свободных; вызывается под f.mu
func (f *BookingForm) roomOffered(value string) bool {
	n, err := strconv.Atoi(value)
	if err != nil || f.freeRoomsFor != f.filter() {
		return false
	}
	for _, room := range f.freeRooms {
		if room == n {
			return true
		}
	}
	return false
}

func isFreeRoomsTrigger(field string) bool {
	return field == FieldStartDate || field == FieldEndDate || field == FieldCategoryCode
}
