package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Freeeeeet/hotel_console/internal/model"
)

// Пути REST API (относительно базового /api)
const (
	PathGetAllBookings    = "/GetAllBookings"
	PathGetBookingByID    = "/GetBookingByID/"
	PathCreateBooking     = "/CreateBooking"
	PathConfirmBooking    = "/ConfirmBooking"
	PathGetAllComplaints  = "/GetAllComplaints"
	PathGetComplaintByID  = "/GetComplaintByID/"
	PathCreateComplaint   = "/CreateComplaint"
	PathResolveComplaint  = "/ResolveComplaint"
	PathGetAllPayments    = "/GetAllPayments"
	PathConfirmPayment    = "/ConfirmPayment"
	PathGetAllRooms       = "/GetAllRooms"
	PathGetRoomCategories = "/GetRoomCategories"
	PathGetPaymentMethods = "/GetPaymentMethods"
	PathGetFreeRooms      = "/GetFreeRooms"
	PathMetrics           = "/SetMetrics"
	PathLogin             = "/login"
	PathLogout            = "/logout"
)

// ========================
// Bookings
// ========================

func (c *Client) GetAllBookings(ctx context.Context) ([]model.Booking, error) {
	return getList[model.Booking](ctx, c, PathGetAllBookings, nil)
}

func (c *Client) GetBookingByID(ctx context.Context, id int64) (*model.Booking, error) {
	return getOne[model.Booking](ctx, c, PathGetBookingByID+strconv.FormatInt(id, 10))
}

// CreateBooking отправляет черновик бронирования
func (c *Client) CreateBooking(ctx context.Context, draft map[string]any) error {
	resp, err := c.Request(ctx, http.MethodPost, PathCreateBooking, nil, draft)
	if err != nil {
		return err
	}
	return expectCreated(resp, http.MethodPost, PathCreateBooking)
}

// ConfirmBooking переводит бронирование в статус "заселён"
func (c *Client) ConfirmBooking(ctx context.Context, id int64) error {
	query := url.Values{"id": {strconv.FormatInt(id, 10)}}
	_, err := c.Request(ctx, http.MethodPost, PathConfirmBooking, query, nil)
	return err
}

// ========================
// Complaints
// ========================

func (c *Client) GetAllComplaints(ctx context.Context) ([]model.Complaint, error) {
	return getList[model.Complaint](ctx, c, PathGetAllComplaints, nil)
}

func (c *Client) GetComplaintByID(ctx context.Context, id int64) (*model.Complaint, error) {
	return getOne[model.Complaint](ctx, c, PathGetComplaintByID+strconv.FormatInt(id, 10))
}

func (c *Client) CreateComplaint(ctx context.Context, draft map[string]any) error {
	resp, err := c.Request(ctx, http.MethodPost, PathCreateComplaint, nil, draft)
	if err != nil {
		return err
	}
	return expectCreated(resp, http.MethodPost, PathCreateComplaint)
}

// ResolveComplaint переводит жалобу в статус statusCode
func (c *Client) ResolveComplaint(ctx context.Context, id int64, statusCode int) error {
	query := url.Values{
		"id":         {strconv.FormatInt(id, 10)},
		"statusCode": {strconv.Itoa(statusCode)},
	}
	_, err := c.Request(ctx, http.MethodPost, PathResolveComplaint, query, nil)
	return err
}

// ========================
// Payments & rooms
// ========================

func (c *Client) GetAllPayments(ctx context.Context) ([]model.Payment, error) {
	return getList[model.Payment](ctx, c, PathGetAllPayments, nil)
}

func (c *Client) ConfirmPayment(ctx context.Context, id int64) error {
	query := url.Values{"id": {strconv.FormatInt(id, 10)}}
	_, err := c.Request(ctx, http.MethodPost, PathConfirmPayment, query, nil)
	return err
}

func (c *Client) GetAllRooms(ctx context.Context) ([]model.Room, error) {
	return getList[model.Room](ctx, c, PathGetAllRooms, nil)
}

// GetRoomCategories справочник категорий (через кеш, если он подключён)
func (c *Client) GetRoomCategories(ctx context.Context) ([]model.Lookup, error) {
	return c.lookups.Fetch(ctx, LookupRoomCategories, func(ctx context.Context) ([]model.Lookup, error) {
		return getList[model.Lookup](ctx, c, PathGetRoomCategories, nil)
	})
}

// GetPaymentMethods справочник способов оплаты (через кеш, если он подключён)
func (c *Client) GetPaymentMethods(ctx context.Context) ([]model.Lookup, error) {
	return c.lookups.Fetch(ctx, LookupPaymentMethods, func(ctx context.Context) ([]model.Lookup, error) {
		return getList[model.Lookup](ctx, c, PathGetPaymentMethods, nil)
	})
}

// GetFreeRooms номера, свободные на период в выбранной категории
func (c *Client) GetFreeRooms(ctx context.Context, filter model.FreeRoomsFilter) ([]int, error) {
	query := url.Values{
		"start_date":    {filter.StartDate},
		"end_date":      {filter.EndDate},
		"category_code": {filter.CategoryCode},
	}
	return getList[int](ctx, c, PathGetFreeRooms, query)
}

// GetMetrics показатели для главного экрана (на сервере метод называется SetMetrics)
func (c *Client) GetMetrics(ctx context.Context) (*model.Metrics, error) {
	return getOne[model.Metrics](ctx, c, PathMetrics)
}

// ========================
// Auth
// ========================

// Login обменивает логин и пароль на токен
func (c *Client) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	resp, err := c.Request(ctx, http.MethodPost, PathLogin, nil, model.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if resp.Empty() {
		return nil, nil
	}
	var out model.LoginResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &APIError{Kind: KindDecode, Method: http.MethodPost, Path: PathLogin, StatusCode: resp.StatusCode, Message: GenericMessage, Err: fmt.Errorf("decode login: %w", err)}
	}
	return &out, nil
}

// Logout завершает сессию на сервере
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Request(ctx, http.MethodPost, PathLogout, nil, nil)
	return err
}
