package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. Each one records enough of its calls for
// the tests to assert what was written and what was left untouched.

var (
	_ repository.UserRepository         = (*fakeUserRepo)(nil)
	_ repository.SessionRepository      = (*fakeSessionRepo)(nil)
	_ repository.CarRepository          = (*fakeCarRepo)(nil)
	_ repository.BookingRepository      = (*fakeBookingRepo)(nil)
	_ repository.NotificationRepository = (*fakeNotificationRepo)(nil)
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) add(user *entity.User) {
	f.users[user.ID] = user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	for _, u := range f.users {
		if u.PhoneNumber == phoneNumber {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session not found or already revoked")
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

type fakeCarRepo struct {
	cars map[uuid.UUID]*entity.Car

	findBySlugCalls int
	listCarUse      string
	listLimit       int
	listOffset      int
	total           int64
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: make(map[uuid.UUID]*entity.Car)}
}

func (f *fakeCarRepo) add(car *entity.Car) {
	f.cars[car.ID] = car
}

func (f *fakeCarRepo) Create(ctx context.Context, car *entity.Car) error {
	f.cars[car.ID] = car
	return nil
}

func (f *fakeCarRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	return f.cars[id], nil
}

func (f *fakeCarRepo) FindBySlug(ctx context.Context, slug string) (*entity.Car, error) {
	f.findBySlugCalls++
	for _, c := range f.cars {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCarRepo) FindByLicensePlate(ctx context.Context, licensePlate string) (*entity.Car, error) {
	for _, c := range f.cars {
		if c.LicensePlate == licensePlate {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCarRepo) List(ctx context.Context, carUse string, limit, offset int) ([]*entity.Car, error) {
	f.listCarUse = carUse
	f.listLimit = limit
	f.listOffset = offset

	cars := make([]*entity.Car, 0, len(f.cars))
	for _, c := range f.cars {
		cars = append(cars, c)
	}
	return cars, nil
}

func (f *fakeCarRepo) Count(ctx context.Context, carUse string) (int64, error) {
	if f.total > 0 {
		return f.total, nil
	}
	return int64(len(f.cars)), nil
}

func (f *fakeCarRepo) Update(ctx context.Context, car *entity.Car) error {
	f.cars[car.ID] = car
	return nil
}

type fakeBookingRepo struct {
	created []*entity.Booking
	details map[uuid.UUID]*entity.BookingDetail

	listResult     []*entity.BookingDetail
	listedStatuses [][]string
	updateCalls    int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{details: make(map[uuid.UUID]*entity.BookingDetail)}
}

func (f *fakeBookingRepo) add(detail *entity.BookingDetail) {
	f.details[detail.ID] = detail
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.created = append(f.created, booking)
	f.details[booking.ID] = &entity.BookingDetail{Booking: *booking}
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	detail, ok := f.details[id]
	if !ok {
		return nil, nil
	}
	booking := detail.Booking
	return &booking, nil
}

func (f *fakeBookingRepo) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	return f.details[id], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	var out []*entity.BookingDetail
	for _, d := range f.details {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListDetailed(ctx context.Context, statuses []string) ([]*entity.BookingDetail, error) {
	f.listedStatuses = append(f.listedStatuses, statuses)
	return f.listResult, nil
}

func (f *fakeBookingRepo) UpdateFields(ctx context.Context, id uuid.UUID, status *entity.BookingStatus, paidAmount *float64) error {
	f.updateCalls++

	detail, ok := f.details[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	if status != nil {
		detail.Status = *status
	}
	if paidAmount != nil {
		detail.PaidAmount = *paidAmount
	}
	return nil
}

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	f.created = append(f.created, notification)
	return nil
}

func (f *fakeNotificationRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// fakeNotifier captures dispatched alerts. Messages land on a channel
// so tests can wait for the async dispatch goroutine.
type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
	ch       chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{ch: make(chan string, 8)}
}

func (f *fakeNotifier) Notify(ctx context.Context, photoURL, message string) error {
	f.mu.Lock()
	f.messages = append(f.messages, message)
	f.mu.Unlock()
	f.ch <- message
	return nil
}
