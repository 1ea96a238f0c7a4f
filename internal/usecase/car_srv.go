package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// carListPerPage matches the catalog grid size.
const carListPerPage = 24

type CarService interface {
	CreateCar(ctx context.Context, req *request.CreateCarRequest) (*response.CarResponse, error)
	UpdateCar(ctx context.Context, carID string, req *request.UpdateCarRequest) (*response.CarResponse, error)
	GetCarBySlug(ctx context.Context, slug string) (*response.CarResponse, error)
	ListCars(ctx context.Context, carUse string, page int) (*response.PaginatedResponse[response.CarResponse], error)
}

type carService struct {
	repo     *repository.Repository
	cache    redis.Cmdable
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewCarService(
	repo *repository.Repository,
	cache redis.Cmdable,
	config *utils.Config,
	log *zap.Logger,
) CarService {
	ttl := time.Duration(config.Redis.CacheTTL) * time.Minute
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &carService{
		repo:     repo,
		cache:    cache,
		cacheTTL: ttl,
		log:      log.With(zap.String("service", "car")),
	}
}

func carSlugCacheKey(slug string) string {
	return "car:slug:" + slug
}

func (s *carService) CreateCar(ctx context.Context, req *request.CreateCarRequest) (*response.CarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create car validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Car.FindByLicensePlate(ctx, req.LicensePlate)
	if err != nil {
		s.log.Error("Failed to check license plate", zap.Error(err), zap.String("license_plate", req.LicensePlate))
		return nil, fmt.Errorf("check license plate: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("car with license plate %s already exists", req.LicensePlate)
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}
	carUses := req.CarUses
	if carUses == nil {
		carUses = []string{}
	}

	now := time.Now()
	car := &entity.Car{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Brand:        req.Brand,
		Model:        req.Model,
		Slug:         req.Slug,
		LicensePlate: req.LicensePlate,
		BaseImage:    req.BaseImage,
		Images:       images,
		AmountPerDay: req.AmountPerDay,
		CarUses:      carUses,
		Seats:        req.Seats,
		Doors:        req.Doors,
		Luggage:      req.Luggage,
		Transmission: entity.Transmission(req.Transmission),
		Fuel:         req.Fuel,
		Year:         req.Year,
	}

	if err := s.repo.Car.Create(ctx, car); err != nil {
		s.log.Error("Failed to create car",
			zap.Error(err),
			zap.String("license_plate", req.LicensePlate),
		)
		return nil, fmt.Errorf("create car: %w", err)
	}

	s.log.Info("Car created",
		zap.String("car_id", car.ID.String()),
		zap.String("slug", car.Slug),
		zap.String("license_plate", car.LicensePlate),
	)

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) UpdateCar(ctx context.Context, carID string, req *request.UpdateCarRequest) (*response.CarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update car validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(carID)
	if err != nil {
		return nil, fmt.Errorf("invalid car ID format %s: %w", carID, err)
	}

	car, err := s.repo.Car.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find car", zap.Error(err), zap.String("car_id", carID))
		return nil, fmt.Errorf("find car: %w", err)
	}
	if car == nil {
		return nil, fmt.Errorf("car %s not found", carID)
	}

	oldSlug := car.Slug

	// Apply only the provided fields
	if req.Brand != nil {
		car.Brand = *req.Brand
	}
	if req.Model != nil {
		car.Model = *req.Model
	}
	if req.Slug != nil {
		car.Slug = *req.Slug
	}
	if req.LicensePlate != nil {
		car.LicensePlate = *req.LicensePlate
	}
	if req.BaseImage != nil {
		car.BaseImage = *req.BaseImage
	}
	if req.Images != nil {
		car.Images = req.Images
	}
	if req.AmountPerDay != nil {
		car.AmountPerDay = *req.AmountPerDay
	}
	if req.CarUses != nil {
		car.CarUses = req.CarUses
	}
	if req.Seats != nil {
		car.Seats = *req.Seats
	}
	if req.Doors != nil {
		car.Doors = *req.Doors
	}
	if req.Luggage != nil {
		car.Luggage = *req.Luggage
	}
	if req.Transmission != nil {
		car.Transmission = entity.Transmission(*req.Transmission)
	}
	if req.Fuel != nil {
		car.Fuel = *req.Fuel
	}
	if req.Year != nil {
		car.Year = *req.Year
	}
	car.UpdatedAt = time.Now()

	if err := s.repo.Car.Update(ctx, car); err != nil {
		s.log.Error("Failed to update car", zap.Error(err), zap.String("car_id", carID))
		return nil, fmt.Errorf("update car: %w", err)
	}

	// Drop stale cache entries; the old slug key too when it changed
	keys := []string{carSlugCacheKey(car.Slug)}
	if oldSlug != car.Slug {
		keys = append(keys, carSlugCacheKey(oldSlug))
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn("Failed to invalidate car cache", zap.Error(err), zap.Strings("keys", keys))
	}

	s.log.Info("Car updated",
		zap.String("car_id", car.ID.String()),
		zap.String("slug", car.Slug),
	)

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) GetCarBySlug(ctx context.Context, slug string) (*response.CarResponse, error) {
	key := carSlugCacheKey(slug)

	cached, err := s.cache.Get(ctx, key).Result()
	if err == nil {
		var resp response.CarResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		s.log.Warn("Failed to decode cached car, falling back to database",
			zap.Error(err), zap.String("slug", slug))
	} else if err != redis.Nil {
		s.log.Warn("Car cache lookup failed", zap.Error(err), zap.String("slug", slug))
	}

	car, err := s.repo.Car.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find car by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find car by slug: %w", err)
	}
	if car == nil {
		return nil, fmt.Errorf("car %s not found", slug)
	}

	resp := response.CarToResponse(car)

	if encoded, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, key, encoded, s.cacheTTL).Err(); err != nil {
			s.log.Warn("Failed to cache car", zap.Error(err), zap.String("slug", slug))
		}
	}

	return &resp, nil
}

func (s *carService) ListCars(ctx context.Context, carUse string, page int) (*response.PaginatedResponse[response.CarResponse], error) {
	if page < 1 {
		page = 1
	}

	// ALL_USE means no filter
	if carUse == "ALL_USE" {
		carUse = ""
	}

	offset := utils.CalculateOffset(page, carListPerPage)

	cars, err := s.repo.Car.List(ctx, carUse, carListPerPage, offset)
	if err != nil {
		s.log.Error("Failed to list cars",
			zap.Error(err),
			zap.String("car_use", carUse),
			zap.Int("page", page),
		)
		return nil, fmt.Errorf("list cars: %w", err)
	}

	total, err := s.repo.Car.Count(ctx, carUse)
	if err != nil {
		s.log.Error("Failed to count cars", zap.Error(err))
		return nil, fmt.Errorf("count cars: %w", err)
	}

	carResponses := make([]response.CarResponse, len(cars))
	for i, car := range cars {
		carResponses[i] = response.CarToResponse(car)
	}

	s.log.Info("Cars listed",
		zap.String("car_use", carUse),
		zap.Int("count", len(cars)),
		zap.Int64("total", total),
		zap.Int("page", page),
	)

	return response.NewPaginatedResponse(carResponses, page, carListPerPage, total), nil
}
