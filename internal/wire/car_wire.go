package wire

import (
	"car-rental/internal/adaptor"
	"car-rental/internal/data/repository"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCar(
	r chi.Router,
	carHandler *adaptor.CarHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/cars - Browse the catalog (paginated, optional carUse filter)
	r.Get("/api/cars", carHandler.ListCars)

	// GET /api/cars/{slug} - Car detail page
	r.Get("/api/cars/{slug}", carHandler.GetCarBySlug)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/cars - Add a car to the catalog
		r.Post("/api/cars", carHandler.CreateCar)

		// PUT /api/cars/{id} - Update a car
		r.Put("/api/cars/{id}", carHandler.UpdateCar)
	})
}
