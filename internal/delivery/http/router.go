package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"cafesite/internal/delivery/http/controllers"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Reservation *controllers.ReservationController
	Menu        *controllers.MenuController
	Gallery     *controllers.GalleryController
	Career      *controllers.CareerController
	Auth        *controllers.AuthController
	Review      *controllers.ReviewController
	Contact     *controllers.ContactController
}

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps the back-office handlers; public routes are mounted bare.
func NewRouter(c Controllers, requireAuth func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Public site
	mux.HandleFunc("POST /reservations", c.Reservation.Create)
	mux.HandleFunc("GET /reservations/check-availability", c.Reservation.CheckAvailability)
	mux.HandleFunc("GET /menu", c.Menu.GetMenu)
	mux.HandleFunc("GET /gallery", c.Gallery.List)
	mux.HandleFunc("GET /careers", c.Career.ListOpen)
	mux.HandleFunc("GET /reviews", c.Review.List)
	mux.HandleFunc("GET /form-token", c.Contact.FormToken)
	mux.HandleFunc("POST /contact", c.Contact.Submit)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Back office
	mux.HandleFunc("GET /reservations", requireAuth(c.Reservation.List))
	mux.HandleFunc("PATCH /reservations/{id}", requireAuth(c.Reservation.UpdateStatus))
	mux.HandleFunc("DELETE /reservations/{id}", requireAuth(c.Reservation.Delete))
	mux.HandleFunc("POST /categories", requireAuth(c.Menu.CreateCategory))
	mux.HandleFunc("PUT /categories/{id}", requireAuth(c.Menu.UpdateCategory))
	mux.HandleFunc("DELETE /categories/{id}", requireAuth(c.Menu.DeleteCategory))
	mux.HandleFunc("POST /drinks", requireAuth(c.Menu.CreateDrink))
	mux.HandleFunc("PUT /drinks/{id}", requireAuth(c.Menu.UpdateDrink))
	mux.HandleFunc("DELETE /drinks/{id}", requireAuth(c.Menu.DeleteDrink))
	mux.HandleFunc("POST /gallery", requireAuth(c.Gallery.Add))
	mux.HandleFunc("DELETE /gallery/{id}", requireAuth(c.Gallery.Remove))
	mux.HandleFunc("GET /careers/all", requireAuth(c.Career.ListAll))
	mux.HandleFunc("POST /careers", requireAuth(c.Career.Create))
	mux.HandleFunc("PUT /careers/{id}", requireAuth(c.Career.Update))
	mux.HandleFunc("DELETE /careers/{id}", requireAuth(c.Career.Delete))

	// Ops
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
