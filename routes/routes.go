// routes/routes.go
package routes

import (
	"bistro-boss/controllers"
	"bistro-boss/middleware"
	"bistro-boss/repositories"
	"bistro-boss/utils"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Options configures NewRouter
type Options struct {
	Repositories *repositories.Repositories
	Tokens       *utils.TokenService
	// StrictAuth puts the admin-promotion, menu-create and cart-write routes behind the guards
	StrictAuth   bool
}

// NewRouter builds the full HTTP handler: routes, guards, request logging, CORS and panic recovery
func NewRouter(opts Options) http.Handler {
	router := mux.NewRouter()
	RegisterRoutes(router, opts)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))

	return recovery(cors(middleware.Logger(router)))
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, opts Options) {
	repos := opts.Repositories
	tokenController := controllers.NewTokenController(opts.Tokens)
	userController := controllers.NewUserController(repos.Users)
	menuController := controllers.NewMenuController(repos.Menu)
	reviewController := controllers.NewReviewController(repos.Reviews)
	cartController := controllers.NewCartController(repos.Carts)

	auth := middleware.AuthMiddleware(opts.Tokens)
	admin := middleware.AdminMiddleware(repos.Users)
	open := func(h http.Handler) http.Handler { return h }
	authenticated := auth
	adminOnly := func(h http.Handler) http.Handler { return auth(admin(h)) }

	strictAdmin, strictAuth := open, open
	if opts.StrictAuth {
		strictAdmin, strictAuth = adminOnly, authenticated
	}

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("server is running"))
	}).Methods(http.MethodGet)

	// Token
	router.HandleFunc("/jwt", tokenController.IssueToken).Methods(http.MethodPost)

	// User routes
	router.Handle("/users", adminOnly(http.HandlerFunc(userController.GetUsers))).Methods(http.MethodGet)
	router.HandleFunc("/users", userController.CreateUser).Methods(http.MethodPost)
	router.Handle("/users/admin/{email}", authenticated(http.HandlerFunc(userController.IsAdmin))).Methods(http.MethodGet)
	router.Handle("/users/admin/{id}", strictAdmin(http.HandlerFunc(userController.MakeAdmin))).Methods(http.MethodPatch)

	// Menu routes
	router.HandleFunc("/menu", menuController.GetMenu).Methods(http.MethodGet)
	router.Handle("/menu", strictAdmin(http.HandlerFunc(menuController.CreateMenuItem))).Methods(http.MethodPost)

	// Review routes
	router.HandleFunc("/reviews", reviewController.GetReviews).Methods(http.MethodGet)

	// Cart routes
	router.Handle("/carts", authenticated(http.HandlerFunc(cartController.GetCart))).Methods(http.MethodGet)
	router.Handle("/carts", strictAuth(http.HandlerFunc(cartController.AddToCart))).Methods(http.MethodPost)
	router.Handle("/carts/{id}", strictAuth(http.HandlerFunc(cartController.RemoveFromCart))).Methods(http.MethodDelete)
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	utils.Log.Error(v...)
}
