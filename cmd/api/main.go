package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/wanderfolk/tripledger/docs"
	"github.com/wanderfolk/tripledger/internal/budget"
	"github.com/wanderfolk/tripledger/internal/config"
	"github.com/wanderfolk/tripledger/internal/database"
	"github.com/wanderfolk/tripledger/internal/expense"
	expensesplit "github.com/wanderfolk/tripledger/internal/expense/split"
	"github.com/wanderfolk/tripledger/internal/settlement"
	"github.com/wanderfolk/tripledger/internal/traveler"
	"github.com/wanderfolk/tripledger/internal/trip"
	mw "github.com/wanderfolk/tripledger/pkg/middleware"
)

// @title           TripLedger API
// @version         1.0
// @description     Group expense tracking and settlement for shared trips.
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	// Split Strategy Factory (Factory Pattern)
	splitFactory := expensesplit.NewSplitStrategyFactory()

	// Traveler feature
	travelerRepo := traveler.NewRepository(db)
	travelerService := traveler.NewService(travelerRepo)
	travelerHandler := traveler.NewHandler(travelerService)

	// Trip feature
	tripRepo := trip.NewRepository(db)
	tripService := trip.NewService(tripRepo)
	tripHandler := trip.NewHandler(tripService)

	// Expense feature (with split factory injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, splitFactory)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature: the engine wired to the expense snapshot and roster
	settlementRepo := settlement.NewRepository(db)
	settlementService := settlement.NewService(settlementRepo, expenseRepo, tripRepo)
	settlementHandler := settlement.NewHandler(settlementService)

	// Budget feature
	budgetRepo := budget.NewRepository(db)
	budgetService := budget.NewService(budgetRepo, tripRepo)
	budgetHandler := budget.NewHandler(budgetService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Test-Viewer-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.TestViewerMiddleware)
		r.Use(mw.Auth([]byte(cfg.Auth.JWTSecret)))

		// Mount feature routers
		r.Mount("/travelers", travelerHandler.Routes())
		r.Mount("/trips", tripHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/budgets", budgetHandler.Routes())
	})

	log.Printf("Server starting on port %s", cfg.App.Port)
	if err := http.ListenAndServe(":"+cfg.App.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
