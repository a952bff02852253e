package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"Airside/internal/auth"
	"Airside/internal/calc/duct"
	"Airside/internal/calc/premium/batch"
	"Airside/internal/calc/premium/importer"
	"Airside/internal/calc/refrigerant"
	"Airside/internal/calc/report"
	"Airside/internal/catalog"
	"Airside/internal/repo"
	"Airside/internal/reports"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // tool runs on the tech's own machine
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, r *repo.SQLRepository) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: r}
	reportsH := &reports.Handler{Repo: r}
	catalogH := &catalog.Handler{Repo: r}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	ductH := &duct.Handler{}
	refrigerantH := refrigerant.NewHandler()
	if path := os.Getenv("AIRSIDE_THRESHOLDS"); path != "" {
		t, err := refrigerant.LoadThresholds(path)
		if err != nil {
			log.Fatalf("thresholds config: %v", err)
		}
		refrigerantH.Thresholds = t
	}
	pdfH := &report.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{Repo: r}

	secureApi.HandleFunc("/tools/duct/round", ductH.Round).Methods("POST")
	secureApi.HandleFunc("/tools/duct/rect", ductH.Rect).Methods("POST")
	secureApi.HandleFunc("/tools/duct/friction", ductH.Friction).Methods("POST")
	secureApi.HandleFunc("/tools/duct/eql", ductH.EQL).Methods("POST")
	secureApi.HandleFunc("/tools/duct/returns", ductH.Returns).Methods("POST")
	secureApi.HandleFunc("/tools/duct/plan", ductH.Plan).Methods("POST")

	secureApi.HandleFunc("/tools/refrigerant/ptchart", refrigerantH.PTChart).Methods("POST")
	secureApi.HandleFunc("/tools/refrigerant/diagnose", refrigerantH.Diagnose).Methods("POST")
	secureApi.HandleFunc("/tools/refrigerant/charge", refrigerantH.Charge).Methods("POST")
	secureApi.HandleFunc("/tools/refrigerant/airflow", refrigerantH.Airflow).Methods("POST")

	secureApi.HandleFunc("/tools/report/pdf", pdfH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/batch/diagnose", batchH.Diagnose).Methods("POST")
	secureApi.HandleFunc("/tools/import/catalog", importH.Catalog).Methods("POST")

	secureApi.HandleFunc("/reports", reportsH.Create).Methods("POST")
	secureApi.HandleFunc("/reports", reportsH.List).Methods("GET")
	secureApi.HandleFunc("/reports/{id}", reportsH.Delete).Methods("DELETE")

	secureApi.HandleFunc("/catalog", catalogH.List).Methods("GET")
	secureApi.HandleFunc("/catalog/search", catalogH.Search).Methods("GET")
	secureApi.HandleFunc("/catalog/price", catalogH.Price).Methods("POST")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := repo.Open()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	r := repo.New(db)
	if err := r.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	mux := mux.NewRouter()
	HandleList(mux, r)
	handler := handlers.LoggingHandler(os.Stdout, CORS(mux))

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
