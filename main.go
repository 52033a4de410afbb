package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"pm-tracker/microservices/tracking-service/db"
	"pm-tracker/microservices/tracking-service/handlers"
	"pm-tracker/microservices/tracking-service/logging"
	"pm-tracker/microservices/tracking-service/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// The presentation layer is a browser app served from another origin;
// it consumes this API directly.
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Tracking Service...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded, relying on process environment: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoURI == "" || mongoDBName == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: MONGO_URI and MONGO_DB_NAME must be set in the environment.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := db.Connect(ctx, mongoURI, mongoDBName)
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer store.Close(context.Background())
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	managerService := services.NewManagerService(store.Collection(db.ManagersCollection), services.NewStoreBreaker("ManagersStoreCB"))
	workService := services.NewWorkService(store.Collection(db.WorkCollection), services.NewStoreBreaker("WorkStoreCB"))
	jobService := services.NewJobService(store.Collection(db.JobsCollection), services.NewStoreBreaker("JobsStoreCB"))
	exportService := services.NewExportService(managerService, workService, jobService)

	managerHandler := handlers.NewManagerHandler(managerService)
	workHandler := handlers.NewWorkHandler(workService)
	jobHandler := handlers.NewJobHandler(jobService)
	exportHandler := handlers.NewExportHandler(exportService)
	healthHandler := handlers.NewHealthHandler(store)

	r := mux.NewRouter()

	r.HandleFunc("/api/project-managers", managerHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/project-managers", managerHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/project-managers/{id}", managerHandler.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/project-managers/{id}", managerHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/project-managers/{id}", managerHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/api/work", workHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/work", workHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/work/{id}", workHandler.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/work/{id}", workHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/work/{id}", workHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/api/jobs", jobHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/jobs", jobHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/jobs/{id}", jobHandler.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/jobs/{id}", jobHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/jobs/{id}", jobHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/api/export/summary", exportHandler.Summary).Methods(http.MethodGet)
	r.HandleFunc("/api/health", healthHandler.Health).Methods(http.MethodGet)

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
