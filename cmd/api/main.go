package main

import (
	"context"
	"log"
	"os"

	"gateapp/internal/db"
	"gateapp/internal/employees"
	"gateapp/internal/flights"
	"gateapp/internal/llm"
	"gateapp/internal/ocr"
	"gateapp/internal/predict"
	"gateapp/internal/productivity"
	"gateapp/internal/products"
	"gateapp/internal/router"
	"gateapp/internal/scans"
	"gateapp/internal/storage"
	"gateapp/internal/vision"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"OPENROUTER_API_KEY",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── LLM + OCR ─────────────────────────
	llmClient := llm.NewOpenRouterClient()
	recognizer := ocr.NewTesseractRecognizer()

	if err := recognizer.Available(); err != nil {
		log.Printf("⚠️  tesseract not available, vision endpoints will fail: %v", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	flightService := flights.NewService(flights.NewPostgresRepository(pgDB))
	employeeService := employees.NewService(employees.NewPostgresRepository(pgDB))
	productService := products.NewService(products.NewPostgresRepository(pgDB))
	scanService := scans.NewService(scans.NewPostgresRepository(pgDB), r2Client)
	visionService := vision.NewService(recognizer)
	predictService := predict.NewService(llmClient)
	productivityService := productivity.NewService(
		productivity.NewPostgresRepository(pgDB),
		llmClient,
	)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Flights:      flights.NewHandler(flightService),
		Employees:    employees.NewHandler(employeeService),
		Products:     products.NewHandler(productService),
		Scans:        scans.NewHandler(scanService),
		Vision:       vision.NewHandler(visionService, recognizer),
		Predict:      predict.NewHandler(predictService),
		Productivity: productivity.NewHandler(productivityService),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
