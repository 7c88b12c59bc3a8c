package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/wirix/market-sfu/cart"
	"github.com/wirix/market-sfu/catalog"
	checkoutControllers "github.com/wirix/market-sfu/controllers/checkout"
	orderControllers "github.com/wirix/market-sfu/controllers/order"
	"github.com/wirix/market-sfu/models"
	"github.com/wirix/market-sfu/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.GuestUser{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the catalog on first run
	if err := catalog.Seed(db); err != nil {
		log.Fatalf("❌ Seed failed: %v", err)
	}

	// Cart snapshots live in Redis; fall back to process memory when no
	// address is configured (dev setups).
	cartStore := initCartStore()
	carts := cart.NewManager(cartStore, nil)

	catalogService := catalog.NewService(catalog.NewGormRepository(db))
	orderService := orderControllers.NewService(db)
	checkoutHandler := checkoutControllers.NewHandler(db, carts, orderService, nil)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve product images
	r.Static("/products-static", "./public/products")

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Catalog:  catalogService,
		Carts:    carts,
		Checkout: checkoutHandler,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// initCartStore picks the cart snapshot backend from the environment.
func initCartStore() cart.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR not set, carts will not survive restarts")
		return cart.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.Printf("✅ Cart storage on Redis at %s", addr)
	return cart.NewRedisStore(client)
}
