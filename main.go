package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	adminController "github.com/Vishal221302/Agriculture-Shop-bakend/controllers/admin"
	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/Vishal221302/Agriculture-Shop-bakend/routes"
)

func main() {
	log.Println("✅ Starting Agriculture Shop API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Banner{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Make sure an admin account exists
	if err := ensureAdminUser(db); err != nil {
		log.Fatalf("❌ Admin seeding failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// Videos can be large
	r.MaxMultipartMemory = 50 << 20 // 50MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images/videos
	r.Static("/uploads", adminController.UploadDir())

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("🌾 Agriculture Shop API running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase opens the MySQL connection and bounds the pool: ten
// connections, callers queue when all are busy.
func initDatabase() *gorm.DB {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "3306")
	user := getEnv("DB_USERNAME", "root")
	password := os.Getenv("DB_PASSWORD")
	dbname := getEnv("DB_DATABASE", "agrishop")

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Failed to access DB pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.Println("✅ MySQL connected")
	return db
}

// ensureAdminUser creates the initial admin account when none exists,
// using ADMIN_USERNAME/ADMIN_PASSWORD.
func ensureAdminUser(db *gorm.DB) error {
	username := getEnv("ADMIN_USERNAME", "admin")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("⚠️  ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.AdminUser
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := db.Create(&models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
	}).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin user %q created", username)
	return nil
}

func allowedOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{"http://localhost:5173", "http://localhost:5174"}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
