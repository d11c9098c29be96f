package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"maintenance-tracker-backend/internal/config"
	"maintenance-tracker-backend/internal/database"
	"maintenance-tracker-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Structures mirroring the catalog tables
type BrandData struct {
	Name string `yaml:"name"`
}

type EquipmentData struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	BrandName   string `yaml:"brand"`
	Description string `yaml:"description"`
	PhotoURL    string `yaml:"photo_url,omitempty"`
}

type OperatorData struct {
	Cedula    string `yaml:"cedula"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone,omitempty"`
	PhotoURL  string `yaml:"photo_url,omitempty"`
}

// CatalogFile is the shape of every YAML file under the data directory.
// A file may carry any subset of the three lists.
type CatalogFile struct {
	Brands    []BrandData     `yaml:"brands"`
	Equipment []EquipmentData `yaml:"equipment"`
	Operators []OperatorData  `yaml:"operators"`
}

func main() {
	log.Println("Loading catalog data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Postgres may still be starting when run from docker compose
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	catalog, err := loadCatalog(dataDir)
	if err != nil {
		log.Fatalf("Failed to read YAML files: %v", err)
	}

	if err := seedCatalog(db, catalog); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	log.Println("Catalog data loaded")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadCatalog merges every .yaml file found under dataDir
func loadCatalog(dataDir string) (*CatalogFile, error) {
	merged := &CatalogFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file CatalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Brands = append(merged.Brands, file.Brands...)
		merged.Equipment = append(merged.Equipment, file.Equipment...)
		merged.Operators = append(merged.Operators, file.Operators...)
		return nil
	})

	return merged, err
}

func seedCatalog(db *gorm.DB, catalog *CatalogFile) error {
	brandMap := make(map[string]*models.Brand)
	brandCreated := 0
	for _, brandData := range catalog.Brands {
		brand, created, err := createBrand(db, brandData)
		if err != nil {
			return fmt.Errorf("failed to create brand %s: %w", brandData.Name, err)
		}
		brandMap[brandData.Name] = brand
		if created {
			brandCreated++
		}
	}
	log.Printf("Brands: %d created, %d total", brandCreated, len(catalog.Brands))

	equipmentCreated := 0
	for _, equipmentData := range catalog.Equipment {
		_, created, err := createEquipment(db, equipmentData, brandMap)
		if err != nil {
			log.Printf("Warning: failed to create equipment %s: %v", equipmentData.Code, err)
			continue
		}
		if created {
			equipmentCreated++
		}
	}
	log.Printf("Equipment: %d created, %d total", equipmentCreated, len(catalog.Equipment))

	operatorCreated := 0
	for _, operatorData := range catalog.Operators {
		_, created, err := createOperator(db, operatorData)
		if err != nil {
			log.Printf("Warning: failed to create operator %s: %v", operatorData.Cedula, err)
			continue
		}
		if created {
			operatorCreated++
		}
	}
	log.Printf("Operators: %d created, %d total", operatorCreated, len(catalog.Operators))

	return nil
}

func createBrand(db *gorm.DB, brandData BrandData) (*models.Brand, bool, error) {
	var brand models.Brand
	err := db.Where("name = ?", brandData.Name).First(&brand).Error
	if err == nil {
		return &brand, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query brand: %w", err)
	}

	brand = models.Brand{Name: brandData.Name}
	if err := db.Create(&brand).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create brand: %w", err)
	}
	return &brand, true, nil
}

func createEquipment(db *gorm.DB, equipmentData EquipmentData, brandMap map[string]*models.Brand) (*models.Equipment, bool, error) {
	brand := brandMap[equipmentData.BrandName]
	if brand == nil {
		return nil, false, fmt.Errorf("brand %s not found for equipment %s", equipmentData.BrandName, equipmentData.Code)
	}

	var equipment models.Equipment
	err := db.Where("code = ?", equipmentData.Code).First(&equipment).Error
	if err == nil {
		return &equipment, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query equipment: %w", err)
	}

	equipment = models.Equipment{
		Code:        equipmentData.Code,
		Name:        equipmentData.Name,
		Description: equipmentData.Description,
		PhotoURL:    optional(equipmentData.PhotoURL),
		BrandID:     brand.ID,
	}
	if err := db.Create(&equipment).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create equipment: %w", err)
	}
	return &equipment, true, nil
}

func createOperator(db *gorm.DB, operatorData OperatorData) (*models.Operator, bool, error) {
	var operator models.Operator
	err := db.Where("cedula = ?", operatorData.Cedula).First(&operator).Error
	if err == nil {
		return &operator, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query operator: %w", err)
	}

	operator = models.Operator{
		Cedula:    operatorData.Cedula,
		FirstName: operatorData.FirstName,
		LastName:  operatorData.LastName,
		Email:     operatorData.Email,
		Phone:     optional(operatorData.Phone),
		PhotoURL:  optional(operatorData.PhotoURL),
	}
	if err := db.Create(&operator).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create operator: %w", err)
	}
	return &operator, true, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
