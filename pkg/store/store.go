// Package store persists users and their linked financial records in
// Postgres through GORM. It is the single source of truth and the only
// synchronization point between requests.
package store

import (
	"context"
	"fmt"
	"log"

	"finboard/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store wraps a gorm connection. Construct it explicitly and pass it into
// the services that need it; there is no package-level handle.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres using the given DSN.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing connection, mainly for tests and tooling.
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate migrates models individually so a failure on one doesn't
// block the others. Permission errors are logged and ignored.
func (s *Store) AutoMigrate() {
	for _, m := range []interface{}{
		&models.User{},
		&models.Pot{},
		&models.Budget{},
		&models.Bill{},
		&models.Transaction{},
	} {
		if err := s.db.AutoMigrate(m); err != nil {
			log.Printf("migration warning (%T): %v", m, err)
		}
	}
}

// SeedAdmin ensures the reserved admin account exists. The admin never shows
// up in counterparty pools and owns no seeded records.
func (s *Store) SeedAdmin(email, password string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("name = ?", "admin").Count(&count).Error; err != nil {
		return fmt.Errorf("count admin: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{Name: "admin", Email: email, PasswordHash: hash}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Println("seeded admin user id:", admin.ID)
	return nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user. Email uniqueness is enforced by the unique
// index; duplicates surface as the driver's constraint error.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// CounterpartyPool returns up to limit users excluding the given id and
// name, ordered by id ascending so behavior stays reproducible.
func (s *Store) CounterpartyPool(ctx context.Context, excludeID uint, excludeName string, limit int) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("id <> ? AND name <> ?", excludeID, excludeName).
		Order("id asc").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list counterparties: %w", err)
	}
	return users, nil
}

func (s *Store) CreatePots(ctx context.Context, pots []models.Pot) error {
	if len(pots) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&pots).Error
}

func (s *Store) CreateBudgets(ctx context.Context, budgets []models.Budget) error {
	if len(budgets) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&budgets).Error
}

func (s *Store) CreateBills(ctx context.Context, bills []models.Bill) error {
	if len(bills) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&bills).Error
}

func (s *Store) CreateTransactions(ctx context.Context, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&txs).Error
}
