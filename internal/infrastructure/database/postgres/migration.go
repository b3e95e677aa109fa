// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-backend/internal/domain/admin"
	"github.com/your-org/restaurant-backend/internal/domain/catalog"
	"github.com/your-org/restaurant-backend/internal/domain/customer"
	"github.com/your-org/restaurant-backend/internal/domain/order"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	logrus.Info("Running database auto-migrations")

	// Models in dependency order
	models := []interface{}{
		// Back-office users
		&admin.User{},

		// Catalog
		&catalog.Category{},
		&catalog.Product{},
		&catalog.OptionGroup{},
		&catalog.Option{},

		// Customers
		&customer.Customer{},
		&customer.Address{},

		// Orders
		&order.Order{},
		&order.OrderItem{},
		&order.StatusEvent{},
		&order.Counter{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	// The display code counter row must exist before the first checkout.
	if err := m.ensureOrderCounter(); err != nil {
		return fmt.Errorf("failed to ensure order counter: %w", err)
	}

	logrus.Info("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		// Catalog indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_active_sort ON categories(is_active, sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_popular ON products(is_popular, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_option_groups_product ON option_groups(product_id, sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_options_group_active ON options(group_id, is_active)",

		// Customer indexes
		"CREATE INDEX IF NOT EXISTS idx_customers_phone ON customers(phone)",
		"CREATE INDEX IF NOT EXISTS idx_addresses_customer_default ON addresses(customer_id, is_default)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_customer_created ON orders(customer_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_display_code ON orders(display_code)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_status_events_order ON order_status_events(order_id, created_at)",
	}

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			logrus.WithError(err).Warn("Failed to create index")
		}
	}

	return nil
}

// ensureOrderCounter inserts the singleton counter row when missing
func (m *Migration) ensureOrderCounter() error {
	var count int64
	if err := m.db.Model(&order.Counter{}).Where("id = 1").Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return m.db.Create(&order.Counter{ID: 1, Value: 0}).Error
	}
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData(bcryptCost int) error {
	logrus.Info("Seeding initial data")

	if err := m.seedAdminUser(bcryptCost); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedMenu(); err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	logrus.Info("Initial data seeded")
	return nil
}

func (m *Migration) seedAdminUser(bcryptCost int) error {
	var existing admin.User
	result := m.db.Where("email = ?", "admin@example.com").First(&existing)
	if result.Error == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	adminUser := admin.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hashedPassword),
		IsActive: true,
	}

	if err := m.db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logrus.Info("Created admin user: admin@example.com")
	return nil
}

// seedMenu creates a starter menu for development environments
func (m *Migration) seedMenu() error {
	var categoryCount int64
	m.db.Model(&catalog.Category{}).Count(&categoryCount)
	if categoryCount > 0 {
		return nil
	}

	burgers := catalog.Category{Name: "Burgers", Slug: "burgers", Icon: "🍔", SortOrder: 1, IsActive: true}
	drinks := catalog.Category{Name: "Bebidas", Slug: "bebidas", Icon: "🥤", SortOrder: 2, IsActive: true}

	for _, c := range []*catalog.Category{&burgers, &drinks} {
		if err := m.db.Create(c).Error; err != nil {
			return err
		}
	}

	smash := catalog.Product{
		CategoryID:      burgers.ID,
		Name:            "Smash Duplo",
		Description:     "Dois smash burgers de 90g, queijo e molho da casa no pão brioche",
		Price:           3290,
		IsActive:        true,
		IsPopular:       true,
		PreparationTime: 25,
		SortOrder:       1,
		OptionGroups: []catalog.OptionGroup{
			{
				Name:          "Ponto da carne",
				IsRequired:    true,
				MinSelections: 1,
				MaxSelections: 1,
				SortOrder:     1,
				Options: []catalog.Option{
					{Name: "Ao ponto", IsActive: true, SortOrder: 1},
					{Name: "Bem passado", IsActive: true, SortOrder: 2},
				},
			},
			{
				Name:          "Adicionais",
				IsRequired:    false,
				MinSelections: 0,
				MaxSelections: 3,
				SortOrder:     2,
				Options: []catalog.Option{
					{Name: "Cheddar extra", ExtraPrice: 500, IsActive: true, SortOrder: 1},
					{Name: "Bacon", ExtraPrice: 400, IsActive: true, SortOrder: 2},
					{Name: "Ovo", ExtraPrice: 300, IsActive: true, SortOrder: 3},
				},
			},
		},
	}

	coke := catalog.Product{
		CategoryID:  drinks.ID,
		Name:        "Refrigerante Lata",
		Description: "Lata 350ml gelada",
		Price:       700,
		IsActive:    true,
		SortOrder:   1,
	}

	for _, p := range []*catalog.Product{&smash, &coke} {
		if err := m.db.Create(p).Error; err != nil {
			return err
		}
	}

	logrus.Info("Seeded starter menu")
	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	logrus.Warn("Dropping all database tables")

	// Reverse dependency order
	tables := []string{
		"order_status_events",
		"order_items",
		"orders",
		"order_counters",
		"addresses",
		"customers",
		"options",
		"option_groups",
		"products",
		"categories",
		"admin_users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to drop table %s", table)
		}
	}

	return nil
}
