package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"waste-report-server/models"
)

// Initialize opens the database from DB_URL and runs migrations
func Initialize(connString string) (*gorm.DB, error) {
	if connString == "" {
		return nil, fmt.Errorf("DB_URL is required. Set DB_URL to a Postgres URL or sqlite:<path>")
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := Open(connString, gormLogger)
	if err != nil {
		return nil, err
	}

	log.Println("✅ Successfully connected to database")

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Database migrations completed successfully")

	return db, nil
}

// Open connects to Postgres, or to SQLite when the URL starts with "sqlite:"
func Open(connString string, gormLogger logger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	sqliteMode := strings.HasPrefix(connString, "sqlite:")
	if sqliteMode {
		dialector = sqlite.Open(strings.TrimPrefix(connString, "sqlite:"))
	} else {
		dialector = postgres.Open(connString)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if sqliteMode {
		// SQLite allows a single writer; in-memory databases vanish with their last connection.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates database tables
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Worker{},
		&models.Panchayat{},
	); err != nil {
		return err
	}

	// Workers must exist before legacy complaint names can be resolved to ids.
	if err := migrateComplaintsTable(db); err != nil {
		return err
	}

	return nil
}

// complaintColumns are copied from a legacy complaints table when present
var complaintColumns = []string{
	"id", "title", "description", "location_text", "photo_url", "status",
	"deadline", "resolved_at", "after_photo_url", "overdue_notified_at",
	"created_at", "updated_at",
}

// Index names the complaints model declares; a renamed legacy table must not keep them.
var complaintIndexes = []string{
	"idx_complaints_status",
	"idx_complaints_assigned_worker_id",
	"idx_complaints_created_at",
}

const legacyComplaintsTable = "complaints_legacy"

// migrateComplaintsTable handles the complaints table migration manually.
// Older deployments referenced workers by display name in assigned_worker.
// Such a table is renamed, recreated from the model and its rows copied back,
// with each name resolved to the id of the only worker carrying it.
func migrateComplaintsTable(db *gorm.DB) error {
	if !db.Migrator().HasTable(&models.Complaint{}) ||
		!db.Migrator().HasColumn(&models.Complaint{}, "assigned_worker") {
		return db.AutoMigrate(&models.Complaint{})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		unknown, ambiguous, err := countUnresolvedLegacyNames(tx)
		if err != nil {
			return err
		}

		if err := tx.Migrator().RenameTable("complaints", legacyComplaintsTable); err != nil {
			return fmt.Errorf("rename legacy complaints table: %w", err)
		}
		for _, name := range complaintIndexes {
			if err := tx.Exec("DROP INDEX IF EXISTS " + name).Error; err != nil {
				return fmt.Errorf("drop legacy index %s: %w", name, err)
			}
		}
		if err := tx.AutoMigrate(&models.Complaint{}); err != nil {
			return err
		}

		copySQL, err := legacyCopySQL(tx)
		if err != nil {
			return err
		}
		result := tx.Exec(copySQL)
		if result.Error != nil {
			return fmt.Errorf("copy legacy complaints: %w", result.Error)
		}
		log.Printf("✅ Migrated %d complaints from assigned_worker names to ids", result.RowsAffected)
		if unknown > 0 {
			log.Printf("⚠️  %d complaints reference unknown worker names and are now unassigned", unknown)
		}
		if ambiguous > 0 {
			log.Printf("⚠️  %d complaints reference worker names shared by several workers and are now unassigned", ambiguous)
		}

		if err := tx.Migrator().DropTable(legacyComplaintsTable); err != nil {
			return fmt.Errorf("drop legacy complaints table: %w", err)
		}
		log.Println("✅ Successfully dropped old assigned_worker column")
		return nil
	})
}

func countUnresolvedLegacyNames(tx *gorm.DB) (unknown, ambiguous int64, err error) {
	const matches = "(SELECT COUNT(*) FROM workers w WHERE w.name = complaints.assigned_worker)"
	named := tx.Table("complaints").Where("assigned_worker IS NOT NULL AND assigned_worker <> ''")

	if err = named.Session(&gorm.Session{}).Where(matches + " = 0").Count(&unknown).Error; err != nil {
		return 0, 0, fmt.Errorf("count unknown worker names: %w", err)
	}
	if err = named.Session(&gorm.Session{}).Where(matches + " > 1").Count(&ambiguous).Error; err != nil {
		return 0, 0, fmt.Errorf("count ambiguous worker names: %w", err)
	}
	return unknown, ambiguous, nil
}

// legacyCopySQL builds the INSERT ... SELECT from the renamed legacy table,
// copying only the columns it actually has.
func legacyCopySQL(tx *gorm.DB) (string, error) {
	rows, err := tx.Table(legacyComplaintsTable).Limit(1).Rows()
	if err != nil {
		return "", fmt.Errorf("read legacy columns: %w", err)
	}
	columns, err := rows.Columns()
	rows.Close()
	if err != nil {
		return "", fmt.Errorf("read legacy columns: %w", err)
	}
	legacy := make(map[string]bool, len(columns))
	for _, col := range columns {
		legacy[strings.ToLower(col)] = true
	}

	var targets, sources []string
	for _, col := range complaintColumns {
		switch {
		case legacy[col]:
			targets = append(targets, col)
			sources = append(sources, "l."+col)
		case col == "location_text" && legacy["location"]:
			targets = append(targets, col)
			sources = append(sources, "l.location")
		}
	}

	workerID := `CASE WHEN (SELECT COUNT(*) FROM workers w WHERE w.name = l.assigned_worker) = 1
		THEN (SELECT w.id FROM workers w WHERE w.name = l.assigned_worker) END`
	if legacy["assigned_worker_id"] {
		workerID = "COALESCE(l.assigned_worker_id, " + workerID + ")"
	}
	targets = append(targets, "assigned_worker_id")
	sources = append(sources, workerID)

	return fmt.Sprintf("INSERT INTO complaints (%s) SELECT %s FROM %s l",
		strings.Join(targets, ", "), strings.Join(sources, ", "), legacyComplaintsTable), nil
}
