package repo

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type User struct {
	ID       int    `db:"id"`
	Login    string `db:"login"`
	Email    string `db:"email"`
	Password string `db:"password"`
}

type ServiceReport struct {
	ID          string `db:"id" json:"id"`
	Technician  string `db:"technician" json:"technician"`
	Site        string `db:"site" json:"site"`
	Refrigerant string `db:"refrigerant" json:"refrigerant"`
	Summary     string `db:"summary" json:"summary"`
	Readings    string `db:"readings" json:"readings"` // raw JSON blob from the UI
	CreatedUnix int64  `db:"created_unix" json:"created_unix"`
}

type CatalogItem struct {
	Category  string  `db:"category" json:"category"`
	Name      string  `db:"name" json:"name"`
	Unit      string  `db:"unit" json:"unit"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	InsertReport(ctx context.Context, r ServiceReport) error
	ListReports(ctx context.Context, technician string) ([]ServiceReport, error)
	DeleteReport(ctx context.Context, id string) error

	ReplaceCatalog(ctx context.Context, items []CatalogItem) error
	ListCatalog(ctx context.Context) ([]CatalogItem, error)
}

// Open connects to the configured database. DATABASE_URL selects Postgres for
// shop-server deployments; without it the repo uses a local SQLite file, the
// field default.
func Open() (*sqlx.DB, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		db, err := sqlx.Connect("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		return db, nil
	}

	path := os.Getenv("AIRSIDE_DB")
	if path == "" {
		path = "./airside.db"
	}
	db, err := sqlx.Connect("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

type SQLRepository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Migrate() error {
	idCol := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.db.DriverName() == "postgres" {
		idCol = "SERIAL PRIMARY KEY"
	}
	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS users (
		id %s,
		login TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS service_reports (
		id TEXT PRIMARY KEY,
		technician TEXT NOT NULL,
		site TEXT NOT NULL,
		refrigerant TEXT NOT NULL,
		summary TEXT NOT NULL,
		readings TEXT NOT NULL,
		created_unix BIGINT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS catalog_items (
		category TEXT NOT NULL,
		name TEXT NOT NULL,
		unit TEXT NOT NULL,
		unit_price REAL NOT NULL,
		PRIMARY KEY (category, name)
	);
	`, idCol)
	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (r *SQLRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := r.db.Rebind("INSERT INTO users (login, email, password) VALUES (?, ?, ?) RETURNING id")
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *SQLRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var u User
	query := r.db.Rebind("SELECT id, login, email, password FROM users WHERE login = ?")
	err := r.db.GetContext(ctx, &u, query, login)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return u.ID, u.Password, nil
}

func (r *SQLRepository) InsertReport(ctx context.Context, rep ServiceReport) error {
	query := r.db.Rebind(`INSERT INTO service_reports
		(id, technician, site, refrigerant, summary, readings, created_unix)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query,
		rep.ID, rep.Technician, rep.Site, rep.Refrigerant, rep.Summary, rep.Readings, rep.CreatedUnix)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *SQLRepository) ListReports(ctx context.Context, technician string) ([]ServiceReport, error) {
	var out []ServiceReport
	var err error
	if technician != "" {
		query := r.db.Rebind("SELECT * FROM service_reports WHERE technician = ? ORDER BY created_unix DESC")
		err = r.db.SelectContext(ctx, &out, query, technician)
	} else {
		err = r.db.SelectContext(ctx, &out, "SELECT * FROM service_reports ORDER BY created_unix DESC")
	}
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) DeleteReport(ctx context.Context, id string) error {
	query := r.db.Rebind("DELETE FROM service_reports WHERE id = ?")
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQLRepository) ReplaceCatalog(ctx context.Context, items []CatalogItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM catalog_items"); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}
	query := tx.Rebind("INSERT INTO catalog_items (category, name, unit, unit_price) VALUES (?, ?, ?, ?)")
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, query, it.Category, it.Name, it.Unit, it.UnitPrice); err != nil {
			return fmt.Errorf("insert catalog item: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLRepository) ListCatalog(ctx context.Context) ([]CatalogItem, error) {
	var out []CatalogItem
	err := r.db.SelectContext(ctx, &out, "SELECT * FROM catalog_items ORDER BY category, name")
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return out, nil
}
