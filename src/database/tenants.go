package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"backoffice/src/config"
	"backoffice/src/metrics"
	"backoffice/src/models"
	"backoffice/src/procedures"
	"backoffice/src/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// ErrCustomerInactive is returned for customers that exist but may not log in.
var ErrCustomerInactive = errors.New("customer is not active")

// CustomerDirectory resolves a customer code to its connection details.
type CustomerDirectory interface {
	FindByCode(ctx context.Context, code string) (*models.Customer, error)
}

// Opener opens the database of one customer.
type Opener func(ctx context.Context, customer *models.Customer) (*sqlx.DB, error)

// SecretResolver turns a configured password into the real one.
type SecretResolver interface {
	Resolve(value string) (string, error)
}

type tenant struct {
	db       *sqlx.DB
	lastUsed time.Time
}

// TenantRegistry keeps one connection pool per customer database. Pools are
// opened on first use and closed again by CloseIdle once unused for the
// configured idle timeout.
type TenantRegistry struct {
	directory   CustomerDirectory
	open        Opener
	idleTimeout time.Duration

	mutex   sync.Mutex
	tenants map[string]*tenant
	now     func() time.Time
}

func NewTenantRegistry(directory CustomerDirectory, open Opener, idleTimeout time.Duration) *TenantRegistry {
	return &TenantRegistry{
		directory:   directory,
		open:        open,
		idleTimeout: idleTimeout,
		tenants:     make(map[string]*tenant),
		now:         time.Now,
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DB returns the pool of the given customer, opening it when needed.
func (r *TenantRegistry) DB(ctx context.Context, code string) (*sqlx.DB, error) {
	code = normalizeCode(code)
	if db, ok := r.touch(code); ok {
		return db, nil
	}

	customer, err := r.directory.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !customer.Active {
		return nil, ErrCustomerInactive
	}
	db, err := r.open(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("open database of customer %s: %w", code, err)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	// another request may have opened the same customer meanwhile
	if existing, ok := r.tenants[code]; ok {
		existing.lastUsed = r.now()
		db.Close()
		return existing.db, nil
	}
	r.tenants[code] = &tenant{db: db, lastUsed: r.now()}
	metrics.SetTenantPools(len(r.tenants))
	utils.LoggerFromContext(ctx).WithField("customer", code).Info("opened customer database")
	return db, nil
}

// Caller returns a procedure caller bound to the customer database.
func (r *TenantRegistry) Caller(ctx context.Context, code string) (procedures.Caller, error) {
	db, err := r.DB(ctx, code)
	if err != nil {
		return nil, err
	}
	return procedures.NewCaller(db, normalizeCode(code)), nil
}

func (r *TenantRegistry) touch(code string) (*sqlx.DB, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, ok := r.tenants[code]
	if !ok {
		return nil, false
	}
	t.lastUsed = r.now()
	return t.db, true
}

// Open returns the number of open customer pools.
func (r *TenantRegistry) Open() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.tenants)
}

// Close closes the pool of one customer, if open.
func (r *TenantRegistry) Close(code string) error {
	code = normalizeCode(code)
	r.mutex.Lock()
	t, ok := r.tenants[code]
	delete(r.tenants, code)
	metrics.SetTenantPools(len(r.tenants))
	r.mutex.Unlock()

	if !ok {
		return nil
	}
	return t.db.Close()
}

// CloseIdle closes every pool unused since now minus the idle timeout and
// returns the customer codes it closed.
func (r *TenantRegistry) CloseIdle(now time.Time) []string {
	r.mutex.Lock()
	var idle []*tenant
	var codes []string
	for code, t := range r.tenants {
		if now.Sub(t.lastUsed) >= r.idleTimeout {
			idle = append(idle, t)
			codes = append(codes, code)
			delete(r.tenants, code)
		}
	}
	metrics.SetTenantPools(len(r.tenants))
	r.mutex.Unlock()

	for i, t := range idle {
		if err := t.db.Close(); err != nil {
			logrus.WithField("customer", codes[i]).WithError(err).Warn("closing idle customer database")
		}
	}
	return codes
}

// CloseAll closes every pool. Used on shutdown.
func (r *TenantRegistry) CloseAll() error {
	r.mutex.Lock()
	tenants := r.tenants
	r.tenants = make(map[string]*tenant)
	metrics.SetTenantPools(0)
	r.mutex.Unlock()

	var errs []error
	for _, t := range tenants {
		if err := t.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewTenantOpener opens customer databases with the pgx driver. Passwords
// written as "secret:<id>" are fetched through secrets.
func NewTenantOpener(cfg config.TenantConfig, secrets SecretResolver) Opener {
	return func(ctx context.Context, customer *models.Customer) (*sqlx.DB, error) {
		password, err := secrets.Resolve(customer.DBPassword)
		if err != nil {
			return nil, err
		}

		connConfig, err := TenantConnConfig(cfg, customer, password)
		if err != nil {
			return nil, err
		}

		db := sqlx.NewDb(stdlib.OpenDB(*connConfig), "pgx")
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}
}

// TenantConnConfig builds the pgx settings of a customer database. Only the
// host, port and sslmode go through the URL; user and database are set on
// the parsed config so names holding URL delimiters stay intact.
func TenantConnConfig(cfg config.TenantConfig, customer *models.Customer, password string) (*pgx.ConnConfig, error) {
	dsn := fmt.Sprintf("postgres://%s/?sslmode=%s",
		net.JoinHostPort(customer.DBHost, strconv.Itoa(customer.DBPort)),
		url.QueryEscape(cfg.SSLMode))
	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("connection settings of customer %s: %w", customer.Code, err)
	}
	connConfig.User = customer.DBUser
	connConfig.Database = customer.DBName
	connConfig.Password = password
	return connConfig, nil
}

// CachedDirectory memoizes customer lookups for ttl. Failed lookups are not
// cached.
type CachedDirectory struct {
	directory CustomerDirectory
	cache     *utils.Cache[string, *models.Customer]
	ttl       time.Duration
}

func NewCachedDirectory(directory CustomerDirectory, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		directory: directory,
		cache:     utils.NewCache[string, *models.Customer](),
		ttl:       ttl,
	}
}

func (d *CachedDirectory) FindByCode(ctx context.Context, code string) (*models.Customer, error) {
	code = normalizeCode(code)
	if customer, ok := d.cache.Get(code); ok {
		return customer, nil
	}
	customer, err := d.directory.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	d.cache.Set(code, customer, d.ttl)
	return customer, nil
}

// Purge drops expired customer entries.
func (d *CachedDirectory) Purge() int {
	return d.cache.Purge()
}
