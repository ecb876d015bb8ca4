package cmd

import (
	"errors"
	"fmt"
	"strings"

	"fnbpos/internal/core/domain/model/fnb"
	"fnbpos/internal/core/domain/model/order"

	"github.com/lib/pq"
)

const (
	defaultHTTPPort              = "8080"
	defaultRevenueReportSchedule = "0 5 0 * * *"
	defaultOpenOrdersSchedule    = "*/30 * * * * *"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	DatabaseURL           string
	LogFile               string
	LogLevel              string
	RevenueReportSchedule string
	OpenOrdersSchedule    string
	FnBBusinessType       string
	FnBPaymentMode        string
	FnBTaxMode            string
}

// NewConfigFromEnv reads the configuration through getenv, usually os.Getenv
// after godotenv has loaded .env. Unset ports and schedules get defaults.
func NewConfigFromEnv(getenv func(string) string) Config {
	return Config{
		HTTPPort:              valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                getenv("DB_HOST"),
		DBPort:                getenv("DB_PORT"),
		DBUser:                getenv("DB_USER"),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                getenv("DB_NAME"),
		DBSslMode:             getenv("DB_SSLMODE"),
		DatabaseURL:           getenv("DATABASE_URL"),
		LogFile:               getenv("LOG_FILE"),
		LogLevel:              getenv("LOG_LEVEL"),
		RevenueReportSchedule: valueOr(getenv("REVENUE_REPORT_SCHEDULE"), defaultRevenueReportSchedule),
		OpenOrdersSchedule:    valueOr(getenv("OPEN_ORDERS_SCHEDULE"), defaultOpenOrdersSchedule),
		FnBBusinessType:       getenv("FNB_BUSINESS_TYPE"),
		FnBPaymentMode:        getenv("FNB_PAYMENT_MODE"),
		FnBTaxMode:            getenv("FNB_TAX_MODE"),
	}
}

// DSN returns the connection string for gorm's postgres driver. DATABASE_URL
// wins over the DB_* variables.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	if c.DBHost == "" || c.DBName == "" {
		return "", errors.New("database is not configured: set DATABASE_URL or DB_HOST and DB_NAME")
	}

	parts := []string{
		"host=" + c.DBHost,
		"dbname=" + c.DBName,
	}
	if c.DBPort != "" {
		parts = append(parts, "port="+c.DBPort)
	}
	if c.DBUser != "" {
		parts = append(parts, "user="+c.DBUser)
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+c.DBPassword)
	}
	parts = append(parts, "sslmode="+valueOr(c.DBSslMode, "disable"))
	return strings.Join(parts, " "), nil
}

// FnBConfig builds the restaurant configuration. Empty payment and tax modes
// fall back to pay-at-table and standard.
func (c Config) FnBConfig() (fnb.Config, error) {
	return fnb.NewConfig(c.FnBBusinessType, fnb.PaymentMode(c.FnBPaymentMode), order.TaxMode(c.FnBTaxMode))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
