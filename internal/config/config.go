package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration read from the environment.
// .env files are loaded beforehand by godotenv/autoload in cmd/.
type Config struct {
	Port int

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	Tables Tables

	LocalStoragePath string
	// DraftIdleTimeout unloads draft sessions nobody touched for that long.
	DraftIdleTimeout time.Duration
	KafkaBrokers     []string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	ReportTaxRate float64

	LogLevel  string
	LogFormat string
}

// Tables holds the DynamoDB table names.
type Tables struct {
	Services             string
	Clinics              string
	Dentists             string
	Technicians          string
	WorkOrders           string
	WorkOrderServices    string
	SubscriptionPayments string
}

func Load() Config {
	return Config{
		Port: getenvInt("PORT", 8080),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		Tables: Tables{
			Services:             getenvDefault("SERVICES_TABLE", "services"),
			Clinics:              getenvDefault("CLINICS_TABLE", "clinics"),
			Dentists:             getenvDefault("DENTISTS_TABLE", "dentists"),
			Technicians:          getenvDefault("TECHNICIANS_TABLE", "technicians"),
			WorkOrders:           getenvDefault("WORK_ORDERS_TABLE", "work_orders"),
			WorkOrderServices:    getenvDefault("WORK_ORDER_SERVICES_TABLE", "work_order_services"),
			SubscriptionPayments: getenvDefault("SUBSCRIPTION_PAYMENTS_TABLE", "subscription_payments"),
		},

		LocalStoragePath: getenvDefault("LOCAL_STORAGE_PATH", "data/local_storage.db"),
		DraftIdleTimeout: time.Duration(getenvInt("DRAFT_IDLE_TIMEOUT_MINUTES", 30)) * time.Minute,
		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     IsTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || IsTruthy(os.Getenv("MERCADOPAGO_MOCK")),

		ReportTaxRate: getenvFloat("REPORT_TAX_RATE", 0.19),

		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),
	}
}

// IsTruthy accepts the usual spellings of an enabled flag.
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return def
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
