package config

import "os"

type Config struct {
	ListenAddr string
	BackendURL string
	UPIID      string
	PayeeName  string
}

func Load() Config {
	return Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		BackendURL: getEnv("POS_BACKEND_URL", "http://localhost:5000"),
		UPIID:      getEnv("UPI_ID", "restaurant@paytm"),
		PayeeName:  getEnv("UPI_PAYEE_NAME", "Restaurant"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
