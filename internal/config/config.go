package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	ListenAddr     string
	DatabaseURL    string
	APIKey         string
	DefaultCountry string
	// HolidayCalendarFile optionally seeds the holiday table on start
	HolidayCalendarFile string
}

var instance *ServerConfig
var once sync.Once

func GetServerConfig() *ServerConfig {
	once.Do(func() {
		instance = &ServerConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Infof("no .env file loaded: %s", err.Error())
		}

		instance.ListenAddr = getEnv("LISTEN_ADDR", ":8080")

		instance.DatabaseURL = getEnv("DATABASE_URL", "")
		if instance.DatabaseURL == "" {
			logrus.Fatal("could not get db url")
		}

		instance.APIKey = getEnv("API_KEY", "")
		if instance.APIKey == "" {
			logrus.Fatal("could not get api key")
		}

		instance.DefaultCountry = getEnv("DEFAULT_COUNTRY", "ES")
		instance.HolidayCalendarFile = getEnv("HOLIDAY_CALENDAR", "")
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
