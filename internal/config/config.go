package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default wage floors for the regulated categories, in Rand. Overridable
// through the environment but fixed for the lifetime of the process.
const (
	DefaultMinWageFullTime       = 5067.04 // per month
	DefaultMinWagePartTimeHourly = 28.79   // per hour
)

type Config struct {
	Port        string
	DatabaseDSN string
	Wages       WageFloors
}

// WageFloors holds the minimum pay a regulated category/arrangement pair
// must meet. Loaded once at startup and passed down by value.
type WageFloors struct {
	FullTimeMonthly float64
	PartTimeHourly  float64
}

// Load reads configuration from the environment, picking up a .env file
// when one is present.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=jobboard port=5432 sslmode=disable")
	v.SetDefault("MIN_WAGE_FULL_TIME", DefaultMinWageFullTime)
	v.SetDefault("MIN_WAGE_PART_TIME_HOURLY", DefaultMinWagePartTimeHourly)
	v.AutomaticEnv()

	cfg := Config{
		Port:        v.GetString("PORT"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		Wages: WageFloors{
			FullTimeMonthly: v.GetFloat64("MIN_WAGE_FULL_TIME"),
			PartTimeHourly:  v.GetFloat64("MIN_WAGE_PART_TIME_HOURLY"),
		},
	}
	return cfg
}
