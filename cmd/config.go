package cmd

import "time"

// Config holds everything the service reads from the environment.
type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	Timezone    *time.Location
	DeliveryFee int
}
