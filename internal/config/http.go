package config

import "time"

type HTTP struct {
	BaseURL       string        `env:"BASE_URL,expand" envDefault:"/"`
	Address       string        `env:"ADDRESS,expand" envDefault:":3002"`
	ShutdownGrace time.Duration `env:"SHUTDOWN_GRACE" envDefault:"5s"`
}
