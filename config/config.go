package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/savorhq/restaurant-service/pkg/kafka"
	"github.com/savorhq/restaurant-service/pkg/logger"
	"github.com/savorhq/restaurant-service/pkg/postgres"

	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// Booking holds the published reservation constraints: bookable time slots are
// half-hour marks between Opening and Closing, inclusive.
type Booking struct {
	Opening      string `yaml:"opening" envconfig:"BOOKING_OPENING" default:"17:00"`
	Closing      string `yaml:"closing" envconfig:"BOOKING_CLOSING" default:"22:00"`
	MinPartySize int    `yaml:"minPartySize" envconfig:"BOOKING_MIN_PARTY" default:"1"`
	MaxPartySize int    `yaml:"maxPartySize" envconfig:"BOOKING_MAX_PARTY" default:"20"`
}

const slotLayout = "15:04"

func (b Booking) TimeSlots() []string {
	opening, err := time.Parse(slotLayout, b.Opening)
	if err != nil {
		return nil
	}
	closing, err := time.Parse(slotLayout, b.Closing)
	if err != nil || closing.Before(opening) {
		return nil
	}
	var slots []string
	for t := opening; !t.After(closing); t = t.Add(30 * time.Minute) {
		slots = append(slots, t.Format(slotLayout))
	}
	return slots
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database postgres.Config
	Kafka    kafka.Config
	Booking  Booking
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
