package main

import (
	stdLog "log"
	"time"

	"github.com/savorhq/restaurant-service/app"
	"github.com/savorhq/restaurant-service/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env loaded: ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(&cfg); err != nil {
		stdLog.Fatal(err)
	}
}
