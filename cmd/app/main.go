package main

import (
	"lodge/config"
	"lodge/di"
	"lodge/shared/logger"
	"lodge/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Configure(cfg)

	http := di.InitializeService()
	http.Serve()
}
