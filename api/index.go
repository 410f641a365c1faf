package handler

import (
	"net/http"

	"lodge/config"
	"lodge/di"
	"lodge/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	srv := di.InitializeService()
	srv.Handler().ServeHTTP(w, r)
}
