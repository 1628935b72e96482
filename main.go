package main

import (
	"net/http"
	"os"

	"tiffin-pos-frontend/config"
	httpapi "tiffin-pos-frontend/internal/api/http"
	"tiffin-pos-frontend/internal/client"
	"tiffin-pos-frontend/internal/notify"
	"tiffin-pos-frontend/internal/service"
	"tiffin-pos-frontend/internal/view"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func main() {
	cfg := config.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "pos-frontend").Logger()

	httpClient := &http.Client{}
	backend := client.New(cfg.BackendURL, httpClient, log)
	prober := client.NewImageProber(httpClient)
	center := notify.NewCenter(0)
	qr := service.UPIQRGenerator{UPIID: cfg.UPIID, PayeeName: cfg.PayeeName}

	cartSvc := service.NewCartService(backend, center, qr, log)
	menuSvc := service.NewMenuFormService(backend, center, prober, log)
	salesSvc := service.NewSalesReportService(backend, center, log)

	handler := httpapi.NewHandler(cartSvc, menuSvc, salesSvc, view.NewRenderer(), view.NewChartRegistry(), center, log)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	log.Info().Str("addr", cfg.ListenAddr).Str("backend", cfg.BackendURL).Msg("POS front-end starting")
	if err := http.ListenAndServe(cfg.ListenAddr, c.Handler(r)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
