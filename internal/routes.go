package internal

import (
	"net/http"

	"focustimer/internal/controllers"
	"focustimer/internal/providers"
)

func InitRoutes(
	sessionController *controllers.SessionController,
	settingsController *controllers.SettingsController,
	statsController *controllers.StatsController,
	transferController *controllers.TransferController,
	timerController *controllers.TimerController,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/sessions", http.HandlerFunc(sessionController.List))
	routers.Post("/sessions", http.HandlerFunc(sessionController.Create))
	routers.Delete("/sessions", http.HandlerFunc(sessionController.Delete))
	routers.Delete("/data", http.HandlerFunc(sessionController.Clear))

	routers.Get("/settings", http.HandlerFunc(settingsController.Get))
	routers.Put("/settings", http.HandlerFunc(settingsController.Put))

	routers.Get("/stats/weekly", http.HandlerFunc(statsController.Weekly))
	routers.Get("/stats/daily", http.HandlerFunc(statsController.Daily))
	routers.Get("/stats/hourly", http.HandlerFunc(statsController.Hourly))
	routers.Get("/stats/heatmap", http.HandlerFunc(statsController.HeatMap))
	routers.Get("/stats/summary", http.HandlerFunc(statsController.Summary))

	routers.Get("/export/csv", http.HandlerFunc(transferController.ExportCSV))
	routers.Get("/export/json", http.HandlerFunc(transferController.ExportJSON))
	routers.Post("/import", http.HandlerFunc(transferController.Import))
	routers.Post("/demo", http.HandlerFunc(transferController.Demo))

	routers.Get("/timer", http.HandlerFunc(timerController.Get))
	routers.Post("/timer/start", http.HandlerFunc(timerController.Start))
	routers.Post("/timer/pause", http.HandlerFunc(timerController.Pause))
	routers.Post("/timer/stop", http.HandlerFunc(timerController.Stop))
	routers.Post("/timer/reset", http.HandlerFunc(timerController.Reset))
	routers.Post("/timer/fullscreen", http.HandlerFunc(timerController.Fullscreen))
	return routers
}
