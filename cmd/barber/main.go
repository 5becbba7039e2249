package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Goofygiraffe06/barber/internal/apiclient"
	"github.com/Goofygiraffe06/barber/internal/app"
	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/config"
	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/metrics"
	"github.com/Goofygiraffe06/barber/internal/middleware"
	"github.com/Goofygiraffe06/barber/internal/ui"
	"github.com/Goofygiraffe06/barber/internal/web"
	"github.com/Goofygiraffe06/barber/store/ephemeral"
)

func main() {
	f, err := logging.InitLogger(config.LogFile())
	if err != nil {
		// No logger yet, so panic.
		panic("Failed to initialize logger: " + err.Error())
	}
	defer f.Close()
	defer logging.Sync()

	logging.InfoLog("Starting barber web")

	renderer, err := ui.NewRenderer()
	if err != nil {
		logging.FatalLog("Failed to load templates: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	toasts := ephemeral.NewToastStore(config.ToastTTL())
	defer toasts.Close()

	limiter := middleware.NewRateLimiter(
		middleware.SubmitRateLimiterConfig(config.SubmitRatePerMinute(), config.SubmitBurst()),
		collector.RecordRateLimited,
	)
	defer limiter.Stop()

	signer := auth.NewSessionSigner(config.SessionSecret(), config.SessionIssuer(), config.SessionTTL())
	client := apiclient.New(config.APIBaseURL(), config.APITimeout())
	logging.DebugLog("API backend at %s", config.APIBaseURL())

	srv := web.NewServer(renderer, client, signer, toasts,
		web.WithRecorder(collector),
		web.WithSecureCookies(config.CookieSecure()),
	)
	router, err := srv.Router(web.RouterConfig{
		MaxBodyBytes:   config.MaxRequestBodyBytes(),
		CSRF:           middleware.CSRFConfig{CookieSecure: config.CookieSecure()},
		SubmitLimiter:  limiter,
		StatusRecorder: collector,
		MetricsHandler: metrics.Handler(reg),
	})
	if err != nil {
		logging.FatalLog("Failed to build router: %v", err)
	}

	if err := app.Serve("barber web", app.NewServer(":"+config.Port(), router)); err != nil {
		logging.FatalLog("Server failed: %v", err)
	}
}
