package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/measuring"
	"github.com/vfg2006/campaign-optimizer-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

var (
	readers = middlewares{middleware.AllRoles()}
	writers = middlewares{middleware.AdminOrSupervisor()}
	admins  = middlewares{middleware.AdminOnly()}
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Products(service experimenting.ExperimentStore) []router.Route {
	return []router.Route{
		{Path: "/v1/products", Method: http.MethodPost, Handler: CreateProduct(service), Middlewares: writers},
		{Path: "/v1/products", Method: http.MethodGet, Handler: ListProducts(service), Middlewares: readers},
		{Path: "/v1/products/:id", Method: http.MethodGet, Handler: GetProduct(service), Middlewares: readers},
	}
}

func Experiments(service experimenting.ExperimentStore, optimizer Optimizer) []router.Route {
	return []router.Route{
		{Path: "/v1/experiments", Method: http.MethodPost, Handler: CreateExperiment(service), Middlewares: writers},
		{Path: "/v1/experiments", Method: http.MethodGet, Handler: ListExperiments(service), Middlewares: readers},
		{Path: "/v1/experiments/:id", Method: http.MethodGet, Handler: GetExperiment(service), Middlewares: readers},
		{Path: "/v1/experiments/:id", Method: http.MethodPut, Handler: UpdateExperiment(service), Middlewares: writers},
		{Path: "/v1/experiments/:id/optimization", Method: http.MethodPut, Handler: UpdateOptimizationConfig(service), Middlewares: writers},
		{Path: "/v1/experiments/:id/pause", Method: http.MethodPost, Handler: PauseExperiment(service), Middlewares: writers},
		{Path: "/v1/experiments/:id/resume", Method: http.MethodPost, Handler: ResumeExperiment(service), Middlewares: writers},
		{Path: "/v1/experiments/:id/variants", Method: http.MethodPost, Handler: CreateVariant(service), Middlewares: writers},
		{Path: "/v1/experiments/:id/variants", Method: http.MethodGet, Handler: ListVariants(service), Middlewares: readers},
		{Path: "/v1/experiments/:id/optimize", Method: http.MethodPost, Handler: OptimizeExperiment(optimizer), Middlewares: writers},
	}
}

func Variants(service experimenting.ExperimentStore, metrics measuring.MetricsStore) []router.Route {
	return []router.Route{
		{Path: "/v1/variants/:id", Method: http.MethodGet, Handler: GetVariant(service), Middlewares: readers},
		{Path: "/v1/variants/:id", Method: http.MethodDelete, Handler: DeleteVariant(service), Middlewares: writers},
		{Path: "/v1/variants/:id/pause", Method: http.MethodPost, Handler: PauseVariant(service), Middlewares: writers},
		{Path: "/v1/variants/:id/activate", Method: http.MethodPost, Handler: ActivateVariant(service), Middlewares: writers},
		{Path: "/v1/variants/:id/metrics", Method: http.MethodPost, Handler: RecordSnapshot(metrics), Middlewares: writers},
		{Path: "/v1/variants/:id/metrics", Method: http.MethodGet, Handler: MetricsHistory(metrics), Middlewares: readers},
		{Path: "/v1/variants/:id/metrics/latest", Method: http.MethodGet, Handler: LatestMetrics(metrics), Middlewares: readers},
		{Path: "/v1/variants/:id/metrics/trend", Method: http.MethodGet, Handler: MetricsTrend(metrics), Middlewares: readers},
	}
}

func Metrics(metrics measuring.MetricsStore) []router.Route {
	return []router.Route{
		{Path: "/v1/metrics/aggregate", Method: http.MethodPost, Handler: AggregateMetrics(metrics), Middlewares: readers},
	}
}

func Optimization(optimizer Optimizer) []router.Route {
	return []router.Route{
		{Path: "/v1/optimization/run", Method: http.MethodPost, Handler: RunOptimization(optimizer), Middlewares: admins},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{Path: "/v1/cron/:type/run", Method: http.MethodPost, Handler: RunCronJob(services), Middlewares: admins},
		{Path: "/v1/cron/status", Method: http.MethodGet, Handler: GetCronStatus(services), Middlewares: writers},
	}
}
