package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-leaderboard-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-leaderboard-api/internal/usecases/leaderboarding"
	"github.com/vfg2006/revenue-leaderboard-api/internal/usecases/registering"
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

func Leaderboard(service leaderboarding.LeaderboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leaderboard",
			Method:  http.MethodGet,
			Handler: GetLeaderboard(service),
		},
		{
			Path:    "/v1/startups/:slug",
			Method:  http.MethodGet,
			Handler: GetStartupBySlug(service),
		},
	}
}

func Startups(service registering.RegisteringService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/startups",
			Method:  http.MethodPost,
			Handler: RegisterStartup(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
