package handler

import (
	"net/http"

	"github.com/orcafacil/orcafacil-api/infrastructure/repository"
	"github.com/orcafacil/orcafacil-api/internal/api/handler/router"
	"github.com/orcafacil/orcafacil-api/internal/usecases/authenticating"
	"github.com/orcafacil/orcafacil-api/internal/usecases/dashboarding"
	"github.com/orcafacil/orcafacil-api/internal/usecases/quoting"
	"github.com/orcafacil/orcafacil-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboarding.Overviewer, snapshotRepo repository.OverviewSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/overview",
			Method:      http.MethodGet,
			Handler:     GetDashboardOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/history",
			Method:      http.MethodGet,
			Handler:     GetDashboardHistory(snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Companies(repo repository.CompanyRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/plan",
			Method:      http.MethodPatch,
			Handler:     UpdateCompanyPlan(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Users(repo repository.UserRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Quotes(service quoting.Quoter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/quotes",
			Method:      http.MethodPost,
			Handler:     CreateQuote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/quotes",
			Method:      http.MethodGet,
			Handler:     ListQuotes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/quotes/:id",
			Method:      http.MethodGet,
			Handler:     GetQuote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/quotes/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateQuoteStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/quotes/:id/pdf",
			Method:      http.MethodGet,
			Handler:     GetQuotePDF(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), middleware.PremiumOnly()},
		},
	}
}

func Clients(repo repository.ClientRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Services(repo repository.ServiceRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/services",
			Method:      http.MethodPost,
			Handler:     CreateService(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/services",
			Method:      http.MethodGet,
			Handler:     ListServices(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
