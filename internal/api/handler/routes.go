package handler

import (
	"net/http"

	"github.com/studdeo/admin-api/internal/api/handler/router"
	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/internal/usecases/authenticating"
	"github.com/studdeo/admin-api/internal/usecases/cataloging"
	"github.com/studdeo/admin-api/internal/usecases/provisioning"
	"github.com/studdeo/admin-api/internal/usecases/reporting"
	"github.com/studdeo/admin-api/pkg/middleware"
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
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
		{
			Path:    "/v1/me/change-password",
			Method:  http.MethodPost,
			Handler: ChangePassword(service),
		},
	}
}

func Sales(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/report",
			Method:      http.MethodGet,
			Handler:     GetSalesReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapViewSales)},
		},
	}
}

func Courses(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/courses",
			Method:      http.MethodGet,
			Handler:     GetCourses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapViewCourses)},
		},
		{
			Path:        "/v1/courses/:id",
			Method:      http.MethodGet,
			Handler:     GetCourseDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapViewCourses)},
		},
		{
			Path:        "/v1/admin/courses",
			Method:      http.MethodGet,
			Handler:     GetAdminCourses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapViewAllCourses)},
		},
	}
}

func Provisioning(service provisioning.Provisioner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/professors",
			Method:      http.MethodGet,
			Handler:     GetProfessors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapProvisionUsers)},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     ProvisionUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapProvisionUsers)},
		},
		{
			Path:        "/v1/contracts",
			Method:      http.MethodGet,
			Handler:     GetContracts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapProvisionUsers)},
		},
		{
			Path:        "/v1/contracts/:id/close",
			Method:      http.MethodPost,
			Handler:     CloseContract(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapProvisionUsers)},
		},
	}
}

func Administrators(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/administrators",
			Method:      http.MethodGet,
			Handler:     GetAdministrators(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/administrators",
			Method:      http.MethodPost,
			Handler:     CreateAdministrator(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/administrators/:id",
			Method:      http.MethodDelete,
			Handler:     DeactivateAdministrator(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/administrators/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapRunSync)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapability(domain.CapRunSync)},
		},
	}
}
