// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"surveyor/internal/delivery/api/middleware"
	"surveyor/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminAuthHandler   *handler.AuthHandler `name:"admin"`
	CompanyAuthHandler *handler.AuthHandler `name:"company"`
	SurveyHandler      *handler.SurveyHandler
	SessionMiddleware  *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	adminAuthHandler   *handler.AuthHandler
	companyAuthHandler *handler.AuthHandler
	surveyHandler      *handler.SurveyHandler
	sessionMiddleware  *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminAuthHandler:   params.AdminAuthHandler,
		companyAuthHandler: params.CompanyAuthHandler,
		surveyHandler:      params.SurveyHandler,
		sessionMiddleware:  params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	requireToken := r.sessionMiddleware.RequireToken

	adminGroup := e.Group("/authAdmin")
	{
		adminGroup.POST("/register-admin", r.adminAuthHandler.Register)
		adminGroup.POST("/login-admin", r.adminAuthHandler.Login)
		adminGroup.GET("/verify-admin", r.adminAuthHandler.Verify, requireToken)
		adminGroup.GET("/verify-admin-bool", r.adminAuthHandler.VerifyBoolean)
		adminGroup.POST("/verify-password-updated", r.adminAuthHandler.VerifyPasswordUpdated)
		adminGroup.PATCH("/update-password", r.adminAuthHandler.UpdatePassword, requireToken)

		adminGroup.GET("/answerFormUser", r.surveyHandler.GetAnswers, requireToken)
		adminGroup.POST("/answerFormUser", r.surveyHandler.PostAnswers, requireToken)
		adminGroup.GET("/validatedFormUser", r.surveyHandler.IsValidated, requireToken)
		adminGroup.GET("/allcompanies", r.surveyHandler.ListCompanies, requireToken)
	}

	companyGroup := e.Group("/authCompany")
	{
		companyGroup.POST("/register-company", r.companyAuthHandler.Register)
		companyGroup.POST("/login-company", r.companyAuthHandler.Login)
		companyGroup.GET("/verify-company", r.companyAuthHandler.Verify, requireToken)
		companyGroup.GET("/verify-company-bool", r.companyAuthHandler.VerifyBoolean)
		companyGroup.POST("/verify-password-updated", r.companyAuthHandler.VerifyPasswordUpdated)
		companyGroup.PATCH("/update-password", r.companyAuthHandler.UpdatePassword, requireToken)
	}
}
