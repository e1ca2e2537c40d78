package handler

import (
	"net/http"

	"surveyor/internal/delivery/api/response"
	deliverycontext "surveyor/internal/delivery/context"
	"surveyor/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SurveyHandlerParams holds dependencies for SurveyHandler, injected by Fx.
type SurveyHandlerParams struct {
	fx.In

	SurveyUC  usecase.SurveyUsecase
	AdminUC   usecase.AuthUsecase `name:"admin"`
	CompanyUC usecase.AuthUsecase `name:"company"`
}

// SurveyHandler serves the admin-gated survey and company directory endpoints.
type SurveyHandler struct {
	surveyUC  usecase.SurveyUsecase
	adminUC   usecase.AuthUsecase
	companyUC usecase.AuthUsecase
}

// NewSurveyHandler is the constructor for SurveyHandler
func NewSurveyHandler(params SurveyHandlerParams) *SurveyHandler {
	return &SurveyHandler{
		surveyUC:  params.SurveyUC,
		adminUC:   params.AdminUC,
		companyUC: params.CompanyUC,
	}
}

// GetAnswers handles GET answerFormUser?email=
func (h *SurveyHandler) GetAnswers(c echo.Context) error {
	var query EmailQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid email query")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	answers, err := h.surveyUC.GetAnswers(c.Request().Context(), deliverycontext.GetSessionToken(c), query.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAnswerPayloads(answers))
}

// PostAnswers handles POST answerFormUser
func (h *SurveyHandler) PostAnswers(c echo.Context) error {
	var req PostAnswersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid answers input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.surveyUC.PostAnswers(c.Request().Context(), deliverycontext.GetSessionToken(c), req.Email, toAnswers(req.Answers))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, MessageResponse{Success: true, Message: "Answers stored"})
}

// IsValidated handles GET validatedFormUser?email=
func (h *SurveyHandler) IsValidated(c echo.Context) error {
	var query EmailQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid email query")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	validated, err := h.surveyUC.IsValidated(c.Request().Context(), deliverycontext.GetSessionToken(c), query.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, validated)
}

// ListCompanies handles GET allcompanies. Only a verified admin may list companies.
func (h *SurveyHandler) ListCompanies(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.adminUC.Verify(ctx, deliverycontext.GetSessionToken(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	companies, err := h.companyUC.List(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*PrincipalResponse, 0, len(companies))
	for _, company := range companies {
		out = append(out, toPrincipalResponse(company))
	}

	return response.Success(c, http.StatusOK, out)
}
