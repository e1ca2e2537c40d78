package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"surveyor/config"
	"surveyor/internal/delivery/api/middleware"
	"surveyor/internal/delivery/api/response"
	"surveyor/internal/delivery/api/router"
	"surveyor/internal/delivery/api/router/handler"
	deliverycontext "surveyor/internal/delivery/context"
	"surveyor/internal/domain/entity"
	domainerrors "surveyor/internal/domain/errors"
	"surveyor/internal/domain/service"
	mockUsecase "surveyor/internal/mocks/usecase"
	"surveyor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo      *echo.Echo
	adminUC   *mockUsecase.MockAuthUsecase
	companyUC *mockUsecase.MockAuthUsecase
	surveyUC  *mockUsecase.MockSurveyUsecase
}

func createTestAPI(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixture{
		adminUC:   mockUsecase.NewMockAuthUsecase(t),
		companyUC: mockUsecase.NewMockAuthUsecase(t),
		surveyUC:  mockUsecase.NewMockSurveyUsecase(t),
	}
	f.adminUC.EXPECT().Variant().Return(entity.VariantAdmin).Maybe()
	f.companyUC.EXPECT().Variant().Return(entity.VariantCompany).Maybe()

	f.echo = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AdminAuthHandler:   handler.NewAuthHandler(f.adminUC, logger),
		CompanyAuthHandler: handler.NewAuthHandler(f.companyUC, logger),
		SurveyHandler: handler.NewSurveyHandler(handler.SurveyHandlerParams{
			SurveyUC:  f.surveyUC,
			AdminUC:   f.adminUC,
			CompanyUC: f.companyUC,
		}),
		SessionMiddleware: middleware.NewSessionMiddleware(),
	}).RegisterRoutes(f.echo)

	return f
}

func (f *apiFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorResponse {
	t.Helper()

	var env response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)

	return &env
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_RequestIDIsPropagated(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/authAdmin/verify-admin", "", map[string]string{
		deliverycontext.HeaderXRequestID: "client-id-1",
	})
	assert.Equal(t, "client-id-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-id-1", decodeError(t, rec).Meta.RequestID)
}

func TestAPI_ProtectedRoutesRequireToken(t *testing.T) {
	fx := createTestAPI(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/authAdmin/verify-admin"},
		{http.MethodPatch, "/authAdmin/update-password"},
		{http.MethodGet, "/authAdmin/answerFormUser?email=a@co.com"},
		{http.MethodPost, "/authAdmin/answerFormUser"},
		{http.MethodGet, "/authAdmin/validatedFormUser?email=a@co.com"},
		{http.MethodGet, "/authAdmin/allcompanies"},
		{http.MethodGet, "/authCompany/verify-company"},
		{http.MethodPatch, "/authCompany/update-password"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := fx.do(route.method, route.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Error.Code)
		})
	}
}

func TestAPI_VerifyRoutesDispatchByVariant(t *testing.T) {
	fx := createTestAPI(t)

	fx.adminUC.EXPECT().Verify(mock.Anything, "admin-token").Return(&usecase.VerifyOutput{
		Principal: &usecase.PrincipalView{Email: "alice@co.com", Variant: entity.VariantAdmin},
		Claims:    &service.Claims{Email: "alice@co.com", Variant: entity.VariantAdmin},
	}, nil).Once()
	fx.companyUC.EXPECT().Verify(mock.Anything, "admin-token").
		Return(nil, errors.Wrap(domainerrors.ErrUnauthorized, "verify failed")).Once()

	rec := fx.do(http.MethodGet, "/authAdmin/verify-admin", "", map[string]string{"Authorization": "Bearer admin-token"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodGet, "/authCompany/verify-company", "", map[string]string{"Authorization": "admin-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_VerifyBoolNeverFails(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/authCompany/verify-company-bool", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":false`)
}

func TestAPI_RegisterCompany(t *testing.T) {
	fx := createTestAPI(t)

	fx.companyUC.EXPECT().Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.AuthOutput{
			Principal: &usecase.PrincipalView{Email: "acme@co.com", Variant: entity.VariantCompany},
			Token:     "T1",
		}, nil).Once()

	rec := fx.do(http.MethodPost, "/authCompany/register-company", `{"email":"acme@co.com","password":"secret1"}`, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_BodyLimit(t *testing.T) {
	fx := createTestAPI(t)

	body := `{"email":"acme@co.com","password":"` + strings.Repeat("x", 2048) + `"}`
	rec := fx.do(http.MethodPost, "/authCompany/register-company", body, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAPI_UnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/authAdmin/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)
}

func TestAPI_UnhandledErrorIsOpaque(t *testing.T) {
	fx := createTestAPI(t)

	fx.adminUC.EXPECT().Verify(mock.Anything, "T1").Return(nil, errors.New("driver exploded")).Once()

	rec := fx.do(http.MethodGet, "/authAdmin/allcompanies", "", map[string]string{"Authorization": "T1"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Error.Code)
	assert.NotContains(t, rec.Body.String(), "driver exploded")
}
