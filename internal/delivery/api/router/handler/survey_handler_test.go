package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"surveyor/internal/domain/entity"
	domainerrors "surveyor/internal/domain/errors"
	mockUsecase "surveyor/internal/mocks/usecase"
	"surveyor/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type surveyHandlerFixture struct {
	surveyUC  *mockUsecase.MockSurveyUsecase
	adminUC   *mockUsecase.MockAuthUsecase
	companyUC *mockUsecase.MockAuthUsecase
	handler   *SurveyHandler
}

func createTestSurveyHandler(t *testing.T) *surveyHandlerFixture {
	t.Helper()

	f := &surveyHandlerFixture{
		surveyUC:  mockUsecase.NewMockSurveyUsecase(t),
		adminUC:   mockUsecase.NewMockAuthUsecase(t),
		companyUC: mockUsecase.NewMockAuthUsecase(t),
	}
	f.handler = NewSurveyHandler(SurveyHandlerParams{
		SurveyUC:  f.surveyUC,
		AdminUC:   f.adminUC,
		CompanyUC: f.companyUC,
	})

	return f
}

func TestSurveyHandler_GetAnswers(t *testing.T) {
	fx := createTestSurveyHandler(t)

	fx.surveyUC.EXPECT().GetAnswers(mock.Anything, "T1", "bob@co.com").
		Return([]entity.QuestionAnswer{{QuestionID: "q1", Value: "yes"}}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/authAdmin/answerFormUser?email=bob@co.com", "", "T1")

	require.NoError(t, fx.handler.GetAnswers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var answers []AnswerPayload
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &answers))
	assert.Equal(t, []AnswerPayload{{QuestionID: "q1", Value: "yes"}}, answers)
}

func TestSurveyHandler_GetAnswers_MissingEmail(t *testing.T) {
	fx := createTestSurveyHandler(t)

	c, rec := newTestContext(http.MethodGet, "/authAdmin/answerFormUser", "", "T1")

	require.NoError(t, fx.handler.GetAnswers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSurveyHandler_GetAnswers_NotFound(t *testing.T) {
	fx := createTestSurveyHandler(t)

	fx.surveyUC.EXPECT().GetAnswers(mock.Anything, "T1", "ghost@co.com").
		Return(nil, errors.Wrap(domainerrors.ErrPrincipalNotFound, "get answers failed")).Once()

	c, rec := newTestContext(http.MethodGet, "/authAdmin/answerFormUser?email=ghost@co.com", "", "T1")

	require.NoError(t, fx.handler.GetAnswers(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSurveyHandler_PostAnswers(t *testing.T) {
	fx := createTestSurveyHandler(t)

	fx.surveyUC.EXPECT().PostAnswers(mock.Anything, "T1", "bob@co.com", []entity.QuestionAnswer{
		{QuestionID: "q1", Value: "yes"},
		{QuestionID: "q2", Value: ""},
	}).Return(nil).Once()

	c, rec := newTestContext(http.MethodPost, "/authAdmin/answerFormUser",
		`{"email":"bob@co.com","answers":[{"question_id":"q1","value":"yes"},{"question_id":"q2"}]}`, "T1")

	require.NoError(t, fx.handler.PostAnswers(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSurveyHandler_PostAnswers_MissingQuestionID(t *testing.T) {
	fx := createTestSurveyHandler(t)

	c, rec := newTestContext(http.MethodPost, "/authAdmin/answerFormUser",
		`{"email":"bob@co.com","answers":[{"value":"yes"}]}`, "T1")

	require.NoError(t, fx.handler.PostAnswers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSurveyHandler_IsValidated(t *testing.T) {
	fx := createTestSurveyHandler(t)

	fx.surveyUC.EXPECT().IsValidated(mock.Anything, "T1", "bob@co.com").Return(true, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/authAdmin/validatedFormUser?email=bob@co.com", "", "T1")

	require.NoError(t, fx.handler.IsValidated(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", string(decodeEnvelope(t, rec).Data))
}

func TestSurveyHandler_ListCompanies(t *testing.T) {
	fx := createTestSurveyHandler(t)

	fx.adminUC.EXPECT().Verify(mock.Anything, "T1").Return(&usecase.VerifyOutput{}, nil).Once()
	fx.companyUC.EXPECT().List(mock.Anything).Return([]*usecase.PrincipalView{
		{Email: "acme@co.com", Variant: entity.VariantCompany, Profile: entity.Profile{CompanyName: "Acme"}},
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/authAdmin/allcompanies", "", "T1")

	require.NoError(t, fx.handler.ListCompanies(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var companies []PrincipalResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &companies))
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].CompanyName)
	assert.Equal(t, "company", companies[0].Type)
}

func TestSurveyHandler_ListCompanies_RequiresAdmin(t *testing.T) {
	fx := createTestSurveyHandler(t)

	fx.adminUC.EXPECT().Verify(mock.Anything, "company-token").
		Return(nil, errors.Wrap(domainerrors.ErrUnauthorized, "verify failed")).Once()

	c, rec := newTestContext(http.MethodGet, "/authAdmin/allcompanies", "", "company-token")

	require.NoError(t, fx.handler.ListCompanies(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
