package impl

import (
	"context"
	"log/slog"

	"surveyor/config"
	deliverycontext "surveyor/internal/delivery/context"
	"surveyor/internal/domain/entity"
	domainerrors "surveyor/internal/domain/errors"
	"surveyor/internal/domain/repository"
	"surveyor/internal/domain/service"
	"surveyor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// surveyService implements SurveyUsecase for principals of the gate's variant.
type surveyService struct {
	gate               usecase.AuthUsecase
	txManager          repository.TransactionManager
	principalRepo      repository.PrincipalRepository
	rule               service.AnswerValidationRule
	publisher          service.EventPublisher
	emailCaseSensitive bool
	logger             *slog.Logger
}

// SurveyServiceParams holds dependencies for SurveyService, injected by Fx.
type SurveyServiceParams struct {
	fx.In

	Gate          usecase.AuthUsecase `name:"admin"`
	TxManager     repository.TransactionManager
	PrincipalRepo repository.PrincipalRepository
	Rule          service.AnswerValidationRule
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSurveyService is the constructor for surveyService.
func NewSurveyService(params SurveyServiceParams) usecase.SurveyUsecase {
	caseSensitive := false
	if params.Config != nil && params.Config.Auth != nil {
		caseSensitive = params.Config.Auth.EmailCaseSensitive
	}

	return &surveyService{
		gate:               params.Gate,
		txManager:          params.TxManager,
		principalRepo:      params.PrincipalRepo,
		rule:               params.Rule,
		publisher:          params.Publisher,
		emailCaseSensitive: caseSensitive,
		logger:             params.Logger,
	}
}

func (srv *surveyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAnswers returns the stored answers in submission order.
func (srv *surveyService) GetAnswers(ctx context.Context, token, email string) ([]entity.QuestionAnswer, error) {
	principal, err := srv.authorize(ctx, token, email, srv.principalRepo.FindWithAnswersByEmail, "get answers failed")
	if err != nil {
		return nil, err
	}

	if principal.Answers == nil {
		return []entity.QuestionAnswer{}, nil
	}

	return principal.Answers, nil
}

// PostAnswers replaces the answers and recomputes the validated flag in one transaction.
func (srv *surveyService) PostAnswers(ctx context.Context, token, email string, answers []entity.QuestionAnswer) error {
	if _, err := srv.gate.Verify(ctx, token); err != nil {
		return err
	}

	for _, answer := range answers {
		if answer.QuestionID == "" {
			return errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("every answer needs a question id"), "post answers failed")
		}
	}

	complete, err := srv.rule.IsComplete(ctx, answers)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	email = normalizeEmail(email, srv.emailCaseSensitive)
	variant := srv.gate.Variant()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principalRepo := repoFactory.NewPrincipalRepository()

		// Row lock: concurrent submissions for one principal replace answers one after the other.
		principal, err := principalRepo.FindByEmailForUpdate(ctx, variant, email)
		if err != nil {
			return err
		}

		if err := principalRepo.ReplaceAnswers(ctx, principal.ID, answers); err != nil {
			return err
		}

		return principalRepo.UpdateFields(ctx, variant, email, repository.PrincipalFields{Validated: &complete})
	})
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return errors.Wrap(domainerrors.ErrPrincipalNotFound, "post answers failed")
		}

		return storeError(err, "post answers failed")
	}

	srv.log(ctx).Info("Survey answers stored",
		slog.String("email", email),
		slog.Int("answers", len(answers)),
		slog.Bool("validated", complete),
	)
	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.EventSurveyAnswersUpdated, variant, email)

	return nil
}

func (srv *surveyService) IsValidated(ctx context.Context, token, email string) (bool, error) {
	principal, err := srv.authorize(ctx, token, email, srv.principalRepo.FindByEmail, "validation status lookup failed")
	if err != nil {
		return false, err
	}

	return principal.Validated, nil
}

type principalLookup func(ctx context.Context, variant entity.Variant, email string) (*entity.Principal, error)

// authorize verifies the token and resolves the target principal with find.
// Any verified caller may read any principal of the gate's variant.
func (srv *surveyService) authorize(ctx context.Context, token, email string, find principalLookup, message string) (*entity.Principal, error) {
	if _, err := srv.gate.Verify(ctx, token); err != nil {
		return nil, err
	}

	principal, err := find(ctx, srv.gate.Variant(), normalizeEmail(email, srv.emailCaseSensitive))
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPrincipalNotFound, message)
		}

		return nil, storeError(err, message)
	}

	return principal, nil
}
