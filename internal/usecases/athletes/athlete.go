package athletes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	appErrors "github.com/GCrispino/workout-api/internal/errors"
	"github.com/GCrispino/workout-api/internal/models"
	"github.com/GCrispino/workout-api/internal/pagination"
)

type Repository interface {
	CreateAthlete(ctx context.Context, athlete models.Athlete) (*models.AthleteRow, error)
	ListAthletes(ctx context.Context, filter models.AthleteFilter, p pagination.Params) ([]models.AthleteRow, int, error)
}

type CategoryFinder interface {
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
}

type TrainingCenterFinder interface {
	GetTrainingCenter(ctx context.Context, id int64) (*models.TrainingCenter, error)
}

type AthleteUsecase struct {
	repo       Repository
	categories CategoryFinder
	centers    TrainingCenterFinder
}

func NewAthleteUsecase(repo Repository, categories CategoryFinder, centers TrainingCenterFinder) *AthleteUsecase {
	return &AthleteUsecase{repo: repo, categories: categories, centers: centers}
}

const (
	maxNameLen = 50
	maxCPFLen  = 11
)

func validate(req *models.CreateAthleteRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.CPF = strings.TrimSpace(req.CPF)

	if req.Name == "" {
		return appErrors.Validation("nome é obrigatório")
	}
	if utf8.RuneCountInString(req.Name) > maxNameLen {
		return appErrors.Validation("nome deve ter no máximo %d caracteres", maxNameLen)
	}
	if req.CPF == "" || len(req.CPF) > maxCPFLen || strings.Trim(req.CPF, "0123456789") != "" {
		return appErrors.Validation("cpf deve conter até %d dígitos", maxCPFLen)
	}
	if req.Sex != nil && utf8.RuneCountInString(*req.Sex) != 1 {
		return appErrors.Validation("sexo deve ter um caractere")
	}
	return nil
}

func (a *AthleteUsecase) CreateAthlete(ctx context.Context, req models.CreateAthleteRequest) (*models.AthleteResponse, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	if _, err := a.categories.GetCategory(ctx, req.CategoryId); err != nil {
		if errors.Is(err, appErrors.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: %d", appErrors.ErrCategoryNotFound, req.CategoryId)
		}
		return nil, fmt.Errorf("error resolving category %d: %w", req.CategoryId, err)
	}
	if _, err := a.centers.GetTrainingCenter(ctx, req.TrainingCenterId); err != nil {
		if errors.Is(err, appErrors.ErrTrainingCenterNotFound) {
			return nil, fmt.Errorf("%w: %d", appErrors.ErrTrainingCenterNotFound, req.TrainingCenterId)
		}
		return nil, fmt.Errorf("error resolving training center %d: %w", req.TrainingCenterId, err)
	}

	row, err := a.repo.CreateAthlete(ctx, models.Athlete{
		Name:             req.Name,
		CPF:              req.CPF,
		Age:              req.Age,
		Weight:           req.Weight,
		Height:           req.Height,
		Sex:              req.Sex,
		TrainingCenterId: req.TrainingCenterId,
		CategoryId:       req.CategoryId,
	})
	if err != nil {
		if errors.Is(err, appErrors.ErrDuplicateCPF) {
			return nil, fmt.Errorf("%w: %s", appErrors.ErrDuplicateCPF, req.CPF)
		}
		return nil, fmt.Errorf("error creating athlete: %w", err)
	}

	res := models.NewAthleteResponse(*row)
	return &res, nil
}

func (a *AthleteUsecase) ListAthletes(ctx context.Context, filter models.AthleteFilter, p pagination.Params) (*pagination.Page[models.AthleteResponse], error) {
	filter.Name = strings.TrimSpace(filter.Name)
	filter.CPF = strings.TrimSpace(filter.CPF)

	rows, total, err := a.repo.ListAthletes(ctx, filter, p)
	if err != nil {
		return nil, fmt.Errorf("error listing athletes: %w", err)
	}

	page := pagination.Map(pagination.NewPage(rows, total, p), models.NewAthleteResponse)
	return &page, nil
}
