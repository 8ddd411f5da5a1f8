package centers

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	appErrors "github.com/GCrispino/workout-api/internal/errors"
	"github.com/GCrispino/workout-api/internal/models"
	"github.com/GCrispino/workout-api/internal/pagination"
)

type Repository interface {
	CreateTrainingCenter(ctx context.Context, center models.TrainingCenter) (*models.TrainingCenter, error)
	ListTrainingCenters(ctx context.Context, p pagination.Params) ([]models.TrainingCenter, int, error)
}

type TrainingCenterUsecase struct {
	repo Repository
}

func NewTrainingCenterUsecase(repo Repository) *TrainingCenterUsecase {
	return &TrainingCenterUsecase{repo: repo}
}

const (
	maxNameLen    = 20
	maxAddressLen = 60
	maxOwnerLen   = 30
)

func optionalText(field string, v *string, maxLen int) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	if utf8.RuneCountInString(s) > maxLen {
		return nil, appErrors.Validation("%s deve ter no máximo %d caracteres", field, maxLen)
	}
	return &s, nil
}

func (t *TrainingCenterUsecase) CreateTrainingCenter(ctx context.Context, req models.CreateTrainingCenterRequest) (*models.TrainingCenterResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Validation("nome é obrigatório")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return nil, appErrors.Validation("nome deve ter no máximo %d caracteres", maxNameLen)
	}

	address, err := optionalText("endereco", req.Address, maxAddressLen)
	if err != nil {
		return nil, err
	}
	owner, err := optionalText("proprietario", req.Owner, maxOwnerLen)
	if err != nil {
		return nil, err
	}

	center, err := t.repo.CreateTrainingCenter(ctx, models.TrainingCenter{
		Name:    name,
		Address: address,
		Owner:   owner,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating training center: %w", err)
	}

	res := models.NewTrainingCenterResponse(*center)
	return &res, nil
}

func (t *TrainingCenterUsecase) ListTrainingCenters(ctx context.Context, p pagination.Params) (*pagination.Page[models.TrainingCenterResponse], error) {
	centers, total, err := t.repo.ListTrainingCenters(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error listing training centers: %w", err)
	}

	page := pagination.Map(pagination.NewPage(centers, total, p), models.NewTrainingCenterResponse)
	return &page, nil
}
