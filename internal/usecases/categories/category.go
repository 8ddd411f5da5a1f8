package categories

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
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context, p pagination.Params) ([]models.Category, int, error)
}

type CategoryUsecase struct {
	repo Repository
}

func NewCategoryUsecase(repo Repository) *CategoryUsecase {
	return &CategoryUsecase{repo: repo}
}

const maxNameLen = 10

func (c *CategoryUsecase) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Validation("nome é obrigatório")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return nil, appErrors.Validation("nome deve ter no máximo %d caracteres", maxNameLen)
	}

	category, err := c.repo.CreateCategory(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error creating category: %w", err)
	}

	res := models.NewCategoryResponse(*category)
	return &res, nil
}

func (c *CategoryUsecase) ListCategories(ctx context.Context, p pagination.Params) (*pagination.Page[models.CategoryResponse], error) {
	categories, total, err := c.repo.ListCategories(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	page := pagination.Map(pagination.NewPage(categories, total, p), models.NewCategoryResponse)
	return &page, nil
}
