package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	appErrors "github.com/GCrispino/workout-api/internal/errors"
	"github.com/GCrispino/workout-api/internal/models"
	"github.com/GCrispino/workout-api/internal/pagination"
)

func getPageParamsFromRequest(c echo.Context) (pagination.Params, error) {
	p, err := pagination.Parse(c.QueryParam("page"), c.QueryParam("size"))
	if err != nil {
		return pagination.Params{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return p, nil
}

// toHTTPError maps application errors to the status codes of the API.
// Uniqueness violations answer 303 See Other.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, appErrors.ErrDuplicateCPF):
		// carries the offending cpf
		return echo.NewHTTPError(http.StatusSeeOther, err.Error()).SetInternal(err)
	case errors.Is(err, appErrors.ErrDuplicateCategory):
		return echo.NewHTTPError(http.StatusSeeOther, appErrors.ErrDuplicateCategory.Error()).SetInternal(err)
	case errors.Is(err, appErrors.ErrDuplicateTrainingCenter):
		return echo.NewHTTPError(http.StatusSeeOther, appErrors.ErrDuplicateTrainingCenter.Error()).SetInternal(err)
	case errors.Is(err, appErrors.ErrCategoryNotFound),
		errors.Is(err, appErrors.ErrTrainingCenterNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	case errors.Is(err, appErrors.ErrIntegrity):
		return echo.NewHTTPError(http.StatusBadRequest, appErrors.ErrIntegrity.Error()).SetInternal(err)
	case errors.Is(err, appErrors.ErrValidation):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error()).SetInternal(err)
	default:
		return err
	}
}

func (s *Server) CreateAthleteHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CreateAthleteRequest)
		if err := c.Bind(req); err != nil {
			return err
		}

		res, err := s.athletes.CreateAthlete(c.Request().Context(), *req)
		if err != nil {
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, res)
	}
}

func (s *Server) ListAthletesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := getPageParamsFromRequest(c)
		if err != nil {
			return err
		}

		filter := models.AthleteFilter{
			Name: c.QueryParam("nome"),
			CPF:  c.QueryParam("cpf"),
		}

		page, err := s.athletes.ListAthletes(c.Request().Context(), filter, p)
		if err != nil {
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, page)
	}
}

func (s *Server) CreateCategoryHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CreateCategoryRequest)
		if err := c.Bind(req); err != nil {
			return err
		}

		res, err := s.categories.CreateCategory(c.Request().Context(), *req)
		if err != nil {
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, res)
	}
}

func (s *Server) ListCategoriesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := getPageParamsFromRequest(c)
		if err != nil {
			return err
		}

		page, err := s.categories.ListCategories(c.Request().Context(), p)
		if err != nil {
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, page)
	}
}

func (s *Server) CreateTrainingCenterHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CreateTrainingCenterRequest)
		if err := c.Bind(req); err != nil {
			return err
		}

		res, err := s.centers.CreateTrainingCenter(c.Request().Context(), *req)
		if err != nil {
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, res)
	}
}

func (s *Server) ListTrainingCentersHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := getPageParamsFromRequest(c)
		if err != nil {
			return err
		}

		page, err := s.centers.ListTrainingCenters(c.Request().Context(), p)
		if err != nil {
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, page)
	}
}
