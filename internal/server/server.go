package server

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"

	"github.com/GCrispino/workout-api/internal/usecases/athletes"
	"github.com/GCrispino/workout-api/internal/usecases/categories"
	"github.com/GCrispino/workout-api/internal/usecases/centers"
)

type Server struct {
	*echo.Echo
	athletes   *athletes.AthleteUsecase
	categories *categories.CategoryUsecase
	centers    *centers.TrainingCenterUsecase
	log        *logrus.Logger
}

func NewServer(
	athletesUsecase *athletes.AthleteUsecase,
	categoriesUsecase *categories.CategoryUsecase,
	centersUsecase *centers.TrainingCenterUsecase,
	logger *logrus.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger(RequestLoggerConfig{
		Logger:     logger,
		LogSuccess: logger.IsLevelEnabled(logrus.DebugLevel),
	}))
	e.Logger.SetLevel(log.ERROR)
	e.JSONSerializer = DefaultJSONSerializer{}

	s := &Server{
		Echo:       e,
		athletes:   athletesUsecase,
		categories: categoriesUsecase,
		centers:    centersUsecase,
		log:        logger,
	}

	s.registerHandlers()

	return s
}

// DefaultJSONSerializer implements JSON encoding using goccy/go-json.
type DefaultJSONSerializer struct{}

// Serialize converts an interface into a json and writes it to the response.
// You can optionally use the indent parameter to produce pretty JSONs.
func (d DefaultJSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

// Deserialize reads a JSON from a request body and converts it into an interface.
func (d DefaultJSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	if ute, ok := err.(*json.UnmarshalTypeError); ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unmarshal type error: expected=%v, got=%v, field=%v, offset=%v", ute.Type, ute.Value, ute.Field, ute.Offset)).SetInternal(err)
	} else if se, ok := err.(*json.SyntaxError); ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Syntax error: offset=%v, error=%v", se.Offset, se.Error())).SetInternal(err)
	}
	return err
}

func (s *Server) registerHandlers() {
	routes := []struct {
		path   string
		create echo.HandlerFunc
		list   echo.HandlerFunc
	}{
		{"/atleta", s.CreateAthleteHandler(), s.ListAthletesHandler()},
		{"/categoria", s.CreateCategoryHandler(), s.ListCategoriesHandler()},
		{"/centro", s.CreateTrainingCenterHandler(), s.ListTrainingCentersHandler()},
	}

	for _, r := range routes {
		for _, path := range []string{r.path, r.path + "/"} {
			s.POST(path, r.create)
			s.GET(path, r.list)
		}
	}
}
