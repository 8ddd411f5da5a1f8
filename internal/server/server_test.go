package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/GCrispino/workout-api/internal/database/memstore"
	"github.com/GCrispino/workout-api/internal/models"
	"github.com/GCrispino/workout-api/internal/pagination"
	"github.com/GCrispino/workout-api/internal/usecases/athletes"
	"github.com/GCrispino/workout-api/internal/usecases/categories"
	"github.com/GCrispino/workout-api/internal/usecases/centers"
)

type errorBody struct {
	Message string `json:"message"`
}

func newTestClient(t *testing.T) *resty.Client {
	t.Helper()
	store := memstore.New()
	log := logrus.New()
	log.SetOutput(io.Discard)

	s := NewServer(
		athletes.NewAthleteUsecase(store, store, store),
		categories.NewCategoryUsecase(store),
		centers.NewTrainingCenterUsecase(store),
		log,
	)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	return resty.New().SetBaseURL(ts.URL).SetHeader("Content-Type", "application/json")
}

func post(t *testing.T, c *resty.Client, path string, body any, wantCode int, out any) {
	t.Helper()
	resp, err := c.R().SetBody(body).Post(path)
	if err != nil {
		t.Fatalf("POST %s err=%v", path, err)
	}
	if resp.StatusCode() != wantCode {
		t.Fatalf("POST %s code=%d want=%d body=%s", path, resp.StatusCode(), wantCode, resp.Body())
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			t.Fatalf("decode %s: %v", resp.Body(), err)
		}
	}
}

func get(t *testing.T, c *resty.Client, path string, query map[string]string, wantCode int, out any) {
	t.Helper()
	resp, err := c.R().SetQueryParams(query).Get(path)
	if err != nil {
		t.Fatalf("GET %s err=%v", path, err)
	}
	if resp.StatusCode() != wantCode {
		t.Fatalf("GET %s code=%d want=%d body=%s", path, resp.StatusCode(), wantCode, resp.Body())
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			t.Fatalf("decode %s: %v", resp.Body(), err)
		}
	}
}

func seedReferences(t *testing.T, c *resty.Client) {
	t.Helper()
	post(t, c, "/categoria", map[string]any{"nome": "Scale"}, http.StatusOK, nil)
	post(t, c, "/centro", map[string]any{"nome": "CT King", "endereco": "Rua X", "proprietario": "Marcos"}, http.StatusOK, nil)
}

func athleteBody(name, cpf string) map[string]any {
	return map[string]any{
		"nome":                  name,
		"cpf":                   cpf,
		"idade":                 30,
		"peso":                  75.5,
		"altura":                1.8,
		"sexo":                  "M",
		"centro_treinamento_id": 1,
		"categoria_id":          1,
	}
}

func TestCreateAthleteReturnsJoinedRecord(t *testing.T) {
	c := newTestClient(t)
	seedReferences(t, c)

	var res models.AthleteResponse
	post(t, c, "/atleta", athleteBody("Joao", "12345678901"), http.StatusOK, &res)

	if res.Id != 1 || res.CPF != "12345678901" || *res.Sex != "M" {
		t.Fatalf("res=%+v", res)
	}
	if res.Category.Name != "Scale" || res.TrainingCenter.Name != "CT King" || *res.TrainingCenter.Owner != "Marcos" {
		t.Fatalf("sub-objects=%+v %+v", res.Category, res.TrainingCenter)
	}
}

func TestCreateAthleteDuplicateCPF(t *testing.T) {
	c := newTestClient(t)
	seedReferences(t, c)
	post(t, c, "/atleta", athleteBody("Joao", "12345678901"), http.StatusOK, nil)

	var e errorBody
	post(t, c, "/atleta", athleteBody("Maria", "12345678901"), http.StatusSeeOther, &e)
	if e.Message != "Já existe um atleta cadastrado com o CPF: 12345678901" {
		t.Fatalf("message=%q", e.Message)
	}

	var page pagination.Page[models.AthleteResponse]
	get(t, c, "/atleta", nil, http.StatusOK, &page)
	if page.Total != 1 || page.Items[0].Name != "Joao" {
		t.Fatalf("page=%+v", page)
	}
}

func TestCreateAthleteUnknownCategory(t *testing.T) {
	c := newTestClient(t)
	seedReferences(t, c)

	body := athleteBody("Joao", "1")
	body["categoria_id"] = 9
	post(t, c, "/atleta", body, http.StatusBadRequest, nil)
}

func TestCreateAthleteInvalidBody(t *testing.T) {
	c := newTestClient(t)
	seedReferences(t, c)

	post(t, c, "/atleta", `{"nome": 1}`, http.StatusBadRequest, nil)
	post(t, c, "/atleta", `{"nome":`, http.StatusBadRequest, nil)
	post(t, c, "/atleta", athleteBody("", "1"), http.StatusUnprocessableEntity, nil)
}

func TestListAthletesFilters(t *testing.T) {
	c := newTestClient(t)
	seedReferences(t, c)
	post(t, c, "/atleta", athleteBody("Joao Silva", "1"), http.StatusOK, nil)
	post(t, c, "/atleta", athleteBody("MARIA JOANA", "2"), http.StatusOK, nil)
	post(t, c, "/atleta", athleteBody("Pedro", "3"), http.StatusOK, nil)

	var page pagination.Page[models.AthleteResponse]
	get(t, c, "/atleta", map[string]string{"nome": "jo"}, http.StatusOK, &page)
	if page.Total != 2 {
		t.Fatalf("name filter total=%d", page.Total)
	}

	get(t, c, "/atleta/", map[string]string{"cpf": "3"}, http.StatusOK, &page)
	if page.Total != 1 || page.Items[0].Name != "Pedro" || page.Items[0].Category.Name != "Scale" {
		t.Fatalf("cpf filter page=%+v", page)
	}

	get(t, c, "/atleta", map[string]string{"page": "2", "size": "2"}, http.StatusOK, &page)
	if page.Total != 3 || page.Pages != 2 || len(page.Items) != 1 || page.Items[0].Name != "Pedro" {
		t.Fatalf("paged=%+v", page)
	}

	get(t, c, "/atleta", map[string]string{"size": "500"}, http.StatusUnprocessableEntity, nil)
}

func TestListHugePageIsRejected(t *testing.T) {
	c := newTestClient(t)
	seedReferences(t, c)

	for _, path := range []string{"/categoria", "/centro", "/atleta"} {
		get(t, c, path, map[string]string{"page": "184467440737095518"}, http.StatusUnprocessableEntity, nil)
	}

	var page pagination.Page[models.CategoryResponse]
	get(t, c, "/categoria", map[string]string{"page": strconv.Itoa(pagination.MaxPage), "size": "100"}, http.StatusOK, &page)
	if page.Total != 1 || len(page.Items) != 0 {
		t.Fatalf("last page=%+v", page)
	}
}

func TestDuplicateCategoryAndCenter(t *testing.T) {
	c := newTestClient(t)
	seedReferences(t, c)

	var e errorBody
	post(t, c, "/categoria", map[string]any{"nome": "Scale"}, http.StatusSeeOther, &e)
	if e.Message != "A categoria informada já está cadastrada." {
		t.Fatalf("message=%q", e.Message)
	}

	post(t, c, "/centro", map[string]any{"nome": "CT King"}, http.StatusSeeOther, &e)
	if e.Message != "O centro de treinamento informado já está cadastrado." {
		t.Fatalf("message=%q", e.Message)
	}
}

func TestListCategoriesAndCenters(t *testing.T) {
	c := newTestClient(t)
	seedReferences(t, c)
	post(t, c, "/categoria/", map[string]any{"nome": "RX"}, http.StatusOK, nil)

	var categoriesPage pagination.Page[models.CategoryResponse]
	get(t, c, "/categoria", nil, http.StatusOK, &categoriesPage)
	if categoriesPage.Total != 2 || categoriesPage.Size != pagination.DefaultSize || categoriesPage.Items[1].Name != "RX" {
		t.Fatalf("categories=%+v", categoriesPage)
	}

	var centersPage pagination.Page[models.TrainingCenterResponse]
	get(t, c, "/centro", nil, http.StatusOK, &centersPage)
	if centersPage.Total != 1 || *centersPage.Items[0].Address != "Rua X" {
		t.Fatalf("centers=%+v", centersPage)
	}
}
