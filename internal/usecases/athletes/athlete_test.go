package athletes_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/GCrispino/workout-api/internal/database/memstore"
	appErrors "github.com/GCrispino/workout-api/internal/errors"
	"github.com/GCrispino/workout-api/internal/models"
	"github.com/GCrispino/workout-api/internal/pagination"
	"github.com/GCrispino/workout-api/internal/usecases/athletes"
)

func newUsecase(t *testing.T) *athletes.AthleteUsecase {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	if _, err := store.CreateCategory(ctx, "Scale"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreateTrainingCenter(ctx, models.TrainingCenter{Name: "CT King"}); err != nil {
		t.Fatal(err)
	}
	return athletes.NewAthleteUsecase(store, store, store)
}

func request(name, cpf string) models.CreateAthleteRequest {
	return models.CreateAthleteRequest{Name: name, CPF: cpf, CategoryId: 1, TrainingCenterId: 1}
}

func TestCreateAthlete(t *testing.T) {
	u := newUsecase(t)
	age := 25
	req := request("  Joao  ", "12345678901")
	req.Age = &age

	res, err := u.CreateAthlete(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Id != 1 || res.Name != "Joao" || *res.Age != 25 {
		t.Fatalf("res=%+v", res)
	}
	if res.Category.Name != "Scale" || res.TrainingCenter.Name != "CT King" {
		t.Fatalf("sub-objects not resolved: %+v", res)
	}
}

func TestCreateAthleteDuplicateCPF(t *testing.T) {
	u := newUsecase(t)
	ctx := context.Background()
	if _, err := u.CreateAthlete(ctx, request("Joao", "12345678901")); err != nil {
		t.Fatal(err)
	}

	_, err := u.CreateAthlete(ctx, request("Maria", "12345678901"))
	if !errors.Is(err, appErrors.ErrDuplicateCPF) {
		t.Fatalf("want ErrDuplicateCPF, got %v", err)
	}
	if !strings.HasSuffix(err.Error(), ": 12345678901") {
		t.Fatalf("message should carry the cpf: %q", err.Error())
	}

	page, err := u.ListAthletes(ctx, models.AthleteFilter{}, pagination.Params{Page: 1, Size: 50})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 || page.Items[0].Name != "Joao" {
		t.Fatalf("page=%+v", page)
	}
}

func TestCreateAthleteUnknownReferences(t *testing.T) {
	u := newUsecase(t)
	ctx := context.Background()

	req := request("Joao", "1")
	req.CategoryId = 7
	if _, err := u.CreateAthlete(ctx, req); !errors.Is(err, appErrors.ErrCategoryNotFound) {
		t.Fatalf("want ErrCategoryNotFound, got %v", err)
	}

	req = request("Joao", "1")
	req.TrainingCenterId = 7
	if _, err := u.CreateAthlete(ctx, req); !errors.Is(err, appErrors.ErrTrainingCenterNotFound) {
		t.Fatalf("want ErrTrainingCenterNotFound, got %v", err)
	}
}

func TestCreateAthleteValidation(t *testing.T) {
	u := newUsecase(t)
	sex := "MF"

	cases := map[string]func(r *models.CreateAthleteRequest){
		"empty name":   func(r *models.CreateAthleteRequest) { r.Name = " " },
		"long name":    func(r *models.CreateAthleteRequest) { r.Name = strings.Repeat("a", 51) },
		"empty cpf":    func(r *models.CreateAthleteRequest) { r.CPF = "" },
		"long cpf":     func(r *models.CreateAthleteRequest) { r.CPF = "123456789012" },
		"letters cpf":  func(r *models.CreateAthleteRequest) { r.CPF = "123abc" },
		"two-char sex": func(r *models.CreateAthleteRequest) { r.Sex = &sex },
	}
	for name, mutate := range cases {
		req := request("Joao", "1")
		mutate(&req)
		if _, err := u.CreateAthlete(context.Background(), req); !errors.Is(err, appErrors.ErrValidation) {
			t.Fatalf("%s: want ErrValidation, got %v", name, err)
		}
	}
}

// idade, peso and altura are free-form numbers; only the sex column has a width.
func TestCreateAthleteKeepsMeasurementsAsGiven(t *testing.T) {
	u := newUsecase(t)
	age := -1
	zero := 0.0
	req := request("Joao", "1")
	req.Age, req.Weight, req.Height = &age, &zero, &zero

	res, err := u.CreateAthlete(context.Background(), req)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if *res.Age != -1 || *res.Weight != 0 || *res.Height != 0 {
		t.Fatalf("res=%+v", res)
	}
}

func TestListAthletesNameFilterIsCaseInsensitive(t *testing.T) {
	u := newUsecase(t)
	ctx := context.Background()
	for i, name := range []string{"Ana Paula", "paulo", "Carlos"} {
		if _, err := u.CreateAthlete(ctx, request(name, string(rune('1'+i)))); err != nil {
			t.Fatal(err)
		}
	}

	page, err := u.ListAthletes(ctx, models.AthleteFilter{Name: "PAUL"}, pagination.Params{Page: 1, Size: 50})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 2 {
		t.Fatalf("total=%d want=2", page.Total)
	}
	for _, item := range page.Items {
		if !strings.Contains(strings.ToLower(item.Name), "paul") {
			t.Fatalf("unexpected match %q", item.Name)
		}
	}
}
