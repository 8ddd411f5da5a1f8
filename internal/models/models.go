package models

// DB models
type Category struct {
	Id   int64
	Name string
}

type TrainingCenter struct {
	Id      int64
	Name    string
	Address *string
	Owner   *string
}

type Athlete struct {
	Id               int64
	Name             string
	CPF              string
	Age              *int
	Weight           *float64
	Height           *float64
	Sex              *string
	TrainingCenterId int64
	CategoryId       int64
}

// AthleteRow is an athlete joined with the rows its foreign keys point to.
type AthleteRow struct {
	Athlete
	Category       Category
	TrainingCenter TrainingCenter
}

type AthleteFilter struct {
	Name string
	CPF  string
}

// request/response models
type CreateCategoryRequest struct {
	Name string `json:"nome"`
}

type CategoryResponse struct {
	Id   int64  `json:"pk_id"`
	Name string `json:"nome"`
}

type CreateTrainingCenterRequest struct {
	Name    string  `json:"nome"`
	Address *string `json:"endereco"`
	Owner   *string `json:"proprietario"`
}

type TrainingCenterResponse struct {
	Id      int64   `json:"pk_id"`
	Name    string  `json:"nome"`
	Address *string `json:"endereco"`
	Owner   *string `json:"proprietario"`
}

type CreateAthleteRequest struct {
	Name             string   `json:"nome"`
	CPF              string   `json:"cpf"`
	Age              *int     `json:"idade"`
	Weight           *float64 `json:"peso"`
	Height           *float64 `json:"altura"`
	Sex              *string  `json:"sexo"`
	TrainingCenterId int64    `json:"centro_treinamento_id"`
	CategoryId       int64    `json:"categoria_id"`
}

type AthleteResponse struct {
	Id               int64                  `json:"pk_id"`
	Name             string                 `json:"nome"`
	CPF              string                 `json:"cpf"`
	Age              *int                   `json:"idade"`
	Weight           *float64               `json:"peso"`
	Height           *float64               `json:"altura"`
	Sex              *string                `json:"sexo"`
	TrainingCenterId int64                  `json:"centro_treinamento_id"`
	CategoryId       int64                  `json:"categoria_id"`
	TrainingCenter   TrainingCenterResponse `json:"centro_treinamento"`
	Category         CategoryResponse       `json:"categoria"`
}

func NewCategoryResponse(c Category) CategoryResponse {
	return CategoryResponse{Id: c.Id, Name: c.Name}
}

func NewTrainingCenterResponse(tc TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		Id:      tc.Id,
		Name:    tc.Name,
		Address: tc.Address,
		Owner:   tc.Owner,
	}
}

func NewAthleteResponse(row AthleteRow) AthleteResponse {
	return AthleteResponse{
		Id:               row.Id,
		Name:             row.Name,
		CPF:              row.CPF,
		Age:              row.Age,
		Weight:           row.Weight,
		Height:           row.Height,
		Sex:              row.Sex,
		TrainingCenterId: row.TrainingCenterId,
		CategoryId:       row.CategoryId,
		TrainingCenter:   NewTrainingCenterResponse(row.TrainingCenter),
		Category:         NewCategoryResponse(row.Category),
	}
}
