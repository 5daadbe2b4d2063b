//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"driveshare/internal/handler/api"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"
	"driveshare/tests/common/builder"
	"driveshare/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeCarCommands struct {
	listCar func(ctx context.Context, cmd commands.ListCarCommand) (*queries.CarView, error)
}

func (f *fakeCarCommands) ListCar(ctx context.Context, cmd commands.ListCarCommand) (*queries.CarView, error) {
	return f.listCar(ctx, cmd)
}

type fakeCarQueries struct {
	getByID     func(ctx context.Context, id uuid.UUID) (*queries.CarView, error)
	search      func(ctx context.Context, location string) ([]*queries.CarView, error)
	listByOwner func(ctx context.Context, ownerID uuid.UUID) ([]*queries.CarView, error)
}

func (f *fakeCarQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	return f.getByID(ctx, id)
}

func (f *fakeCarQueries) Search(ctx context.Context, location string) ([]*queries.CarView, error) {
	return f.search(ctx, location)
}

func (f *fakeCarQueries) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.CarView, error) {
	return f.listByOwner(ctx, ownerID)
}

type CarHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeCarCommands
	queries  *fakeCarQueries
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.commands = &fakeCarCommands{}
	s.queries = &fakeCarQueries{}
	handler := api.NewCarHandler(s.commands, s.queries)

	s.router.POST("/cars", handler.CreateCar)
	s.router.GET("/cars", handler.SearchCars)
	s.router.GET("/cars/:id", handler.GetCar)
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

func (s *CarHandlerTestSuite) TestCreateCar() {
	b := builder.NewCarBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildViewQuery()

	s.Run("success: returns 201 Created", func() {
		s.commands.listCar = func(_ context.Context, cmd commands.ListCarCommand) (*queries.CarView, error) {
			s.Equal(b.OwnerID, cmd.OwnerID)
			s.Equal(b.Model, cmd.Model)
			return view, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", reqBody, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body["id"])
		s.Equal("50.00", body["dailyRate"])
	})

	s.Run("error: 422 on invalid car detail", func() {
		s.commands.listCar = func(_ context.Context, _ commands.ListCarCommand) (*queries.CarView, error) {
			return nil, commands.ErrInvalidCarDetail
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", reqBody, nil)
		httptest.AssertAbortResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid car detail")
	})

	s.Run("error: 404 on unknown owner", func() {
		s.commands.listCar = func(_ context.Context, _ commands.ListCarCommand) (*queries.CarView, error) {
			return nil, commands.ErrOwnerNotFound
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", reqBody, nil)
		httptest.AssertAbortResponse(s.T(), rec, http.StatusNotFound, "Owner not found")
	})

	s.Run("error: 400 on missing required fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", map[string]any{
			"model": "Honda Civic",
		}, nil)
		httptest.AssertAbortResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CarHandlerTestSuite) TestSearchCars() {
	s.Run("success: location search", func() {
		s.queries.search = func(_ context.Context, location string) ([]*queries.CarView, error) {
			s.Equal("Boston", location)
			return []*queries.CarView{
				builder.NewCarBuilder().BuildViewQuery(),
				builder.NewCarBuilder().BuildViewQuery(),
			}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars?location=Boston", nil, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: empty location lists everything", func() {
		s.queries.search = func(_ context.Context, location string) ([]*queries.CarView, error) {
			s.Equal("", location)
			return []*queries.CarView{}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars", nil, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("success: owner filter", func() {
		ownerID := uuid.New()
		s.queries.listByOwner = func(_ context.Context, id uuid.UUID) ([]*queries.CarView, error) {
			s.Equal(ownerID, id)
			return []*queries.CarView{builder.NewCarBuilder().BuildViewQuery()}, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars?owner_id="+ownerID.String(), nil, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 on malformed owner ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars?owner_id=abc", nil, nil)
		httptest.AssertAbortResponse(s.T(), rec, http.StatusBadRequest, "Invalid owner ID")
	})
}

func (s *CarHandlerTestSuite) TestGetCar() {
	view := builder.NewCarBuilder().BuildViewQuery()

	s.Run("success: returns the car", func() {
		s.queries.getByID = func(_ context.Context, id uuid.UUID) (*queries.CarView, error) {
			s.Equal(view.ID, id)
			return view, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+view.ID.String(), nil, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
	})

	s.Run("error: 404 when missing", func() {
		s.queries.getByID = func(_ context.Context, _ uuid.UUID) (*queries.CarView, error) {
			return nil, commands.ErrPersistenceFailure
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+uuid.NewString(), nil, nil)
		httptest.AssertAbortResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})
}
