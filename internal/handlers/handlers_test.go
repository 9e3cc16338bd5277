package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/seed"
)

// MockStore implements document.Store with testify/mock.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	args := m.Called(ctx, collection, record)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetDocuments(ctx context.Context, collection string, limit int64) ([]bson.Raw, error) {
	args := m.Called(ctx, collection, limit)
	docs, _ := args.Get(0).([]bson.Raw)
	return docs, args.Error(1)
}

func (m *MockStore) CountDocuments(ctx context.Context, collection string) (int64, error) {
	args := m.Called(ctx, collection)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockStore) Name() string {
	return m.Called().String(0)
}

type MockCreateAppointment struct {
	mock.Mock
}

func (m *MockCreateAppointment) Execute(ctx context.Context, in models.AppointmentInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

type MockSeed struct {
	mock.Mock
}

func (m *MockSeed) Execute(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	inserted, _ := args.Get(0).(map[string]int)
	return inserted, args.Error(1)
}

func serve(method, path, body string, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContentHandler_StoreFailure(t *testing.T) {
	store := new(MockStore)
	store.On("GetDocuments", mock.Anything, models.CollectionBarber, int64(0)).
		Return(nil, errors.New("server selection timeout"))

	h := NewContentHandler(store)
	w := serve(http.MethodGet, "/api/barbers", "", func(r *gin.Engine) {
		r.GET("/api/barbers", h.ListBarbers)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed_to_list_barbers")
	assert.NotContains(t, w.Body.String(), "server selection timeout")
	store.AssertExpectations(t)
}

func TestContentHandler_GetShopReadsOnlyFirst(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: "shop-1"},
		{Key: "name", Value: "Corner Cuts"},
		{Key: "hours", Value: bson.D{{Key: "Sun", Value: "Closed"}}},
	})
	require.NoError(t, err)

	store := new(MockStore)
	store.On("GetDocuments", mock.Anything, models.CollectionShopInfo, int64(1)).
		Return([]bson.Raw{raw}, nil)

	h := NewContentHandler(store)
	w := serve(http.MethodGet, "/api/shop", "", func(r *gin.Engine) {
		r.GET("/api/shop", h.GetShop)
	})

	require.Equal(t, http.StatusOK, w.Code)
	var shop map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shop))
	assert.Equal(t, "shop-1", shop["_id"])
	assert.Equal(t, "Corner Cuts", shop["name"])
	assert.Equal(t, map[string]any{"Sun": "Closed"}, shop["hours"])
	store.AssertExpectations(t)
}

func TestAppointmentHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := new(MockCreateAppointment)
		uc.On("Execute", mock.Anything, mock.MatchedBy(func(in models.AppointmentInput) bool {
			return in.CustomerName == "Ana" && in.Date == "2026-10-20"
		})).Return("6710f0c2a1b2c3d4e5f60718", nil)

		h := NewAppointmentHandler(uc)
		w := serve(http.MethodPost, "/api/appointments", `{"customer_name":"Ana","date":"2026-10-20","time":"10:00"}`, func(r *gin.Engine) {
			r.POST("/api/appointments", h.Create)
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"6710f0c2a1b2c3d4e5f60718","status":"created"}`, w.Body.String())
		uc.AssertExpectations(t)
	})

	t.Run("type errors never reach the use case", func(t *testing.T) {
		uc := new(MockCreateAppointment)

		h := NewAppointmentHandler(uc)
		w := serve(http.MethodPost, "/api/appointments", `{"customer_name":42,"date":"2026-10-20","time":"10:00"}`, func(r *gin.Engine) {
			r.POST("/api/appointments", h.Create)
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"rule":"type"`)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		uc := new(MockCreateAppointment)
		uc.On("Execute", mock.Anything, mock.Anything).
			Return("", httperr.WrapBusiness("failed_to_create_appointment", errors.New("not primary")))

		h := NewAppointmentHandler(uc)
		w := serve(http.MethodPost, "/api/appointments", `{"customer_name":"Ana","date":"2026-10-20","time":"10:00"}`, func(r *gin.Engine) {
			r.POST("/api/appointments", h.Create)
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed_to_create_appointment")
	})
}

func TestSeedHandler_Failure(t *testing.T) {
	uc := new(MockSeed)
	uc.On("Execute", mock.Anything).
		Return(nil, httperr.WrapBusiness(seed.CodeSeedFailed, errors.New("write rejected")))

	h := NewSeedHandler(uc)
	w := serve(http.MethodPost, "/api/seed", "", func(r *gin.Engine) {
		r.POST("/api/seed", h.Seed)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), seed.CodeSeedFailed)
}

func TestSystemHandler_DiagnosticsDegrades(t *testing.T) {
	store := new(MockStore)
	store.On("CollectionNames", mock.Anything).
		Return(nil, errors.New("connection refused by mongodb at cluster0.example.net:27017 after retries"))

	h := NewSystemHandler(store, &config.Config{DBUrl: "mongodb://x", DBName: "barbershop"})
	w := serve(http.MethodGet, "/test", "", func(r *gin.Engine) {
		r.GET("/test", h.Diagnostics)
	})

	require.Equal(t, http.StatusOK, w.Code)

	var body DiagnosticResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body.Database, "Connected but Error: "))
	assert.Len(t, strings.TrimPrefix(body.Database, "Connected but Error: "), diagnosticErrLen)
	assert.Empty(t, body.Collections)
	assert.Equal(t, "Connected", body.ConnectionStatus)
}

func TestSystemHandler_DiagnosticsCapsCollections(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = string(rune('a' + i))
	}

	store := new(MockStore)
	store.On("CollectionNames", mock.Anything).Return(names, nil)

	h := NewSystemHandler(store, &config.Config{})
	w := serve(http.MethodGet, "/test", "", func(r *gin.Engine) {
		r.GET("/test", h.Diagnostics)
	})

	var body DiagnosticResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Collections, diagnosticCollections)
	assert.Equal(t, "Connected & Working", body.Database)
}
