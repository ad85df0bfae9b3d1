package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
)

type serviceRepoStub struct {
	createFn func(ctx context.Context, input *entities.ServiceInput) (*entities.Service, error)
	listFn   func(ctx context.Context) ([]*entities.Service, error)
	updateFn func(ctx context.Context, id uuid.UUID, input *entities.ServiceInput) (*entities.Service, error)
	deleteFn func(ctx context.Context, id uuid.UUID) (*entities.Service, error)
}

func (s *serviceRepoStub) Create(ctx context.Context, input *entities.ServiceInput) (*entities.Service, error) {
	return s.createFn(ctx, input)
}
func (s *serviceRepoStub) List(ctx context.Context) ([]*entities.Service, error) {
	return s.listFn(ctx)
}
func (s *serviceRepoStub) Update(ctx context.Context, id uuid.UUID, input *entities.ServiceInput) (*entities.Service, error) {
	return s.updateFn(ctx, id, input)
}
func (s *serviceRepoStub) Delete(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	return s.deleteFn(ctx, id)
}

func newServiceRouter(repo *serviceRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewServiceHandler(repo)
	r := gin.New()
	services := r.Group("/services")
	{
		services.POST("/", h.CreateService)
		services.GET("/", h.ListServices)
		services.PUT("/:id", h.UpdateService)
		services.DELETE("/:id", h.DeleteService)
	}
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestServiceHandler_Create(t *testing.T) {
	r := newServiceRouter(&serviceRepoStub{
		createFn: func(_ context.Context, input *entities.ServiceInput) (*entities.Service, error) {
			require.Equal(t, "Electricidad", input.Name)
			return &entities.Service{ID: uuid.New(), Name: input.Name}, nil
		},
	})

	w := doJSON(r, http.MethodPost, "/services/", `{"name":"Electricidad"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Electricidad")
}

func TestServiceHandler_CreateMissingName(t *testing.T) {
	r := newServiceRouter(&serviceRepoStub{})

	w := doJSON(r, http.MethodPost, "/services/", `{"description":"sin nombre"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceHandler_List(t *testing.T) {
	r := newServiceRouter(&serviceRepoStub{
		listFn: func(context.Context) ([]*entities.Service, error) {
			return []*entities.Service{
				{ID: uuid.New(), Name: "Electricidad"},
				{ID: uuid.New(), Name: "Gasfitería"},
			}, nil
		},
	})

	w := doJSON(r, http.MethodGet, "/services/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Gasfitería")
}

func TestServiceHandler_UpdateNotFound(t *testing.T) {
	r := newServiceRouter(&serviceRepoStub{
		updateFn: func(context.Context, uuid.UUID, *entities.ServiceInput) (*entities.Service, error) {
			return nil, domainerrors.ErrNotFound
		},
	})

	w := doJSON(r, http.MethodPut, "/services/"+uuid.NewString(), `{"name":"Electricidad"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"detail":"Servicio no encontrado"}`, w.Body.String())
}

func TestServiceHandler_UpdateBadID(t *testing.T) {
	r := newServiceRouter(&serviceRepoStub{})

	w := doJSON(r, http.MethodPut, "/services/not-a-uuid", `{"name":"Electricidad"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceHandler_DeleteReturnsRemovedRow(t *testing.T) {
	id := uuid.New()
	r := newServiceRouter(&serviceRepoStub{
		deleteFn: func(_ context.Context, gotID uuid.UUID) (*entities.Service, error) {
			require.Equal(t, id, gotID)
			return &entities.Service{ID: id, Name: "Electricidad"}, nil
		},
	})

	w := doJSON(r, http.MethodDelete, "/services/"+id.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), id.String())
}

func TestServiceHandler_DeleteNotFound(t *testing.T) {
	r := newServiceRouter(&serviceRepoStub{
		deleteFn: func(context.Context, uuid.UUID) (*entities.Service, error) {
			return nil, domainerrors.ErrNotFound
		},
	})

	w := doJSON(r, http.MethodDelete, "/services/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"detail":"Servicio no encontrado"}`, w.Body.String())
}
