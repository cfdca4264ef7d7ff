package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"levelup-store/internal/domain/catalog"
	"levelup-store/internal/handler/middleware"
	"levelup-store/internal/usecase/commands"
	"levelup-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductQueries struct {
	items []catalog.Summary
}

func (s *stubProductQueries) List(_ context.Context, criteria catalog.Criteria) ([]catalog.Summary, error) {
	return catalog.Filter(s.items, criteria), nil
}

func (s *stubProductQueries) GetByID(_ context.Context, id uuid.UUID) (*catalog.Summary, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, queries.ErrProductNotFound
}

type stubProductCommands struct {
	created   *commands.CreateProductRequest
	createdID uuid.UUID
}

func (s *stubProductCommands) Create(_ context.Context, req commands.CreateProductRequest) (uuid.UUID, error) {
	s.created = &req
	return s.createdID, nil
}

func (s *stubProductCommands) Update(context.Context, uuid.UUID, commands.UpdateProductRequest) error {
	return nil
}

func (s *stubProductCommands) Delete(context.Context, uuid.UUID) error { return nil }

func newProductTestRouter(q queries.ProductQueries, cmds commands.ProductCommands) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())

	h := NewProductHandler(cmds, q)
	engine.GET("/api/productos", h.List)
	engine.GET("/api/productos/:id", h.Get)
	return engine
}

func TestProductHandler_List(t *testing.T) {
	items := []catalog.Summary{
		{ID: uuid.New(), Nombre: "Catan", Precio: 29990, Categoria: "Juegos de Mesa"},
		{ID: uuid.New(), Nombre: "Mouse Gamer", Precio: 49990, Categoria: "Mouse"},
	}
	engine := newProductTestRouter(&stubProductQueries{items: items}, &stubProductCommands{})

	t.Run("full listing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/productos", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got []catalog.Summary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, "Catan", got[0].Nombre)
	})

	t.Run("query params become filters", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/productos?categoria=Mouse&precio=40000%2B", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got []catalog.Summary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Mouse Gamer", got[0].Nombre)
	})
}

func TestProductHandler_Get(t *testing.T) {
	items := []catalog.Summary{{ID: uuid.New(), Nombre: "Catan", Precio: 29990}}
	engine := newProductTestRouter(&stubProductQueries{items: items}, &stubProductCommands{})

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/productos/"+items[0].ID.String(), nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got catalog.Summary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, items[0].ID, got.ID)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/productos/"+uuid.NewString(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/productos/not-a-uuid", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
