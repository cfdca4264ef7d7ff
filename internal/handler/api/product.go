package api

import (
	"errors"
	"net/http"

	"levelup-store/internal/domain/catalog"
	reqdto "levelup-store/internal/handler/dto/request"
	"levelup-store/internal/handler/httperr"
	"levelup-store/internal/usecase/commands"
	"levelup-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description List catalog products with optional search, category and price range filters
// @Tags productos
// @Produce json
// @Param search query string false "Substring match on nombre"
// @Param categoria query string false "Exact category, 'Todas' disables the filter"
// @Param precio query string false "Price range: 'min-max' or 'min+'"
// @Success 200 {array} catalog.Summary
// @Failure 500 {object} map[string]string
// @Router /productos [get]
func (h *ProductHandler) List(c *gin.Context) {
	criteria := catalog.Criteria{
		Search:     c.Query("search"),
		Categoria:  c.Query("categoria"),
		PriceRange: c.Query("precio"),
	}

	items, err := h.q.List(c.Request.Context(), criteria)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get product
// @Tags productos
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} catalog.Summary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /productos/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	p, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Create product
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Create product request"
// @Success 201 {object} catalog.Summary
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /productos [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create product failed", nil)
		return
	}

	p, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Update product
// @Description Partial update; omitted fields keep their value
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Update product request"
// @Success 200 {object} catalog.Summary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /productos/{id} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err = h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		if isNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Update failed", nil)
		return
	}

	p, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Delete product
// @Tags productos
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /productos/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
