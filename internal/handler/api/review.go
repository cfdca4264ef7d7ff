package api

import (
	"errors"
	"net/http"

	reqdto "levelup-store/internal/handler/dto/request"
	resdto "levelup-store/internal/handler/dto/response"
	"levelup-store/internal/handler/httperr"
	"levelup-store/internal/handler/middleware"
	"levelup-store/internal/usecase/commands"
	"levelup-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary List reviews
// @Description List all reviews, optionally scoped to one product
// @Tags resenas
// @Produce json
// @Param productoId query string false "Product ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /resenas [get]
func (h *ReviewHandler) List(c *gin.Context) {
	if raw := c.Query("productoId"); raw != "" {
		productID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid productoId", nil)
			return
		}
		items, err := h.q.ListByProduct(c.Request.Context(), productID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromReviewList(items))
		return
	}

	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items))
}

// @Summary List product reviews
// @Tags resenas
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /productos/{id}/resenas [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	items, err := h.q.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items))
}

// @Summary Create review
// @Tags resenas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resenas [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		if isNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create review failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary Delete review
// @Description Author or admin only
// @Tags resenas
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resenas/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.cmds.Delete(c.Request.Context(), id, actorID, role.String()); err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
		case isNotFound(err):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Delete failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
