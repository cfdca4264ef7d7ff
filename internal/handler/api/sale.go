package api

import (
	"errors"
	"net/http"

	reqdto "levelup-store/internal/handler/dto/request"
	resdto "levelup-store/internal/handler/dto/response"
	"levelup-store/internal/handler/httperr"
	"levelup-store/internal/handler/middleware"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/usecase/commands"
	"levelup-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaleHandler struct {
	cmds commands.CheckoutCommands
	q    queries.SaleQueries
}

func NewSaleHandler(cmds commands.CheckoutCommands, q queries.SaleQueries) *SaleHandler {
	return &SaleHandler{cmds: cmds, q: q}
}

// @Summary Create boleta
// @Description Create a sale from explicit lines; prices are read server-side
// @Tags boletas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replay-safe retry key (UUID)"
// @Param request body reqdto.CreateSaleRequest true "Create sale request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /boletas [post]
func (h *SaleHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	idemKey, err := parseIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key", nil)
		return
	}

	result, err := h.cmds.CreateSale(c.Request.Context(), userID, middleware.GetDescuentoDuoc(c), req.ToCommand(idemKey))
	if err != nil {
		switch {
		case isNotFound(err):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, errs.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", nil)
		case errors.Is(err, errs.ErrIdempotencyInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Sale already in progress", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Create sale failed", nil)
		}
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCheckoutResult(result))
}

// @Summary List boletas
// @Description Admins see every sale, clientes only their own
// @Tags boletas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SaleListItemResponse
// @Failure 401 {object} map[string]string
// @Router /boletas [get]
func (h *SaleHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	items, err := h.q.List(c.Request.Context(), userID, role.String())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list sales", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleList(items))
}

// @Summary Get boleta
// @Description Return the receipt with the tax breakdown projected on top
// @Tags boletas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /boletas/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetByID(c.Request.Context(), id, userID, role.String())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSaleAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
		case isNotFound(err):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Sale not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load sale", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleView(view))
}
