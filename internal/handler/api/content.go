package api

import (
	"net/http"

	reqdto "levelup-store/internal/handler/dto/request"
	resdto "levelup-store/internal/handler/dto/response"
	"levelup-store/internal/handler/httperr"
	"levelup-store/internal/usecase/commands"
	"levelup-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	cmds commands.ContentCommands
	q    queries.ContentQueries
}

func NewEventHandler(cmds commands.ContentCommands, q queries.ContentQueries) *EventHandler {
	return &EventHandler{cmds: cmds, q: q}
}

// @Summary List events
// @Tags eventos
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /eventos [get]
func (h *EventHandler) List(c *gin.Context) {
	items, err := h.q.ListEvents(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list events", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventList(items))
}

// @Summary Create event
// @Tags eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Create event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Router /eventos [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateEvent(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create event failed", nil)
		return
	}

	view, err := h.q.GetEvent(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load event", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEventView(view))
}

// @Summary Update event
// @Tags eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Update event request"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /eventos/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err = h.cmds.UpdateEvent(c.Request.Context(), id, req.ToCommand()); err != nil {
		if isNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Update failed", nil)
		return
	}

	view, err := h.q.GetEvent(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load event", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Delete event
// @Tags eventos
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /eventos/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.DeleteEvent(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

type BlogHandler struct {
	cmds commands.ContentCommands
	q    queries.ContentQueries
}

func NewBlogHandler(cmds commands.ContentCommands, q queries.ContentQueries) *BlogHandler {
	return &BlogHandler{cmds: cmds, q: q}
}

// @Summary List blog posts
// @Tags blogs
// @Produce json
// @Success 200 {array} resdto.BlogResponse
// @Router /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	items, err := h.q.ListBlogs(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list blogs", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlogList(items))
}

// @Summary Create blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlogRequest true "Create blog request"
// @Success 201 {object} resdto.BlogResponse
// @Failure 400 {object} map[string]string
// @Router /blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req reqdto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateBlog(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create blog failed", nil)
		return
	}

	view, err := h.q.GetBlog(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load blog", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBlogView(view))
}

// @Summary Update blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Param request body reqdto.UpdateBlogRequest true "Update blog request"
// @Success 200 {object} resdto.BlogResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/{id} [patch]
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateBlogRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err = h.cmds.UpdateBlog(c.Request.Context(), id, req.ToCommand()); err != nil {
		if isNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Blog post not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Update failed", nil)
		return
	}

	view, err := h.q.GetBlog(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load blog", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlogView(view))
}

// @Summary Delete blog post
// @Tags blogs
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.DeleteBlog(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Blog post not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
