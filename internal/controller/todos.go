package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"todo-api/internal/cache"
	"todo-api/internal/models"
	"todo-api/internal/store"
	"todo-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

// Handler serves the todo CRUD and generation endpoints.
type Handler struct {
	store     *store.Memory
	cache     *cache.ListCache
	gen       Generator
	listGroup singleflight.Group
}

// New returns a Handler over the given store, list cache and generator.
func New(st *store.Memory, c *cache.ListCache, g Generator) *Handler {
	return &Handler{store: st, cache: c, gen: g}
}

// Health returns 200 if the process is alive. Used by load balancers.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ListTodos returns todos as JSON, cache-first as raw bytes.
// Supports ?limit=N for a smaller payload (limited reads bypass the cache).
func (h *Handler) ListTodos(c *gin.Context) {
	ctx := c.Request.Context()
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	if limit > 0 {
		todos := h.store.List(limit)
		c.JSON(http.StatusOK, todos)
		return
	}

	if b, ok := h.cache.Get(); ok {
		c.Data(http.StatusOK, "application/json", b)
		return
	}
	v, err, _ := h.listGroup.Do("todos", func() (interface{}, error) {
		todos := h.store.List(0)
		return json.Marshal(todos)
	})
	if err != nil {
		logger.Error(ctx, "ListTodos marshal failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get todos"})
		return
	}
	b := v.([]byte)
	h.cache.Set(b)
	c.Data(http.StatusOK, "application/json", b)
}

// GetTodo returns a single todo by id.
func (h *Handler) GetTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	t, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTodo validates the body and appends a new todo.
func (h *Handler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	var body struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		Status      string     `json:"status"`
		Deadline    *time.Time `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	status := models.StatusPending
	if body.Status != "" {
		status = models.Status(body.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of: pending, in-progress, completed"})
			return
		}
	}
	t := h.store.Create(body.Title, body.Description, status, body.Deadline)
	h.cache.Invalidate()
	logger.Debug(ctx, "Todo created", "id", t.ID)
	c.JSON(http.StatusCreated, t)
}

// UpdateTodo applies a partial update to a todo.
func (h *Handler) UpdateTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	var body struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Status      *string    `json:"status"`
		Deadline    *time.Time `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	var status *models.Status
	if body.Status != nil {
		s := models.Status(*body.Status)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of: pending, in-progress, completed"})
			return
		}
		status = &s
	}
	t, err := h.store.Update(id, body.Title, body.Description, status, body.Deadline)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}
	h.cache.Invalidate()
	c.JSON(http.StatusOK, t)
}

// DeleteTodo removes a todo by id.
func (h *Handler) DeleteTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	if err := h.store.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	h.cache.Invalidate()
	c.Status(http.StatusNoContent)
}

func todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo id"})
		return 0, false
	}
	return id, true
}
