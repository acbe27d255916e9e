package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"todo-api/internal/generator"
	"todo-api/internal/models"
	"todo-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Generator is the synthesis contract the handler depends on.
type Generator interface {
	Generate(req generator.Request, ids generator.IDSource) ([]models.Todo, error)
	Info() generator.Info
}

// GenerateTodos synthesizes sample todos and appends them to the store.
// An empty body is a valid request and produces one todo with defaults.
func (h *Handler) GenerateTodos(c *gin.Context) {
	ctx := c.Request.Context()
	var req generator.Request
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": bindErrorMessage(err)})
		return
	}
	todos, err := h.gen.Generate(req, h.store)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	h.store.AppendAll(todos)
	h.cache.Invalidate()
	logger.Info(ctx, "Generated sample todos", "count", len(todos))
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": fmt.Sprintf("Generated %d todos", len(todos)),
		"count":   len(todos),
		"data":    todos,
	})
}

// GenerationInfo reports the generator's static capabilities.
func (h *Handler) GenerationInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.gen.Info())
}

// bindErrorMessage translates JSON type errors on generation fields into the
// validator's own messages, so clients see one vocabulary for bad input.
func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[:i]
		}
		if msg := generator.MessageForField(field); msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}
