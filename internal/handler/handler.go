package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pfleegoree/planit/internal/domain"
	"github.com/pfleegoree/planit/internal/dto"
	"github.com/pfleegoree/planit/internal/service"
)

type Handler struct {
	eventService service.EventServicer
	router       *gin.Engine
	log          *zap.Logger
}

func NewHandler(eventService service.EventServicer, log *zap.Logger) *Handler {
	h := &Handler{
		eventService: eventService,
		router:       gin.Default(),
		log:          log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.Use(requestID())

	h.router.GET("/health", h.healthCheck)
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := h.router.Group("/api")
	api.GET("/events", h.listEvents)
	api.GET("/fetch-events", h.fetchEvents)
	api.POST("/admin/fetch-events", h.adminFetchEvents)
}

// requestID tags every response with an X-Request-Id, generating one
// when the caller didn't send one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// listEvents handles GET /api/events
// @Summary List stored events
// @Description List events with optional repeatable category and genre filters
// @Tags events
// @Produce json
// @Param category query []string false "Category filter (repeatable; 'All' means no filter)"
// @Param genre query []string false "Genre filter (repeatable)"
// @Success 200 {array} domain.Event
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/events [get]
func (h *Handler) listEvents(c *gin.Context) {
	var req dto.ListEventsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid events request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	events, err := h.eventService.ListEvents(&req)
	if err != nil {
		h.log.Error("Failed to list events",
			zap.Error(err),
			zap.Strings("categories", req.Categories),
			zap.Strings("genres", req.Genres))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	if events == nil {
		events = []domain.Event{}
	}

	c.JSON(http.StatusOK, events)
}

// fetchEvents handles GET /api/fetch-events
// @Summary Trigger a Ticketmaster fetch
// @Description Synchronously run one ingestion cycle; the acknowledgement is fixed regardless of the provider outcome
// @Tags events
// @Produce plain
// @Success 200 {string} string "Ticketmaster fetch triggered"
// @Router /api/fetch-events [get]
func (h *Handler) fetchEvents(c *gin.Context) {
	h.eventService.TriggerFetch()
	c.String(http.StatusOK, "Ticketmaster fetch triggered")
}

// adminFetchEvents handles POST /api/admin/fetch-events
// @Summary Trigger a Ticketmaster fetch (admin)
// @Description Synchronously run one ingestion cycle
// @Tags admin
// @Produce json
// @Success 200 {object} dto.FetchTriggeredResponse
// @Router /api/admin/fetch-events [post]
func (h *Handler) adminFetchEvents(c *gin.Context) {
	h.eventService.TriggerFetch()
	c.JSON(http.StatusOK, dto.FetchTriggeredResponse{Status: "ok"})
}
