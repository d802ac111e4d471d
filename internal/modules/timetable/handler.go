package timetable

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"roomhub/internal/domain"
	"roomhub/internal/pkg/response"
	"roomhub/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/organizations/:id/timetable", h.WeekView)
	rg.GET("/organizations/:id/conflicts", h.Conflicts)
	rg.GET("/organizations/:id/timetable/live", h.Live)
}

func (h *Handler) WeekView(c *gin.Context) {
	orgID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid organization id")
		return
	}
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	view, err := h.service.WeekView(c.Request.Context(), actorID(c), actorRole(c), orgID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Conflicts(c *gin.Context) {
	orgID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid organization id")
		return
	}
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	groups, err := h.service.Conflicts(c.Request.Context(), actorID(c), actorRole(c), orgID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"conflicts": groups})
}

// Live upgrades to a websocket and streams booking changes for the
// organization until the client goes away.
func (h *Handler) Live(c *gin.Context) {
	orgID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid organization id")
		return
	}
	if err := h.service.Authorize(c.Request.Context(), actorID(c), actorRole(c), orgID); err != nil {
		writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.hub.Register(orgID, conn)

	go func() {
		defer h.hub.Unregister(orgID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func actorID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

func actorRole(c *gin.Context) domain.UserRole {
	return domain.UserRole(c.GetString("role"))
}

func writeError(c *gin.Context, err error) {
	var schedErr *schedule.Error
	if errors.As(err, &schedErr) {
		response.Error(c, http.StatusBadRequest, string(schedErr.Kind), schedErr.Error())
		return
	}
	switch {
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed to view this organization")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Organization not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
	}
}
