package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/auth"
	"github.com/ems-suite/ems-backend-go/internal/domain/dashboard"
	"github.com/ems-suite/ems-backend-go/internal/domain/user"
	"github.com/ems-suite/ems-backend-go/internal/handler/http/response"
	"github.com/ems-suite/ems-backend-go/internal/pkg/jwt"
	"github.com/ems-suite/ems-backend-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardHandler interface {
	AdminSummary(w http.ResponseWriter, r *http.Request)
	MySummary(w http.ResponseWriter, r *http.Request)
	GetEventToken(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	jwtService       jwt.Service
	hub              *sse.Hub
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, jwtService jwt.Service, hub *sse.Hub) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
		jwtService:       jwtService,
		hub:              hub,
	}
}

// AdminSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) AdminSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAdminSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MySummary implements DashboardHandler.
func (h *DashboardHandlerImpl) MySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetMySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEventToken generates a short-lived token for the event stream
func (h *DashboardHandlerImpl) GetEventToken(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	role, _ := claims["role"].(string)

	token, expiresIn, err := h.jwtService.GenerateEventToken(userID, user.Role(role))
	if err != nil {
		response.InternalServerError(w, "Failed to generate event token")
		return
	}

	response.Success(w, auth.EventTokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Events handles the SSE connection for live dashboard updates. EventSource
// cannot set an Authorization header, so the short-lived token travels as a
// query parameter.
func (h *DashboardHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, role, err := h.jwtService.ValidateEventToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	if role != user.RoleAdmin {
		http.Error(w, "Admin privilege required", http.StatusForbidden)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":\"%s\"}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
