package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"onlinetracker/pkg/presence"
)

const (
	codeOK   = 0
	codeFail = -1

	msgSuccess          = "success"
	msgLoginSuccess     = "login success"
	msgHeartbeatSuccess = "heartbeat success"
	msgLogoutSuccess    = "logout success"
	msgInvalidSession   = "invalid session"
	msgInvalidRequest   = "invalid request"
	msgUserIDRequired   = "user_id is required"
	msgSessionRequired  = "session_id is required"
)

// Envelope is the legacy response contract: HTTP status stays 200 and
// code carries success (0) or failure (-1).
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type LoginForm struct {
	UserID string `json:"user_id"`
}

type SessionForm struct {
	SessionID string `json:"session_id"`
}

type OnlineHandler struct {
	Service presence.ServiceInterface
	Logger  *slog.Logger
}

func NewOnlineHandler(service presence.ServiceInterface, logger *slog.Logger) *OnlineHandler {
	return &OnlineHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *OnlineHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.Logger, Envelope{
		Code:    codeOK,
		Message: msgSuccess,
		Data: map[string]any{
			"online_count": h.Service.Count(),
			"timestamp":    time.Now().UnixMilli(),
		},
	})
}

func (h *OnlineHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users := h.Service.ListUsers()
	writeEnvelope(w, h.Logger, Envelope{
		Code:    codeOK,
		Message: msgSuccess,
		Data: map[string]any{
			"users": users,
			"count": len(users),
		},
	})
}

func (h *OnlineHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req LoginForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("login", "error", err)
		writeEnvelope(w, h.Logger, Envelope{Code: codeFail, Message: err.Error()})
		return
	}
	if req.UserID == "" {
		writeEnvelope(w, h.Logger, Envelope{Code: codeFail, Message: msgUserIDRequired})
		return
	}

	sessionID, err := h.Service.Login(req.UserID)
	if err != nil {
		writeEnvelope(w, h.Logger, Envelope{Code: codeFail, Message: err.Error()})
		return
	}

	if ok := writeEnvelope(w, h.Logger, Envelope{
		Code:    codeOK,
		Message: msgLoginSuccess,
		Data: map[string]any{
			"session_id":   sessionID,
			"online_count": h.Service.Count(),
		},
	}); ok {
		h.Logger.Info("login", "user", req.UserID)
	}
}

func (h *OnlineHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSessionForm(w, r, h.Logger)
	if !ok {
		return
	}

	code, msg := codeOK, msgHeartbeatSuccess
	if !h.Service.Heartbeat(req.SessionID) {
		code, msg = codeFail, msgInvalidSession
	}

	writeEnvelope(w, h.Logger, Envelope{
		Code:    code,
		Message: msg,
		Data: map[string]any{
			"online_count": h.Service.Count(),
		},
	})
}

func (h *OnlineHandler) Logout(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSessionForm(w, r, h.Logger)
	if !ok {
		return
	}

	h.Service.Logout(req.SessionID)

	if ok := writeEnvelope(w, h.Logger, Envelope{Code: codeOK, Message: msgLogoutSuccess}); ok {
		h.Logger.Info("logout", "session", req.SessionID)
	}
}

func (h *OnlineHandler) Validate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSessionForm(w, r, h.Logger)
	if !ok {
		return
	}

	writeEnvelope(w, h.Logger, Envelope{
		Code:    codeOK,
		Message: msgSuccess,
		Data: map[string]any{
			"valid": h.Service.Validate(req.SessionID),
		},
	})
}

// Health is the one endpoint outside the envelope contract.
func (h *OnlineHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	body := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UnixMilli(),
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Logger.Error("failed to write health response", "error", err)
	}
}

func decodeSessionForm(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (SessionForm, bool) {
	defer r.Body.Close()

	var req SessionForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("bad json", "error", err)
		writeEnvelope(w, logger, Envelope{Code: codeFail, Message: msgInvalidRequest})
		return req, false
	}
	if req.SessionID == "" {
		writeEnvelope(w, logger, Envelope{Code: codeFail, Message: msgSessionRequired})
		return req, false
	}
	return req, true
}

func writeEnvelope(w http.ResponseWriter, logger *slog.Logger, env Envelope) bool {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}
