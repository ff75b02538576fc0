package handler

import (
	"encoding/json"
	"fmt"
	"gamesite/internal/core"
	"gamesite/internal/http/handler/middleware"
	"gamesite/internal/http/payload"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const (
	Health   = "GET /health"
	Register = "POST /register"
	Confirm  = "POST /confirm"
	Login    = "POST /login"
)

const msgInvalidRequest = "Invalid request"

var confirmedPage = template.Must(template.New("confirmed").Parse(
	`<h2>{{.}}</h2>
<a href="/">Go Home</a>
`))

type AccountHandler struct {
	logs     *zap.SugaredLogger
	decoder  RequestDecoder
	accounts AccountService
}

func NewAccountHandler(logger *zap.SugaredLogger, decoder RequestDecoder, accounts AccountService) *AccountHandler {
	return &AccountHandler{
		logs:     logger,
		decoder:  decoder,
		accounts: accounts,
	}
}

func (h *AccountHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respondText(w, "OK", http.StatusOK, requestID(r))
}

// HandleRegister creates an account. Browsers posting the form are redirected to the confirm page,
// API clients get a text answer.
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	isForm := payload.IsForm(r)

	var req payload.RegisterRequest
	if err := h.decoder.DecodePayload(r, &req); err != nil {
		h.respondText(w, msgInvalidRequest, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	registration, err := h.accounts.Register(r.Context(), req.ToMessage())
	if err != nil {
		code := http.StatusOK
		switch core.KindOf(err) {
		case core.KindValidation:
			code = http.StatusBadRequest
		case core.KindDependency:
			code = http.StatusInternalServerError
			h.logs.Errorw("registration failed",
				"error", err,
				"handler", Register,
				"request_id", requestId)
		}
		h.respondText(w, userMessage(err), code, requestId)
		return
	}

	if isForm {
		query := url.Values{"email": {registration.Email}}
		if !registration.Delivered {
			query.Set("code", registration.Code)
		}
		http.Redirect(w, r, "/confirm?"+query.Encode(), http.StatusSeeOther)
		return
	}

	text := msgCheckEmail
	if !registration.Delivered {
		text = fmt.Sprintf(msgCodeInBandPattern, registration.Code)
	}
	h.respondText(w, text, http.StatusOK, requestId)
}

// HandleConfirm confirms an account. A miss is not a transport error and is answered with 200.
func (h *AccountHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	isForm := payload.IsForm(r)

	var req payload.ConfirmRequest
	if err := h.decoder.DecodePayload(r, &req); err != nil {
		h.respondText(w, msgInvalidRequest, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Confirm,
			"request_id", requestId)
		return
	}

	err := h.accounts.Confirm(r.Context(), req.ToMessage())
	if err != nil {
		code := http.StatusOK
		if core.KindOf(err) == core.KindDependency {
			code = http.StatusInternalServerError
			h.logs.Errorw("confirmation failed",
				"error", err,
				"handler", Confirm,
				"request_id", requestId)
		}
		h.respondText(w, userMessage(err), code, requestId)
		return
	}

	if isForm {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err = confirmedPage.Execute(w, msgAccountConfirmed); err != nil {
			h.logs.Errorw("failed to render confirmation page",
				"error", err,
				"request_id", requestId)
		}
		return
	}

	h.respondText(w, msgAccountConfirmed, http.StatusOK, requestId)
}

// HandleLogin answers the game client. Every account outcome is a 200 with success set accordingly;
// only dependency failures change the status code.
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	if err := h.decoder.DecodePayload(r, &req); err != nil {
		h.respond(w, LoginResponse{
			Success: false,
			Message: msgInvalidRequest,
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	err := h.accounts.Login(r.Context(), req.ToMessage())
	if err != nil {
		code := http.StatusOK
		if core.KindOf(err) == core.KindDependency {
			code = http.StatusInternalServerError
			h.logs.Errorw("login failed",
				"error", err,
				"handler", Login,
				"request_id", requestId)
		}
		h.respond(w, LoginResponse{
			Success: false,
			Message: userMessage(err),
		}, code, requestId)
		return
	}

	h.respond(w, LoginResponse{
		Success: true,
		Message: msgLoginSuccessful,
	}, http.StatusOK, requestId)
}

func (h *AccountHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *AccountHandler) respondText(w http.ResponseWriter, text string, code int, requestId string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)

	if _, err := w.Write([]byte(text)); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
