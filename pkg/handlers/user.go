package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/token"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/user"
)

type RegisterForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Pic      string `json:"pic"`
}

func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required, validation.Length(6, 0)),
	)
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	)
}

type UserHandler struct {
	Service user.ServiceInterface
	Logger  *slog.Logger
}

func NewUserHandler(service user.ServiceInterface, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if err := req.Validate(); err != nil {
		writeFieldErrors(w, h.Logger, err, map[string]string{
			"username": req.Username,
			"email":    req.Email,
		})
		return
	}

	u, err := h.Service.Register(req.Username, req.Email, req.Password, req.Pic)
	if err != nil {
		if errors.Is(err, user.ErrAlreadyExists) {
			writeError(w, http.StatusBadRequest, typeMsg, "User already exists")
			return
		}
		h.Logger.Error("register", "error", err.Error())
		writeError(w, http.StatusInternalServerError, typeMsg, "Server error")
		return
	}

	if ok := WriteResp(w, h.Logger, map[string]any{
		typeMsg: "User registered successfully",
	}, http.StatusCreated); ok {
		h.Logger.Info("register", "user", u.ID)
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if err := req.Validate(); err != nil {
		writeFieldErrors(w, h.Logger, err, map[string]string{"email": req.Email})
		return
	}

	u, tokenString, sessionID, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, typeMsg, "Invalid credentials")
			return
		}
		h.Logger.Error("login", "error", err.Error())
		writeError(w, http.StatusInternalServerError, typeMsg, "Server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     token.CookieName,
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})

	if ok := WriteResp(w, h.Logger, map[string]any{"token": tokenString}, http.StatusOK); ok {
		h.Logger.Info("login", "user", u.ID)
	}
}

// Logout extracts its own token with the same cookie-then-bearer precedence
// as the auth middleware; the endpoint itself is not behind it, since a
// missing token here is a 400, not a 401.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	raw := token.FromRequest(r)
	if raw == "" {
		writeError(w, http.StatusBadRequest, typeMsg, "No token provided")
		return
	}

	var sessionID string
	if c, err := r.Cookie(sessionCookieName); err == nil {
		sessionID = c.Value
	}

	if err := h.Service.Logout(raw, sessionID); err != nil {
		h.Logger.Error("logout", "error", err.Error())
		writeError(w, http.StatusInternalServerError, typeMsg, "Unable to log out")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     token.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	WriteResp(w, h.Logger, map[string]any{typeMsg: "Logged out successfully"}, http.StatusOK)
}

func writeFieldErrors(w http.ResponseWriter, logger *slog.Logger, err error, values map[string]string) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	params := make([]string, 0, len(verrs))
	for param := range verrs {
		params = append(params, param)
	}
	sort.Strings(params)

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, param := range params {
		fieldErrors = append(fieldErrors, FieldError{
			Location: "body",
			Param:    param,
			Value:    values[param],
			Msg:      verrs[param].Error(),
		})
	}

	WriteResp(w, logger, map[string]any{"errors": fieldErrors}, http.StatusBadRequest)
}
