package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-builder-backend/internal/shared/server/respond"
)

// Client-facing message strings. The web client matches on these, so they are
// part of the contract.
const (
	msgRegistered       = "Зарегистрирован новый пользователь"
	msgBadRegisterInput = "Некорректные данные при регистрации"
	msgBadLoginInput    = "Некорректные данные при авторизации"
	msgDuplicateUser    = "Такой пользователь уже существует"
	msgPasswordMismatch = "Пароли не совпадают"
	msgUserNotFound     = "Пользователь не найден"
	msgWrongPassword    = "Неверный пароль, попробуйте снова"
	msgBadEmail         = "Некорректный email"
	msgPasswordTooShort = "Минимальная длина пароля 6 символов"
	msgPasswordRequired = "Введите пароль"
)

// Handler wires the auth endpoints to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the auth routes to the engine root.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/registration", h.registration)
	r.POST("/login", h.login)
}

type registrationRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password"`
	RPassword string `json:"rpassword"`
}

func (h *Handler) registration(c *gin.Context) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := fieldErrors(err, false)
		if details == nil {
			respond.ServerError(c, err)
			return
		}
		respond.ValidationFailed(c, msgBadRegisterInput, details)
		return
	}

	_, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.RPassword)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordTooShort):
			respond.ValidationFailed(c, msgBadRegisterInput, []respond.FieldError{
				{Msg: msgPasswordTooShort, Param: "password"},
			})
		case errors.Is(err, ErrDuplicateUser):
			respond.Fail(c, http.StatusBadRequest, msgDuplicateUser)
		case errors.Is(err, ErrPasswordMismatch):
			respond.Fail(c, http.StatusBadRequest, msgPasswordMismatch)
		default:
			respond.ServerError(c, err)
		}
		return
	}

	respond.Message(c, http.StatusCreated, msgRegistered)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := fieldErrors(err, true)
		if details == nil {
			respond.ServerError(c, err)
			return
		}
		respond.ValidationFailed(c, msgBadLoginInput, details)
		return
	}
	if len(req.Password) < h.Svc.MinPasswordLen {
		respond.ValidationFailed(c, msgBadLoginInput, []respond.FieldError{
			{Msg: msgPasswordTooShort, Param: "password"},
		})
		return
	}

	user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Fail(c, http.StatusBadRequest, msgUserNotFound)
		case errors.Is(err, ErrInvalidCredentials):
			respond.Fail(c, http.StatusBadRequest, msgWrongPassword)
		default:
			respond.ServerError(c, err)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"user": user})
}

// fieldErrors converts validator failures to the client's field-level error
// shape. It returns nil for non-validation errors (malformed JSON and the
// like), which callers treat as a generic server fault.
func fieldErrors(err error, passwordRequired bool) []respond.FieldError {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return nil
	}
	var out []respond.FieldError
	for _, fe := range verr {
		switch fe.Field() {
		case "Email":
			out = append(out, respond.FieldError{Msg: msgBadEmail, Param: "email"})
		case "Password":
			if passwordRequired {
				out = append(out, respond.FieldError{Msg: msgPasswordRequired, Param: "password"})
			} else {
				out = append(out, respond.FieldError{Msg: msgPasswordTooShort, Param: "password"})
			}
		}
	}
	return out
}
