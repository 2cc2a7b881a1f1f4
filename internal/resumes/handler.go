package resumes

import (
	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
)

// Success bodies are bare JSON strings, which is what the web client expects.
const (
	msgCreated = "Резюме создано"
	msgSaved   = "Резюме сохранено"
	msgDeleted = "Резюме удалено"
)

// Handler wires the resume endpoints to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the resume routes to the engine root. The trailing
// slashes match the paths the client calls.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/dashboard/", h.dashboard)
	r.POST("/editor/", h.editor)
	r.POST("/save/", h.save)
	r.POST("/delete/", h.remove)
}

// dashboard lists the claimed owner's resumes.
func (h *Handler) dashboard(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	list, err := h.Svc.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respond.ServerError(c, err)
		return
	}
	respond.Created(c, list)
}

// editor creates a default resume for the claimed owner and hands its id back
// in a cookie for the save flow.
func (h *Handler) editor(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.Create(c.Request.Context(), ownerID)
	if err != nil {
		respond.ServerError(c, err)
		return
	}
	c.SetCookie(middleware.ResumeCookie, resume.ID, 0, "/", "", false, false)
	respond.Created(c, msgCreated)
}

type saveRequest struct {
	Params struct {
		ResumeBase ResumeBase `json:"resumeBase"`
		ResumeData ResumeData `json:"resumeData"`
	} `json:"params"`
}

func (h *Handler) save(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	resumeID := middleware.ResumeIDFromContext(c)

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.ServerError(c, err)
		return
	}

	if err := h.Svc.Save(c.Request.Context(), ownerID, resumeID, req.Params.ResumeBase, req.Params.ResumeData); err != nil {
		respond.ServerError(c, err)
		return
	}
	respond.Created(c, msgSaved)
}

type deleteRequest struct {
	Params struct {
		UserID   string `json:"userId"`
		ResumeID string `json:"resumeId"`
	} `json:"params"`
}

func (h *Handler) remove(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.ServerError(c, err)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), req.Params.UserID, req.Params.ResumeID); err != nil {
		respond.ServerError(c, err)
		return
	}
	respond.Created(c, msgDeleted)
}
