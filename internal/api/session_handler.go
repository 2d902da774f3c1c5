package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/service"
)

// SessionHandler handles training session CRUD under a program.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type createSessionRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=100"`
	WeekNumber FlexInt `json:"weekNumber" binding:"required,min=1,max=52"`
	DayNumber  FlexInt `json:"dayNumber" binding:"required,min=1,max=7"`
	Type       string  `json:"type" binding:"required,oneof=Push Pull Legs 'Full Body' Upper Lower Cardio Recovery"`
	TargetRPE  FlexInt `json:"targetRpe" binding:"required,min=1,max=10"`
	Duration   FlexInt `json:"duration" binding:"required,min=15,max=180"`
	Order      FlexInt `json:"order" binding:"required,min=1"`
	Notes      string  `json:"notes" binding:"omitempty,max=2000"`
}

type updateSessionRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=2,max=100"`
	WeekNumber *FlexInt `json:"weekNumber" binding:"omitempty,min=1,max=52"`
	DayNumber  *FlexInt `json:"dayNumber" binding:"omitempty,min=1,max=7"`
	Type       *string  `json:"type" binding:"omitempty,oneof=Push Pull Legs 'Full Body' Upper Lower Cardio Recovery"`
	TargetRPE  *FlexInt `json:"targetRpe" binding:"omitempty,min=1,max=10"`
	Duration   *FlexInt `json:"duration" binding:"omitempty,min=15,max=180"`
	Order      *FlexInt `json:"order" binding:"omitempty,min=1"`
	Notes      *string  `json:"notes" binding:"omitempty,max=2000"`
}

// ListForProgram handles GET /programs/:programId/sessions
func (h *SessionHandler) ListForProgram(c *gin.Context) {
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), programID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := make([]SessionResponse, 0, len(sessions))
	for i := range sessions {
		resp = append(resp, MapSessionToResponse(&sessions[i]))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": resp})
}

// CreateForProgram handles POST /programs/:programId/sessions
func (h *SessionHandler) CreateForProgram(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	var req createSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	input := service.SessionInput{
		Name:       req.Name,
		WeekNumber: req.WeekNumber.Int(),
		DayNumber:  req.DayNumber.Int(),
		Type:       domain.SessionType(req.Type),
		TargetRPE:  req.TargetRPE.Int(),
		Duration:   req.Duration.Int(),
		Order:      req.Order.Int(),
		Notes:      req.Notes,
	}
	session, err := h.sessionService.CreateSession(c.Request.Context(), coachID, programID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Séance créée avec succès",
		"session": MapSessionToResponse(session),
	})
}

// Get handles GET /trainings/:sessionId
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": MapSessionToResponse(session)})
}

// Update handles PUT /trainings/:sessionId
func (h *SessionHandler) Update(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	var req updateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	update := service.SessionUpdate{
		Name:       req.Name,
		WeekNumber: req.WeekNumber.IntPtr(),
		DayNumber:  req.DayNumber.IntPtr(),
		TargetRPE:  req.TargetRPE.IntPtr(),
		Duration:   req.Duration.IntPtr(),
		Order:      req.Order.IntPtr(),
		Notes:      req.Notes,
	}
	if req.Type != nil {
		t := domain.SessionType(*req.Type)
		update.Type = &t
	}

	session, err := h.sessionService.UpdateSession(c.Request.Context(), coachID, sessionID, update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": MapSessionToResponse(session)})
}

// Delete handles DELETE /trainings/:sessionId
func (h *SessionHandler) Delete(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), coachID, sessionID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Séance supprimée avec succès"})
}
