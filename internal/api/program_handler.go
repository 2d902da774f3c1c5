package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/service"
)

// ProgramHandler handles program CRUD, publication and image uploads.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

type createProgramRequest struct {
	Name            string  `json:"name" binding:"required,min=2,max=100"`
	Description     string  `json:"description" binding:"required,min=10,max=2000"`
	Type            string  `json:"type" binding:"required,oneof=Cardio Hypertrophie Force Endurance Mixte"`
	Level           string  `json:"level" binding:"required,oneof=Débutant Intermédiaire Avancé"`
	DurationWeeks   FlexInt `json:"durationWeeks" binding:"required,min=1,max=52"`
	SessionsPerWeek FlexInt `json:"sessionsPerWeek" binding:"required,min=1,max=7"`
	Status          string  `json:"status" binding:"omitempty,oneof=draft published"`
	ImageURL        *string `json:"imageUrl" binding:"omitempty,url"`
}

type updateProgramRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Description     *string  `json:"description" binding:"omitempty,min=10,max=2000"`
	Type            *string  `json:"type" binding:"omitempty,oneof=Cardio Hypertrophie Force Endurance Mixte"`
	Level           *string  `json:"level" binding:"omitempty,oneof=Débutant Intermédiaire Avancé"`
	DurationWeeks   *FlexInt `json:"durationWeeks" binding:"omitempty,min=1,max=52"`
	SessionsPerWeek *FlexInt `json:"sessionsPerWeek" binding:"omitempty,min=1,max=7"`
	Status          *string  `json:"status" binding:"omitempty,oneof=draft published"`

	// An explicit empty string clears the cover image.
	ImageURL *string `json:"imageUrl"`
}

type imageUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// List handles GET /programs
func (h *ProgramHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	isCoach, err := getIsCoachFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, MsgServerError)
		return
	}

	programs, err := h.programService.ListPrograms(c.Request.Context(), userID, isCoach)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := make([]ProgramResponse, 0, len(programs))
	for i := range programs {
		resp = append(resp, MapProgramToResponse(&programs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"programs": resp})
}

// Create handles POST /programs
func (h *ProgramHandler) Create(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}

	var req createProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	input := service.ProgramInput{
		Name:            req.Name,
		Description:     req.Description,
		Type:            domain.ProgramType(req.Type),
		Level:           domain.ProgramLevel(req.Level),
		DurationWeeks:   req.DurationWeeks.Int(),
		SessionsPerWeek: req.SessionsPerWeek.Int(),
		Status:          domain.ProgramStatus(req.Status),
		ImageURL:        req.ImageURL,
	}
	program, err := h.programService.CreateProgram(c.Request.Context(), coachID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Programme créé avec succès",
		"program": MapProgramToResponse(program),
	})
}

// Get handles GET /programs/:programId
func (h *ProgramHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	isCoach, err := getIsCoachFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, MsgServerError)
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	program, err := h.programService.GetProgram(c.Request.Context(), userID, isCoach, programID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": MapProgramToResponse(program)})
}

// Update handles PUT /programs/:programId
func (h *ProgramHandler) Update(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	var req updateProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	update := service.ProgramUpdate{
		Name:            req.Name,
		Description:     req.Description,
		DurationWeeks:   req.DurationWeeks.IntPtr(),
		SessionsPerWeek: req.SessionsPerWeek.IntPtr(),
		ImageURL:        req.ImageURL,
	}
	if req.Type != nil {
		t := domain.ProgramType(*req.Type)
		update.Type = &t
	}
	if req.Level != nil {
		l := domain.ProgramLevel(*req.Level)
		update.Level = &l
	}
	if req.Status != nil {
		s := domain.ProgramStatus(*req.Status)
		update.Status = &s
	}

	program, err := h.programService.UpdateProgram(c.Request.Context(), coachID, programID, update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": MapProgramToResponse(program)})
}

// Delete handles DELETE /programs/:programId
func (h *ProgramHandler) Delete(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	if err := h.programService.DeleteProgram(c.Request.Context(), coachID, programID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Programme supprimé avec succès"})
}

// Publish handles POST /programs/:programId/publish
func (h *ProgramHandler) Publish(c *gin.Context) {
	h.setStatus(c, domain.StatusPublished)
}

// Unpublish handles POST /programs/:programId/unpublish
func (h *ProgramHandler) Unpublish(c *gin.Context) {
	h.setStatus(c, domain.StatusDraft)
}

func (h *ProgramHandler) setStatus(c *gin.Context, status domain.ProgramStatus) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	program, err := h.programService.SetProgramStatus(c.Request.Context(), coachID, programID, status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": MapProgramToResponse(program)})
}

// ImageUploadURL handles POST /programs/:programId/image-upload-url
func (h *ProgramHandler) ImageUploadURL(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	var req imageUploadRequest
	if !bindJSON(c, &req) {
		return
	}

	upload, err := h.programService.ImageUploadURL(c.Request.Context(), coachID, programID, req.ContentType)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"uploadUrl": upload.UploadURL,
		"imageUrl":  upload.ImageURL,
	})
}

// Image handles GET /files/programs/:imageId by redirecting to a
// freshly presigned S3 download URL. Cover images are served from
// here so the imageUrl stored on a program never expires.
func (h *ProgramHandler) Image(c *gin.Context) {
	url, err := h.programService.ImageDownloadURL(c.Request.Context(), c.Param("imageId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}
