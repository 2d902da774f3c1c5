package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/coach-app/internal/service"
)

// ExerciseHandler handles exercise CRUD under a session, plus the
// read-only exercise library.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

type createExerciseRequest struct {
	Name      string   `json:"name" binding:"required_without=LibraryID,omitempty,min=2,max=100"`
	Sets      FlexInt  `json:"sets" binding:"required,min=1,max=10"`
	Reps      FlexInt  `json:"reps" binding:"required,min=1,max=50"`
	RPE       *FlexInt `json:"rpe" binding:"omitempty,min=1,max=10"`
	RestSec   *FlexInt `json:"restSeconds" binding:"omitempty,min=0,max=600"`
	Notes     string   `json:"notes" binding:"omitempty,max=2000"`
	Order     FlexInt  `json:"order" binding:"required,min=1"`
	LibraryID string   `json:"libraryId" binding:"omitempty,len=24"`
}

type updateExerciseRequest struct {
	Name    *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Sets    *FlexInt `json:"sets" binding:"omitempty,min=1,max=10"`
	Reps    *FlexInt `json:"reps" binding:"omitempty,min=1,max=50"`
	RPE     *FlexInt `json:"rpe" binding:"omitempty,min=1,max=10"`
	RestSec *FlexInt `json:"restSeconds" binding:"omitempty,min=0,max=600"`
	Notes   *string  `json:"notes" binding:"omitempty,max=2000"`
	Order   *FlexInt `json:"order" binding:"omitempty,min=1"`
}

// ListForSession handles GET /trainings/:sessionId/exercises
func (h *ExerciseHandler) ListForSession(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := make([]ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		resp = append(resp, MapExerciseToResponse(&exercises[i]))
	}
	c.JSON(http.StatusOK, gin.H{"exercises": resp})
}

// CreateForSession handles POST /trainings/:sessionId/exercises
func (h *ExerciseHandler) CreateForSession(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	var req createExerciseRequest
	if !bindJSON(c, &req) {
		return
	}

	input := service.ExerciseInput{
		Name:    req.Name,
		Sets:    req.Sets.Int(),
		Reps:    req.Reps.Int(),
		RPE:     req.RPE.IntPtr(),
		RestSec: req.RestSec.IntPtr(),
		Notes:   req.Notes,
		Order:   req.Order.Int(),
	}
	if req.LibraryID != "" {
		libID, err := primitive.ObjectIDFromHex(req.LibraryID)
		if err != nil {
			abortWithDetails(c, gin.H{"libraryId": "identifiant invalide"})
			return
		}
		input.LibraryID = &libID
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), coachID, sessionID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Exercice créé avec succès",
		"exercise": MapExerciseToResponse(exercise),
	})
}

// Update handles PUT /trainings/:sessionId/exercises/:exerciseId
func (h *ExerciseHandler) Update(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	exerciseID, ok := pathID(c, "exerciseId")
	if !ok {
		return
	}

	var req updateExerciseRequest
	if !bindJSON(c, &req) {
		return
	}

	update := service.ExerciseUpdate{
		Name:    req.Name,
		Sets:    req.Sets.IntPtr(),
		Reps:    req.Reps.IntPtr(),
		RPE:     req.RPE.IntPtr(),
		RestSec: req.RestSec.IntPtr(),
		Notes:   req.Notes,
		Order:   req.Order.IntPtr(),
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), coachID, exerciseID, update)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise": MapExerciseToResponse(exercise)})
}

// Delete handles DELETE /trainings/:sessionId/exercises/:exerciseId
func (h *ExerciseHandler) Delete(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	exerciseID, ok := pathID(c, "exerciseId")
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), coachID, exerciseID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercice supprimé avec succès"})
}

// ListLibrary handles GET /library
func (h *ExerciseHandler) ListLibrary(c *gin.Context) {
	entries, err := h.exerciseService.ListLibrary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := make([]LibraryExerciseResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, MapLibraryExerciseToResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"library": resp})
}
