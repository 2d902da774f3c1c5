package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/coach-app/internal/service"
)

// AssignmentHandler handles program-to-athlete assignments.
type AssignmentHandler struct {
	assignmentService service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

type createAssignmentRequest struct {
	AthleteID string     `json:"athleteId" binding:"required,len=24"`
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate"`
}

// Create handles POST /programs/:programId/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	var req createAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}

	athleteID, err := primitive.ObjectIDFromHex(req.AthleteID)
	if err != nil {
		abortWithDetails(c, gin.H{"athleteId": "identifiant invalide"})
		return
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		abortWithDetails(c, gin.H{"endDate": "doit être après la date de début"})
		return
	}

	assignment, err := h.assignmentService.AssignProgram(c.Request.Context(), coachID, programID, athleteID, req.StartDate, req.EndDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Programme assigné avec succès",
		"assignment": MapAssignmentToResponse(assignment),
	})
}

// ListMine handles GET /assignments: the caller's assignments with
// their programs resolved. Athletes see their active assignments,
// coaches the assignments they created.
func (h *AssignmentHandler) ListMine(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	isCoach, err := getIsCoachFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, MsgServerError)
		return
	}

	assignments, err := h.assignmentService.ListForUser(c.Request.Context(), userID, isCoach)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		resp = append(resp, MapAssignmentWithProgramToResponse(&assignments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"assignments": resp})
}

// Deactivate handles DELETE /assignments/:assignmentId
func (h *AssignmentHandler) Deactivate(c *gin.Context) {
	coachID, ok := callerID(c)
	if !ok {
		return
	}
	assignmentID, ok := pathID(c, "assignmentId")
	if !ok {
		return
	}

	if err := h.assignmentService.DeactivateAssignment(c.Request.Context(), coachID, assignmentID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignation désactivée avec succès"})
}
