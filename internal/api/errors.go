package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/coach-app/internal/service"
)

// handleServiceError maps service sentinels to the API error contract.
// Ownership failures and missing parents both come back as 403 so a
// caller probing foreign IDs cannot tell "not yours" from "not there".
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, service.ErrProgramNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusForbidden, MsgAccessDenied)
	case errors.Is(err, service.ErrAthleteNotFound):
		abortWithDetails(c, gin.H{"athleteId": "utilisateur introuvable"})
	case errors.Is(err, service.ErrAthleteIsCoach):
		abortWithDetails(c, gin.H{"athleteId": "l'utilisateur ciblé est un coach"})
	case errors.Is(err, service.ErrLibraryEntryNotFound):
		abortWithDetails(c, gin.H{"libraryId": "entrée de catalogue introuvable"})
	default:
		log.Printf("Service error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, MsgServerError)
	}
}

func abortWithDetails(c *gin.Context, details gin.H) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": MsgInvalidData, "details": details})
}

// callerID reads the authenticated user's ObjectID out of the context.
// A failure here means the auth middleware did not run; treat as 500.
func callerID(c *gin.Context) (primitive.ObjectID, bool) {
	idStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, MsgServerError)
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, MsgServerError)
		return primitive.NilObjectID, false
	}
	return id, true
}

// pathID parses an ObjectID path parameter; malformed IDs are a 400.
func pathID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		abortWithDetails(c, gin.H{param: "identifiant invalide"})
		return primitive.NilObjectID, false
	}
	return id, true
}
