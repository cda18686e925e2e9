package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"saiyan/training-app/internal/progression"
	"saiyan/training-app/internal/service"
	"saiyan/training-app/internal/session"
)

type SessionHandler struct {
	trainingService service.TrainingService
}

func NewSessionHandler(trainingService service.TrainingService) *SessionHandler {
	return &SessionHandler{trainingService: trainingService}
}

// --- DTOs ---

type StartSessionRequest struct {
	WorkoutID string `json:"workoutId" binding:"required,uuid"`
}

type SessionResponse struct {
	WorkoutID          string              `json:"workoutId"`
	WorkoutName        string              `json:"workoutName"`
	State              string              `json:"state"` // e.g. "Resting(1, 42)"
	Phase              session.Phase       `json:"phase"`
	ExerciseIndex      int                 `json:"exerciseIndex"`
	RemainingRest      int                 `json:"remainingRest"`
	TotalExercises     int                 `json:"totalExercises"`
	CurrentExercise    *ExerciseResponse   `json:"currentExercise,omitempty"`
	NextExerciseName   string              `json:"nextExerciseName,omitempty"`
	ExercisesCompleted int                 `json:"exercisesCompleted"`
	ElapsedMinutes     int                 `json:"elapsedMinutes"`
	Result             *CompletionResponse `json:"result,omitempty"`
}

type CompletionResponse struct {
	Log            WorkoutLogResponse     `json:"log"`
	PowerLevel     int                    `json:"powerLevel"`
	StreakDays     int                    `json:"streakDays"`
	Transformation TransformationResponse `json:"transformation"`
	TierUp         bool                   `json:"tierUp"`
}

func MapSessionToResponse(v *service.SessionView) SessionResponse {
	resp := SessionResponse{
		WorkoutID:          v.WorkoutID.String(),
		WorkoutName:        v.WorkoutName,
		State:              v.State.String(),
		Phase:              v.State.Phase,
		ExerciseIndex:      v.State.ExerciseIndex,
		RemainingRest:      v.State.RemainingRest,
		TotalExercises:     v.TotalExercises,
		NextExerciseName:   v.NextExerciseName,
		ExercisesCompleted: v.ExercisesCompleted,
		ElapsedMinutes:     v.ElapsedMinutes,
	}
	if v.CurrentExercise != nil {
		ex := MapExerciseToResponse(*v.CurrentExercise)
		resp.CurrentExercise = &ex
	}
	if r := v.Result; r != nil {
		resp.Result = &CompletionResponse{
			Log:            MapWorkoutLogToResponse(r.Log),
			PowerLevel:     r.Stats.PowerLevel,
			StreakDays:     r.Stats.StreakDays,
			Transformation: MapTransformationToResponse(progression.ProgressOf(r.Stats.PowerLevel)),
			TierUp:         r.TierUp,
		}
	}
	return resp
}

// --- Handler Methods ---

func (h *SessionHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	workoutID, err := uuid.Parse(req.WorkoutID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	view, err := h.trainingService.StartSession(c.Request.Context(), workoutID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to start session.")
		return
	}
	c.JSON(http.StatusCreated, MapSessionToResponse(view))
}

func (h *SessionHandler) Get(c *gin.Context) {
	view, err := h.trainingService.Session(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to get session.")
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(view))
}

func (h *SessionHandler) CompleteExercise(c *gin.Context) {
	view, err := h.trainingService.CompleteExercise(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to complete exercise.")
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(view))
}

func (h *SessionHandler) SkipRest(c *gin.Context) {
	view, err := h.trainingService.SkipRest(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to skip rest.")
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(view))
}

// Abort discards the session. Nothing is credited.
func (h *SessionHandler) Abort(c *gin.Context) {
	if err := h.trainingService.AbortSession(c.Request.Context()); err != nil {
		abortWithServiceError(c, err, "Failed to abort session.")
		return
	}
	c.Status(http.StatusNoContent)
}
