package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/progression"
	"saiyan/training-app/internal/service"
)

type TraineeHandler struct {
	trainingService service.TrainingService
	rivalService    service.RivalService
}

func NewTraineeHandler(trainingService service.TrainingService, rivalService service.RivalService) *TraineeHandler {
	return &TraineeHandler{
		trainingService: trainingService,
		rivalService:    rivalService,
	}
}

// --- DTOs ---

type UpdateProfileRequest struct {
	Name     *string             `json:"name" binding:"omitempty,min=1"`
	HeightCm *float64            `json:"heightCm" binding:"omitempty,gt=0"`
	WeightKg *float64            `json:"weightKg" binding:"omitempty,gt=0"`
	Goal     *domain.FitnessGoal `json:"goal"`
}

type TransformationResponse struct {
	progression.Progress
	MaxTier bool `json:"maxTier"`
}

type WorkoutLogResponse struct {
	ID              string               `json:"id"`
	WorkoutID       string               `json:"workoutId"`
	WorkoutName     string               `json:"workoutName"`
	CompletedAt     time.Time            `json:"completedAt"`
	DurationMinutes int                  `json:"durationMinutes"`
	Reward          int                  `json:"reward"`
	StreakBonus     int                  `json:"streakBonus"`
	PowerGained     int                  `json:"powerGained"`
	Exercises       []domain.ExerciseLog `json:"exercises"`
}

func MapTransformationToResponse(p progression.Progress) TransformationResponse {
	return TransformationResponse{Progress: p, MaxTier: p.Tier.MaxTier()}
}

func MapWorkoutLogToResponse(l domain.WorkoutLog) WorkoutLogResponse {
	exercises := l.Exercises
	if exercises == nil {
		exercises = []domain.ExerciseLog{}
	}
	return WorkoutLogResponse{
		ID:              l.ID.String(),
		WorkoutID:       l.WorkoutID.String(),
		WorkoutName:     l.WorkoutName,
		CompletedAt:     l.CompletedAt,
		DurationMinutes: l.DurationMinutes,
		Reward:          l.Reward,
		StreakBonus:     l.StreakBonus,
		PowerGained:     l.PowerGained,
		Exercises:       exercises,
	}
}

// --- Handler Methods ---

func (h *TraineeHandler) Me(c *gin.Context) {
	overview, err := h.trainingService.Overview(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load trainee.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":        overview.Profile,
		"stats":          overview.Stats,
		"transformation": MapTransformationToResponse(overview.Progress),
	})
}

func (h *TraineeHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	profile, err := h.trainingService.UpdateProfile(c.Request.Context(), service.ProfileUpdate{
		Name:     req.Name,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
		Goal:     req.Goal,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to update profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Transformation handles GET /transformation. Without ?powerLevel the
// trainee's current power level is classified.
func (h *TraineeHandler) Transformation(c *gin.Context) {
	powerLevel, ok := h.powerLevelParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, MapTransformationToResponse(progression.ProgressOf(powerLevel)))
}

func (h *TraineeHandler) Rivals(c *gin.Context) {
	powerLevel, ok := h.powerLevelParam(c)
	if !ok {
		return
	}
	board, err := h.rivalService.Board(c.Request.Context(), powerLevel)
	if err != nil {
		abortWithServiceError(c, err, "Failed to load rivals.")
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *TraineeHandler) History(c *gin.Context) {
	logs, err := h.trainingService.History(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load workout history.")
		return
	}
	responses := make([]WorkoutLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = MapWorkoutLogToResponse(l)
	}
	c.JSON(http.StatusOK, responses)
}

func (h *TraineeHandler) powerLevelParam(c *gin.Context) (int, bool) {
	if raw := c.Query("powerLevel"); raw != "" {
		powerLevel, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "powerLevel must be an integer")
			return 0, false
		}
		return powerLevel, true
	}
	overview, err := h.trainingService.Overview(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load trainee.")
		return 0, false
	}
	return overview.Stats.PowerLevel, true
}
