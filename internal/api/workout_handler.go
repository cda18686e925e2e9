package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/progression"
	"saiyan/training-app/internal/service"
)

type WorkoutHandler struct {
	trainingService service.TrainingService
	dietService     service.DietService
}

func NewWorkoutHandler(trainingService service.TrainingService, dietService service.DietService) *WorkoutHandler {
	return &WorkoutHandler{
		trainingService: trainingService,
		dietService:     dietService,
	}
}

// --- DTOs ---

type ExerciseResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Sets         int                  `json:"sets"`
	Reps         int                  `json:"reps"`
	WeightKg     *float64             `json:"weightKg,omitempty"`
	RestSeconds  int                  `json:"restSeconds"`
	Instructions string               `json:"instructions,omitempty"`
	MuscleGroups []domain.MuscleGroup `json:"muscleGroups"`
}

// WorkoutResponse carries the power reward the workout is worth, streak bonus excluded.
type WorkoutResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Type            domain.WorkoutType `json:"type"`
	Difficulty      domain.Difficulty  `json:"difficulty"`
	DurationMinutes int                `json:"durationMinutes"`
	Reward          int                `json:"reward"`
	Exercises       []ExerciseResponse `json:"exercises"`
}

type MealPlanResponse struct {
	domain.MealPlan
	TotalCalories int `json:"totalCalories"`
	TotalProtein  int `json:"totalProtein"`
	TotalCarbs    int `json:"totalCarbs"`
	TotalFat      int `json:"totalFat"`
}

func MapExerciseToResponse(ex domain.Exercise) ExerciseResponse {
	groups := ex.MuscleGroups
	if groups == nil {
		groups = []domain.MuscleGroup{}
	}
	return ExerciseResponse{
		ID:           ex.ID.String(),
		Name:         ex.Name,
		Sets:         ex.Sets,
		Reps:         ex.Reps,
		WeightKg:     ex.WeightKg,
		RestSeconds:  ex.RestSeconds,
		Instructions: ex.Instructions,
		MuscleGroups: groups,
	}
}

func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	exercises := make([]ExerciseResponse, len(w.Exercises))
	for i, ex := range w.Exercises {
		exercises[i] = MapExerciseToResponse(ex)
	}
	return WorkoutResponse{
		ID:              w.ID.String(),
		Name:            w.Name,
		Type:            w.Type,
		Difficulty:      w.Difficulty,
		DurationMinutes: w.DurationMinutes,
		Reward:          progression.TotalReward(*w),
		Exercises:       exercises,
	}
}

func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

func MapMealPlanToResponse(plan *domain.MealPlan) MealPlanResponse {
	resp := MealPlanResponse{MealPlan: *plan}
	for _, meal := range plan.Meals {
		resp.TotalCalories += meal.TotalCalories()
		resp.TotalProtein += meal.TotalProtein()
		resp.TotalCarbs += meal.TotalCarbs()
		resp.TotalFat += meal.TotalFat()
	}
	return resp
}

// --- Handler Methods ---

// ListWorkouts handles GET /workouts. With ?recommended=true only workouts
// matching the trainee's goal are returned.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	recommended := false
	if raw := c.Query("recommended"); raw != "" {
		var err error
		recommended, err = strconv.ParseBool(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "recommended must be a boolean")
			return
		}
	}

	var (
		workouts []domain.Workout
		err      error
	)
	if recommended {
		workouts, err = h.trainingService.RecommendedWorkouts(c.Request.Context())
	} else {
		workouts, err = h.trainingService.ListWorkouts(c.Request.Context())
	}
	if err != nil {
		abortWithServiceError(c, err, "Failed to list workouts.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}
	workout, err := h.trainingService.GetWorkout(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err, "Failed to get workout.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

func (h *WorkoutHandler) RecommendedMealPlan(c *gin.Context) {
	plan, err := h.dietService.RecommendedMealPlan(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to get meal plan.")
		return
	}
	c.JSON(http.StatusOK, MapMealPlanToResponse(plan))
}
