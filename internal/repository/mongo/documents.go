package mongo

import (
	"fmt"

	"github.com/google/uuid"

	"saiyan/training-app/internal/domain"
)

// Catalog entities are stored with string ids so documents stay readable in the shell.

type exerciseDocument struct {
	ID           string   `bson:"id"`
	Name         string   `bson:"name"`
	Sets         int      `bson:"sets"`
	Reps         int      `bson:"reps"`
	WeightKg     *float64 `bson:"weightKg,omitempty"`
	RestSeconds  int      `bson:"restSeconds"`
	Instructions string   `bson:"instructions,omitempty"`
	MuscleGroups []string `bson:"muscleGroups,omitempty"`
}

type workoutDocument struct {
	ID              string             `bson:"_id"`
	Name            string             `bson:"name"`
	Type            string             `bson:"type"`
	Difficulty      string             `bson:"difficulty"`
	DurationMinutes int                `bson:"durationMinutes"`
	Exercises       []exerciseDocument `bson:"exercises"`
}

type foodDocument struct {
	ID          string `bson:"id"`
	Name        string `bson:"name"`
	ServingSize string `bson:"servingSize"`
	Calories    int    `bson:"calories"`
	Protein     int    `bson:"protein"`
	Carbs       int    `bson:"carbs"`
	Fat         int    `bson:"fat"`
}

type mealDocument struct {
	ID    string         `bson:"id"`
	Name  string         `bson:"name"`
	Time  string         `bson:"time"`
	Foods []foodDocument `bson:"foods"`
}

type mealPlanDocument struct {
	ID            string         `bson:"_id"`
	Name          string         `bson:"name"`
	TargetGoal    string         `bson:"targetGoal"`
	CalorieTarget int            `bson:"calorieTarget"`
	ProteinTarget int            `bson:"proteinTarget"`
	CarbTarget    int            `bson:"carbTarget"`
	FatTarget     int            `bson:"fatTarget"`
	Meals         []mealDocument `bson:"meals"`
}

type rivalDocument struct {
	ID         string `bson:"_id"`
	Name       string `bson:"name"`
	Series     string `bson:"series"`
	PowerLevel int    `bson:"powerLevel"`
	Symbol     string `bson:"symbol,omitempty"`
}

func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s id %q: %w", kind, raw, err)
	}
	return id, nil
}

func newWorkoutDocument(w domain.Workout) workoutDocument {
	doc := workoutDocument{
		ID:              w.ID.String(),
		Name:            w.Name,
		Type:            string(w.Type),
		Difficulty:      string(w.Difficulty),
		DurationMinutes: w.DurationMinutes,
		Exercises:       make([]exerciseDocument, 0, len(w.Exercises)),
	}
	for _, ex := range w.Exercises {
		groups := make([]string, 0, len(ex.MuscleGroups))
		for _, g := range ex.MuscleGroups {
			groups = append(groups, string(g))
		}
		doc.Exercises = append(doc.Exercises, exerciseDocument{
			ID:           ex.ID.String(),
			Name:         ex.Name,
			Sets:         ex.Sets,
			Reps:         ex.Reps,
			WeightKg:     ex.WeightKg,
			RestSeconds:  ex.RestSeconds,
			Instructions: ex.Instructions,
			MuscleGroups: groups,
		})
	}
	return doc
}

func (d workoutDocument) toDomain() (domain.Workout, error) {
	id, err := parseID("workout", d.ID)
	if err != nil {
		return domain.Workout{}, err
	}
	w := domain.Workout{
		ID:              id,
		Name:            d.Name,
		Type:            domain.WorkoutType(d.Type),
		Difficulty:      domain.Difficulty(d.Difficulty),
		DurationMinutes: d.DurationMinutes,
		Exercises:       make([]domain.Exercise, 0, len(d.Exercises)),
	}
	for _, ed := range d.Exercises {
		exID, err := parseID("exercise", ed.ID)
		if err != nil {
			return domain.Workout{}, err
		}
		groups := make([]domain.MuscleGroup, 0, len(ed.MuscleGroups))
		for _, g := range ed.MuscleGroups {
			groups = append(groups, domain.MuscleGroup(g))
		}
		w.Exercises = append(w.Exercises, domain.Exercise{
			ID:           exID,
			Name:         ed.Name,
			Sets:         ed.Sets,
			Reps:         ed.Reps,
			WeightKg:     ed.WeightKg,
			RestSeconds:  ed.RestSeconds,
			Instructions: ed.Instructions,
			MuscleGroups: groups,
		})
	}
	return w, nil
}

func newMealPlanDocument(p domain.MealPlan) mealPlanDocument {
	doc := mealPlanDocument{
		ID:            p.ID.String(),
		Name:          p.Name,
		TargetGoal:    string(p.TargetGoal),
		CalorieTarget: p.CalorieTarget,
		ProteinTarget: p.ProteinTarget,
		CarbTarget:    p.CarbTarget,
		FatTarget:     p.FatTarget,
		Meals:         make([]mealDocument, 0, len(p.Meals)),
	}
	for _, m := range p.Meals {
		md := mealDocument{ID: m.ID.String(), Name: m.Name, Time: m.Time, Foods: make([]foodDocument, 0, len(m.Foods))}
		for _, f := range m.Foods {
			md.Foods = append(md.Foods, foodDocument{
				ID:          f.ID.String(),
				Name:        f.Name,
				ServingSize: f.ServingSize,
				Calories:    f.Calories,
				Protein:     f.Protein,
				Carbs:       f.Carbs,
				Fat:         f.Fat,
			})
		}
		doc.Meals = append(doc.Meals, md)
	}
	return doc
}

func (d mealPlanDocument) toDomain() (domain.MealPlan, error) {
	id, err := parseID("meal plan", d.ID)
	if err != nil {
		return domain.MealPlan{}, err
	}
	p := domain.MealPlan{
		ID:            id,
		Name:          d.Name,
		TargetGoal:    domain.FitnessGoal(d.TargetGoal),
		CalorieTarget: d.CalorieTarget,
		ProteinTarget: d.ProteinTarget,
		CarbTarget:    d.CarbTarget,
		FatTarget:     d.FatTarget,
		Meals:         make([]domain.Meal, 0, len(d.Meals)),
	}
	for _, md := range d.Meals {
		mealID, err := parseID("meal", md.ID)
		if err != nil {
			return domain.MealPlan{}, err
		}
		meal := domain.Meal{ID: mealID, Name: md.Name, Time: md.Time, Foods: make([]domain.Food, 0, len(md.Foods))}
		for _, fd := range md.Foods {
			foodID, err := parseID("food", fd.ID)
			if err != nil {
				return domain.MealPlan{}, err
			}
			meal.Foods = append(meal.Foods, domain.Food{
				ID:          foodID,
				Name:        fd.Name,
				ServingSize: fd.ServingSize,
				Calories:    fd.Calories,
				Protein:     fd.Protein,
				Carbs:       fd.Carbs,
				Fat:         fd.Fat,
			})
		}
		p.Meals = append(p.Meals, meal)
	}
	return p, nil
}

func newRivalDocument(r domain.Rival) rivalDocument {
	return rivalDocument{
		ID:         r.ID.String(),
		Name:       r.Name,
		Series:     r.Series,
		PowerLevel: r.PowerLevel,
		Symbol:     r.Symbol,
	}
}

func (d rivalDocument) toDomain() (domain.Rival, error) {
	id, err := parseID("rival", d.ID)
	if err != nil {
		return domain.Rival{}, err
	}
	return domain.Rival{ID: id, Name: d.Name, Series: d.Series, PowerLevel: d.PowerLevel, Symbol: d.Symbol}, nil
}
