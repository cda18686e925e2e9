package memory

import (
	"github.com/google/uuid"

	"saiyan/training-app/internal/domain"
)

// Catalog is the full set of reference data served by a CatalogRepository.
type Catalog struct {
	Workouts  []domain.Workout
	MealPlans []domain.MealPlan
	Rivals    []domain.Rival
}

// catalogNamespace keeps sample IDs stable across restarts.
var catalogNamespace = uuid.MustParse("6f1c2a8e-4b1d-4c55-9a57-3f0e5e1d9b20")

func id(kind, name string) uuid.UUID {
	return uuid.NewSHA1(catalogNamespace, []byte(kind+"/"+name))
}

func kg(v float64) *float64 { return &v }

// SampleCatalog returns a fresh copy of the built-in catalog.
func SampleCatalog() Catalog {
	exercises := sampleExercises()
	foods := sampleFoods()
	meals := sampleMeals(foods)
	return Catalog{
		Workouts:  sampleWorkouts(exercises),
		MealPlans: sampleMealPlans(meals),
		Rivals:    sampleRivals(),
	}
}

func exercise(name string, sets, reps int, weight *float64, rest int, instructions string, groups ...domain.MuscleGroup) domain.Exercise {
	return domain.Exercise{
		ID:           id("exercise", name),
		Name:         name,
		Sets:         sets,
		Reps:         reps,
		WeightKg:     weight,
		RestSeconds:  rest,
		Instructions: instructions,
		MuscleGroups: groups,
	}
}

func sampleExercises() []domain.Exercise {
	return []domain.Exercise{
		exercise("Gravity Chamber Push-ups", 3, 12, nil, 60,
			"Place hands shoulder-width apart, lower body to ground, push back up.",
			domain.MuscleChest, domain.MuscleShoulders, domain.MuscleArms),
		exercise("Kamehameha Pulls", 4, 10, kg(80), 90,
			"Grasp bar with overhand grip, pull to upper chest, return to starting position.",
			domain.MuscleBack, domain.MuscleArms),
		exercise("Spirit Bomb Squats", 4, 15, kg(100), 120,
			"Stand with feet shoulder-width apart, lower body until thighs are parallel to ground, return to standing.",
			domain.MuscleLegs),
		exercise("Instant Transmission Lunges", 3, 12, nil, 60,
			"Step forward with one leg, lowering hips until both knees are bent at 90 degrees.",
			domain.MuscleLegs),
		exercise("Final Flash Shoulder Press", 3, 10, kg(45), 60,
			"Press weights overhead from shoulder position until arms are fully extended.",
			domain.MuscleShoulders, domain.MuscleArms),
		exercise("Kaioken Sprint", 5, 1, nil, 120,
			"Sprint at maximum effort for 30 seconds, then rest.",
			domain.MuscleFullBody),
	}
}

func sampleWorkouts(ex []domain.Exercise) []domain.Workout {
	workout := func(name string, t domain.WorkoutType, d domain.Difficulty, minutes int, list ...domain.Exercise) domain.Workout {
		return domain.Workout{
			ID:              id("workout", name),
			Name:            name,
			Type:            t,
			Exercises:       list,
			DurationMinutes: minutes,
			Difficulty:      d,
		}
	}
	return []domain.Workout{
		workout("Super Saiyan Strength", domain.WorkoutStrength, domain.DifficultyIntermediate, 45, ex[0], ex[1], ex[4]),
		workout("Hyperbolic Time Chamber HIIT", domain.WorkoutCardio, domain.DifficultyAdvanced, 30, ex[5], ex[2], ex[3]),
		workout("Namekian Flexibility", domain.WorkoutFlexibility, domain.DifficultyBeginner, 20, ex[3]),
		workout("Vegeta's Pride Workout", domain.WorkoutMixed, domain.DifficultyExtreme, 60, ex[0], ex[1], ex[2], ex[3], ex[4]),
	}
}

func sampleFoods() []domain.Food {
	food := func(name, serving string, cal, protein, carbs, fat int) domain.Food {
		return domain.Food{
			ID:          id("food", name),
			Name:        name,
			ServingSize: serving,
			Calories:    cal,
			Protein:     protein,
			Carbs:       carbs,
			Fat:         fat,
		}
	}
	return []domain.Food{
		food("Chicken Breast", "150g", 230, 43, 0, 5),
		food("Brown Rice", "1 cup cooked", 216, 5, 45, 2),
		food("Broccoli", "1 cup", 55, 4, 11, 0),
		food("Salmon", "150g", 280, 39, 0, 13),
		food("Sweet Potato", "1 medium", 180, 4, 41, 0),
		food("Protein Shake", "1 scoop", 120, 25, 3, 1),
		food("Banana", "1 medium", 105, 1, 27, 0),
		food("Almonds", "1/4 cup", 207, 8, 7, 18),
	}
}

func sampleMeals(f []domain.Food) []domain.Meal {
	meal := func(name, at string, foods ...domain.Food) domain.Meal {
		return domain.Meal{ID: id("meal", name), Name: name, Time: at, Foods: foods}
	}
	return []domain.Meal{
		meal("Super Saiyan Breakfast", "Breakfast", f[5], f[6], f[7]),
		meal("Warrior's Lunch", "Lunch", f[0], f[1], f[2]),
		meal("Power-Up Dinner", "Dinner", f[3], f[4], f[2]),
		meal("After Battle Snack", "Post-Workout", f[5], f[6]),
	}
}

func sampleMealPlans(m []domain.Meal) []domain.MealPlan {
	return []domain.MealPlan{
		{
			ID:            id("mealplan", "Strength Building Plan"),
			Name:          "Strength Building Plan",
			TargetGoal:    domain.GoalStrengthGain,
			CalorieTarget: 2800,
			ProteinTarget: 180,
			CarbTarget:    300,
			FatTarget:     80,
			Meals:         []domain.Meal{m[0], m[1], m[2], m[3]},
		},
		{
			ID:            id("mealplan", "Fat Loss Plan"),
			Name:          "Fat Loss Plan",
			TargetGoal:    domain.GoalWeightLoss,
			CalorieTarget: 2000,
			ProteinTarget: 160,
			CarbTarget:    180,
			FatTarget:     65,
			Meals:         []domain.Meal{m[0], m[1], m[3]},
		},
	}
}

func sampleRivals() []domain.Rival {
	rival := func(name, series string, power int, symbol string) domain.Rival {
		return domain.Rival{ID: id("rival", name), Name: name, Series: series, PowerLevel: power, Symbol: symbol}
	}
	return []domain.Rival{
		rival("Krillin (DBZ)", "Dragon Ball", 75, "person.fill"),
		rival("Yamcha", "Dragon Ball", 180, "figure.softball"),
		rival("Videl", "Dragon Ball", 300, "figure.kickboxing"),
		rival("Chi-Chi", "Dragon Ball", 130, "figure.arms.open"),
		rival("Naruto (Academy)", "Naruto", 400, "figure.run"),
		rival("Sakura (Genin)", "Naruto", 600, "figure.wave"),
		rival("Rock Lee (Weights)", "Naruto", 800, "figure.martial.arts"),
		rival("Konohamaru", "Naruto", 500, "figure.roll"),
		rival("Tanjiro (Beginning)", "Demon Slayer", 1200, "figure.hiking"),
		rival("Zenitsu (Asleep)", "Demon Slayer", 2000, "bolt.fill"),
		rival("Inosuke", "Demon Slayer", 1800, "figure.wrestling"),
		rival("Deku (5%)", "My Hero Academia", 2500, "figure.socialdance"),
		rival("Bakugo (Beginning)", "My Hero Academia", 3000, "flame.fill"),
		rival("Uraraka", "My Hero Academia", 1500, "figure.gymnastics"),
		rival("Saitama", "One Punch Man", 999999, "figure.stand"),
		rival("Nami", "One Piece", 4000, "cloud.bolt.fill"),
		rival("Usopp", "One Piece", 5000, "figure.archery"),
		rival("Vegeta (Saiyan Saga)", "Dragon Ball Z", 18000, "bolt.circle.fill"),
		rival("Frieza (First Form)", "Dragon Ball Z", 530000, "hurricane"),
		rival("Perfect Cell", "Dragon Ball Z", 900000, "atom"),
	}
}
