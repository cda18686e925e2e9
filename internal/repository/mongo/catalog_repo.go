// internal/repository/mongo/catalog_repo.go
package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/repository"
)

const (
	workoutCollectionName  = "workouts"
	mealPlanCollectionName = "meal_plans"
	rivalCollectionName    = "rivals"
)

// mongoCatalogRepository implements repository.CatalogRepository. It only reads.
type mongoCatalogRepository struct {
	workouts  *mongo.Collection
	mealPlans *mongo.Collection
	rivals    *mongo.Collection
}

// NewMongoCatalogRepository creates a catalog backed by the given database.
func NewMongoCatalogRepository(db *mongo.Database) repository.CatalogRepository {
	return &mongoCatalogRepository{
		workouts:  db.Collection(workoutCollectionName),
		mealPlans: db.Collection(mealPlanCollectionName),
		rivals:    db.Collection(rivalCollectionName),
	}
}

// ListWorkouts returns all workouts sorted by name.
func (r *mongoCatalogRepository) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	var docs []workoutDocument
	if err := findAll(ctx, r.workouts, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}), &docs); err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	workouts := make([]domain.Workout, 0, len(docs))
	for _, d := range docs {
		w, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

// GetWorkout retrieves a single workout by its ID.
func (r *mongoCatalogRepository) GetWorkout(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	var doc workoutDocument
	err := r.workouts.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	w, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListMealPlans returns meal plans in insertion order so the first one stays the fallback plan.
func (r *mongoCatalogRepository) ListMealPlans(ctx context.Context) ([]domain.MealPlan, error) {
	var docs []mealPlanDocument
	if err := findAll(ctx, r.mealPlans, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}), &docs); err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	plans := make([]domain.MealPlan, 0, len(docs))
	for _, d := range docs {
		p, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// ListRivals returns rivals ordered by ascending power level.
func (r *mongoCatalogRepository) ListRivals(ctx context.Context) ([]domain.Rival, error) {
	var docs []rivalDocument
	if err := findAll(ctx, r.rivals, options.Find().SetSort(bson.D{{Key: "powerLevel", Value: 1}}), &docs); err != nil {
		return nil, fmt.Errorf("list rivals: %w", err)
	}
	rivals := make([]domain.Rival, 0, len(docs))
	for _, d := range docs {
		rv, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		rivals = append(rivals, rv)
	}
	return rivals, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, opts *options.FindOptions, out interface{}) error {
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return err
	}
	return cursor.Err()
}

// EnsureCatalogIndexes creates necessary indexes. Call during startup.
func EnsureCatalogIndexes(ctx context.Context, db *mongo.Database) {
	workoutIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index()},
		{Keys: bson.D{{Key: "type", Value: 1}}, Options: options.Index()},
	}
	if _, err := db.Collection(workoutCollectionName).Indexes().CreateMany(ctx, workoutIndexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %s", workoutCollectionName, err)
	}

	rivalIndex := mongo.IndexModel{Keys: bson.D{{Key: "powerLevel", Value: 1}}, Options: options.Index()}
	if _, err := db.Collection(rivalCollectionName).Indexes().CreateOne(ctx, rivalIndex); err != nil {
		log.Warnf("failed to create indexes for collection %s: %s", rivalCollectionName, err)
	}
}

// SeedCatalog fills every empty catalog collection with the given entries.
// Collections that already hold documents are left untouched.
func SeedCatalog(ctx context.Context, db *mongo.Database, workouts []domain.Workout, plans []domain.MealPlan, rivals []domain.Rival) error {
	workoutDocs := make([]interface{}, 0, len(workouts))
	for _, w := range workouts {
		workoutDocs = append(workoutDocs, newWorkoutDocument(w))
	}
	planDocs := make([]interface{}, 0, len(plans))
	for _, p := range plans {
		planDocs = append(planDocs, newMealPlanDocument(p))
	}
	rivalDocs := make([]interface{}, 0, len(rivals))
	for _, rv := range rivals {
		rivalDocs = append(rivalDocs, newRivalDocument(rv))
	}

	seeds := []struct {
		name string
		docs []interface{}
	}{
		{workoutCollectionName, workoutDocs},
		{mealPlanCollectionName, planDocs},
		{rivalCollectionName, rivalDocs},
	}
	for _, s := range seeds {
		if len(s.docs) == 0 {
			continue
		}
		coll := db.Collection(s.name)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("count %s: %w", s.name, err)
		}
		if count > 0 {
			log.Debugf("collection %s already has %d documents, skipping seed", s.name, count)
			continue
		}
		if _, err := coll.InsertMany(ctx, s.docs); err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
		log.Infof("seeded %d documents into %s", len(s.docs), s.name)
	}
	return nil
}
