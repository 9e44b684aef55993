package courseRepo

import (
	"context"
	"fmt"
	"time"

	"medtrack/database"
	"medtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCourseRepo implements CourseRepository using MongoDB.
type MongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo creates a new CourseRepository backed by MongoDB.
func NewMongoCourseRepo() CourseRepository {
	coll := database.MongoClient.Database("medtrack").Collection("medicines")
	repo := &MongoCourseRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCourseRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new course document.
func (r *MongoCourseRepo) Create(course *models.MedicalCourse) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	course.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, course)
	if err != nil {
		return fmt.Errorf("failed to create medical course: %w", err)
	}
	return nil
}

// GetByEmail retrieves all courses for the given owner, newest first.
func (r *MongoCourseRepo) GetByEmail(email string) ([]models.MedicalCourse, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve courses for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var courses []models.MedicalCourse
	for cursor.Next(ctx) {
		var c models.MedicalCourse
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// GetByID retrieves a single course document.
func (r *MongoCourseRepo) GetByID(id string) (*models.MedicalCourse, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var course models.MedicalCourse
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch course with id %s: %w", id, err)
	}
	return &course, nil
}
