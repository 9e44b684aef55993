package credentialRepo

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

// MongoCredentialRepo implements CredentialRepository using MongoDB.
type MongoCredentialRepo struct {
	coll *mongo.Collection
}

// NewMongoCredentialRepo creates a new CredentialRepository backed by MongoDB.
func NewMongoCredentialRepo() CredentialRepository {
	coll := database.MongoClient.Database("medtrack").Collection("userdata")
	repo := &MongoCredentialRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCredentialRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByEmail retrieves a credential record by email.
func (r *MongoCredentialRepo) GetByEmail(email string) (*models.UserCredential, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cred models.UserCredential
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&cred); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &cred, nil
}

// Create inserts a new credential document.
func (r *MongoCredentialRepo) Create(cred *models.UserCredential) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	cred.CreatedAt = now
	cred.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, cred)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// SetOTP overwrites the outstanding OTP for the user. A single-field $set,
// so concurrent logins race last-writer-wins on exactly this field.
func (r *MongoCredentialRepo) SetOTP(email, otp string) error {
	return r.updateFields(email, bson.M{"otp": otp})
}

// ClearOTP nulls the outstanding OTP and flips the verified flag.
func (r *MongoCredentialRepo) ClearOTP(email string) error {
	return r.updateFields(email, bson.M{"otp": nil, "isVerified": true})
}

// SetFCMToken stores the push token for the user.
func (r *MongoCredentialRepo) SetFCMToken(email, token string) error {
	return r.updateFields(email, bson.M{"fcmToken": token})
}

func (r *MongoCredentialRepo) updateFields(email string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update user with email %s: %w", email, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with email %s not found", email)
	}
	return nil
}
