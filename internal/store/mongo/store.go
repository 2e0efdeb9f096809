package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	authdomain "github.com/lsweb/lsweb-api/internal/auth/domain"
	contactdomain "github.com/lsweb/lsweb-api/internal/contact/domain"
)

const (
	contactsCollection = "contact_requests"
	usersCollection    = "users"
)

type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

type contactDoc struct {
	ID          string    `bson:"id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	Phone       string    `bson:"phone,omitempty"`
	Company     string    `bson:"company,omitempty"`
	ProjectType string    `bson:"project_type"`
	Budget      string    `bson:"budget,omitempty"`
	Timeline    string    `bson:"timeline,omitempty"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"created_at"`
	Status      string    `bson:"status"`
}

type userDoc struct {
	ID           string    `bson:"id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (s *Store) Insert(ctx context.Context, req *contactdomain.ContactRequest) error {
	doc := contactDoc{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Description: req.Description,
		CreatedAt:   req.CreatedAt,
		Status:      req.Status,
	}

	if _, err := s.db.Collection(contactsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert contact request: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]contactdomain.ContactRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.db.Collection(contactsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []contactDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode contact requests: %w", err)
	}

	requests := make([]contactdomain.ContactRequest, 0, len(docs))
	for _, doc := range docs {
		requests = append(requests, contactdomain.ContactRequest{
			ID:          doc.ID,
			Name:        doc.Name,
			Email:       doc.Email,
			Phone:       doc.Phone,
			Company:     doc.Company,
			ProjectType: doc.ProjectType,
			Budget:      doc.Budget,
			Timeline:    doc.Timeline,
			Description: doc.Description,
			CreatedAt:   doc.CreatedAt,
			Status:      doc.Status,
		})
	}

	return requests, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	var doc userDoc
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &authdomain.User{
		ID:           doc.ID,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         doc.Role,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (s *Store) Create(ctx context.Context, user *authdomain.User) error {
	doc := userDoc{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
	}

	if _, err := s.db.Collection(usersCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}
