package testutil

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

var fixtureSeq atomic.Int64

// nextID allocates a numeric id for a fixture document. Fixture ids only need
// to be unique within a test database, so a process-local counter is enough.
func (f *Fixtures) nextID() int64 {
	return fixtureSeq.Add(1)
}

// CreateAccount inserts a test account with the given login id and role.
func (f *Fixtures) CreateAccount(ctx context.Context, loginID, fullName, role string) models.Account {
	f.t.Helper()

	now := time.Now().UTC()
	acct := models.Account{
		OID:        primitive.NewObjectID(),
		AccountID:  f.nextID(),
		LoginID:    loginID,
		LoginIDCI:  text.Fold(loginID),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Role:       role,
		Status:     models.AccountActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("accounts").InsertOne(ctx, acct); err != nil {
		f.t.Fatalf("create test account: %v", err)
	}
	return acct
}

// CreateDepartment inserts a test department.
func (f *Fixtures) CreateDepartment(ctx context.Context, name, code string) models.Department {
	f.t.Helper()

	now := time.Now().UTC()
	dept := models.Department{
		OID:          primitive.NewObjectID(),
		DepartmentID: f.nextID(),
		Name:         name,
		NameCI:       text.Fold(name),
		Code:         code,
		Status:       models.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("departments").InsertOne(ctx, dept); err != nil {
		f.t.Fatalf("create test department: %v", err)
	}
	return dept
}

// CreateOffering inserts a test offering with the given capacity.
func (f *Fixtures) CreateOffering(ctx context.Context, courseCode, title, term string, capacity int) models.Offering {
	f.t.Helper()

	now := time.Now().UTC()
	off := models.Offering{
		OID:        primitive.NewObjectID(),
		OfferingID: f.nextID(),
		CourseCode: courseCode,
		Title:      title,
		TitleCI:    text.Fold(title),
		Term:       term,
		Credits:    3,
		Capacity:   capacity,
		Status:     models.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("offerings").InsertOne(ctx, off); err != nil {
		f.t.Fatalf("create test offering: %v", err)
	}
	return off
}

// CreateSurvey inserts a test survey in the given lifecycle state.
func (f *Fixtures) CreateSurvey(ctx context.Context, title, status string, questions []models.SurveyQuestion) models.Survey {
	f.t.Helper()

	now := time.Now().UTC()
	if questions == nil {
		questions = []models.SurveyQuestion{}
	}
	survey := models.Survey{
		OID:       primitive.NewObjectID(),
		SurveyID:  f.nextID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Status:    status,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("surveys").InsertOne(ctx, survey); err != nil {
		f.t.Fatalf("create test survey: %v", err)
	}
	return survey
}

// CreateSpace inserts a test reservable space.
func (f *Fixtures) CreateSpace(ctx context.Context, name, location string, capacity int) models.Space {
	f.t.Helper()

	now := time.Now().UTC()
	space := models.Space{
		OID:       primitive.NewObjectID(),
		SpaceID:   f.nextID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Location:  location,
		Capacity:  capacity,
		Status:    models.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("spaces").InsertOne(ctx, space); err != nil {
		f.t.Fatalf("create test space: %v", err)
	}
	return space
}
