// internal/app/store/accounts/accountstore.go
package accountstore

import (
	"context"
	"errors"
	"time"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/counters"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

var (
	ErrDuplicateLoginID = errors.New("an account with this login id already exists")
	ErrNotFound         = errors.New("account not found")
)

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("accounts")}
}

// Create inserts a new account, allocating its numeric id.
// LoginIDCI and FullNameCI are derived here; callers set the display fields only.
func (s *Store) Create(ctx context.Context, acct models.Account) (models.Account, error) {
	id, err := counters.Next(ctx, s.db, counters.Accounts)
	if err != nil {
		return models.Account{}, err
	}
	now := time.Now().UTC()
	acct.OID = primitive.NewObjectID()
	acct.AccountID = id
	acct.LoginIDCI = text.Fold(acct.LoginID)
	acct.FullNameCI = text.Fold(acct.FullName)
	if acct.Status == "" {
		acct.Status = models.AccountActive
	}
	acct.CreatedAt = now
	acct.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, acct); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Account{}, ErrDuplicateLoginID
		}
		return models.Account{}, err
	}
	return acct, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.Account, error) {
	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"account_id": id}).Decode(&acct)
	if err == mongo.ErrNoDocuments {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// GetByLoginID looks up an account by its case-insensitive login id.
func (s *Store) GetByLoginID(ctx context.Context, loginID string) (models.Account, error) {
	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"login_id_ci": text.Fold(loginID)}).Decode(&acct)
	if err == mongo.ErrNoDocuments {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// GetByEmail looks up an account by email. Emails are stored lowercased.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&acct)
	if err == mongo.ErrNoDocuments {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// GetByIDs loads multiple accounts by their numeric ids.
func (s *Store) GetByIDs(ctx context.Context, ids []int64) ([]models.Account, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"account_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var accts []models.Account
	if err := cur.All(ctx, &accts); err != nil {
		return nil, err
	}
	return accts, nil
}

// Update modifies an account's mutable fields and refreshes UpdatedAt.
// Role, login id, and password are changed through their own methods.
func (s *Store) Update(ctx context.Context, id int64, acct models.Account) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if acct.FullName != "" {
		set["full_name"] = acct.FullName
		set["full_name_ci"] = text.Fold(acct.FullName)
	}
	if acct.Email != "" {
		set["email"] = acct.Email
	}
	if acct.DepartmentID != 0 {
		set["department_id"] = acct.DepartmentID
	}
	if acct.MajorID != 0 {
		set["major_id"] = acct.MajorID
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"account_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus flips an account between ACTIVE and SUSPENDED.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"account_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored bcrypt hash.
func (s *Store) UpdatePassword(ctx context.Context, id int64, hash []byte) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"account_id": id},
		bson.M{"$set": bson.M{"password_hash": hash, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an account by id. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"account_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// LoginIDExists checks if an account with the given login id exists.
func (s *Store) LoginIDExists(ctx context.Context, loginID string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"login_id_ci": text.Fold(loginID)}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Find returns accounts matching the given filter with optional find options.
// The caller builds the filter and options (pagination, sorting, projection).
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Account, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var accts []models.Account
	if err := cur.All(ctx, &accts); err != nil {
		return nil, err
	}
	return accts, nil
}

// Count returns the number of accounts matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
