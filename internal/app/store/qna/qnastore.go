// internal/app/store/qna/qnastore.go
package qnastore

import (
	"context"
	"errors"
	"time"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/counters"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages Q&A posts and their answers. AnswerCount on a post is kept
// in step with the answers collection by AddAnswer/DeleteAnswer.
type Store struct {
	db      *mongo.Database
	posts   *mongo.Collection
	answers *mongo.Collection
}

var (
	ErrPostNotFound   = errors.New("qna post not found")
	ErrAnswerNotFound = errors.New("qna answer not found")
)

func New(db *mongo.Database) *Store {
	return &Store{
		db:      db,
		posts:   db.Collection("qna_posts"),
		answers: db.Collection("qna_answers"),
	}
}

func (s *Store) CreatePost(ctx context.Context, post models.QnaPost) (models.QnaPost, error) {
	id, err := counters.Next(ctx, s.db, counters.QnaPosts)
	if err != nil {
		return models.QnaPost{}, err
	}
	now := time.Now().UTC()
	post.OID = primitive.NewObjectID()
	post.PostID = id
	post.TitleCI = text.Fold(post.Title)
	post.AnswerCount = 0
	post.CreatedAt = now
	post.UpdatedAt = now
	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return models.QnaPost{}, err
	}
	return post, nil
}

func (s *Store) GetPost(ctx context.Context, id int64) (models.QnaPost, error) {
	var post models.QnaPost
	err := s.posts.FindOne(ctx, bson.M{"post_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return models.QnaPost{}, ErrPostNotFound
	}
	if err != nil {
		return models.QnaPost{}, err
	}
	return post, nil
}

func (s *Store) UpdatePost(ctx context.Context, id int64, post models.QnaPost) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if post.Title != "" {
		set["title"] = post.Title
		set["title_ci"] = text.Fold(post.Title)
	}
	if post.BodyHTML != "" {
		set["body_html"] = post.BodyHTML
	}
	res, err := s.posts.UpdateOne(ctx, bson.M{"post_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

// DeletePost removes a post and all of its answers.
func (s *Store) DeletePost(ctx context.Context, id int64) (int64, error) {
	res, err := s.posts.DeleteOne(ctx, bson.M{"post_id": id})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount > 0 {
		if _, err := s.answers.DeleteMany(ctx, bson.M{"post_id": id}); err != nil {
			return res.DeletedCount, err
		}
	}
	return res.DeletedCount, nil
}

// AddAnswer inserts an answer and bumps the post's answer count.
func (s *Store) AddAnswer(ctx context.Context, ans models.QnaAnswer) (models.QnaAnswer, error) {
	if err := s.posts.FindOne(ctx, bson.M{"post_id": ans.PostID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.QnaAnswer{}, ErrPostNotFound
		}
		return models.QnaAnswer{}, err
	}
	id, err := counters.Next(ctx, s.db, counters.QnaAnswers)
	if err != nil {
		return models.QnaAnswer{}, err
	}
	now := time.Now().UTC()
	ans.OID = primitive.NewObjectID()
	ans.AnswerID = id
	ans.CreatedAt = now
	ans.UpdatedAt = now
	if _, err := s.answers.InsertOne(ctx, ans); err != nil {
		return models.QnaAnswer{}, err
	}
	_, err = s.posts.UpdateOne(ctx,
		bson.M{"post_id": ans.PostID},
		bson.M{"$inc": bson.M{"answer_count": 1}},
	)
	if err != nil {
		return models.QnaAnswer{}, err
	}
	return ans, nil
}

func (s *Store) GetAnswer(ctx context.Context, id int64) (models.QnaAnswer, error) {
	var ans models.QnaAnswer
	err := s.answers.FindOne(ctx, bson.M{"answer_id": id}).Decode(&ans)
	if err == mongo.ErrNoDocuments {
		return models.QnaAnswer{}, ErrAnswerNotFound
	}
	if err != nil {
		return models.QnaAnswer{}, err
	}
	return ans, nil
}

// DeleteAnswer removes an answer and decrements the post's answer count.
func (s *Store) DeleteAnswer(ctx context.Context, id int64) error {
	var ans models.QnaAnswer
	err := s.answers.FindOneAndDelete(ctx, bson.M{"answer_id": id}).Decode(&ans)
	if err == mongo.ErrNoDocuments {
		return ErrAnswerNotFound
	}
	if err != nil {
		return err
	}
	_, err = s.posts.UpdateOne(ctx,
		bson.M{"post_id": ans.PostID, "answer_count": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"answer_count": -1}},
	)
	return err
}

// ListAnswers returns a post's answers in posting order.
func (s *Store) ListAnswers(ctx context.Context, postID int64) ([]models.QnaAnswer, error) {
	cur, err := s.answers.Find(ctx, bson.M{"post_id": postID},
		options.Find().SetSort(bson.D{{Key: "answer_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var answers []models.QnaAnswer
	if err := cur.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (s *Store) FindPosts(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.QnaPost, error) {
	cur, err := s.posts.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.QnaPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) CountPosts(ctx context.Context, filter bson.M) (int64, error) {
	return s.posts.CountDocuments(ctx, filter)
}
