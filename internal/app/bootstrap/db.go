// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/oauthstate"
)

// EnsureSchema creates the indexes the stores rely on. Duplicate-key
// detection in the stores (IsDup) only works if the matching unique index
// exists, so this runs before the HTTP handler is built.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.LMSMongoDatabase

	specs := map[string][]mongo.IndexModel{
		"accounts": {
			{Keys: bson.D{{Key: "account_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_account_id")},
			{Keys: bson.D{{Key: "login_id_ci", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_login_id_ci")},
			{Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true).SetName("idx_email")},
		},
		"departments": {
			{Keys: bson.D{{Key: "department_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_department_id")},
			{Keys: bson.D{{Key: "name_ci", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_department_name_ci")},
		},
		"majors": {
			{Keys: bson.D{{Key: "major_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_major_id")},
			{Keys: bson.D{{Key: "department_id", Value: 1}, {Key: "name_ci", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_major_dept_name")},
		},
		"offerings": {
			{Keys: bson.D{{Key: "offering_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_offering_id")},
			{Keys: bson.D{{Key: "term", Value: 1}, {Key: "course_code", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_offering_term_code")},
		},
		"enrollments": {
			{Keys: bson.D{{Key: "enrollment_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_enrollment_id")},
			{Keys: bson.D{{Key: "offering_id", Value: 1}, {Key: "student_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_enrollment_offering_student")},
			{Keys: bson.D{{Key: "student_id", Value: 1}},
				Options: options.Index().SetName("idx_enrollment_student")},
		},
		"grades": {
			{Keys: bson.D{{Key: "enrollment_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_grade_enrollment")},
			{Keys: bson.D{{Key: "student_id", Value: 1}},
				Options: options.Index().SetName("idx_grade_student")},
		},
		"surveys": {
			{Keys: bson.D{{Key: "survey_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_survey_id")},
			{Keys: bson.D{{Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_survey_status")},
		},
		"survey_responses": {
			{Keys: bson.D{{Key: "survey_id", Value: 1}, {Key: "account_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_response_survey_account")},
		},
		"mentoring_matches": {
			{Keys: bson.D{{Key: "match_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_match_id")},
			{Keys: bson.D{{Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_match_status")},
		},
		"faqs": {
			{Keys: bson.D{{Key: "faq_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_faq_id")},
		},
		"qna_posts": {
			{Keys: bson.D{{Key: "post_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_qna_post_id")},
		},
		"qna_answers": {
			{Keys: bson.D{{Key: "answer_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_qna_answer_id")},
			{Keys: bson.D{{Key: "post_id", Value: 1}},
				Options: options.Index().SetName("idx_qna_answer_post")},
		},
		"resources": {
			{Keys: bson.D{{Key: "resource_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_resource_id")},
		},
		"spaces": {
			{Keys: bson.D{{Key: "space_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_space_id")},
			{Keys: bson.D{{Key: "name_ci", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_space_name_ci")},
		},
		"reservations": {
			{Keys: bson.D{{Key: "reservation_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_reservation_id")},
			{Keys: bson.D{{Key: "space_id", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_reservation_space_status")},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}

	if err := oauthstate.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("create oauth state indexes: %w", err)
	}

	logger.Info("database indexes ensured", zap.Int("collections", len(specs)+1))
	return nil
}
