// internal/domain/models/community.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FaqItem is a curated question/answer pair maintained by staff.
// AnswerHTML is sanitized before storage; it is safe to render as-is.
type FaqItem struct {
	OID   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FaqID int64              `bson:"faq_id" json:"id"`

	Category   string `bson:"category" json:"category"`
	Question   string `bson:"question" json:"question"`
	QuestionCI string `bson:"question_ci" json:"-"`
	AnswerHTML string `bson:"answer_html" json:"answerHtml"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// QnaPost is a community question posted by an account.
//
// Ownership: only the author (AuthorID) or an admin may edit or delete the
// post. BodyHTML is sanitized before storage.
type QnaPost struct {
	OID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PostID int64              `bson:"post_id" json:"id"`

	Title      string `bson:"title" json:"title"`
	TitleCI    string `bson:"title_ci" json:"-"`
	BodyHTML   string `bson:"body_html" json:"bodyHtml"`
	AuthorID   int64  `bson:"author_id" json:"authorId"`
	AuthorName string `bson:"author_name" json:"authorName"`

	AnswerCount int `bson:"answer_count" json:"answerCount"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// QnaAnswer is a reply to a QnaPost. Same ownership rule as posts.
type QnaAnswer struct {
	OID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AnswerID int64              `bson:"answer_id" json:"id"`

	PostID     int64  `bson:"post_id" json:"postId"`
	BodyHTML   string `bson:"body_html" json:"bodyHtml"`
	AuthorID   int64  `bson:"author_id" json:"authorId"`
	AuthorName string `bson:"author_name" json:"authorName"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Resource is shared study material with optional file attachments.
type Resource struct {
	OID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ResourceID int64              `bson:"resource_id" json:"id"`

	Title       string `bson:"title" json:"title"`
	TitleCI     string `bson:"title_ci" json:"-"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`

	Files []ResourceFile `bson:"files" json:"files"`

	UploaderID   int64  `bson:"uploader_id" json:"uploaderId"`
	UploaderName string `bson:"uploader_name" json:"uploaderName"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ResourceFile is one stored attachment on a resource.
type ResourceFile struct {
	Path        string `bson:"path" json:"-"` // storage path, internal
	FileName    string `bson:"file_name" json:"fileName"`
	Size        int64  `bson:"size" json:"size"`
	ContentType string `bson:"content_type" json:"contentType"`
	URL         string `bson:"-" json:"url,omitempty"` // filled at render time
}

// HasFiles returns true if the resource has at least one attachment.
func (r *Resource) HasFiles() bool {
	return len(r.Files) > 0
}
