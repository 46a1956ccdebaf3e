package models

import "time"

// Reviewer is the public face of the user who wrote a review.
type Reviewer struct {
	ID       string `bson:"id" json:"id"`
	Username string `bson:"username" json:"username"`
	Name     string `bson:"name" json:"name"`
}

// Review is a guest's rating of a room or an experience.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	Kind      Kind      `bson:"kind" json:"kind"`
	SubjectID string    `bson:"subject_id" json:"subject_id"`
	User      Reviewer  `bson:"user" json:"user"`
	Payload   string    `bson:"payload" json:"payload"`
	Rating    int       `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Subject is the room or experience the review is about.
func (r Review) Subject() Subject {
	return Subject{Kind: r.Kind, ID: r.SubjectID}
}

// ReviewInput is the body accepted when posting a review.
type ReviewInput struct {
	Payload string `json:"payload" binding:"required"`
	Rating  int    `json:"rating"`
}

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)
