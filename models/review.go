package models

import "time"

// Star rating bounds, inclusive.
const (
	MinStarRating = 1
	MaxStarRating = 5
)

// Review is a client testimonial shown on the public page.
type Review struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	ReviewText string    `json:"review_text"`
	StarRating int       `json:"star_rating"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Review.
func (r Review) TableName() string {
	return "reviews"
}

// ReviewInput is the payload for creating a review.
type ReviewInput struct {
	ClientName string `json:"client_name"`
	ReviewText string `json:"review_text"`
	StarRating int    `json:"star_rating"`
}

// ReviewUpdate is a partial review update. Nil fields are left unchanged.
type ReviewUpdate struct {
	ClientName *string `json:"client_name,omitempty"`
	ReviewText *string `json:"review_text,omitempty"`
	StarRating *int    `json:"star_rating,omitempty"`
}

// IsEmpty reports whether u changes nothing.
func (u ReviewUpdate) IsEmpty() bool {
	return u.ClientName == nil && u.ReviewText == nil && u.StarRating == nil
}

// Apply returns r with the non-nil fields of u applied.
func (u ReviewUpdate) Apply(r Review) Review {
	if u.ClientName != nil {
		r.ClientName = *u.ClientName
	}
	if u.ReviewText != nil {
		r.ReviewText = *u.ReviewText
	}
	if u.StarRating != nil {
		r.StarRating = *u.StarRating
	}
	return r
}
