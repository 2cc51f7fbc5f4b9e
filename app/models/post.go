package models

import (
	"errors"
	"time"
)

var (
	// ErrAlreadyLiked is returned when a user likes a post twice.
	ErrAlreadyLiked = errors.New("post already liked by user")
	// ErrNotLiked is returned when a user unlikes a post they never liked.
	ErrNotLiked = errors.New("post not liked by user")
	// ErrCommentNotFound is returned when a comment id is not on the post.
	ErrCommentNotFound = errors.New("comment not found")
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Date.IsZero() {
		return errors.New("date cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	if p.Likes == nil {
		p.Likes = []Like{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}

// LikedBy reports whether the user already has a like on the post.
func (p *Post) LikedBy(userID string) bool {
	for _, like := range p.Likes {
		if like.User == userID {
			return true
		}
	}
	return false
}

// AddLike records a like for the user, newest first. A user holds at
// most one like per post; liking again fails with ErrAlreadyLiked and
// leaves the list unchanged.
func (p *Post) AddLike(userID string) error {
	if p.LikedBy(userID) {
		return ErrAlreadyLiked
	}
	p.Likes = append([]Like{{User: userID}}, p.Likes...)
	return nil
}

// RemoveLike removes the user's like from the post. Unliking a post the
// user never liked fails with ErrNotLiked and leaves the list unchanged.
func (p *Post) RemoveLike(userID string) error {
	for i, like := range p.Likes {
		if like.User == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return ErrNotLiked
}

// AddComment prepends a comment to the post, newest first.
func (p *Post) AddComment(comment Comment) error {
	if comment.ID == "" {
		return errors.New("comment id is required")
	}
	p.Comments = append([]Comment{comment}, p.Comments...)
	return nil
}

// RemoveComment removes the comment with the given id from the post.
func (p *Post) RemoveComment(commentID string) error {
	for i, comment := range p.Comments {
		if comment.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}
