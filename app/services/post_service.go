package services

import (
	"errors"
	"fmt"
	"time"

	"postboard/app/models"
	"postboard/app/repositories"
	"postboard/app/validation"

	"github.com/google/uuid"
)

// ErrNotAuthorized is returned when a user acts on a post they do not own.
var ErrNotAuthorized = errors.New("user is not authorized")

// PostService handles business logic for posts and their engagement
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePost creates a new post with validation
func (s *PostService) CreatePost(text, name, avatar, userID string) (*models.Post, error) {
	if errs, ok := validation.ValidatePostInput(text); !ok {
		return nil, &validation.Error{Fields: errs}
	}

	post := &models.Post{
		Text:   text,
		Name:   name,
		Avatar: avatar,
		User:   userID,
		Date:   time.Now(),
	}

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %v", err)
	}

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts retrieves all posts ordered by date descending
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.repo.List()
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.repo.GetByID(id)
}

// DeletePost deletes a post after verifying ownership
func (s *PostService) DeletePost(id int, userID string) error {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if post.User != userID {
		return ErrNotAuthorized
	}

	return s.repo.Delete(id)
}

// LikePost records a like for the user on the post
func (s *PostService) LikePost(id int, userID string) (*models.Post, error) {
	return s.repo.Mutate(id, func(post *models.Post) error {
		return post.AddLike(userID)
	})
}

// UnlikePost removes the user's like from the post
func (s *PostService) UnlikePost(id int, userID string) (*models.Post, error) {
	return s.repo.Mutate(id, func(post *models.Post) error {
		return post.RemoveLike(userID)
	})
}

// AddComment adds a comment to the post with validation
func (s *PostService) AddComment(id int, text, name, avatar, userID string) (*models.Post, error) {
	if errs, ok := validation.ValidatePostInput(text); !ok {
		return nil, &validation.Error{Fields: errs}
	}

	comment := models.Comment{
		ID:     uuid.NewString(),
		Text:   text,
		Name:   name,
		Avatar: avatar,
		User:   userID,
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %v", err)
	}

	return s.repo.Mutate(id, func(post *models.Post) error {
		return post.AddComment(comment)
	})
}

// DeleteComment removes a comment from the post. Ownership of the
// comment is not checked, matching the behavior the API has always had.
func (s *PostService) DeleteComment(postID int, commentID string) (*models.Post, error) {
	return s.repo.Mutate(postID, func(post *models.Post) error {
		return post.RemoveComment(commentID)
	})
}
