package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"postboard/app/middleware"
	"postboard/app/models"
	"postboard/app/repositories"
	"postboard/app/services"
	"postboard/app/validation"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts and their engagement
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(service *services.PostService) *PostController {
	return &PostController{postService: service}
}

// NewPostControllerWithDB creates a new PostController with a DB instance
func NewPostControllerWithDB(db *badger.DB) *PostController {
	repo := repositories.NewBadgerPostRepository(db)
	return &PostController{postService: services.NewPostService(repo)}
}

// postInput is the request body for creating posts and comments
type postInput struct {
	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Test handles the route smoke check
func (pc *PostController) Test(w http.ResponseWriter, r *http.Request) {
	pc.sendJSON(w, http.StatusOK, map[string]string{"msg": "Posts works"})
}

// Index handles listing all posts, newest first
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		pc.sendJSON(w, http.StatusNotFound, map[string]string{"nopostsfound": "No post found"})
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	pc.sendJSON(w, http.StatusOK, posts)
}

// Show handles fetching a single post by ID
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pc.postID(r)
	if err != nil {
		pc.sendJSON(w, http.StatusNotFound, map[string]string{"nopostfound": "No post found with that ID"})
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.sendJSON(w, http.StatusNotFound, map[string]string{"nopostfound": "No post found with that ID"})
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.UserFromContext(r.Context())
	if !ok {
		pc.sendJSON(w, http.StatusUnauthorized, map[string]string{"notauthorized": "Authorization required"})
		return
	}

	var input postInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		pc.sendJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON: " + err.Error()})
		return
	}

	post, err := pc.postService.CreatePost(input.Text, input.Name, input.Avatar, ident.UserID)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post owned by the requesting user
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.UserFromContext(r.Context())
	if !ok {
		pc.sendJSON(w, http.StatusUnauthorized, map[string]string{"notauthorized": "Authorization required"})
		return
	}

	id, err := pc.postID(r)
	if err != nil {
		pc.sendJSON(w, http.StatusNotFound, map[string]string{"nopostfound": "No post found"})
		return
	}

	if err := pc.postService.DeletePost(id, ident.UserID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthorized):
			pc.sendJSON(w, http.StatusUnauthorized, map[string]string{"notauthorized": "User is not authorized"})
		case errors.Is(err, repositories.ErrNotFound):
			pc.sendJSON(w, http.StatusNotFound, map[string]string{"nopostfound": "No post found"})
		default:
			pc.sendJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	pc.sendJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Like handles liking a post
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.UserFromContext(r.Context())
	if !ok {
		pc.sendJSON(w, http.StatusUnauthorized, map[string]string{"notauthorized": "Authorization required"})
		return
	}

	id, err := pc.postID(r)
	if err != nil {
		pc.sendJSON(w, http.StatusNotFound, map[string]string{"postnotfound": "No post found"})
		return
	}

	post, err := pc.postService.LikePost(id, ident.UserID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyLiked):
			pc.sendJSON(w, http.StatusBadRequest, map[string]string{"alreadyliked": "You have already liked this post"})
		case errors.Is(err, repositories.ErrNotFound):
			pc.sendJSON(w, http.StatusNotFound, map[string]string{"postnotfound": "No post found"})
		default:
			pc.sendJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// Unlike handles removing the user's like from a post
func (pc *PostController) Unlike(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.UserFromContext(r.Context())
	if !ok {
		pc.sendJSON(w, http.StatusUnauthorized, map[string]string{"notauthorized": "Authorization required"})
		return
	}

	id, err := pc.postID(r)
	if err != nil {
		pc.sendJSON(w, http.StatusNotFound, map[string]string{"postnotfound": "No post found"})
		return
	}

	post, err := pc.postService.UnlikePost(id, ident.UserID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotLiked):
			pc.sendJSON(w, http.StatusBadRequest, map[string]string{"notliked": "You have not liked the post yet"})
		case errors.Is(err, repositories.ErrNotFound):
			pc.sendJSON(w, http.StatusNotFound, map[string]string{"postnotfound": "No post found"})
		default:
			pc.sendJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// Comment handles adding a comment to a post
func (pc *PostController) Comment(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.UserFromContext(r.Context())
	if !ok {
		pc.sendJSON(w, http.StatusUnauthorized, map[string]string{"notauthorized": "Authorization required"})
		return
	}

	id, err := pc.postID(r)
	if err != nil {
		pc.sendJSON(w, http.StatusNotFound, map[string]string{"postnotfound": "No post found"})
		return
	}

	var input postInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		pc.sendJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON: " + err.Error()})
		return
	}

	post, err := pc.postService.AddComment(id, input.Text, input.Name, input.Avatar, ident.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			pc.sendJSON(w, http.StatusNotFound, map[string]string{"postnotfound": "No post found"})
			return
		}
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// DeleteComment handles removing a comment from a post
func (pc *PostController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		pc.sendJSON(w, http.StatusUnauthorized, map[string]string{"notauthorized": "Authorization required"})
		return
	}

	id, err := pc.postID(r)
	if err != nil {
		pc.sendJSON(w, http.StatusNotFound, map[string]string{"commentnotfound": "No comment found"})
		return
	}
	commentID := mux.Vars(r)["comment_id"]

	post, err := pc.postService.DeleteComment(id, commentID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCommentNotFound):
			pc.sendJSON(w, http.StatusNotFound, map[string]string{"commentnotfound": "Comment does not exist"})
		case errors.Is(err, repositories.ErrNotFound):
			pc.sendJSON(w, http.StatusNotFound, map[string]string{"commentnotfound": "No comment found"})
		default:
			pc.sendJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// postID extracts the post ID from the route
func (pc *PostController) postID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// sendServiceError maps validation failures to a 400 with the field
// error map; anything else is a 500.
func (pc *PostController) sendServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		pc.sendJSON(w, http.StatusBadRequest, verr.Fields)
		return
	}
	pc.sendJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
