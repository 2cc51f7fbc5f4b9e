package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"postboard/app/auth"
	"postboard/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func setupTestRouter(t *testing.T) *mux.Router {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return SetupRoutes(db, testSecret)
}

func tokenFor(t *testing.T, userID string) string {
	token, err := auth.GenerateToken(testSecret, auth.Identity{UserID: userID}, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(router *mux.Router, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTestEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, "GET", "/api/posts/test", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Posts works", body["msg"])
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	router := setupTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{"POST", "/api/posts"},
		{"DELETE", "/api/posts/1"},
		{"POST", "/api/posts/like/1"},
		{"POST", "/api/posts/unlike/1"},
		{"POST", "/api/posts/comment/1"},
		{"DELETE", "/api/posts/comment/1/abc"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := doRequest(router, p.method, p.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestPostLifecycle(t *testing.T) {
	router := setupTestRouter(t)
	tokenA := tokenFor(t, "user-a")
	tokenB := tokenFor(t, "user-b")

	var postID int

	t.Run("create post as user A", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/posts",
			`{"text":"Hello world, this is a test post","name":"Alice","avatar":"a.png"}`, tokenA)
		require.Equal(t, http.StatusOK, w.Code)

		var post models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		assert.Equal(t, "Hello world, this is a test post", post.Text)
		assert.Equal(t, "user-a", post.User)
		assert.Equal(t, "Alice", post.Name)
		assert.Empty(t, post.Likes)
		assert.Empty(t, post.Comments)
		postID = post.ID
	})

	t.Run("create post with short text fails", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/posts", `{"text":"short"}`, tokenA)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Post must be 10 to 300 characters.", body["text"])
	})

	t.Run("list returns posts newest first", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/posts", `{"text":"A second post, created later on"}`, tokenB)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, "GET", "/api/posts", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var posts []models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
		require.Len(t, posts, 2)
		assert.Equal(t, "A second post, created later on", posts[0].Text)
	})

	t.Run("fetch single post", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/posts/"+strconv.Itoa(postID), "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var post models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		assert.Equal(t, postID, post.ID)
	})

	t.Run("fetch missing post is 404", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/posts/999", "", "")
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "No post found with that ID", body["nopostfound"])
	})

	t.Run("delete as user B is unauthorized", func(t *testing.T) {
		w := doRequest(router, "DELETE", "/api/posts/"+strconv.Itoa(postID), "", tokenB)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "User is not authorized", body["notauthorized"])
	})

	t.Run("delete as user A succeeds", func(t *testing.T) {
		w := doRequest(router, "DELETE", "/api/posts/"+strconv.Itoa(postID), "", tokenA)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]bool
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body["success"])
	})
}

func TestEngagementFlow(t *testing.T) {
	router := setupTestRouter(t)
	tokenA := tokenFor(t, "user-a")
	tokenB := tokenFor(t, "user-b")

	w := doRequest(router, "POST", "/api/posts", `{"text":"A post to like and discuss"}`, tokenA)
	require.Equal(t, http.StatusOK, w.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	id := strconv.Itoa(post.ID)

	t.Run("like and double-like", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/posts/like/"+id, "", tokenB)
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Len(t, updated.Likes, 1)
		assert.Equal(t, "user-b", updated.Likes[0].User)

		w = doRequest(router, "POST", "/api/posts/like/"+id, "", tokenB)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "You have already liked this post", body["alreadyliked"])
	})

	t.Run("unlike and unlike again", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/posts/unlike/"+id, "", tokenB)
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Empty(t, updated.Likes)

		w = doRequest(router, "POST", "/api/posts/unlike/"+id, "", tokenB)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "You have not liked the post yet", body["notliked"])
	})

	t.Run("comment, then delete it", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/posts/comment/"+id,
			`{"text":"This is a comment on the post","name":"Bob"}`, tokenB)
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Len(t, updated.Comments, 1)
		commentID := updated.Comments[0].ID
		require.NotEmpty(t, commentID)

		w = doRequest(router, "DELETE", "/api/posts/comment/"+id+"/"+commentID, "", tokenA)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Empty(t, updated.Comments)
	})

	t.Run("comment on a missing post is 404", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/posts/comment/999",
			`{"text":"This comment has no home post"}`, tokenB)
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "No post found", body["postnotfound"])
	})

	t.Run("deleting a missing comment is 404", func(t *testing.T) {
		w := doRequest(router, "DELETE", "/api/posts/comment/"+id+"/nope", "", tokenA)
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Comment does not exist", body["commentnotfound"])
	})
}
