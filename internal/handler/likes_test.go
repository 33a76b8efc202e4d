package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop2008/movie-recommendation-app/internal/model"
	"github.com/shop2008/movie-recommendation-app/internal/store"
)

type stubLikeStore struct {
	likes     []model.LikedMovie
	createErr error
	deleted   [][2]string
}

func (s *stubLikeStore) Create(_ context.Context, userID string, detail model.MovieDetail) (model.LikedMovie, error) {
	if s.createErr != nil {
		return model.LikedMovie{}, s.createErr
	}
	like := model.LikedMovie{ID: "like-1", UserID: userID, Title: detail.Title, Detail: detail, LikedAt: time.Now()}
	s.likes = append(s.likes, like)
	return like, nil
}

func (s *stubLikeStore) Delete(_ context.Context, userID, title string) error {
	s.deleted = append(s.deleted, [2]string{userID, title})
	return nil
}

func (s *stubLikeStore) ListByUser(_ context.Context, userID string) ([]model.LikedMovie, error) {
	if userID == "" {
		return nil, store.ErrUserIDRequired
	}
	return s.likes, nil
}

func likeRouter(h *LikeHandler) *gin.Engine {
	router := gin.New()
	router.GET("/users/:userId/likes", h.List)
	router.POST("/users/:userId/likes", h.Create)
	router.DELETE("/users/:userId/likes/:title", h.Delete)
	return router
}

func TestLikes_CreateAndList(t *testing.T) {
	likes := &stubLikeStore{}
	router := likeRouter(NewLikeHandler(likes, 0))

	body, err := json.Marshal(model.MovieDetail{Title: "Dune", Year: "2021"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/user-1/likes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/user-1/likes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Likes []model.LikedMovie `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Likes, 1)
	assert.Equal(t, "Dune", resp.Likes[0].Title)
}

func TestLikes_DuplicateConflicts(t *testing.T) {
	likes := &stubLikeStore{createErr: store.ErrAlreadyLiked}
	router := likeRouter(NewLikeHandler(likes, 0))

	body, _ := json.Marshal(model.MovieDetail{Title: "Dune"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/user-1/likes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLikes_MissingTitleRejected(t *testing.T) {
	likes := &stubLikeStore{createErr: store.ErrTitleRequired}
	router := likeRouter(NewLikeHandler(likes, 0))

	body, _ := json.Marshal(model.MovieDetail{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/user-1/likes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikes_Delete(t *testing.T) {
	likes := &stubLikeStore{}
	router := likeRouter(NewLikeHandler(likes, 0))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/user-1/likes/Dune", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, [][2]string{{"user-1", "Dune"}}, likes.deleted)
}

func TestLikes_UnavailableWithoutStore(t *testing.T) {
	router := likeRouter(NewLikeHandler(nil, 0))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/user-1/likes", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLikes_EmptyListIsArray(t *testing.T) {
	router := likeRouter(NewLikeHandler(&stubLikeStore{}, 0))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/user-1/likes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likes":[]`)
}
