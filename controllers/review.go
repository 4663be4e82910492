package controllers

import (
	"bistro-boss/repositories"
	"bistro-boss/utils"
	"context"
	"net/http"
	"time"
)

// ReviewController serves customer reviews
type ReviewController struct {
	Reviews repositories.IReviewRepository
}

func NewReviewController(reviews repositories.IReviewRepository) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

func (rc *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reviews, err := rc.Reviews.FindAll(ctx)
	if err != nil {
		utils.Log.Errorf("list reviews: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching reviews")
		return
	}
	utils.WriteJSON(w, http.StatusOK, reviews)
}
