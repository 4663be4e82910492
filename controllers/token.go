package controllers

import (
	"bistro-boss/utils"
	"encoding/json"
	"net/http"
)

// TokenController issues identity tokens
type TokenController struct {
	Tokens *utils.TokenService
}

// NewTokenController creates a new TokenController
func NewTokenController(tokens *utils.TokenService) *TokenController {
	return &TokenController{Tokens: tokens}
}

// IssueToken signs the posted payload; the payload must carry a valid email
func (tc *TokenController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	email, _ := payload["email"].(string)
	if err := utils.ValidateVar(email, "required,email"); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	token, err := tc.Tokens.Issue(payload)
	if err != nil {
		utils.Log.Errorf("issue token for %s: %v", email, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}
