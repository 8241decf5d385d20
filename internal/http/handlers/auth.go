package handlers

import (
	"net/http"
	"strings"
	"time"

	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
	"fastbus/internal/http/middleware"
	"fastbus/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}

	token, err := middleware.IssueToken(user.ID, user.Role, tokenTTL)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Email == "" || req.FullName == "" || len(req.Password) < 8 {
		RespondError(c, http.StatusBadRequest, "full_name, email and a password of 8+ chars are required", nil)
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleOperator {
		RespondError(c, http.StatusBadRequest, "role must be user or operator", nil)
		return
	}

	repo := repositories.UserRepository{}
	taken, err := repo.EmailTaken(req.Email)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check email", err)
		return
	}
	if taken {
		RespondError(c, http.StatusBadRequest, "email already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	id, err := repo.Create(models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		Gender:       strings.TrimSpace(req.Gender),
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registered",
		"user": gin.H{
			"id":        id,
			"full_name": req.FullName,
			"email":     req.Email,
			"phone":     req.Phone,
			"role":      role,
		},
	})
}
