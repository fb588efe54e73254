package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/pkg/metrics"
	"github.com/gambo-stadium/gambo-api/pkg/token"
	"github.com/gambo-stadium/gambo-api/pkg/utils"
	"github.com/gambo-stadium/gambo-api/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, config: cfg}
}

// Signup godoc
// @Summary      Register a new user
// @Description  Creates an account with role "user" and returns a signed
// @Description  bearer token together with the public user record.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        signup body SignupRequest true "Signup details"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} map[string]string "Validation error"
// @Failure      409 {object} map[string]string "Email already in use"
// @Failure      500 {object} map[string]string
// @Router       /users/signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	email := strings.ToLower(req.Email)
	if _, err := ac.repo.GetUserByEmail(email); err == nil {
		utils.ConflictJSON(c, "Email already in use")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("signup email lookup failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}

	newUser := &user.User{
		Name:     req.Name,
		Email:    email,
		Password: hashed,
		Role:     user.RoleUser,
		Active:   true,
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		// A racing signup can slip past the lookup; the unique index on
		// email is the real guard.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.ConflictJSON(c, "Email already in use")
			return
		}
		log.Printf("creating user failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	signed, err := token.GenerateJWT(newUser.ID, newUser.Role, ac.config.JWT.Secret, ac.config.JWT.ExpiryHours)
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}

	metrics.SignupsTotal.Inc()
	c.JSON(http.StatusCreated, AuthResponse{
		Token: signed,
		User:  user.FilterUserRecord(newUser),
	})
}

// Login godoc
// @Summary      Login user
// @Description  Authenticates with email and password. Unknown email and
// @Description  wrong password answer identically.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Login credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} map[string]string "Invalid input"
// @Failure      401 {object} map[string]string "Invalid email or password"
// @Failure      500 {object} map[string]string
// @Router       /users/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	foundUser, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}

	if !utils.CheckPassword(foundUser.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	signed, err := token.GenerateJWT(foundUser.ID, foundUser.Role, ac.config.JWT.Secret, ac.config.JWT.ExpiryHours)
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: signed,
		User:  user.FilterUserRecord(foundUser),
	})
}
