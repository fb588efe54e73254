package user

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/internal/middleware"
	"github.com/gambo-stadium/gambo-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController handles API requests over the user collection.
type UserController struct {
	repo   UserRepository
	config *config.Config
}

// NewUserController creates a new UserController.
func NewUserController(repo UserRepository, cfg *config.Config) *UserController {
	return &UserController{repo: repo, config: cfg}
}

// UpdateUserRequest is a partial user patch. Pointer fields distinguish
// "not provided" from zero values.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	Active   *bool   `json:"active,omitempty"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
}

// GetUsers godoc
// @Summary      List all users
// @Description  Returns every registered user. Admin only.
// @Tags         Users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} UserResponse
// @Failure      401 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /users [get]
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.repo.GetAllUsers()
	if err != nil {
		log.Printf("listing users failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FilterUserRecord(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetUserByEmail godoc
// @Summary      Look up a user by email
// @Tags         Users
// @Security     BearerAuth
// @Produce      json
// @Param        email path string true "Email address"
// @Success      200 {object} UserResponse
// @Failure      404 {object} map[string]string
// @Router       /users/email/{email} [get]
func (uc *UserController) GetUserByEmail(c *gin.Context) {
	u, err := uc.repo.GetUserByEmail(c.Param("email"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "User")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, FilterUserRecord(u))
}

// UpdateUser godoc
// @Summary      Patch a user record
// @Description  Admins may patch any user and any field. A user may patch
// @Description  their own name, email, phone, location and password.
// @Tags         Users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        patch body UpdateUserRequest true "Partial user patch"
// @Success      200 {object} UserResponse
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /users/{id} [patch]
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid user id")
		return
	}

	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}
	isAdmin := middleware.IsAdmin(c)

	if !isAdmin && callerID != uint(id) {
		utils.ForbiddenJSON(c)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	// active and role are admin-only switches
	if !isAdmin && (req.Active != nil || req.Role != nil) {
		utils.ForbiddenJSON(c)
		return
	}

	u, err := uc.repo.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "User")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		existing, findErr := uc.repo.GetUserByEmail(email)
		if findErr == nil && existing.ID != u.ID {
			utils.ConflictJSON(c, "Email already in use")
			return
		}
		u.Email = email
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Location != nil {
		u.Location = *req.Location
	}
	if req.Password != nil {
		hashed, hashErr := utils.HashPassword(*req.Password)
		if hashErr != nil {
			utils.InternalErrorJSON(c, hashErr)
			return
		}
		u.Password = hashed
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	if req.Role != nil {
		u.Role = *req.Role
	}

	if err := uc.repo.UpdateUser(u); err != nil {
		log.Printf("updating user %d failed: %v", u.ID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, FilterUserRecord(u))
}
