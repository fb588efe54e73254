package premium

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/internal/middleware"
	"github.com/gambo-stadium/gambo-api/pkg/metrics"
	"github.com/gambo-stadium/gambo-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PremiumController handles API requests over the enrollment ledger and the
// coach/program reference data.
type PremiumController struct {
	repo   PremiumRepository
	config *config.Config
}

// NewPremiumController creates a new PremiumController.
func NewPremiumController(repo PremiumRepository, cfg *config.Config) *PremiumController {
	return &PremiumController{repo: repo, config: cfg}
}

// PlayerEntry mirrors Player with the roster constraints enforced.
type PlayerEntry struct {
	Name string `json:"name" binding:"required"`
	Age  string `json:"age" binding:"required"`
}

// CreateEnrollmentRequest carries a premium team signup. The constraints the
// original form checked in the browser are enforced here instead.
type CreateEnrollmentRequest struct {
	Coach        string        `json:"coach" binding:"required" example:"Carlos Mendez"`
	Package      string        `json:"package" binding:"required" example:"Elite Squad"`
	StartDate    string        `json:"startDate" binding:"required" example:"2025-06-01"`
	EndDate      string        `json:"endDate" binding:"required" example:"2025-08-31"`
	TrainingDays []string      `json:"trainingDays" binding:"required,min=1,max=3,dive,required"`
	Players      []PlayerEntry `json:"players" binding:"required,min=1,max=6,dive"`
}

// UpdateEnrollmentRequest is a partial enrollment patch. Owners may only
// move status to cancelled.
type UpdateEnrollmentRequest struct {
	Coach   *string `json:"coach,omitempty"`
	Package *string `json:"package,omitempty"`
	Status  *string `json:"status,omitempty" binding:"omitempty,oneof=active pending cancelled"`
}

type CreateCoachRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialization string   `json:"specialization" binding:"required"`
	Experience     string   `json:"experience"`
	Availability   []string `json:"availability" binding:"omitempty,dive,required"`
}

type CreateProgramRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// CreateEnrollment godoc
// @Summary      Enroll a premium team
// @Description  Persists an enrollment for the authenticated user with an
// @Description  active status. 1-3 training days, 1-6 named players.
// @Tags         PremiumTeams
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        enrollment body CreateEnrollmentRequest true "Enrollment details"
// @Success      201 {object} PremiumTeam
// @Failure      400 {object} map[string]string "Validation error"
// @Router       /premiumTeams [post]
func (pc *PremiumController) CreateEnrollment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	var req CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	players := make(PlayerList, 0, len(req.Players))
	for _, p := range req.Players {
		players = append(players, Player{Name: p.Name, Age: p.Age})
	}

	team := &PremiumTeam{
		UserID:       userID,
		Coach:        req.Coach,
		Package:      req.Package,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		TrainingDays: req.TrainingDays,
		Players:      players,
		Status:       StatusActive,
	}

	// Coaches were historically matched by display name only; keep the id
	// alongside when the name resolves.
	if coach, findErr := pc.repo.GetCoachByName(req.Coach); findErr == nil {
		team.CoachID = &coach.ID
	}

	if err := pc.repo.CreateTeam(team); err != nil {
		log.Printf("creating enrollment failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	metrics.EnrollmentsCreated.Inc()
	c.JSON(http.StatusCreated, team)
}

// GetEnrollments godoc
// @Summary      List all premium teams
// @Tags         PremiumTeams
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} PremiumTeam
// @Router       /premiumTeams [get]
func (pc *PremiumController) GetEnrollments(c *gin.Context) {
	teams, err := pc.repo.GetAllTeams()
	if err != nil {
		log.Printf("listing enrollments failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	for i := range teams {
		teams[i].Status = teams[i].EffectiveStatus()
	}
	c.JSON(http.StatusOK, teams)
}

// GetEnrollmentsByUser godoc
// @Summary      List a user's premium teams
// @Tags         PremiumTeams
// @Security     BearerAuth
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200 {array} PremiumTeam
// @Failure      403 {object} map[string]string
// @Router       /premiumTeams/user/{userId} [get]
func (pc *PremiumController) GetEnrollmentsByUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid user id")
		return
	}

	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}
	if callerID != uint(targetID) && !middleware.IsAdmin(c) {
		utils.ForbiddenJSON(c)
		return
	}

	teams, err := pc.repo.GetTeamsByUserID(uint(targetID))
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	for i := range teams {
		teams[i].Status = teams[i].EffectiveStatus()
	}
	c.JSON(http.StatusOK, teams)
}

// UpdateEnrollment godoc
// @Summary      Patch a premium team
// @Description  Owners may only cancel; cancelling twice is a no-op, not an
// @Description  error. Admins may also reassign coach and package.
// @Tags         PremiumTeams
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Premium team ID"
// @Param        patch body UpdateEnrollmentRequest true "Partial patch"
// @Success      200 {object} PremiumTeam
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /premiumTeams/{id} [patch]
func (pc *PremiumController) UpdateEnrollment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid premium team id")
		return
	}

	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}
	isAdmin := middleware.IsAdmin(c)

	var req UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	team, err := pc.repo.GetTeamByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Premium team")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}

	if !isAdmin {
		if team.UserID != callerID {
			utils.ForbiddenJSON(c)
			return
		}
		if req.Coach != nil || req.Package != nil ||
			req.Status == nil || *req.Status != StatusCancelled {
			utils.ForbiddenJSON(c)
			return
		}
	}

	if req.Coach != nil {
		team.Coach = *req.Coach
		team.CoachID = nil
		if coach, findErr := pc.repo.GetCoachByName(*req.Coach); findErr == nil {
			team.CoachID = &coach.ID
		}
	}
	if req.Package != nil {
		team.Package = *req.Package
	}
	if req.Status != nil {
		if *req.Status == StatusCancelled && team.Status == StatusCancelled {
			// idempotent cancel
			c.JSON(http.StatusOK, team)
			return
		}
		team.Status = *req.Status
	}

	if err := pc.repo.UpdateTeam(team); err != nil {
		log.Printf("updating enrollment %d failed: %v", team.ID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// GetCoaches godoc
// @Summary      List coaches
// @Tags         Coaches
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} Coach
// @Router       /coaches [get]
func (pc *PremiumController) GetCoaches(c *gin.Context) {
	coaches, err := pc.repo.GetAllCoaches()
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, coaches)
}

// CreateCoach godoc
// @Summary      Create a coach
// @Tags         Coaches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        coach body CreateCoachRequest true "Coach details"
// @Success      201 {object} Coach
// @Failure      409 {object} map[string]string "Coach name already exists"
// @Router       /admin/coaches [post]
func (pc *PremiumController) CreateCoach(c *gin.Context) {
	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	if _, err := pc.repo.GetCoachByName(req.Name); err == nil {
		utils.ConflictJSON(c, "Coach with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("coach lookup failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	coach := &Coach{
		Name:           req.Name,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Availability:   req.Availability,
	}
	if err := pc.repo.CreateCoach(coach); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.ConflictJSON(c, "Coach with this name already exists")
			return
		}
		log.Printf("creating coach failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, coach)
}

// GetPrograms godoc
// @Summary      List premium programs
// @Tags         Programs
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} PremiumProgram
// @Router       /programs [get]
func (pc *PremiumController) GetPrograms(c *gin.Context) {
	programs, err := pc.repo.GetAllPrograms()
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, programs)
}

// CreateProgram godoc
// @Summary      Create a premium program
// @Tags         Programs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        program body CreateProgramRequest true "Program details"
// @Success      201 {object} PremiumProgram
// @Router       /admin/programs [post]
func (pc *PremiumController) CreateProgram(c *gin.Context) {
	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	program := &PremiumProgram{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := pc.repo.CreateProgram(program); err != nil {
		log.Printf("creating program failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}
