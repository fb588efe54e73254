package premium

import (
	"gorm.io/gorm"
)

// PremiumRepository defines the database operations over enrollments,
// coaches and programs.
type PremiumRepository interface {
	CreateTeam(t *PremiumTeam) error
	GetTeamByID(id uint) (*PremiumTeam, error)
	GetAllTeams() ([]PremiumTeam, error)
	GetTeamsByUserID(userID uint) ([]PremiumTeam, error)
	UpdateTeam(t *PremiumTeam) error

	CreateCoach(c *Coach) error
	GetCoachByName(name string) (*Coach, error)
	GetAllCoaches() ([]Coach, error)

	CreateProgram(p *PremiumProgram) error
	GetAllPrograms() ([]PremiumProgram, error)
}

type premiumRepository struct {
	db *gorm.DB
}

// NewPremiumRepository creates a new premium repository
func NewPremiumRepository(db *gorm.DB) PremiumRepository {
	return &premiumRepository{db: db}
}

func (r *premiumRepository) CreateTeam(t *PremiumTeam) error {
	return r.db.Create(t).Error
}

func (r *premiumRepository) GetTeamByID(id uint) (*PremiumTeam, error) {
	var t PremiumTeam
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *premiumRepository) GetAllTeams() ([]PremiumTeam, error) {
	var teams []PremiumTeam
	if err := r.db.Order("created_at desc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *premiumRepository) GetTeamsByUserID(userID uint) ([]PremiumTeam, error) {
	var teams []PremiumTeam
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *premiumRepository) UpdateTeam(t *PremiumTeam) error {
	return r.db.Save(t).Error
}

func (r *premiumRepository) CreateCoach(c *Coach) error {
	return r.db.Create(c).Error
}

func (r *premiumRepository) GetCoachByName(name string) (*Coach, error) {
	var c Coach
	if err := r.db.Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *premiumRepository) GetAllCoaches() ([]Coach, error) {
	var coaches []Coach
	if err := r.db.Order("name asc").Find(&coaches).Error; err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *premiumRepository) CreateProgram(p *PremiumProgram) error {
	return r.db.Create(p).Error
}

func (r *premiumRepository) GetAllPrograms() ([]PremiumProgram, error) {
	var programs []PremiumProgram
	if err := r.db.Order("name asc").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}
