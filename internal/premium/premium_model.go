package premium

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/gambo-stadium/gambo-api/internal/models"
	"gorm.io/gorm"
)

const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Player is one roster entry of a premium team. Age stays a string, the
// shape the enrollment form submits.
type Player struct {
	Name string `json:"name"`
	Age  string `json:"age"`
}

// PlayerList is the JSON column holding a team's roster.
type PlayerList []Player

func (p PlayerList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan unmarshals a JSON column into the roster.
func (p *PlayerList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	default:
		return fmt.Errorf("PlayerList: expected []byte or string, got %T", src)
	}
}

// PremiumTeam is one enrollment into a coached training package. The roster
// is fixed after creation; only the status moves.
type PremiumTeam struct {
	gorm.Model
	UserID       uint               `gorm:"index;not null" json:"userId"`
	Coach        string             `gorm:"not null" json:"coach"`
	CoachID      *uint              `json:"coachId,omitempty"`
	Package      string             `gorm:"not null" json:"package"`
	StartDate    string             `gorm:"not null" json:"startDate"`
	EndDate      string             `gorm:"not null" json:"endDate"`
	TrainingDays models.StringSlice `gorm:"type:json" json:"trainingDays"`
	Players      PlayerList         `gorm:"type:json" json:"players"`
	Status       string             `gorm:"type:VARCHAR(20);check:status IN ('active','pending','cancelled','')" json:"status"`
}

// EffectiveStatus treats a record without a persisted status as active,
// which is how older records were written.
func (t *PremiumTeam) EffectiveStatus() string {
	if t.Status == "" {
		return StatusActive
	}
	return t.Status
}

// Coach is administrative reference data. Enrollments keep the coach's
// display name and, when it resolves, the id as well.
type Coach struct {
	gorm.Model
	Name           string             `gorm:"uniqueIndex;not null" json:"name"`
	Specialization string             `json:"specialization"`
	Experience     string             `json:"experience"`
	Availability   models.StringSlice `gorm:"type:json" json:"availability"`
}

// PremiumProgram is a purchasable training package.
type PremiumProgram struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}
