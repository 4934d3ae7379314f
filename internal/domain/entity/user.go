package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record keyed by wallet address. The role is chosen
// at registration and never changes for that address.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	WalletAddress string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"wallet_address"`
	UserType      string    `gorm:"type:varchar(50);not null" json:"user_type"`
	FullName      string    `gorm:"type:varchar(255)" json:"full_name"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  *Doctor  `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// User type constants
const (
	UserTypePatient = "patient"
	UserTypeDoctor  = "doctor"
)

// IsDoctor reports whether the user registered as a doctor.
func (u *User) IsDoctor() bool {
	return u.UserType == UserTypeDoctor
}

// IsPatient reports whether the user registered as a patient.
func (u *User) IsPatient() bool {
	return u.UserType == UserTypePatient
}
