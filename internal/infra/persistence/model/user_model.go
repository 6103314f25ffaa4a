package model

import "eventer/internal/domain/entity"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	UserName string `gorm:"type:varchar(100);unique;not null"`
	Email    string `gorm:"type:varchar(255);unique;not null"`
	Role     string `gorm:"type:varchar(20);not null"`
	Password string `gorm:"type:varchar(255);not null"`

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id and
// is unique, keeping the profile one-to-one with its account.
type ProfileModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     int64  `gorm:"uniqueIndex;not null"`
	FirstName  string `gorm:"type:varchar(100);not null"`
	LastName   string `gorm:"type:varchar(100);not null"`
	Age        int
	LocationID int64
	Location   LocationModel `gorm:"foreignKey:LocationID"`
	CategoryID int64
	Category   CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// FromUserDomain maps a pure domain user to its persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	m := &UserModel{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.Role.String(),
		Password: user.Password,
	}
	if user.Profile != nil {
		m.Profile = FromProfileDomain(user.Profile)
	}

	return m
}

// ToUserDomain maps a persistence model back to a pure domain user.
func ToUserDomain(m *UserModel) *entity.User {
	user := &entity.User{
		ID:       m.ID,
		UserName: m.UserName,
		Email:    m.Email,
		Role:     entity.Role(m.Role),
		Password: m.Password,
	}
	if m.Profile != nil {
		user.Profile = ToProfileDomain(m.Profile)
	}

	return user
}

// FromProfileDomain maps a pure domain profile to its persistence model.
func FromProfileDomain(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:         profile.ID,
		UserID:     profile.UserID,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Age:        profile.Age,
		LocationID: profile.Location.ID,
		Location:   *FromLocationDomain(&profile.Location),
		CategoryID: profile.Category.ID,
		Category:   *FromCategoryDomain(&profile.Category),
	}
}

// ToProfileDomain maps a persistence model back to a pure domain profile.
func ToProfileDomain(m *ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:        m.ID,
		UserID:    m.UserID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Age:       m.Age,
		Location:  ToLocationDomain(&m.Location),
		Category:  ToCategoryDomain(&m.Category),
	}
}
