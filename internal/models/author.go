package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName   string     `json:"first_name" gorm:"size:100;not null"`
	FamilyName  string     `json:"family_name" gorm:"size:100;not null"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

func (Author) TableName() string {
	return "authors"
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// DisplayName returns "family, first", or an empty string when either
// name part is missing.
func (a Author) DisplayName() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s", a.FamilyName, a.FirstName)
}

// Lifespan renders the birth/death range for list and detail pages.
// Death alone is never shown: no birth date means an empty string.
func (a Author) Lifespan() string {
	if a.DateOfBirth == nil {
		return ""
	}
	if a.DateOfDeath == nil {
		return fmt.Sprintf("%s –", formatDate(a.DateOfBirth))
	}
	return fmt.Sprintf("%s – %s", formatDate(a.DateOfBirth), formatDate(a.DateOfDeath))
}

// Age returns the author's age in whole years as "<n> yrs", counted up
// to the date of death when present, otherwise up to now. Empty string
// when the birth date is missing.
func (a Author) Age() string {
	if a.DateOfBirth == nil {
		return ""
	}
	until := time.Now()
	if a.DateOfDeath != nil {
		until = *a.DateOfDeath
	}
	years := wholeYearsBetween(*a.DateOfBirth, until)
	if years < 0 {
		years = 0
	}
	return fmt.Sprintf("%d yrs", years)
}

func (a Author) DateOfBirthFormatted() string { return formatDate(a.DateOfBirth) }
func (a Author) DateOfDeathFormatted() string { return formatDate(a.DateOfDeath) }

// ISO forms populate <input type="date"> values on the update form.
func (a Author) DateOfBirthISO() string { return formatDateISO(a.DateOfBirth) }
func (a Author) DateOfDeathISO() string { return formatDateISO(a.DateOfDeath) }

func (a Author) URL() string {
	return fmt.Sprintf("/catalog/author/%s", a.ID)
}

func wholeYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	// Back off one year if the anniversary has not passed yet.
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}
