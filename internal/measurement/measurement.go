package measurement

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitroutine/internal/routine"
)

var (
	ErrInvalidMeasurement = errors.New("invalid body measurement")
	ErrInvalidProfile     = errors.New("invalid user profile")
	ErrProfileNotFound    = errors.New("user profile not found")
	ErrProfileExists      = errors.New("user profile already exists")
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Measurement is one body measurement entry. Skinfold sites are in millimeters,
// weight and muscle mass in kilograms.
type Measurement struct {
	ID                    int       `json:"id"`
	UserID                int       `json:"userId"`
	WeeklyRoutineID       *int      `json:"weeklyRoutineId,omitempty"`
	Weight                float64   `json:"weight"`
	Chest                 *float64  `json:"chest"`
	Abdomen               *float64  `json:"abdomen"`
	Thigh                 *float64  `json:"thigh"`
	BypassMeasurementFlag bool      `json:"bypassMeasurementFlag"`
	BodyFatPercent        float64   `json:"bodyFatPercent"`
	MuscleMass            float64   `json:"muscleMass"`
	CreatedAt             time.Time `json:"createdAt"`
}

// HasSites reports whether all three skinfold sites are present.
func (m *Measurement) HasSites() bool {
	return m.Chest != nil && m.Abdomen != nil && m.Thigh != nil
}

// Validate checks a measurement ready to be stored. With the bypass flag set the user
// skipped the skinfold sites and provides the body fat directly.
func (m *Measurement) Validate() error {
	if m.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidMeasurement)
	}
	if !m.BypassMeasurementFlag {
		if !m.HasSites() {
			return fmt.Errorf("%w: chest, abdomen and thigh are required", ErrInvalidMeasurement)
		}
		if *m.Chest <= 0 || *m.Abdomen <= 0 || *m.Thigh <= 0 {
			return fmt.Errorf("%w: skinfold sites must be positive", ErrInvalidMeasurement)
		}
	}
	if m.BodyFatPercent <= 0 || m.BodyFatPercent >= 100 {
		return fmt.Errorf("%w: body fat %.1f%% out of range", ErrInvalidMeasurement, m.BodyFatPercent)
	}
	if m.MuscleMass < 0 || m.MuscleMass > m.Weight {
		return fmt.Errorf("%w: muscle mass %.1f out of range", ErrInvalidMeasurement, m.MuscleMass)
	}
	return nil
}

type Profile struct {
	UserID int          `json:"userId"`
	DOB    routine.Date `json:"dob"`
	Gender Gender       `json:"gender"`
}

func (p *Profile) Validate(now time.Time) error {
	if !p.Gender.IsValid() {
		return fmt.Errorf("%w: gender must be M or F", ErrInvalidProfile)
	}
	if p.DOB.IsZero() || !p.DOB.Before(now) {
		return fmt.Errorf("%w: date of birth must be in the past", ErrInvalidProfile)
	}
	return nil
}

// Age is the number of full years between DOB and now.
func (p *Profile) Age(now time.Time) int {
	age := now.Year() - p.DOB.Year()
	if now.Month() < p.DOB.Month() || (now.Month() == p.DOB.Month() && now.Day() < p.DOB.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// ProfileUpdate carries the fields to change; nil fields are left as they are.
type ProfileUpdate struct {
	DOB    *routine.Date `json:"dob,omitempty"`
	Gender *Gender       `json:"gender,omitempty"`
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.DOB == nil && u.Gender == nil
}
