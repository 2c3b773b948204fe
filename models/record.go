package models

import (
	"errors"
	"fmt"
	"time"
)

// RecordKind identifies the metric stored in a health record.
// Like [Role] it is a closed enumeration validated at the boundary.
type RecordKind string

const (
	// KindBloodPressure is a blood pressure reading, e.g. "120/80".
	KindBloodPressure RecordKind = "blood_pressure"

	// KindWeight is a body mass reading in whatever unit the subject uses.
	KindWeight RecordKind = "weight"
)

// ErrUnknownRecordKind is returned by ParseRecordKind for any value outside
// the declared kind set.
var ErrUnknownRecordKind = errors.New("unknown record kind")

// ParseRecordKind validates s against the declared record kinds.
func ParseRecordKind(s string) (RecordKind, error) {
	switch RecordKind(s) {
	case KindBloodPressure, KindWeight:
		return RecordKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordKind, s)
	}
}

func (k RecordKind) String() string {
	return string(k)
}

// Record is a single encrypted health-metric entry. Ciphertext is a Fernet
// token sealed under the owner's key; it is only ever decryptable with that
// key and ownership never transfers.
type Record struct {
	// ID is the internal unique identifier of the record.
	ID int64 `json:"-"`

	// UserID references the owning user.
	UserID int64 `json:"-"`

	// Kind is the metric type of the entry.
	Kind RecordKind `json:"-"`

	// Ciphertext is the Fernet token of the textual metric value,
	// produced under the owner's key.
	Ciphertext string `json:"-"`

	// DatePosted is the creation timestamp of the entry.
	DatePosted time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Record model.
func (r Record) TableName() string {
	return "records"
}
