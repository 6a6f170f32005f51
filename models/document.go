// ABOUTME: This file defines the persisted document envelopes for health data
// ABOUTME: Documents are partitioned by documentType and keyed by a per-date id

package models

import "fmt"

// Document type partition keys.
const (
	DocumentTypeFood  = "Food"
	DocumentTypeSleep = "Sleep"
)

// Document is implemented by every persisted document envelope.
type Document interface {
	DocumentID() string
	DocumentDate() string
}

// FoodDocument is the persisted envelope for one day of food logs
type FoodDocument struct {
	ID           string       `json:"id"`
	Food         FoodResponse `json:"food"`
	Date         string       `json:"date"`
	DocumentType string       `json:"documentType"`
}

// NewFoodDocument builds a food document for a date. The id is derived from
// the date so repeated ingestion of the same day upserts the same document.
func NewFoodDocument(date string, food FoodResponse) FoodDocument {
	return FoodDocument{
		ID:           fmt.Sprintf("food-%s", date),
		Food:         food,
		Date:         date,
		DocumentType: DocumentTypeFood,
	}
}

func (d FoodDocument) DocumentID() string   { return d.ID }
func (d FoodDocument) DocumentDate() string { return d.Date }

// SleepDocument is the persisted envelope for one day of sleep logs
type SleepDocument struct {
	ID           string        `json:"id"`
	Sleep        SleepResponse `json:"sleep"`
	Date         string        `json:"date"`
	DocumentType string        `json:"documentType"`
}

// NewSleepDocument builds a sleep document for a date with a date-derived id.
func NewSleepDocument(date string, sleep SleepResponse) SleepDocument {
	return SleepDocument{
		ID:           fmt.Sprintf("sleep-%s", date),
		Sleep:        sleep,
		Date:         date,
		DocumentType: DocumentTypeSleep,
	}
}

func (d SleepDocument) DocumentID() string   { return d.ID }
func (d SleepDocument) DocumentDate() string { return d.Date }
