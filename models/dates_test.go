package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"biotrackr/models"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "valid date", date: "2023-06-15", wantErr: false},
		{name: "leap day on leap year", date: "2024-02-29", wantErr: false},
		{name: "leap day on non-leap year", date: "2023-02-29", wantErr: true},
		{name: "month out of range", date: "2023-13-01", wantErr: true},
		{name: "day out of range", date: "2023-04-31", wantErr: true},
		{name: "wrong layout", date: "15-06-2023", wantErr: true},
		{name: "not a date", date: "invalid-date-format", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := models.ValidateDate(tt.date)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPreviousDay(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "mid month",
			now:  time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC),
			want: "2023-06-14",
		},
		{
			name: "first of month",
			now:  time.Date(2023, 3, 1, 0, 5, 0, 0, time.UTC),
			want: "2023-02-28",
		},
		{
			name: "first of year",
			now:  time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC),
			want: "2023-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.PreviousDay(tt.now))
		})
	}
}
