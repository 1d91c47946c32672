package model

import (
	"encoding/json"
	"testing"
	"time"
)

// TestObservationDTO_UnmarshalJSON verifies both accepted date layouts and the absent date.
func TestObservationDTO_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "calendar day",
			body: `{"city":"Pune","temperature":31.5,"description":"Sunny","date":"2024-04-20"}`,
			want: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339",
			body: `{"temperature":31.5,"date":"2024-04-20T06:00:00Z"}`,
			want: time.Date(2024, 4, 20, 6, 0, 0, 0, time.UTC),
		},
		{
			name: "absent date",
			body: `{"temperature":31.5}`,
		},
		{
			name:    "invalid date",
			body:    `{"temperature":31.5,"date":"20/04/2024"}`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var dto ObservationDTO
			err := json.Unmarshal([]byte(tc.body), &dto)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", dto)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !dto.Date.Equal(tc.want) {
				t.Errorf("Date = %v, want %v", dto.Date, tc.want)
			}
			if dto.Temperature != 31.5 {
				t.Errorf("Temperature = %v", dto.Temperature)
			}
		})
	}
}
