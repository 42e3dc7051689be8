package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkshopOverview(t *testing.T) {
	tests := []struct {
		name     string
		workshop Workshop
		want     string
		wantErr  error
	}{
		{
			name: "complete workshop",
			workshop: Workshop{
				Title:      "Go Programming Workshop",
				Instructor: "Alice Smith",
				Duration:   "3",
			},
			want: "Workshop: Go Programming Workshop, Instructor: Alice Smith, Duration: 3 hours",
		},
		{
			name:     "missing title",
			workshop: Workshop{Instructor: "Alice Smith", Duration: "3"},
			wantErr:  ErrIncompleteWorkshop,
		},
		{
			name:     "missing instructor",
			workshop: Workshop{Title: "Go Programming Workshop", Duration: "3"},
			wantErr:  ErrIncompleteWorkshop,
		},
		{
			name:     "missing duration",
			workshop: Workshop{Title: "Go Programming Workshop", Instructor: "Alice Smith"},
			wantErr:  ErrIncompleteWorkshop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.workshop.Overview()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeminarOverview(t *testing.T) {
	tests := []struct {
		name    string
		seminar Seminar
		want    string
		wantErr error
	}{
		{
			name: "complete seminar",
			seminar: Seminar{
				Title:    "Advanced Go Seminar",
				Speaker:  "Bob Johnson",
				Location: "Room 101",
			},
			want: "Seminar: Advanced Go Seminar, Speaker: Bob Johnson, Location: Room 101",
		},
		{
			name:    "missing speaker",
			seminar: Seminar{Title: "Advanced Go Seminar", Location: "Room 101"},
			wantErr: ErrIncompleteSeminar,
		},
		{
			name:    "missing location",
			seminar: Seminar{Title: "Advanced Go Seminar", Speaker: "Bob Johnson"},
			wantErr: ErrIncompleteSeminar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.seminar.Overview()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCourseInterface walks a mixed catalog through the shared capability.
func TestCourseInterface(t *testing.T) {
	courses := []Course{
		Workshop{Title: "Testing in Go", Instructor: "Carol", Duration: "2"},
		Seminar{Title: "Error Handling", Speaker: "Dave", Location: "Main Hall"},
		Workshop{},
	}

	var overviews []string
	var failures int
	for _, course := range courses {
		overview, err := course.Overview()
		if err != nil {
			failures++
			continue
		}
		overviews = append(overviews, overview)
	}

	assert.Len(t, overviews, 2)
	assert.Equal(t, 1, failures)
}
