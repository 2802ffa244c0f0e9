// internal/app/features/grades/transcript_test.go
package grades

import (
	"testing"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
)

func TestBuildTranscript(t *testing.T) {
	entries := []models.GradeEntry{
		{Credits: 3, Grade: "A+"}, // 4.5 * 3 = 13.5
		{Credits: 3, Grade: "B"},  // 3.0 * 3 = 9.0
		{Credits: 2, Grade: "C+"}, // 2.5 * 2 = 5.0
	}
	tr := buildTranscript(7, entries)

	if tr.StudentID != 7 {
		t.Errorf("StudentID = %d, want 7", tr.StudentID)
	}
	if tr.TotalCredits != 8 {
		t.Errorf("TotalCredits = %d, want 8", tr.TotalCredits)
	}
	// 27.5 / 8 = 3.4375 → 3.44
	if tr.GPA != 3.44 {
		t.Errorf("GPA = %v, want 3.44", tr.GPA)
	}
}

func TestBuildTranscript_Empty(t *testing.T) {
	tr := buildTranscript(1, nil)
	if tr.GPA != 0 {
		t.Errorf("GPA = %v, want 0", tr.GPA)
	}
	if tr.TotalCredits != 0 {
		t.Errorf("TotalCredits = %d, want 0", tr.TotalCredits)
	}
	if tr.Entries == nil {
		t.Error("Entries should be an empty slice, not nil")
	}
}

func TestBuildTranscript_AllF(t *testing.T) {
	tr := buildTranscript(2, []models.GradeEntry{
		{Credits: 3, Grade: "F"},
		{Credits: 3, Grade: "F"},
	})
	if tr.GPA != 0 {
		t.Errorf("GPA = %v, want 0", tr.GPA)
	}
	if tr.TotalCredits != 6 {
		t.Errorf("TotalCredits = %d, want 6", tr.TotalCredits)
	}
}
