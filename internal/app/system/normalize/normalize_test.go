// internal/app/system/normalize/normalize_test.go

package normalize

import "testing"

func TestLoginID(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Admin01  ", "admin01"},
		{"STUDENT.lee", "student.lee"},
		{"", ""},
	}
	for _, c := range cases {
		if got := LoginID(c.in); got != c.want {
			t.Errorf("LoginID(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEmail(t *testing.T) {
	if got := Email("  Kim@Univ.AC.kr "); got != "kim@univ.ac.kr" {
		t.Errorf("Email = %q", got)
	}
}

func TestName(t *testing.T) {
	if got := Name("  Kim Minji "); got != "Kim Minji" {
		t.Errorf("Name = %q", got)
	}
}

func TestCode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{" cs101 ", "CS101"},
		{"eng", "ENG"},
	}
	for _, c := range cases {
		if got := Code(c.in); got != c.want {
			t.Errorf("Code(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStatus(t *testing.T) {
	if got := Status(" active "); got != "ACTIVE" {
		t.Errorf("Status = %q", got)
	}
}
