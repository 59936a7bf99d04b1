package walk

import "testing"

func TestPredicateRoles(t *testing.T) {
	always := func(string) bool { return true }

	tests := []struct {
		name      string
		p         Predicate
		role      Role
		isDir     bool
		isDirHard bool
		isDirSoft bool
		isFile    bool
	}{
		{"dir hard", DirHard(always), RoleDirHard, true, true, false, false},
		{"dir soft", DirSoft(always), RoleDirSoft, true, false, true, false},
		{"file", File(always), RoleFile, false, false, false, true},
		{"none", None, RoleNone, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Role() != tt.role {
				t.Errorf("Expected role %s, got %s", tt.role, tt.p.Role())
			}
			if tt.p.IsDir() != tt.isDir {
				t.Errorf("IsDir: expected %v, got %v", tt.isDir, tt.p.IsDir())
			}
			if tt.p.IsDirHard() != tt.isDirHard {
				t.Errorf("IsDirHard: expected %v, got %v", tt.isDirHard, tt.p.IsDirHard())
			}
			if tt.p.IsDirSoft() != tt.isDirSoft {
				t.Errorf("IsDirSoft: expected %v, got %v", tt.isDirSoft, tt.p.IsDirSoft())
			}
			if tt.p.IsFile() != tt.isFile {
				t.Errorf("IsFile: expected %v, got %v", tt.isFile, tt.p.IsFile())
			}
		})
	}
}

func TestPredicateEvaluate(t *testing.T) {
	var seen string
	p := File(func(path string) bool {
		seen = path
		return path == "keep.txt"
	})

	if !p.Evaluate("keep.txt") {
		t.Errorf("Expected keep.txt to pass")
	}
	if p.Evaluate("drop.txt") {
		t.Errorf("Expected drop.txt to fail")
	}
	if seen != "drop.txt" {
		t.Errorf("Expected wrapped function to see drop.txt, got %q", seen)
	}
}

func TestEvaluateNonePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic when evaluating None")
		}
	}()
	None.Evaluate("anything")
}

func TestNilFunctionPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for nil predicate function")
		}
	}()
	DirSoft(nil)
}

func TestAllHold(t *testing.T) {
	yes := func(string) bool { return true }
	no := func(string) bool { return false }

	tests := []struct {
		name       string
		predicates []Predicate
		keep       func(Predicate) bool
		expected   bool
	}{
		{"empty list holds", nil, Predicate.IsFile, true},
		{"no predicate of role holds", []Predicate{DirHard(no), DirSoft(no)}, Predicate.IsFile, true},
		{"all true", []Predicate{File(yes), File(yes)}, Predicate.IsFile, true},
		{"one false", []Predicate{File(yes), File(no), File(yes)}, Predicate.IsFile, false},
		{"other roles ignored", []Predicate{File(no), DirSoft(yes)}, Predicate.IsDirSoft, true},
		{"none skipped", []Predicate{None, DirHard(yes)}, Predicate.IsDirHard, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allHold(tt.predicates, "path", tt.keep); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
