// Package walk provides depth-bounded directory traversal driven by role-tagged predicates.
package walk

import "fmt"

// Role identifies when a Predicate is applied during a walk.
type Role int

const (
	RoleNone    Role = iota // Unset placeholder, never evaluated
	RoleDirHard             // Checked against every entry; failure ends the current directory
	RoleDirSoft             // Checked against files; failure skips that file only
	RoleFile                // Checked against files to gate callback dispatch
)

// String returns the role name used in log fields.
func (r Role) String() string {
	switch r {
	case RoleDirHard:
		return "dir-hard"
	case RoleDirSoft:
		return "dir-soft"
	case RoleFile:
		return "file"
	default:
		return "none"
	}
}

// PredicateFunc is a boolean check over a filesystem path.
// Implementations must be total and must not call back into the Walker.
type PredicateFunc func(path string) bool

// Predicate is a PredicateFunc tagged with the Role that decides how a
// failing result affects the walk. The zero value is the None predicate.
type Predicate struct {
	role Role
	fn   PredicateFunc
}

// None is the unset predicate. Evaluating it panics.
var None = Predicate{}

// DirHard wraps fn as a hard directory rule. A false result stops the
// iteration over the remaining entries of the directory being listed.
func DirHard(fn PredicateFunc) Predicate {
	return newPredicate(RoleDirHard, fn)
}

// DirSoft wraps fn as a soft directory rule. A false result excludes only
// the file being checked.
func DirSoft(fn PredicateFunc) Predicate {
	return newPredicate(RoleDirSoft, fn)
}

// File wraps fn as a file rule.
func File(fn PredicateFunc) Predicate {
	return newPredicate(RoleFile, fn)
}

func newPredicate(role Role, fn PredicateFunc) Predicate {
	if fn == nil {
		panic(fmt.Sprintf("walk: nil function for %s predicate", role))
	}
	return Predicate{role: role, fn: fn}
}

// Role reports the predicate's role.
func (p Predicate) Role() Role {
	return p.role
}

// Evaluate calls the wrapped function on path.
// It panics when called on the None predicate.
func (p Predicate) Evaluate(path string) bool {
	if p.role == RoleNone || p.fn == nil {
		panic("walk: attempted to evaluate the None predicate")
	}
	return p.fn(path)
}

// IsDir reports whether p is a hard or soft directory rule.
func (p Predicate) IsDir() bool {
	return p.IsDirHard() || p.IsDirSoft()
}

// IsDirHard reports whether p is a hard directory rule.
func (p Predicate) IsDirHard() bool {
	return p.role == RoleDirHard
}

// IsDirSoft reports whether p is a soft directory rule.
func (p Predicate) IsDirSoft() bool {
	return p.role == RoleDirSoft
}

// IsFile reports whether p is a file rule.
func (p Predicate) IsFile() bool {
	return p.role == RoleFile
}

// IsNone reports whether p is the unset predicate.
func (p Predicate) IsNone() bool {
	return p.role == RoleNone
}

// allHold evaluates every predicate selected by keep against path and
// reports whether all of them hold. An empty selection holds vacuously.
// Evaluation stops at the first failure.
func allHold(predicates []Predicate, path string, keep func(Predicate) bool) bool {
	for _, p := range predicates {
		if !keep(p) {
			continue
		}
		if !p.Evaluate(path) {
			return false
		}
	}
	return true
}
