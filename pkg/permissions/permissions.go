// Package permissions models the nine-bit POSIX permission value and
// converts losslessly between its three representations: a three-digit
// octal integer (e.g. 755), a nine-character symbolic string
// ("rwxr-xr-x"), and structured owner/group/other flag sets.
package permissions

import (
	"io/fs"
	"strings"

	"github.com/glorpus-work/fskit/pkg/errors"
)

// Set is a validated nine-bit POSIX permission value. Construct one
// through FromOctal, FromSymbolic, or FromFileMode; the zero value is a
// valid Set meaning no permissions at all (000).
type Set uint16

// Class holds the read/write/execute flags for one permission class.
type Class struct {
	Read    bool
	Write   bool
	Execute bool
}

// Bits is the structured form of a Set.
type Bits struct {
	Owner Class
	Group Class
	Other Class
}

// Per-digit symbolic triplets, indexed by the octal digit value.
var triplets = [8]string{"---", "--x", "-w-", "-wx", "r--", "r-x", "rw-", "rwx"}

// FromOctal builds a Set from a three-digit octal integer such as 644
// or 755. Each decimal digit of n must be in 0..7.
func FromOctal(n int) (Set, error) {
	if n < 0 || n > 777 {
		return 0, errors.Wrapf(errors.ErrInvalidPermissions, "octal value %d out of range", n)
	}
	owner, group, other := n/100, n/10%10, n%10
	for _, digit := range []int{owner, group, other} {
		if digit > 7 {
			return 0, errors.Wrapf(errors.ErrInvalidPermissions, "octal digit %d out of range in %d", digit, n)
		}
	}
	return Set(owner<<6 | group<<3 | other), nil
}

// FromSymbolic builds a Set from a nine-character symbolic string such
// as "rw-r--r--". Characters must be ASCII r, w, x, or - in fixed
// positions; anything else, including multibyte input, is rejected.
func FromSymbolic(s string) (Set, error) {
	if len(s) != 9 {
		return 0, errors.Wrapf(errors.ErrInvalidPermissions, "symbolic string %q must be exactly 9 characters", s)
	}
	var bits Set
	for i := 0; i < 9; i++ {
		// Byte-wise comparison: any non-ASCII byte fails positionally,
		// so multibyte runes can never alias 'r', 'w', 'x', or '-'.
		c := s[i]
		want := "rwx"[i%3]
		switch c {
		case want:
			bits |= 1 << (8 - i)
		case '-':
		default:
			return 0, errors.Wrapf(errors.ErrInvalidPermissions, "unexpected character %q at position %d in %q", c, i, s)
		}
	}
	return bits, nil
}

// FromFileMode builds a Set from the permission bits of a file mode.
// Type and sticky/setuid/setgid bits are discarded.
func FromFileMode(m fs.FileMode) Set {
	return Set(m.Perm())
}

// Octal returns the three-digit octal integer form, e.g. 755.
func (s Set) Octal() int {
	return int(s>>6&7)*100 + int(s>>3&7)*10 + int(s&7)
}

// Symbolic returns the nine-character symbolic form, e.g. "rwxr-xr-x".
func (s Set) Symbolic() string {
	var b strings.Builder
	b.Grow(9)
	b.WriteString(triplets[s>>6&7])
	b.WriteString(triplets[s>>3&7])
	b.WriteString(triplets[s&7])
	return b.String()
}

// FileMode returns the Set as fs.FileMode permission bits.
func (s Set) FileMode() fs.FileMode {
	return fs.FileMode(s) & fs.ModePerm
}

// Bits returns the structured flag form.
func (s Set) Bits() Bits {
	class := func(digit Set) Class {
		return Class{
			Read:    digit&4 != 0,
			Write:   digit&2 != 0,
			Execute: digit&1 != 0,
		}
	}
	return Bits{
		Owner: class(s >> 6 & 7),
		Group: class(s >> 3 & 7),
		Other: class(s & 7),
	}
}

// String implements fmt.Stringer using the symbolic form.
func (s Set) String() string {
	return s.Symbolic()
}

// OctalToSymbolic converts a three-digit octal integer directly to its
// symbolic string form.
func OctalToSymbolic(n int) (string, error) {
	s, err := FromOctal(n)
	if err != nil {
		return "", err
	}
	return s.Symbolic(), nil
}

// SymbolicToOctal converts a nine-character symbolic string directly to
// its three-digit octal integer form.
func SymbolicToOctal(sym string) (int, error) {
	s, err := FromSymbolic(sym)
	if err != nil {
		return 0, err
	}
	return s.Octal(), nil
}
