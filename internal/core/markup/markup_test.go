package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEscape_AllUnsafeCharacters verifies that no raw unsafe character survives.
func TestEscape_AllUnsafeCharacters(t *testing.T) {
	out := Escape(`<svg onload="alert(1)">&"`)

	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
	assert.NotContains(t, out, `"`)
	assert.Equal(t, "&lt;svg onload=&quot;alert(1)&quot;&gt;&amp;&quot;", out)
}

// TestEscape_SinglePass verifies that one call escapes each character exactly once.
func TestEscape_SinglePass(t *testing.T) {
	assert.Equal(t, "&amp;amp;", Escape("&amp;"))
	assert.Equal(t, "a &amp; b", Escape("a & b"))
}

// TestEscape_PlainStringUnchanged verifies that safe strings pass through.
func TestEscape_PlainStringUnchanged(t *testing.T) {
	assert.Equal(t, "323212345659900120", Escape("323212345659900120"))
}

// TestTruncate_UnderLimit verifies that short strings are returned unchanged.
func TestTruncate_UnderLimit(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
}

// TestTruncate_AtLimit verifies that a string of exactly max characters is untouched.
func TestTruncate_AtLimit(t *testing.T) {
	s := strings.Repeat("x", 36)
	assert.Equal(t, s, Truncate(s, 36))
}

// TestTruncate_OverLimit verifies the first max-1 characters plus ellipsis rule.
func TestTruncate_OverLimit(t *testing.T) {
	s := strings.Repeat("x", 40)

	out := Truncate(s, 36)

	assert.Len(t, []rune(out), 36)
	assert.Equal(t, strings.Repeat("x", 35)+"…", out)
}

// TestTruncate_OneOverLimit verifies truncation triggers at max+1.
func TestTruncate_OneOverLimit(t *testing.T) {
	s := strings.Repeat("a", 41)

	out := Truncate(s, 40)

	assert.Len(t, []rune(out), 40)
	assert.True(t, strings.HasSuffix(out, "…"))
}

// TestTruncate_CountsRunes verifies multi-byte characters count as one.
func TestTruncate_CountsRunes(t *testing.T) {
	s := strings.Repeat("é", 10)

	assert.Equal(t, s, Truncate(s, 10))

	out := Truncate(s+"é", 10)
	assert.Equal(t, strings.Repeat("é", 9)+"…", out)
}

// TestTruncate_Idempotent verifies truncating an already truncated string is a no-op.
func TestTruncate_Idempotent(t *testing.T) {
	once := Truncate(strings.Repeat("k", 100), 55)
	twice := Truncate(once, 55)

	assert.Equal(t, once, twice)
}
