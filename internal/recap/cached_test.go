package recap

import (
	"testing"

	"github.com/iksnae/activity-recap/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedGenerator_WithoutCache(t *testing.T) {
	g := &CachedGenerator{}
	session := internal.CreateTestSession("s1")

	got, hit, err := g.Generate(session, "")
	require.NoError(t, err)
	assert.False(t, hit)

	want, err := GenerateSession(session)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCachedGenerator_HitAfterMiss(t *testing.T) {
	g := &CachedGenerator{Cache: internal.NewCacheManager(t.TempDir())}
	session := internal.CreateTestSession("s1")

	first, hit, err := g.Generate(session, "")
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := g.Generate(session, "")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)
}

func TestCachedGenerator_ProfileOverride(t *testing.T) {
	g := &CachedGenerator{Cache: internal.NewCacheManager(t.TempDir())}
	session := internal.CreateTestSession("s1")

	dev, _, err := g.Generate(session, "")
	require.NoError(t, err)
	student, hit, err := g.Generate(session, internal.ProfileStudent)
	require.NoError(t, err)

	assert.False(t, hit, "a different profile is a separate cache entry")
	assert.Contains(t, dev.Title, "Development Session")
	assert.Contains(t, student.Title, "Study Session")
	assert.Equal(t, internal.ProfileDeveloper, session.ProfileType, "the stored session is not modified")
}

func TestCachedGenerator_RegeneratesWhenEventsChange(t *testing.T) {
	g := &CachedGenerator{Cache: internal.NewCacheManager(t.TempDir())}
	session := internal.CreateTestSession("s1")

	_, _, err := g.Generate(session, "")
	require.NoError(t, err)

	session.Events = session.Events[:1]
	got, hit, err := g.Generate(session, "")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Len(t, got.Timeline, 1)
}

func TestCachedGenerator_InvalidInput(t *testing.T) {
	g := &CachedGenerator{}

	_, _, err := g.Generate(nil, "")
	assert.ErrorIs(t, err, internal.ErrInvalidInput)

	_, _, err = g.Generate(internal.CreateTestSession("s1"), "astronaut")
	assert.ErrorIs(t, err, internal.ErrInvalidInput)
}
