package recap

import "github.com/iksnae/activity-recap/internal"

// CachedGenerator generates session recaps through an optional cache. A nil
// Cache always regenerates.
type CachedGenerator struct {
	Cache *internal.CacheManager
}

// Generate returns the recap of session under profile and whether it came
// from the cache. An empty profile uses the session's own profile. Cache
// failures are logged and never fail generation.
func (g *CachedGenerator) Generate(session *internal.RecordingSession, profile internal.ProfileType) (*internal.GeneratedContent, bool, error) {
	if session == nil {
		return nil, false, &internal.ValidationError{Field: "session", Index: -1, Reason: "session is nil"}
	}
	if profile == "" {
		profile = session.ProfileType
	}

	if g.Cache != nil {
		content, ok, err := g.Cache.Get(session, profile)
		if err != nil {
			internal.LogWarn("Recap cache read failed for %s: %v", session.ID, err)
		} else if ok {
			internal.LogDebug("Recap cache hit for %s (%s)", session.ID, profile)
			return content, true, nil
		}
	}

	target := *session
	target.ProfileType = profile
	content, err := GenerateSession(&target)
	if err != nil {
		return nil, false, err
	}

	if g.Cache != nil {
		if err := g.Cache.Put(session, profile, content); err != nil {
			internal.LogWarn("Recap cache write failed for %s: %v", session.ID, err)
		}
	}
	return content, false, nil
}
