package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testRecap(title string) *GeneratedContent {
	return &GeneratedContent{
		Title:         title,
		Summary:       "A short summary.",
		Insights:      []string{"Key themes: storage"},
		KeyTakeaways:  []string{},
		ActionItems:   []string{"Update the changelog"},
		RelatedTopics: []string{},
		Timeline:      []TimelineEntry{},
		Tags:          []string{"storage"},
		Confidence:    42,
	}
}

func TestNewCacheManager(t *testing.T) {
	cacheDir := t.TempDir()
	cm := NewCacheManager(cacheDir)
	if cm == nil {
		t.Fatal("NewCacheManager() returned nil")
	}
	if cm.GetCacheDir() != cacheDir {
		t.Errorf("GetCacheDir() = %q, want %q", cm.GetCacheDir(), cacheDir)
	}
}

func TestCacheManager_EnsureCacheDir(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "nested", "cache")
	cm := NewCacheManager(cacheDir)

	if err := cm.EnsureCacheDir(); err != nil {
		t.Errorf("EnsureCacheDir() error = %v", err)
	}
	if _, err := os.Stat(cacheDir); os.IsNotExist(err) {
		t.Error("Cache directory was not created")
	}
}

func TestCacheManager_Paths(t *testing.T) {
	cacheDir := t.TempDir()
	cm := NewCacheManager(cacheDir)

	if got, want := cm.GetIndexPath(), filepath.Join(cacheDir, "recaps.yaml"); got != want {
		t.Errorf("GetIndexPath() = %q, want %q", got, want)
	}
	if got, want := cm.GetRecapPath("abc", ProfileStudent), filepath.Join(cacheDir, "recap_abc_student.json"); got != want {
		t.Errorf("GetRecapPath() = %q, want %q", got, want)
	}
}

func TestFingerprint(t *testing.T) {
	session := CreateTestSession("s1")
	base := Fingerprint(session, ProfileDeveloper)

	if Fingerprint(CreateTestSession("s1"), ProfileDeveloper) != base {
		t.Error("Fingerprint() should be stable for identical input")
	}
	if Fingerprint(session, ProfileStudent) == base {
		t.Error("profile should change the fingerprint")
	}

	changed := CreateTestSession("s1")
	changed.Events[0].Title = "Something else"
	if Fingerprint(changed, ProfileDeveloper) == base {
		t.Error("event content should change the fingerprint")
	}

	appended := CreateTestSession("s1")
	appended.Events = append(appended.Events, CreateTestEvent(time.Now(), EventNote, "Notes", "New"))
	if Fingerprint(appended, ProfileDeveloper) == base {
		t.Error("added events should change the fingerprint")
	}
}

func TestCacheManager_GetMiss(t *testing.T) {
	cm := NewCacheManager(t.TempDir())

	got, ok, err := cm.Get(CreateTestSession("s1"), ProfileDeveloper)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok || got != nil {
		t.Error("Get() on empty cache should miss")
	}
}

func TestCacheManager_PutAndGet(t *testing.T) {
	cm := NewCacheManager(t.TempDir())
	session := CreateTestSession("s1")

	if err := cm.Put(session, ProfileDeveloper, testRecap("Development Session: GitHub")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok, err := cm.Get(session, ProfileDeveloper)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() should hit after Put()")
	}
	if got.Title != "Development Session: GitHub" || got.Confidence != 42 {
		t.Errorf("Get() = %+v", got)
	}

	if _, ok, _ := cm.Get(session, ProfileStudent); ok {
		t.Error("a different profile should miss")
	}

	index, err := cm.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex() error = %v", err)
	}
	if len(index.Recaps) != 1 || index.Recaps[0].EventCount != 3 {
		t.Errorf("index = %+v", index.Recaps)
	}
	if index.Metadata.CacheVersion != CacheVersion {
		t.Errorf("CacheVersion = %q, want %q", index.Metadata.CacheVersion, CacheVersion)
	}
}

func TestCacheManager_StaleFingerprint(t *testing.T) {
	cm := NewCacheManager(t.TempDir())
	session := CreateTestSession("s1")

	if err := cm.Put(session, ProfileDeveloper, testRecap("old")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	session.Events = session.Events[:2]
	if _, ok, err := cm.Get(session, ProfileDeveloper); ok || err != nil {
		t.Errorf("Get() after event change = hit %v, err %v; want miss", ok, err)
	}

	if err := cm.Put(session, ProfileDeveloper, testRecap("new")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	got, ok, _ := cm.Get(session, ProfileDeveloper)
	if !ok || got.Title != "new" {
		t.Errorf("Get() after refresh = %+v, %v", got, ok)
	}

	index, _ := cm.LoadIndex()
	if len(index.Recaps) != 1 {
		t.Errorf("Put() should replace the entry, index has %d", len(index.Recaps))
	}
}

func TestCacheManager_Invalidate(t *testing.T) {
	cm := NewCacheManager(t.TempDir())
	s1 := CreateTestSession("s1")
	s2 := CreateTestSession("s2")

	for _, p := range []ProfileType{ProfileDeveloper, ProfileCustom} {
		if err := cm.Put(s1, p, testRecap("s1")); err != nil {
			t.Fatal(err)
		}
	}
	if err := cm.Put(s2, ProfileDeveloper, testRecap("s2")); err != nil {
		t.Fatal(err)
	}

	if err := cm.Invalidate("s1"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	if _, ok, _ := cm.Get(s1, ProfileDeveloper); ok {
		t.Error("s1 should be invalidated")
	}
	if _, err := os.Stat(cm.GetRecapPath("s1", ProfileCustom)); !os.IsNotExist(err) {
		t.Error("recap file for s1 should be removed")
	}
	if _, ok, _ := cm.Get(s2, ProfileDeveloper); !ok {
		t.Error("s2 should still be cached")
	}
}

func TestCacheManager_ClearCache(t *testing.T) {
	cm := NewCacheManager(t.TempDir())
	session := CreateTestSession("s1")

	if err := cm.ClearCache(); err != nil {
		t.Errorf("ClearCache() on empty dir error = %v", err)
	}
	if err := cm.Put(session, ProfileDeveloper, testRecap("x")); err != nil {
		t.Fatal(err)
	}
	if err := cm.ClearCache(); err != nil {
		t.Fatalf("ClearCache() error = %v", err)
	}
	if _, err := os.Stat(cm.GetIndexPath()); !os.IsNotExist(err) {
		t.Error("index should be removed")
	}
	if _, ok, _ := cm.Get(session, ProfileDeveloper); ok {
		t.Error("Get() after ClearCache() should miss")
	}
}

func TestCacheManager_CorruptIndex(t *testing.T) {
	cm := NewCacheManager(t.TempDir())
	if err := os.WriteFile(cm.GetIndexPath(), []byte("recaps: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := cm.Get(CreateTestSession("s1"), ProfileDeveloper); err == nil {
		t.Error("Get() with corrupt index should fail")
	}
	if err := cm.Put(CreateTestSession("s1"), ProfileDeveloper, testRecap("x")); err != nil {
		t.Errorf("Put() should rebuild a corrupt index, got %v", err)
	}
}
