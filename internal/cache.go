package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// CacheVersion is folded into every fingerprint so a format change
// invalidates older entries
const CacheVersion = "1"

// CacheManager caches generated recaps on disk
type CacheManager struct {
	cacheDir string
	mu       sync.Mutex
}

// CacheMetadata stores metadata about the cache
type CacheMetadata struct {
	CacheVersion string    `yaml:"cache_version"`
	CreatedAt    time.Time `yaml:"created_at"`
	UpdatedAt    time.Time `yaml:"updated_at"`
}

// RecapIndexEntry describes one cached recap
type RecapIndexEntry struct {
	SessionID   string      `yaml:"session_id"`
	ProfileType ProfileType `yaml:"profile_type"`
	Fingerprint string      `yaml:"fingerprint"`
	Title       string      `yaml:"title,omitempty"`
	EventCount  int         `yaml:"event_count"`
	GeneratedAt time.Time   `yaml:"generated_at"`
}

// RecapIndex is the YAML index of all cached recaps
type RecapIndex struct {
	Recaps   []RecapIndexEntry `yaml:"recaps"`
	Metadata CacheMetadata     `yaml:"metadata"`
}

// NewCacheManager creates a new cache manager
func NewCacheManager(cacheDir string) *CacheManager {
	return &CacheManager{
		cacheDir: cacheDir,
	}
}

// EnsureCacheDir ensures the cache directory exists
func (cm *CacheManager) EnsureCacheDir() error {
	return os.MkdirAll(cm.cacheDir, 0755)
}

// GetCacheDir returns the cache directory path
func (cm *CacheManager) GetCacheDir() string {
	return cm.cacheDir
}

// GetIndexPath returns the path to the recap index YAML file
func (cm *CacheManager) GetIndexPath() string {
	return filepath.Join(cm.cacheDir, "recaps.yaml")
}

// GetRecapPath returns the path to a recap's cache file
func (cm *CacheManager) GetRecapPath(sessionID string, profile ProfileType) string {
	return filepath.Join(cm.cacheDir, fmt.Sprintf("recap_%s_%s.json", sessionID, profile))
}

// Fingerprint identifies the inputs of a recap: the profile and the content
// of every event in order
func Fingerprint(session *RecordingSession, profile ProfileType) string {
	h := sha256.New()
	d := NewDeduplicator()

	fmt.Fprintf(h, "v%s|%s|%d|%d|", CacheVersion, profile, session.StartTime.UnixMilli(), len(session.Events))
	for i := range session.Events {
		h.Write([]byte(d.HashEvent(&session.Events[i])))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// LoadIndex loads the recap index
func (cm *CacheManager) LoadIndex() (*RecapIndex, error) {
	data, err := os.ReadFile(cm.GetIndexPath())
	if err != nil {
		return nil, err
	}

	var index RecapIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, &ParseError{Source: "yaml", Key: cm.GetIndexPath(), Err: err}
	}

	return &index, nil
}

// SaveIndex saves the recap index
func (cm *CacheManager) SaveIndex(index *RecapIndex) error {
	if err := cm.EnsureCacheDir(); err != nil {
		return &StorageError{Path: cm.cacheDir, Op: "write", Err: err}
	}

	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	return writeFileAtomic(cm.GetIndexPath(), data)
}

// Get returns the cached recap for a session and profile when its
// fingerprint still matches. A miss is not an error.
func (cm *CacheManager) Get(session *RecordingSession, profile ProfileType) (*GeneratedContent, bool, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	index, err := cm.LoadIndex()
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	entry, _ := findEntry(index, session.ID, profile)
	if entry == nil {
		return nil, false, nil
	}
	if entry.Fingerprint != Fingerprint(session, profile) {
		LogDebug("Cached recap for %s (%s) is stale", session.ID, profile)
		return nil, false, nil
	}

	data, err := os.ReadFile(cm.GetRecapPath(session.ID, profile))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &StorageError{Path: cm.GetRecapPath(session.ID, profile), Op: "read", Err: err}
	}

	var content GeneratedContent
	if err := json.Unmarshal(data, &content); err != nil {
		LogWarn("Ignoring unreadable cached recap for %s: %v", session.ID, err)
		return nil, false, nil
	}

	return &content, true, nil
}

// Put stores a recap and records its fingerprint in the index
func (cm *CacheManager) Put(session *RecordingSession, profile ProfileType, content *GeneratedContent) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if err := cm.EnsureCacheDir(); err != nil {
		return &StorageError{Path: cm.cacheDir, Op: "write", Err: err}
	}

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recap: %w", err)
	}
	if err := writeFileAtomic(cm.GetRecapPath(session.ID, profile), data); err != nil {
		return err
	}

	now := time.Now().UTC()
	index, err := cm.LoadIndex()
	if err != nil || index.Metadata.CacheVersion != CacheVersion {
		index = &RecapIndex{
			Recaps: make([]RecapIndexEntry, 0, 1),
			Metadata: CacheMetadata{
				CacheVersion: CacheVersion,
				CreatedAt:    now,
			},
		}
	}
	index.Metadata.UpdatedAt = now

	entry := RecapIndexEntry{
		SessionID:   session.ID,
		ProfileType: profile,
		Fingerprint: Fingerprint(session, profile),
		Title:       content.Title,
		EventCount:  len(session.Events),
		GeneratedAt: now,
	}
	if _, i := findEntry(index, session.ID, profile); i >= 0 {
		index.Recaps[i] = entry
	} else {
		index.Recaps = append(index.Recaps, entry)
	}

	return cm.SaveIndex(index)
}

// Invalidate drops every cached recap of a session
func (cm *CacheManager) Invalidate(sessionID string) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	index, err := cm.LoadIndex()
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	kept := index.Recaps[:0]
	for _, entry := range index.Recaps {
		if entry.SessionID == sessionID {
			_ = os.Remove(cm.GetRecapPath(entry.SessionID, entry.ProfileType))
			continue
		}
		kept = append(kept, entry)
	}
	index.Recaps = kept
	index.Metadata.UpdatedAt = time.Now().UTC()

	return cm.SaveIndex(index)
}

// ClearCache clears the cache
func (cm *CacheManager) ClearCache() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	index, err := cm.LoadIndex()
	if err == nil {
		for _, entry := range index.Recaps {
			_ = os.Remove(cm.GetRecapPath(entry.SessionID, entry.ProfileType))
		}
	}

	if err := os.Remove(cm.GetIndexPath()); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

func findEntry(index *RecapIndex, sessionID string, profile ProfileType) (*RecapIndexEntry, int) {
	for i := range index.Recaps {
		if index.Recaps[i].SessionID == sessionID && index.Recaps[i].ProfileType == profile {
			return &index.Recaps[i], i
		}
	}
	return nil, -1
}

// writeFileAtomic writes through a temp file in the same directory
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return &StorageError{Path: path, Op: "write", Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &StorageError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Path: path, Op: "write", Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &StorageError{Path: path, Op: "write", Err: err}
	}
	return nil
}
