package browse

import (
	"sync"

	"github.com/google/uuid"
)

// Attachment is one file associated with a record. Attachments are
// added and removed outside the save flow and produce no audit
// entries.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// AttachmentStore keeps per-record attachment sets in memory.
type AttachmentStore struct {
	mu       sync.Mutex
	byRecord map[string][]Attachment
}

// NewAttachmentStore returns an empty store.
func NewAttachmentStore() *AttachmentStore {
	return &AttachmentStore{byRecord: make(map[string][]Attachment)}
}

// Add attaches a named file to the record and returns the stored
// attachment with its generated id.
func (s *AttachmentStore) Add(recordID, name string, size int64) Attachment {
	att := Attachment{ID: uuid.NewString(), Name: name, Size: size}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRecord[recordID] = append(s.byRecord[recordID], att)
	return att
}

// Remove detaches the attachment; it reports whether anything was
// removed.
func (s *AttachmentStore) Remove(recordID, attachmentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := s.byRecord[recordID]
	for i, att := range existing {
		if att.ID == attachmentID {
			s.byRecord[recordID] = append(existing[:i:i], existing[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the record's attachments.
func (s *AttachmentStore) List(recordID string) []Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := s.byRecord[recordID]
	out := make([]Attachment, len(existing))
	copy(out, existing)
	return out
}
