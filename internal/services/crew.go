// Package services implements the feature operations on top of the record
// stores: crew roster, briefings, documents, incidents, and the share flows.
package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/khanhtv/traincrew/internal/imaging"
	"github.com/khanhtv/traincrew/internal/logging"
	"github.com/khanhtv/traincrew/internal/records"
	"github.com/khanhtv/traincrew/internal/recordstore"
	"github.com/khanhtv/traincrew/internal/sharelink"
)

// CrewService manages the roster.
type CrewService struct {
	store          *recordstore.Store[records.CrewMember]
	logger         logging.Logger
	avatarMaxWidth int
	avatarQuality  float64
}

func NewCrewService(store *recordstore.Store[records.CrewMember], logger logging.Logger, avatarMaxWidth int, avatarQuality float64) *CrewService {
	return &CrewService{
		store:          store,
		logger:         logger,
		avatarMaxWidth: avatarMaxWidth,
		avatarQuality:  avatarQuality,
	}
}

func (s *CrewService) List() []records.CrewMember {
	return s.store.All()
}

func (s *CrewService) Get(id string) (records.CrewMember, error) {
	return s.store.Get(id)
}

// Add creates a roster entry. photoPath is optional; when given the photo
// is normalized to the avatar size, otherwise a placeholder avatar is
// assigned.
func (s *CrewService) Add(ctx context.Context, name, phone, zalo, role, photoPath string) (records.CrewMember, error) {
	avatar, err := s.encodeAvatar(photoPath)
	if err != nil {
		return records.CrewMember{}, err
	}
	member := records.NewCrewMember(name, phone, zalo, role, avatar)
	if err := s.store.Insert(ctx, member); err != nil {
		return records.CrewMember{}, err
	}
	s.logger.Info("crew member added", "id", member.ID, "name", member.Name)
	return member, nil
}

// Update edits the named fields in place. Empty fields keep their current
// value; the avatar changes only when a new photo is supplied.
func (s *CrewService) Update(ctx context.Context, id, name, phone, zalo, role, photoPath string) error {
	avatar, err := s.encodeAvatar(photoPath)
	if err != nil {
		return err
	}
	return s.store.Update(ctx, id, func(m records.CrewMember) records.CrewMember {
		if name != "" {
			m.Name = name
		}
		if phone != "" {
			m.Phone = phone
		}
		if zalo != "" {
			m.Zalo = zalo
		}
		if role != "" {
			m.Role = role
		}
		if avatar != "" {
			m.Avatar = avatar
		}
		return m
	})
}

func (s *CrewService) Remove(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

// SharePayload builds the roster share payload. Avatars are not included.
func (s *CrewService) SharePayload() sharelink.Payload {
	members := s.store.All()
	list := make([]sharelink.CrewContact, 0, len(members))
	for _, m := range members {
		list = append(list, sharelink.CrewContact{Name: m.Name, Role: m.Role, Phone: m.Phone})
	}
	return sharelink.Payload{Crew: &sharelink.Crew{List: list}}
}

// RosterText renders the roster as the plain text sent alongside a share
// link.
func (s *CrewService) RosterText() string {
	var b strings.Builder
	b.WriteString("Danh sách tổ lái:\n")
	for i, m := range s.store.All() {
		fmt.Fprintf(&b, "%d. %s - %s - SĐT: %s\n", i+1, m.Name, m.Role, m.Phone)
	}
	return b.String()
}

func (s *CrewService) encodeAvatar(photoPath string) (string, error) {
	if photoPath == "" {
		return "", nil
	}
	data, err := os.ReadFile(photoPath)
	if err != nil {
		return "", fmt.Errorf("read photo %s: %w", photoPath, err)
	}
	token, err := imaging.Normalize(data, s.avatarMaxWidth, s.avatarQuality)
	if err != nil {
		return "", err
	}
	return string(token), nil
}
