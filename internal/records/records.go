// Package records defines the record variants persisted by the app and the
// fixed storage namespaces they live in.
package records

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khanhtv/traincrew/internal/datauri"
)

// Storage namespaces, one per feature. No two stores share a namespace.
const (
	NamespaceCrew          = "crew_list"
	NamespaceBriefings     = "briefing_history"
	NamespaceGeneralDocs   = "general_docs_history"
	NamespaceCouplingDocs  = "coupling_docs_history"
	NamespaceIncidents     = "incident_history"
	NamespaceNotifications = "notifications_data"
)

// Attachment families.
const (
	AttachmentPDF   = "pdf"
	AttachmentImage = "image"
)

// Attachment is a named binary payload owned by exactly one record. The Type
// must match the MIME family carried inside the token.
type Attachment struct {
	Name string        `json:"name"`
	URL  datauri.Token `json:"url"`
	Type string        `json:"type"`
}

// MatchesToken reports whether the declared attachment type agrees with the
// MIME family encoded in the token.
func (a Attachment) MatchesToken() bool {
	return datauri.Family(a.URL.MimeType()) == a.Type
}

// NamedToken pairs a display name with an encoded payload (incident PDFs).
type NamedToken struct {
	Name string        `json:"name"`
	URL  datauri.Token `json:"url"`
}

type CrewMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"` // encoded token or external URL
	Phone  string `json:"phone"`
	Zalo   string `json:"zalo"`
	Role   string `json:"role"`
}

func (m CrewMember) Key() string { return m.ID }

const defaultRole = "Nhân viên"

// NewCrewMember builds a member with creation defaults applied: a fresh id,
// zalo falling back to phone, a default role, and a placeholder avatar when
// none was uploaded.
func NewCrewMember(name, phone, zalo, role, avatar string) CrewMember {
	id := uuid.NewString()
	if zalo == "" {
		zalo = phone
	}
	if role == "" {
		role = defaultRole
	}
	if avatar == "" {
		avatar = fmt.Sprintf("https://picsum.photos/200/200?random=%s", id)
	}
	return CrewMember{ID: id, Name: name, Avatar: avatar, Phone: phone, Zalo: zalo, Role: role}
}

type BriefingRecord struct {
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Review    string       `json:"review"`
	Plan      string       `json:"plan"`
	Files     []Attachment `json:"files"`
}

func (r BriefingRecord) Key() string { return r.ID }

// Document types select the namespace a DocumentItem is stored in.
const (
	DocumentGeneral  = "general"
	DocumentCoupling = "coupling"
)

type DocumentItem struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Date    string       `json:"date"`
	Content string       `json:"content"`
	Type    string       `json:"type"`
	Files   []Attachment `json:"files"`
}

func (d DocumentItem) Key() string { return d.ID }

type IncidentRecord struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Images      []datauri.Token `json:"images"`
	PDFs        []NamedToken    `json:"pdfs"`
	Timestamp   string          `json:"timestamp"`
}

func (r IncidentRecord) Key() string { return r.ID }

// Notification is one entry in the append-only event log. Details, when
// present, are a point-in-time copy of what was just persisted; they are
// never revalidated against live records.
type Notification struct {
	ID      int64                `json:"id"`
	Title   string               `json:"title"`
	Msg     string               `json:"msg"`
	Time    string               `json:"time"`
	Read    bool                 `json:"read"`
	Details *NotificationDetails `json:"details,omitempty"`
}

type NotificationDetails struct {
	Content string       `json:"content"`
	Files   []Attachment `json:"files"`
}

// EditedSuffix marks timestamps of records that were updated after creation.
const EditedSuffix = " (Đã sửa)"

// FormatTimestamp renders a record timestamp the way the app displays it.
func FormatTimestamp(t time.Time) string {
	return t.Format("15:04:05 2/1/2006")
}

// FormatNotificationTime renders the short time shown on notifications.
func FormatNotificationTime(t time.Time) string {
	return t.Format("15:04 02/01")
}

// NewID produces a stable record identifier.
func NewID() string { return uuid.NewString() }
