package sharelink

import (
	"encoding/json"
	"fmt"

	"github.com/khanhtv/traincrew/internal/common"
)

// Payload is the tagged union carried inside a share token. Exactly one
// of the variant fields is set.
type Payload struct {
	Assignment *Assignment
	Briefing   *Briefing
	Incident   *Incident
	Document   *Document
	Crew       *Crew
}

// Assignment is a one-off duty summary shared from the compose screen.
type Assignment struct {
	TrainID string `json:"trainId"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// Briefing carries a briefing record without its attachments.
type Briefing struct {
	Timestamp string `json:"timestamp"`
	Review    string `json:"review"`
	Plan      string `json:"plan"`
}

// Incident carries an incident report without its attachments.
type Incident struct {
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// Document carries a document record without its attachments.
type Document struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// Crew carries the full roster as plain contact rows.
type Crew struct {
	List []CrewContact `json:"list"`
}

type CrewContact struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

const (
	typeAssignment = "assignment"
	typeBriefing   = "briefing"
	typeIncident   = "incident"
	typeDocument   = "document"
	typeCrew       = "crew"
)

// MarshalJSON writes the flat wire object: the type tag inlined beside the
// variant's own fields, e.g. {"type":"briefing","timestamp":...,"review":...}.
func (p Payload) MarshalJSON() ([]byte, error) {
	type tag struct {
		Type string `json:"type"`
	}
	switch {
	case p.Assignment != nil:
		return json.Marshal(struct {
			tag
			*Assignment
		}{tag{typeAssignment}, p.Assignment})
	case p.Briefing != nil:
		return json.Marshal(struct {
			tag
			*Briefing
		}{tag{typeBriefing}, p.Briefing})
	case p.Incident != nil:
		return json.Marshal(struct {
			tag
			*Incident
		}{tag{typeIncident}, p.Incident})
	case p.Document != nil:
		return json.Marshal(struct {
			tag
			*Document
		}{tag{typeDocument}, p.Document})
	case p.Crew != nil:
		return json.Marshal(struct {
			tag
			*Crew
		}{tag{typeCrew}, p.Crew})
	}
	return nil, fmt.Errorf("empty share payload")
}

// UnmarshalJSON reads the flat wire object, selecting the variant by the
// "type" key and decoding the remaining keys into it.
func (p *Payload) UnmarshalJSON(raw []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return err
	}

	*p = Payload{}
	switch head.Type {
	case typeAssignment:
		p.Assignment = &Assignment{}
		return json.Unmarshal(raw, p.Assignment)
	case typeBriefing:
		p.Briefing = &Briefing{}
		return json.Unmarshal(raw, p.Briefing)
	case typeIncident:
		p.Incident = &Incident{}
		return json.Unmarshal(raw, p.Incident)
	case typeDocument:
		p.Document = &Document{}
		return json.Unmarshal(raw, p.Document)
	case typeCrew:
		p.Crew = &Crew{}
		return json.Unmarshal(raw, p.Crew)
	}
	return fmt.Errorf("%w: unknown share type %q", common.ErrShareDecode, head.Type)
}
