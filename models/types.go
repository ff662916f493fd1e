package models

import "fmt"

// Interaction kinds
const (
	KindCommand      = "command"
	KindComponent    = "component"
	KindAutocomplete = "autocomplete"
)

// Envelope is one inbound interaction as delivered by the platform.
// It is created per event and discarded after handling; never persisted.
type Envelope struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	UserID    string `json:"user_id"`
	UserTag   string `json:"user_tag"`
	GuildID   string `json:"guild_id,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
	MessageID string `json:"message_id,omitempty"`

	// Command name and selected argument value for KindCommand interactions.
	Command string `json:"command,omitempty"`
	Option  string `json:"option,omitempty"`

	// Raw action token for KindComponent interactions.
	CustomID string `json:"custom_id,omitempty"`

	// Focused field name and partial text for KindAutocomplete interactions.
	Focused string `json:"focused,omitempty"`
	Partial string `json:"partial,omitempty"`
}

// InGuild reports whether the interaction originated inside a community.
func (e Envelope) InGuild() bool {
	return e.GuildID != ""
}

// Participant is one recorded vote in a poll.
type Participant struct {
	UserID     string `json:"user_id"`
	DisplayTag string `json:"display_tag"`
	Option     int    `json:"option"`
}

// Poll is the persisted vote ledger for a single poll. Mutated only through
// pollstore.Update; created by the poll-creation command flow.
type Poll struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Options      []string      `json:"options"`
	Counts       []int         `json:"counts"`
	Votes        int           `json:"votes"`
	Public       bool          `json:"public"`
	OwnerID      string        `json:"owner_id"`
	Participants []Participant `json:"participants"`
}

// ParticipantIndex returns the index of the user's vote record, or -1.
func (p *Poll) ParticipantIndex(userID string) int {
	for i, part := range p.Participants {
		if part.UserID == userID {
			return i
		}
	}
	return -1
}

// OptionIndex resolves an option label to its index, or -1.
func (p *Poll) OptionIndex(label string) int {
	for i, opt := range p.Options {
		if opt == label {
			return i
		}
	}
	return -1
}

// Check verifies the poll's internal invariants:
// sum(Counts) == Votes == len(Participants), each participant appears at
// most once, and every recorded option index is valid.
func (p *Poll) Check() error {
	if len(p.Counts) != len(p.Options) {
		return fmt.Errorf("poll %s: %d counts for %d options", p.ID, len(p.Counts), len(p.Options))
	}

	sum := 0
	for _, c := range p.Counts {
		if c < 0 {
			return fmt.Errorf("poll %s: negative count %d", p.ID, c)
		}
		sum += c
	}
	if sum != p.Votes {
		return fmt.Errorf("poll %s: counts sum to %d, votes is %d", p.ID, sum, p.Votes)
	}
	if len(p.Participants) != p.Votes {
		return fmt.Errorf("poll %s: %d participants, votes is %d", p.ID, len(p.Participants), p.Votes)
	}

	seen := make(map[string]bool, len(p.Participants))
	for _, part := range p.Participants {
		if seen[part.UserID] {
			return fmt.Errorf("poll %s: duplicate participant %s", p.ID, part.UserID)
		}
		seen[part.UserID] = true
		if part.Option < 0 || part.Option >= len(p.Options) {
			return fmt.Errorf("poll %s: participant %s has option index %d out of range", p.ID, part.UserID, part.Option)
		}
	}

	return nil
}

// Panel is the structured data handed to the external rich-message
// renderer. This core supplies the data, not the rendering.
type Panel struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Fields      []PanelField `json:"fields,omitempty"`
	Footer      string       `json:"footer,omitempty"`
}

type PanelField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Button is one clickable component attached to a message. Token is the
// colon-delimited action token decoded by the router on click.
type Button struct {
	Token string `json:"token"`
	Label string `json:"label"`
	Style string `json:"style,omitempty"`
}

// Choice is a single autocomplete suggestion.
type Choice struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ErrorResponse is the JSON error body returned by the webhook endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
