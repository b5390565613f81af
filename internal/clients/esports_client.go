package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/models"
)

// Error kinds surfaced by upstream fetches. Callers discriminate with
// errors.Is and map them to transport responses at the boundary.
var (
	// ErrUpstreamUnavailable marks transport failures, timeouts and
	// non-2xx replies from a required upstream endpoint.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamFormat marks a payload whose shape matches none of the
	// accepted variants.
	ErrUpstreamFormat = errors.New("invalid upstream format")
)

// EsportsClient fetches team definitions, training sessions and user
// identities from the esports API.
type EsportsClient struct {
	base   *BaseClient
	logger *zap.Logger
}

// NewEsportsClient returns client.
func NewEsportsClient(baseURL, token string, httpClient HTTPDoer, logger *zap.Logger) *EsportsClient {
	return &EsportsClient{
		base:   NewBaseClient(baseURL, token, httpClient),
		logger: logger,
	}
}

func (c *EsportsClient) getJSON(ctx context.Context, path string) ([]byte, error) {
	status, body, err := c.base.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUpstreamUnavailable, path, err)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUpstreamUnavailable, path, status)
	}
	return body, nil
}

// FetchTeams retrieves the modality catalog and normalizes it to an
// ID-keyed map. The upstream has served three shapes over time: an object
// keyed by ID, an array of name strings, and an array of {id,name}
// objects. Anything else is rejected.
func (c *EsportsClient) FetchTeams(ctx context.Context) (map[string]models.Team, error) {
	body, err := c.getJSON(ctx, "/modality/all")
	if err != nil {
		return nil, err
	}

	teams, err := parseTeams(body)
	if err != nil {
		return nil, err
	}
	c.logger.Info("fetched modalities", zap.Int("count", len(teams)))
	return teams, nil
}

func parseTeams(body []byte) (map[string]models.Team, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "{") {
		return parseKeyedTeams(body)
	}
	if strings.HasPrefix(trimmed, "[") {
		return parseTeamList(body)
	}
	return nil, fmt.Errorf("%w: modalities payload is neither object nor array", ErrUpstreamFormat)
}

// teamEntry tolerates both lower- and PascalCase field names seen in the
// upstream responses.
type teamEntry struct {
	ID    json.RawMessage `json:"id"`
	IDAlt json.RawMessage `json:"Id"`
	Name  string          `json:"name"`
	NameA string          `json:"Name"`
}

func (e teamEntry) id() string {
	if s := rawToString(e.ID); s != "" {
		return s
	}
	return rawToString(e.IDAlt)
}

func (e teamEntry) name() string {
	if e.Name != "" {
		return e.Name
	}
	return e.NameA
}

func parseKeyedTeams(body []byte) (map[string]models.Team, error) {
	var keyed map[string]teamEntry
	if err := json.Unmarshal(body, &keyed); err != nil {
		return nil, fmt.Errorf("%w: modalities object: %v", ErrUpstreamFormat, err)
	}

	teams := make(map[string]models.Team, len(keyed))
	for key, entry := range keyed {
		id := entry.id()
		name := entry.name()
		if id == "" && name == "" {
			return nil, fmt.Errorf("%w: modality %q has neither id nor name", ErrUpstreamFormat, key)
		}
		if id == "" {
			id = key
		}
		if name == "" {
			name = id
		}
		teams[key] = models.Team{ID: id, Name: name}
	}
	return teams, nil
}

func parseTeamList(body []byte) (map[string]models.Team, error) {
	var names []string
	if err := json.Unmarshal(body, &names); err == nil {
		teams := make(map[string]models.Team, len(names))
		for i, name := range names {
			id := strconv.Itoa(i)
			teams[id] = models.Team{ID: id, Name: name}
		}
		return teams, nil
	}

	var entries []teamEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: modalities array: %v", ErrUpstreamFormat, err)
	}
	teams := make(map[string]models.Team, len(entries))
	for i, entry := range entries {
		id := entry.id()
		name := entry.name()
		if id == "" && name == "" {
			return nil, fmt.Errorf("%w: modality at index %d has neither id nor name", ErrUpstreamFormat, i)
		}
		if id == "" {
			id = strconv.Itoa(i)
		}
		if name == "" {
			name = id
		}
		teams[id] = models.Team{ID: id, Name: name}
	}
	return teams, nil
}

// sessionWire mirrors the upstream train document. Pointer fields let a
// missing key be told apart from a zero value.
type sessionWire struct {
	Status          *string           `json:"Status"`
	StartTimestamp  *float64          `json:"StartTimestamp"`
	ModalityID      json.RawMessage   `json:"ModalityId"`
	AttendedPlayers []json.RawMessage `json:"AttendedPlayers"`
}

type attendanceWire struct {
	PlayerID          json.RawMessage `json:"PlayerId"`
	EntranceTimestamp *float64        `json:"EntranceTimestamp"`
	ExitTimestamp     *float64        `json:"ExitTimestamp"`
}

// FetchSessions retrieves all training sessions. The payload must be an
// array; individual malformed elements are skipped, not fatal.
func (c *EsportsClient) FetchSessions(ctx context.Context) ([]models.Session, error) {
	body, err := c.getJSON(ctx, "/trains/all")
	if err != nil {
		return nil, err
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("%w: trains payload is not an array: %v", ErrUpstreamFormat, err)
	}

	sessions := make([]models.Session, 0, len(elements))
	skipped := 0
	for i, raw := range elements {
		session, ok := c.decodeSession(raw)
		if !ok {
			skipped++
			c.logger.Debug("skipping malformed train element", zap.Int("index", i))
			continue
		}
		sessions = append(sessions, session)
	}
	if skipped > 0 {
		c.logger.Warn("skipped malformed train elements", zap.Int("count", skipped))
	}
	c.logger.Info("fetched trains", zap.Int("count", len(sessions)))
	return sessions, nil
}

func (c *EsportsClient) decodeSession(raw json.RawMessage) (models.Session, bool) {
	var wire sessionWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return models.Session{}, false
	}

	session := models.Session{ModalityID: rawToString(wire.ModalityID)}
	if wire.Status != nil {
		session.Status = *wire.Status
	}
	if wire.StartTimestamp != nil {
		session.StartMs = int64(*wire.StartTimestamp)
	}

	for _, rawAtt := range wire.AttendedPlayers {
		att, ok := decodeAttendance(rawAtt)
		if !ok {
			c.logger.Debug("skipping malformed attendance record",
				zap.String("modality", session.ModalityID))
			continue
		}
		session.Attendances = append(session.Attendances, att)
	}
	return session, true
}

// decodeAttendance drops records missing any of the three required fields
// or carrying non-numeric timestamps.
func decodeAttendance(raw json.RawMessage) (models.Attendance, bool) {
	var wire attendanceWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return models.Attendance{}, false
	}
	playerID := rawToString(wire.PlayerID)
	if playerID == "" || wire.EntranceTimestamp == nil || wire.ExitTimestamp == nil {
		return models.Attendance{}, false
	}
	return models.Attendance{
		PlayerID:   playerID,
		EntranceMs: int64(*wire.EntranceTimestamp),
		ExitMs:     int64(*wire.ExitTimestamp),
	}, true
}

type identityWire struct {
	DiscordID json.RawMessage `json:"discordID"`
	Email     string          `json:"email"`
}

// FetchIdentities resolves display handles for the given player IDs. This
// is best-effort enrichment: on any failure it returns an empty map and the
// caller falls back to raw player IDs.
func (c *EsportsClient) FetchIdentities(ctx context.Context, playerIDs []string) map[string]models.Identity {
	identities := make(map[string]models.Identity)
	if len(playerIDs) == 0 {
		return identities
	}

	path := "/usuarios/por-discord-ids?ids=" + url.QueryEscape(strings.Join(playerIDs, ","))
	body, err := c.getJSON(ctx, path)
	if err != nil {
		c.logger.Warn("identity lookup failed, falling back to raw player ids", zap.Error(err))
		return identities
	}

	var records []identityWire
	if err := json.Unmarshal(body, &records); err != nil {
		c.logger.Warn("identity payload malformed, falling back to raw player ids", zap.Error(err))
		return identities
	}

	for _, rec := range records {
		id := rawToString(rec.DiscordID)
		if id == "" {
			continue
		}
		identities[id] = models.Identity{PlayerID: id, Handle: emailHandle(rec.Email, id)}
	}
	return identities
}

// emailHandle extracts the local part of an institutional email, falling
// back to the raw player ID when the email is absent or unparseable.
func emailHandle(email, fallback string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return fallback
	}
	return email[:at]
}

// rawToString coerces a JSON scalar that may arrive as either a string or
// a number into its string form, matching how upstream IDs drift between
// the two.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
