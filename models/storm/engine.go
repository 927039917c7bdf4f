package storm

import (
	"errors"
	"fmt"
	"time"

	"github.com/asdine/storm"
	"github.com/asdine/storm/codec/msgpack"
	"github.com/asdine/storm/q"
	"github.com/sirupsen/logrus"

	"github.com/justinjudd/tourney"
	"github.com/justinjudd/tourney/models"
)

// ErrNotFound is returned, wrapped, when no tournament has the requested id
var ErrNotFound = storm.ErrNotFound

type record struct {
	ID      string            `storm:"id"`
	Name    string            `storm:"index"`
	Format  models.FormatType `storm:"index"`
	SavedAt int64             `storm:"index"`
	Payload []byte
}

// Summary describes a saved tournament without decoding its structure
type Summary struct {
	ID      string
	Name    string
	Format  models.FormatType
	SavedAt time.Time
}

// Store keeps exported tournaments in a storm database
type Store struct {
	db  *storm.DB
	log logrus.FieldLogger
}

// Open creates and returns a Store backed by the bolt file at path
func Open(path string, log logrus.FieldLogger) (*Store, error) {
	db, err := storm.Open(path, storm.Codec(msgpack.Codec))
	//db, err := storm.Open(path) // Use this for debug or if you want JSON stored in the database
	if err != nil {
		return nil, fmt.Errorf("Unable to open storage engine: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{db: db, log: log.WithField("store", path)}, nil
}

// Save writes the envelope, replacing any tournament saved under the same id
func (s *Store) Save(e *tourney.Envelope) error {
	payload, err := e.Marshal()
	if err != nil {
		return err
	}
	r := record{
		ID:      e.ID,
		Name:    e.Config.Name,
		Format:  e.Format,
		SavedAt: time.Now().UnixNano(),
		Payload: payload,
	}
	if err := s.db.Save(&r); err != nil {
		return fmt.Errorf("Unable to save tournament %s: %w", e.ID, err)
	}
	s.log.WithFields(logrus.Fields{"id": e.ID, "format": e.Format}).Debug("saved tournament")
	return nil
}

// Get loads and imports the tournament saved under id
func (s *Store) Get(id string) (*tourney.Envelope, error) {
	var r record
	if err := s.db.One("ID", id, &r); err != nil {
		return nil, fmt.Errorf("Unable to load tournament %s: %w", id, err)
	}
	return tourney.Import(r.Payload)
}

// List returns every saved tournament, oldest first
func (s *Store) List() ([]Summary, error) {
	return s.find(s.db.Select())
}

// ListByFormat returns the saved tournaments of one format, oldest first
func (s *Store) ListByFormat(f models.FormatType) ([]Summary, error) {
	return s.find(s.db.Select(q.Eq("Format", f)))
}

func (s *Store) find(query storm.Query) ([]Summary, error) {
	var records []record
	err := query.OrderBy("SavedAt").Find(&records)
	if errors.Is(err, storm.ErrNotFound) {
		return []Summary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Unable to list tournaments: %w", err)
	}
	summaries := make([]Summary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, Summary{
			ID:      r.ID,
			Name:    r.Name,
			Format:  r.Format,
			SavedAt: time.Unix(0, r.SavedAt),
		})
	}
	return summaries, nil
}

// Delete removes the tournament saved under id
func (s *Store) Delete(id string) error {
	var r record
	if err := s.db.One("ID", id, &r); err != nil {
		return fmt.Errorf("Unable to delete tournament %s: %w", id, err)
	}
	if err := s.db.DeleteStruct(&r); err != nil {
		return fmt.Errorf("Unable to delete tournament %s: %w", id, err)
	}
	s.log.WithField("id", id).Debug("deleted tournament")
	return nil
}

// Close releases the database file
func (s *Store) Close() error {
	return s.db.Close()
}
