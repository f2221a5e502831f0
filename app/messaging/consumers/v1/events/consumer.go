// Package events applies store mutations received from a pubsub subscription.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ribgsilva/phonebook-api/business/v1/note"
	"github.com/ribgsilva/phonebook-api/business/v1/person"
	"github.com/ribgsilva/phonebook-api/sys"
	"gocloud.dev/pubsub"
)

// Event types understood by the consumer
const (
	NoteCreate   = "note.create"
	NoteDelete   = "note.delete"
	PersonCreate = "person.create"
	PersonDelete = "person.delete"
)

// Event is the message body
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Ref points at a record by id, the data of delete events
type Ref struct {
	Id int `json:"id"`
}

// Stores are the stores events mutate
type Stores struct {
	Notes   *note.Store
	Persons *person.Store
}

// Consume receives messages until ctx is cancelled, applying each one with at most maxWorkers at a time.
// Every message is acked, failures are only logged.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int, stores Stores) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan struct{}, maxWorkers)

	var wg sync.WaitGroup
	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		wg.Add(1)
		go func(m *pubsub.Message) {
			defer wg.Done()
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			if err := Apply(m.Body, stores); err != nil {
				logger.Errorw("message dropped", "ERROR", err)
			}
		}(message)
	}

	wg.Wait()

	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Apply decodes one message body and performs the mutation it describes
func Apply(body []byte, stores Stores) error {
	var e Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case NoteCreate:
		var n note.NewNote
		if err := decode(e, &n); err != nil {
			return err
		}
		created, err := stores.Notes.Create(n)
		if err != nil {
			return fmt.Errorf("failed to create note %s: %w", e.Data, err)
		}
		sys.R.Log.Infow("note created", "id", created.Id)
	case NoteDelete:
		var r Ref
		if err := decode(e, &r); err != nil {
			return err
		}
		stores.Notes.Delete(r.Id)
	case PersonCreate:
		var p person.NewPerson
		if err := decode(e, &p); err != nil {
			return err
		}
		created, err := stores.Persons.Create(p)
		if err != nil {
			return fmt.Errorf("failed to create person %s: %w", e.Data, err)
		}
		sys.R.Log.Infow("person created", "id", created.Id)
	case PersonDelete:
		var r Ref
		if err := decode(e, &r); err != nil {
			return err
		}
		stores.Persons.Delete(r.Id)
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}

func decode(e Event, v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("event %s has no data", e.Type)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
	}
	return nil
}
