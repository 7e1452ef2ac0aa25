// Package firestore implements the DocumentStore port on Cloud Firestore.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// pingCollection is probed by Ping. It always exists once any account has been touched.
const pingCollection = "users"

type Store struct {
	client *firestore.Client
}

var _ portsrepo.DocumentStore = (*Store)(nil)

// NewStore wraps an initialized client. The store owns the client and
// closes it on Close.
func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, coll, id string) (*portsrepo.Snapshot, error) {
	snap, err := s.client.Collection(coll).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%s/%s: %w", coll, id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("firestore get %s/%s: %w", coll, id, err)
	}
	return &portsrepo.Snapshot{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *Store) Create(ctx context.Context, coll string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(coll).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("firestore add to %s: %w", coll, err)
	}
	return ref.ID, nil
}

func (s *Store) Set(ctx context.Context, coll, id string, data map[string]any) error {
	if _, err := s.client.Collection(coll).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("firestore set %s/%s: %w", coll, id, err)
	}
	return nil
}

// Update merges top-level fields. Firestore rejects updates of missing
// documents with NotFound, which is reported as apperrors.ErrNotFound.
func (s *Store) Update(ctx context.Context, coll, id string, data map[string]any) error {
	updates := make([]firestore.Update, 0, len(data))
	for k, v := range data {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
	}
	if len(updates) == 0 {
		return nil
	}
	if _, err := s.client.Collection(coll).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s/%s: %w", coll, id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("firestore update %s/%s: %w", coll, id, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, coll, id string) error {
	if _, err := s.client.Collection(coll).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("firestore delete %s/%s: %w", coll, id, err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, coll string, filters ...portsrepo.Filter) ([]portsrepo.Snapshot, error) {
	q := s.client.Collection(coll).Query
	for _, f := range filters {
		q = q.Where(f.Field, "==", f.Value)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	out := []portsrepo.Snapshot{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore list %s: %w", coll, err)
		}
		out = append(out, portsrepo.Snapshot{ID: doc.Ref.ID, Data: doc.Data()})
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	iter := s.client.Collection(pingCollection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
