package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/nursematch/internal/domain/entities"
	"github.com/zatekoja/nursematch/internal/domain/repositories"
	tsclient "github.com/zatekoja/nursematch/internal/infrastructure/clients/typesense"
	apperrors "github.com/zatekoja/nursematch/pkg/errors"
)

const collectionName = tsclient.NursesCollection

// maxExportPage bounds a single candidate export; the candidate pool is
// small and the ranking pipeline truncates further downstream.
const maxExportPage = 250

// TypesenseNurseAdapter implements the candidate repository on the
// document store.
type TypesenseNurseAdapter struct {
	client *tsclient.Client
}

var _ repositories.NurseRepository = (*TypesenseNurseAdapter)(nil)

// NewTypesenseNurseAdapter creates a new Typesense adapter
func NewTypesenseNurseAdapter(client *tsclient.Client) *TypesenseNurseAdapter {
	return &TypesenseNurseAdapter{client: client}
}

// InitSchema ensures the nurses collection exists
func (a *TypesenseNurseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "city", Type: "string", Facet: pointer.True()},
			{Name: "rating", Type: "float"},
			{Name: "reviews_count", Type: "int32"},
			{Name: "services", Type: "string[]"},
			{Name: "expertise_tags", Type: "string[]", Optional: pointer.True()},
			{Name: "location", Type: "geopoint", Optional: pointer.True()},
			{Name: "availability", Type: "string", Optional: pointer.True(), Index: pointer.False()},
		},
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// ListNurses exports all candidates from the collection.
func (a *TypesenseNurseAdapter) ListNurses(ctx context.Context) ([]*entities.Nurse, error) {
	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String("*"),
		QueryBy: pointer.String("name"),
		PerPage: pointer.Int(maxExportPage),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to search nurses", err)
	}

	nurses := []*entities.Nurse{}
	if result.Hits == nil {
		return nurses, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		nurse, err := documentToNurse(*hit.Document)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to decode nurse document", err)
		}
		nurses = append(nurses, nurse)
	}

	return nurses, nil
}

// Count returns the number of documents in the collection.
func (a *TypesenseNurseAdapter) Count(ctx context.Context) (int, error) {
	collection, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to retrieve nurse collection", err)
	}
	if collection.NumDocuments == nil {
		return 0, nil
	}
	return int(*collection.NumDocuments), nil
}

// Ping verifies the store connection.
func (a *TypesenseNurseAdapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases the store handle. The Typesense client is connectionless.
func (a *TypesenseNurseAdapter) Close() error {
	return nil
}

func documentToNurse(doc map[string]interface{}) (*entities.Nurse, error) {
	nurse := &entities.Nurse{
		ID:            stringField(doc, "id"),
		Name:          stringField(doc, "name"),
		City:          stringField(doc, "city"),
		Services:      stringSliceField(doc, "services"),
		ExpertiseTags: stringSliceField(doc, "expertise_tags"),
	}

	if rating, ok := doc["rating"].(float64); ok {
		nurse.Rating = rating
	}
	if reviews, ok := doc["reviews_count"].(float64); ok {
		nurse.ReviewsCount = int(reviews)
	}

	if loc, ok := doc["location"].([]interface{}); ok && len(loc) == 2 {
		lat, latOK := loc[0].(float64)
		lng, lngOK := loc[1].(float64)
		if latOK && lngOK {
			nurse.Location = &entities.Location{Latitude: lat, Longitude: lng}
		}
	}

	if availability := stringField(doc, "availability"); availability != "" {
		if !json.Valid([]byte(availability)) {
			return nil, fmt.Errorf("invalid availability payload for nurse %q", nurse.ID)
		}
		nurse.Availability = json.RawMessage(availability)
	}

	return nurse, nil
}

func stringField(doc map[string]interface{}, key string) string {
	value, _ := doc[key].(string)
	return value
}

func stringSliceField(doc map[string]interface{}, key string) []string {
	raw, ok := doc[key].([]interface{})
	if !ok {
		return []string{}
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
