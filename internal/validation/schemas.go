package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/studhub/eventrec/pkg/models"
)

// recommendationRequestSchema pins down the shape of the request envelope
// before it is decoded into structs. Field-level semantics (vocabulary
// membership, rating ranges) are handled by RequestValidator afterwards.
const recommendationRequestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["user_profile", "events"],
  "properties": {
    "user_profile": {
      "type": "object",
      "required": ["user_id"],
      "properties": {
        "user_id": {"type": "integer"},
        "interesting_skills": {"type": "array", "items": {"type": "string"}},
        "education_place": {"type": ["string", "null"]},
        "visited_events": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["event_id", "attended", "rating"],
            "properties": {
              "event_id": {"type": "integer"},
              "attended": {"type": "boolean"},
              "rating": {"type": "integer", "minimum": 1, "maximum": 5}
            }
          }
        }
      }
    },
    "events": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["event_id", "title", "organizer", "datetime", "duration_minutes", "location", "max_participants", "category"],
        "properties": {
          "event_id": {"type": "integer"},
          "title": {"type": "string"},
          "organizer": {"type": "string"},
          "recommended_skills": {"type": "array", "items": {"type": "string"}},
          "datetime": {"type": "string"},
          "duration_minutes": {"type": "integer", "minimum": 1},
          "location": {"type": "string"},
          "max_participants": {"type": "integer", "minimum": 1},
          "category": {"type": "string"},
          "level": {"type": ["string", "null"]}
        }
      }
    },
    "universities": {"type": "object"},
    "n_recommendations": {"type": "integer", "minimum": 1, "maximum": 100}
  }
}`

// SchemaValidator validates raw request bodies against the envelope schema.
type SchemaValidator struct {
	schema *gojsonschema.Schema
}

func NewSchemaValidator() (*SchemaValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(recommendationRequestSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile recommendation request schema: %w", err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// ValidateBody checks a raw JSON body; the returned slice is empty when the
// envelope is well-formed.
func (sv *SchemaValidator) ValidateBody(body []byte) ([]models.FieldError, error) {
	result, err := sv.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	fieldErrors := make([]models.FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		loc := []string{"body"}
		if field := desc.Field(); field != "(root)" {
			loc = append(loc, strings.Split(field, ".")...)
		}
		fieldErrors = append(fieldErrors, models.FieldError{
			Loc:   loc,
			Msg:   desc.Description(),
			Type:  desc.Type(),
			Input: desc.Value(),
		})
	}
	return fieldErrors, nil
}
