package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ExtractionRecord struct{ ent.Schema }

func (ExtractionRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_records"},
	}
}

func (ExtractionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// one record per image; re-verification overwrites in place
		field.UUID("image_id", uuid.UUID{}).Unique(),
		field.UUID("application_id", uuid.UUID{}),
		field.JSON("extracted_json", []byte{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.JSON("verification_json", []byte{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Float32("confidence").Default(0),
		field.Int64("processing_time_ms").NonNegative().Default(0),
		field.String("model_name").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE record -> ONE image
		edge.From("image", LabelImage.Type).
			Ref("extraction").
			Field("image_id").
			Required().
			Unique(),
		// MANY records -> ONE application
		edge.From("application", Application.Type).
			Ref("extractions").
			Field("application_id").
			Required().
			Unique(),
	}
}
